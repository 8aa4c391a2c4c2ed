package commands

import (
	"context"
	"log/slog"

	"festivo/internal/domain/reservation"
	reqdto "festivo/internal/handler/dto/request"
	"festivo/internal/infra"
	"festivo/internal/infra/storage"
	"festivo/internal/pkg/clock"
	"festivo/internal/pkg/errs"
	"festivo/internal/usecase/queries"
	"festivo/internal/usecase/shared"

	"github.com/google/uuid"
)

type ReservationCommands interface {
	CreateReservation(ctx context.Context, req reqdto.CreateReservationRequest, userID uuid.UUID) (*queries.ReservationView, error)
	ApproveReservation(ctx context.Context, id uuid.UUID) error
	DeclineReservation(ctx context.Context, id uuid.UUID) error
	DeleteReservation(ctx context.Context, id uuid.UUID) error
}

type reservationCommandsImpl struct {
	uow                shared.UnitOfWork
	reservationQueries queries.ReservationQueries
	files              storage.FileStore
	clock              clock.Clock
}

func NewReservationCommands(
	uow shared.UnitOfWork,
	reservationQueries queries.ReservationQueries,
	files storage.FileStore,
	clock clock.Clock,
) ReservationCommands {
	return &reservationCommandsImpl{
		uow:                uow,
		reservationQueries: reservationQueries,
		files:              files,
		clock:              clock,
	}
}

// CreateReservation validates the booking against the package and persists
// the reservation with its customization atomically.
func (c *reservationCommandsImpl) CreateReservation(
	ctx context.Context,
	req reqdto.CreateReservationRequest,
	userID uuid.UUID,
) (*queries.ReservationView, error) {
	pkg, err := c.uow.CommandReads().PackageByID(ctx, req.PackageID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrPackageNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	services := &reservation.Services{Clock: c.clock}
	res, cust, err := reservation.NewReservation(services, pkg, userID, req.ToDomain())
	if err != nil {
		if errs.Is(err, reservation.ErrPackageUnavailable) {
			return nil, errs.Mark(err, errs.ErrPackageInactive)
		}
		if _, ok := errs.AsFieldErrors(err); ok {
			return nil, err
		}
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Reservations().Create(ctx, res, cust)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return nil, errs.Mark(err, errs.ErrPackageNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return c.reservationQueries.GetByIDSystem(ctx, res.ID())
}

func (c *reservationCommandsImpl) ApproveReservation(ctx context.Context, id uuid.UUID) error {
	return c.transition(ctx, id, reservation.StatusApproved)
}

func (c *reservationCommandsImpl) DeclineReservation(ctx context.Context, id uuid.UUID) error {
	return c.transition(ctx, id, reservation.StatusDeclined)
}

// transition moves a pending reservation to a terminal status. The snapshot
// read and status write share a transaction so concurrent admin actions
// cannot both succeed.
func (c *reservationCommandsImpl) transition(ctx context.Context, id uuid.UUID, status reservation.Status) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().ReservationByID(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrReservationNotFound)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		if snap.Status != reservation.StatusPending {
			return errs.ErrReservationNotPending
		}

		if err := tx.Reservations().UpdateStatus(ctx, id, status); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
}

// DeleteReservation removes the reservation; dependent rows cascade in the
// database, stored receipt files are cleaned up afterwards best-effort.
func (c *reservationCommandsImpl) DeleteReservation(ctx context.Context, id uuid.UUID) error {
	var receiptPaths []string

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		paths, err := tx.Reads().ReceiptPathsByReservationID(ctx, id)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		receiptPaths = paths

		if err := tx.Reservations().Delete(ctx, id); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrReservationNotFound)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return err
	}

	for _, path := range receiptPaths {
		if removeErr := c.files.Remove(ctx, path); removeErr != nil {
			slog.Warn("failed to remove receipt file after reservation delete",
				"reservation_id", id, "path", path, "error", removeErr.Error())
		}
	}
	return nil
}
