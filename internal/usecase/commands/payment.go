package commands

import (
	"context"

	"festivo/internal/domain/payment"
	"festivo/internal/domain/reservation"
	"festivo/internal/domain/user"
	reqdto "festivo/internal/handler/dto/request"
	"festivo/internal/infra"
	"festivo/internal/pkg/clock"
	"festivo/internal/pkg/errs"
	"festivo/internal/usecase/queries"
	"festivo/internal/usecase/shared"

	"github.com/google/uuid"
)

type PaymentCommands interface {
	CreatePayment(ctx context.Context, req reqdto.CreatePaymentRequest, actorID uuid.UUID, role user.Role) (*queries.PaymentView, error)
	// UpdateStatus moves a payment to the given canonical status and mirrors
	// it onto the reservation in the same transaction. Admin only.
	UpdateStatus(ctx context.Context, paymentID uuid.UUID, status string) error
	MarkAsPaid(ctx context.Context, paymentID uuid.UUID) error
	MarkAsInProgress(ctx context.Context, paymentID uuid.UUID) error
}

type paymentCommandsImpl struct {
	uow            shared.UnitOfWork
	paymentQueries queries.PaymentQueries
	clock          clock.Clock
}

func NewPaymentCommands(uow shared.UnitOfWork, paymentQueries queries.PaymentQueries, clock clock.Clock) PaymentCommands {
	return &paymentCommandsImpl{uow: uow, paymentQueries: paymentQueries, clock: clock}
}

// CreatePayment records the payment for a reservation. The amount is captured
// from the reservation inside the transaction; the unique index on
// reservation_id makes the one-payment-per-reservation check atomic under
// concurrent submissions.
func (c *paymentCommandsImpl) CreatePayment(
	ctx context.Context,
	req reqdto.CreatePaymentRequest,
	actorID uuid.UUID,
	role user.Role,
) (*queries.PaymentView, error) {
	method, err := payment.NewMethod(req.PaymentMethod)
	if err != nil {
		fe := errs.FieldErrors{}
		fe.Add("payment_method", "must be one of cash, gcash, bank_transfer")
		return nil, fe
	}

	var created *payment.Payment
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().ReservationByID(ctx, req.ReservationID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrReservationNotFound)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		if !role.IsAdmin() && snap.UserID != actorID {
			return errs.ErrForbidden
		}

		services := &payment.Services{Clock: c.clock}
		p, err := payment.NewPayment(services, snap.ID, snap.UserID, method, snap.TotalAmount, req.Details())
		if err != nil {
			if _, ok := errs.AsFieldErrors(err); ok {
				return err
			}
			return errs.Mark(err, errs.ErrDomainValidation)
		}

		if err := tx.Payments().Create(ctx, p); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Mark(err, errs.ErrDuplicatePayment)
			}
			if infra.IsKind(err, infra.KindForeignKeyViolated) {
				return errs.Mark(err, errs.ErrReservationNotFound)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		status := reservation.PaymentStatus(p.Status().String())
		if err := tx.Reservations().UpdatePaymentStatus(ctx, snap.ID, status); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		created = p
		return nil
	})
	if err != nil {
		return nil, err
	}

	return c.paymentQueries.GetByReservationSystem(ctx, created.ReservationID())
}

func (c *paymentCommandsImpl) UpdateStatus(ctx context.Context, paymentID uuid.UUID, status string) error {
	parsed, err := payment.NewStatus(status)
	if err != nil {
		fe := errs.FieldErrors{}
		fe.Add("status", "must be one of Paid, In Progress")
		return fe
	}
	return c.updateStatus(ctx, paymentID, parsed)
}

func (c *paymentCommandsImpl) MarkAsPaid(ctx context.Context, paymentID uuid.UUID) error {
	return c.updateStatus(ctx, paymentID, payment.StatusPaid)
}

func (c *paymentCommandsImpl) MarkAsInProgress(ctx context.Context, paymentID uuid.UUID) error {
	return c.updateStatus(ctx, paymentID, payment.StatusInProgress)
}

func (c *paymentCommandsImpl) updateStatus(ctx context.Context, paymentID uuid.UUID, status payment.Status) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		p, err := tx.Reads().PaymentByID(ctx, paymentID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrPaymentNotFound)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		if err := p.UpdateStatus(status, c.clock.Now()); err != nil {
			return errs.Mark(err, errs.ErrDomainValidation)
		}

		if err := tx.Payments().UpdateStatus(ctx, p); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		mirror := reservation.PaymentStatus(p.Status().String())
		if err := tx.Reservations().UpdatePaymentStatus(ctx, p.ReservationID(), mirror); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
}
