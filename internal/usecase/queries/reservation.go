package queries

import (
	"context"

	"festivo/internal/domain/user"
	"festivo/internal/infra"
	"festivo/internal/pkg/errs"

	"github.com/google/uuid"
)

type ReservationQueries interface {
	// GetByID enforces ownership: customers see only their own reservations.
	GetByID(ctx context.Context, actorID uuid.UUID, role user.Role, id uuid.UUID) (*ReservationView, error)
	// GetByIDSystem skips ownership checks; for internal read-after-write only.
	GetByIDSystem(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]ReservationListItem, error)
	ListAll(ctx context.Context) ([]ReservationListItem, error)
}

type ReservationViewRepo interface {
	FindViewByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]ReservationListItem, error)
	ListAll(ctx context.Context) ([]ReservationListItem, error)
}

type reservationQueriesImpl struct {
	repo ReservationViewRepo
}

func NewReservationQueries(repo ReservationViewRepo) ReservationQueries {
	return &reservationQueriesImpl{repo: repo}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, actorID uuid.UUID, role user.Role, id uuid.UUID) (*ReservationView, error) {
	view, err := q.GetByIDSystem(ctx, id)
	if err != nil {
		return nil, err
	}
	if !role.IsAdmin() && view.UserID != actorID {
		return nil, errs.ErrForbidden
	}
	return view, nil
}

func (q *reservationQueriesImpl) GetByIDSystem(ctx context.Context, id uuid.UUID) (*ReservationView, error) {
	view, err := q.repo.FindViewByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrReservationNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (q *reservationQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]ReservationListItem, error) {
	return q.repo.ListByUser(ctx, userID)
}

func (q *reservationQueriesImpl) ListAll(ctx context.Context) ([]ReservationListItem, error) {
	return q.repo.ListAll(ctx)
}
