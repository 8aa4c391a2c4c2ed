package queries

import (
	"context"

	"festivo/internal/domain/payment"
	"festivo/internal/domain/user"
	"festivo/internal/infra"
	"festivo/internal/pkg/config"
	"festivo/internal/pkg/errs"

	"github.com/google/uuid"
)

type PaymentQueries interface {
	// GetByReservation enforces ownership: customers see only their own payments.
	GetByReservation(ctx context.Context, actorID uuid.UUID, role user.Role, reservationID uuid.UUID) (*PaymentView, error)
	// GetByReservationSystem skips ownership checks; for internal read-after-write only.
	GetByReservationSystem(ctx context.Context, reservationID uuid.UUID) (*PaymentView, error)
	// Methods returns the static payment method reference data.
	Methods(ctx context.Context) []payment.MethodInfo
}

type PaymentViewRepo interface {
	ViewByReservationID(ctx context.Context, reservationID uuid.UUID) (*PaymentView, error)
}

type paymentQueriesImpl struct {
	repo    PaymentViewRepo
	payment config.PaymentConfig
}

func NewPaymentQueries(repo PaymentViewRepo, paymentCfg config.PaymentConfig) PaymentQueries {
	return &paymentQueriesImpl{repo: repo, payment: paymentCfg}
}

func (q *paymentQueriesImpl) GetByReservation(ctx context.Context, actorID uuid.UUID, role user.Role, reservationID uuid.UUID) (*PaymentView, error) {
	view, err := q.GetByReservationSystem(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	if !role.IsAdmin() && view.UserID != actorID {
		return nil, errs.ErrForbidden
	}
	return view, nil
}

func (q *paymentQueriesImpl) GetByReservationSystem(ctx context.Context, reservationID uuid.UUID) (*PaymentView, error) {
	view, err := q.repo.ViewByReservationID(ctx, reservationID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrPaymentNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (q *paymentQueriesImpl) Methods(_ context.Context) []payment.MethodInfo {
	return payment.MethodCatalog(q.payment.GCashAccountNumber)
}
