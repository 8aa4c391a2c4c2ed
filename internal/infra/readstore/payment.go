package readstore

import (
	"context"
	"time"

	"festivo/internal/domain/payment"
	"festivo/internal/infra"
	"festivo/internal/infra/db"
	"festivo/internal/pkg/pgconv"
	"festivo/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PaymentReadStore struct {
	db db.DBTX
}

func NewPaymentReadStore(dbtx db.DBTX) *PaymentReadStore {
	return &PaymentReadStore{db: dbtx}
}

const paymentColumns = `
	id, reservation_id, user_id, payment_method, amount, currency,
	status, transaction_id, reference_number, mobile_number, paid_at,
	created_at, updated_at`

// FindByID loads a payment as a domain entity for the status state machine.
func (s *PaymentReadStore) FindByID(ctx context.Context, id uuid.UUID) (*payment.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE id = $1`
	return s.scanOne(ctx, query, id)
}

// FindByReservationID resolves the single payment attached to a reservation.
func (s *PaymentReadStore) FindByReservationID(ctx context.Context, reservationID uuid.UUID) (*payment.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE reservation_id = $1`
	return s.scanOne(ctx, query, reservationID)
}

// ViewByReservationID returns the payment projection for API responses.
func (s *PaymentReadStore) ViewByReservationID(ctx context.Context, reservationID uuid.UUID) (*queries.PaymentView, error) {
	p, err := s.FindByReservationID(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	view := toPaymentView(p)
	return &view, nil
}

func (s *PaymentReadStore) scanOne(ctx context.Context, query string, arg any) (*payment.Payment, error) {
	var row paymentRow
	err := s.db.QueryRow(ctx, query, arg).Scan(
		&row.id, &row.reservationID, &row.userID, &row.method, &row.amount, &row.currency,
		&row.status, &row.transactionID, &row.referenceNumber, &row.mobileNumber, &row.paidAt,
		&row.createdAt, &row.updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("payment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find payment", err)
	}
	return row.toDomain(), nil
}

type paymentRow struct {
	id              uuid.UUID
	reservationID   uuid.UUID
	userID          uuid.UUID
	method          string
	amount          decimal.Decimal
	currency        string
	status          string
	transactionID   string
	referenceNumber *string
	mobileNumber    *string
	paidAt          *time.Time
	createdAt       time.Time
	updatedAt       time.Time
}

func (r paymentRow) toDomain() *payment.Payment {
	return payment.ReconstructPayment(
		r.id, r.reservationID, r.userID,
		payment.Method(r.method),
		r.amount, r.currency,
		payment.Status(r.status),
		r.transactionID,
		r.referenceNumber, r.mobileNumber,
		r.paidAt,
		r.createdAt, r.updatedAt,
	)
}

func toPaymentView(p *payment.Payment) queries.PaymentView {
	return queries.PaymentView{
		ID:              p.ID(),
		ReservationID:   p.ReservationID(),
		UserID:          p.UserID(),
		Method:          p.Method().String(),
		Amount:          p.Amount(),
		Currency:        p.CurrencyCode(),
		Status:          p.Status().String(),
		TransactionID:   p.TransactionID(),
		ReferenceNumber: p.ReferenceNumber(),
		MobileNumber:    p.MobileNumber(),
		PaidAt:          p.PaidAt(),
		CreatedAt:       p.CreatedAt(),
	}
}
