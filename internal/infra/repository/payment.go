package repository

import (
	"context"

	"festivo/internal/domain/payment"
	"festivo/internal/infra"
	"festivo/internal/infra/db"
)

type PaymentRepository struct {
	db db.DBTX
}

func NewPaymentRepository(dbtx db.DBTX) *PaymentRepository {
	return &PaymentRepository{db: dbtx}
}

// Create inserts the payment. The unique index on reservation_id is the
// atomic one-payment-per-reservation guard; a loser of a concurrent race
// surfaces here as KindDuplicateKey.
func (r *PaymentRepository) Create(ctx context.Context, p *payment.Payment) error {
	const query = `
		INSERT INTO payments (
			id, reservation_id, user_id, payment_method, amount, currency,
			status, transaction_id, reference_number, mobile_number, paid_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.db.Exec(ctx, query,
		p.ID(), p.ReservationID(), p.UserID(), p.Method().String(), p.Amount(), p.CurrencyCode(),
		p.Status().String(), p.TransactionID(), p.ReferenceNumber(), p.MobileNumber(), p.PaidAt(),
	)
	if err != nil {
		return wrapPgError("failed to create payment", err)
	}
	return nil
}

func (r *PaymentRepository) UpdateStatus(ctx context.Context, p *payment.Payment) error {
	const query = `
		UPDATE payments
		SET status = $2, paid_at = $3, updated_at = now()
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, p.ID(), p.Status().String(), p.PaidAt())
	if err != nil {
		return wrapPgError("failed to update payment status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("payment not found", nil, infra.KindNotFound)
	}
	return nil
}
