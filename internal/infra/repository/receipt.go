package repository

import (
	"context"
	"time"

	"festivo/internal/domain/receipt"
	"festivo/internal/infra"
	"festivo/internal/infra/db"

	"github.com/google/uuid"
)

type ReceiptRepository struct {
	db db.DBTX
}

func NewReceiptRepository(dbtx db.DBTX) *ReceiptRepository {
	return &ReceiptRepository{db: dbtx}
}

func (r *ReceiptRepository) Create(ctx context.Context, rc *receipt.Receipt) error {
	const query = `
		INSERT INTO receipts (
			id, payment_id, reservation_id, file_path, file_name, file_type, uploaded_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.Exec(ctx, query,
		rc.ID(), rc.PaymentID(), rc.ReservationID(), rc.FilePath(), rc.FileName(), rc.FileType(), rc.UploadedAt(),
	)
	if err != nil {
		return wrapPgError("failed to create receipt", err)
	}
	return nil
}

func (r *ReceiptRepository) Verify(ctx context.Context, id, adminID uuid.UUID, at time.Time) error {
	const query = `UPDATE receipts SET verified_by = $2, verified_at = $3 WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id, adminID, at)
	if err != nil {
		return wrapPgError("failed to verify receipt", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("receipt not found", nil, infra.KindNotFound)
	}
	return nil
}
