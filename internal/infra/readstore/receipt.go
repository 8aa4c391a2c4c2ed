package readstore

import (
	"context"
	"time"

	"festivo/internal/domain/receipt"
	"festivo/internal/infra"
	"festivo/internal/infra/db"
	"festivo/internal/pkg/pgconv"
	"festivo/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReceiptReadStore struct {
	db db.DBTX
}

func NewReceiptReadStore(dbtx db.DBTX) *ReceiptReadStore {
	return &ReceiptReadStore{db: dbtx}
}

// FindByID loads a receipt as a domain entity.
func (s *ReceiptReadStore) FindByID(ctx context.Context, id uuid.UUID) (*receipt.Receipt, error) {
	const query = `
		SELECT id, payment_id, reservation_id, file_path, file_name, file_type,
		       uploaded_at, verified_by, verified_at
		FROM receipts
		WHERE id = $1`

	var row receiptRow
	err := s.db.QueryRow(ctx, query, id).Scan(
		&row.id, &row.paymentID, &row.reservationID, &row.filePath, &row.fileName, &row.fileType,
		&row.uploadedAt, &row.verifiedBy, &row.verifiedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("receipt not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find receipt", err)
	}
	return row.toDomain(), nil
}

// ViewByPaymentID returns the receipt metadata attached to a payment.
func (s *ReceiptReadStore) ViewByPaymentID(ctx context.Context, paymentID uuid.UUID) (*queries.ReceiptView, error) {
	const query = `
		SELECT id, payment_id, reservation_id, file_path, file_name, file_type,
		       uploaded_at, verified_by, verified_at
		FROM receipts
		WHERE payment_id = $1`

	var row receiptRow
	err := s.db.QueryRow(ctx, query, paymentID).Scan(
		&row.id, &row.paymentID, &row.reservationID, &row.filePath, &row.fileName, &row.fileType,
		&row.uploadedAt, &row.verifiedBy, &row.verifiedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("receipt not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find receipt", err)
	}

	view := toReceiptView(row.toDomain())
	return &view, nil
}

// PathsByReservationID lists stored file paths for a reservation so deletes
// can clean up files after the rows cascade away.
func (s *ReceiptReadStore) PathsByReservationID(ctx context.Context, reservationID uuid.UUID) ([]string, error) {
	const query = `SELECT file_path FROM receipts WHERE reservation_id = $1`

	rows, err := s.db.Query(ctx, query, reservationID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list receipt paths", err)
	}
	defer rows.Close()

	paths := make([]string, 0)
	for rows.Next() {
		var path string
		if err := rows.Scan(&path); err != nil {
			return nil, infra.WrapRepoErr("failed to scan receipt path", err)
		}
		paths = append(paths, path)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate receipt paths", err)
	}
	return paths, nil
}

type receiptRow struct {
	id            uuid.UUID
	paymentID     uuid.UUID
	reservationID uuid.UUID
	filePath      string
	fileName      string
	fileType      string
	uploadedAt    time.Time
	verifiedBy    *uuid.UUID
	verifiedAt    *time.Time
}

func (r receiptRow) toDomain() *receipt.Receipt {
	return receipt.ReconstructReceipt(
		r.id, r.paymentID, r.reservationID,
		r.filePath, r.fileName, r.fileType,
		r.uploadedAt, r.verifiedBy, r.verifiedAt,
	)
}

func toReceiptView(rc *receipt.Receipt) queries.ReceiptView {
	return queries.ReceiptView{
		ID:            rc.ID(),
		PaymentID:     rc.PaymentID(),
		ReservationID: rc.ReservationID(),
		FileName:      rc.FileName(),
		FileType:      rc.FileType(),
		FilePath:      rc.FilePath(),
		UploadedAt:    rc.UploadedAt(),
		Verified:      rc.IsVerified(),
		VerifiedAt:    rc.VerifiedAt(),
	}
}
