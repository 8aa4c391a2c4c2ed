//go:build unit || e2e

package builder

import (
	"time"

	"festivo/internal/domain/receipt"
	"festivo/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReceiptBuilder struct {
	PaymentID     uuid.UUID
	ReservationID uuid.UUID
	FilePath      string
	FileName      string
	FileType      string
	UploadedAt    time.Time
}

func NewReceiptBuilder() *ReceiptBuilder {
	return &ReceiptBuilder{
		PaymentID:     uuid.New(),
		ReservationID: uuid.New(),
		FilePath:      "receipts/2026/08/proof.jpg",
		FileName:      "proof.jpg",
		FileType:      "image/jpeg",
		UploadedAt:    time.Now(),
	}
}

func (b *ReceiptBuilder) With(mutate func(*ReceiptBuilder)) *ReceiptBuilder {
	mutate(b)
	return b
}

func (b *ReceiptBuilder) BuildDomain() *receipt.Receipt {
	return receipt.NewReceipt(b.PaymentID, b.ReservationID, b.FilePath, b.FileName, b.FileType, b.UploadedAt)
}

func (b *ReceiptBuilder) BuildReadModel() *queries.ReceiptView {
	return &queries.ReceiptView{
		ID:            uuid.New(),
		PaymentID:     b.PaymentID,
		ReservationID: b.ReservationID,
		FileName:      b.FileName,
		FileType:      b.FileType,
		FilePath:      b.FilePath,
		UploadedAt:    b.UploadedAt,
		Verified:      false,
	}
}
