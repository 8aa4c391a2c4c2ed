package response

import (
	"time"

	"festivo/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ReceiptResponse struct {
	ID            uuid.UUID  `json:"id"`
	PaymentID     uuid.UUID  `json:"paymentId"`
	ReservationID uuid.UUID  `json:"reservationId"`
	FileName      string     `json:"fileName"`
	FileType      string     `json:"fileType"`
	UploadedAt    time.Time  `json:"uploadedAt"`
	Verified      bool       `json:"verified"`
	VerifiedAt    *time.Time `json:"verifiedAt,omitempty"`
}

func FromReceiptView(rm *queries.ReceiptView) *ReceiptResponse {
	var resp ReceiptResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}
