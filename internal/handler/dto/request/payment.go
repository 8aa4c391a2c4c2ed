package request

import (
	"festivo/internal/domain/payment"

	"github.com/google/uuid"
)

type CreatePaymentRequest struct {
	ReservationID   uuid.UUID `json:"reservation_id" binding:"required"`
	PaymentMethod   string    `json:"payment_method" binding:"required"`
	ReferenceNumber *string   `json:"reference_number,omitempty"`
	MobileNumber    *string   `json:"mobile_number,omitempty"`
}

func (r CreatePaymentRequest) Details() payment.Details {
	return payment.Details{
		ReferenceNumber: r.ReferenceNumber,
		MobileNumber:    r.MobileNumber,
	}
}

type UpdatePaymentStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
