package response

import (
	"time"

	"festivo/internal/domain/payment"
	"festivo/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

type PaymentResponse struct {
	ID              uuid.UUID       `json:"id"`
	ReservationID   uuid.UUID       `json:"reservationId"`
	Method          string          `json:"paymentMethod"`
	Amount          decimal.Decimal `json:"amount"`
	Currency        string          `json:"currency"`
	Status          string          `json:"status"`
	TransactionID   string          `json:"transactionId"`
	ReferenceNumber *string         `json:"referenceNumber,omitempty"`
	MobileNumber    *string         `json:"mobileNumber,omitempty"`
	PaidAt          *time.Time      `json:"paidAt,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
}

type MethodInfoResponse struct {
	Method        string `json:"method"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	Details       string `json:"details"`
	AccountNumber string `json:"accountNumber,omitempty"`
}

func FromPaymentView(rm *queries.PaymentView) *PaymentResponse {
	var resp PaymentResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}

func FromMethodInfos(infos []payment.MethodInfo) []*MethodInfoResponse {
	resp := make([]*MethodInfoResponse, len(infos))
	for i, info := range infos {
		resp[i] = &MethodInfoResponse{
			Method:        info.Method.String(),
			Name:          info.Name,
			Description:   info.Description,
			Details:       info.Details,
			AccountNumber: info.AccountNumber,
		}
	}
	return resp
}
