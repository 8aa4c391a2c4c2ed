//go:build unit || e2e

package builder

import (
	"time"

	"festivo/internal/domain/payment"
	reqdto "festivo/internal/handler/dto/request"
	"festivo/internal/pkg/clock"
	"festivo/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PaymentBuilder struct {
	ReservationID   uuid.UUID
	UserID          uuid.UUID
	Method          string
	Amount          decimal.Decimal
	ReferenceNumber *string
	MobileNumber    *string
}

func NewPaymentBuilder() *PaymentBuilder {
	ref := "GC-20260815-0042"
	mobile := "0917-555-0101"
	return &PaymentBuilder{
		ReservationID:   uuid.New(),
		UserID:          uuid.New(),
		Method:          "gcash",
		Amount:          decimal.NewFromInt(50000),
		ReferenceNumber: &ref,
		MobileNumber:    &mobile,
	}
}

func (b *PaymentBuilder) With(mutate func(*PaymentBuilder)) *PaymentBuilder {
	mutate(b)
	return b
}

func (b *PaymentBuilder) WithMethod(method string) *PaymentBuilder {
	b.Method = method
	return b
}

func (b *PaymentBuilder) BuildDomain(clk clock.Clock) (*payment.Payment, error) {
	method, err := payment.NewMethod(b.Method)
	if err != nil {
		return nil, err
	}
	return payment.NewPayment(
		&payment.Services{Clock: clk},
		b.ReservationID, b.UserID, method, b.Amount,
		payment.Details{ReferenceNumber: b.ReferenceNumber, MobileNumber: b.MobileNumber},
	)
}

func (b *PaymentBuilder) BuildCreateDTO() reqdto.CreatePaymentRequest {
	return reqdto.CreatePaymentRequest{
		ReservationID:   b.ReservationID,
		PaymentMethod:   b.Method,
		ReferenceNumber: b.ReferenceNumber,
		MobileNumber:    b.MobileNumber,
	}
}

func (b *PaymentBuilder) BuildReadModel() *queries.PaymentView {
	return &queries.PaymentView{
		ID:              uuid.New(),
		ReservationID:   b.ReservationID,
		UserID:          b.UserID,
		Method:          b.Method,
		Amount:          b.Amount,
		Currency:        "PHP",
		Status:          "In Progress",
		TransactionID:   "TXN-0123456789ABCDEF",
		ReferenceNumber: b.ReferenceNumber,
		MobileNumber:    b.MobileNumber,
		CreatedAt:       time.Now(),
	}
}
