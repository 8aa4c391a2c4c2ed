package response

import (
	"time"

	"festivo/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

type TotalRevenueResponse struct {
	Total        decimal.Decimal `json:"total"`
	PaymentCount int64           `json:"paymentCount"`
}

type MethodRevenueResponse struct {
	Method       string          `json:"method"`
	Revenue      decimal.Decimal `json:"revenue"`
	PaymentCount int64           `json:"paymentCount"`
}

type PeriodRevenueResponse struct {
	Period       string          `json:"period"`
	Revenue      decimal.Decimal `json:"revenue"`
	PaymentCount int64           `json:"paymentCount"`
}

type PaidReservationResponse struct {
	ReservationID uuid.UUID       `json:"reservationId"`
	FullName      string          `json:"fullName"`
	EventType     string          `json:"eventType"`
	EventDate     time.Time       `json:"eventDate"`
	Amount        decimal.Decimal `json:"amount"`
	Method        string          `json:"paymentMethod"`
	PaidAt        time.Time       `json:"paidAt"`
}

func FromTotalRevenue(rm *queries.TotalRevenue) *TotalRevenueResponse {
	var resp TotalRevenueResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}

func FromMethodRevenues(rms []queries.MethodRevenue) []*MethodRevenueResponse {
	resp := make([]*MethodRevenueResponse, len(rms))
	for i := range rms {
		var item MethodRevenueResponse
		_ = copier.Copy(&item, &rms[i])
		resp[i] = &item
	}
	return resp
}

func FromPeriodRevenues(rms []queries.PeriodRevenue) []*PeriodRevenueResponse {
	resp := make([]*PeriodRevenueResponse, len(rms))
	for i := range rms {
		var item PeriodRevenueResponse
		_ = copier.Copy(&item, &rms[i])
		resp[i] = &item
	}
	return resp
}

func FromPaidReservations(rms []queries.PaidReservationItem) []*PaidReservationResponse {
	resp := make([]*PaidReservationResponse, len(rms))
	for i := range rms {
		var item PaidReservationResponse
		_ = copier.Copy(&item, &rms[i])
		resp[i] = &item
	}
	return resp
}
