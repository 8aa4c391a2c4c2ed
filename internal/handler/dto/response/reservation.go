package response

import (
	"time"

	"festivo/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

type CustomizationResponse struct {
	SelectedTableType string               `json:"selectedTableType"`
	SelectedChairType string               `json:"selectedChairType"`
	SelectedFoods     []FoodOptionResponse `json:"selectedFoods"`
	Notes             string               `json:"customizationNotes"`
}

type ReservationResponse struct {
	ID            uuid.UUID              `json:"id"`
	UserID        uuid.UUID              `json:"userId"`
	PackageID     uuid.UUID              `json:"packageId"`
	PackageName   string                 `json:"packageName"`
	FullName      string                 `json:"fullName"`
	Email         string                 `json:"email"`
	ContactNumber string                 `json:"contactNumber"`
	Address       string                 `json:"address"`
	EventType     string                 `json:"eventType"`
	EventDate     time.Time              `json:"eventDate"`
	EventTime     *string                `json:"eventTime,omitempty"`
	Venue         string                 `json:"venue"`
	GuestCount    int32                  `json:"guestCount"`
	TotalAmount   decimal.Decimal        `json:"totalAmount"`
	Status        string                 `json:"status"`
	PaymentStatus string                 `json:"paymentStatus"`
	Customization *CustomizationResponse `json:"customization,omitempty"`
	CreatedAt     time.Time              `json:"createdAt"`
	UpdatedAt     time.Time              `json:"updatedAt"`
}

type ReservationListResponse struct {
	ID            uuid.UUID       `json:"id"`
	UserID        uuid.UUID       `json:"userId"`
	PackageName   string          `json:"packageName"`
	FullName      string          `json:"fullName"`
	EventType     string          `json:"eventType"`
	EventDate     time.Time       `json:"eventDate"`
	Venue         string          `json:"venue"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	Status        string          `json:"status"`
	PaymentStatus string          `json:"paymentStatus"`
	CreatedAt     time.Time       `json:"createdAt"`
}

func FromReservationView(rm *queries.ReservationView) *ReservationResponse {
	var resp ReservationResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}

func FromReservationListItems(rms []queries.ReservationListItem) []*ReservationListResponse {
	resp := make([]*ReservationListResponse, len(rms))
	for i := range rms {
		var item ReservationListResponse
		_ = copier.Copy(&item, &rms[i])
		resp[i] = &item
	}
	return resp
}
