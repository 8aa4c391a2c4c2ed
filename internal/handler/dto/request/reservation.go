package request

import (
	"time"

	"festivo/internal/domain/reservation"

	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	PackageID          uuid.UUID `json:"package_id" binding:"required"`
	FullName           string    `json:"full_name"`
	Email              string    `json:"email"`
	ContactNumber      string    `json:"contact_number"`
	Address            string    `json:"address"`
	EventType          string    `json:"event_type"`
	EventDate          time.Time `json:"event_date"`
	EventTime          *string   `json:"event_time,omitempty"`
	Venue              string    `json:"venue"`
	GuestCount         int       `json:"guest_count"`
	SelectedTableType  string    `json:"selected_table_type"`
	SelectedChairType  string    `json:"selected_chair_type"`
	SelectedFoods      []string  `json:"selected_foods"`
	CustomizationNotes string    `json:"customization_notes"`
}

func (r CreateReservationRequest) ToDomain() reservation.NewReservationInput {
	return reservation.NewReservationInput{
		FullName:      r.FullName,
		Email:         r.Email,
		ContactNumber: r.ContactNumber,
		Address:       r.Address,
		EventType:     r.EventType,
		EventDate:     r.EventDate,
		EventTime:     r.EventTime,
		Venue:         r.Venue,
		GuestCount:    r.GuestCount,
		Customization: reservation.CustomizationSelection{
			TableType: r.SelectedTableType,
			ChairType: r.SelectedChairType,
			FoodNames: r.SelectedFoods,
			Notes:     r.CustomizationNotes,
		},
	}
}

type UpdateReservationStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
