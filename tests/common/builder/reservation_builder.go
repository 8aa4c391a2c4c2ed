//go:build unit || e2e

package builder

import (
	"time"

	"festivo/internal/domain/reservation"
	reqdto "festivo/internal/handler/dto/request"
	"festivo/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ReservationBuilder produces a valid booking against the default
// PackageBuilder menu: selections reference options that package offers.
type ReservationBuilder struct {
	FullName           string
	Email              string
	ContactNumber      string
	Address            string
	EventType          string
	EventDate          time.Time
	EventTime          *string
	Venue              string
	GuestCount         int
	SelectedTableType  string
	SelectedChairType  string
	SelectedFoods      []string
	CustomizationNotes string
}

func NewReservationBuilder() *ReservationBuilder {
	eventTime := "17:00"
	return &ReservationBuilder{
		FullName:           "Maria Santos",
		Email:              "maria@example.com",
		ContactNumber:      "0917-555-0101",
		Address:            "123 Mabini St, Quezon City",
		EventType:          "wedding",
		EventDate:          time.Now().AddDate(0, 2, 0),
		EventTime:          &eventTime,
		Venue:              "Fernwood Gardens",
		GuestCount:         120,
		SelectedTableType:  "round",
		SelectedChairType:  "tiffany",
		SelectedFoods:      []string{"lechon belly", "pancit canton"},
		CustomizationNotes: "white and gold motif",
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) BuildInput() reservation.NewReservationInput {
	return reservation.NewReservationInput{
		FullName:      b.FullName,
		Email:         b.Email,
		ContactNumber: b.ContactNumber,
		Address:       b.Address,
		EventType:     b.EventType,
		EventDate:     b.EventDate,
		EventTime:     b.EventTime,
		Venue:         b.Venue,
		GuestCount:    b.GuestCount,
		Customization: reservation.CustomizationSelection{
			TableType: b.SelectedTableType,
			ChairType: b.SelectedChairType,
			FoodNames: b.SelectedFoods,
			Notes:     b.CustomizationNotes,
		},
	}
}

func (b *ReservationBuilder) BuildCreateDTO(packageID uuid.UUID) reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		PackageID:          packageID,
		FullName:           b.FullName,
		Email:              b.Email,
		ContactNumber:      b.ContactNumber,
		Address:            b.Address,
		EventType:          b.EventType,
		EventDate:          b.EventDate,
		EventTime:          b.EventTime,
		Venue:              b.Venue,
		GuestCount:         b.GuestCount,
		SelectedTableType:  b.SelectedTableType,
		SelectedChairType:  b.SelectedChairType,
		SelectedFoods:      b.SelectedFoods,
		CustomizationNotes: b.CustomizationNotes,
	}
}

func (b *ReservationBuilder) BuildReadModel() *queries.ReservationView {
	now := time.Now()
	return &queries.ReservationView{
		ID:            uuid.New(),
		UserID:        uuid.New(),
		PackageID:     uuid.New(),
		PackageName:   "Garden Wedding Package",
		FullName:      b.FullName,
		Email:         b.Email,
		ContactNumber: b.ContactNumber,
		Address:       b.Address,
		EventType:     b.EventType,
		EventDate:     b.EventDate,
		EventTime:     b.EventTime,
		Venue:         b.Venue,
		GuestCount:    int32(b.GuestCount),
		TotalAmount:   decimal.NewFromInt(50000),
		Status:        "pending",
		PaymentStatus: "In Progress",
		Customization: &queries.CustomizationView{
			SelectedTableType: b.SelectedTableType,
			SelectedChairType: b.SelectedChairType,
			SelectedFoods: []queries.FoodOptionView{
				{Name: "lechon belly", Price: decimal.NewFromInt(8000)},
				{Name: "pancit canton", Price: decimal.NewFromInt(1500)},
			},
			Notes: b.CustomizationNotes,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}
