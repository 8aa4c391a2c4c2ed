package queries

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Read models (DTO for read side)

type FoodOptionView struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

type PackageView struct {
	ID              uuid.UUID        `json:"id"`
	Name            string           `json:"name"`
	Description     string           `json:"description"`
	BasePrice       decimal.Decimal  `json:"base_price"`
	Category        string           `json:"category"`
	IsActive        bool             `json:"is_active"`
	AvailableTables []string         `json:"available_tables"`
	AvailableChairs []string         `json:"available_chairs"`
	AvailableFoods  []FoodOptionView `json:"available_foods"`
	CreatedAt       time.Time        `json:"created_at"`
}

type CustomizationView struct {
	SelectedTableType string           `json:"selected_table_type"`
	SelectedChairType string           `json:"selected_chair_type"`
	SelectedFoods     []FoodOptionView `json:"selected_foods"`
	Notes             string           `json:"customization_notes"`
}

type ReservationView struct {
	ID            uuid.UUID          `json:"id"`
	UserID        uuid.UUID          `json:"user_id"`
	PackageID     uuid.UUID          `json:"package_id"`
	PackageName   string             `json:"package_name"`
	FullName      string             `json:"full_name"`
	Email         string             `json:"email"`
	ContactNumber string             `json:"contact_number"`
	Address       string             `json:"address"`
	EventType     string             `json:"event_type"`
	EventDate     time.Time          `json:"event_date"`
	EventTime     *string            `json:"event_time,omitempty"`
	Venue         string             `json:"venue"`
	GuestCount    int32              `json:"guest_count"`
	TotalAmount   decimal.Decimal    `json:"total_amount"`
	Status        string             `json:"status"`
	PaymentStatus string             `json:"payment_status"`
	Customization *CustomizationView `json:"customization,omitempty"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
}

type ReservationListItem struct {
	ID            uuid.UUID       `json:"id"`
	UserID        uuid.UUID       `json:"user_id"`
	PackageName   string          `json:"package_name"`
	FullName      string          `json:"full_name"`
	EventType     string          `json:"event_type"`
	EventDate     time.Time       `json:"event_date"`
	Venue         string          `json:"venue"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	Status        string          `json:"status"`
	PaymentStatus string          `json:"payment_status"`
	CreatedAt     time.Time       `json:"created_at"`
}

type PaymentView struct {
	ID              uuid.UUID       `json:"id"`
	ReservationID   uuid.UUID       `json:"reservation_id"`
	UserID          uuid.UUID       `json:"user_id"`
	Method          string          `json:"payment_method"`
	Amount          decimal.Decimal `json:"amount"`
	Currency        string          `json:"currency"`
	Status          string          `json:"status"`
	TransactionID   string          `json:"transaction_id"`
	ReferenceNumber *string         `json:"reference_number,omitempty"`
	MobileNumber    *string         `json:"mobile_number,omitempty"`
	PaidAt          *time.Time      `json:"paid_at,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
}

type ReceiptView struct {
	ID            uuid.UUID  `json:"id"`
	PaymentID     uuid.UUID  `json:"payment_id"`
	ReservationID uuid.UUID  `json:"reservation_id"`
	FileName      string     `json:"file_name"`
	FileType      string     `json:"file_type"`
	FilePath      string     `json:"-"`
	UploadedAt    time.Time  `json:"uploaded_at"`
	Verified      bool       `json:"verified"`
	VerifiedAt    *time.Time `json:"verified_at,omitempty"`
}

type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	FullName string    `json:"full_name"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}

// Revenue read models. InProgress payments never appear in any of these.

type TotalRevenue struct {
	Total        decimal.Decimal `json:"total"`
	PaymentCount int64           `json:"payment_count"`
}

type MethodRevenue struct {
	Method       string          `json:"method"`
	Revenue      decimal.Decimal `json:"revenue"`
	PaymentCount int64           `json:"payment_count"`
}

type PeriodRevenue struct {
	Period       string          `json:"period"`
	Revenue      decimal.Decimal `json:"revenue"`
	PaymentCount int64           `json:"payment_count"`
}

type PaidReservationItem struct {
	ReservationID uuid.UUID       `json:"reservation_id"`
	FullName      string          `json:"full_name"`
	EventType     string          `json:"event_type"`
	EventDate     time.Time       `json:"event_date"`
	Amount        decimal.Decimal `json:"amount"`
	Method        string          `json:"payment_method"`
	PaidAt        time.Time       `json:"paid_at"`
}

// DateRange is an optional inclusive [Start, End] filter over paid_at,
// expressed as calendar dates.
type DateRange struct {
	Start *time.Time
	End   *time.Time
}
