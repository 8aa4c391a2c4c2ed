package reservation

import (
	"time"

	"festivo/internal/domain/catalog"
	"festivo/internal/pkg/clock"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Services struct {
	Clock clock.Clock
}

// Reservation is a customer's booking request for an event, referencing a
// package and carrying the captured customer/event details. status is mutated
// only by admin approve/decline; paymentStatus only by the payment state
// machine.
type Reservation struct {
	id            uuid.UUID
	userID        uuid.UUID
	packageID     uuid.UUID
	customer      CustomerDetails
	event         EventDetails
	totalAmount   decimal.Decimal
	status        Status
	paymentStatus PaymentStatus
	createdAt     time.Time
	updatedAt     time.Time
}

type NewReservationInput struct {
	FullName      string
	Email         string
	ContactNumber string
	Address       string
	EventType     string
	EventDate     time.Time
	EventTime     *string
	Venue         string
	GuestCount    int
	Customization CustomizationSelection
}

// NewReservation validates the booking against the package and builds the
// reservation plus its customization as one unit. Validation stages run in
// order (presence/range, membership, budget); each stage reports all of its
// field failures together. Total amount is the package base price at creation.
func NewReservation(
	services *Services,
	pkg *catalog.Package,
	userID uuid.UUID,
	input NewReservationInput,
) (*Reservation, *Customization, error) {
	if !pkg.IsActive() {
		return nil, nil, ErrPackageUnavailable
	}

	customer, err := NewCustomerDetails(input.FullName, input.Email, input.ContactNumber, input.Address)
	if err != nil {
		return nil, nil, err
	}

	event, err := NewEventDetails(input.EventType, input.EventDate, input.EventTime, input.Venue, input.GuestCount, services.Clock.Now())
	if err != nil {
		return nil, nil, err
	}

	customization, err := newCustomization(pkg, input.Customization)
	if err != nil {
		return nil, nil, err
	}

	res := &Reservation{
		id:            uuid.New(),
		userID:        userID,
		packageID:     pkg.ID(),
		customer:      customer,
		event:         event,
		totalAmount:   pkg.BasePrice(),
		status:        StatusPending,
		paymentStatus: PaymentStatusInProgress,
	}
	customization.reservationID = res.id

	return res, customization, nil
}

func ReconstructReservation(
	id, userID, packageID uuid.UUID,
	customer CustomerDetails,
	event EventDetails,
	totalAmount decimal.Decimal,
	status Status,
	paymentStatus PaymentStatus,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:            id,
		userID:        userID,
		packageID:     packageID,
		customer:      customer,
		event:         event,
		totalAmount:   totalAmount,
		status:        status,
		paymentStatus: paymentStatus,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

func (r *Reservation) Approve() error {
	if r.status != StatusPending {
		return ErrNotPending
	}
	r.status = StatusApproved
	return nil
}

func (r *Reservation) Decline() error {
	if r.status != StatusPending {
		return ErrNotPending
	}
	r.status = StatusDeclined
	return nil
}

func (r *Reservation) IsOwnedBy(userID uuid.UUID) bool {
	return r.userID == userID
}

func (r *Reservation) ID() uuid.UUID                 { return r.id }
func (r *Reservation) UserID() uuid.UUID             { return r.userID }
func (r *Reservation) PackageID() uuid.UUID          { return r.packageID }
func (r *Reservation) Customer() CustomerDetails     { return r.customer }
func (r *Reservation) Event() EventDetails           { return r.event }
func (r *Reservation) TotalAmount() decimal.Decimal  { return r.totalAmount }
func (r *Reservation) Status() Status                { return r.status }
func (r *Reservation) PaymentStatus() PaymentStatus  { return r.paymentStatus }
func (r *Reservation) CreatedAt() time.Time          { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time          { return r.updatedAt }
