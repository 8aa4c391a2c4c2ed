package payment

import (
	"encoding/hex"
	"strings"
	"time"

	"festivo/internal/pkg/clock"
	"festivo/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Services struct {
	Clock clock.Clock
}

// Details carries the method-specific fields submitted with a payment.
type Details struct {
	ReferenceNumber *string
	MobileNumber    *string
}

// validate enforces the method-keyed required fields: gcash needs a reference
// number and mobile number, bank transfers a reference number, cash nothing.
func (d Details) validate(method Method) error {
	fe := errs.FieldErrors{}

	if method.RequiresReference() {
		if d.ReferenceNumber == nil || strings.TrimSpace(*d.ReferenceNumber) == "" {
			fe.Add("reference_number", "reference number is required for "+method.String())
		}
	}
	if method.RequiresMobileNumber() {
		if d.MobileNumber == nil || strings.TrimSpace(*d.MobileNumber) == "" {
			fe.Add("mobile_number", "mobile number is required for "+method.String())
		}
	}

	if fe.HasErrors() {
		return fe
	}
	return nil
}

// Payment is the record of funds owed or collected for a reservation. At most
// one payment exists per reservation; the database enforces that with a
// unique index, this entity only models the state machine.
type Payment struct {
	id              uuid.UUID
	reservationID   uuid.UUID
	userID          uuid.UUID
	method          Method
	amount          decimal.Decimal
	currency        string
	status          Status
	transactionID   string
	referenceNumber *string
	mobileNumber    *string
	paidAt          *time.Time
	createdAt       time.Time
	updatedAt       time.Time
}

// NewPayment creates a payment for a reservation. The amount is captured from
// the reservation at this moment and never re-read, guarding against later
// package price changes. Cash settles immediately (Paid, paid_at set);
// gcash and bank transfers start In Progress pending manual verification.
func NewPayment(
	services *Services,
	reservationID, userID uuid.UUID,
	method Method,
	amount decimal.Decimal,
	details Details,
) (*Payment, error) {
	if !method.IsValid() {
		return nil, ErrInvalidMethod
	}
	if err := details.validate(method); err != nil {
		return nil, err
	}

	p := &Payment{
		id:              uuid.New(),
		reservationID:   reservationID,
		userID:          userID,
		method:          method,
		amount:          amount,
		currency:        Currency,
		status:          StatusInProgress,
		transactionID:   generateTransactionID(),
		referenceNumber: trimPtr(details.ReferenceNumber),
		mobileNumber:    trimPtr(details.MobileNumber),
	}

	if method.SettlesImmediately() {
		now := services.Clock.Now()
		p.status = StatusPaid
		p.paidAt = &now
	}

	return p, nil
}

func ReconstructPayment(
	id, reservationID, userID uuid.UUID,
	method Method,
	amount decimal.Decimal,
	currency string,
	status Status,
	transactionID string,
	referenceNumber, mobileNumber *string,
	paidAt *time.Time,
	createdAt, updatedAt time.Time,
) *Payment {
	return &Payment{
		id:              id,
		reservationID:   reservationID,
		userID:          userID,
		method:          method,
		amount:          amount,
		currency:        currency,
		status:          status,
		transactionID:   transactionID,
		referenceNumber: referenceNumber,
		mobileNumber:    mobileNumber,
		paidAt:          paidAt,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

// UpdateStatus moves the payment to the given canonical state. Any other
// value is a caller bug and mutates nothing. Transitioning to Paid stamps
// paid_at; back to In Progress clears it. Persistence must mirror the new
// state onto the reservation in the same transaction.
func (p *Payment) UpdateStatus(status Status, now time.Time) error {
	if !status.IsValid() {
		return ErrInvalidStatus
	}

	p.status = status
	if status == StatusPaid {
		p.paidAt = &now
	} else {
		p.paidAt = nil
	}
	return nil
}

func (p *Payment) MarkAsPaid(now time.Time) error {
	return p.UpdateStatus(StatusPaid, now)
}

func (p *Payment) MarkAsInProgress() error {
	return p.UpdateStatus(StatusInProgress, time.Time{})
}

func (p *Payment) IsPaid() bool {
	return p.status == StatusPaid
}

func (p *Payment) IsInProgress() bool {
	return p.status == StatusInProgress
}

func (p *Payment) IsOwnedBy(userID uuid.UUID) bool {
	return p.userID == userID
}

func (p *Payment) ID() uuid.UUID            { return p.id }
func (p *Payment) ReservationID() uuid.UUID { return p.reservationID }
func (p *Payment) UserID() uuid.UUID        { return p.userID }
func (p *Payment) Method() Method           { return p.method }
func (p *Payment) Amount() decimal.Decimal  { return p.amount }
func (p *Payment) CurrencyCode() string     { return p.currency }
func (p *Payment) Status() Status           { return p.status }
func (p *Payment) TransactionID() string    { return p.transactionID }
func (p *Payment) ReferenceNumber() *string { return p.referenceNumber }
func (p *Payment) MobileNumber() *string    { return p.mobileNumber }
func (p *Payment) PaidAt() *time.Time       { return p.paidAt }
func (p *Payment) CreatedAt() time.Time     { return p.createdAt }
func (p *Payment) UpdatedAt() time.Time     { return p.updatedAt }

// generateTransactionID derives a unique human-quotable id from a fresh UUID.
func generateTransactionID() string {
	id := uuid.New()
	return "TXN-" + strings.ToUpper(hex.EncodeToString(id[:8]))
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
