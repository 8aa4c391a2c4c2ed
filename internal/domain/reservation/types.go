package reservation

import "errors"

var (
	ErrNotPending         = errors.New("reservation is not pending")
	ErrInvalidStatus      = errors.New("invalid reservation status")
	ErrPackageUnavailable = errors.New("package is not available for booking")
)

// Status is the admin-controlled reservation lifecycle state. "declined" is
// the single canonical terminal-failure value; there is no separate
// "cancelled" status.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusDeclined Status = "declined"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusDeclined:
		return true
	default:
		return false
	}
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

// PaymentStatus is a denormalized mirror of the payment's state. Only the
// payment state machine writes it; reservation code never sets it directly.
type PaymentStatus string

const (
	PaymentStatusInProgress PaymentStatus = "In Progress"
	PaymentStatusPaid       PaymentStatus = "Paid"
)

func (s PaymentStatus) String() string {
	return string(s)
}
