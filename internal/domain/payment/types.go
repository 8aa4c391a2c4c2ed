package payment

import "errors"

var (
	ErrInvalidStatus = errors.New("invalid payment status")
	ErrInvalidMethod = errors.New("invalid payment method")
)

// Status is the canonical payment state. Exactly two values exist; any other
// string is rejected as a caller bug, never stored.
type Status string

const (
	StatusInProgress Status = "In Progress"
	StatusPaid       Status = "Paid"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusInProgress, StatusPaid:
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

// Method is the closed set of self-reported payment methods. Methods are
// verified out of band; there is no gateway integration.
type Method string

const (
	MethodCash         Method = "cash"
	MethodGCash        Method = "gcash"
	MethodBankTransfer Method = "bank_transfer"
)

func (m Method) String() string {
	return string(m)
}

func (m Method) IsValid() bool {
	switch m {
	case MethodCash, MethodGCash, MethodBankTransfer:
		return true
	default:
		return false
	}
}

func NewMethod(s string) (Method, error) {
	method := Method(s)
	if !method.IsValid() {
		return "", ErrInvalidMethod
	}
	return method, nil
}

// RequiresReference reports whether the method needs a user-supplied
// reference number for later manual verification.
func (m Method) RequiresReference() bool {
	return m == MethodGCash || m == MethodBankTransfer
}

// RequiresMobileNumber reports whether the method needs the payer's mobile
// number (GCash wallets are keyed by it).
func (m Method) RequiresMobileNumber() bool {
	return m == MethodGCash
}

// SettlesImmediately reports whether a payment with this method is trusted as
// collected at creation. Cash is collected at the venue.
func (m Method) SettlesImmediately() bool {
	return m == MethodCash
}

// Currency is fixed; multi-currency is out of scope.
const Currency = "PHP"
