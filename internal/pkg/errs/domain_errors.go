package errs

import "errors"

// Domain-specific sentinel errors for CQRS usecase layers
var (
	// Package catalog errors
	ErrPackageNotFound = errors.New("package not found")
	ErrPackageInactive = errors.New("package is not active")

	// Reservation errors
	ErrReservationNotFound   = errors.New("reservation not found")
	ErrReservationNotPending = errors.New("reservation is not pending")

	// Payment errors
	ErrPaymentNotFound  = errors.New("payment not found")
	ErrDuplicatePayment = errors.New("payment already exists for reservation")

	// Receipt errors
	ErrReceiptNotFound    = errors.New("receipt not found")
	ErrDuplicateReceipt   = errors.New("receipt already exists for payment")
	ErrReceiptFileMissing = errors.New("receipt file missing from storage")

	// User errors
	ErrUserNotFound = errors.New("user not found")

	// Authorization errors
	ErrForbidden = errors.New("forbidden")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
