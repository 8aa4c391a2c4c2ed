package shared

import (
	"context"
	"time"

	"festivo/internal/domain/catalog"
	"festivo/internal/domain/payment"
	"festivo/internal/domain/receipt"
	"festivo/internal/domain/reservation"
	"festivo/internal/domain/user"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Reservations() ReservationRepository
	Payments() PaymentRepository
	Receipts() ReceiptRepository
	Users() UserRepository
	Reads() CommandReads
}

type CommandReads interface {
	PackageByID(ctx context.Context, id uuid.UUID) (*catalog.Package, error)
	ReservationByID(ctx context.Context, id uuid.UUID) (*ReservationSnapshot, error)
	PaymentByID(ctx context.Context, id uuid.UUID) (*payment.Payment, error)
	ReceiptByID(ctx context.Context, id uuid.UUID) (*receipt.Receipt, error)
	ReceiptPathsByReservationID(ctx context.Context, reservationID uuid.UUID) ([]string, error)
	UserByEmail(ctx context.Context, email string) (*user.User, error)
}

// Minimal snapshot for command read operations
type ReservationSnapshot struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	PackageID     uuid.UUID
	TotalAmount   decimal.Decimal
	Status        reservation.Status
	PaymentStatus reservation.PaymentStatus
}

type ReservationRepository interface {
	// Create persists the reservation and its customization; callers run it
	// inside a transaction so both land or neither does.
	Create(ctx context.Context, res *reservation.Reservation, cust *reservation.Customization) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status reservation.Status) error
	// UpdatePaymentStatus writes the denormalized mirror. Only the payment
	// state machine calls it, in the same transaction as the payment write.
	UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status reservation.PaymentStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type PaymentRepository interface {
	Create(ctx context.Context, p *payment.Payment) error
	UpdateStatus(ctx context.Context, p *payment.Payment) error
}

type ReceiptRepository interface {
	Create(ctx context.Context, r *receipt.Receipt) error
	Verify(ctx context.Context, id, adminID uuid.UUID, at time.Time) error
}

type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	UpdateLastLogin(ctx context.Context, userID uuid.UUID, at time.Time) error
}
