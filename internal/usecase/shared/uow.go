package shared

import (
	"context"
	"time"

	"crease/internal/domain/booking"
	"crease/internal/domain/pack"
	"crease/internal/domain/payment"
	"crease/internal/domain/subscription"
	"crease/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Bookings() BookingRepository
	Packages() PackageRepository
	Subscriptions() SubscriptionRepository
	Payments() PaymentRepository
	Reads() CommandReads
	DB() db.DBTX
}

// CommandReads are the minimal reads commands need for validation. Inside a
// transaction they observe the transaction's snapshot, so lazy expiry checks
// and balance reads stay consistent with the writes that follow.
type CommandReads interface {
	MachineByID(ctx context.Context, id uuid.UUID) (*MachineSnapshot, error)
	PackageByID(ctx context.Context, id uuid.UUID) (*PackageSnapshot, error)
	SubscriptionByID(ctx context.Context, id uuid.UUID) (*SubscriptionSnapshot, error)
	PlanByID(ctx context.Context, id uuid.UUID) (*PlanSnapshot, error)
	// PaymentByIDForUpdate row-locks the payment so a concurrent link attempt
	// serializes behind this transaction.
	PaymentByIDForUpdate(ctx context.Context, id uuid.UUID) (*PaymentSnapshot, error)
	// PaymentLinked reports whether any booking already references the payment.
	// Paired with the row lock above it makes direct-pay funding link-once:
	// committed links are visible here, in-flight ones wait on the lock.
	PaymentLinked(ctx context.Context, id uuid.UUID) (bool, error)
	BookingByID(ctx context.Context, id uuid.UUID) (*BookingSnapshot, error)
}

type BookingRepository interface {
	Insert(ctx context.Context, b *booking.Booking) (uuid.UUID, error)
	// UpdateStatus transitions from->to; zero rows affected means the booking
	// was not in the expected state.
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to booking.Status) error
}

type PackageRepository interface {
	Insert(ctx context.Context, p *pack.Package) (uuid.UUID, error)
	// ConsumeSessions increments used_sessions with a capacity guard in SQL;
	// exceeding total_sessions surfaces as a conflict.
	ConsumeSessions(ctx context.Context, id uuid.UUID, n int) error
	InsertPackageBooking(ctx context.Context, packageID, bookingID uuid.UUID, sessionsUsed int, extraCharge int64, extraChargeKind string) error
}

type SubscriptionRepository interface {
	Insert(ctx context.Context, s *subscription.Subscription) (uuid.UUID, error)
	// DebitSessions decrements with a floor guard in SQL; insufficient balance
	// surfaces as a conflict.
	DebitSessions(ctx context.Context, id uuid.UUID, n int) error
	// CreditSession restores one session clamped to the plan cap.
	CreditSession(ctx context.Context, id uuid.UUID, sessionsPerMonth int) error
}

type PaymentRepository interface {
	Insert(ctx context.Context, p *payment.Payment) (uuid.UUID, error)
	SetStatusByGatewayRef(ctx context.Context, gatewayRef string, status payment.Status) (uuid.UUID, error)
}

type MachineSnapshot struct {
	ID             uuid.UUID
	Name           string
	Kind           string
	LeatherCapable bool
	Active         bool
}

type PackageSnapshot struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	TotalSessions int
	UsedSessions  int
	ActivatedAt   time.Time
	ExpiresAt     time.Time
	Status        string
	MachineID     *uuid.UUID
	Ball          string
	Pitch         string
	Timing        string
	AmountPaid    int64
}

type SubscriptionSnapshot struct {
	ID                uuid.UUID
	UserID            uuid.UUID
	PlanID            uuid.UUID
	SessionsRemaining int
	MonthYear         string
	ExpiresAt         time.Time
	Status            string
}

type PlanSnapshot struct {
	ID               uuid.UUID
	Name             string
	SessionsPerMonth int
	PricePerMonth    int64
}

type PaymentSnapshot struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	GatewayRef string
	Amount     int64
	Status     string
}

type BookingSnapshot struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	MachineID      uuid.UUID
	StartTime      time.Time
	EndTime        time.Time
	Status         string
	FundingKind    string
	PackageID      *uuid.UUID
	SubscriptionID *uuid.UUID
	PaymentID      *uuid.UUID
}
