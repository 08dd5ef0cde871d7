package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

// FreeSlot is one bookable window with its resolved price and slab label.
type FreeSlot struct {
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Slab      string    `json:"slab"`
	Price     int64     `json:"price"`
}

type MachineView struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Kind           string    `json:"kind"`
	LeatherCapable bool      `json:"leather_capable"`
}

type BookingView struct {
	ID             uuid.UUID  `json:"id"`
	UserID         uuid.UUID  `json:"user_id"`
	MachineID      uuid.UUID  `json:"machine_id"`
	MachineName    string     `json:"machine_name"`
	StartTime      time.Time  `json:"start_time"`
	EndTime        time.Time  `json:"end_time"`
	BallType       string     `json:"ball_type"`
	PitchType      string     `json:"pitch_type"`
	Status         string     `json:"status"`
	Price          int64      `json:"price"`
	OriginalPrice  int64      `json:"original_price"`
	DiscountAmount int64      `json:"discount_amount"`
	DiscountType   *string    `json:"discount_type,omitempty"`
	FundingKind    string     `json:"funding_kind"`
	PackageID      *uuid.UUID `json:"package_id,omitempty"`
	SubscriptionID *uuid.UUID `json:"subscription_id,omitempty"`
	PaymentID      *uuid.UUID `json:"payment_id,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

type BookingListItem struct {
	ID          uuid.UUID `json:"id"`
	MachineID   uuid.UUID `json:"machine_id"`
	MachineName string    `json:"machine_name"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	Status      string    `json:"status"`
	Price       int64     `json:"price"`
	CreatedAt   time.Time `json:"created_at"`
}

type PackageView struct {
	ID                uuid.UUID  `json:"id"`
	UserID            uuid.UUID  `json:"user_id"`
	TotalSessions     int        `json:"total_sessions"`
	UsedSessions      int        `json:"used_sessions"`
	RemainingSessions int        `json:"remaining_sessions"`
	ActivatedAt       time.Time  `json:"activated_at"`
	ExpiresAt         time.Time  `json:"expires_at"`
	Status            string     `json:"status"`
	MachineID         *uuid.UUID `json:"machine_id,omitempty"`
	BallType          string     `json:"ball_type"`
	PitchType         string     `json:"pitch_type"`
	Timing            string     `json:"timing"`
	AmountPaid        int64      `json:"amount_paid"`
}

type SubscriptionView struct {
	ID                uuid.UUID `json:"id"`
	UserID            uuid.UUID `json:"user_id"`
	PlanID            uuid.UUID `json:"plan_id"`
	PlanName          string    `json:"plan_name"`
	SessionsPerMonth  int       `json:"sessions_per_month"`
	SessionsRemaining int       `json:"sessions_remaining"`
	MonthYear         string    `json:"month_year"`
	ExpiresAt         time.Time `json:"expires_at"`
	Status            string    `json:"status"`
}

type PlanView struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	SessionsPerMonth int       `json:"sessions_per_month"`
	PricePerMonth    int64     `json:"price_per_month"`
}
