package subscription

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotOwner             = errors.New("subscription does not belong to user")
	ErrNotActive            = errors.New("subscription is not active")
	ErrExpired              = errors.New("subscription has expired")
	ErrInsufficientSessions = errors.New("insufficient subscription sessions remaining")
	ErrInvalidSessionCount  = errors.New("session count must be positive")
)

type Status string

const (
	StatusActive  Status = "ACTIVE"
	StatusExpired Status = "EXPIRED"
)

// Plan is the monthly allotment definition a subscription is issued against.
type Plan struct {
	ID               uuid.UUID
	Name             string
	SessionsPerMonth int
	PricePerMonth    int64
}

// Subscription is one month's allotment for a (user, plan) pair. MonthYear is
// the calendar month it funds, formatted 2006-01 in facility time.
type Subscription struct {
	id                uuid.UUID
	userID            uuid.UUID
	planID            uuid.UUID
	sessionsRemaining int
	monthYear         string
	expiresAt         time.Time
	status            Status
}

func New(userID uuid.UUID, plan Plan, monthYear string, expiresAt time.Time) *Subscription {
	return &Subscription{
		id:                uuid.New(),
		userID:            userID,
		planID:            plan.ID,
		sessionsRemaining: plan.SessionsPerMonth,
		monthYear:         monthYear,
		expiresAt:         expiresAt,
		status:            StatusActive,
	}
}

func Reconstruct(id, userID, planID uuid.UUID, sessionsRemaining int, monthYear string, expiresAt time.Time, status Status) *Subscription {
	return &Subscription{
		id:                id,
		userID:            userID,
		planID:            planID,
		sessionsRemaining: sessionsRemaining,
		monthYear:         monthYear,
		expiresAt:         expiresAt,
		status:            status,
	}
}

func (s *Subscription) ID() uuid.UUID          { return s.id }
func (s *Subscription) UserID() uuid.UUID      { return s.userID }
func (s *Subscription) PlanID() uuid.UUID      { return s.planID }
func (s *Subscription) SessionsRemaining() int { return s.sessionsRemaining }
func (s *Subscription) MonthYear() string      { return s.monthYear }
func (s *Subscription) ExpiresAt() time.Time   { return s.expiresAt }

// EffectiveStatus applies lazy expiry at read time.
func (s *Subscription) EffectiveStatus(now time.Time) Status {
	if s.status == StatusActive && s.expiresAt.Before(now) {
		return StatusExpired
	}
	return s.status
}

// ValidateUse checks the subscription can fund n sessions right now.
func (s *Subscription) ValidateUse(userID uuid.UUID, n int, now time.Time) error {
	if n <= 0 {
		return ErrInvalidSessionCount
	}
	if s.userID != userID {
		return ErrNotOwner
	}
	switch s.EffectiveStatus(now) {
	case StatusExpired:
		return ErrExpired
	case StatusActive:
	default:
		return ErrNotActive
	}
	if s.sessionsRemaining < n {
		return ErrInsufficientSessions
	}
	return nil
}

// DebitSessions reduces the balance, never below zero. Capacity is validated
// by the caller beforehand; this does not re-check.
func (s *Subscription) DebitSessions(n int) {
	s.sessionsRemaining -= n
	if s.sessionsRemaining < 0 {
		s.sessionsRemaining = 0
	}
}

// CreditSession restores one session on cancellation, clamped to the plan cap.
// It only applies while the subscription is still active and the credit lands
// in the same calendar month as the subscription's expiry.
func (s *Subscription) CreditSession(plan Plan, now time.Time) bool {
	if s.EffectiveStatus(now) != StatusActive {
		return false
	}
	if !sameCalendarMonth(s.expiresAt, now) {
		return false
	}
	if s.sessionsRemaining < plan.SessionsPerMonth {
		s.sessionsRemaining++
	}
	return true
}

// sameCalendarMonth compares both instants on the expiry's calendar. The
// expiry carries the facility zone, so a server clock running in another zone
// cannot misjudge the facility month around its boundaries.
func sameCalendarMonth(a, b time.Time) bool {
	b = b.In(a.Location())
	return a.Year() == b.Year() && a.Month() == b.Month()
}
