package pack

import (
	"errors"
	"time"

	"crease/internal/domain/pricing"
	"crease/internal/domain/slot"

	"github.com/google/uuid"
)

var (
	ErrNotOwner             = errors.New("package does not belong to user")
	ErrNotActive            = errors.New("package is not active")
	ErrExpired              = errors.New("package has expired")
	ErrInsufficientSessions = errors.New("insufficient sessions remaining")
	ErrScopeMismatch        = errors.New("request is outside package scope")
	ErrMachineMismatch      = errors.New("package is locked to a different machine")
	ErrInvalidSessionCount  = errors.New("session count must be positive")
	ErrSessionsExhausted    = errors.New("used sessions cannot exceed total sessions")
)

type Status string

const (
	StatusActive    Status = "ACTIVE"
	StatusExpired   Status = "EXPIRED"
	StatusCancelled Status = "CANCELLED"
)

// TimingAny means the package is not restricted to a slab.
const TimingAny slot.Slab = "any"

// Scope is the attribute set the package was sold for.
type Scope struct {
	MachineID *uuid.UUID
	Ball      pricing.BallType
	Pitch     pricing.PitchType
	Timing    slot.Slab
}

// Package is a prepaid bundle of sessions.
type Package struct {
	id            uuid.UUID
	userID        uuid.UUID
	totalSessions int
	usedSessions  int
	activatedAt   time.Time
	expiresAt     time.Time
	status        Status
	scope         Scope
	amountPaid    int64
}

func NewPackage(userID uuid.UUID, totalSessions int, activatedAt, expiresAt time.Time, scope Scope, amountPaid int64) (*Package, error) {
	if totalSessions <= 0 {
		return nil, ErrInvalidSessionCount
	}
	if !expiresAt.After(activatedAt) {
		return nil, errors.New("expiry must be after activation")
	}
	return &Package{
		id:            uuid.New(),
		userID:        userID,
		totalSessions: totalSessions,
		activatedAt:   activatedAt,
		expiresAt:     expiresAt,
		status:        StatusActive,
		scope:         scope,
		amountPaid:    amountPaid,
	}, nil
}

func Reconstruct(id, userID uuid.UUID, totalSessions, usedSessions int, activatedAt, expiresAt time.Time, status Status, scope Scope, amountPaid int64) *Package {
	return &Package{
		id:            id,
		userID:        userID,
		totalSessions: totalSessions,
		usedSessions:  usedSessions,
		activatedAt:   activatedAt,
		expiresAt:     expiresAt,
		status:        status,
		scope:         scope,
		amountPaid:    amountPaid,
	}
}

func (p *Package) ID() uuid.UUID        { return p.id }
func (p *Package) UserID() uuid.UUID    { return p.userID }
func (p *Package) TotalSessions() int   { return p.totalSessions }
func (p *Package) UsedSessions() int    { return p.usedSessions }
func (p *Package) ActivatedAt() time.Time { return p.activatedAt }
func (p *Package) ExpiresAt() time.Time { return p.expiresAt }
func (p *Package) Scope() Scope         { return p.scope }
func (p *Package) AmountPaid() int64    { return p.amountPaid }

func (p *Package) Remaining() int {
	return p.totalSessions - p.usedSessions
}

// EffectiveStatus applies lazy expiry: a stored ACTIVE flag is overruled the
// moment the expiry date has passed.
func (p *Package) EffectiveStatus(now time.Time) Status {
	if p.status == StatusActive && p.expiresAt.Before(now) {
		return StatusExpired
	}
	return p.status
}

// ConsumeSessions records n sessions as used. Capacity must already have been
// validated; the invariant usedSessions <= totalSessions still holds here.
func (p *Package) ConsumeSessions(n int) error {
	if n <= 0 {
		return ErrInvalidSessionCount
	}
	if p.usedSessions+n > p.totalSessions {
		return ErrSessionsExhausted
	}
	p.usedSessions += n
	return nil
}
