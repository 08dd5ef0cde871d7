//go:build unit || e2e

package builder

import (
	"time"

	dompack "crease/internal/domain/pack"
	"crease/internal/domain/pricing"
	"crease/internal/domain/slot"
	"crease/internal/usecase/shared"

	"github.com/google/uuid"
)

type PackageBuilder struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	TotalSessions int
	UsedSessions  int
	ActivatedAt   time.Time
	ExpiresAt     time.Time
	Status        dompack.Status
	MachineID     *uuid.UUID
	Ball          pricing.BallType
	Pitch         pricing.PitchType
	Timing        slot.Slab
	AmountPaid    int64
}

func NewPackageBuilder() *PackageBuilder {
	now := time.Now()
	return &PackageBuilder{
		ID:            uuid.New(),
		UserID:        uuid.New(),
		TotalSessions: 10,
		UsedSessions:  0,
		ActivatedAt:   now,
		ExpiresAt:     now.AddDate(0, 0, 90),
		Status:        dompack.StatusActive,
		Ball:          pricing.BallTennis,
		Pitch:         pricing.PitchAstro,
		Timing:        dompack.TimingAny,
		AmountPaid:    5000,
	}
}

func (b *PackageBuilder) With(mutate func(*PackageBuilder)) *PackageBuilder {
	mutate(b)
	return b
}

func (b *PackageBuilder) BuildDomain() *dompack.Package {
	return dompack.Reconstruct(
		b.ID, b.UserID, b.TotalSessions, b.UsedSessions,
		b.ActivatedAt, b.ExpiresAt, b.Status,
		dompack.Scope{MachineID: b.MachineID, Ball: b.Ball, Pitch: b.Pitch, Timing: b.Timing},
		b.AmountPaid,
	)
}

func (b *PackageBuilder) BuildSnapshot() *shared.PackageSnapshot {
	return &shared.PackageSnapshot{
		ID:            b.ID,
		UserID:        b.UserID,
		TotalSessions: b.TotalSessions,
		UsedSessions:  b.UsedSessions,
		ActivatedAt:   b.ActivatedAt,
		ExpiresAt:     b.ExpiresAt,
		Status:        string(b.Status),
		MachineID:     b.MachineID,
		Ball:          string(b.Ball),
		Pitch:         string(b.Pitch),
		Timing:        string(b.Timing),
		AmountPaid:    b.AmountPaid,
	}
}
