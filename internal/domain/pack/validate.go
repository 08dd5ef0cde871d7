package pack

import (
	"time"

	"crease/internal/domain/pricing"
	"crease/internal/domain/slot"

	"github.com/google/uuid"
)

// UseRequest describes the booking a package is asked to fund.
type UseRequest struct {
	UserID    uuid.UUID
	Ball      pricing.BallType
	Pitch     pricing.PitchType
	Slab      slot.Slab
	Sessions  int
	MachineID *uuid.UUID
}

// UseQuote is the advisory result of validation: the booking may proceed,
// possibly with an extra charge. No mutation happens here; the actual debit is
// the reconciler's job.
type UseQuote struct {
	ExtraCharge     int64
	ExtraChargeKind SurchargeKind
}

// ValidateUse runs the validation sequence; the first failing check wins and
// the whole request fails closed.
func (p *Package) ValidateUse(req UseRequest, surcharges SurchargeTable, now time.Time) (*UseQuote, error) {
	if req.Sessions <= 0 {
		return nil, ErrInvalidSessionCount
	}
	if p.userID != req.UserID {
		return nil, ErrNotOwner
	}
	if status := p.EffectiveStatus(now); status != StatusActive {
		if status == StatusExpired {
			return nil, ErrExpired
		}
		return nil, ErrNotActive
	}
	if p.Remaining() < req.Sessions {
		return nil, ErrInsufficientSessions
	}

	quote := &UseQuote{}

	if p.scope.Ball != req.Ball {
		s, ok := surcharges.ballUpgrade(p.scope.Ball, req.Ball)
		if !ok {
			return nil, ErrScopeMismatch
		}
		quote.apply(s, req.Sessions)
	}

	if p.scope.Pitch != req.Pitch {
		s, ok := surcharges.pitchUpgrade(p.scope.Pitch, req.Pitch)
		if !ok {
			return nil, ErrScopeMismatch
		}
		quote.apply(s, req.Sessions)
	}

	if p.scope.Timing != TimingAny && p.scope.Timing != req.Slab {
		s, ok := surcharges.timingUpgrade(req.Slab)
		if !ok {
			return nil, ErrScopeMismatch
		}
		quote.apply(s, req.Sessions)
	}

	if req.MachineID != nil && p.scope.MachineID != nil && *req.MachineID != *p.scope.MachineID {
		return nil, ErrMachineMismatch
	}

	return quote, nil
}

func (q *UseQuote) apply(s Surcharge, sessions int) {
	q.ExtraCharge += s.AmountPerSession * int64(sessions)
	// The last matched dimension labels the charge; single-dimension upgrades
	// are the common case.
	q.ExtraChargeKind = s.Kind
}
