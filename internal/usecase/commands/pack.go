package commands

import (
	"context"
	"time"

	"crease/internal/domain/pack"
	"crease/internal/domain/pricing"
	"crease/internal/domain/slot"
	"crease/internal/pkg/clock"
	"crease/internal/pkg/errs"
	"crease/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrInvalidPackageScope = errs.New("invalid package scope")

type PurchasePackageRequest struct {
	UserID        uuid.UUID
	TotalSessions int
	ValidityDays  int
	MachineID     *uuid.UUID
	Ball          pricing.BallType
	Pitch         string
	Timing        string
	AmountPaid    int64
}

type PackageCommands interface {
	Purchase(ctx context.Context, req PurchasePackageRequest) (uuid.UUID, error)
}

type packageUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewPackageUseCase(uow shared.UnitOfWork, clk clock.Clock) PackageCommands {
	return &packageUseCaseImpl{uow: uow, clock: clk}
}

// Purchase records a sold package. Payment capture for the package itself
// happens at the counter or through the gateway before this is called.
func (u *packageUseCaseImpl) Purchase(ctx context.Context, req PurchasePackageRequest) (uuid.UUID, error) {
	if !req.Ball.IsValid() {
		return uuid.Nil, ErrInvalidBallType
	}
	timing, err := parseTiming(req.Timing)
	if err != nil {
		return uuid.Nil, err
	}
	if req.ValidityDays <= 0 {
		return uuid.Nil, ErrInvalidPackageScope
	}

	now := u.clock.Now()
	p, err := pack.NewPackage(
		req.UserID,
		req.TotalSessions,
		now,
		now.Add(time.Duration(req.ValidityDays)*24*time.Hour),
		pack.Scope{
			MachineID: req.MachineID,
			Ball:      req.Ball,
			Pitch:     pricing.NormalizePitch(req.Pitch),
			Timing:    timing,
		},
		req.AmountPaid,
	)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidPackageScope)
	}

	var id uuid.UUID
	err = u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, err = tx.Packages().Insert(ctx, p)
		if err != nil {
			return errs.Mark(err, ErrStoreFailed)
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func parseTiming(raw string) (slot.Slab, error) {
	switch slot.Slab(raw) {
	case slot.SlabMorning:
		return slot.SlabMorning, nil
	case slot.SlabEvening:
		return slot.SlabEvening, nil
	case pack.TimingAny, "":
		return pack.TimingAny, nil
	default:
		return "", ErrInvalidPackageScope
	}
}
