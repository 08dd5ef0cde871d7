package queries

import (
	"context"
	"time"

	"crease/internal/domain/pack"
	"crease/internal/domain/pricing"
	"crease/internal/domain/slot"
	"crease/internal/pkg/clock"
	"crease/internal/usecase/shared"

	"github.com/google/uuid"
)

// PackageUsePreview is the advisory answer to "can this package fund this
// booking". Nothing is reserved or debited; only the reconciler mutates.
type PackageUsePreview struct {
	Allowed         bool   `json:"allowed"`
	ExtraCharge     int64  `json:"extra_charge"`
	ExtraChargeKind string `json:"extra_charge_kind,omitempty"`
	Reason          string `json:"reason,omitempty"`
}

type PackageUseParams struct {
	UserID    uuid.UUID
	Ball      pricing.BallType
	Pitch     string
	Slab      slot.Slab
	Sessions  int
	MachineID *uuid.UUID
}

type PackageQueries interface {
	ListMine(ctx context.Context, userID uuid.UUID) ([]*PackageView, error)
	PreviewUse(ctx context.Context, packageID uuid.UUID, params PackageUseParams) (*PackageUsePreview, error)
}

type PackageViewRepo interface {
	SnapshotByID(ctx context.Context, id uuid.UUID) (*shared.PackageSnapshot, error)
	ListByUser(ctx context.Context, userID uuid.UUID, now time.Time) ([]*PackageView, error)
}

type packageQueriesImpl struct {
	repo       PackageViewRepo
	surcharges pack.SurchargeTable
	clock      clock.Clock
}

func NewPackageQueries(repo PackageViewRepo, surcharges pack.SurchargeTable, clk clock.Clock) PackageQueries {
	return &packageQueriesImpl{repo: repo, surcharges: surcharges, clock: clk}
}

func (q *packageQueriesImpl) ListMine(ctx context.Context, userID uuid.UUID) ([]*PackageView, error) {
	return q.repo.ListByUser(ctx, userID, q.clock.Now())
}

func (q *packageQueriesImpl) PreviewUse(ctx context.Context, packageID uuid.UUID, params PackageUseParams) (*PackageUsePreview, error) {
	snap, err := q.repo.SnapshotByID(ctx, packageID)
	if err != nil {
		return nil, err
	}

	p := pack.Reconstruct(
		snap.ID, snap.UserID, snap.TotalSessions, snap.UsedSessions,
		snap.ActivatedAt, snap.ExpiresAt, pack.Status(snap.Status),
		pack.Scope{
			MachineID: snap.MachineID,
			Ball:      pricing.BallType(snap.Ball),
			Pitch:     pricing.NormalizePitch(snap.Pitch),
			Timing:    slot.Slab(snap.Timing),
		},
		snap.AmountPaid,
	)

	useQuote, err := p.ValidateUse(pack.UseRequest{
		UserID:    params.UserID,
		Ball:      params.Ball,
		Pitch:     pricing.NormalizePitch(params.Pitch),
		Slab:      params.Slab,
		Sessions:  params.Sessions,
		MachineID: params.MachineID,
	}, q.surcharges, q.clock.Now())
	if err != nil {
		return &PackageUsePreview{Allowed: false, Reason: err.Error()}, nil
	}

	return &PackageUsePreview{
		Allowed:         true,
		ExtraCharge:     useQuote.ExtraCharge,
		ExtraChargeKind: string(useQuote.ExtraChargeKind),
	}, nil
}
