package response

import (
	"time"

	"crease/internal/usecase/queries"

	"github.com/google/uuid"
)

type PackageResponse struct {
	ID                uuid.UUID  `json:"id"`
	UserID            uuid.UUID  `json:"userId"`
	TotalSessions     int        `json:"totalSessions"`
	UsedSessions      int        `json:"usedSessions"`
	RemainingSessions int        `json:"remainingSessions"`
	ActivatedAt       time.Time  `json:"activatedAt"`
	ExpiresAt         time.Time  `json:"expiresAt"`
	Status            string     `json:"status"`
	MachineID         *uuid.UUID `json:"machineId,omitempty"`
	BallType          string     `json:"ballType"`
	PitchType         string     `json:"pitchType"`
	Timing            string     `json:"timing"`
	AmountPaid        int64      `json:"amountPaid"`
}

type PackageUsePreviewResponse struct {
	Allowed         bool   `json:"allowed"`
	ExtraCharge     int64  `json:"extraCharge"`
	ExtraChargeKind string `json:"extraChargeKind,omitempty"`
	Reason          string `json:"reason,omitempty"`
}

func FromPackageViews(views []*queries.PackageView) []*PackageResponse {
	out := make([]*PackageResponse, 0, len(views))
	for _, v := range views {
		out = append(out, &PackageResponse{
			ID:                v.ID,
			UserID:            v.UserID,
			TotalSessions:     v.TotalSessions,
			UsedSessions:      v.UsedSessions,
			RemainingSessions: v.RemainingSessions,
			ActivatedAt:       v.ActivatedAt,
			ExpiresAt:         v.ExpiresAt,
			Status:            v.Status,
			MachineID:         v.MachineID,
			BallType:          v.BallType,
			PitchType:         v.PitchType,
			Timing:            v.Timing,
			AmountPaid:        v.AmountPaid,
		})
	}
	return out
}

func FromPackageUsePreview(p *queries.PackageUsePreview) *PackageUsePreviewResponse {
	return &PackageUsePreviewResponse{
		Allowed:         p.Allowed,
		ExtraCharge:     p.ExtraCharge,
		ExtraChargeKind: p.ExtraChargeKind,
		Reason:          p.Reason,
	}
}
