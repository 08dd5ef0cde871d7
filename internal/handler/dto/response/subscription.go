package response

import (
	"time"

	"crease/internal/usecase/queries"

	"github.com/google/uuid"
)

type SubscriptionResponse struct {
	ID                uuid.UUID `json:"id"`
	UserID            uuid.UUID `json:"userId"`
	PlanID            uuid.UUID `json:"planId"`
	PlanName          string    `json:"planName"`
	SessionsPerMonth  int       `json:"sessionsPerMonth"`
	SessionsRemaining int       `json:"sessionsRemaining"`
	MonthYear         string    `json:"monthYear"`
	ExpiresAt         time.Time `json:"expiresAt"`
	Status            string    `json:"status"`
}

type PlanResponse struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	SessionsPerMonth int       `json:"sessionsPerMonth"`
	PricePerMonth    int64     `json:"pricePerMonth"`
}

func FromSubscriptionViews(views []*queries.SubscriptionView) []*SubscriptionResponse {
	out := make([]*SubscriptionResponse, 0, len(views))
	for _, v := range views {
		out = append(out, &SubscriptionResponse{
			ID:                v.ID,
			UserID:            v.UserID,
			PlanID:            v.PlanID,
			PlanName:          v.PlanName,
			SessionsPerMonth:  v.SessionsPerMonth,
			SessionsRemaining: v.SessionsRemaining,
			MonthYear:         v.MonthYear,
			ExpiresAt:         v.ExpiresAt,
			Status:            v.Status,
		})
	}
	return out
}

func FromPlanViews(views []*queries.PlanView) []*PlanResponse {
	out := make([]*PlanResponse, 0, len(views))
	for _, v := range views {
		out = append(out, &PlanResponse{
			ID:               v.ID,
			Name:             v.Name,
			SessionsPerMonth: v.SessionsPerMonth,
			PricePerMonth:    v.PricePerMonth,
		})
	}
	return out
}
