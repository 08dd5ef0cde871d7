package request

import (
	"github.com/google/uuid"
)

type IssueSubscriptionRequest struct {
	UserID uuid.UUID `json:"user_id" binding:"required"`
	PlanID uuid.UUID `json:"plan_id" binding:"required"`
}
