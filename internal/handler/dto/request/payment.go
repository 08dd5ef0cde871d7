package request

import (
	"github.com/google/uuid"
)

type RecordPaymentRequest struct {
	UserID     uuid.UUID `json:"user_id" binding:"required"`
	GatewayRef string    `json:"gateway_ref" binding:"required"`
	Amount     int64     `json:"amount" binding:"required,min=1"`
}

// GatewayWebhookRequest is the shape the payment gateway posts on capture or
// failure.
type GatewayWebhookRequest struct {
	GatewayRef string `json:"gateway_ref" binding:"required"`
	Status     string `json:"status" binding:"required"`
}
