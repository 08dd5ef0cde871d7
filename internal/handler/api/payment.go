package api

import (
	"errors"
	"net/http"

	reqdto "crease/internal/handler/dto/request"
	"crease/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	paymentCommands commands.PaymentCommands
}

func NewPaymentHandler(paymentCommands commands.PaymentCommands) *PaymentHandler {
	return &PaymentHandler{paymentCommands: paymentCommands}
}

// @Summary Record payment
// @Description Staff records a gateway order opened outside this service
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.RecordPaymentRequest true "Payment"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /payments [post]
func (h *PaymentHandler) Record(c *gin.Context) {
	var req reqdto.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	id, err := h.paymentCommands.Record(c.Request.Context(), req.UserID, req.GatewayRef, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidPaymentStatus):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id.String()})
}

// @Summary Gateway webhook
// @Description Apply the gateway's capture or failure result to the matching payment
// @Tags payments
// @Accept json
// @Produce json
// @Param request body reqdto.GatewayWebhookRequest true "Gateway result"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /payments/webhook [post]
func (h *PaymentHandler) Webhook(c *gin.Context) {
	var req reqdto.GatewayWebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	id, err := h.paymentCommands.RecordGatewayResult(c.Request.Context(), req.GatewayRef, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidPaymentStatus):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, commands.ErrPaymentNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Payment not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": id.String()})
}
