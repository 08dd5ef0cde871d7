package api

import (
	"errors"
	"net/http"

	reqdto "crease/internal/handler/dto/request"
	resdto "crease/internal/handler/dto/response"
	"crease/internal/handler/middleware"
	"crease/internal/usecase/commands"
	"crease/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type SubscriptionHandler struct {
	subscriptionCommands commands.SubscriptionCommands
	subscriptionQueries  queries.SubscriptionQueries
}

func NewSubscriptionHandler(subscriptionCommands commands.SubscriptionCommands, subscriptionQueries queries.SubscriptionQueries) *SubscriptionHandler {
	return &SubscriptionHandler{
		subscriptionCommands: subscriptionCommands,
		subscriptionQueries:  subscriptionQueries,
	}
}

// @Summary Issue subscription
// @Description Staff issues the current month's allotment of a plan to a user
// @Tags subscriptions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.IssueSubscriptionRequest true "Subscription issue"
// @Success 201 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /subscriptions [post]
func (h *SubscriptionHandler) Issue(c *gin.Context) {
	var req reqdto.IssueSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	id, err := h.subscriptionCommands.Issue(c.Request.Context(), req.UserID, req.PlanID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrPlanNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Plan not found"})
		case errors.Is(err, commands.ErrSubscriptionExists):
			c.JSON(http.StatusConflict, gin.H{"error": "Subscription already exists for this month"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id.String()})
}

// @Summary List own subscriptions
// @Tags subscriptions
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.SubscriptionResponse
// @Router /subscriptions [get]
func (h *SubscriptionHandler) ListMine(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	views, err := h.subscriptionQueries.ListMine(c.Request.Context(), principal.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.FromSubscriptionViews(views))
}

// @Summary List plans
// @Tags subscriptions
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.PlanResponse
// @Router /subscriptions/plans [get]
func (h *SubscriptionHandler) ListPlans(c *gin.Context) {
	views, err := h.subscriptionQueries.ListPlans(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.FromPlanViews(views))
}
