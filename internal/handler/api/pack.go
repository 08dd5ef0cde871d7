package api

import (
	"errors"
	"net/http"

	"crease/internal/domain/pricing"
	"crease/internal/domain/slot"
	reqdto "crease/internal/handler/dto/request"
	resdto "crease/internal/handler/dto/response"
	"crease/internal/handler/middleware"
	"crease/internal/infra"
	"crease/internal/usecase/commands"
	"crease/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PackageHandler struct {
	packageCommands commands.PackageCommands
	packageQueries  queries.PackageQueries
}

func NewPackageHandler(packageCommands commands.PackageCommands, packageQueries queries.PackageQueries) *PackageHandler {
	return &PackageHandler{
		packageCommands: packageCommands,
		packageQueries:  packageQueries,
	}
}

// @Summary Record package purchase
// @Description Staff records a sold session package for a user
// @Tags packages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.PurchasePackageRequest true "Package purchase"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /packages [post]
func (h *PackageHandler) Purchase(c *gin.Context) {
	var req reqdto.PurchasePackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	id, err := h.packageCommands.Purchase(c.Request.Context(), commands.PurchasePackageRequest{
		UserID:        req.UserID,
		TotalSessions: req.TotalSessions,
		ValidityDays:  req.ValidityDays,
		MachineID:     req.MachineID,
		Ball:          pricing.BallType(req.BallType),
		Pitch:         req.PitchType,
		Timing:        req.Timing,
		AmountPaid:    req.AmountPaid,
	})
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidBallType), errors.Is(err, commands.ErrInvalidPackageScope):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id.String()})
}

// @Summary List own packages
// @Tags packages
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.PackageResponse
// @Router /packages [get]
func (h *PackageHandler) ListMine(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	views, err := h.packageQueries.ListMine(c.Request.Context(), principal.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.FromPackageViews(views))
}

// @Summary Preview package use
// @Description Advisory check whether the package can fund a booking shape; nothing is debited
// @Tags packages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Package ID"
// @Param request body reqdto.PreviewPackageUseRequest true "Requested booking shape"
// @Success 200 {object} resdto.PackageUsePreviewResponse
// @Failure 404 {object} map[string]string
// @Router /packages/{id}/preview [post]
func (h *PackageHandler) PreviewUse(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	packageID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid package ID"})
		return
	}

	var req reqdto.PreviewPackageUseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	preview, err := h.packageQueries.PreviewUse(c.Request.Context(), packageID, queries.PackageUseParams{
		UserID:    principal.ID,
		Ball:      pricing.BallType(req.BallType),
		Pitch:     req.PitchType,
		Slab:      slot.Slab(req.Slab),
		Sessions:  req.Sessions,
		MachineID: req.MachineID,
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Package not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.FromPackageUsePreview(preview))
}
