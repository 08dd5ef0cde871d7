package api

import (
	"net/http"
	"time"

	resdto "crease/internal/handler/dto/response"
	"crease/internal/infra"
	"crease/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AvailabilityHandler struct {
	availabilityQueries queries.AvailabilityQueries
	machineQueries      queries.MachineQueries
}

func NewAvailabilityHandler(availabilityQueries queries.AvailabilityQueries, machineQueries queries.MachineQueries) *AvailabilityHandler {
	return &AvailabilityHandler{
		availabilityQueries: availabilityQueries,
		machineQueries:      machineQueries,
	}
}

// @Summary Free slots
// @Description List the machine's free slots for a day, priced for the requested ball and pitch
// @Tags availability
// @Produce json
// @Security BearerAuth
// @Param machine_id query string true "Machine ID"
// @Param date query string true "Date (RFC3339)"
// @Param ball_type query string true "Ball type"
// @Param pitch_type query string false "Pitch type"
// @Success 200 {array} resdto.FreeSlotResponse
// @Failure 404 {object} map[string]string
// @Router /availability [get]
func (h *AvailabilityHandler) FreeSlots(c *gin.Context) {
	machineID, err := uuid.Parse(c.Query("machine_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid machine ID"})
		return
	}

	date, err := time.Parse(time.RFC3339, c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date"})
		return
	}

	slots, err := h.availabilityQueries.FreeSlots(c.Request.Context(), machineID, date, c.Query("ball_type"), c.Query("pitch_type"))
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Machine not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.FromFreeSlots(slots))
}

// @Summary List machines
// @Tags machines
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.MachineResponse
// @Router /machines [get]
func (h *AvailabilityHandler) ListMachines(c *gin.Context) {
	machines, err := h.machineQueries.ListActive(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.FromMachineViews(machines))
}
