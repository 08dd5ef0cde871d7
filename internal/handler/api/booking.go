package api

import (
	"errors"
	"net/http"
	"time"

	"crease/internal/domain/pricing"
	reqdto "crease/internal/handler/dto/request"
	resdto "crease/internal/handler/dto/response"
	"crease/internal/handler/middleware"
	"crease/internal/infra"
	"crease/internal/usecase/commands"
	"crease/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
}

func NewBookingHandler(bookingCommands commands.BookingCommands, bookingQueries queries.BookingQueries) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		bookingQueries:  bookingQueries,
	}
}

// @Summary Book slots
// @Description Book one or more slots on a machine, funded by a package, subscription, or captured payment
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookResultResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	result, err := h.bookingCommands.Book(c.Request.Context(), commands.BookRequest{
		Actor:      principal,
		MachineID:  req.MachineID,
		Date:       req.Date,
		StartTimes: req.StartTimes,
		Ball:       pricing.BallType(req.BallType),
		Pitch:      req.PitchType,
		Funding: commands.FundingSelector{
			PackageID:      req.PackageID,
			SubscriptionID: req.SubscriptionID,
			PaymentID:      req.PaymentID,
		},
	})
	if err != nil {
		h.respondBookError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBookResult(result))
}

func (h *BookingHandler) respondBookError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrInvalidBallType),
		errors.Is(err, commands.ErrInvalidFunding),
		errors.Is(err, commands.ErrSlotNotInGrid),
		errors.Is(err, commands.ErrSlotInPast):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, commands.ErrMachineNotFound),
		errors.Is(err, commands.ErrPackageNotFound),
		errors.Is(err, commands.ErrSubscriptionNotFound),
		errors.Is(err, commands.ErrPaymentNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, commands.ErrSlotConflict):
		c.JSON(http.StatusConflict, gin.H{"error": "One or more slots are already booked"})
	case errors.Is(err, commands.ErrPaymentAlreadyUsed):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, commands.ErrPaymentNotOwned):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, commands.ErrMachineInactive),
		errors.Is(err, commands.ErrInsufficientSessions),
		errors.Is(err, commands.ErrPackageExpired),
		errors.Is(err, commands.ErrPackageScopeMismatch),
		errors.Is(err, commands.ErrPackageNotUsable),
		errors.Is(err, commands.ErrSubscriptionNotUsable),
		errors.Is(err, commands.ErrPaymentNotCaptured),
		errors.Is(err, commands.ErrPaymentAmountMismatch):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// @Summary Cancel booking
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 204
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id} [delete]
func (h *BookingHandler) Cancel(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking ID"})
		return
	}

	if err := h.bookingCommands.Cancel(c.Request.Context(), principal, id); err != nil {
		switch {
		case errors.Is(err, commands.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		case errors.Is(err, commands.ErrNotBookingOwner):
			c.JSON(http.StatusForbidden, gin.H{"error": "Booking belongs to another user"})
		case errors.Is(err, commands.ErrCancelAfterStart):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Cannot cancel after the slot has started"})
		case errors.Is(err, commands.ErrBookingNotCancellable):
			c.JSON(http.StatusConflict, gin.H{"error": "Booking cannot be cancelled"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Mark booking done
// @Description Staff-only terminal transition after the session is played
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 204
// @Failure 403 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id}/done [post]
func (h *BookingHandler) MarkDone(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking ID"})
		return
	}

	if err := h.bookingCommands.MarkDone(c.Request.Context(), principal, id); err != nil {
		switch {
		case errors.Is(err, commands.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		case errors.Is(err, commands.ErrMarkDoneForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
		case errors.Is(err, commands.ErrBookingNotDoneable):
			c.JSON(http.StatusConflict, gin.H{"error": "Only booked sessions can be marked done"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Get booking
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking ID"})
		return
	}

	view, err := h.bookingQueries.GetByID(c.Request.Context(), principal, id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrViewNotAllowed):
			c.JSON(http.StatusForbidden, gin.H{"error": "Not allowed to view this booking"})
		case infra.IsKind(err, infra.KindNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary List own bookings
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.BookingListResponse
// @Router /bookings [get]
func (h *BookingHandler) ListMine(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	items, err := h.bookingQueries.ListMine(c.Request.Context(), principal.ID, 50)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingListItems(items))
}

// @Summary Machine day sheet
// @Description Staff view of all bookings on one machine for one day
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param machine_id query string true "Machine ID"
// @Param date query string true "Date (RFC3339)"
// @Success 200 {array} resdto.BookingListResponse
// @Router /bookings/day [get]
func (h *BookingHandler) ListMachineDay(c *gin.Context) {
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

	items, err := h.bookingQueries.ListMachineDay(c.Request.Context(), machineID, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingListItems(items))
}
