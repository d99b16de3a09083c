package api

import (
	"net/http"

	reqdto "github.com/JeannRezende7/MarcaHora/internal/handler/dto/request"
	resdto "github.com/JeannRezende7/MarcaHora/internal/handler/dto/response"
	"github.com/JeannRezende7/MarcaHora/internal/handler/httperr"
	"github.com/JeannRezende7/MarcaHora/internal/observability/metrics"
	"github.com/JeannRezende7/MarcaHora/internal/pkg/errs"
	"github.com/JeannRezende7/MarcaHora/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AvailabilityHandler struct {
	availability queries.AvailabilityQueries
	metrics      *metrics.BookingMetrics
}

func NewAvailabilityHandler(availability queries.AvailabilityQueries, bookingMetrics *metrics.BookingMetrics) *AvailabilityHandler {
	return &AvailabilityHandler{
		availability: availability,
		metrics:      bookingMetrics,
	}
}

// @Summary List available slots
// @Description Resolve the bookable slots for a store on one date
// @Tags availability
// @Produce json
// @Param store_id query string true "Store ID"
// @Param service_id query string false "Service ID"
// @Param staff_id query string false "Staff ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/public/availability [get]
func (h *AvailabilityHandler) GetAvailability(c *gin.Context) {
	var q reqdto.AvailabilityQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.metrics.ObserveAvailability("rejected")
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query parameters", nil)
		return
	}
	storeID, err := q.ParseStoreID()
	if err != nil {
		h.metrics.ObserveAvailability("rejected")
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid store ID format", nil)
		return
	}
	serviceID, err := q.ParseServiceID()
	if err != nil {
		h.metrics.ObserveAvailability("rejected")
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid service ID format", nil)
		return
	}
	staffID, err := q.ParseStaffID()
	if err != nil {
		h.metrics.ObserveAvailability("rejected")
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid staff ID format", nil)
		return
	}
	date, err := q.ParseDate()
	if err != nil {
		h.metrics.ObserveAvailability("rejected")
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		return
	}

	slots, err := h.availability.AvailableSlots(c.Request.Context(), storeID, serviceID, staffID, date)
	if err != nil {
		h.metrics.ObserveAvailability(availabilityOutcome(err))
		httperr.AbortWithDomainError(c, err)
		return
	}

	h.metrics.ObserveAvailability("resolved")
	c.JSON(http.StatusOK, resdto.FromSlotViews(q.Date, slots))
}

func availabilityOutcome(err error) string {
	switch {
	case errs.Is(err, errs.ErrStorageFailure):
		return "error"
	default:
		return "rejected"
	}
}
