package api

import (
	"net/http"

	reqdto "github.com/JeannRezende7/MarcaHora/internal/handler/dto/request"
	resdto "github.com/JeannRezende7/MarcaHora/internal/handler/dto/response"
	"github.com/JeannRezende7/MarcaHora/internal/handler/httperr"
	"github.com/JeannRezende7/MarcaHora/internal/usecase/commands"
	"github.com/JeannRezende7/MarcaHora/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AppointmentHandler struct {
	appointments        queries.AppointmentQueries
	appointmentCommands commands.AppointmentCommands
}

func NewAppointmentHandler(
	appointments queries.AppointmentQueries,
	appointmentCommands commands.AppointmentCommands,
) *AppointmentHandler {
	return &AppointmentHandler{
		appointments:        appointments,
		appointmentCommands: appointmentCommands,
	}
}

// @Summary List appointments
// @Description List a store's appointments for one date, optionally by status
// @Tags appointments
// @Produce json
// @Param id path string true "Store ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param status query string false "Status filter"
// @Success 200 {array} resdto.AppointmentResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/stores/{id}/appointments [get]
func (h *AppointmentHandler) ListAppointments(c *gin.Context) {
	storeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid store ID format", nil)
		return
	}

	var q reqdto.ListAppointmentsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query parameters", nil)
		return
	}
	date, err := q.ParseDate()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		return
	}

	status, err := q.StatusFilter()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		return
	}

	views, err := h.appointments.ListByStoreAndDate(c.Request.Context(), storeID, date, status)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromAppointmentViews(views))
}

// @Summary Get appointment
// @Description Get one appointment by ID
// @Tags appointments
// @Produce json
// @Param id path string true "Store ID"
// @Param appointmentId path string true "Appointment ID"
// @Success 200 {object} resdto.AppointmentResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/stores/{id}/appointments/{appointmentId} [get]
func (h *AppointmentHandler) GetAppointment(c *gin.Context) {
	storeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid store ID format", nil)
		return
	}
	id, err := uuid.Parse(c.Param("appointmentId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid appointment ID format", nil)
		return
	}

	view, err := h.appointments.GetByID(c.Request.Context(), storeID, id)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromAppointmentView(view))
}

// @Summary Update appointment status
// @Description Move an appointment along its lifecycle
// @Tags appointments
// @Accept json
// @Produce json
// @Param id path string true "Store ID"
// @Param appointmentId path string true "Appointment ID"
// @Param request body reqdto.UpdateStatusRequest true "New status"
// @Success 200 {object} resdto.AppointmentResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/stores/{id}/appointments/{appointmentId}/status [patch]
func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	storeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid store ID format", nil)
		return
	}
	id, err := uuid.Parse(c.Param("appointmentId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid appointment ID format", nil)
		return
	}

	var req reqdto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.appointmentCommands.UpdateStatus(c.Request.Context(), storeID, id, req.ToStatus())
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromAppointmentView(view))
}
