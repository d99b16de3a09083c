package api

import (
	"net/http"

	reqdto "github.com/JeannRezende7/MarcaHora/internal/handler/dto/request"
	resdto "github.com/JeannRezende7/MarcaHora/internal/handler/dto/response"
	"github.com/JeannRezende7/MarcaHora/internal/handler/httperr"
	"github.com/JeannRezende7/MarcaHora/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	bookings commands.BookingCommands
}

func NewBookingHandler(bookings commands.BookingCommands) *BookingHandler {
	return &BookingHandler{bookings: bookings}
}

// @Summary Commit a booking
// @Description Claim a slot; 409 means it was taken between listing and commit
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.AppointmentResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/public/bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.bookings.CommitBooking(c.Request.Context(), req.ToCommand())
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromAppointmentView(view))
}
