package httperr

import (
	"errors"
	"net/http"

	"github.com/JeannRezende7/MarcaHora/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// AbortWithDomainError maps the usecase sentinels onto HTTP statuses. The 409
// on a slot conflict is the contract the booking client relies on: re-fetch
// availability and let the customer pick again.
func AbortWithDomainError(c *gin.Context, err error) {
	var vErr *errs.ValidationError
	switch {
	case errors.As(err, &vErr):
		AbortWithError(c, http.StatusBadRequest, err, "Validation failed", vErr.Violations)
	case errs.Is(err, errs.ErrMissingStaffSelection):
		AbortWithError(c, http.StatusBadRequest, err, "Staff selection is required for this store", nil)
	case errs.Is(err, errs.ErrInvalidSlot):
		AbortWithError(c, http.StatusBadRequest, err, "Requested slot is not offered", nil)
	case errs.Is(err, errs.ErrStoreInactive):
		AbortWithError(c, http.StatusBadRequest, err, "Store is not accepting bookings", nil)
	case errs.Is(err, errs.ErrStaffInactive):
		AbortWithError(c, http.StatusBadRequest, err, "Staff member is not accepting bookings", nil)
	case errs.Is(err, errs.ErrValidation):
		AbortWithError(c, http.StatusBadRequest, err, "Validation failed", nil)
	case errs.Is(err, errs.ErrStoreNotFound):
		AbortWithError(c, http.StatusNotFound, err, "Store not found", nil)
	case errs.Is(err, errs.ErrServiceNotFound):
		AbortWithError(c, http.StatusNotFound, err, "Service not found", nil)
	case errs.Is(err, errs.ErrStaffNotFound):
		AbortWithError(c, http.StatusNotFound, err, "Staff not found", nil)
	case errs.Is(err, errs.ErrAppointmentNotFound):
		AbortWithError(c, http.StatusNotFound, err, "Appointment not found", nil)
	case errs.Is(err, errs.ErrSlotConflict):
		AbortWithError(c, http.StatusConflict, err, "Slot is no longer available", nil)
	case errs.Is(err, errs.ErrInvalidStatusTransition):
		AbortWithError(c, http.StatusConflict, err, "Status transition not allowed", nil)
	default:
		AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
