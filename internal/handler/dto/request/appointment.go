package request

import (
	"errors"
	"time"

	"github.com/JeannRezende7/MarcaHora/internal/domain/appointment"
)

var ErrUnknownStatus = errors.New("unknown status value")

type ListAppointmentsQuery struct {
	Date   string  `form:"date" binding:"required"`
	Status *string `form:"status"`
}

func (q ListAppointmentsQuery) ParseDate() (time.Time, error) {
	date, err := time.Parse("2006-01-02", q.Date)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return date, nil
}

func (q ListAppointmentsQuery) StatusFilter() (*appointment.Status, error) {
	if q.Status == nil || *q.Status == "" {
		return nil, nil
	}
	status := appointment.Status(*q.Status)
	if !status.IsValid() {
		return nil, ErrUnknownStatus
	}
	return &status, nil
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r UpdateStatusRequest) ToStatus() appointment.Status {
	return appointment.Status(r.Status)
}
