package request

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidDate = errors.New("date must be formatted as YYYY-MM-DD")

// IDs bind as strings; gin's query binding cannot populate uuid.UUID fields,
// so the handler parses them after binding.
type AvailabilityQuery struct {
	StoreID   string `form:"store_id" binding:"required"`
	ServiceID string `form:"service_id"`
	StaffID   string `form:"staff_id"`
	Date      string `form:"date" binding:"required"`
}

func (q AvailabilityQuery) ParseStoreID() (uuid.UUID, error) {
	return uuid.Parse(q.StoreID)
}

func (q AvailabilityQuery) ParseServiceID() (*uuid.UUID, error) {
	return parseOptionalID(q.ServiceID)
}

func (q AvailabilityQuery) ParseStaffID() (*uuid.UUID, error) {
	return parseOptionalID(q.StaffID)
}

// ParseDate returns the requested calendar date. Only year/month/day carry
// meaning downstream; the resolver anchors them in the store's zone.
func (q AvailabilityQuery) ParseDate() (time.Time, error) {
	date, err := time.Parse("2006-01-02", q.Date)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return date, nil
}

func parseOptionalID(raw string) (*uuid.UUID, error) {
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
