package store

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidDuration = errors.New("service duration must be positive")

// Service is a bookable offering whose duration drives slot end times.
type Service struct {
	id          uuid.UUID
	storeID     uuid.UUID
	name        string
	durationMin int
	priceCents  *int32
}

func NewService(id, storeID uuid.UUID, name string, durationMin int, priceCents *int32) (*Service, error) {
	if durationMin <= 0 {
		return nil, ErrInvalidDuration
	}
	return &Service{
		id:          id,
		storeID:     storeID,
		name:        name,
		durationMin: durationMin,
		priceCents:  priceCents,
	}, nil
}

func (s *Service) ID() uuid.UUID      { return s.id }
func (s *Service) StoreID() uuid.UUID { return s.storeID }
func (s *Service) Name() string       { return s.name }
func (s *Service) DurationMin() int   { return s.durationMin }
func (s *Service) PriceCents() *int32 { return s.priceCents }

func (s *Service) Duration() time.Duration {
	return time.Duration(s.durationMin) * time.Minute
}
