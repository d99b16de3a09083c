package store

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidGranularity = errors.New("slot granularity must be positive")
	ErrNegativeBuffer     = errors.New("buffer minutes cannot be negative")
	ErrInvalidHours       = errors.New("closing time must be after opening time")
	ErrInvalidTimeZone    = errors.New("invalid store time zone")
)

// Store is the booking configuration for one tenant. The engine only reads it;
// mutation happens in the owner-side configuration service.
type Store struct {
	id             uuid.UUID
	name           string
	timeZone       *time.Location
	active         bool
	openAt         TimeOfDay
	closeAt        TimeOfDay
	weekdays       WeekdaySet
	granularityMin int
	bufferMin      int
	usesServices   bool
	usesStaff      bool
	requireName    bool
	requirePhone   bool
	requireEmail   bool
}

type StoreParams struct {
	ID             uuid.UUID
	Name           string
	TimeZone       string
	Active         bool
	OpenAt         TimeOfDay
	CloseAt        TimeOfDay
	Weekdays       WeekdaySet
	GranularityMin int
	BufferMin      int
	UsesServices   bool
	UsesStaff      bool
	RequireName    bool
	RequirePhone   bool
	RequireEmail   bool
}

func NewStore(p StoreParams) (*Store, error) {
	if p.GranularityMin <= 0 {
		return nil, ErrInvalidGranularity
	}
	if p.BufferMin < 0 {
		return nil, ErrNegativeBuffer
	}
	if !p.CloseAt.After(p.OpenAt) {
		return nil, ErrInvalidHours
	}
	loc, err := time.LoadLocation(p.TimeZone)
	if err != nil {
		return nil, ErrInvalidTimeZone
	}
	return &Store{
		id:             p.ID,
		name:           p.Name,
		timeZone:       loc,
		active:         p.Active,
		openAt:         p.OpenAt,
		closeAt:        p.CloseAt,
		weekdays:       p.Weekdays,
		granularityMin: p.GranularityMin,
		bufferMin:      p.BufferMin,
		usesServices:   p.UsesServices,
		usesStaff:      p.UsesStaff,
		requireName:    p.RequireName,
		requirePhone:   p.RequirePhone,
		requireEmail:   p.RequireEmail,
	}, nil
}

func (s *Store) ID() uuid.UUID            { return s.id }
func (s *Store) Name() string             { return s.name }
func (s *Store) TimeZone() *time.Location { return s.timeZone }
func (s *Store) IsActive() bool           { return s.active }
func (s *Store) OpenAt() TimeOfDay        { return s.openAt }
func (s *Store) CloseAt() TimeOfDay       { return s.closeAt }
func (s *Store) Weekdays() WeekdaySet     { return s.weekdays }
func (s *Store) GranularityMin() int      { return s.granularityMin }
func (s *Store) BufferMin() int           { return s.bufferMin }
func (s *Store) UsesServices() bool       { return s.usesServices }
func (s *Store) UsesStaff() bool          { return s.usesStaff }
func (s *Store) RequireName() bool        { return s.requireName }
func (s *Store) RequirePhone() bool       { return s.requirePhone }
func (s *Store) RequireEmail() bool       { return s.requireEmail }

func (s *Store) Buffer() time.Duration {
	return time.Duration(s.bufferMin) * time.Minute
}

func (s *Store) Granularity() time.Duration {
	return time.Duration(s.granularityMin) * time.Minute
}

// DefaultDuration is the implied appointment length for stores that do not use
// services: one grid step.
func (s *Store) DefaultDuration() time.Duration {
	return s.Granularity()
}
