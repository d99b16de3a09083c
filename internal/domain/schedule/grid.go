package schedule

import (
	"time"

	"github.com/JeannRezende7/MarcaHora/internal/domain/store"
)

// Rules is the slice of store configuration the slot grid depends on.
type Rules struct {
	Location    *time.Location
	Weekdays    store.WeekdaySet
	OpenAt      store.TimeOfDay
	CloseAt     store.TimeOfDay
	Granularity time.Duration
}

func RulesFromStore(s *store.Store) Rules {
	return Rules{
		Location:    s.TimeZone(),
		Weekdays:    s.Weekdays(),
		OpenAt:      s.OpenAt(),
		CloseAt:     s.CloseAt(),
		Granularity: s.Granularity(),
	}
}

// CandidateSlots generates the idealized slot grid for one calendar date,
// ignoring existing bookings: starts every Granularity step in [open, close),
// dropping slots whose end would pass closing time. Empty when the weekday is
// not an operating day. Slot starts stay on the grid regardless of the service
// duration (a 45-minute service on a 30-minute grid still starts at :00/:30).
//
// The date argument supplies only year/month/day; all arithmetic happens in
// the store's zone, so local midnight (not UTC) bounds the day.
func CandidateSlots(r Rules, duration time.Duration, date time.Time) []Slot {
	if r.Granularity <= 0 || duration <= 0 || r.Location == nil {
		return nil
	}

	year, month, day := date.Date()
	open := r.OpenAt.At(year, month, day, r.Location)
	closing := r.CloseAt.At(year, month, day, r.Location)

	if !r.Weekdays.IsEmpty() && !r.Weekdays.Contains(open.Weekday()) {
		return nil
	}

	var slots []Slot
	for start := open; !start.Add(duration).After(closing); start = start.Add(r.Granularity) {
		slots = append(slots, Slot{start: start, end: start.Add(duration)})
	}
	return slots
}

// AvailableSlots filters candidates down to those that keep at least `buffer`
// idle time around every busy interval and have not already begun at `now`.
// Candidates are assumed ascending; the result preserves that order.
func AvailableSlots(candidates []Slot, busy []Interval, buffer time.Duration, now time.Time) []Slot {
	var open []Slot
	for _, c := range candidates {
		if c.start.Before(now) {
			continue
		}
		if c.conflictsWithAny(busy, buffer) {
			continue
		}
		open = append(open, c)
	}
	return open
}

// ContainsStart reports whether any candidate starts exactly at t. Used by the
// commit path to re-validate a client-chosen slot against the current grid.
func ContainsStart(candidates []Slot, t time.Time) bool {
	for _, c := range candidates {
		if c.start.Equal(t) {
			return true
		}
	}
	return false
}
