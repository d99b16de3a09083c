package schedule

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidInterval = errors.New("start time must be before end time")

// CalendarKey identifies the calendar conflicts are checked against: a whole
// store, or one staff member within it.
type CalendarKey struct {
	StoreID uuid.UUID
	StaffID *uuid.UUID
}

func StoreKey(storeID uuid.UUID) CalendarKey {
	return CalendarKey{StoreID: storeID}
}

func StaffKey(storeID, staffID uuid.UUID) CalendarKey {
	return CalendarKey{StoreID: storeID, StaffID: &staffID}
}

// String is stable and collision-free per key; the postgres adapter hashes it
// for its advisory lock.
func (k CalendarKey) String() string {
	if k.StaffID == nil {
		return "store:" + k.StoreID.String()
	}
	return fmt.Sprintf("store:%s:staff:%s", k.StoreID, k.StaffID)
}

// Slot is a candidate bookable interval [start, end). It is derived, never
// persisted.
type Slot struct {
	start time.Time
	end   time.Time
}

func NewSlot(start, end time.Time) (Slot, error) {
	if !end.After(start) {
		return Slot{}, ErrInvalidInterval
	}
	return Slot{start: start, end: end}, nil
}

func (s Slot) Start() time.Time { return s.start }
func (s Slot) End() time.Time   { return s.end }

func (s Slot) Duration() time.Duration {
	return s.end.Sub(s.start)
}

// Interval is an occupied stretch of a calendar, typically a committed
// appointment.
type Interval struct {
	Start time.Time
	End   time.Time
}

// ConflictsWith reports whether the slot and the busy interval violate the
// store's buffer rule. The buffer is symmetric: at least `buffer` of idle time
// must separate the two intervals on either side. With half-open intervals
// that is: s.start < b.End+buffer && b.Start < s.end+buffer.
func (s Slot) ConflictsWith(b Interval, buffer time.Duration) bool {
	return s.start.Before(b.End.Add(buffer)) && b.Start.Before(s.end.Add(buffer))
}

func (s Slot) conflictsWithAny(busy []Interval, buffer time.Duration) bool {
	for _, b := range busy {
		if s.ConflictsWith(b, buffer) {
			return true
		}
	}
	return false
}
