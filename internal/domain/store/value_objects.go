package store

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	ErrInvalidTimeOfDay = errors.New("invalid time of day")
	ErrInvalidWeekday   = errors.New("invalid weekday")
)

// TimeOfDay is a wall-clock time ("HH:MM", 24h) with no date or zone attached.
type TimeOfDay struct {
	minutes int
}

func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return TimeOfDay{}, ErrInvalidTimeOfDay
	}
	return TimeOfDay{minutes: hour*60 + minute}, nil
}

// ParseTimeOfDay converts "09:00" to a TimeOfDay.
func ParseTimeOfDay(value string) (TimeOfDay, error) {
	parts := strings.Split(strings.TrimSpace(value), ":")
	if len(parts) != 2 {
		return TimeOfDay{}, ErrInvalidTimeOfDay
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return TimeOfDay{}, ErrInvalidTimeOfDay
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return TimeOfDay{}, ErrInvalidTimeOfDay
	}
	return NewTimeOfDay(hour, minute)
}

func (t TimeOfDay) Hour() int          { return t.minutes / 60 }
func (t TimeOfDay) Minute() int        { return t.minutes % 60 }
func (t TimeOfDay) MinuteOfDay() int   { return t.minutes }
func (t TimeOfDay) Before(o TimeOfDay) bool { return t.minutes < o.minutes }
func (t TimeOfDay) After(o TimeOfDay) bool  { return t.minutes > o.minutes }

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// At anchors the wall-clock time on a calendar date in loc. Going through
// time.Date keeps the result correct across DST transitions.
func (t TimeOfDay) At(year int, month time.Month, day int, loc *time.Location) time.Time {
	return time.Date(year, month, day, t.Hour(), t.Minute(), 0, 0, loc)
}

// WeekdaySet is the set of weekdays a store operates on, using the ISO
// numbering the owner configures: Mon=1 … Sun=7. This is the single home of
// the weekday mapping; nothing else translates day numbers.
type WeekdaySet struct {
	mask uint8
}

// NewWeekdaySet builds a set from ISO day numbers (Mon=1 … Sun=7).
func NewWeekdaySet(days ...int) (WeekdaySet, error) {
	var s WeekdaySet
	for _, d := range days {
		if d < 1 || d > 7 {
			return WeekdaySet{}, ErrInvalidWeekday
		}
		s.mask |= 1 << uint(d-1)
	}
	return s, nil
}

// ParseWeekdaySet converts the stored "1,2,3,4,5" form to a WeekdaySet.
func ParseWeekdaySet(value string) (WeekdaySet, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return WeekdaySet{}, nil
	}
	parts := strings.Split(trimmed, ",")
	days := make([]int, 0, len(parts))
	for _, p := range parts {
		d, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return WeekdaySet{}, ErrInvalidWeekday
		}
		days = append(days, d)
	}
	return NewWeekdaySet(days...)
}

func (s WeekdaySet) IsEmpty() bool {
	return s.mask == 0
}

// Contains reports whether the set includes the given Go weekday
// (time.Sunday=0 maps to ISO day 7).
func (s WeekdaySet) Contains(d time.Weekday) bool {
	iso := int(d)
	if iso == 0 {
		iso = 7
	}
	return s.mask&(1<<uint(iso-1)) != 0
}

func (s WeekdaySet) String() string {
	var days []string
	for d := 1; d <= 7; d++ {
		if s.mask&(1<<uint(d-1)) != 0 {
			days = append(days, strconv.Itoa(d))
		}
	}
	return strings.Join(days, ",")
}
