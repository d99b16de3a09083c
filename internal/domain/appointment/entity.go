package appointment

import (
	"errors"
	"strings"
	"time"

	"github.com/JeannRezende7/MarcaHora/internal/domain/schedule"

	"github.com/google/uuid"
)

var (
	ErrInvalidInterval   = errors.New("appointment end must be after start")
	ErrInvalidStatus     = errors.New("invalid appointment status")
	ErrInvalidTransition = errors.New("invalid status transition")
)

// ClientInfo is the contact detail captured with a public booking. Which
// fields are mandatory depends on the store configuration; the booking
// usecase validates that before an entity is built.
type ClientInfo struct {
	Name  string
	Phone string
	Email string
	Note  string
}

func (c ClientInfo) normalized() ClientInfo {
	return ClientInfo{
		Name:  strings.TrimSpace(c.Name),
		Phone: strings.TrimSpace(c.Phone),
		Email: strings.TrimSpace(c.Email),
		Note:  strings.TrimSpace(c.Note),
	}
}

// Appointment is a committed claim on a slot, the only engine state that
// survives restarts.
type Appointment struct {
	id        uuid.UUID
	storeID   uuid.UUID
	staffID   *uuid.UUID
	serviceID *uuid.UUID
	client    ClientInfo
	startAt   time.Time
	endAt     time.Time
	status    Status
	createdAt time.Time
}

// NewAppointment builds a fresh, not-yet-persisted appointment in the
// scheduled state.
func NewAppointment(
	storeID uuid.UUID,
	staffID, serviceID *uuid.UUID,
	startAt, endAt time.Time,
	client ClientInfo,
) (*Appointment, error) {
	if !endAt.After(startAt) {
		return nil, ErrInvalidInterval
	}
	return &Appointment{
		id:        uuid.New(),
		storeID:   storeID,
		staffID:   staffID,
		serviceID: serviceID,
		client:    client.normalized(),
		startAt:   startAt,
		endAt:     endAt,
		status:    StatusScheduled,
	}, nil
}

// Reconstruct rebuilds an appointment from persisted state without
// revalidating invariants the database already guarantees.
func Reconstruct(
	id, storeID uuid.UUID,
	staffID, serviceID *uuid.UUID,
	client ClientInfo,
	startAt, endAt time.Time,
	status Status,
	createdAt time.Time,
) *Appointment {
	return &Appointment{
		id:        id,
		storeID:   storeID,
		staffID:   staffID,
		serviceID: serviceID,
		client:    client,
		startAt:   startAt,
		endAt:     endAt,
		status:    status,
		createdAt: createdAt,
	}
}

func (a *Appointment) ID() uuid.UUID         { return a.id }
func (a *Appointment) StoreID() uuid.UUID    { return a.storeID }
func (a *Appointment) StaffID() *uuid.UUID   { return a.staffID }
func (a *Appointment) ServiceID() *uuid.UUID { return a.serviceID }
func (a *Appointment) Client() ClientInfo    { return a.client }
func (a *Appointment) StartAt() time.Time    { return a.startAt }
func (a *Appointment) EndAt() time.Time      { return a.endAt }
func (a *Appointment) Status() Status        { return a.status }
func (a *Appointment) CreatedAt() time.Time  { return a.createdAt }

// CalendarKey is the calendar this appointment occupies.
func (a *Appointment) CalendarKey() schedule.CalendarKey {
	return schedule.CalendarKey{StoreID: a.storeID, StaffID: a.staffID}
}

func (a *Appointment) Interval() schedule.Interval {
	return schedule.Interval{Start: a.startAt, End: a.endAt}
}

// TransitionTo moves the appointment along the lifecycle, rejecting jumps the
// state machine does not allow.
func (a *Appointment) TransitionTo(next Status) error {
	if !next.IsValid() {
		return ErrInvalidStatus
	}
	if !a.status.CanTransitionTo(next) {
		return ErrInvalidTransition
	}
	a.status = next
	return nil
}
