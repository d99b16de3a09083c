package commands

import (
	"context"
	"time"

	"github.com/JeannRezende7/MarcaHora/internal/domain/appointment"

	"github.com/google/uuid"
)

// AppointmentWriter is the write side of the appointment store. Adapters own
// the serialization point: CreateIfFree must guarantee, per calendar key, that
// of any set of concurrent overlapping inserts at most one succeeds.
type AppointmentWriter interface {
	// CreateIfFree persists the appointment unless a non-cancelled appointment
	// on the same calendar key overlaps its buffered interval. An overlap is
	// reported as a KindConflict repository error. Returns the persistence
	// timestamp on success.
	CreateIfFree(ctx context.Context, appt *appointment.Appointment, buffer time.Duration) (time.Time, error)

	// UpdateStatus applies a lifecycle transition under the store's concurrency
	// control. Unknown ids map to KindNotFound; transitions the state machine
	// rejects map to KindInvalidState. Returns the updated appointment.
	UpdateStatus(ctx context.Context, storeID, id uuid.UUID, next appointment.Status) (*appointment.Appointment, error)
}

// BookingRequest is the slot-claim submitted by the public booking client.
type BookingRequest struct {
	StoreID   uuid.UUID
	ServiceID *uuid.UUID
	StaffID   *uuid.UUID
	SlotStart time.Time
	Client    appointment.ClientInfo
}
