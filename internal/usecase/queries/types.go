package queries

import (
	"context"
	"time"

	"github.com/JeannRezende7/MarcaHora/internal/domain/appointment"
	"github.com/JeannRezende7/MarcaHora/internal/domain/schedule"
	"github.com/JeannRezende7/MarcaHora/internal/domain/store"

	"github.com/google/uuid"
)

// Read models (DTOs for the read side)

type SlotView struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

type AppointmentView struct {
	ID          uuid.UUID  `json:"id"`
	StoreID     uuid.UUID  `json:"store_id"`
	StaffID     *uuid.UUID `json:"staff_id,omitempty"`
	ServiceID   *uuid.UUID `json:"service_id,omitempty"`
	ClientName  string     `json:"client_name"`
	ClientPhone string     `json:"client_phone"`
	ClientEmail string     `json:"client_email"`
	Note        string     `json:"note,omitempty"`
	StartAt     time.Time  `json:"start_at"`
	EndAt       time.Time  `json:"end_at"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
}

type ServiceView struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	DurationMin int       `json:"duration_min"`
	PriceCents  *int32    `json:"price_cents,omitempty"`
}

type StaffView struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type StoreProfileView struct {
	ID             uuid.UUID     `json:"id"`
	Name           string        `json:"name"`
	Online         bool          `json:"online"`
	TimeZone       string        `json:"time_zone"`
	OpenAt         string        `json:"open_at"`
	CloseAt        string        `json:"close_at"`
	Weekdays       string        `json:"weekdays"`
	GranularityMin int           `json:"granularity_min"`
	BufferMin      int           `json:"buffer_min"`
	UsesServices   bool          `json:"uses_services"`
	UsesStaff      bool          `json:"uses_staff"`
	RequireName    bool          `json:"require_name"`
	RequirePhone   bool          `json:"require_phone"`
	RequireEmail   bool          `json:"require_email"`
	Services       []ServiceView `json:"services,omitempty"`
	Staff          []StaffView   `json:"staff,omitempty"`
}

// StoreConfigReader supplies the configuration records owned by the external
// store-configuration service. Reads go to the database on every call, so
// owner-side changes show up without a restart.
type StoreConfigReader interface {
	FindStore(ctx context.Context, id uuid.UUID) (*store.Store, error)
	FindService(ctx context.Context, storeID, id uuid.UUID) (*store.Service, error)
	FindStaff(ctx context.Context, storeID, id uuid.UUID) (*store.Staff, error)
	ListServices(ctx context.Context, storeID uuid.UUID) ([]*store.Service, error)
	ListActiveStaff(ctx context.Context, storeID uuid.UUID) ([]*store.Staff, error)
}

// AppointmentReader is the read side of the appointment store.
type AppointmentReader interface {
	// ListBusyIntervals returns the occupied intervals of non-cancelled
	// appointments on the calendar key overlapping [from, to).
	ListBusyIntervals(ctx context.Context, key schedule.CalendarKey, from, to time.Time) ([]schedule.Interval, error)
	ListByStoreAndRange(ctx context.Context, storeID uuid.UUID, from, to time.Time, status *appointment.Status) ([]*AppointmentView, error)
	FindByID(ctx context.Context, storeID, id uuid.UUID) (*AppointmentView, error)
}

// AvailabilityCache is a best-effort read-through cache for resolved slots.
// Implementations must treat every failure as a miss; availability is always
// recomputable.
type AvailabilityCache interface {
	Get(ctx context.Context, key schedule.CalendarKey, date time.Time) ([]SlotView, bool)
	Set(ctx context.Context, key schedule.CalendarKey, date time.Time, slots []SlotView)
	Invalidate(ctx context.Context, key schedule.CalendarKey, date time.Time)
}
