package commands

import (
	"context"
	"time"

	"github.com/JeannRezende7/MarcaHora/internal/domain/appointment"
	"github.com/JeannRezende7/MarcaHora/internal/domain/schedule"
	"github.com/JeannRezende7/MarcaHora/internal/domain/store"
	"github.com/JeannRezende7/MarcaHora/internal/infra"
	"github.com/JeannRezende7/MarcaHora/internal/observability/metrics"
	"github.com/JeannRezende7/MarcaHora/internal/pkg/clock"
	"github.com/JeannRezende7/MarcaHora/internal/pkg/errs"
	"github.com/JeannRezende7/MarcaHora/internal/usecase/queries"

	"github.com/google/uuid"
)

// BookingCommands is the booking transaction manager. CommitBooking either
// returns the persisted appointment or a typed failure; it never leaves a
// half-committed appointment and never retries on its own.
type BookingCommands interface {
	CommitBooking(ctx context.Context, req BookingRequest) (*queries.AppointmentView, error)
}

type bookingCommandsImpl struct {
	stores       queries.StoreConfigReader
	availability queries.AvailabilityQueries
	writer       AppointmentWriter
	cache        queries.AvailabilityCache
	clock        clock.Clock
	metrics      *metrics.BookingMetrics
}

func NewBookingCommands(
	stores queries.StoreConfigReader,
	availability queries.AvailabilityQueries,
	writer AppointmentWriter,
	cache queries.AvailabilityCache,
	clk clock.Clock,
	bookingMetrics *metrics.BookingMetrics,
) BookingCommands {
	return &bookingCommandsImpl{
		stores:       stores,
		availability: availability,
		writer:       writer,
		cache:        cache,
		clock:        clk,
		metrics:      bookingMetrics,
	}
}

func (c *bookingCommandsImpl) CommitBooking(ctx context.Context, req BookingRequest) (*queries.AppointmentView, error) {
	started := time.Now()
	view, err := c.commit(ctx, req)
	c.metrics.ObserveCommit(commitResult(err))
	c.metrics.ObserveCommitLatency(time.Since(started).Seconds())
	return view, err
}

func (c *bookingCommandsImpl) commit(ctx context.Context, req BookingRequest) (*queries.AppointmentView, error) {
	st, err := c.findStore(ctx, req.StoreID)
	if err != nil {
		return nil, err
	}
	if !st.IsActive() {
		return nil, errs.ErrStoreInactive
	}

	serviceID, duration, err := c.resolveService(ctx, st, req.ServiceID)
	if err != nil {
		return nil, err
	}
	staffID, err := c.resolveStaff(ctx, st, req.StaffID)
	if err != nil {
		return nil, err
	}
	if err := validateClient(st, req.Client); err != nil {
		return nil, err
	}

	slotStart := req.SlotStart
	now := c.clock.Now()
	if slotStart.Before(now) {
		return nil, errs.Mark(errs.New("slot start is in the past"), errs.ErrInvalidSlot)
	}

	// Structural validation against the grid: a start that was never offered
	// (closed weekday, off-grid, outside opening hours) is a client bug, not
	// a race.
	localStart := slotStart.In(st.TimeZone())
	candidates := schedule.CandidateSlots(schedule.RulesFromStore(st), duration, localStart)
	if !schedule.ContainsStart(candidates, slotStart) {
		return nil, errs.Mark(errs.New("slot start is not on the store's grid"), errs.ErrInvalidSlot)
	}

	// Stale-list guard: recompute availability at commit time. The adapter's
	// atomic check below is authoritative; this pass catches most races early
	// and keeps the resolver the single source of truth for slot membership.
	open, err := c.availability.AvailableSlots(ctx, st.ID(), serviceID, staffID, localStart)
	if err != nil {
		return nil, err
	}
	if !containsSlotStart(open, slotStart) {
		return nil, errs.ErrSlotConflict
	}

	appt, err := appointment.NewAppointment(st.ID(), staffID, serviceID, slotStart, slotStart.Add(duration), req.Client)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}

	createdAt, err := c.writer.CreateIfFree(ctx, appt, st.Buffer())
	if err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return nil, errs.ErrSlotConflict
		}
		return nil, errs.Mark(err, errs.ErrStorageFailure)
	}

	if c.cache != nil {
		c.cache.Invalidate(ctx, appt.CalendarKey(), localStart)
	}

	return appointmentToView(appt, createdAt), nil
}

func (c *bookingCommandsImpl) findStore(ctx context.Context, id uuid.UUID) (*store.Store, error) {
	st, err := c.stores.FindStore(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrStoreNotFound
		}
		return nil, errs.Mark(err, errs.ErrStorageFailure)
	}
	return st, nil
}

// resolveService returns the service id to persist and the appointment
// duration. Stores without services imply a one-grid-step duration.
func (c *bookingCommandsImpl) resolveService(ctx context.Context, st *store.Store, serviceID *uuid.UUID) (*uuid.UUID, time.Duration, error) {
	if !st.UsesServices() {
		return nil, st.DefaultDuration(), nil
	}
	if serviceID == nil {
		return nil, 0, errs.NewValidationError(errs.FieldViolation{Field: "service_id", Reason: "required"})
	}
	svc, err := c.stores.FindService(ctx, st.ID(), *serviceID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, 0, errs.ErrServiceNotFound
		}
		return nil, 0, errs.Mark(err, errs.ErrStorageFailure)
	}
	id := svc.ID()
	return &id, svc.Duration(), nil
}

func (c *bookingCommandsImpl) resolveStaff(ctx context.Context, st *store.Store, staffID *uuid.UUID) (*uuid.UUID, error) {
	if !st.UsesStaff() {
		return nil, nil
	}
	if staffID == nil {
		return nil, errs.ErrMissingStaffSelection
	}
	member, err := c.stores.FindStaff(ctx, st.ID(), *staffID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrStaffNotFound
		}
		return nil, errs.Mark(err, errs.ErrStorageFailure)
	}
	if !member.IsActive() {
		return nil, errs.ErrStaffInactive
	}
	id := member.ID()
	return &id, nil
}

// validateClient enforces the store's required-contact configuration.
func validateClient(st *store.Store, client appointment.ClientInfo) error {
	var violations []errs.FieldViolation
	if st.RequireName() && client.Name == "" {
		violations = append(violations, errs.FieldViolation{Field: "name", Reason: "required"})
	}
	if st.RequirePhone() && client.Phone == "" {
		violations = append(violations, errs.FieldViolation{Field: "phone", Reason: "required"})
	}
	if st.RequireEmail() && client.Email == "" {
		violations = append(violations, errs.FieldViolation{Field: "email", Reason: "required"})
	}
	if len(violations) > 0 {
		return errs.NewValidationError(violations...)
	}
	return nil
}

func containsSlotStart(slots []queries.SlotView, t time.Time) bool {
	for _, s := range slots {
		if s.Start.Equal(t) {
			return true
		}
	}
	return false
}

func appointmentToView(appt *appointment.Appointment, createdAt time.Time) *queries.AppointmentView {
	client := appt.Client()
	return &queries.AppointmentView{
		ID:          appt.ID(),
		StoreID:     appt.StoreID(),
		StaffID:     appt.StaffID(),
		ServiceID:   appt.ServiceID(),
		ClientName:  client.Name,
		ClientPhone: client.Phone,
		ClientEmail: client.Email,
		Note:        client.Note,
		StartAt:     appt.StartAt(),
		EndAt:       appt.EndAt(),
		Status:      appt.Status().String(),
		CreatedAt:   createdAt,
	}
}

func commitResult(err error) string {
	switch {
	case err == nil:
		return "committed"
	case errs.Is(err, errs.ErrSlotConflict):
		return "conflict"
	case errs.Is(err, errs.ErrValidation),
		errs.Is(err, errs.ErrMissingStaffSelection),
		errs.Is(err, errs.ErrInvalidSlot),
		errs.Is(err, errs.ErrStoreInactive),
		errs.Is(err, errs.ErrStaffInactive):
		return "rejected"
	default:
		return "error"
	}
}
