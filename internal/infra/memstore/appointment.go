package memstore

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/JeannRezende7/MarcaHora/internal/domain/appointment"
	"github.com/JeannRezende7/MarcaHora/internal/domain/schedule"
	"github.com/JeannRezende7/MarcaHora/internal/infra"
	"github.com/JeannRezende7/MarcaHora/internal/usecase/queries"

	"github.com/google/uuid"
)

// AppointmentStore is an in-memory adapter implementing both sides of the
// appointment store. It mirrors the postgres adapter's contract, serializing
// writes per calendar key, and backs unit tests and local development without
// a database.
type AppointmentStore struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
	byID  map[uuid.UUID]*record
}

type record struct {
	appt      *appointment.Appointment
	createdAt time.Time
}

func NewAppointmentStore() *AppointmentStore {
	return &AppointmentStore{
		locks: make(map[string]*sync.Mutex),
		byID:  make(map[uuid.UUID]*record),
	}
}

func (s *AppointmentStore) keyLock(key schedule.CalendarKey) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[key.String()]
	if !ok {
		l = &sync.Mutex{}
		s.locks[key.String()] = l
	}
	return l
}

func (s *AppointmentStore) CreateIfFree(
	ctx context.Context,
	appt *appointment.Appointment,
	buffer time.Duration,
) (time.Time, error) {
	if err := ctx.Err(); err != nil {
		return time.Time{}, infra.WrapRepoErr("booking aborted", err)
	}

	l := s.keyLock(appt.CalendarKey())
	l.Lock()
	defer l.Unlock()

	slot, err := schedule.NewSlot(appt.StartAt(), appt.EndAt())
	if err != nil {
		return time.Time{}, infra.WrapRepoErr("invalid appointment interval", err, infra.KindInvalidState)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, rec := range s.byID {
		other := rec.appt
		if other.CalendarKey().String() != appt.CalendarKey().String() {
			continue
		}
		if !other.Status().OccupiesSlot() {
			continue
		}
		if slot.ConflictsWith(other.Interval(), buffer) {
			return time.Time{}, infra.WrapRepoErr("slot already occupied", nil, infra.KindConflict)
		}
	}

	createdAt := time.Now().UTC()
	s.byID[appt.ID()] = &record{appt: appt, createdAt: createdAt}
	return createdAt, nil
}

func (s *AppointmentStore) UpdateStatus(
	ctx context.Context,
	storeID, id uuid.UUID,
	next appointment.Status,
) (*appointment.Appointment, error) {
	if err := ctx.Err(); err != nil {
		return nil, infra.WrapRepoErr("status update aborted", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.byID[id]
	if !ok || rec.appt.StoreID() != storeID {
		return nil, infra.WrapRepoErr("appointment not found", nil, infra.KindNotFound)
	}
	if err := rec.appt.TransitionTo(next); err != nil {
		return nil, infra.WrapRepoErr("status transition rejected", err, infra.KindInvalidState)
	}
	appt := rec.appt
	return appointment.Reconstruct(
		appt.ID(), appt.StoreID(), appt.StaffID(), appt.ServiceID(),
		appt.Client(), appt.StartAt(), appt.EndAt(), appt.Status(), rec.createdAt,
	), nil
}

func (s *AppointmentStore) ListBusyIntervals(
	ctx context.Context,
	key schedule.CalendarKey,
	from, to time.Time,
) ([]schedule.Interval, error) {
	if err := ctx.Err(); err != nil {
		return nil, infra.WrapRepoErr("listing aborted", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	var busy []schedule.Interval
	for _, rec := range s.byID {
		appt := rec.appt
		if appt.CalendarKey().String() != key.String() || !appt.Status().OccupiesSlot() {
			continue
		}
		if appt.StartAt().Before(to) && appt.EndAt().After(from) {
			busy = append(busy, appt.Interval())
		}
	}
	sort.Slice(busy, func(i, j int) bool { return busy[i].Start.Before(busy[j].Start) })
	return busy, nil
}

func (s *AppointmentStore) ListByStoreAndRange(
	ctx context.Context,
	storeID uuid.UUID,
	from, to time.Time,
	status *appointment.Status,
) ([]*queries.AppointmentView, error) {
	if err := ctx.Err(); err != nil {
		return nil, infra.WrapRepoErr("listing aborted", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	var views []*queries.AppointmentView
	for _, rec := range s.byID {
		appt := rec.appt
		if appt.StoreID() != storeID {
			continue
		}
		if appt.StartAt().Before(from) || !appt.StartAt().Before(to) {
			continue
		}
		if status != nil && appt.Status() != *status {
			continue
		}
		views = append(views, toView(rec))
	}
	sort.Slice(views, func(i, j int) bool { return views[i].StartAt.Before(views[j].StartAt) })
	return views, nil
}

func (s *AppointmentStore) FindByID(ctx context.Context, storeID, id uuid.UUID) (*queries.AppointmentView, error) {
	if err := ctx.Err(); err != nil {
		return nil, infra.WrapRepoErr("lookup aborted", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.byID[id]
	if !ok || rec.appt.StoreID() != storeID {
		return nil, infra.WrapRepoErr("appointment not found", nil, infra.KindNotFound)
	}
	return toView(rec), nil
}

func toView(rec *record) *queries.AppointmentView {
	appt := rec.appt
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
		CreatedAt:   rec.createdAt,
	}
}
