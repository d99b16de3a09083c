package queries

import (
	"context"
	"time"

	"github.com/JeannRezende7/MarcaHora/internal/domain/schedule"
	"github.com/JeannRezende7/MarcaHora/internal/domain/store"
	"github.com/JeannRezende7/MarcaHora/internal/infra"
	"github.com/JeannRezende7/MarcaHora/internal/pkg/clock"
	"github.com/JeannRezende7/MarcaHora/internal/pkg/errs"

	"github.com/google/uuid"
)

// AvailabilityQueries is the availability resolver: the single source of truth
// for "which slots are open", consumed by the public client and by the commit
// path alike.
type AvailabilityQueries interface {
	// AvailableSlots resolves the bookable slots for one store, optional
	// service and staff, on one calendar date. Only the year/month/day of
	// `date` matter; day boundaries are local to the store's zone.
	AvailableSlots(ctx context.Context, storeID uuid.UUID, serviceID, staffID *uuid.UUID, date time.Time) ([]SlotView, error)
}

type availabilityQueriesImpl struct {
	stores       StoreConfigReader
	appointments AppointmentReader
	cache        AvailabilityCache
	clock        clock.Clock
}

func NewAvailabilityQueries(
	stores StoreConfigReader,
	appointments AppointmentReader,
	cache AvailabilityCache,
	clk clock.Clock,
) AvailabilityQueries {
	return &availabilityQueriesImpl{
		stores:       stores,
		appointments: appointments,
		cache:        cache,
		clock:        clk,
	}
}

func (q *availabilityQueriesImpl) AvailableSlots(
	ctx context.Context,
	storeID uuid.UUID,
	serviceID, staffID *uuid.UUID,
	date time.Time,
) ([]SlotView, error) {
	st, err := q.stores.FindStore(ctx, storeID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrStoreNotFound
		}
		return nil, errs.Mark(err, errs.ErrStorageFailure)
	}
	if !st.IsActive() {
		return []SlotView{}, nil
	}

	target, err := q.resolveTarget(ctx, st, serviceID, staffID)
	if err != nil {
		return nil, err
	}
	if target.staffInactive {
		return []SlotView{}, nil
	}

	year, month, day := date.Date()
	now := q.clock.Now().In(st.TimeZone())
	nowYear, nowMonth, nowDay := now.Date()
	if year < nowYear ||
		(year == nowYear && month < nowMonth) ||
		(year == nowYear && month == nowMonth && day < nowDay) {
		// Past dates are never bookable, and never an error.
		return []SlotView{}, nil
	}

	if q.cache != nil {
		if cached, ok := q.cache.Get(ctx, target.key, date); ok {
			return cached, nil
		}
	}

	rules := schedule.RulesFromStore(st)
	candidates := schedule.CandidateSlots(rules, target.duration, date)
	if len(candidates) == 0 {
		return []SlotView{}, nil
	}

	from := candidates[0].Start().Add(-st.Buffer())
	to := candidates[len(candidates)-1].End().Add(st.Buffer())
	busy, err := q.listBusyWithRetry(ctx, target.key, from, to)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStorageFailure)
	}

	open := schedule.AvailableSlots(candidates, busy, st.Buffer(), q.clock.Now())
	views := make([]SlotView, len(open))
	for i, s := range open {
		views[i] = SlotView{Start: s.Start(), End: s.End()}
	}

	if q.cache != nil {
		// A commit racing this read may invalidate between the query above and
		// this Set. The stale entry lives at most one TTL; the write path's
		// atomic check stays authoritative either way.
		q.cache.Set(ctx, target.key, date, views)
	}
	return views, nil
}

type resolvedTarget struct {
	key           schedule.CalendarKey
	duration      time.Duration
	staffInactive bool
}

func (q *availabilityQueriesImpl) resolveTarget(
	ctx context.Context,
	st *store.Store,
	serviceID, staffID *uuid.UUID,
) (resolvedTarget, error) {
	target := resolvedTarget{
		key:      schedule.StoreKey(st.ID()),
		duration: st.DefaultDuration(),
	}

	if st.UsesServices() && serviceID != nil {
		svc, err := q.stores.FindService(ctx, st.ID(), *serviceID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return resolvedTarget{}, errs.ErrServiceNotFound
			}
			return resolvedTarget{}, errs.Mark(err, errs.ErrStorageFailure)
		}
		target.duration = svc.Duration()
	}

	if st.UsesStaff() {
		if staffID == nil {
			return resolvedTarget{}, errs.ErrMissingStaffSelection
		}
		member, err := q.stores.FindStaff(ctx, st.ID(), *staffID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return resolvedTarget{}, errs.ErrStaffNotFound
			}
			return resolvedTarget{}, errs.Mark(err, errs.ErrStorageFailure)
		}
		target.key = schedule.StaffKey(st.ID(), member.ID())
		target.staffInactive = !member.IsActive()
	}

	return target, nil
}

// listBusyWithRetry retries the read once on failure. Automatic retry is
// acceptable on the read path only; the commit path never retries.
func (q *availabilityQueriesImpl) listBusyWithRetry(
	ctx context.Context,
	key schedule.CalendarKey,
	from, to time.Time,
) ([]schedule.Interval, error) {
	busy, err := q.appointments.ListBusyIntervals(ctx, key, from, to)
	if err == nil {
		return busy, nil
	}
	if ctx.Err() != nil {
		return nil, err
	}
	return q.appointments.ListBusyIntervals(ctx, key, from, to)
}
