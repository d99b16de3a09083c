package queries

import (
	"context"
	"time"

	"github.com/JeannRezende7/MarcaHora/internal/domain/appointment"
	"github.com/JeannRezende7/MarcaHora/internal/infra"
	"github.com/JeannRezende7/MarcaHora/internal/pkg/errs"

	"github.com/google/uuid"
)

// AppointmentQueries serves the store-management client: day listings and
// per-appointment lookups.
type AppointmentQueries interface {
	ListByStoreAndDate(ctx context.Context, storeID uuid.UUID, date time.Time, status *appointment.Status) ([]*AppointmentView, error)
	GetByID(ctx context.Context, storeID, id uuid.UUID) (*AppointmentView, error)
}

type appointmentQueriesImpl struct {
	stores       StoreConfigReader
	appointments AppointmentReader
}

func NewAppointmentQueries(stores StoreConfigReader, appointments AppointmentReader) AppointmentQueries {
	return &appointmentQueriesImpl{
		stores:       stores,
		appointments: appointments,
	}
}

func (q *appointmentQueriesImpl) ListByStoreAndDate(
	ctx context.Context,
	storeID uuid.UUID,
	date time.Time,
	status *appointment.Status,
) ([]*AppointmentView, error) {
	st, err := q.stores.FindStore(ctx, storeID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrStoreNotFound
		}
		return nil, errs.Mark(err, errs.ErrStorageFailure)
	}

	// Day boundaries are local to the store's zone.
	year, month, day := date.Date()
	from := time.Date(year, month, day, 0, 0, 0, 0, st.TimeZone())
	to := from.AddDate(0, 0, 1)

	views, err := q.appointments.ListByStoreAndRange(ctx, storeID, from, to, status)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStorageFailure)
	}
	return views, nil
}

func (q *appointmentQueriesImpl) GetByID(ctx context.Context, storeID, id uuid.UUID) (*AppointmentView, error) {
	view, err := q.appointments.FindByID(ctx, storeID, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrAppointmentNotFound
		}
		return nil, errs.Mark(err, errs.ErrStorageFailure)
	}
	return view, nil
}
