//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"github.com/JeannRezende7/MarcaHora/internal/domain/appointment"
	"github.com/JeannRezende7/MarcaHora/internal/infra/memstore"
	"github.com/JeannRezende7/MarcaHora/internal/pkg/errs"
	"github.com/JeannRezende7/MarcaHora/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func storeAppointment(t *testing.T, s *memstore.AppointmentStore, storeID uuid.UUID, start time.Time) *appointment.Appointment {
	t.Helper()
	appt, err := appointment.NewAppointment(
		storeID, nil, nil,
		start, start.Add(30*time.Minute),
		appointment.ClientInfo{Name: "Ana"},
	)
	require.NoError(t, err)
	_, err = s.CreateIfFree(context.Background(), appt, 0)
	require.NoError(t, err)
	return appt
}

func TestListByStoreAndDate(t *testing.T) {
	ctx := context.Background()

	reader := newStubStoreReader()
	st := buildStore(t, nil)
	reader.stores[st.ID()] = st
	appointments := memstore.NewAppointmentStore()

	mondayMorning := time.Date(2026, time.March, 16, 10, 0, 0, 0, st.TimeZone())
	inDay := storeAppointment(t, appointments, st.ID(), mondayMorning)
	storeAppointment(t, appointments, st.ID(), mondayMorning.AddDate(0, 0, 1))

	q := queries.NewAppointmentQueries(reader, appointments)

	t.Run("only the requested local day is listed", func(t *testing.T) {
		views, err := q.ListByStoreAndDate(ctx, st.ID(), monday, nil)
		require.NoError(t, err)
		require.Len(t, views, 1)
		assert.Equal(t, inDay.ID(), views[0].ID)
	})

	t.Run("status filter narrows the listing", func(t *testing.T) {
		scheduled := appointment.StatusScheduled
		views, err := q.ListByStoreAndDate(ctx, st.ID(), monday, &scheduled)
		require.NoError(t, err)
		assert.Len(t, views, 1)

		confirmed := appointment.StatusConfirmed
		views, err = q.ListByStoreAndDate(ctx, st.ID(), monday, &confirmed)
		require.NoError(t, err)
		assert.Empty(t, views)
	})

	t.Run("unknown store", func(t *testing.T) {
		_, err := q.ListByStoreAndDate(ctx, uuid.New(), monday, nil)
		assert.ErrorIs(t, err, errs.ErrStoreNotFound)
	})
}

func TestGetByID(t *testing.T) {
	ctx := context.Background()

	reader := newStubStoreReader()
	st := buildStore(t, nil)
	reader.stores[st.ID()] = st
	appointments := memstore.NewAppointmentStore()

	start := time.Date(2026, time.March, 16, 10, 0, 0, 0, st.TimeZone())
	appt := storeAppointment(t, appointments, st.ID(), start)

	q := queries.NewAppointmentQueries(reader, appointments)

	t.Run("returns the stored appointment", func(t *testing.T) {
		view, err := q.GetByID(ctx, st.ID(), appt.ID())
		require.NoError(t, err)
		assert.Equal(t, "Ana", view.ClientName)
		assert.True(t, view.StartAt.Equal(start))
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := q.GetByID(ctx, st.ID(), uuid.New())
		assert.ErrorIs(t, err, errs.ErrAppointmentNotFound)
	})

	t.Run("id scoped to the wrong store", func(t *testing.T) {
		_, err := q.GetByID(ctx, uuid.New(), appt.ID())
		assert.ErrorIs(t, err, errs.ErrAppointmentNotFound)
	})
}
