//go:build unit

package memstore_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/JeannRezende7/MarcaHora/internal/domain/appointment"
	"github.com/JeannRezende7/MarcaHora/internal/domain/schedule"
	"github.com/JeannRezende7/MarcaHora/internal/infra"
	"github.com/JeannRezende7/MarcaHora/internal/infra/memstore"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var slotStart = time.Date(2026, time.March, 16, 10, 0, 0, 0, time.UTC)

func newAppt(t *testing.T, storeID uuid.UUID, staffID *uuid.UUID, start time.Time) *appointment.Appointment {
	t.Helper()
	appt, err := appointment.NewAppointment(
		storeID, staffID, nil,
		start, start.Add(30*time.Minute),
		appointment.ClientInfo{Name: "Ana"},
	)
	require.NoError(t, err)
	return appt
}

func TestCreateIfFree(t *testing.T) {
	ctx := context.Background()

	t.Run("stores a free slot", func(t *testing.T) {
		s := memstore.NewAppointmentStore()
		createdAt, err := s.CreateIfFree(ctx, newAppt(t, uuid.New(), nil, slotStart), 0)
		require.NoError(t, err)
		assert.False(t, createdAt.IsZero())
	})

	t.Run("rejects an overlapping insert", func(t *testing.T) {
		s := memstore.NewAppointmentStore()
		storeID := uuid.New()

		_, err := s.CreateIfFree(ctx, newAppt(t, storeID, nil, slotStart), 0)
		require.NoError(t, err)

		_, err = s.CreateIfFree(ctx, newAppt(t, storeID, nil, slotStart.Add(15*time.Minute)), 0)
		assert.True(t, infra.IsKind(err, infra.KindConflict))
	})

	t.Run("different staff calendars never contend", func(t *testing.T) {
		s := memstore.NewAppointmentStore()
		storeID := uuid.New()
		alice := uuid.New()
		bob := uuid.New()

		_, err := s.CreateIfFree(ctx, newAppt(t, storeID, &alice, slotStart), 0)
		require.NoError(t, err)
		_, err = s.CreateIfFree(ctx, newAppt(t, storeID, &bob, slotStart), 0)
		assert.NoError(t, err)
	})

	t.Run("buffer extends the conflict window", func(t *testing.T) {
		s := memstore.NewAppointmentStore()
		storeID := uuid.New()

		_, err := s.CreateIfFree(ctx, newAppt(t, storeID, nil, slotStart), 15*time.Minute)
		require.NoError(t, err)

		_, err = s.CreateIfFree(ctx, newAppt(t, storeID, nil, slotStart.Add(30*time.Minute)), 15*time.Minute)
		assert.True(t, infra.IsKind(err, infra.KindConflict))
	})

	t.Run("cancelled appointments free their slot", func(t *testing.T) {
		s := memstore.NewAppointmentStore()
		storeID := uuid.New()
		appt := newAppt(t, storeID, nil, slotStart)

		_, err := s.CreateIfFree(ctx, appt, 0)
		require.NoError(t, err)
		_, err = s.UpdateStatus(ctx, storeID, appt.ID(), appointment.StatusCancelled)
		require.NoError(t, err)

		_, err = s.CreateIfFree(ctx, newAppt(t, storeID, nil, slotStart), 0)
		assert.NoError(t, err)
	})

	t.Run("of many concurrent claims exactly one wins", func(t *testing.T) {
		s := memstore.NewAppointmentStore()
		storeID := uuid.New()

		const attempts = 32
		var wg sync.WaitGroup
		errors := make(chan error, attempts)

		for i := 0; i < attempts; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := s.CreateIfFree(ctx, newAppt(t, storeID, nil, slotStart), 0)
				errors <- err
			}()
		}
		wg.Wait()
		close(errors)

		var won, lost int
		for err := range errors {
			if err == nil {
				won++
				continue
			}
			require.True(t, infra.IsKind(err, infra.KindConflict))
			lost++
		}
		assert.Equal(t, 1, won)
		assert.Equal(t, attempts-1, lost)
	})
}

func TestUpdateStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("returned appointment keeps the creation timestamp", func(t *testing.T) {
		s := memstore.NewAppointmentStore()
		storeID := uuid.New()
		appt := newAppt(t, storeID, nil, slotStart)

		createdAt, err := s.CreateIfFree(ctx, appt, 0)
		require.NoError(t, err)

		updated, err := s.UpdateStatus(ctx, storeID, appt.ID(), appointment.StatusConfirmed)
		require.NoError(t, err)

		assert.Equal(t, appointment.StatusConfirmed, updated.Status())
		assert.True(t, updated.CreatedAt().Equal(createdAt))
	})

	t.Run("unknown appointment", func(t *testing.T) {
		s := memstore.NewAppointmentStore()
		_, err := s.UpdateStatus(ctx, uuid.New(), uuid.New(), appointment.StatusConfirmed)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestListBusyIntervals(t *testing.T) {
	ctx := context.Background()
	s := memstore.NewAppointmentStore()
	storeID := uuid.New()
	key := schedule.StoreKey(storeID)

	first := newAppt(t, storeID, nil, slotStart)
	second := newAppt(t, storeID, nil, slotStart.Add(time.Hour))
	_, err := s.CreateIfFree(ctx, first, 0)
	require.NoError(t, err)
	_, err = s.CreateIfFree(ctx, second, 0)
	require.NoError(t, err)

	t.Run("returns overlapping intervals in order", func(t *testing.T) {
		busy, err := s.ListBusyIntervals(ctx, key, slotStart.Add(-time.Hour), slotStart.Add(3*time.Hour))
		require.NoError(t, err)
		require.Len(t, busy, 2)
		assert.True(t, busy[0].Start.Before(busy[1].Start))
	})

	t.Run("window excludes non-overlapping appointments", func(t *testing.T) {
		busy, err := s.ListBusyIntervals(ctx, key, slotStart.Add(45*time.Minute), slotStart.Add(90*time.Minute))
		require.NoError(t, err)
		require.Len(t, busy, 1)
		assert.True(t, busy[0].Start.Equal(second.StartAt()))
	})

	t.Run("cancelled appointments are not busy", func(t *testing.T) {
		_, err := s.UpdateStatus(ctx, storeID, first.ID(), appointment.StatusCancelled)
		require.NoError(t, err)

		busy, err := s.ListBusyIntervals(ctx, key, slotStart.Add(-time.Hour), slotStart.Add(3*time.Hour))
		require.NoError(t, err)
		assert.Len(t, busy, 1)
	})
}
