package commands

import (
	"context"

	"github.com/JeannRezende7/MarcaHora/internal/domain/appointment"
	"github.com/JeannRezende7/MarcaHora/internal/infra"
	"github.com/JeannRezende7/MarcaHora/internal/pkg/errs"
	"github.com/JeannRezende7/MarcaHora/internal/usecase/queries"

	"github.com/google/uuid"
)

// AppointmentCommands covers the store-side lifecycle operations. Cancelling
// frees the slot for the very next availability query, so the day's cache
// entry is invalidated here.
type AppointmentCommands interface {
	UpdateStatus(ctx context.Context, storeID, id uuid.UUID, next appointment.Status) (*queries.AppointmentView, error)
}

type appointmentCommandsImpl struct {
	stores queries.StoreConfigReader
	writer AppointmentWriter
	cache  queries.AvailabilityCache
}

func NewAppointmentCommands(
	stores queries.StoreConfigReader,
	writer AppointmentWriter,
	cache queries.AvailabilityCache,
) AppointmentCommands {
	return &appointmentCommandsImpl{
		stores: stores,
		writer: writer,
		cache:  cache,
	}
}

func (c *appointmentCommandsImpl) UpdateStatus(
	ctx context.Context,
	storeID, id uuid.UUID,
	next appointment.Status,
) (*queries.AppointmentView, error) {
	if !next.IsValid() {
		return nil, errs.NewValidationError(errs.FieldViolation{Field: "status", Reason: "unknown status"})
	}

	appt, err := c.writer.UpdateStatus(ctx, storeID, id, next)
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return nil, errs.ErrAppointmentNotFound
		case infra.IsKind(err, infra.KindInvalidState):
			return nil, errs.Mark(err, errs.ErrInvalidStatusTransition)
		default:
			return nil, errs.Mark(err, errs.ErrStorageFailure)
		}
	}

	if c.cache != nil && next == appointment.StatusCancelled {
		st, storeErr := c.stores.FindStore(ctx, storeID)
		if storeErr == nil {
			c.cache.Invalidate(ctx, appt.CalendarKey(), appt.StartAt().In(st.TimeZone()))
		}
	}

	return appointmentToView(appt, appt.CreatedAt()), nil
}
