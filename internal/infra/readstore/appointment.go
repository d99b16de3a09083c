package readstore

import (
	"context"
	"time"

	"github.com/JeannRezende7/MarcaHora/internal/domain/appointment"
	"github.com/JeannRezende7/MarcaHora/internal/domain/schedule"
	"github.com/JeannRezende7/MarcaHora/internal/infra"
	"github.com/JeannRezende7/MarcaHora/internal/pkg/pgconv"
	"github.com/JeannRezende7/MarcaHora/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

// AppointmentReadStore serves the read side of the appointment store. Busy
// intervals feed the availability resolver; the view queries feed the store
// dashboard.
type AppointmentReadStore struct {
	pool *pgxpool.Pool
}

func NewAppointmentReadStore(pool *pgxpool.Pool) *AppointmentReadStore {
	return &AppointmentReadStore{pool: pool}
}

func (s *AppointmentReadStore) ListBusyIntervals(
	ctx context.Context,
	key schedule.CalendarKey,
	from, to time.Time,
) ([]schedule.Interval, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT start_at, end_at
		FROM appointments
		WHERE store_id = $1
			AND staff_id IS NOT DISTINCT FROM $2
			AND status <> 'cancelled'
			AND start_at < $4
			AND end_at > $3
		ORDER BY start_at
	`, key.StoreID, pgconv.UUIDPtrToPgtype(key.StaffID), from, to)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list busy intervals", err)
	}
	defer rows.Close()

	var busy []schedule.Interval
	for rows.Next() {
		var iv schedule.Interval
		if err := rows.Scan(&iv.Start, &iv.End); err != nil {
			return nil, infra.WrapRepoErr("failed to scan busy interval", err)
		}
		busy = append(busy, iv)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate busy intervals", err)
	}
	return busy, nil
}

func (s *AppointmentReadStore) ListByStoreAndRange(
	ctx context.Context,
	storeID uuid.UUID,
	from, to time.Time,
	status *appointment.Status,
) ([]*queries.AppointmentView, error) {
	query := `
		SELECT id, store_id, staff_id, service_id, client_name, client_phone, client_email, note,
			start_at, end_at, status, created_at
		FROM appointments
		WHERE store_id = $1 AND start_at >= $2 AND start_at < $3
	`
	args := []any{storeID, from, to}
	if status != nil {
		query += ` AND status = $4`
		args = append(args, status.String())
	}
	query += ` ORDER BY start_at`

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list appointments", err)
	}
	defer rows.Close()

	var views []*queries.AppointmentView
	for rows.Next() {
		view, err := scanAppointmentView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan appointment", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate appointments", err)
	}
	return views, nil
}

func (s *AppointmentReadStore) FindByID(ctx context.Context, storeID, id uuid.UUID) (*queries.AppointmentView, error) {
	view, err := scanAppointmentView(s.pool.QueryRow(ctx, `
		SELECT id, store_id, staff_id, service_id, client_name, client_phone, client_email, note,
			start_at, end_at, status, created_at
		FROM appointments
		WHERE id = $1 AND store_id = $2
	`, id, storeID))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("appointment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load appointment", err)
	}
	return view, nil
}

func scanAppointmentView(row pgx.Row) (*queries.AppointmentView, error) {
	var (
		view               queries.AppointmentView
		staffID, serviceID pgtype.UUID
	)
	err := row.Scan(&view.ID, &view.StoreID, &staffID, &serviceID,
		&view.ClientName, &view.ClientPhone, &view.ClientEmail, &view.Note,
		&view.StartAt, &view.EndAt, &view.Status, &view.CreatedAt)
	if err != nil {
		return nil, err
	}
	view.StaffID = pgconv.UUIDPtrFromPgtype(staffID)
	view.ServiceID = pgconv.UUIDPtrFromPgtype(serviceID)
	return &view, nil
}
