package repository

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/JeannRezende7/MarcaHora/internal/domain/appointment"
	"github.com/JeannRezende7/MarcaHora/internal/infra"
	"github.com/JeannRezende7/MarcaHora/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolationCode = "23505"

// AppointmentRepository is the postgres adapter of the appointment store's
// write side. CreateIfFree serializes per calendar key with a transaction-
// scoped advisory lock, so commits on different stores or staff never contend.
type AppointmentRepository struct {
	pool *pgxpool.Pool
}

func NewAppointmentRepository(pool *pgxpool.Pool) *AppointmentRepository {
	return &AppointmentRepository{pool: pool}
}

func (r *AppointmentRepository) CreateIfFree(
	ctx context.Context,
	appt *appointment.Appointment,
	buffer time.Duration,
) (time.Time, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return time.Time{}, infra.WrapRepoErr("failed to begin booking transaction", err)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			slog.Warn("failed to rollback booking transaction", "error", rollbackErr)
		}
	}()

	// The advisory lock is the serialization point: it is scoped to the
	// calendar key and released automatically at commit or rollback.
	key := appt.CalendarKey()
	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtextextended($1, 0))`, key.String()); err != nil {
		return time.Time{}, infra.WrapRepoErr("failed to acquire calendar lock", err)
	}

	var conflicts int
	err = tx.QueryRow(ctx, `
		SELECT count(1)
		FROM appointments
		WHERE store_id = $1
			AND staff_id IS NOT DISTINCT FROM $2
			AND status <> 'cancelled'
			AND start_at < $3
			AND end_at > $4
	`, appt.StoreID(), pgconv.UUIDPtrToPgtype(appt.StaffID()),
		appt.EndAt().Add(buffer), appt.StartAt().Add(-buffer)).Scan(&conflicts)
	if err != nil {
		return time.Time{}, infra.WrapRepoErr("failed to check slot conflicts", err)
	}
	if conflicts > 0 {
		return time.Time{}, infra.WrapRepoErr("slot already occupied", nil, infra.KindConflict)
	}

	client := appt.Client()
	var createdAt time.Time
	err = tx.QueryRow(ctx, `
		INSERT INTO appointments
			(id, store_id, staff_id, service_id, client_name, client_phone, client_email, note, start_at, end_at, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING created_at
	`, appt.ID(), appt.StoreID(), pgconv.UUIDPtrToPgtype(appt.StaffID()), pgconv.UUIDPtrToPgtype(appt.ServiceID()),
		client.Name, client.Phone, client.Email, client.Note,
		appt.StartAt(), appt.EndAt(), appt.Status().String()).Scan(&createdAt)
	if err != nil {
		if isUniqueViolation(err) {
			// Backstop index on (store calendar, start_at); only reachable if
			// the advisory lock was bypassed.
			return time.Time{}, infra.WrapRepoErr("slot already occupied", err, infra.KindConflict)
		}
		return time.Time{}, infra.WrapRepoErr("failed to insert appointment", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return time.Time{}, infra.WrapRepoErr("failed to commit booking transaction", err)
	}
	return createdAt, nil
}

func (r *AppointmentRepository) UpdateStatus(
	ctx context.Context,
	storeID, id uuid.UUID,
	next appointment.Status,
) (*appointment.Appointment, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to begin status transaction", err)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			slog.Warn("failed to rollback status transaction", "error", rollbackErr)
		}
	}()

	appt, err := scanAppointment(tx.QueryRow(ctx, `
		SELECT id, store_id, staff_id, service_id, client_name, client_phone, client_email, note,
			start_at, end_at, status, created_at
		FROM appointments
		WHERE id = $1 AND store_id = $2
		FOR UPDATE
	`, id, storeID))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("appointment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load appointment", err)
	}

	if err := appt.TransitionTo(next); err != nil {
		return nil, infra.WrapRepoErr("status transition rejected", err, infra.KindInvalidState)
	}

	if _, err := tx.Exec(ctx, `
		UPDATE appointments SET status = $3 WHERE id = $1 AND store_id = $2
	`, id, storeID, next.String()); err != nil {
		return nil, infra.WrapRepoErr("failed to update appointment status", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, infra.WrapRepoErr("failed to commit status transaction", err)
	}
	return appt, nil
}

func scanAppointment(row pgx.Row) (*appointment.Appointment, error) {
	var (
		id, storeID        uuid.UUID
		staffID, serviceID pgtype.UUID
		client             appointment.ClientInfo
		startAt, endAt     time.Time
		status             string
		createdAt          time.Time
	)
	err := row.Scan(&id, &storeID, &staffID, &serviceID,
		&client.Name, &client.Phone, &client.Email, &client.Note,
		&startAt, &endAt, &status, &createdAt)
	if err != nil {
		return nil, err
	}
	return appointment.Reconstruct(
		id, storeID,
		pgconv.UUIDPtrFromPgtype(staffID), pgconv.UUIDPtrFromPgtype(serviceID),
		client, startAt, endAt,
		appointment.Status(status), createdAt,
	), nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
