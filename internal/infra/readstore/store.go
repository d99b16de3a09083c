package readstore

import (
	"context"

	"github.com/JeannRezende7/MarcaHora/internal/domain/store"
	"github.com/JeannRezende7/MarcaHora/internal/infra"
	"github.com/JeannRezende7/MarcaHora/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

// StoreReadStore reads the tenant configuration written by the owner-side
// service. No caching: configuration changes must be visible on the next
// availability query.
type StoreReadStore struct {
	pool *pgxpool.Pool
}

func NewStoreReadStore(pool *pgxpool.Pool) *StoreReadStore {
	return &StoreReadStore{pool: pool}
}

func (s *StoreReadStore) FindStore(ctx context.Context, id uuid.UUID) (*store.Store, error) {
	row := s.pool.QueryRow(ctx, `
		SELECT id, name, time_zone, active, open_at, close_at, weekdays,
			granularity_min, buffer_min, uses_services, uses_staff,
			require_name, require_phone, require_email
		FROM stores
		WHERE id = $1
	`, id)
	st, err := scanStore(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("store not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load store", err)
	}
	return st, nil
}

func (s *StoreReadStore) FindService(ctx context.Context, storeID, id uuid.UUID) (*store.Service, error) {
	row := s.pool.QueryRow(ctx, `
		SELECT id, store_id, name, duration_min, price_cents
		FROM services
		WHERE id = $1 AND store_id = $2
	`, id, storeID)
	svc, err := scanService(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("service not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load service", err)
	}
	return svc, nil
}

func (s *StoreReadStore) FindStaff(ctx context.Context, storeID, id uuid.UUID) (*store.Staff, error) {
	var (
		staffID, stID uuid.UUID
		name          string
		active        bool
	)
	err := s.pool.QueryRow(ctx, `
		SELECT id, store_id, name, active
		FROM staff
		WHERE id = $1 AND store_id = $2
	`, id, storeID).Scan(&staffID, &stID, &name, &active)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("staff not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load staff", err)
	}
	return store.NewStaff(staffID, stID, name, active), nil
}

func (s *StoreReadStore) ListServices(ctx context.Context, storeID uuid.UUID) ([]*store.Service, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, store_id, name, duration_min, price_cents
		FROM services
		WHERE store_id = $1
		ORDER BY name
	`, storeID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list services", err)
	}
	defer rows.Close()

	var services []*store.Service
	for rows.Next() {
		svc, err := scanService(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan service", err)
		}
		services = append(services, svc)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate services", err)
	}
	return services, nil
}

func (s *StoreReadStore) ListActiveStaff(ctx context.Context, storeID uuid.UUID) ([]*store.Staff, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, store_id, name, active
		FROM staff
		WHERE store_id = $1 AND active
		ORDER BY name
	`, storeID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list staff", err)
	}
	defer rows.Close()

	var members []*store.Staff
	for rows.Next() {
		var (
			id, stID uuid.UUID
			name     string
			active   bool
		)
		if err := rows.Scan(&id, &stID, &name, &active); err != nil {
			return nil, infra.WrapRepoErr("failed to scan staff", err)
		}
		members = append(members, store.NewStaff(id, stID, name, active))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate staff", err)
	}
	return members, nil
}

func scanStore(row pgx.Row) (*store.Store, error) {
	var (
		p                         store.StoreParams
		openAt, closeAt, weekdays string
	)
	err := row.Scan(&p.ID, &p.Name, &p.TimeZone, &p.Active, &openAt, &closeAt, &weekdays,
		&p.GranularityMin, &p.BufferMin, &p.UsesServices, &p.UsesStaff,
		&p.RequireName, &p.RequirePhone, &p.RequireEmail)
	if err != nil {
		return nil, err
	}
	if p.OpenAt, err = store.ParseTimeOfDay(openAt); err != nil {
		return nil, err
	}
	if p.CloseAt, err = store.ParseTimeOfDay(closeAt); err != nil {
		return nil, err
	}
	if p.Weekdays, err = store.ParseWeekdaySet(weekdays); err != nil {
		return nil, err
	}
	return store.NewStore(p)
}

func scanService(row pgx.Row) (*store.Service, error) {
	var (
		id, storeID uuid.UUID
		name        string
		durationMin int
		priceCents  pgtype.Int4
	)
	if err := row.Scan(&id, &storeID, &name, &durationMin, &priceCents); err != nil {
		return nil, err
	}
	return store.NewService(id, storeID, name, durationMin, pgconv.Int32PtrFromPgtype(priceCents))
}
