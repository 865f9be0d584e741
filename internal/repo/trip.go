// Package repo contains all database access logic for the trip planner API.
// Each resource has its own file with an interface and a Postgres implementation.
// No business logic lives here — only SQL and type mapping.
package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/wayplan/backend/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test, giving free
// per-test isolation without any manual cleanup.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// tripColumns is the shared SELECT/RETURNING column list for trips.
const tripColumns = `id, owner_id, name, description, start_date, end_date, cover_photo,
		budget_total, budget_transport, budget_accommodation, budget_activities, budget_meals,
		is_public, stops, version, created_at, updated_at`

// TripRepo defines the persistence operations for the Trip aggregate.
// The stop list lives in a JSONB column on the trip row, so a stop
// replacement and its budget recompute are a single-row write — the unit
// of atomicity for the whole aggregate.
//
// ReplaceStops and UpdateBudget take an optional expectedVersion. When
// non-nil, the write only lands if the stored version still matches, and a
// stale token yields domain.ErrConflict. A nil token keeps the legacy
// last-writer-wins behavior.
type TripRepo interface {
	// Create inserts a new trip (including its stops and budget) and returns
	// the persisted record with DB-generated fields populated.
	Create(ctx context.Context, trip domain.Trip) (domain.Trip, error)

	// GetByID retrieves a single trip by its UUID primary key.
	// Returns domain.ErrNotFound if no trip with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error)

	// ListByOwnerPaged returns one page of the owner's trips, most recently
	// created first, plus the total count of the owner's trips.
	ListByOwnerPaged(ctx context.Context, ownerID uuid.UUID, p domain.PaginationParams) ([]domain.Trip, int64, error)

	// ReplaceStops overwrites the trip's stop list and budget in one write
	// and bumps the version. Returns domain.ErrNotFound for an unknown trip
	// and domain.ErrConflict for a stale expectedVersion.
	ReplaceStops(ctx context.Context, tripID uuid.UUID, stops []domain.Stop, budget domain.Budget, expectedVersion *int) (domain.Trip, error)

	// UpdateBudget overwrites only the trip's budget fields and bumps the
	// version. Same error contract as ReplaceStops.
	UpdateBudget(ctx context.Context, tripID uuid.UUID, budget domain.Budget, expectedVersion *int) (domain.Trip, error)

	// Delete removes a trip by ID. Returns domain.ErrNotFound if it does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}

// pgTripRepo is the Postgres implementation of TripRepo.
type pgTripRepo struct {
	db db
}

// NewTripRepo constructs a TripRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewTripRepo(db db) TripRepo {
	return &pgTripRepo{db: db}
}

// Create inserts a new trip row and returns the full persisted record.
func (r *pgTripRepo) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	const q = `
		INSERT INTO trips (owner_id, name, description, start_date, end_date, cover_photo,
			budget_total, budget_transport, budget_accommodation, budget_activities, budget_meals,
			is_public, stops)
		VALUES (@owner_id, @name, @description, @start_date, @end_date, @cover_photo,
			@budget_total, @budget_transport, @budget_accommodation, @budget_activities, @budget_meals,
			@is_public, @stops)
		RETURNING ` + tripColumns

	stopsJSON, err := marshalStops(trip.Stops)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Create: %w", err)
	}

	args := pgx.NamedArgs{
		"owner_id":             trip.OwnerID,
		"name":                 trip.Name,
		"description":          trip.Description,
		"start_date":           trip.StartDate,
		"end_date":             trip.EndDate,
		"cover_photo":          trip.CoverPhoto,
		"budget_total":         trip.Budget.Total,
		"budget_transport":     trip.Budget.Transport,
		"budget_accommodation": trip.Budget.Accommodation,
		"budget_activities":    trip.Budget.Activities,
		"budget_meals":         trip.Budget.Meals,
		"is_public":            trip.IsPublic,
		"stops":                stopsJSON,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanTrip(row)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Create: %w", err)
	}
	return result, nil
}

// GetByID retrieves a trip by primary key.
func (r *pgTripRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	const q = `SELECT ` + tripColumns + ` FROM trips WHERE id = @id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	result, err := scanTrip(row)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.GetByID: %w", err)
	}
	return result, nil
}

// ListByOwnerPaged returns one page of the owner's trips, newest first.
func (r *pgTripRepo) ListByOwnerPaged(ctx context.Context, ownerID uuid.UUID, p domain.PaginationParams) ([]domain.Trip, int64, error) {
	const countQ = `SELECT count(*) FROM trips WHERE owner_id = @owner_id`

	var total int64
	if err := r.db.QueryRow(ctx, countQ, pgx.NamedArgs{"owner_id": ownerID}).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("repo.TripRepo.ListByOwnerPaged: count: %w", err)
	}

	const q = `
		SELECT ` + tripColumns + `
		FROM trips
		WHERE owner_id = @owner_id
		ORDER BY created_at DESC
		LIMIT @limit OFFSET @offset`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{
		"owner_id": ownerID,
		"limit":    p.Limit,
		"offset":   p.Offset(),
	})
	if err != nil {
		return nil, 0, fmt.Errorf("repo.TripRepo.ListByOwnerPaged: %w", err)
	}
	defer rows.Close()

	trips := []domain.Trip{}
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("repo.TripRepo.ListByOwnerPaged: scan: %w", err)
		}
		trips = append(trips, t)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("repo.TripRepo.ListByOwnerPaged: rows: %w", err)
	}

	return trips, total, nil
}

// ReplaceStops overwrites stops and budget in one UPDATE. The version guard
// is folded into the WHERE clause so the compare-and-set is a single
// statement — no read-check-write window.
func (r *pgTripRepo) ReplaceStops(ctx context.Context, tripID uuid.UUID, stops []domain.Stop, budget domain.Budget, expectedVersion *int) (domain.Trip, error) {
	const q = `
		UPDATE trips
		SET stops                = @stops,
		    budget_total         = @budget_total,
		    budget_transport     = @budget_transport,
		    budget_accommodation = @budget_accommodation,
		    budget_activities    = @budget_activities,
		    budget_meals         = @budget_meals,
		    version              = version + 1,
		    updated_at           = now()
		WHERE id = @id
		  AND (@expected_version::int IS NULL OR version = @expected_version)
		RETURNING ` + tripColumns

	stopsJSON, err := marshalStops(stops)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.ReplaceStops: %w", err)
	}

	args := pgx.NamedArgs{
		"id":                   tripID,
		"stops":                stopsJSON,
		"budget_total":         budget.Total,
		"budget_transport":     budget.Transport,
		"budget_accommodation": budget.Accommodation,
		"budget_activities":    budget.Activities,
		"budget_meals":         budget.Meals,
		"expected_version":     expectedVersion,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanTrip(row)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// No row matched: either the trip is gone or the version is stale.
			return domain.Trip{}, fmt.Errorf("repo.TripRepo.ReplaceStops: %w", r.missReason(ctx, tripID))
		}
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.ReplaceStops: %w", err)
	}
	return result, nil
}

// UpdateBudget overwrites only the budget columns and bumps the version.
func (r *pgTripRepo) UpdateBudget(ctx context.Context, tripID uuid.UUID, budget domain.Budget, expectedVersion *int) (domain.Trip, error) {
	const q = `
		UPDATE trips
		SET budget_total         = @budget_total,
		    budget_transport     = @budget_transport,
		    budget_accommodation = @budget_accommodation,
		    budget_activities    = @budget_activities,
		    budget_meals         = @budget_meals,
		    version              = version + 1,
		    updated_at           = now()
		WHERE id = @id
		  AND (@expected_version::int IS NULL OR version = @expected_version)
		RETURNING ` + tripColumns

	args := pgx.NamedArgs{
		"id":                   tripID,
		"budget_total":         budget.Total,
		"budget_transport":     budget.Transport,
		"budget_accommodation": budget.Accommodation,
		"budget_activities":    budget.Activities,
		"budget_meals":         budget.Meals,
		"expected_version":     expectedVersion,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanTrip(row)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Trip{}, fmt.Errorf("repo.TripRepo.UpdateBudget: %w", r.missReason(ctx, tripID))
		}
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.UpdateBudget: %w", err)
	}
	return result, nil
}

// Delete removes a trip by primary key.
func (r *pgTripRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM trips WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.TripRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.TripRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// missReason disambiguates a guarded UPDATE that matched no rows: if the
// trip row still exists the version token was stale (ErrConflict),
// otherwise the trip is gone (ErrNotFound).
func (r *pgTripRepo) missReason(ctx context.Context, tripID uuid.UUID) error {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM trips WHERE id = @id)`,
		pgx.NamedArgs{"id": tripID}).Scan(&exists)
	if err != nil {
		return err
	}
	if exists {
		return domain.ErrConflict
	}
	return domain.ErrNotFound
}

// marshalStops serializes the stop list for the JSONB column.
// A nil slice is stored as an empty JSON array, never SQL NULL.
func marshalStops(stops []domain.Stop) ([]byte, error) {
	if stops == nil {
		stops = []domain.Stop{}
	}
	b, err := json.Marshal(stops)
	if err != nil {
		return nil, fmt.Errorf("marshal stops: %w", err)
	}
	return b, nil
}

// scanner is satisfied by both pgx.Row and pgx.Rows, allowing the scan
// helpers to be reused for both QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}

// scanTrip maps a single database row into a domain.Trip.
// It handles UUID conversion, date columns, and the stops JSONB payload.
func scanTrip(s scanner) (domain.Trip, error) {
	var (
		t         domain.Trip
		id        pgtype.UUID
		ownerID   pgtype.UUID
		startDate pgtype.Date
		endDate   pgtype.Date
		stopsJSON []byte
	)

	err := s.Scan(&id, &ownerID, &t.Name, &t.Description, &startDate, &endDate, &t.CoverPhoto,
		&t.Budget.Total, &t.Budget.Transport, &t.Budget.Accommodation, &t.Budget.Activities, &t.Budget.Meals,
		&t.IsPublic, &stopsJSON, &t.Version, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Trip{}, domain.ErrNotFound
		}
		return domain.Trip{}, err
	}

	t.ID = uuid.UUID(id.Bytes)
	t.OwnerID = uuid.UUID(ownerID.Bytes)
	t.StartDate = startDate.Time
	t.EndDate = endDate.Time

	t.Stops = []domain.Stop{}
	if len(stopsJSON) > 0 {
		if err := json.Unmarshal(stopsJSON, &t.Stops); err != nil {
			return domain.Trip{}, fmt.Errorf("unmarshal stops: %w", err)
		}
	}

	return t, nil
}
