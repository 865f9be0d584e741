package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/wayplan/backend/internal/domain"
)

// CityRepo defines the read operations for the city catalog.
// Cities are reference data — this API never writes them (seeding happens
// out of band), so the interface is read-only.
type CityRepo interface {
	// Search returns one page of cities whose name contains query
	// (case-insensitive), most popular first, plus the total match count.
	// An empty query matches all cities.
	Search(ctx context.Context, query string, p domain.PaginationParams) ([]domain.City, int64, error)

	// GetByID retrieves a single city.
	// Returns domain.ErrNotFound if no city with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.City, error)

	// GetByIDs returns the cities for the given IDs, keyed by ID.
	// IDs that resolve to nothing are simply absent from the map — callers
	// use this to expand itinerary references defensively.
	GetByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]domain.City, error)
}

// ActivityRepo defines the read operations for the activity catalog.
type ActivityRepo interface {
	// ListByCity returns all activities belonging to a city, ordered by name.
	ListByCity(ctx context.Context, cityID uuid.UUID) ([]domain.Activity, error)

	// GetByIDs returns the activities for the given IDs, keyed by ID.
	// Missing IDs are absent from the map.
	GetByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]domain.Activity, error)
}

// pgCityRepo is the Postgres implementation of CityRepo.
type pgCityRepo struct {
	db db
}

// NewCityRepo constructs a CityRepo backed by the provided db connection.
func NewCityRepo(db db) CityRepo {
	return &pgCityRepo{db: db}
}

const cityColumns = `id, name, country, region, cost_index, popularity, description, image_urls, created_at`

func (r *pgCityRepo) Search(ctx context.Context, query string, p domain.PaginationParams) ([]domain.City, int64, error) {
	const countQ = `SELECT count(*) FROM cities WHERE name ILIKE '%' || @query || '%'`

	var total int64
	if err := r.db.QueryRow(ctx, countQ, pgx.NamedArgs{"query": query}).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("repo.CityRepo.Search: count: %w", err)
	}

	const q = `
		SELECT ` + cityColumns + `
		FROM cities
		WHERE name ILIKE '%' || @query || '%'
		ORDER BY popularity DESC, name
		LIMIT @limit OFFSET @offset`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{
		"query":  query,
		"limit":  p.Limit,
		"offset": p.Offset(),
	})
	if err != nil {
		return nil, 0, fmt.Errorf("repo.CityRepo.Search: %w", err)
	}
	defer rows.Close()

	cities := []domain.City{}
	for rows.Next() {
		c, err := scanCity(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("repo.CityRepo.Search: scan: %w", err)
		}
		cities = append(cities, c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("repo.CityRepo.Search: rows: %w", err)
	}
	return cities, total, nil
}

func (r *pgCityRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.City, error) {
	const q = `SELECT ` + cityColumns + ` FROM cities WHERE id = @id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	result, err := scanCity(row)
	if err != nil {
		return domain.City{}, fmt.Errorf("repo.CityRepo.GetByID: %w", err)
	}
	return result, nil
}

func (r *pgCityRepo) GetByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]domain.City, error) {
	result := make(map[uuid.UUID]domain.City, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	const q = `SELECT ` + cityColumns + ` FROM cities WHERE id = ANY(@ids)`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"ids": ids})
	if err != nil {
		return nil, fmt.Errorf("repo.CityRepo.GetByIDs: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		c, err := scanCity(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.CityRepo.GetByIDs: scan: %w", err)
		}
		result[c.ID] = c
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.CityRepo.GetByIDs: rows: %w", err)
	}
	return result, nil
}

// pgActivityRepo is the Postgres implementation of ActivityRepo.
type pgActivityRepo struct {
	db db
}

// NewActivityRepo constructs an ActivityRepo backed by the provided db connection.
func NewActivityRepo(db db) ActivityRepo {
	return &pgActivityRepo{db: db}
}

const activityColumns = `id, city_id, name, description, cost, duration, category, image_urls, created_at`

func (r *pgActivityRepo) ListByCity(ctx context.Context, cityID uuid.UUID) ([]domain.Activity, error) {
	const q = `
		SELECT ` + activityColumns + `
		FROM activities
		WHERE city_id = @city_id
		ORDER BY name`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"city_id": cityID})
	if err != nil {
		return nil, fmt.Errorf("repo.ActivityRepo.ListByCity: %w", err)
	}
	defer rows.Close()

	activities := []domain.Activity{}
	for rows.Next() {
		a, err := scanActivity(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.ActivityRepo.ListByCity: scan: %w", err)
		}
		activities = append(activities, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.ActivityRepo.ListByCity: rows: %w", err)
	}
	return activities, nil
}

func (r *pgActivityRepo) GetByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]domain.Activity, error) {
	result := make(map[uuid.UUID]domain.Activity, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	const q = `SELECT ` + activityColumns + ` FROM activities WHERE id = ANY(@ids)`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"ids": ids})
	if err != nil {
		return nil, fmt.Errorf("repo.ActivityRepo.GetByIDs: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		a, err := scanActivity(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.ActivityRepo.GetByIDs: scan: %w", err)
		}
		result[a.ID] = a
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.ActivityRepo.GetByIDs: rows: %w", err)
	}
	return result, nil
}

// scanCity maps a single database row into a domain.City.
func scanCity(s scanner) (domain.City, error) {
	var (
		c         domain.City
		id        pgtype.UUID
		imageJSON []byte
	)
	err := s.Scan(&id, &c.Name, &c.Country, &c.Region, &c.CostIndex, &c.Popularity,
		&c.Description, &imageJSON, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.City{}, domain.ErrNotFound
		}
		return domain.City{}, err
	}
	c.ID = uuid.UUID(id.Bytes)
	if err := unmarshalImageURLs(imageJSON, &c.ImageURLs); err != nil {
		return domain.City{}, err
	}
	return c, nil
}

// scanActivity maps a single database row into a domain.Activity.
func scanActivity(s scanner) (domain.Activity, error) {
	var (
		a         domain.Activity
		id        pgtype.UUID
		cityID    pgtype.UUID
		imageJSON []byte
	)
	err := s.Scan(&id, &cityID, &a.Name, &a.Description, &a.Cost, &a.Duration,
		&a.Category, &imageJSON, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Activity{}, domain.ErrNotFound
		}
		return domain.Activity{}, err
	}
	a.ID = uuid.UUID(id.Bytes)
	a.CityID = uuid.UUID(cityID.Bytes)
	if err := unmarshalImageURLs(imageJSON, &a.ImageURLs); err != nil {
		return domain.Activity{}, err
	}
	return a, nil
}

// unmarshalImageURLs decodes the image_urls JSONB column into a string
// slice, tolerating NULL/empty payloads.
func unmarshalImageURLs(raw []byte, dst *[]string) error {
	*dst = []string{}
	if len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("unmarshal image_urls: %w", err)
	}
	return nil
}
