package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/wayplan/backend/internal/domain"
	"github.com/wayplan/backend/internal/repo"
)

// CatalogService implements the read-only city/activity catalog queries.
// The itinerary service never calls these — clients resolve references
// before submitting stop lists.
type CatalogService struct {
	cities     repo.CityRepo
	activities repo.ActivityRepo
}

// NewCatalogService constructs a CatalogService backed by the provided repos.
func NewCatalogService(cities repo.CityRepo, activities repo.ActivityRepo) *CatalogService {
	return &CatalogService{cities: cities, activities: activities}
}

// SearchCities returns one page of cities matching the query substring,
// most popular first. Always returns a non-nil slice.
func (s *CatalogService) SearchCities(ctx context.Context, query string, p domain.PaginationParams) ([]domain.City, int64, error) {
	cities, total, err := s.cities.Search(ctx, strings.TrimSpace(query), p)
	if err != nil {
		return nil, 0, fmt.Errorf("service.CatalogService.SearchCities: %w", err)
	}
	if cities == nil {
		cities = []domain.City{}
	}
	return cities, total, nil
}

// GetCity returns a single city by ID.
func (s *CatalogService) GetCity(ctx context.Context, id uuid.UUID) (domain.City, error) {
	city, err := s.cities.GetByID(ctx, id)
	if err != nil {
		return domain.City{}, fmt.Errorf("service.CatalogService.GetCity: %w", err)
	}
	return city, nil
}

// ListActivities returns all activities for a city, ordered by name.
// Returns domain.ErrNotFound when the city itself does not exist, so the
// API can distinguish "unknown city" from "city with no activities".
func (s *CatalogService) ListActivities(ctx context.Context, cityID uuid.UUID) ([]domain.Activity, error) {
	if _, err := s.cities.GetByID(ctx, cityID); err != nil {
		return nil, fmt.Errorf("service.CatalogService.ListActivities: %w", err)
	}

	activities, err := s.activities.ListByCity(ctx, cityID)
	if err != nil {
		return nil, fmt.Errorf("service.CatalogService.ListActivities: %w", err)
	}
	if activities == nil {
		activities = []domain.Activity{}
	}
	return activities, nil
}
