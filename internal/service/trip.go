// Package service contains the business logic for the trip planner API.
// Services validate inputs, enforce ownership, and orchestrate repo calls.
// No SQL lives here — services depend on repo interfaces, not implementations.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/wayplan/backend/internal/domain"
	"github.com/wayplan/backend/internal/repo"
)

// copyNamePrefix marks a trip created by the copy operation.
const copyNamePrefix = "Copy of "

// ItineraryService implements the trip aggregate operations: CRUD, the
// wholesale stop replacement with budget recompute, the manual budget
// merge, and trip copying. Every mutating operation loads the trip first
// and checks ownership before any state changes, so an unauthorized caller
// can never leave partial writes behind.
type ItineraryService struct {
	trips      repo.TripRepo
	cities     repo.CityRepo
	activities repo.ActivityRepo
	log        *slog.Logger
}

// NewItineraryService constructs an ItineraryService backed by the provided repos.
// The logger is used only for non-fatal read-path warnings (dangling catalog
// references); pass slog.Default() if no specific logger is wired.
func NewItineraryService(trips repo.TripRepo, cities repo.CityRepo, activities repo.ActivityRepo, log *slog.Logger) *ItineraryService {
	if log == nil {
		log = slog.Default()
	}
	return &ItineraryService{trips: trips, cities: cities, activities: activities, log: log}
}

// Create validates and persists a new trip owned by ownerID.
// New trips start with no stops and an all-zero budget.
func (s *ItineraryService) Create(ctx context.Context, ownerID uuid.UUID, trip domain.Trip) (domain.Trip, error) {
	trip.OwnerID = ownerID
	trip.Stops = []domain.Stop{}
	trip.Budget = domain.Budget{}

	if err := validateTrip(trip); err != nil {
		return domain.Trip{}, err
	}

	result, err := s.trips.Create(ctx, trip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.ItineraryService.Create: %w", err)
	}
	return result, nil
}

// ListByOwner returns one page of the requester's trips, newest first,
// plus the total count. Always returns a non-nil slice.
func (s *ItineraryService) ListByOwner(ctx context.Context, ownerID uuid.UUID, p domain.PaginationParams) ([]domain.Trip, int64, error) {
	trips, total, err := s.trips.ListByOwnerPaged(ctx, ownerID, p)
	if err != nil {
		return nil, 0, fmt.Errorf("service.ItineraryService.ListByOwner: %w", err)
	}
	if trips == nil {
		trips = []domain.Trip{}
	}
	return trips, total, nil
}

// Get returns a trip with its catalog references expanded for display.
// The owner may always read their trip; anyone else may read it only when
// it is public. Dangling city/activity references never fail the read —
// they are logged and surfaced as unresolved entries in the view.
func (s *ItineraryService) Get(ctx context.Context, tripID, requesterID uuid.UUID) (domain.TripView, error) {
	trip, err := s.trips.GetByID(ctx, tripID)
	if err != nil {
		return domain.TripView{}, fmt.Errorf("service.ItineraryService.Get: %w", err)
	}
	if trip.OwnerID != requesterID && !trip.IsPublic {
		return domain.TripView{}, fmt.Errorf("service.ItineraryService.Get: %w", domain.ErrForbidden)
	}

	view, err := s.expand(ctx, trip)
	if err != nil {
		return domain.TripView{}, fmt.Errorf("service.ItineraryService.Get: %w", err)
	}
	return view, nil
}

// Delete removes a trip. Only the owner may delete it.
func (s *ItineraryService) Delete(ctx context.Context, tripID, requesterID uuid.UUID) error {
	trip, err := s.trips.GetByID(ctx, tripID)
	if err != nil {
		return fmt.Errorf("service.ItineraryService.Delete: %w", err)
	}
	if trip.OwnerID != requesterID {
		return fmt.Errorf("service.ItineraryService.Delete: %w", domain.ErrForbidden)
	}

	if err := s.trips.Delete(ctx, tripID); err != nil {
		return fmt.Errorf("service.ItineraryService.Delete: %w", err)
	}
	return nil
}

// ReplaceStops wholesale-replaces the trip's stop list and recomputes the
// derived budget fields in the same persisted write.
//
// The submitted list is authoritative: stops absent from it are removed, and
// array order is itinerary order. After replacement, budget.activities is
// the sum of cost overrides across all references (absent override = 0) and
// budget.total is rederived from the four category values.
//
// expectedVersion, when non-nil, must match the stored trip version or the
// call fails with domain.ErrConflict and nothing changes.
func (s *ItineraryService) ReplaceStops(ctx context.Context, tripID, requesterID uuid.UUID, stops []domain.Stop, expectedVersion *int) (domain.Trip, error) {
	trip, err := s.trips.GetByID(ctx, tripID)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.ItineraryService.ReplaceStops: %w", err)
	}
	if trip.OwnerID != requesterID {
		return domain.Trip{}, fmt.Errorf("service.ItineraryService.ReplaceStops: %w", domain.ErrForbidden)
	}

	if stops == nil {
		stops = []domain.Stop{}
	}
	for i, stop := range stops {
		if err := validateStop(i, stop); err != nil {
			return domain.Trip{}, err
		}
	}

	budget := trip.Budget.Recompute(domain.ActivitiesTotal(stops))

	result, err := s.trips.ReplaceStops(ctx, tripID, stops, budget, expectedVersion)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.ItineraryService.ReplaceStops: %w", err)
	}
	return result, nil
}

// UpdateBudget shallow-merges the supplied budget fields into the trip's
// budget. Unlike ReplaceStops, the total is NOT recomputed: omitting total
// from the patch keeps the previous total even when category values change
// underneath it. That asymmetry is the documented manual-edit contract —
// total only resyncs via ReplaceStops or an explicit total in the patch.
func (s *ItineraryService) UpdateBudget(ctx context.Context, tripID, requesterID uuid.UUID, patch domain.BudgetPatch, expectedVersion *int) (domain.Trip, error) {
	trip, err := s.trips.GetByID(ctx, tripID)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.ItineraryService.UpdateBudget: %w", err)
	}
	if trip.OwnerID != requesterID {
		return domain.Trip{}, fmt.Errorf("service.ItineraryService.UpdateBudget: %w", domain.ErrForbidden)
	}

	if patch.IsEmpty() {
		return domain.Trip{}, fmt.Errorf("%w: budget must supply at least one field", domain.ErrValidation)
	}
	if err := validateBudgetPatch(patch); err != nil {
		return domain.Trip{}, err
	}

	merged := trip.Budget.Merge(patch)

	result, err := s.trips.UpdateBudget(ctx, tripID, merged, expectedVersion)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.ItineraryService.UpdateBudget: %w", err)
	}
	return result, nil
}

// Copy clones a trip into a new aggregate owned by the requester. The
// source must be public or already owned by the requester. Stops and their
// activity references are deep-copied, the name gains a "Copy of " prefix,
// and the clone is always born private regardless of the source.
func (s *ItineraryService) Copy(ctx context.Context, sourceTripID, requesterID uuid.UUID) (domain.Trip, error) {
	src, err := s.trips.GetByID(ctx, sourceTripID)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.ItineraryService.Copy: %w", err)
	}
	if src.OwnerID != requesterID && !src.IsPublic {
		return domain.Trip{}, fmt.Errorf("service.ItineraryService.Copy: %w", domain.ErrForbidden)
	}

	clone := domain.Trip{
		OwnerID:     requesterID,
		Name:        copyNamePrefix + src.Name,
		Description: src.Description,
		StartDate:   src.StartDate,
		EndDate:     src.EndDate,
		CoverPhoto:  src.CoverPhoto,
		Budget:      src.Budget,
		IsPublic:    false,
		Stops:       domain.CloneStops(src.Stops),
	}

	result, err := s.trips.Create(ctx, clone)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.ItineraryService.Copy: %w", err)
	}
	return result, nil
}

// expand resolves the trip's city and activity references against the
// catalog in two batched lookups. Missing references yield nil pointers in
// the view and a warning log line, never an error.
func (s *ItineraryService) expand(ctx context.Context, trip domain.Trip) (domain.TripView, error) {
	cityIDs := make([]uuid.UUID, 0, len(trip.Stops))
	activityIDs := []uuid.UUID{}
	seenCities := map[uuid.UUID]bool{}
	seenActivities := map[uuid.UUID]bool{}
	for _, stop := range trip.Stops {
		if !seenCities[stop.CityID] {
			seenCities[stop.CityID] = true
			cityIDs = append(cityIDs, stop.CityID)
		}
		for _, ref := range stop.Activities {
			if !seenActivities[ref.ActivityID] {
				seenActivities[ref.ActivityID] = true
				activityIDs = append(activityIDs, ref.ActivityID)
			}
		}
	}

	cities, err := s.cities.GetByIDs(ctx, cityIDs)
	if err != nil {
		return domain.TripView{}, err
	}
	activities, err := s.activities.GetByIDs(ctx, activityIDs)
	if err != nil {
		return domain.TripView{}, err
	}

	view := domain.TripView{Trip: trip, Stops: make([]domain.StopView, len(trip.Stops))}
	for i, stop := range trip.Stops {
		sv := domain.StopView{Stop: stop, Activities: make([]domain.ActivityRefView, len(stop.Activities))}
		if city, ok := cities[stop.CityID]; ok {
			sv.City = &city
		} else {
			s.log.WarnContext(ctx, "dangling city reference",
				"trip_id", trip.ID, "city_id", stop.CityID)
		}
		for j, ref := range stop.Activities {
			av := domain.ActivityRefView{Ref: ref}
			if act, ok := activities[ref.ActivityID]; ok {
				av.Activity = &act
			} else {
				s.log.WarnContext(ctx, "dangling activity reference",
					"trip_id", trip.ID, "activity_id", ref.ActivityID)
			}
			sv.Activities[j] = av
		}
		view.Stops[i] = sv
	}
	return view, nil
}

// validateTrip enforces the trip creation rules.
//   - Name must be non-empty (whitespace-only names are rejected).
//   - Start and end dates are required; end must not be before start.
func validateTrip(trip domain.Trip) error {
	if strings.TrimSpace(trip.Name) == "" {
		return fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if trip.StartDate.IsZero() {
		return fmt.Errorf("%w: start_date is required", domain.ErrValidation)
	}
	if trip.EndDate.IsZero() {
		return fmt.Errorf("%w: end_date is required", domain.ErrValidation)
	}
	if trip.EndDate.Before(trip.StartDate) {
		return fmt.Errorf("%w: end_date must not be before start_date", domain.ErrValidation)
	}
	return nil
}

// validateStop enforces the per-stop rules for stop replacement. Stops are
// deliberately NOT checked against the trip's overall date range and may
// appear in any chronological order — array order is itinerary order, and
// revisiting a city is legal.
func validateStop(index int, stop domain.Stop) error {
	if stop.CityID == uuid.Nil {
		return fmt.Errorf("%w: stops[%d]: city_id is required", domain.ErrValidation, index)
	}
	if stop.StartDate.IsZero() || stop.EndDate.IsZero() {
		return fmt.Errorf("%w: stops[%d]: start_date and end_date are required", domain.ErrValidation, index)
	}
	if stop.EndDate.Before(stop.StartDate) {
		return fmt.Errorf("%w: stops[%d]: end_date must not be before start_date", domain.ErrValidation, index)
	}
	for j, ref := range stop.Activities {
		if ref.ActivityID == uuid.Nil {
			return fmt.Errorf("%w: stops[%d].activities[%d]: activity_id is required", domain.ErrValidation, index, j)
		}
		if ref.CostOverride != nil && *ref.CostOverride < 0 {
			return fmt.Errorf("%w: stops[%d].activities[%d]: cost_override must not be negative", domain.ErrValidation, index, j)
		}
	}
	return nil
}

// validateBudgetPatch rejects negative values on any supplied field.
func validateBudgetPatch(p domain.BudgetPatch) error {
	fields := map[string]*float64{
		"total":         p.Total,
		"transport":     p.Transport,
		"accommodation": p.Accommodation,
		"activities":    p.Activities,
		"meals":         p.Meals,
	}
	for name, v := range fields {
		if v != nil && *v < 0 {
			return fmt.Errorf("%w: budget.%s must not be negative", domain.ErrValidation, name)
		}
	}
	return nil
}
