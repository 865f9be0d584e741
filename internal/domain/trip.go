// Package domain contains the core data types for the trip planner API.
// It is imported by every other internal package (repo, service, handler)
// and depends on nothing but the uuid type.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Trip is the aggregate root of the itinerary model. It owns an ordered
// list of stops and a denormalized budget summary; stops are embedded in
// the trip (persisted as one JSONB column), never stored as separate rows,
// so a stop-list replacement and its budget recompute land in one write.
//
// Version is an optimistic concurrency token. Every mutating write bumps
// it; callers may send their last-seen version with a mutation to detect
// a concurrent edit (ErrConflict) instead of silently losing it.
type Trip struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Name        string
	Description string
	StartDate   time.Time
	EndDate     time.Time
	CoverPhoto  string
	Budget      Budget
	IsPublic    bool
	Stops       []Stop
	Version     int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Stop is an ordered visit to a city within a trip. Slice order in
// Trip.Stops is itinerary order and is significant; the service never
// reorders or merges stops — replacement is always wholesale.
//
// The JSON tags define the shape stored in the trips.stops JSONB column.
type Stop struct {
	CityID     uuid.UUID     `json:"city_id"`
	StartDate  time.Time     `json:"start_date"`
	EndDate    time.Time     `json:"end_date"`
	Activities []ActivityRef `json:"activities"`
}

// ActivityRef is a trip-scoped pointer to a catalog activity.
// CostOverride, when present, is the authoritative cost of this reference
// for budgeting; when absent the reference contributes zero to the
// activities total (the catalog cost is deliberately not consulted).
type ActivityRef struct {
	ActivityID   uuid.UUID `json:"activity_id"`
	Time         string    `json:"time,omitempty"`
	Notes        string    `json:"notes,omitempty"`
	CostOverride *float64  `json:"cost_override,omitempty"`
}

// CloneStops returns a deep copy of stops. Activity reference slices and
// cost override pointers are duplicated so mutating the copy can never
// alter the source — required by the trip copy operation.
func CloneStops(stops []Stop) []Stop {
	if stops == nil {
		return nil
	}
	out := make([]Stop, len(stops))
	for i, s := range stops {
		cp := s
		if s.Activities != nil {
			cp.Activities = make([]ActivityRef, len(s.Activities))
			for j, a := range s.Activities {
				ref := a
				if a.CostOverride != nil {
					v := *a.CostOverride
					ref.CostOverride = &v
				}
				cp.Activities[j] = ref
			}
		}
		out[i] = cp
	}
	return out
}
