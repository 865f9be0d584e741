package domain

import (
	"time"

	"github.com/google/uuid"
)

// City is read-mostly catalog reference data. Trips reference cities by ID
// and never embed them; deleting a city can leave dangling references in
// existing itineraries, which readers degrade gracefully (see TripView).
type City struct {
	ID          uuid.UUID
	Name        string
	Country     string
	Region      string
	CostIndex   int // 1 (cheap) to 5 (expensive)
	Popularity  int
	Description string
	ImageURLs   []string
	CreatedAt   time.Time
}

// Activity is a bookable thing to do in a city. Cost is the nominal
// catalog price; a trip's activity reference may override it per-trip.
type Activity struct {
	ID          uuid.UUID
	CityID      uuid.UUID
	Name        string
	Description string
	Cost        float64
	Duration    string // free-form, e.g. "2h", "half day"
	Category    string
	ImageURLs   []string
	CreatedAt   time.Time
}
