package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is an account record. PasswordHash is a bcrypt hash and never
// leaves the repo/service layers — handlers must not serialize it.
type User struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	Preferences  Preferences
	SavedCityIDs []uuid.UUID
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Preferences holds display preferences attached to a user.
// Stored as JSONB alongside the user row.
type Preferences struct {
	Currency     string `json:"currency,omitempty"`
	DistanceUnit string `json:"distance_unit,omitempty"` // "km" or "mi"
}
