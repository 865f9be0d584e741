// Package handler implements the HTTP handlers for the trip planner API.
// All handlers are methods on Server, which implements gen.StrictServerInterface.
// Methods are split into domain-specific files (health.go, trip.go, etc.) but
// all share the same Server struct so they can access its dependencies.
package handler

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/wayplan/backend/internal/auth"
	"github.com/wayplan/backend/internal/domain"
)

// ItineraryServicer defines the business operations the trip handler depends on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the database or service layer.
type ItineraryServicer interface {
	Create(ctx context.Context, ownerID uuid.UUID, trip domain.Trip) (domain.Trip, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, p domain.PaginationParams) ([]domain.Trip, int64, error)
	Get(ctx context.Context, tripID, requesterID uuid.UUID) (domain.TripView, error)
	Delete(ctx context.Context, tripID, requesterID uuid.UUID) error
	ReplaceStops(ctx context.Context, tripID, requesterID uuid.UUID, stops []domain.Stop, expectedVersion *int) (domain.Trip, error)
	UpdateBudget(ctx context.Context, tripID, requesterID uuid.UUID, patch domain.BudgetPatch, expectedVersion *int) (domain.Trip, error)
	Copy(ctx context.Context, sourceTripID, requesterID uuid.UUID) (domain.Trip, error)
}

// AuthServicer defines the account operations the auth handler depends on.
type AuthServicer interface {
	Signup(ctx context.Context, name, email, password string) (domain.User, string, error)
	Login(ctx context.Context, email, password string) (domain.User, string, error)
}

// CatalogServicer defines the read-only catalog queries the city handler
// depends on.
type CatalogServicer interface {
	SearchCities(ctx context.Context, query string, p domain.PaginationParams) ([]domain.City, int64, error)
	GetCity(ctx context.Context, id uuid.UUID) (domain.City, error)
	ListActivities(ctx context.Context, cityID uuid.UUID) ([]domain.Activity, error)
}

// Server implements gen.StrictServerInterface for all API endpoints.
// Wire it in main.go via gen.NewStrictHandler(server, nil).
// Methods are in domain-specific files but all operate on this struct.
type Server struct {
	trips    ItineraryServicer
	accounts AuthServicer
	catalog  CatalogServicer
}

// NewServer constructs the Server with all its dependencies.
func NewServer(trips ItineraryServicer, accounts AuthServicer, catalog CatalogServicer) *Server {
	return &Server{trips: trips, accounts: accounts, catalog: catalog}
}

// requesterID returns the authenticated user's ID from the request context.
// The auth middleware guarantees it is present on protected routes, so a
// missing ID means a wiring bug, not a client error.
func requesterID(ctx context.Context) (uuid.UUID, error) {
	id, ok := auth.UserID(ctx)
	if !ok {
		return uuid.Nil, errors.New("handler: no authenticated user in context")
	}
	return id, nil
}
