package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist in the database.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. missing required field, end date before start date).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrForbidden is returned when the requester is not allowed to perform the
// operation — most commonly a non-owner touching a trip, or bad credentials.
// Handlers should map this to HTTP 403 (401 for credential failures).
var ErrForbidden = errors.New("forbidden")

// ErrConflict is returned when a write collides with concurrent state: a
// stale trip version token, or a signup against an already-taken email.
// Handlers should map this to HTTP 409.
var ErrConflict = errors.New("conflict")
