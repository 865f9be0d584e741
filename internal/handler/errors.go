package handler

import (
	"strings"

	"github.com/wayplan/backend/internal/handler/gen"
)

// notFoundBody returns an ErrorResponse for a missing resource.
// The caller supplies the human-readable message (e.g. "trip not found")
// because the handler is the layer that knows what was being looked up.
func notFoundBody(message string) gen.ErrorResponse {
	return gen.ErrorResponse{Error: gen.ErrorDetail{Code: "not_found", Message: message}}
}

// validationBody returns an ErrorResponse for a domain validation failure.
// The message is extracted from the wrapped domain.ErrValidation error.
func validationBody(err error) gen.ErrorResponse {
	return gen.ErrorResponse{Error: gen.ErrorDetail{Code: "validation_error", Message: unwrapMessage(err)}}
}

// requestBody returns an ErrorResponse for a bad request rejected before
// reaching the service layer (e.g. missing or malformed body).
func requestBody(message string) gen.ErrorResponse {
	return gen.ErrorResponse{Error: gen.ErrorDetail{Code: "validation_error", Message: message}}
}

// forbiddenBody returns an ErrorResponse for an ownership or visibility
// denial. 403 is reserved for authenticated callers lacking rights; a
// missing or bad token is rejected with 401 by the auth middleware before
// any handler runs.
func forbiddenBody(message string) gen.ErrorResponse {
	return gen.ErrorResponse{Error: gen.ErrorDetail{Code: "forbidden", Message: message}}
}

// conflictBody returns an ErrorResponse for a stale-version write or a
// uniqueness collision.
func conflictBody(message string) gen.ErrorResponse {
	return gen.ErrorResponse{Error: gen.ErrorDetail{Code: "conflict", Message: message}}
}

// unauthorizedBody returns an ErrorResponse for failed credential checks.
func unauthorizedBody(message string) gen.ErrorResponse {
	return gen.ErrorResponse{Error: gen.ErrorDetail{Code: "unauthorized", Message: message}}
}

// unwrapMessage extracts the human-readable part from a wrapped sentinel error.
// e.g. "service.ItineraryService.Create: validation error: name is required" → "name is required"
func unwrapMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	for _, marker := range []string{
		"validation error: ",
		"forbidden: ",
		"conflict: ",
	} {
		if idx := strings.LastIndex(msg, marker); idx >= 0 {
			return msg[idx+len(marker):]
		}
	}
	return msg
}
