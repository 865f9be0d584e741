package handler

import (
	"context"
	"errors"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/wayplan/backend/internal/domain"
	"github.com/wayplan/backend/internal/handler/gen"
)

// Signup handles POST /auth/signup.
// A taken email yields 409 rather than 422 so clients can offer "log in
// instead" without parsing the message.
func (s *Server) Signup(ctx context.Context, req gen.SignupRequestObject) (gen.SignupResponseObject, error) {
	if req.Body == nil {
		return gen.Signup422JSONResponse(requestBody("request body is required")), nil
	}

	user, token, err := s.accounts.Signup(ctx, req.Body.Name, string(req.Body.Email), req.Body.Password)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return gen.Signup422JSONResponse(validationBody(err)), nil
		}
		if errors.Is(err, domain.ErrConflict) {
			return gen.Signup409JSONResponse(conflictBody("email is already registered")), nil
		}
		return nil, err
	}

	return gen.Signup201JSONResponse{Token: token, User: userToResponse(user)}, nil
}

// Login handles POST /auth/login. Bad credentials always come back as 401
// with the same message regardless of which half was wrong.
func (s *Server) Login(ctx context.Context, req gen.LoginRequestObject) (gen.LoginResponseObject, error) {
	if req.Body == nil {
		return gen.Login422JSONResponse(requestBody("request body is required")), nil
	}

	user, token, err := s.accounts.Login(ctx, string(req.Body.Email), req.Body.Password)
	if err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			return gen.Login401JSONResponse(unauthorizedBody("invalid credentials")), nil
		}
		if errors.Is(err, domain.ErrValidation) {
			return gen.Login422JSONResponse(validationBody(err)), nil
		}
		return nil, err
	}

	return gen.Login200JSONResponse{Token: token, User: userToResponse(user)}, nil
}

// userToResponse converts a domain.User into the API representation.
// The password hash never leaves the service layer's storage types.
func userToResponse(u domain.User) gen.User {
	return gen.User{
		Id:        u.ID,
		Name:      u.Name,
		Email:     openapi_types.Email(u.Email),
		CreatedAt: u.CreatedAt,
	}
}
