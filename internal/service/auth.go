package service

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/wayplan/backend/internal/auth"
	"github.com/wayplan/backend/internal/domain"
	"github.com/wayplan/backend/internal/repo"
)

// minPasswordLength is the minimum accepted password length at signup.
const minPasswordLength = 8

// AuthService implements account signup and login. Passwords are stored as
// bcrypt hashes; successful calls return a signed bearer token whose
// subject is the user's ID. Everything downstream trusts that token — the
// itinerary service never sees credentials.
type AuthService struct {
	users  repo.UserRepo
	secret []byte
}

// NewAuthService constructs an AuthService backed by the provided UserRepo,
// signing tokens with secret.
func NewAuthService(users repo.UserRepo, secret []byte) *AuthService {
	return &AuthService{users: users, secret: secret}
}

// Signup validates the input, creates the account, and returns it together
// with a fresh token. Returns domain.ErrConflict if the email is taken.
func (s *AuthService) Signup(ctx context.Context, name, email, password string) (domain.User, string, error) {
	if strings.TrimSpace(name) == "" {
		return domain.User{}, "", fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return domain.User{}, "", fmt.Errorf("%w: a valid email is required", domain.ErrValidation)
	}
	if len(password) < minPasswordLength {
		return domain.User{}, "", fmt.Errorf("%w: password must be at least %d characters", domain.ErrValidation, minPasswordLength)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return domain.User{}, "", fmt.Errorf("service.AuthService.Signup: hash password: %w", err)
	}

	user, err := s.users.Create(ctx, domain.User{
		Name:         strings.TrimSpace(name),
		Email:        email,
		PasswordHash: string(hash),
	})
	if err != nil {
		return domain.User{}, "", fmt.Errorf("service.AuthService.Signup: %w", err)
	}

	token, err := auth.Issue(s.secret, user.ID, auth.DefaultTTL)
	if err != nil {
		return domain.User{}, "", fmt.Errorf("service.AuthService.Signup: %w", err)
	}
	return user, token, nil
}

// Login verifies the credentials and returns the user with a fresh token.
// Unknown emails and wrong passwords both yield domain.ErrForbidden so the
// response doesn't reveal which half was wrong.
func (s *AuthService) Login(ctx context.Context, email, password string) (domain.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return domain.User{}, "", fmt.Errorf("%w: invalid credentials", domain.ErrForbidden)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return domain.User{}, "", fmt.Errorf("%w: invalid credentials", domain.ErrForbidden)
	}

	token, err := auth.Issue(s.secret, user.ID, auth.DefaultTTL)
	if err != nil {
		return domain.User{}, "", fmt.Errorf("service.AuthService.Login: %w", err)
	}
	return user, token, nil
}
