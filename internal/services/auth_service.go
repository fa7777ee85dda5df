package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/mgrady4/civica/internal/auth"
	"github.com/mgrady4/civica/internal/logger"
	"github.com/mgrady4/civica/internal/models"
	"github.com/mgrady4/civica/internal/repository"
)

// Service-level auth errors. These are user-correctable and map to
// 4xx responses, unlike store failures.
var (
	ErrUsernameTaken      = errors.New("username is already taken")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// AuthService registers operator accounts and issues bearer tokens.
type AuthService interface {
	// Register creates an account and returns a signed token for it.
	// Returns ErrUsernameTaken when the username exists.
	Register(ctx context.Context, username, email, password string) (string, error)

	// Login verifies credentials and returns a signed token.
	// Returns ErrInvalidCredentials for an unknown user or bad
	// password; the two cases are deliberately indistinguishable.
	Login(ctx context.Context, username, password string) (string, error)
}

type authService struct {
	users  repository.UserRepository
	issuer *auth.TokenIssuer
	log    *logger.Logger
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(users repository.UserRepository, issuer *auth.TokenIssuer, log *logger.Logger) AuthService {
	return &authService{users: users, issuer: issuer, log: log}
}

func (s *authService) Register(ctx context.Context, username, email, password string) (string, error) {
	existing, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return "", fmt.Errorf("failed to check username: %w", err)
	}
	if existing != nil {
		return "", ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return "", fmt.Errorf("failed to create user: %w", err)
	}

	s.log.Info("User registered", map[string]interface{}{
		"username": username,
	})
	return s.issuer.Issue(user.ID, user.Username)
}

func (s *authService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return "", fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		s.log.Warn("Failed login attempt", map[string]interface{}{
			"username": username,
		})
		return "", ErrInvalidCredentials
	}

	return s.issuer.Issue(user.ID, user.Username)
}
