package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mgrady4/civica/internal/database"
	"github.com/mgrady4/civica/internal/models"
)

// UserRepository defines data access for operator accounts.
type UserRepository interface {
	// Create inserts a new user. Returns an error if the username is
	// already taken (unique constraint).
	Create(ctx context.Context, u models.User) error

	// FindByUsername returns the user with the given username, or
	// nil, nil if no such user exists.
	FindByUsername(ctx context.Context, username string) (*models.User, error)
}

type userRepository struct {
	db *database.Database
}

// NewUserRepository creates a new UserRepository instance.
func NewUserRepository(db *database.Database) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, u models.User) error {
	stmt := fmt.Sprintf(`INSERT INTO users (id, username, email, password_hash, created_at)
		VALUES (%s)`, r.db.Dialect.Placeholders(5))

	_, err := r.db.DB.ExecContext(ctx, stmt,
		u.ID, u.Username, u.Email, u.PasswordHash,
		u.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to insert user %s: %w", u.Username, err)
	}
	return nil
}

func (r *userRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	stmt := fmt.Sprintf(`SELECT id, username, email, password_hash, created_at
		FROM users WHERE username = %s`, r.db.Dialect.Placeholder(1))

	var u models.User
	var createdAt string
	err := r.db.DB.QueryRowContext(ctx, stmt, username).Scan(
		&u.ID, &u.Username, &u.Email, &u.PasswordHash, &createdAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query user %s: %w", username, err)
	}

	if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
		u.CreatedAt = t
	}
	return &u, nil
}
