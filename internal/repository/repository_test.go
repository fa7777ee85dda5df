package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mgrady4/civica/internal/config"
	"github.com/mgrady4/civica/internal/database"
)

// openTestDB opens a fresh in-memory store with the schema bootstrapped.
func openTestDB(t *testing.T) *database.Database {
	t.Helper()

	db, err := database.Open(context.Background(), config.DatabaseConfig{
		Driver: config.DriverSQLite,
		Path:   ":memory:",
	})
	require.NoError(t, err)
	t.Cleanup(db.Close)
	return db
}
