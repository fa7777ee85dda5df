// Package database opens the relational store shared by all
// repositories. The default driver is a file-backed sqlite database
// (single writer, concurrent readers); postgres is available for
// deployments that outgrow it. Both are used through database/sql so
// the repositories stay driver-agnostic apart from placeholder style.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // database/sql driver "pgx"
	_ "modernc.org/sqlite"             // pure go sqlite driver "sqlite"

	"github.com/mgrady4/civica/internal/config"
	"github.com/mgrady4/civica/internal/query"
)

// Database wraps the sql.DB handle together with the placeholder
// dialect repositories need when rendering queries.
type Database struct {
	DB      *sql.DB
	Dialect query.Dialect
}

// Open connects to the configured store, verifies connectivity and
// bootstraps the schema.
func Open(ctx context.Context, cfg config.DatabaseConfig) (*Database, error) {
	var (
		db      *sql.DB
		dialect query.Dialect
		err     error
	)

	switch cfg.Driver {
	case config.DriverPostgres:
		dsn := fmt.Sprintf(
			"postgres://%s:%s@%s:%s/%s?sslmode=disable",
			cfg.User,
			cfg.Password,
			cfg.Host,
			cfg.Port,
			cfg.Name,
		)
		db, err = sql.Open("pgx", dsn)
		if err != nil {
			return nil, fmt.Errorf("failed to open postgres connection: %w", err)
		}
		db.SetMaxOpenConns(cfg.PoolMax)
		db.SetMaxIdleConns(cfg.PoolMin)
		db.SetConnMaxIdleTime(30 * time.Second)
		db.SetConnMaxLifetime(1 * time.Hour)
		dialect = query.Dollar

	case config.DriverSQLite:
		db, err = sql.Open("sqlite", cfg.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite database: %w", err)
		}
		// One connection is the serialization point for the
		// single-writer store; it also keeps :memory: databases
		// alive across queries in tests.
		db.SetMaxOpenConns(1)
		dialect = query.Question

	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	d := &Database{DB: db, Dialect: dialect}
	if err := d.migrate(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return d, nil
}

// schema is portable DDL: TEXT/INTEGER/NUMERIC/BOOLEAN columns, dates
// as ISO-8601 TEXT, so the same statements run under both drivers.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS legislators (
		bioguide_id TEXT PRIMARY KEY,
		first_name  TEXT NOT NULL,
		last_name   TEXT NOT NULL,
		party       TEXT NOT NULL,
		state       TEXT NOT NULL,
		chamber     TEXT NOT NULL,
		district    TEXT,
		in_office   BOOLEAN NOT NULL,
		phone       TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS bills (
		bill_id         TEXT PRIMARY KEY,
		congress        INTEGER NOT NULL,
		bill_type       TEXT NOT NULL,
		number          INTEGER NOT NULL,
		title           TEXT NOT NULL,
		status          TEXT NOT NULL,
		introduced_date TEXT NOT NULL,
		sponsor_id      TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS spending_awards (
		award_id        TEXT PRIMARY KEY,
		recipient_name  TEXT NOT NULL,
		amount          NUMERIC NOT NULL,
		award_type      TEXT NOT NULL,
		awarding_agency TEXT NOT NULL,
		description     TEXT NOT NULL DEFAULT '',
		fiscal_year     INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS lobbying_filings (
		filing_id           TEXT PRIMARY KEY,
		client_name         TEXT NOT NULL,
		client_description  TEXT NOT NULL DEFAULT '',
		registrant_name     TEXT NOT NULL,
		registrant_address  TEXT NOT NULL DEFAULT '',
		lobbyist_name       TEXT NOT NULL,
		lobbyist_title      TEXT NOT NULL DEFAULT '',
		amount              NUMERIC NOT NULL,
		year                INTEGER NOT NULL,
		quarter             TEXT NOT NULL DEFAULT '',
		report_type         TEXT NOT NULL DEFAULT '',
		issue_areas         TEXT NOT NULL DEFAULT '',
		specific_issues     TEXT NOT NULL DEFAULT '',
		government_entities TEXT NOT NULL DEFAULT '',
		foreign_entities    TEXT NOT NULL DEFAULT '',
		posted_date         TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS users (
		id            TEXT PRIMARY KEY,
		username      TEXT NOT NULL UNIQUE,
		email         TEXT NOT NULL,
		password_hash TEXT NOT NULL,
		created_at    TEXT NOT NULL
	)`,
}

// migrate creates the tables if they do not exist yet. Reseeding, not
// migration tooling, owns the row contents.
func (d *Database) migrate(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := d.DB.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to bootstrap schema: %w", err)
		}
	}
	return nil
}

// Ping checks if the database connection is alive.
func (d *Database) Ping(ctx context.Context) error {
	return d.DB.PingContext(ctx)
}

// Close closes the underlying connection pool.
func (d *Database) Close() {
	if d.DB != nil {
		_ = d.DB.Close()
	}
}
