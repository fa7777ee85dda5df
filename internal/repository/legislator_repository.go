package repository

import (
	"context"
	"fmt"

	"github.com/mgrady4/civica/internal/database"
	"github.com/mgrady4/civica/internal/models"
	"github.com/mgrady4/civica/internal/query"
)

// LegislatorFilter holds the recognized, already-coerced search
// parameters for the legislators collection. Zero values impose no
// constraint; Limit is always set by the service layer.
type LegislatorFilter struct {
	State   string
	Party   string
	Chamber string
	Keyword string
	Limit   int
}

// LegislatorRepository defines data access for the legislators collection.
type LegislatorRepository interface {
	// Search returns legislators matching the filter, ordered by
	// family name then given name ascending, bounded by the limit.
	// Returns an empty slice (not an error) when nothing matches.
	Search(ctx context.Context, f LegislatorFilter) ([]models.Legislator, error)

	// ReplaceAll upserts the given rows keyed on bioguide_id within a
	// single transaction and returns the number of rows written.
	ReplaceAll(ctx context.Context, rows []models.Legislator) (int, error)

	// CountInOffice returns the number of currently serving members.
	CountInOffice(ctx context.Context) (int, error)
}

type legislatorRepository struct {
	db *database.Database
}

// NewLegislatorRepository creates a new LegislatorRepository instance.
func NewLegislatorRepository(db *database.Database) LegislatorRepository {
	return &legislatorRepository{db: db}
}

var legislatorColumns = []string{
	"bioguide_id", "first_name", "last_name", "party",
	"state", "chamber", "district", "in_office", "phone",
}

func (r *legislatorRepository) Search(ctx context.Context, f LegislatorFilter) ([]models.Legislator, error) {
	b := query.Select("legislators", legislatorColumns...)
	if f.State != "" {
		b.WhereEqFold("state", f.State)
	}
	if f.Party != "" {
		b.WhereEqFold("party", f.Party)
	}
	if f.Chamber != "" {
		b.WhereEqFold("chamber", f.Chamber)
	}
	if f.Keyword != "" {
		b.WhereAnyLike(f.Keyword, "first_name", "last_name")
	}
	b.OrderBy("last_name", query.Asc).
		OrderBy("first_name", query.Asc).
		OrderBy("bioguide_id", query.Asc). // deterministic tiebreak
		Limit(f.Limit)

	sqlText, args := b.Build(r.db.Dialect)
	rows, err := r.db.DB.QueryContext(ctx, sqlText, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query legislators: %w", err)
	}
	defer rows.Close()

	results := []models.Legislator{}
	for rows.Next() {
		var l models.Legislator
		if err := rows.Scan(
			&l.BioguideID,
			&l.FirstName,
			&l.LastName,
			&l.Party,
			&l.State,
			&l.Chamber,
			&l.District,
			&l.InOffice,
			&l.Phone,
		); err != nil {
			return nil, fmt.Errorf("failed to scan legislator row: %w", err)
		}
		results = append(results, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating legislator rows: %w", err)
	}

	return results, nil
}

func (r *legislatorRepository) ReplaceAll(ctx context.Context, rows []models.Legislator) (int, error) {
	tx, err := r.db.DB.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin legislator reseed: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	stmt := fmt.Sprintf(`INSERT INTO legislators
		(bioguide_id, first_name, last_name, party, state, chamber, district, in_office, phone)
		VALUES (%s)
		ON CONFLICT (bioguide_id) DO UPDATE SET
			first_name = excluded.first_name,
			last_name = excluded.last_name,
			party = excluded.party,
			state = excluded.state,
			chamber = excluded.chamber,
			district = excluded.district,
			in_office = excluded.in_office,
			phone = excluded.phone`,
		r.db.Dialect.Placeholders(9))

	for _, l := range rows {
		if _, err := tx.ExecContext(ctx, stmt,
			l.BioguideID, l.FirstName, l.LastName, l.Party,
			l.State, l.Chamber, l.District, l.InOffice, l.Phone,
		); err != nil {
			return 0, fmt.Errorf("failed to upsert legislator %s: %w", l.BioguideID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit legislator reseed: %w", err)
	}
	return len(rows), nil
}

func (r *legislatorRepository) CountInOffice(ctx context.Context) (int, error) {
	var count int
	err := r.db.DB.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM legislators WHERE in_office = TRUE").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count in-office legislators: %w", err)
	}
	return count, nil
}
