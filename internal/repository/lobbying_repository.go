package repository

import (
	"context"
	"fmt"

	"github.com/mgrady4/civica/internal/database"
	"github.com/mgrady4/civica/internal/models"
	"github.com/mgrady4/civica/internal/query"
)

// LobbyingFilter holds the recognized, coerced search parameters for
// the lobbying filings collection. Year == 0 means absent;
// HasMinAmount distinguishes an absent threshold from an explicit zero.
type LobbyingFilter struct {
	Client       string
	Lobbyist     string
	Keyword      string
	MinAmount    float64
	HasMinAmount bool
	Year         int
	Limit        int
}

// LobbyingRepository defines data access for the lobbying filings collection.
type LobbyingRepository interface {
	// Search returns filings matching the filter, largest amount
	// first, bounded by the limit. Empty slice when nothing matches.
	Search(ctx context.Context, f LobbyingFilter) ([]models.LobbyingFiling, error)

	// ReplaceAll upserts the given rows keyed on filing_id within a
	// single transaction and returns the number of rows written.
	ReplaceAll(ctx context.Context, rows []models.LobbyingFiling) (int, error)
}

type lobbyingRepository struct {
	db *database.Database
}

// NewLobbyingRepository creates a new LobbyingRepository instance.
func NewLobbyingRepository(db *database.Database) LobbyingRepository {
	return &lobbyingRepository{db: db}
}

var lobbyingColumns = []string{
	"filing_id", "client_name", "client_description", "registrant_name",
	"registrant_address", "lobbyist_name", "lobbyist_title", "amount",
	"year", "quarter", "report_type", "issue_areas", "specific_issues",
	"government_entities", "foreign_entities", "posted_date",
}

// lobbyingKeywordColumns are the free-text columns a keyword fans out
// over.
var lobbyingKeywordColumns = []string{
	"client_name", "registrant_name", "lobbyist_name",
	"issue_areas", "specific_issues",
}

func (r *lobbyingRepository) Search(ctx context.Context, f LobbyingFilter) ([]models.LobbyingFiling, error) {
	b := query.Select("lobbying_filings", lobbyingColumns...)
	if f.Client != "" {
		b.WhereLike("client_name", f.Client)
	}
	if f.Lobbyist != "" {
		b.WhereLike("lobbyist_name", f.Lobbyist)
	}
	if f.HasMinAmount {
		b.WhereGte("amount", f.MinAmount)
	}
	if f.Year > 0 {
		b.WhereEq("year", f.Year)
	}
	if f.Keyword != "" {
		b.WhereAnyLike(f.Keyword, lobbyingKeywordColumns...)
	}
	b.OrderBy("amount", query.Desc).
		OrderBy("filing_id", query.Asc). // deterministic tiebreak
		Limit(f.Limit)

	sqlText, args := b.Build(r.db.Dialect)
	rows, err := r.db.DB.QueryContext(ctx, sqlText, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query lobbying filings: %w", err)
	}
	defer rows.Close()

	results := []models.LobbyingFiling{}
	for rows.Next() {
		var l models.LobbyingFiling
		if err := rows.Scan(
			&l.FilingID,
			&l.ClientName,
			&l.ClientDescription,
			&l.RegistrantName,
			&l.RegistrantAddress,
			&l.LobbyistName,
			&l.LobbyistTitle,
			&l.Amount,
			&l.Year,
			&l.Quarter,
			&l.ReportType,
			&l.IssueAreas,
			&l.SpecificIssues,
			&l.GovernmentEntities,
			&l.ForeignEntities,
			&l.PostedDate,
		); err != nil {
			return nil, fmt.Errorf("failed to scan lobbying filing row: %w", err)
		}
		results = append(results, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating lobbying filing rows: %w", err)
	}

	return results, nil
}

func (r *lobbyingRepository) ReplaceAll(ctx context.Context, rows []models.LobbyingFiling) (int, error) {
	tx, err := r.db.DB.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin lobbying reseed: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	stmt := fmt.Sprintf(`INSERT INTO lobbying_filings
		(filing_id, client_name, client_description, registrant_name, registrant_address,
		 lobbyist_name, lobbyist_title, amount, year, quarter, report_type,
		 issue_areas, specific_issues, government_entities, foreign_entities, posted_date)
		VALUES (%s)
		ON CONFLICT (filing_id) DO UPDATE SET
			client_name = excluded.client_name,
			client_description = excluded.client_description,
			registrant_name = excluded.registrant_name,
			registrant_address = excluded.registrant_address,
			lobbyist_name = excluded.lobbyist_name,
			lobbyist_title = excluded.lobbyist_title,
			amount = excluded.amount,
			year = excluded.year,
			quarter = excluded.quarter,
			report_type = excluded.report_type,
			issue_areas = excluded.issue_areas,
			specific_issues = excluded.specific_issues,
			government_entities = excluded.government_entities,
			foreign_entities = excluded.foreign_entities,
			posted_date = excluded.posted_date`,
		r.db.Dialect.Placeholders(16))

	for _, l := range rows {
		if _, err := tx.ExecContext(ctx, stmt,
			l.FilingID, l.ClientName, l.ClientDescription, l.RegistrantName,
			l.RegistrantAddress, l.LobbyistName, l.LobbyistTitle, l.Amount,
			l.Year, l.Quarter, l.ReportType, l.IssueAreas, l.SpecificIssues,
			l.GovernmentEntities, l.ForeignEntities, l.PostedDate,
		); err != nil {
			return 0, fmt.Errorf("failed to upsert lobbying filing %s: %w", l.FilingID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit lobbying reseed: %w", err)
	}
	return len(rows), nil
}
