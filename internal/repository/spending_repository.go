package repository

import (
	"context"
	"fmt"

	"github.com/mgrady4/civica/internal/database"
	"github.com/mgrady4/civica/internal/models"
	"github.com/mgrady4/civica/internal/query"
)

// SpendingFilter holds the recognized, coerced search parameters for
// the spending awards collection. HasMinAmount distinguishes an absent
// threshold from an explicit zero; FiscalYear == 0 means absent.
type SpendingFilter struct {
	Agency       string
	Recipient    string
	Keyword      string
	MinAmount    float64
	HasMinAmount bool
	FiscalYear   int
	Limit        int
}

// SpendingRepository defines data access for the spending awards collection.
type SpendingRepository interface {
	// Search returns awards matching the filter, largest amount first,
	// bounded by the limit. Empty slice when nothing matches.
	Search(ctx context.Context, f SpendingFilter) ([]models.SpendingAward, error)

	// ReplaceAll upserts the given rows keyed on award_id within a
	// single transaction and returns the number of rows written.
	ReplaceAll(ctx context.Context, rows []models.SpendingAward) (int, error)

	// SumByFiscalYear returns the total awarded amount for one fiscal year.
	SumByFiscalYear(ctx context.Context, year int) (float64, error)
}

type spendingRepository struct {
	db *database.Database
}

// NewSpendingRepository creates a new SpendingRepository instance.
func NewSpendingRepository(db *database.Database) SpendingRepository {
	return &spendingRepository{db: db}
}

var spendingColumns = []string{
	"award_id", "recipient_name", "amount", "award_type",
	"awarding_agency", "description", "fiscal_year",
}

func (r *spendingRepository) Search(ctx context.Context, f SpendingFilter) ([]models.SpendingAward, error) {
	b := query.Select("spending_awards", spendingColumns...)
	if f.Agency != "" {
		b.WhereLike("awarding_agency", f.Agency)
	}
	if f.Recipient != "" {
		b.WhereLike("recipient_name", f.Recipient)
	}
	if f.HasMinAmount {
		b.WhereGte("amount", f.MinAmount)
	}
	if f.FiscalYear > 0 {
		b.WhereEq("fiscal_year", f.FiscalYear)
	}
	if f.Keyword != "" {
		b.WhereAnyLike(f.Keyword, "recipient_name", "awarding_agency", "description")
	}
	b.OrderBy("amount", query.Desc).
		OrderBy("award_id", query.Asc). // deterministic tiebreak
		Limit(f.Limit)

	sqlText, args := b.Build(r.db.Dialect)
	rows, err := r.db.DB.QueryContext(ctx, sqlText, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query spending awards: %w", err)
	}
	defer rows.Close()

	results := []models.SpendingAward{}
	for rows.Next() {
		var a models.SpendingAward
		if err := rows.Scan(
			&a.AwardID,
			&a.RecipientName,
			&a.Amount,
			&a.AwardType,
			&a.AwardingAgency,
			&a.Description,
			&a.FiscalYear,
		); err != nil {
			return nil, fmt.Errorf("failed to scan spending award row: %w", err)
		}
		results = append(results, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating spending award rows: %w", err)
	}

	return results, nil
}

func (r *spendingRepository) ReplaceAll(ctx context.Context, rows []models.SpendingAward) (int, error) {
	tx, err := r.db.DB.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin spending reseed: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	stmt := fmt.Sprintf(`INSERT INTO spending_awards
		(award_id, recipient_name, amount, award_type, awarding_agency, description, fiscal_year)
		VALUES (%s)
		ON CONFLICT (award_id) DO UPDATE SET
			recipient_name = excluded.recipient_name,
			amount = excluded.amount,
			award_type = excluded.award_type,
			awarding_agency = excluded.awarding_agency,
			description = excluded.description,
			fiscal_year = excluded.fiscal_year`,
		r.db.Dialect.Placeholders(7))

	for _, a := range rows {
		if _, err := tx.ExecContext(ctx, stmt,
			a.AwardID, a.RecipientName, a.Amount, a.AwardType,
			a.AwardingAgency, a.Description, a.FiscalYear,
		); err != nil {
			return 0, fmt.Errorf("failed to upsert spending award %s: %w", a.AwardID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit spending reseed: %w", err)
	}
	return len(rows), nil
}

func (r *spendingRepository) SumByFiscalYear(ctx context.Context, year int) (float64, error) {
	stmt := fmt.Sprintf(
		"SELECT COALESCE(SUM(amount), 0) FROM spending_awards WHERE fiscal_year = %s",
		r.db.Dialect.Placeholder(1),
	)

	var total float64
	if err := r.db.DB.QueryRowContext(ctx, stmt, year).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to sum spending for fiscal year %d: %w", year, err)
	}
	return total, nil
}
