package repository

import (
	"context"
	"fmt"

	"github.com/mgrady4/civica/internal/database"
	"github.com/mgrady4/civica/internal/models"
	"github.com/mgrady4/civica/internal/query"
)

// BillFilter holds the recognized, coerced search parameters for the
// bills collection. Congress == 0 means the filter is absent.
type BillFilter struct {
	BillType string
	Status   string
	Keyword  string
	Congress int
	Limit    int
}

// BillRepository defines data access for the bills collection.
type BillRepository interface {
	// Search returns bills matching the filter, newest introduced
	// first, bounded by the limit. Empty slice when nothing matches.
	Search(ctx context.Context, f BillFilter) ([]models.Bill, error)

	// ReplaceAll upserts the given rows keyed on bill_id within a
	// single transaction and returns the number of rows written.
	ReplaceAll(ctx context.Context, rows []models.Bill) (int, error)

	// CountActive returns the number of bills not yet in a terminal
	// status (enacted, vetoed, failed).
	CountActive(ctx context.Context) (int, error)
}

type billRepository struct {
	db *database.Database
}

// NewBillRepository creates a new BillRepository instance.
func NewBillRepository(db *database.Database) BillRepository {
	return &billRepository{db: db}
}

var billColumns = []string{
	"bill_id", "congress", "bill_type", "number",
	"title", "status", "introduced_date", "sponsor_id",
}

func (r *billRepository) Search(ctx context.Context, f BillFilter) ([]models.Bill, error) {
	b := query.Select("bills", billColumns...)
	if f.BillType != "" {
		b.WhereEqFold("bill_type", f.BillType)
	}
	if f.Status != "" {
		b.WhereEqFold("status", f.Status)
	}
	if f.Congress > 0 {
		b.WhereEq("congress", f.Congress)
	}
	if f.Keyword != "" {
		b.WhereAnyLike(f.Keyword, "title", "status")
	}
	b.OrderBy("introduced_date", query.Desc).
		OrderBy("bill_id", query.Asc). // deterministic tiebreak
		Limit(f.Limit)

	sqlText, args := b.Build(r.db.Dialect)
	rows, err := r.db.DB.QueryContext(ctx, sqlText, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query bills: %w", err)
	}
	defer rows.Close()

	results := []models.Bill{}
	for rows.Next() {
		var bill models.Bill
		if err := rows.Scan(
			&bill.BillID,
			&bill.Congress,
			&bill.BillType,
			&bill.Number,
			&bill.Title,
			&bill.Status,
			&bill.IntroducedDate,
			&bill.SponsorID,
		); err != nil {
			return nil, fmt.Errorf("failed to scan bill row: %w", err)
		}
		results = append(results, bill)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bill rows: %w", err)
	}

	return results, nil
}

func (r *billRepository) ReplaceAll(ctx context.Context, rows []models.Bill) (int, error) {
	tx, err := r.db.DB.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin bill reseed: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	stmt := fmt.Sprintf(`INSERT INTO bills
		(bill_id, congress, bill_type, number, title, status, introduced_date, sponsor_id)
		VALUES (%s)
		ON CONFLICT (bill_id) DO UPDATE SET
			congress = excluded.congress,
			bill_type = excluded.bill_type,
			number = excluded.number,
			title = excluded.title,
			status = excluded.status,
			introduced_date = excluded.introduced_date,
			sponsor_id = excluded.sponsor_id`,
		r.db.Dialect.Placeholders(8))

	for _, bill := range rows {
		if _, err := tx.ExecContext(ctx, stmt,
			bill.BillID, bill.Congress, bill.BillType, bill.Number,
			bill.Title, bill.Status, bill.IntroducedDate, bill.SponsorID,
		); err != nil {
			return 0, fmt.Errorf("failed to upsert bill %s: %w", bill.BillID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit bill reseed: %w", err)
	}
	return len(rows), nil
}

func (r *billRepository) CountActive(ctx context.Context) (int, error) {
	stmt := fmt.Sprintf(
		"SELECT COUNT(*) FROM bills WHERE status NOT IN (%s, %s, %s)",
		r.db.Dialect.Placeholder(1),
		r.db.Dialect.Placeholder(2),
		r.db.Dialect.Placeholder(3),
	)

	var count int
	err := r.db.DB.QueryRowContext(ctx, stmt,
		models.BillStatusEnacted, models.BillStatusVetoed, models.BillStatusFailed,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count active bills: %w", err)
	}
	return count, nil
}
