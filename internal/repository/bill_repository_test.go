package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mgrady4/civica/internal/models"
)

func testBills() []models.Bill {
	sponsor := "A000001"
	return []models.Bill{
		{BillID: "hr-100-119", Congress: 119, BillType: "hr", Number: 100, Title: "Tax Fairness for Working Families Act", Status: "in_committee", IntroducedDate: "2025-03-01", SponsorID: &sponsor},
		{BillID: "s-200-119", Congress: 119, BillType: "s", Number: 200, Title: "Clean Energy Act", Status: "introduced", IntroducedDate: "2025-04-15"},
		{BillID: "hr-300-118", Congress: 118, BillType: "hr", Number: 300, Title: "Highway Funding Act", Status: "enacted", IntroducedDate: "2023-06-10"},
	}
}

func seedBills(t *testing.T, repo BillRepository) {
	t.Helper()
	n, err := repo.ReplaceAll(context.Background(), testBills())
	require.NoError(t, err)
	require.Equal(t, 3, n)
}

func TestBillSearch_OrdersNewestIntroducedFirst(t *testing.T) {
	db := openTestDB(t)
	repo := NewBillRepository(db)
	seedBills(t, repo)

	rows, err := repo.Search(context.Background(), BillFilter{Limit: 50})
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "s-200-119", rows[0].BillID)
	assert.Equal(t, "hr-100-119", rows[1].BillID)
	assert.Equal(t, "hr-300-118", rows[2].BillID)
}

func TestBillSearch_CombinesTypeCongressAndKeyword(t *testing.T) {
	db := openTestDB(t)
	repo := NewBillRepository(db)
	seedBills(t, repo)

	rows, err := repo.Search(context.Background(), BillFilter{
		BillType: "hr",
		Congress: 119,
		Keyword:  "tax",
		Limit:    50,
	})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "hr-100-119", rows[0].BillID)
}

func TestBillSearch_BillTypeIsCaseInsensitive(t *testing.T) {
	db := openTestDB(t)
	repo := NewBillRepository(db)
	seedBills(t, repo)

	rows, err := repo.Search(context.Background(), BillFilter{BillType: "HR", Limit: 50})
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestBillSearch_StatusFilter(t *testing.T) {
	db := openTestDB(t)
	repo := NewBillRepository(db)
	seedBills(t, repo)

	rows, err := repo.Search(context.Background(), BillFilter{Status: "enacted", Limit: 50})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "hr-300-118", rows[0].BillID)
}

func TestBillSearch_SponsorReferenceSurvivesRoundTrip(t *testing.T) {
	db := openTestDB(t)
	repo := NewBillRepository(db)
	seedBills(t, repo)

	rows, err := repo.Search(context.Background(), BillFilter{BillType: "hr", Congress: 119, Limit: 50})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.NotNil(t, rows[0].SponsorID)
	assert.Equal(t, "A000001", *rows[0].SponsorID)

	// Absent sponsor stays nil.
	rows, err = repo.Search(context.Background(), BillFilter{BillType: "s", Limit: 50})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Nil(t, rows[0].SponsorID)
}

func TestCountActive_ExcludesTerminalStatuses(t *testing.T) {
	db := openTestDB(t)
	repo := NewBillRepository(db)
	seedBills(t, repo)

	count, err := repo.CountActive(context.Background())
	require.NoError(t, err)
	// "enacted" is terminal; the other two are active.
	assert.Equal(t, 2, count)
}
