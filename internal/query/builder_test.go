package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuild_NoFilters(t *testing.T) {
	sqlText, args := Select("bills", "bill_id", "title").Build(Question)

	assert.Equal(t, "SELECT bill_id, title FROM bills WHERE 1=1", sqlText)
	assert.Empty(t, args)
}

func TestBuild_ExactMatchFiltersAreConjoined(t *testing.T) {
	sqlText, args := Select("legislators", "bioguide_id").
		WhereEqFold("state", "CA").
		WhereEqFold("party", "D").
		Build(Question)

	assert.Equal(t,
		"SELECT bioguide_id FROM legislators WHERE 1=1"+
			" AND LOWER(state) = ? AND LOWER(party) = ?",
		sqlText)
	// Values are normalized to lower case before comparison.
	assert.Equal(t, []any{"ca", "d"}, args)
}

func TestBuild_NumericEquality(t *testing.T) {
	sqlText, args := Select("bills", "bill_id").
		WhereEq("congress", 119).
		Build(Question)

	assert.Equal(t, "SELECT bill_id FROM bills WHERE 1=1 AND congress = ?", sqlText)
	assert.Equal(t, []any{119}, args)
}

func TestBuild_Threshold(t *testing.T) {
	sqlText, args := Select("spending_awards", "award_id").
		WhereGte("amount", 200.0).
		Build(Question)

	assert.Equal(t, "SELECT award_id FROM spending_awards WHERE 1=1 AND amount >= ?", sqlText)
	assert.Equal(t, []any{200.0}, args)
}

func TestBuild_KeywordFansOutAcrossColumnsWithOr(t *testing.T) {
	sqlText, args := Select("bills", "bill_id").
		WhereEqFold("bill_type", "HR").
		WhereAnyLike("tax", "title", "status").
		Build(Question)

	assert.Equal(t,
		"SELECT bill_id FROM bills WHERE 1=1 AND LOWER(bill_type) = ?"+
			` AND (LOWER(title) LIKE ? ESCAPE '\' OR LOWER(status) LIKE ? ESCAPE '\')`,
		sqlText)
	assert.Equal(t, []any{"hr", "%tax%", "%tax%"}, args)
}

func TestBuild_LikeValuesAreEscapedAndFolded(t *testing.T) {
	_, args := Select("spending_awards", "award_id").
		WhereLike("recipient_name", "100% Raw_Deal\\Inc").
		Build(Question)

	assert.Equal(t, []any{`%100\% raw\_deal\\inc%`}, args)
}

func TestBuild_OrderingAndLimit(t *testing.T) {
	sqlText, args := Select("legislators", "bioguide_id").
		OrderBy("last_name", Asc).
		OrderBy("first_name", Asc).
		OrderBy("bioguide_id", Asc).
		Limit(100).
		Build(Question)

	assert.Equal(t,
		"SELECT bioguide_id FROM legislators WHERE 1=1"+
			" ORDER BY last_name ASC, first_name ASC, bioguide_id ASC LIMIT ?",
		sqlText)
	assert.Equal(t, []any{100}, args)
}

func TestBuild_NonPositiveLimitIsIgnored(t *testing.T) {
	sqlText, args := Select("bills", "bill_id").Limit(0).Limit(-5).Build(Question)

	assert.NotContains(t, sqlText, "LIMIT")
	assert.Empty(t, args)
}

func TestBuild_DollarDialectNumbersPlaceholders(t *testing.T) {
	sqlText, args := Select("spending_awards", "award_id").
		WhereLike("awarding_agency", "defense").
		WhereGte("amount", 1000.0).
		WhereEq("fiscal_year", 2024).
		Limit(10).
		Build(Dollar)

	assert.Equal(t,
		"SELECT award_id FROM spending_awards WHERE 1=1"+
			` AND (LOWER(awarding_agency) LIKE $1 ESCAPE '\')`+
			" AND amount >= $2 AND fiscal_year = $3 LIMIT $4",
		sqlText)
	assert.Equal(t, []any{"%defense%", 1000.0, 2024, 10}, args)
}

func TestDialect_Placeholders(t *testing.T) {
	assert.Equal(t, "?, ?, ?", Question.Placeholders(3))
	assert.Equal(t, "$1, $2, $3", Dollar.Placeholders(3))
	assert.Equal(t, "?", Question.Placeholder(7))
	assert.Equal(t, "$7", Dollar.Placeholder(7))
}
