package services

import (
	"strconv"
	"strings"
)

// Default result bounds per collection. Queries never run unbounded:
// absent, non-numeric or non-positive limits fall back to these.
const (
	DefaultBillLimit   = 50
	DefaultSearchLimit = 100
)

// parseLimit coerces a raw limit parameter. Anything that does not
// parse to a positive integer falls back to def; bad input must never
// cause a request-level failure or an unbounded query.
func parseLimit(raw string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n <= 0 {
		return def
	}
	return n
}

// parseAmount coerces a raw threshold parameter. The second return is
// false when the value is absent or unparsable, in which case the
// filter is simply not applied.
func parseAmount(raw string) (float64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 {
		return 0, false
	}
	return v, true
}

// parseYear coerces a raw year-like parameter (congress, fiscal year,
// filing year). Zero means absent or unparsable: no filter applied.
func parseYear(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n <= 0 {
		return 0
	}
	return n
}
