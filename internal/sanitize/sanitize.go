// Package sanitize normalizes inbound request parameters before any
// handler logic runs. It strips characters commonly used in injection
// payloads and truncates values to per-field length caps. It never
// rejects input; malformed values are normalized, not errored.
package sanitize

import (
	"net/url"
	"strings"
)

// DefaultMax is the length cap applied to fields without an explicit cap.
const DefaultMax = 500

// stripped removes < > ' " from parameter values. This is hardening
// against reflected markup and quote-breaking, not semantic escaping;
// query parameterization handles the latter.
var stripped = strings.NewReplacer(
	"<", "",
	">", "",
	"'", "",
	`"`, "",
)

// fieldCaps holds explicit caps for identity-like and search-like
// fields. Everything else falls back to DefaultMax.
var fieldCaps = map[string]int{
	"username":  50,
	"email":     100,
	"password":  128,
	"search":    100,
	"keyword":   100,
	"recipient": 100,
	"client":    100,
	"agency":    100,
	"lobbyist":  100,
}

// MaxLen returns the length cap for the named parameter.
func MaxLen(field string) int {
	if cap, ok := fieldCaps[strings.ToLower(field)]; ok {
		return cap
	}
	return DefaultMax
}

// Clean strips disallowed characters from s and truncates the result
// to max runes. A non-positive max falls back to DefaultMax.
func Clean(s string, max int) string {
	if max <= 0 {
		max = DefaultMax
	}
	s = stripped.Replace(s)
	if len(s) <= max {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

// Field cleans s using the cap registered for the named field.
func Field(name, s string) string {
	return Clean(s, MaxLen(name))
}

// Values sanitizes every value of v in place.
func Values(v url.Values) {
	for name, vals := range v {
		max := MaxLen(name)
		for i := range vals {
			vals[i] = Clean(vals[i], max)
		}
		v[name] = vals
	}
}
