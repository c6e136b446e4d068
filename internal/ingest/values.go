package ingest

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"
)

// ParseAmount parses a French-formatted amount: internal whitespace allowed
// (including non-breaking spaces), decimal comma converted to a period.
// "1 234,56" parses as 1234.56. Failures are row-level, never fatal.
func ParseAmount(raw string) (float64, error) {
	var b strings.Builder
	for _, r := range raw {
		if !unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	cleaned := strings.Replace(b.String(), ",", ".", 1)

	n, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, fmt.Errorf("montant invalide: %s", raw)
	}
	return n, nil
}

var (
	isoDatePrefix = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}`)
	frenchDate    = regexp.MustCompile(`^\d{2}/\d{2}/\d{4}$`)
)

// ParseDate accepts ISO-prefixed strings ("2024-03-05", with or without a
// time part) and strict DD/MM/YYYY. Any other shape is a row-level failure.
// Results are always UTC midnight so month bucketing cannot shift days
// across timezones.
func ParseDate(raw string) (time.Time, error) {
	s := strings.TrimSpace(raw)

	var layout, value string
	switch {
	case isoDatePrefix.MatchString(s):
		layout, value = "2006-01-02", s[:10]
	case frenchDate.MatchString(s):
		layout, value = "02/01/2006", s
	default:
		return time.Time{}, fmt.Errorf("date invalide: %s", raw)
	}

	t, err := time.ParseInLocation(layout, value, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("date invalide: %s", raw)
	}
	return t, nil
}
