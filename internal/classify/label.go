// Package classify assigns categories to transactions using a layered
// policy: CSV-declared categories first, then user rules, then an ordered
// built-in rule table, then generic fallbacks.
package classify

import (
	"regexp"
	"strings"
)

// Boilerplate French banks prepend or append to statement labels. Stripped
// in fixed order before classification and merchant extraction.
var (
	cardPaymentPrefix = regexp.MustCompile(`(?i)^PAIEMENT\s+(CB|PSC)\s+\d{4}\s+`)
	sepaDebitPrefix   = regexp.MustCompile(`(?i)^PRLV\s+SEPA\s+`)
	transferPrefix    = regexp.MustCompile(`(?i)^VIR\s+(SEPA\s+)?`)
	cardTerminalTag   = regexp.MustCompile(`(?i)\s+CARTE\s+\d{2,4}\b`)
	paywebTag         = regexp.MustCompile(`(?i)\s+PAYWEB\d+\b`)
	spaceRuns         = regexp.MustCompile(`\s{2,}`)
)

// CleanLabel strips bank boilerplate from a statement label. The result is
// the stable signal fed to classification and merchant extraction; callers
// keep the raw label for display.
func CleanLabel(raw string) string {
	s := strings.TrimSpace(raw)
	s = cardPaymentPrefix.ReplaceAllString(s, "")
	s = sepaDebitPrefix.ReplaceAllString(s, "")
	s = transferPrefix.ReplaceAllString(s, "")
	s = cardTerminalTag.ReplaceAllString(s, "")
	s = paywebTag.ReplaceAllString(s, "")
	s = spaceRuns.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
