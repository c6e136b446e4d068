// Package ingest implements the CSV bank-statement import pipeline: encoding
// recovery, schema-agnostic field resolution, locale-aware value parsing,
// content-addressed deduplication and categorization.
package ingest

import (
	"errors"
	"math"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// RawRow is one CSV line keyed by header name. Column names are untrusted:
// accents, casing and punctuation vary between bank exports.
type RawRow map[string]string

// Candidate column names per logical field, in lookup order.
var (
	dateColumns        = []string{"Date", "Date d'analyse", "Date de valeur", "Date operation", "Date d'operation", "Date d’opération"}
	labelColumns       = []string{"Libellé", "Libelle", "Libell", "Description", "Motif"}
	balanceColumns     = []string{"Solde", "Balance"}
	categoryColumns    = []string{"Catégorie", "Categorie", "Category"}
	subcategoryColumns = []string{"Sous-catégorie", "Sous-categorie", "Subcategory"}
	amountColumns      = []string{"Montant", "Amount", "Valeur", "Value"}
	debitColumns       = []string{"Débit", "Debit", "DEBIT"}
	creditColumns      = []string{"Crédit", "Credit", "CREDIT"}
)

var diacriticStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// normalizeKey folds a header for fuzzy comparison: lower-cased, diacritics
// stripped, everything but letters and digits dropped. "Date d'opération"
// and "date doperation" compare equal.
func normalizeKey(s string) string {
	folded, _, err := transform.String(diacriticStripper, strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		folded = strings.ToLower(strings.TrimSpace(s))
	}
	var b strings.Builder
	for _, r := range folded {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// PickAny returns the first non-empty value among the candidate column
// names, trying exact header matches before normalized ones. A row with none
// of the candidates is not an error; the empty string signals absence.
func (r RawRow) PickAny(candidates ...string) string {
	for _, cand := range candidates {
		if v, ok := r[cand]; ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}

	byNorm := make(map[string]string, len(r))
	for k := range r {
		byNorm[normalizeKey(k)] = k
	}
	for _, cand := range candidates {
		if real, ok := byNorm[normalizeKey(cand)]; ok {
			if v := strings.TrimSpace(r[real]); v != "" {
				return v
			}
		}
	}
	return ""
}

// ErrAmountNotFound reports a row with neither an amount column nor
// credit/debit columns. A data condition, not a fatal error.
var ErrAmountNotFound = errors.New("montant introuvable (Montant ou Débit/Crédit)")

// AmountFromRow resolves the signed amount for a row. A Montant-class column
// wins when present, sign as given; otherwise credit and debit columns are
// used, credit positive and debit negative.
func AmountFromRow(row RawRow) (float64, error) {
	if raw := row.PickAny(amountColumns...); raw != "" {
		return ParseAmount(raw)
	}

	if raw := row.PickAny(creditColumns...); raw != "" {
		n, err := ParseAmount(raw)
		if err != nil {
			return 0, err
		}
		return math.Abs(n), nil
	}
	if raw := row.PickAny(debitColumns...); raw != "" {
		n, err := ParseAmount(raw)
		if err != nil {
			return 0, err
		}
		return -math.Abs(n), nil
	}

	return 0, ErrAmountNotFound
}
