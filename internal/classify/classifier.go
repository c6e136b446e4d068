package classify

import (
	"strings"

	"github.com/cfischer/centime/internal/model"
)

// GuessCategory assigns a category name to a transaction the CSV did not
// categorize and no user rule matched. Deterministic: the built-in table for
// the amount's sign in order, then generic fallbacks, then the uncategorized
// sentinel. The sentinel is an expected terminal state, not an error.
func GuessCategory(label string, amount float64) string {
	upper := strings.ToUpper(CleanLabel(label))

	if amount > 0 {
		for _, rule := range incomeRules {
			if rule.re.MatchString(upper) {
				return rule.category
			}
		}
		// Incoming transfers without a recognizable sender.
		if strings.Contains(upper, "VIR") || strings.Contains(upper, "VIREMENT") {
			return "Revenus / Virement"
		}
		return "Revenus / Autres"
	}

	for _, rule := range expenseRules {
		if rule.re.MatchString(upper) {
			return rule.category
		}
	}

	switch {
	case strings.Contains(upper, "PRLV"):
		return "Abonnements / Prélèvements"
	case strings.Contains(upper, "PAIEMENT"):
		return "Dépenses / Carte"
	case strings.Contains(upper, "RETRAIT"), strings.Contains(upper, "DAB"):
		return "Cash / Retraits"
	}

	return model.Uncategorized
}
