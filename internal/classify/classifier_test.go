package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cfischer/centime/internal/model"
)

func TestGuessCategory(t *testing.T) {
	tests := []struct {
		name   string
		label  string
		amount float64
		want   string
	}{
		// Income
		{"salary by employer", "VIR SEPA DASSAULT AVIATION", 2500, "Revenus / Salaire"},
		{"salary keyword", "VIREMENT SALAIRE MARS", 2500, "Revenus / Salaire"},
		{"caf", "VIREMENT CAF DE PARIS", 120, "Revenus / CAF"},
		{"reimbursement", "REMBOURSEMENT CPAM", 23.5, "Revenus / Remboursement"},
		{"incoming transfer fallback", "VIREMENT RECU", 50, "Revenus / Virement"},
		{"unrecognized income", "CHEQUE 1234567", 50, "Revenus / Autres"},

		// Savings before generic transfers: the table order is load-bearing.
		{"livret transfer is savings", "VIR SEPA VERS LIVRET A", -200, "Épargne / Placements"},
		{"pel transfer", "VIREMENT PEL M DUPONT", -150, "Épargne / PEL"},
		{"plain transfer", "VIREMENT M DUPONT", -50, "Virements / Transferts"},

		// Expenses
		{"rent", "LOYER MARS FONCIA", -1200, "Logement / Loyer"},
		{"energy", "PRLV EDF CLIENTS PARTICULIERS", -85, "Logement / Énergie"},
		{"groceries", "PAIEMENT CB 0503 CARREFOUR CITY CARTE 1234", -42.5, "Courses / Supermarché"},
		{"streaming", "PRLV SEPA NETFLIX SARL", -13.49, "Abonnements / Netflix"},
		{"card aggregator", "PAIEMENT CB 0503 SUMUP BOULANGERIE CARTE 1234", -3.2, "Paiements / Marchands"},

		// Generic fallbacks on the cleaned label
		{"direct debit fallback", "PRLV ZZGYM CLUB", -29.9, "Abonnements / Prélèvements"},
		{"card payment fallback", "PAIEMENT SANS CONTACT ZZZSHOP", -8, "Dépenses / Carte"},
		{"atm withdrawal", "RETRAIT DAB 05/03 PARIS", -60, "Cash / Retraits"},

		// Nothing matches
		{"unknown expense", "ZZZZZ", -5, model.Uncategorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GuessCategory(tt.label, tt.amount))
		})
	}
}
