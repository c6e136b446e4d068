package analysis

import (
	"context"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/cfischer/centime/internal/classify"
	"github.com/cfischer/centime/internal/service"
)

// Merchant limit bounds; callers asking for more or fewer are clamped.
const (
	minMerchants = 5
	maxMerchants = 30
)

// MerchantSpend is one merchant's expense total for a month, with the
// cumulative share of total spend up to and including it (a Pareto view).
type MerchantSpend struct {
	Merchant      string
	Amount        float64
	CumulativePct float64
}

// MerchantReport lists the month's top merchants by spend.
type MerchantReport struct {
	Month     string
	Merchants []MerchantSpend
	Total     float64
}

// TopMerchants aggregates the month's expenses by extracted merchant name.
func TopMerchants(ctx context.Context, storage service.Storage, userID, month string, limit int) (*MerchantReport, error) {
	if limit < minMerchants {
		limit = minMerchants
	}
	if limit > maxMerchants {
		limit = maxMerchants
	}

	filter, err := service.ParseMonth(month)
	if err != nil {
		return nil, err
	}

	txns, err := storage.ListTransactionsByMonth(ctx, userID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	byMerchant := make(map[string]decimal.Decimal)
	total := decimal.Zero
	for _, txn := range txns {
		if txn.Amount >= 0 {
			continue
		}
		amount := decimal.NewFromFloat(txn.Amount).Abs()
		merchant := classify.MerchantFromLabel(txn.RawLabel)
		byMerchant[merchant] = byMerchant[merchant].Add(amount)
		total = total.Add(amount)
	}

	merchants := make([]MerchantSpend, 0, len(byMerchant))
	for merchant, amount := range byMerchant {
		merchants = append(merchants, MerchantSpend{Merchant: merchant, Amount: toCents(amount)})
	}
	sort.Slice(merchants, func(i, j int) bool {
		if merchants[i].Amount != merchants[j].Amount {
			return merchants[i].Amount > merchants[j].Amount
		}
		return merchants[i].Merchant < merchants[j].Merchant
	})
	if len(merchants) > limit {
		merchants = merchants[:limit]
	}

	cum := decimal.Zero
	for i := range merchants {
		cum = cum.Add(decimal.NewFromFloat(merchants[i].Amount))
		if total.IsPositive() {
			pct, _ := cum.Div(total).Mul(decimal.NewFromInt(100)).Round(1).Float64()
			merchants[i].CumulativePct = pct
		}
	}

	totalCents := toCents(total)
	return &MerchantReport{Month: month, Merchants: merchants, Total: totalCents}, nil
}
