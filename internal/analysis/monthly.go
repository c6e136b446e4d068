// Package analysis builds monthly reports from categorized transactions.
package analysis

import (
	"context"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/cfischer/centime/internal/model"
	"github.com/cfischer/centime/internal/service"
)

// topExpenseGroups is how many category groups a waterfall lists before the
// remainder collapses into a single step.
const topExpenseGroups = 8

// WaterfallStep is one bar of the income-to-savings waterfall. Expense steps
// carry negative values.
type WaterfallStep struct {
	Name  string
	Value float64
}

// MonthSummary aggregates one calendar month: total income, expenses grouped
// by category group, and the resulting net.
type MonthSummary struct {
	Month        string
	Steps        []WaterfallStep
	Income       float64
	ExpenseTotal float64
	Net          float64
}

// MonthSummaryReport builds the income/expense waterfall for one month.
func MonthSummaryReport(ctx context.Context, storage service.Storage, userID, month string) (*MonthSummary, error) {
	filter, err := service.ParseMonth(month)
	if err != nil {
		return nil, err
	}

	txns, err := storage.ListTransactionsByMonth(ctx, userID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	idToName, err := categoryNames(ctx, storage, userID)
	if err != nil {
		return nil, err
	}

	income := decimal.Zero
	groupExpense := make(map[string]decimal.Decimal)

	for _, txn := range txns {
		amount := decimal.NewFromFloat(txn.Amount)
		switch {
		case amount.IsPositive():
			income = income.Add(amount)
		case amount.IsNegative():
			name := ""
			if txn.CategoryID != nil {
				name = idToName[*txn.CategoryID]
			}
			group, _ := model.SplitCategoryName(name)
			groupExpense[group] = groupExpense[group].Add(amount.Abs())
		}
	}

	expenseTotal := decimal.Zero
	groups := make([]WaterfallStep, 0, len(groupExpense))
	for group, total := range groupExpense {
		expenseTotal = expenseTotal.Add(total)
		groups = append(groups, WaterfallStep{Name: group, Value: toCents(total)})
	}
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].Value != groups[j].Value {
			return groups[i].Value > groups[j].Value
		}
		return groups[i].Name < groups[j].Name
	})

	net := toCents(income.Sub(expenseTotal))

	steps := []WaterfallStep{{Name: "Revenus", Value: toCents(income)}}
	rest := 0.0
	for i, g := range groups {
		if i < topExpenseGroups {
			steps = append(steps, WaterfallStep{Name: g.Name, Value: -g.Value})
			continue
		}
		rest += g.Value
	}
	if rest > 0 {
		steps = append(steps, WaterfallStep{Name: "Autres dépenses", Value: -rest})
	}
	finalName := "Épargne"
	if net < 0 {
		finalName = "Déficit"
	}
	steps = append(steps, WaterfallStep{Name: finalName, Value: net})

	return &MonthSummary{
		Month:        month,
		Income:       toCents(income),
		ExpenseTotal: toCents(expenseTotal),
		Net:          net,
		Steps:        steps,
	}, nil
}

func categoryNames(ctx context.Context, storage service.Storage, userID string) (map[int]string, error) {
	cats, err := storage.GetCategories(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	idToName := make(map[int]string, len(cats))
	for _, cat := range cats {
		idToName[cat.ID] = cat.Name
	}
	return idToName, nil
}

func toCents(d decimal.Decimal) float64 {
	f, _ := d.Round(2).Float64()
	return f
}
