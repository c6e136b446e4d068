// Package service defines the interfaces between the import pipeline and the
// persistence layer.
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/cfischer/centime/internal/model"
)

// UncategorizedBatchLimit caps how many transactions a single rule
// application pass will load. Callers needing more re-invoke; the bound keeps
// one call's latency and memory predictable.
const UncategorizedBatchLimit = 5000

// MonthFilter restricts a query to one calendar month [Start, End).
type MonthFilter struct {
	Start time.Time
	End   time.Time
}

// ParseMonth converts "YYYY-MM" into the UTC half-open interval covering
// that calendar month.
func ParseMonth(s string) (MonthFilter, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return MonthFilter{}, fmt.Errorf("invalid month %q (want YYYY-MM): %w", s, err)
	}
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	return MonthFilter{Start: start, End: start.AddDate(0, 1, 0)}, nil
}

// Storage defines the contract for the persistence layer.
type Storage interface {
	// Account operations
	GetOrCreateImportAccount(ctx context.Context, userID string) (*model.Account, error)

	// Category operations
	GetCategoryByName(ctx context.Context, userID, name string) (*model.Category, error)
	GetCategoryByID(ctx context.Context, userID string, id int) (*model.Category, error)
	CreateCategory(ctx context.Context, userID, name string) (*model.Category, error)
	GetCategories(ctx context.Context, userID string) ([]model.Category, error)

	// Transaction operations
	TransactionExists(ctx context.Context, accountID, txnID string) (bool, error)
	UpsertTransaction(ctx context.Context, txn *model.Transaction) error
	ListUncategorized(ctx context.Context, userID string, month *MonthFilter, limit int) ([]model.Transaction, error)
	UpdateTransactionCategory(ctx context.Context, accountID, txnID string, categoryID int) error
	ListTransactionsByMonth(ctx context.Context, userID string, month MonthFilter) ([]model.Transaction, error)

	// Rule operations
	CreateRule(ctx context.Context, rule *model.Rule) error
	ListRules(ctx context.Context, userID string) ([]model.Rule, error)
	ListEnabledRules(ctx context.Context, userID string) ([]model.Rule, error)
	ToggleRule(ctx context.Context, userID, id string) (*model.Rule, error)
	DeleteRule(ctx context.Context, userID, id string) error

	// Database management
	Migrate(ctx context.Context) error
	Close() error
}
