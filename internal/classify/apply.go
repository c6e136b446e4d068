package classify

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/cfischer/centime/internal/service"
)

// ApplyRules assigns categories to transactions currently lacking one, using
// the user's enabled rules. Matching is case-insensitive substring
// containment of the rule pattern within the raw label; the most recently
// created matching rule wins. At most service.UncategorizedBatchLimit
// transactions are considered per call. Returns the number updated.
func ApplyRules(ctx context.Context, storage service.Storage, userID string, month *service.MonthFilter) (int, error) {
	rules, err := storage.ListEnabledRules(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to list rules: %w", err)
	}
	if len(rules) == 0 {
		return 0, nil
	}

	txns, err := storage.ListUncategorized(ctx, userID, month, service.UncategorizedBatchLimit)
	if err != nil {
		return 0, fmt.Errorf("failed to list uncategorized transactions: %w", err)
	}

	updated := 0
	for _, txn := range txns {
		labelUpper := strings.ToUpper(txn.RawLabel)
		for _, rule := range rules {
			if !strings.Contains(labelUpper, strings.ToUpper(rule.Pattern)) {
				continue
			}
			if err := storage.UpdateTransactionCategory(ctx, txn.AccountID, txn.ID, rule.CategoryID); err != nil {
				return updated, fmt.Errorf("failed to update transaction %s: %w", txn.ID, err)
			}
			updated++
			break
		}
	}

	slog.Info("applied rules", "considered", len(txns), "updated", updated)
	return updated, nil
}
