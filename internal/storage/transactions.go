package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/cfischer/centime/internal/common"
	"github.com/cfischer/centime/internal/model"
	"github.com/cfischer/centime/internal/service"
)

// TransactionExists reports whether the (account, identifier) key is already
// stored.
func (s *SQLiteStorage) TransactionExists(ctx context.Context, accountID, txnID string) (bool, error) {
	if err := validateContext(ctx); err != nil {
		return false, err
	}
	if err := validateString(accountID, "accountID"); err != nil {
		return false, err
	}
	if err := validateString(txnID, "txnID"); err != nil {
		return false, err
	}

	var count int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM transactions WHERE account_id = ? AND id = ?`,
		accountID, txnID,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check transaction: %w", err)
	}
	return count > 0, nil
}

// UpsertTransaction inserts or replaces the row keyed by (account,
// identifier). Mutable fields are refreshed on conflict, so re-imports of
// overlapping statement periods stay idempotent with respect to row count.
func (s *SQLiteStorage) UpsertTransaction(ctx context.Context, txn *model.Transaction) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateTransaction(txn); err != nil {
		return err
	}

	query := `
		INSERT INTO transactions (
			id, account_id, date, amount, currency,
			label, raw_label, balance_hint, category_id
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(account_id, id) DO UPDATE SET
			date = excluded.date,
			amount = excluded.amount,
			currency = excluded.currency,
			label = excluded.label,
			raw_label = excluded.raw_label,
			balance_hint = excluded.balance_hint,
			category_id = excluded.category_id,
			updated_at = CURRENT_TIMESTAMP`

	_, err := s.db.ExecContext(ctx, query,
		txn.ID, txn.AccountID, txn.Date, txn.Amount, txn.Currency,
		txn.Label, txn.RawLabel, txn.BalanceHint, categoryIDValue(txn.CategoryID),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert transaction %s: %w", txn.ID, err)
	}
	return nil
}

// ListUncategorized returns the user's transactions lacking a category,
// oldest first, optionally restricted to one month, bounded to limit rows.
func (s *SQLiteStorage) ListUncategorized(ctx context.Context, userID string, month *service.MonthFilter, limit int) ([]model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = service.UncategorizedBatchLimit
	}

	query := `
		SELECT t.id, t.account_id, t.date, t.amount, t.currency,
			t.label, t.raw_label, t.balance_hint, t.category_id
		FROM transactions t
		JOIN accounts a ON a.id = t.account_id
		WHERE a.user_id = ? AND t.category_id IS NULL`
	args := []any{userID}

	if month != nil {
		query += ` AND t.date >= ? AND t.date < ?`
		args = append(args, month.Start, month.End)
	}
	query += ` ORDER BY t.date LIMIT ?`
	args = append(args, limit)

	return s.queryTransactions(ctx, query, args...)
}

// ListTransactionsByMonth returns all of the user's transactions in the
// given month, oldest first.
func (s *SQLiteStorage) ListTransactionsByMonth(ctx context.Context, userID string, month service.MonthFilter) ([]model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := `
		SELECT t.id, t.account_id, t.date, t.amount, t.currency,
			t.label, t.raw_label, t.balance_hint, t.category_id
		FROM transactions t
		JOIN accounts a ON a.id = t.account_id
		WHERE a.user_id = ? AND t.date >= ? AND t.date < ?
		ORDER BY t.date`

	return s.queryTransactions(ctx, query, userID, month.Start, month.End)
}

// UpdateTransactionCategory assigns a category to one stored transaction.
func (s *SQLiteStorage) UpdateTransactionCategory(ctx context.Context, accountID, txnID string, categoryID int) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(accountID, "accountID"); err != nil {
		return err
	}
	if err := validateString(txnID, "txnID"); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx,
		`UPDATE transactions
		 SET category_id = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE account_id = ? AND id = ?`,
		categoryID, accountID, txnID,
	)
	if err != nil {
		return fmt.Errorf("failed to update transaction category: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("transaction %s: %w", txnID, common.ErrNotFound)
	}
	return nil
}

func (s *SQLiteStorage) queryTransactions(ctx context.Context, query string, args ...any) ([]model.Transaction, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var txns []model.Transaction
	for rows.Next() {
		var txn model.Transaction
		var balance sql.NullString
		var categoryID sql.NullInt64
		if err := rows.Scan(
			&txn.ID, &txn.AccountID, &txn.Date, &txn.Amount, &txn.Currency,
			&txn.Label, &txn.RawLabel, &balance, &categoryID,
		); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		txn.BalanceHint = balance.String
		if categoryID.Valid {
			id := int(categoryID.Int64)
			txn.CategoryID = &id
		}
		txns = append(txns, txn)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transactions: %w", err)
	}

	return txns, nil
}

func categoryIDValue(id *int) any {
	if id == nil {
		return nil
	}
	return *id
}
