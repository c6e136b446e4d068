package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/cfischer/centime/internal/model"
)

// GetOrCreateImportAccount returns the user's synthetic file-import account,
// creating it on first use. The provider account id is derived from the user
// so repeated imports always land on the same account.
func (s *SQLiteStorage) GetOrCreateImportAccount(ctx context.Context, userID string) (*model.Account, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(userID, "userID"); err != nil {
		return nil, err
	}

	providerID := "csv_" + userID

	query := `
		SELECT id, user_id, provider_account_id, name, currency, created_at
		FROM accounts
		WHERE provider_account_id = ?`

	var account model.Account
	err := s.db.QueryRowContext(ctx, query, providerID).Scan(
		&account.ID, &account.UserID, &account.ProviderAccountID,
		&account.Name, &account.Currency, &account.CreatedAt,
	)
	if err == nil {
		return &account, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("failed to query account: %w", err)
	}

	account = model.Account{
		ID:                uuid.NewString(),
		UserID:            userID,
		ProviderAccountID: providerID,
		Name:              "Compte CSV",
		Currency:          "EUR",
	}

	insert := `
		INSERT INTO accounts (id, user_id, provider_account_id, name, currency)
		VALUES (?, ?, ?, ?, ?)`

	if _, err := s.db.ExecContext(ctx, insert,
		account.ID, account.UserID, account.ProviderAccountID,
		account.Name, account.Currency,
	); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	slog.Info("created import account", "user", userID, "account", account.ID)
	return &account, nil
}
