package analysis

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cfischer/centime/internal/model"
	"github.com/cfischer/centime/internal/storage"
)

const testUser = "test-user"

func newTestStorage(t *testing.T) *storage.SQLiteStorage {
	t.Helper()

	store, err := storage.NewSQLiteStorage(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	require.NoError(t, store.Migrate(context.Background()))
	return store
}

func seed(t *testing.T, store *storage.SQLiteStorage, accountID string, day int, amount float64, rawLabel, category string) {
	t.Helper()
	ctx := context.Background()

	txn := &model.Transaction{
		ID:        model.GenerateID(time.Date(2024, 3, day, 0, 0, 0, 0, time.UTC), amount, rawLabel),
		AccountID: accountID,
		Date:      time.Date(2024, 3, day, 0, 0, 0, 0, time.UTC),
		Amount:    amount,
		Currency:  "EUR",
		Label:     rawLabel,
		RawLabel:  rawLabel,
	}
	if category != "" {
		cat, err := store.CreateCategory(ctx, testUser, category)
		require.NoError(t, err)
		txn.CategoryID = &cat.ID
	}
	require.NoError(t, store.UpsertTransaction(ctx, txn))
}

func TestMonthSummaryReport(t *testing.T) {
	ctx := context.Background()

	t.Run("waterfall from income to savings", func(t *testing.T) {
		store := newTestStorage(t)
		account, err := store.GetOrCreateImportAccount(ctx, testUser)
		require.NoError(t, err)

		seed(t, store, account.ID, 1, 3000, "VIR SEPA EMPLOYEUR", "Revenus / Salaire")
		seed(t, store, account.ID, 2, -1200, "LOYER MARS", "Logement / Loyer")
		seed(t, store, account.ID, 3, -85, "PRLV EDF", "Logement / Énergie")
		seed(t, store, account.ID, 4, -400.50, "CARREFOUR", "Courses / Supermarché")

		summary, err := MonthSummaryReport(ctx, store, testUser, "2024-03")
		require.NoError(t, err)

		assert.Equal(t, "2024-03", summary.Month)
		assert.InDelta(t, 3000, summary.Income, 1e-9)
		assert.InDelta(t, 1685.50, summary.ExpenseTotal, 1e-9)
		assert.InDelta(t, 1314.50, summary.Net, 1e-9)

		require.Len(t, summary.Steps, 4)
		assert.Equal(t, WaterfallStep{Name: "Revenus", Value: 3000}, summary.Steps[0])
		// Groups sorted by spend, both Logement rows collapsed into one step.
		assert.Equal(t, WaterfallStep{Name: "Logement", Value: -1285}, summary.Steps[1])
		assert.Equal(t, WaterfallStep{Name: "Courses", Value: -400.50}, summary.Steps[2])
		assert.Equal(t, WaterfallStep{Name: "Épargne", Value: 1314.50}, summary.Steps[3])
	})

	t.Run("overspending month ends in a deficit step", func(t *testing.T) {
		store := newTestStorage(t)
		account, err := store.GetOrCreateImportAccount(ctx, testUser)
		require.NoError(t, err)

		seed(t, store, account.ID, 1, 100, "VIR RECU", "Revenus / Autres")
		seed(t, store, account.ID, 2, -250, "LOYER", "Logement / Loyer")

		summary, err := MonthSummaryReport(ctx, store, testUser, "2024-03")
		require.NoError(t, err)

		last := summary.Steps[len(summary.Steps)-1]
		assert.Equal(t, "Déficit", last.Name)
		assert.InDelta(t, -150, last.Value, 1e-9)
	})

	t.Run("uncategorized expenses group under the sentinel", func(t *testing.T) {
		store := newTestStorage(t)
		account, err := store.GetOrCreateImportAccount(ctx, testUser)
		require.NoError(t, err)

		seed(t, store, account.ID, 1, -30, "ZZZZZ", "")

		summary, err := MonthSummaryReport(ctx, store, testUser, "2024-03")
		require.NoError(t, err)

		require.Len(t, summary.Steps, 3)
		assert.Equal(t, model.Uncategorized, summary.Steps[1].Name)
	})

	t.Run("small groups collapse into autres", func(t *testing.T) {
		store := newTestStorage(t)
		account, err := store.GetOrCreateImportAccount(ctx, testUser)
		require.NoError(t, err)

		seed(t, store, account.ID, 1, 5000, "SALAIRE", "Revenus / Salaire")
		for i := 0; i < 10; i++ {
			seed(t, store, account.ID, i+2, -float64(100-i), fmt.Sprintf("DEPENSE %d", i), fmt.Sprintf("Groupe%d / Divers", i))
		}

		summary, err := MonthSummaryReport(ctx, store, testUser, "2024-03")
		require.NoError(t, err)

		// Income + 8 groups + the remainder + the final step.
		require.Len(t, summary.Steps, 11)
		assert.Equal(t, "Autres dépenses", summary.Steps[9].Name)
		assert.InDelta(t, -(92 + 91), summary.Steps[9].Value, 1e-9)
	})

	t.Run("other months are excluded", func(t *testing.T) {
		store := newTestStorage(t)
		account, err := store.GetOrCreateImportAccount(ctx, testUser)
		require.NoError(t, err)

		seed(t, store, account.ID, 1, -30, "MARS", "Divers / Mars")

		summary, err := MonthSummaryReport(ctx, store, testUser, "2024-04")
		require.NoError(t, err)
		assert.Zero(t, summary.Income)
		assert.Zero(t, summary.ExpenseTotal)
	})

	t.Run("invalid month", func(t *testing.T) {
		store := newTestStorage(t)
		_, err := MonthSummaryReport(ctx, store, testUser, "mars 2024")
		assert.Error(t, err)
	})
}
