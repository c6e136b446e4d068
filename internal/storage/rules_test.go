package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cfischer/centime/internal/common"
	"github.com/cfischer/centime/internal/model"
)

func TestCreateRule(t *testing.T) {
	ctx := context.Background()

	t.Run("assigns id and timestamps", func(t *testing.T) {
		store, cleanup := createTestStorage(t)
		defer cleanup()

		cat, err := store.CreateCategory(ctx, "alice", "Abonnements / Netflix")
		require.NoError(t, err)

		rule := &model.Rule{UserID: "alice", Pattern: "NETFLIX", CategoryID: cat.ID}
		require.NoError(t, store.CreateRule(ctx, rule))
		assert.NotEmpty(t, rule.ID)
		assert.False(t, rule.CreatedAt.IsZero())
		assert.True(t, rule.IsEnabled)
	})

	t.Run("rejects a category the user does not own", func(t *testing.T) {
		store, cleanup := createTestStorage(t)
		defer cleanup()

		cat, err := store.CreateCategory(ctx, "alice", "Abonnements / Netflix")
		require.NoError(t, err)

		err = store.CreateRule(ctx, &model.Rule{UserID: "bob", Pattern: "NETFLIX", CategoryID: cat.ID})
		assert.ErrorIs(t, err, common.ErrNotFound)
	})

	t.Run("rejects incomplete rules", func(t *testing.T) {
		store, cleanup := createTestStorage(t)
		defer cleanup()

		assert.ErrorIs(t, store.CreateRule(ctx, nil), ErrNilParameter)
		assert.ErrorIs(t, store.CreateRule(ctx, &model.Rule{UserID: "alice", CategoryID: 1}), ErrInvalidRule)
		assert.ErrorIs(t, store.CreateRule(ctx, &model.Rule{UserID: "alice", Pattern: "X"}), ErrInvalidRule)
	})
}

func TestListRules(t *testing.T) {
	ctx := context.Background()
	store, cleanup := createTestStorage(t)
	defer cleanup()

	cat, err := store.CreateCategory(ctx, "alice", "Divers")
	require.NoError(t, err)

	now := time.Now().UTC()
	older := &model.Rule{UserID: "alice", Pattern: "ANCIEN", CategoryID: cat.ID, CreatedAt: now.Add(-time.Hour)}
	newer := &model.Rule{UserID: "alice", Pattern: "RECENT", CategoryID: cat.ID, CreatedAt: now}
	require.NoError(t, store.CreateRule(ctx, older))
	require.NoError(t, store.CreateRule(ctx, newer))

	t.Run("most recently created first", func(t *testing.T) {
		rules, err := store.ListRules(ctx, "alice")
		require.NoError(t, err)
		require.Len(t, rules, 2)
		assert.Equal(t, "RECENT", rules[0].Pattern)
		assert.Equal(t, "ANCIEN", rules[1].Pattern)
	})

	t.Run("enabled-only filter", func(t *testing.T) {
		_, err := store.ToggleRule(ctx, "alice", older.ID)
		require.NoError(t, err)

		enabled, err := store.ListEnabledRules(ctx, "alice")
		require.NoError(t, err)
		require.Len(t, enabled, 1)
		assert.Equal(t, "RECENT", enabled[0].Pattern)

		all, err := store.ListRules(ctx, "alice")
		require.NoError(t, err)
		assert.Len(t, all, 2)
	})

	t.Run("scoped to the user", func(t *testing.T) {
		rules, err := store.ListRules(ctx, "bob")
		require.NoError(t, err)
		assert.Empty(t, rules)
	})
}

func TestToggleRule(t *testing.T) {
	ctx := context.Background()
	store, cleanup := createTestStorage(t)
	defer cleanup()

	cat, err := store.CreateCategory(ctx, "alice", "Divers")
	require.NoError(t, err)
	rule := &model.Rule{UserID: "alice", Pattern: "X", CategoryID: cat.ID}
	require.NoError(t, store.CreateRule(ctx, rule))

	t.Run("flips and reports the new state", func(t *testing.T) {
		toggled, err := store.ToggleRule(ctx, "alice", rule.ID)
		require.NoError(t, err)
		assert.False(t, toggled.IsEnabled)

		toggled, err = store.ToggleRule(ctx, "alice", rule.ID)
		require.NoError(t, err)
		assert.True(t, toggled.IsEnabled)
	})

	t.Run("another user's rule is not found", func(t *testing.T) {
		_, err := store.ToggleRule(ctx, "bob", rule.ID)
		assert.ErrorIs(t, err, common.ErrNotFound)
	})
}

func TestDeleteRule(t *testing.T) {
	ctx := context.Background()
	store, cleanup := createTestStorage(t)
	defer cleanup()

	cat, err := store.CreateCategory(ctx, "alice", "Divers")
	require.NoError(t, err)
	rule := &model.Rule{UserID: "alice", Pattern: "X", CategoryID: cat.ID}
	require.NoError(t, store.CreateRule(ctx, rule))

	t.Run("another user's rule is not found", func(t *testing.T) {
		assert.ErrorIs(t, store.DeleteRule(ctx, "bob", rule.ID), common.ErrNotFound)
	})

	t.Run("deletes and stays deleted", func(t *testing.T) {
		require.NoError(t, store.DeleteRule(ctx, "alice", rule.ID))
		assert.ErrorIs(t, store.DeleteRule(ctx, "alice", rule.ID), common.ErrNotFound)

		rules, err := store.ListRules(ctx, "alice")
		require.NoError(t, err)
		assert.Empty(t, rules)
	})
}
