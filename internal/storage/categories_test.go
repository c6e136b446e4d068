package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCategory(t *testing.T) {
	ctx := context.Background()

	t.Run("creates and returns the category", func(t *testing.T) {
		store, cleanup := createTestStorage(t)
		defer cleanup()

		cat, err := store.CreateCategory(ctx, "alice", "Courses / Supermarché")
		require.NoError(t, err)
		assert.Equal(t, "Courses / Supermarché", cat.Name)
		assert.Equal(t, "alice", cat.UserID)
		assert.True(t, cat.IsActive)
		assert.Positive(t, cat.ID)
	})

	t.Run("same name reuses the existing row", func(t *testing.T) {
		store, cleanup := createTestStorage(t)
		defer cleanup()

		first, err := store.CreateCategory(ctx, "alice", "Courses / Supermarché")
		require.NoError(t, err)
		second, err := store.CreateCategory(ctx, "alice", "Courses / Supermarché")
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)
	})

	t.Run("reactivates a deactivated row", func(t *testing.T) {
		store, cleanup := createTestStorage(t)
		defer cleanup()

		cat, err := store.CreateCategory(ctx, "alice", "Courses / Supermarché")
		require.NoError(t, err)

		_, err = store.db.ExecContext(ctx, `UPDATE categories SET is_active = 0 WHERE id = ?`, cat.ID)
		require.NoError(t, err)

		revived, err := store.CreateCategory(ctx, "alice", "Courses / Supermarché")
		require.NoError(t, err)
		assert.Equal(t, cat.ID, revived.ID)
		assert.True(t, revived.IsActive)
	})

	t.Run("same name under different users stays separate", func(t *testing.T) {
		store, cleanup := createTestStorage(t)
		defer cleanup()

		alice, err := store.CreateCategory(ctx, "alice", "Courses / Supermarché")
		require.NoError(t, err)
		bob, err := store.CreateCategory(ctx, "bob", "Courses / Supermarché")
		require.NoError(t, err)
		assert.NotEqual(t, alice.ID, bob.ID)
	})

	t.Run("rejects empty name", func(t *testing.T) {
		store, cleanup := createTestStorage(t)
		defer cleanup()

		_, err := store.CreateCategory(ctx, "alice", "")
		assert.ErrorIs(t, err, ErrEmptyString)
	})
}

func TestGetCategoryByName(t *testing.T) {
	ctx := context.Background()

	t.Run("missing category is nil without error", func(t *testing.T) {
		store, cleanup := createTestStorage(t)
		defer cleanup()

		cat, err := store.GetCategoryByName(ctx, "alice", "Inexistante")
		require.NoError(t, err)
		assert.Nil(t, cat)
	})

	t.Run("deactivated categories are invisible", func(t *testing.T) {
		store, cleanup := createTestStorage(t)
		defer cleanup()

		created, err := store.CreateCategory(ctx, "alice", "Courses / Supermarché")
		require.NoError(t, err)
		_, err = store.db.ExecContext(ctx, `UPDATE categories SET is_active = 0 WHERE id = ?`, created.ID)
		require.NoError(t, err)

		cat, err := store.GetCategoryByName(ctx, "alice", "Courses / Supermarché")
		require.NoError(t, err)
		assert.Nil(t, cat)
	})

	t.Run("scoped to the user", func(t *testing.T) {
		store, cleanup := createTestStorage(t)
		defer cleanup()

		_, err := store.CreateCategory(ctx, "alice", "Courses / Supermarché")
		require.NoError(t, err)

		cat, err := store.GetCategoryByName(ctx, "bob", "Courses / Supermarché")
		require.NoError(t, err)
		assert.Nil(t, cat)
	})
}

func TestGetCategoryByID(t *testing.T) {
	ctx := context.Background()
	store, cleanup := createTestStorage(t)
	defer cleanup()

	created, err := store.CreateCategory(ctx, "alice", "Courses / Supermarché")
	require.NoError(t, err)

	cat, err := store.GetCategoryByID(ctx, "alice", created.ID)
	require.NoError(t, err)
	require.NotNil(t, cat)
	assert.Equal(t, created.Name, cat.Name)

	// Another user's id resolves to nothing.
	cat, err = store.GetCategoryByID(ctx, "bob", created.ID)
	require.NoError(t, err)
	assert.Nil(t, cat)
}

func TestGetCategories(t *testing.T) {
	ctx := context.Background()
	store, cleanup := createTestStorage(t)
	defer cleanup()

	for _, name := range []string{"Logement / Loyer", "Courses / Supermarché", "Abonnements / Netflix"} {
		_, err := store.CreateCategory(ctx, "alice", name)
		require.NoError(t, err)
	}
	_, err := store.CreateCategory(ctx, "bob", "Divers")
	require.NoError(t, err)

	cats, err := store.GetCategories(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, cats, 3)
	assert.Equal(t, "Abonnements / Netflix", cats[0].Name)
	assert.Equal(t, "Courses / Supermarché", cats[1].Name)
	assert.Equal(t, "Logement / Loyer", cats[2].Name)
}
