package ingest

import (
	"context"
	"fmt"

	"github.com/cfischer/centime/internal/service"
)

// categoryRegistry memoizes category name to identifier lookups for one
// import run. Its lifetime equals one Import call, so concurrent runs never
// share state; cross-run duplicate protection comes from the storage layer's
// uniqueness constraint on (user, name).
type categoryRegistry struct {
	storage service.Storage
	ids     map[string]int
	userID  string
}

func newCategoryRegistry(storage service.Storage, userID string) *categoryRegistry {
	return &categoryRegistry{
		storage: storage,
		ids:     make(map[string]int),
		userID:  userID,
	}
}

// GetOrCreate resolves a normalized category name to its identifier,
// creating the category on first use. At most one creation per distinct name
// per run, even though rows arrive sequentially.
func (c *categoryRegistry) GetOrCreate(ctx context.Context, name string) (int, error) {
	if id, ok := c.ids[name]; ok {
		return id, nil
	}

	existing, err := c.storage.GetCategoryByName(ctx, c.userID, name)
	if err != nil {
		return 0, fmt.Errorf("failed to look up category %q: %w", name, err)
	}
	if existing != nil {
		c.ids[name] = existing.ID
		return existing.ID, nil
	}

	created, err := c.storage.CreateCategory(ctx, c.userID, name)
	if err != nil {
		return 0, fmt.Errorf("failed to create category %q: %w", name, err)
	}
	c.ids[name] = created.ID
	return created.ID, nil
}
