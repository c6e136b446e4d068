package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cfischer/centime/internal/model"
)

// GetCategoryByName returns the user's category with the given normalized
// name, or nil if none exists.
func (s *SQLiteStorage) GetCategoryByName(ctx context.Context, userID, name string) (*model.Category, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(name, "name"); err != nil {
		return nil, err
	}

	query := `
		SELECT id, user_id, name, created_at, is_active
		FROM categories
		WHERE user_id = ? AND name = ? AND is_active = 1`

	var cat model.Category
	err := s.db.QueryRowContext(ctx, query, userID, name).Scan(
		&cat.ID, &cat.UserID, &cat.Name, &cat.CreatedAt, &cat.IsActive,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query category: %w", err)
	}

	return &cat, nil
}

// GetCategoryByID returns the user's category with the given id, or nil if
// the user owns no such category.
func (s *SQLiteStorage) GetCategoryByID(ctx context.Context, userID string, id int) (*model.Category, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := `
		SELECT id, user_id, name, created_at, is_active
		FROM categories
		WHERE user_id = ? AND id = ? AND is_active = 1`

	var cat model.Category
	err := s.db.QueryRowContext(ctx, query, userID, id).Scan(
		&cat.ID, &cat.UserID, &cat.Name, &cat.CreatedAt, &cat.IsActive,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query category: %w", err)
	}

	return &cat, nil
}

// CreateCategory creates a category for the user, reusing an existing row
// with the same name. The name must already be normalized.
func (s *SQLiteStorage) CreateCategory(ctx context.Context, userID, name string) (*model.Category, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(userID, "userID"); err != nil {
		return nil, err
	}
	if err := validateString(name, "name"); err != nil {
		return nil, err
	}

	// Check for an existing row first, including deactivated ones.
	existingQuery := `
		SELECT id, user_id, name, created_at, is_active
		FROM categories
		WHERE user_id = ? AND name = ?`

	var existing model.Category
	err := s.db.QueryRowContext(ctx, existingQuery, userID, name).Scan(
		&existing.ID, &existing.UserID, &existing.Name, &existing.CreatedAt, &existing.IsActive,
	)
	if err == nil {
		if !existing.IsActive {
			if _, updErr := s.db.ExecContext(ctx,
				`UPDATE categories SET is_active = 1 WHERE id = ?`, existing.ID); updErr != nil {
				return nil, fmt.Errorf("failed to reactivate category: %w", updErr)
			}
			existing.IsActive = true
			slog.Info("reactivated existing category", "name", name)
		}
		return &existing, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("failed to check existing category: %w", err)
	}

	now := time.Now().UTC()
	result, err := s.db.ExecContext(ctx,
		`INSERT INTO categories (user_id, name, created_at, is_active) VALUES (?, ?, ?, 1)`,
		userID, name, now,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get category ID: %w", err)
	}

	slog.Debug("created category", "user", userID, "name", name, "id", id)

	return &model.Category{
		ID:        int(id),
		UserID:    userID,
		Name:      name,
		CreatedAt: now,
		IsActive:  true,
	}, nil
}

// GetCategories returns all of the user's active categories ordered by name.
func (s *SQLiteStorage) GetCategories(ctx context.Context, userID string) ([]model.Category, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := `
		SELECT id, user_id, name, created_at, is_active
		FROM categories
		WHERE user_id = ? AND is_active = 1
		ORDER BY name`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var categories []model.Category
	for rows.Next() {
		var cat model.Category
		if err := rows.Scan(&cat.ID, &cat.UserID, &cat.Name, &cat.CreatedAt, &cat.IsActive); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, cat)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating categories: %w", err)
	}

	return categories, nil
}
