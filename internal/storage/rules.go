package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/cfischer/centime/internal/common"
	"github.com/cfischer/centime/internal/model"
)

// CreateRule stores a new categorization rule. The rule's category must
// exist and belong to the same user.
func (s *SQLiteStorage) CreateRule(ctx context.Context, rule *model.Rule) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateRule(rule); err != nil {
		return err
	}

	var categoryCount int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM categories WHERE id = ? AND user_id = ? AND is_active = 1`,
		rule.CategoryID, rule.UserID,
	).Scan(&categoryCount)
	if err != nil {
		return fmt.Errorf("failed to verify category: %w", err)
	}
	if categoryCount == 0 {
		return fmt.Errorf("category %d: %w", rule.CategoryID, common.ErrNotFound)
	}

	if rule.ID == "" {
		rule.ID = uuid.NewString()
	}
	if rule.CreatedAt.IsZero() {
		rule.CreatedAt = time.Now().UTC()
	}
	rule.IsEnabled = true

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO rules (id, user_id, pattern, category_id, is_enabled, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		rule.ID, rule.UserID, rule.Pattern, rule.CategoryID, rule.IsEnabled, rule.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create rule: %w", err)
	}
	return nil
}

// ListRules returns all of the user's rules, most recently created first.
func (s *SQLiteStorage) ListRules(ctx context.Context, userID string) ([]model.Rule, error) {
	return s.listRules(ctx, userID, false)
}

// ListEnabledRules returns the user's enabled rules, most recently created
// first, which is the order rule application resolves ties in.
func (s *SQLiteStorage) ListEnabledRules(ctx context.Context, userID string) ([]model.Rule, error) {
	return s.listRules(ctx, userID, true)
}

func (s *SQLiteStorage) listRules(ctx context.Context, userID string, enabledOnly bool) ([]model.Rule, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := `
		SELECT id, user_id, pattern, category_id, is_enabled, created_at
		FROM rules
		WHERE user_id = ?`
	if enabledOnly {
		query += ` AND is_enabled = 1`
	}
	query += ` ORDER BY created_at DESC, id`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query rules: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var rules []model.Rule
	for rows.Next() {
		var rule model.Rule
		if err := rows.Scan(
			&rule.ID, &rule.UserID, &rule.Pattern, &rule.CategoryID,
			&rule.IsEnabled, &rule.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan rule: %w", err)
		}
		rules = append(rules, rule)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rules: %w", err)
	}

	return rules, nil
}

// ToggleRule flips a rule's enabled flag and returns the updated rule. A
// rule owned by another user is indistinguishable from a missing one.
func (s *SQLiteStorage) ToggleRule(ctx context.Context, userID, id string) (*model.Rule, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}

	result, err := s.db.ExecContext(ctx,
		`UPDATE rules SET is_enabled = NOT is_enabled WHERE id = ? AND user_id = ?`,
		id, userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to toggle rule: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return nil, fmt.Errorf("rule %s: %w", id, common.ErrNotFound)
	}

	var rule model.Rule
	err = s.db.QueryRowContext(ctx,
		`SELECT id, user_id, pattern, category_id, is_enabled, created_at
		 FROM rules WHERE id = ? AND user_id = ?`,
		id, userID,
	).Scan(&rule.ID, &rule.UserID, &rule.Pattern, &rule.CategoryID, &rule.IsEnabled, &rule.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to reload rule: %w", err)
	}
	return &rule, nil
}

// DeleteRule removes a rule. Ownership-scoped like ToggleRule.
func (s *SQLiteStorage) DeleteRule(ctx context.Context, userID, id string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(id, "id"); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx,
		`DELETE FROM rules WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete rule: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("rule %s: %w", id, common.ErrNotFound)
	}
	return nil
}
