package model

import (
	"strings"
	"time"
)

// Uncategorized is the sentinel assigned when no rule or heuristic matches.
// Transactions carrying it are stored without a category reference; it never
// becomes a real category row.
const Uncategorized = "Non catégorisé"

// Category represents a user-scoped spending or income category. Names may
// carry two levels using a "Group / Subgroup" convention.
type Category struct {
	CreatedAt time.Time
	UserID    string
	Name      string
	ID        int
	IsActive  bool
}

// NormalizeCategoryName trims the name and collapses internal whitespace
// runs. Category uniqueness per user is defined over this normalized form.
func NormalizeCategoryName(name string) string {
	return strings.Join(strings.Fields(name), " ")
}

// SplitCategoryName splits a "Group / Subgroup" name into its two levels.
// Names without a separator use the whole name for both; empty names map to
// the uncategorized sentinel.
func SplitCategoryName(name string) (group, sub string) {
	if strings.TrimSpace(name) == "" {
		return Uncategorized, Uncategorized
	}
	var parts []string
	for _, p := range strings.Split(name, "/") {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) >= 2 {
		return parts[0], strings.Join(parts[1:], " / ")
	}
	trimmed := strings.TrimSpace(name)
	return trimmed, trimmed
}
