package model

import "time"

// Rule maps a label substring to a category. Rules only apply to
// transactions that do not yet have a category; the most recently created
// matching rule wins.
type Rule struct {
	CreatedAt  time.Time
	ID         string
	UserID     string
	Pattern    string // matched case-insensitively against the raw label
	CategoryID int
	IsEnabled  bool
}
