package model

import "time"

// Account groups transactions belonging to one user. File-based imports use
// a single synthetic account per user, keyed by a deterministic provider
// account identifier so repeated imports land on the same account.
type Account struct {
	CreatedAt         time.Time
	ID                string
	UserID            string
	ProviderAccountID string
	Name              string
	Currency          string
}
