package model

import (
	"crypto/sha256"
	"fmt"
	"strconv"
	"time"
)

// Transaction represents one normalized bank-statement line.
type Transaction struct {
	Date        time.Time
	ID          string // content-addressed, see GenerateID
	AccountID   string
	Label       string // cleaned label used for classification
	RawLabel    string // original statement text, kept for display
	BalanceHint string
	Currency    string
	CategoryID  *int
	Amount      float64 // positive inflow, negative outflow
}

// GenerateID derives a stable identifier from the row's content. Identical
// (date, amount, balance) tuples always produce the same value, so a
// label-only edit on re-import updates the stored row instead of duplicating
// it. Truncated SHA-256; collisions are treated as negligible.
func GenerateID(date time.Time, amount float64, balanceHint string) string {
	// Fold negative zero (a zero-amount debit column) so it renders "0".
	if amount == 0 {
		amount = 0
	}
	data := fmt.Sprintf("%s|%s|%s",
		date.Format("2006-01-02"),
		strconv.FormatFloat(amount, 'f', -1, 64),
		balanceHint)
	sum := sha256.Sum256([]byte(data))
	return fmt.Sprintf("%x", sum)[:32]
}
