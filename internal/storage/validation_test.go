package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/cfischer/centime/internal/model"
)

func TestValidateString(t *testing.T) {
	assert.NoError(t, validateString("x", "param"))
	assert.ErrorIs(t, validateString("", "param"), ErrEmptyString)
	assert.ErrorIs(t, validateString("   ", "param"), ErrEmptyString)

	err := validateString("", "accountID")
	assert.Contains(t, err.Error(), "accountID")
}

func TestValidateContext(t *testing.T) {
	assert.NoError(t, validateContext(context.Background()))
	assert.ErrorIs(t, validateContext(nil), ErrNilContext) //nolint:staticcheck // nil check is the point
}

func TestValidateTransaction(t *testing.T) {
	valid := &model.Transaction{
		ID:        "abc123",
		AccountID: "acct",
		Date:      time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
		RawLabel:  "CARREFOUR",
	}
	assert.NoError(t, validateTransaction(valid))

	tests := []struct {
		name   string
		mutate func(*model.Transaction)
	}{
		{"missing id", func(txn *model.Transaction) { txn.ID = "" }},
		{"missing account", func(txn *model.Transaction) { txn.AccountID = "" }},
		{"missing date", func(txn *model.Transaction) { txn.Date = time.Time{} }},
		{"missing label", func(txn *model.Transaction) { txn.RawLabel = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txn := *valid
			tt.mutate(&txn)
			assert.ErrorIs(t, validateTransaction(&txn), ErrInvalidTransaction)
		})
	}
}
