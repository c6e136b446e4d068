package model

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerateID(t *testing.T) {
	date := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)

	t.Run("stable across calls", func(t *testing.T) {
		a := GenerateID(date, -42.5, "1234,56")
		b := GenerateID(date, -42.5, "1234,56")
		assert.Equal(t, a, b)
	})

	t.Run("32 lowercase hex characters", func(t *testing.T) {
		id := GenerateID(date, 100, "")
		assert.Len(t, id, 32)
		assert.Regexp(t, `^[0-9a-f]{32}$`, id)
	})

	t.Run("changes with each input", func(t *testing.T) {
		base := GenerateID(date, -42.5, "100")
		assert.NotEqual(t, base, GenerateID(date.AddDate(0, 0, 1), -42.5, "100"))
		assert.NotEqual(t, base, GenerateID(date, -42.51, "100"))
		assert.NotEqual(t, base, GenerateID(date, -42.5, "101"))
	})

	t.Run("ignores time of day", func(t *testing.T) {
		midnight := GenerateID(date, 10, "")
		afternoon := GenerateID(date.Add(14*time.Hour), 10, "")
		assert.Equal(t, midnight, afternoon)
	})

	t.Run("amount formatting drops trailing zeros", func(t *testing.T) {
		// -42.50 and -42.5 are the same float64, so the same row.
		assert.Equal(t, GenerateID(date, -42.50, ""), GenerateID(date, -42.5, ""))
	})

	t.Run("negative zero hashes like zero", func(t *testing.T) {
		// A "0,00" debit column yields -0; the rendered amount must be "0".
		negZero := math.Copysign(0, -1)
		assert.Equal(t, GenerateID(date, 0, "100"), GenerateID(date, negZero, "100"))
	})
}
