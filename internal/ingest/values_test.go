package ingest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	t.Run("accepts french formats", func(t *testing.T) {
		tests := []struct {
			input string
			want  float64
		}{
			{"12,50", 12.5},
			{"-12,50", -12.5},
			{"1 234,56", 1234.56},
			{"1\u00a0234,56", 1234.56}, // non-breaking space separator
			{"42", 42},
			{"42.5", 42.5},
			{" -7,00 ", -7},
		}
		for _, tt := range tests {
			got, err := ParseAmount(tt.input)
			require.NoError(t, err, "input %q", tt.input)
			assert.InDelta(t, tt.want, got, 1e-9, "input %q", tt.input)
		}
	})

	t.Run("reports the raw value on failure", func(t *testing.T) {
		_, err := ParseAmount("abc")
		require.Error(t, err)
		assert.EqualError(t, err, "montant invalide: abc")
	})

	t.Run("rejects empty", func(t *testing.T) {
		_, err := ParseAmount("")
		assert.Error(t, err)
	})
}

func TestParseDate(t *testing.T) {
	march5 := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)

	t.Run("iso date", func(t *testing.T) {
		got, err := ParseDate("2024-03-05")
		require.NoError(t, err)
		assert.Equal(t, march5, got)
	})

	t.Run("iso timestamp keeps only the date", func(t *testing.T) {
		got, err := ParseDate("2024-03-05T14:30:00Z")
		require.NoError(t, err)
		assert.Equal(t, march5, got)
	})

	t.Run("french date is day first", func(t *testing.T) {
		got, err := ParseDate("05/03/2024")
		require.NoError(t, err)
		assert.Equal(t, march5, got)
	})

	t.Run("result is utc midnight", func(t *testing.T) {
		got, err := ParseDate("31/12/2024")
		require.NoError(t, err)
		assert.Equal(t, time.UTC, got.Location())
		assert.Zero(t, got.Hour())
	})

	t.Run("rejects other shapes", func(t *testing.T) {
		for _, input := range []string{"", "5/3/2024", "03-05-2024", "hier", "2024-13-45"} {
			_, err := ParseDate(input)
			require.Error(t, err, "input %q", input)
			assert.Contains(t, err.Error(), "date invalide", "input %q", input)
		}
	})
}
