package ingest

import (
	"encoding/csv"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"github.com/cfischer/centime/internal/common"
)

// replacementRuneLimit is how many U+FFFD runes a UTF-8 decode may produce
// before the payload is re-read as Latin-1. Legacy bank exports are often
// Windows/ISO-8859 encoded and turn into mojibake otherwise.
const replacementRuneLimit = 2

// DecodeStatement converts raw upload bytes to text, falling back to Latin-1
// when the UTF-8 decode is visibly corrupted, and strips a UTF-8 BOM.
func DecodeStatement(data []byte) (string, error) {
	content := string(data)
	bad := 0
	for _, r := range content {
		if r == utf8.RuneError {
			bad++
		}
	}
	if bad > replacementRuneLimit {
		decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
		if err != nil {
			return "", fmt.Errorf("failed to decode statement: %w", err)
		}
		content = string(decoded)
	}
	return strings.TrimPrefix(content, "\uFEFF"), nil
}

// DetectDelimiter prefers the semicolon most European exports use, falling
// back to a comma.
func DetectDelimiter(content string) rune {
	if strings.Contains(content, ";") {
		return ';'
	}
	return ','
}

// ParseRows reads the statement into header-keyed rows. A structural CSV
// failure, including a row whose field count differs from the header's,
// aborts the whole import; per-row data problems do not reach this layer.
func ParseRows(content string, delimiter rune) ([]string, []RawRow, error) {
	reader := csv.NewReader(strings.NewReader(content))
	reader.Comma = delimiter
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", common.ErrUnreadableCSV, err)
	}
	if len(records) == 0 {
		return nil, nil, nil
	}

	headers := make([]string, len(records[0]))
	for i, h := range records[0] {
		headers[i] = strings.TrimSpace(h)
	}

	rows := make([]RawRow, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(RawRow, len(headers))
		for i, header := range headers {
			row[header] = record[i]
		}
		rows = append(rows, row)
	}
	return headers, rows, nil
}
