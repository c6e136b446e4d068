package model

// RowError records one skipped row and the reason it was skipped. Row
// numbers are 1-based and offset by the header line, so the first data row
// reports as row 2.
type RowError struct {
	Reason string
	Row    int
}

// CategoryCount pairs a category name with an occurrence count.
type CategoryCount struct {
	Name  string
	Count int
}

// ImportReport summarizes one CSV import run. Built once per call, never
// persisted.
type ImportReport struct {
	Delimiter          string
	Headers            []string
	ErrorsSample       []RowError
	AutoCategorizedTop []CategoryCount
	Imported           int
	Updated            int
	Skipped            int
	TotalRows          int
}
