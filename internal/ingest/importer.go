package ingest

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"

	"github.com/schollz/progressbar/v3"

	"github.com/cfischer/centime/internal/classify"
	"github.com/cfischer/centime/internal/common"
	"github.com/cfischer/centime/internal/model"
	"github.com/cfischer/centime/internal/service"
)

const (
	maxErrorSamples   = 15
	maxAutoCategories = 20

	// defaultLabel stands in when no label-bearing column resolves.
	defaultLabel = "Transaction"
)

// Importer drives one uploaded statement through the import pipeline. Rows
// are processed strictly sequentially: created-vs-updated detection and the
// category registry both depend on earlier rows' effects being visible.
type Importer struct {
	storage service.Storage
	// Progress, when set, receives a progress bar during row processing.
	Progress io.Writer
	userID   string
}

// NewImporter creates an importer scoped to one user.
func NewImporter(storage service.Storage, userID string) *Importer {
	return &Importer{storage: storage, userID: userID}
}

// ImportFile reads and imports the statement at path. A missing file is a
// request-level failure; everything row-shaped is recovered per row.
func (imp *Importer) ImportFile(ctx context.Context, path string) (*model.ImportReport, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrMissingFile, err)
	}
	return imp.Import(ctx, data)
}

// Import processes raw statement bytes and returns the run report. Only
// structural failures (unreadable CSV, storage errors) abort the call; a bad
// row is skipped with its reason recorded in the bounded error sample.
func (imp *Importer) Import(ctx context.Context, data []byte) (*model.ImportReport, error) {
	content, err := DecodeStatement(data)
	if err != nil {
		return nil, err
	}

	delimiter := DetectDelimiter(content)
	headers, rows, err := ParseRows(content, delimiter)
	if err != nil {
		return nil, err
	}

	account, err := imp.storage.GetOrCreateImportAccount(ctx, imp.userID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve import account: %w", err)
	}

	registry := newCategoryRegistry(imp.storage, imp.userID)
	report := &model.ImportReport{
		Delimiter: string(delimiter),
		Headers:   headers,
		TotalRows: len(rows),
	}
	autoCounts := make(map[string]int)

	var bar *progressbar.ProgressBar
	if imp.Progress != nil && len(rows) > 0 {
		bar = progressbar.NewOptions(len(rows),
			progressbar.OptionSetWriter(imp.Progress),
			progressbar.OptionSetDescription("importing"),
			progressbar.OptionClearOnFinish(),
		)
	}

	for i, row := range rows {
		if bar != nil {
			_ = bar.Add(1)
		}
		// 1-based and offset by the header line: first data row is row 2.
		rowNum := i + 2

		outcome, reason, err := imp.importRow(ctx, account, registry, row, autoCounts)
		if err != nil {
			return nil, err
		}

		switch outcome {
		case rowCreated:
			report.Imported++
		case rowUpdated:
			report.Updated++
		case rowSkipped:
			report.Skipped++
			if len(report.ErrorsSample) < maxErrorSamples {
				report.ErrorsSample = append(report.ErrorsSample, model.RowError{Row: rowNum, Reason: reason})
			}
		}
	}

	report.AutoCategorizedTop = topCategories(autoCounts, maxAutoCategories)

	slog.Info("import complete",
		"user", imp.userID,
		"total", report.TotalRows,
		"imported", report.Imported,
		"updated", report.Updated,
		"skipped", report.Skipped)

	return report, nil
}

type rowOutcome int

const (
	rowCreated rowOutcome = iota
	rowUpdated
	rowSkipped
)

// importRow processes one statement line. The returned error is reserved for
// infrastructure failures; data problems come back as a skip reason.
func (imp *Importer) importRow(ctx context.Context, account *model.Account, registry *categoryRegistry, row RawRow, autoCounts map[string]int) (rowOutcome, string, error) {
	dateRaw := row.PickAny(dateColumns...)
	if dateRaw == "" {
		return rowSkipped, "date manquante", nil
	}

	label := row.PickAny(labelColumns...)
	if label == "" {
		label = defaultLabel
	}
	balance := row.PickAny(balanceColumns...)

	date, err := ParseDate(dateRaw)
	if err != nil {
		return rowSkipped, err.Error(), nil
	}

	amount, err := AmountFromRow(row)
	if err != nil {
		return rowSkipped, err.Error(), nil
	}

	// CSV-declared category wins and never counts as auto-categorized.
	categoryName := composeCategoryName(row.PickAny(categoryColumns...), row.PickAny(subcategoryColumns...))
	wasAuto := false
	if categoryName == "" {
		categoryName = classify.GuessCategory(label, amount)
		wasAuto = true
	}
	categoryName = model.NormalizeCategoryName(categoryName)

	var categoryID *int
	if categoryName != model.Uncategorized {
		id, regErr := registry.GetOrCreate(ctx, categoryName)
		if regErr != nil {
			return 0, "", regErr
		}
		categoryID = &id
		if wasAuto {
			autoCounts[categoryName]++
		}
	}

	txn := &model.Transaction{
		ID:          model.GenerateID(date, amount, balance),
		AccountID:   account.ID,
		Date:        date,
		Amount:      amount,
		Currency:    account.Currency,
		Label:       classify.CleanLabel(label),
		RawLabel:    label,
		BalanceHint: balance,
		CategoryID:  categoryID,
	}

	// Pre-check read classifies the outcome for the report only; the upsert
	// itself is a single idempotent operation.
	exists, err := imp.storage.TransactionExists(ctx, account.ID, txn.ID)
	if err != nil {
		return 0, "", fmt.Errorf("failed to check transaction %s: %w", txn.ID, err)
	}
	if err := imp.storage.UpsertTransaction(ctx, txn); err != nil {
		return 0, "", fmt.Errorf("failed to upsert transaction %s: %w", txn.ID, err)
	}

	if exists {
		return rowUpdated, "", nil
	}
	return rowCreated, "", nil
}

// composeCategoryName joins CSV-declared category and subcategory columns
// into the two-level "Category / Subcategory" convention.
func composeCategoryName(category, subcategory string) string {
	switch {
	case category != "" && subcategory != "":
		return category + " / " + subcategory
	case category != "":
		return category
	case subcategory != "":
		return subcategory
	default:
		return ""
	}
}

// topCategories returns the most frequent auto-assigned category names,
// descending by count, bounded to limit entries. Name order breaks ties so
// repeated imports report identically.
func topCategories(counts map[string]int, limit int) []model.CategoryCount {
	top := make([]model.CategoryCount, 0, len(counts))
	for name, count := range counts {
		top = append(top, model.CategoryCount{Name: name, Count: count})
	}
	sort.Slice(top, func(i, j int) bool {
		if top[i].Count != top[j].Count {
			return top[i].Count > top[j].Count
		}
		return top[i].Name < top[j].Name
	})
	if len(top) > limit {
		top = top[:limit]
	}
	return top
}
