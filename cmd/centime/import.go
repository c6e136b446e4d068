package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cfischer/centime/internal/cli"
	"github.com/cfischer/centime/internal/ingest"
	"github.com/cfischer/centime/internal/model"
)

func importCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.csv>",
		Short: "Import a bank-statement CSV export",
		Long: `Import transactions from a bank-statement CSV export.

Column headers are matched loosely (accents, casing and punctuation are
ignored), amounts accept the French decimal comma, and legacy Latin-1
encodings are detected automatically. Re-importing an overlapping statement
updates existing rows instead of duplicating them.`,
		Args: cobra.ExactArgs(1),
		RunE: runImport,
	}
}

func runImport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	store, err := openStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	importer := ingest.NewImporter(store, profile())
	importer.Progress = os.Stderr

	report, err := importer.ImportFile(ctx, args[0])
	if err != nil {
		return err
	}

	fmt.Println(cli.RenderBox("Import Summary", formatReport(report)))
	return nil
}

func formatReport(report *model.ImportReport) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Rows: %d (delimiter %q)\n", report.TotalRows, report.Delimiter)
	fmt.Fprintf(&b, "%s  %s  %s\n",
		cli.FormatSuccess(fmt.Sprintf("%d imported", report.Imported)),
		fmt.Sprintf("%d updated", report.Updated),
		cli.FormatWarning(fmt.Sprintf("%d skipped", report.Skipped)),
	)
	fmt.Fprintf(&b, "Headers: %s\n", strings.Join(report.Headers, ", "))

	if len(report.AutoCategorizedTop) > 0 {
		b.WriteString("\nAuto-categorized:\n")
		for _, c := range report.AutoCategorizedTop {
			fmt.Fprintf(&b, "  %3d × %s\n", c.Count, c.Name)
		}
	}

	if len(report.ErrorsSample) > 0 {
		b.WriteString("\nSkipped rows (first 15):\n")
		for _, e := range report.ErrorsSample {
			fmt.Fprintf(&b, "  row %d: %s\n", e.Row, e.Reason)
		}
	}

	return b.String()
}
