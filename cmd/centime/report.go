package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/cfischer/centime/internal/analysis"
	"github.com/cfischer/centime/internal/cli"
)

func reportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Monthly spending reports",
	}
	cmd.AddCommand(reportMonthCmd())
	cmd.AddCommand(reportMerchantsCmd())
	return cmd
}

func defaultMonth() string {
	return time.Now().UTC().Format("2006-01")
}

func reportMonthCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "month",
		Short: "Income-to-savings waterfall for one month",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			month, _ := cmd.Flags().GetString("month")

			store, err := openStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			summary, err := analysis.MonthSummaryReport(ctx, store, profile(), month)
			if err != nil {
				return err
			}

			var b strings.Builder
			for _, step := range summary.Steps {
				fmt.Fprintf(&b, "%-24s %10.2f\n", step.Name, step.Value)
			}
			fmt.Fprintf(&b, "\nIncome %.2f, expenses %.2f, net %.2f\n",
				summary.Income, summary.ExpenseTotal, summary.Net)

			fmt.Println(cli.RenderBox(fmt.Sprintf("Month %s", summary.Month), b.String()))
			return nil
		},
	}

	cmd.Flags().String("month", defaultMonth(), "month to report on (YYYY-MM)")
	return cmd
}

func reportMerchantsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "merchants",
		Short: "Top merchants by spend for one month",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			month, _ := cmd.Flags().GetString("month")
			limit, _ := cmd.Flags().GetInt("limit")

			store, err := openStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			report, err := analysis.TopMerchants(ctx, store, profile(), month, limit)
			if err != nil {
				return err
			}

			var b strings.Builder
			for _, m := range report.Merchants {
				fmt.Fprintf(&b, "%-24s %10.2f  %5.1f%%\n", m.Merchant, m.Amount, m.CumulativePct)
			}
			fmt.Fprintf(&b, "\nTotal %.2f\n", report.Total)

			fmt.Println(cli.RenderBox(fmt.Sprintf("Merchants %s", report.Month), b.String()))
			return nil
		},
	}

	cmd.Flags().String("month", defaultMonth(), "month to report on (YYYY-MM)")
	cmd.Flags().Int("limit", 15, "number of merchants to list")
	return cmd
}
