package main

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/cfischer/centime/internal/classify"
	"github.com/cfischer/centime/internal/cli"
	"github.com/cfischer/centime/internal/common"
	"github.com/cfischer/centime/internal/model"
	"github.com/cfischer/centime/internal/service"
)

func rulesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Manage categorization rules",
		Long: `Manage the pattern rules that categorize transactions.

A rule assigns its category to any uncategorized transaction whose label
contains the pattern (case-insensitive). The most recently created matching
rule wins.`,
	}

	cmd.AddCommand(rulesListCmd())
	cmd.AddCommand(rulesAddCmd())
	cmd.AddCommand(rulesToggleCmd())
	cmd.AddCommand(rulesDeleteCmd())
	cmd.AddCommand(rulesApplyCmd())

	return cmd
}

func rulesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List rules, most recently created first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			store, err := openStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			rules, err := store.ListRules(ctx, profile())
			if err != nil {
				return fmt.Errorf("failed to list rules: %w", err)
			}
			if len(rules) == 0 {
				fmt.Println(cli.FormatSubtle("No rules defined"))
				return nil
			}

			for _, rule := range rules {
				status := cli.FormatSuccess("enabled")
				if !rule.IsEnabled {
					status = cli.FormatSubtle("disabled")
				}
				fmt.Printf("%s  %-30q  category %d  %s\n", rule.ID, rule.Pattern, rule.CategoryID, status)
			}
			return nil
		},
	}
}

func rulesAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <pattern> <category-id>",
		Short: "Create a rule mapping a label pattern to a category",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			categoryID, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid category id %q: %w", args[1], err)
			}

			store, err := openStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			cat, err := store.GetCategoryByID(ctx, profile(), categoryID)
			if err != nil {
				return err
			}
			if cat == nil {
				return fmt.Errorf("category %d: %w", categoryID, common.ErrNotFound)
			}

			rule := &model.Rule{
				UserID:     profile(),
				Pattern:    args[0],
				CategoryID: categoryID,
			}
			if err := store.CreateRule(ctx, rule); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Created rule %s for %s", rule.ID, cat.Name)))
			return nil
		},
	}
}

func rulesToggleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <rule-id>",
		Short: "Enable or disable a rule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, err := openStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			rule, err := store.ToggleRule(ctx, profile(), args[0])
			if err != nil {
				return err
			}

			state := "enabled"
			if !rule.IsEnabled {
				state = "disabled"
			}
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Rule %s is now %s", rule.ID, state)))
			return nil
		},
	}
}

func rulesDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <rule-id>",
		Short: "Delete a rule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, err := openStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.DeleteRule(ctx, profile(), args[0]); err != nil {
				return err
			}
			fmt.Println(cli.FormatSuccess("Rule deleted"))
			return nil
		},
	}
}

func rulesApplyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Apply enabled rules to uncategorized transactions",
		Long: fmt.Sprintf(`Apply enabled rules to transactions that have no category yet.

At most %d transactions are considered per invocation; run again to continue.`,
			service.UncategorizedBatchLimit),
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			var month *service.MonthFilter
			if monthStr, _ := cmd.Flags().GetString("month"); monthStr != "" {
				filter, err := service.ParseMonth(monthStr)
				if err != nil {
					return err
				}
				month = &filter
			}

			store, err := openStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			updated, err := classify.ApplyRules(ctx, store, profile(), month)
			if err != nil {
				return err
			}

			slog.Info("rule application finished", "updated", updated)
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Updated %d transactions", updated)))
			return nil
		},
	}

	cmd.Flags().String("month", "", "restrict to one month (YYYY-MM)")
	return cmd
}
