package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cfischer/centime/internal/cli"
	"github.com/cfischer/centime/internal/model"
)

func categoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Manage categories",
	}
	cmd.AddCommand(categoriesListCmd())
	return cmd
}

func categoriesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List categories grouped by their top level",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			store, err := openStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			categories, err := store.GetCategories(ctx, profile())
			if err != nil {
				return fmt.Errorf("failed to list categories: %w", err)
			}
			if len(categories) == 0 {
				fmt.Println(cli.FormatSubtle("No categories yet; import a statement first"))
				return nil
			}

			fmt.Println(cli.FormatTitle("Categories"))
			lastGroup := ""
			for _, cat := range categories {
				group, _ := model.SplitCategoryName(cat.Name)
				if group != lastGroup {
					fmt.Println(cli.TitleStyle.UnsetMargins().Render(group))
					lastGroup = group
				}
				fmt.Printf("  %4d  %s\n", cat.ID, cat.Name)
			}
			return nil
		},
	}
}
