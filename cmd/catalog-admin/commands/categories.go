package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/storekit-io/catalog-admin-client/pkg/catalog"
)

// NewCategoriesCommand creates the categories command group.
func NewCategoriesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "categories",
		Aliases: []string{"category"},
		Short:   "Manage categories",
		Long:    "List and manage catalog categories",
	}

	cmd.AddCommand(newCategoriesListCommand())
	cmd.AddCommand(newCategoriesGetCommand())
	cmd.AddCommand(newCategoriesCreateCommand())
	cmd.AddCommand(newCategoriesStatusCommand())
	cmd.AddCommand(newCategoriesDeleteCommand())

	return cmd
}

func newCategoriesListCommand() *cobra.Command {
	var (
		page   int
		limit  int
		search string
		parent string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			params := &catalog.CategoryListParams{
				ListParams: listParamsFromFlags(page, limit, search),
				ParentID:   parent,
			}

			categories, err := client.API().Categories().List(context.Background(), params)
			if err != nil {
				return fmt.Errorf("failed to list categories: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON, OutputFormatYAML:
				return renderEncoded(output, categories.Items)
			default:
				if len(categories.Items) == 0 {
					fmt.Println("No categories found")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Name", "Slug", "Parent", "Active")

				for _, category := range categories.Items {
					table.Append(category.ID, category.Name, category.Slug, category.ParentID, formatBool(category.IsActive))
				}

				table.Render()

				// Bare-array list responses carry no pagination meta.
				if categories.Meta != nil && categories.Meta.TotalPages > 1 {
					fmt.Printf("\nShowing page %d of %d (%d total)\n",
						categories.Meta.Page, categories.Meta.TotalPages, categories.Meta.Total)
				}
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "page number")
	cmd.Flags().IntVar(&limit, "limit", 10, "results per page")
	cmd.Flags().StringVar(&search, "search", "", "search term")
	cmd.Flags().StringVar(&parent, "parent", "", "filter by parent category id")

	return cmd
}

func newCategoriesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get CATEGORY_ID",
		Short: "Get category details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			category, err := client.API().Categories().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get category: %w", err)
			}

			return renderEncoded(viper.GetString("output"), category)
		},
	}
}

func newCategoriesCreateCommand() *cobra.Command {
	var request catalog.CategoryCreateRequest

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a category",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			category, err := client.API().Categories().Create(context.Background(), &request)
			if err != nil {
				return fmt.Errorf("failed to create category: %w", err)
			}

			fmt.Printf("Created category %s (%s)\n", category.Name, category.ID)

			return nil
		},
	}

	cmd.Flags().StringVar(&request.Name, "name", "", "category name (required)")
	cmd.Flags().StringVar(&request.Slug, "slug", "", "URL slug (required)")
	cmd.Flags().StringVar(&request.Description, "description", "", "description")
	cmd.Flags().StringVar(&request.ParentID, "parent", "", "parent category id")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("slug")

	return cmd
}

func newCategoriesStatusCommand() *cobra.Command {
	var active bool

	cmd := &cobra.Command{
		Use:   "status CATEGORY_ID",
		Short: "Enable or disable a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			category, err := client.API().Categories().SetActive(context.Background(), args[0], active)
			if err != nil {
				return fmt.Errorf("failed to update category status: %w", err)
			}

			fmt.Printf("Category %s is now %s\n", category.Name, activeWord(category.IsActive))

			return nil
		},
	}

	cmd.Flags().BoolVar(&active, "active", true, "set the category active or inactive")

	return cmd
}

func newCategoriesDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete CATEGORY_ID",
		Short: "Delete a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			err = client.API().Categories().Delete(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to delete category: %w", err)
			}

			fmt.Printf("Deleted category %s\n", args[0])

			return nil
		},
	}
}

func activeWord(active bool) string {
	if active {
		return "active"
	}

	return "inactive"
}
