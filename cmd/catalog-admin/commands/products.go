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

// NewProductsCommand creates the products command group.
func NewProductsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "products",
		Aliases: []string{"product"},
		Short:   "Manage products",
		Long:    "List and manage catalog products",
	}

	cmd.AddCommand(newProductsListCommand())
	cmd.AddCommand(newProductsGetCommand())
	cmd.AddCommand(newProductsCreateCommand())
	cmd.AddCommand(newProductsStatusCommand())
	cmd.AddCommand(newProductsDeleteCommand())

	return cmd
}

func newProductsListCommand() *cobra.Command {
	var (
		page   int
		limit  int
		search string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List products",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			params := &catalog.ProductListParams{
				ListParams: listParamsFromFlags(page, limit, search),
			}

			products, err := client.API().Products().List(context.Background(), params)
			if err != nil {
				return fmt.Errorf("failed to list products: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON, OutputFormatYAML:
				return renderEncoded(output, products.Items)
			default:
				if len(products.Items) == 0 {
					fmt.Println("No products found")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Name", "Code", "Variants", "Active")

				for _, product := range products.Items {
					variants := ""
					if product.Counts != nil {
						variants = formatInt(product.Counts.Variants)
					}

					table.Append(product.ID, product.Name, product.Code, variants, formatBool(product.IsActive))
				}

				table.Render()

				// Bare-array list responses carry no pagination meta.
				if products.Meta != nil && products.Meta.TotalPages > 1 {
					fmt.Printf("\nShowing page %d of %d (%d total)\n",
						products.Meta.Page, products.Meta.TotalPages, products.Meta.Total)
				}
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "page number")
	cmd.Flags().IntVar(&limit, "limit", 10, "results per page")
	cmd.Flags().StringVar(&search, "search", "", "search term")

	return cmd
}

func newProductsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get PRODUCT_ID",
		Short: "Get product details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			product, err := client.API().Products().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get product: %w", err)
			}

			return renderEncoded(viper.GetString("output"), product)
		},
	}
}

func newProductsCreateCommand() *cobra.Command {
	var (
		request    catalog.ProductCreateRequest
		categories []string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a product",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			request.CategoryIDs = categories

			product, err := client.API().Products().Create(context.Background(), &request)
			if err != nil {
				return fmt.Errorf("failed to create product: %w", err)
			}

			fmt.Printf("Created product %s (%s)\n", product.Name, product.ID)

			return nil
		},
	}

	cmd.Flags().StringVar(&request.Name, "name", "", "product name (required)")
	cmd.Flags().StringVar(&request.Code, "code", "", "product code")
	cmd.Flags().StringVar(&request.Description, "description", "", "description")
	cmd.Flags().StringSliceVar(&categories, "category", nil, "category id (repeatable, at least one required)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("category")

	return cmd
}

func newProductsStatusCommand() *cobra.Command {
	var active bool

	cmd := &cobra.Command{
		Use:   "status PRODUCT_ID",
		Short: "Enable or disable a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			product, err := client.API().Products().SetActive(context.Background(), args[0], active)
			if err != nil {
				return fmt.Errorf("failed to update product status: %w", err)
			}

			fmt.Printf("Product %s is now %s\n", product.Name, activeWord(product.IsActive))

			return nil
		},
	}

	cmd.Flags().BoolVar(&active, "active", true, "set the product active or inactive")

	return cmd
}

func newProductsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete PRODUCT_ID",
		Short: "Delete a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			err = client.API().Products().Delete(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to delete product: %w", err)
			}

			fmt.Printf("Deleted product %s\n", args[0])

			return nil
		},
	}
}
