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

// NewVariantsCommand creates the variants command group.
func NewVariantsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "variants",
		Aliases: []string{"variant"},
		Short:   "Manage product variants",
		Long:    "List and manage the variants of a product",
	}

	cmd.AddCommand(newVariantsListCommand())
	cmd.AddCommand(newVariantsCreateCommand())
	cmd.AddCommand(newVariantsStatusCommand())
	cmd.AddCommand(newVariantsDeleteCommand())

	return cmd
}

func newVariantsListCommand() *cobra.Command {
	var (
		productID string
		page      int
		limit     int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List variants of a product",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			params := &catalog.VariantListParams{
				ListParams: listParamsFromFlags(page, limit, ""),
				ProductID:  productID,
			}

			variants, err := client.API().Variants().List(context.Background(), params)
			if err != nil {
				return fmt.Errorf("failed to list variants: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON, OutputFormatYAML:
				return renderEncoded(output, variants.Items)
			default:
				if len(variants.Items) == 0 {
					fmt.Println("No variants found")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Name", "Price", "SKU", "Default", "Active")

				for _, variant := range variants.Items {
					table.Append(variant.ID, variant.Name, variant.Price.String(), variant.SKU,
						formatBool(variant.IsDefault), formatBool(variant.IsActive))
				}

				table.Render()
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&productID, "product", "", "product id (required)")
	cmd.Flags().IntVar(&page, "page", 1, "page number")
	cmd.Flags().IntVar(&limit, "limit", 10, "results per page")
	_ = cmd.MarkFlagRequired("product")

	return cmd
}

func newVariantsCreateCommand() *cobra.Command {
	var request catalog.VariantCreateRequest

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a variant",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			variant, err := client.API().Variants().Create(context.Background(), &request)
			if err != nil {
				return fmt.Errorf("failed to create variant: %w", err)
			}

			fmt.Printf("Created variant %s (%s)\n", variant.Name, variant.ID)

			return nil
		},
	}

	cmd.Flags().StringVar(&request.Name, "name", "", "variant name (required)")
	cmd.Flags().Float64Var(&request.Price, "price", 0, "price (required)")
	cmd.Flags().StringVar(&request.SKU, "sku", "", "SKU")
	cmd.Flags().StringVar(&request.ProductID, "product", "", "product id (required)")
	cmd.Flags().BoolVar(&request.IsDefault, "default", false, "mark as the default variant")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("price")
	_ = cmd.MarkFlagRequired("product")

	return cmd
}

func newVariantsStatusCommand() *cobra.Command {
	var active bool

	cmd := &cobra.Command{
		Use:   "status VARIANT_ID",
		Short: "Enable or disable a variant",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			variant, err := client.API().Variants().SetActive(context.Background(), args[0], active)
			if err != nil {
				return fmt.Errorf("failed to update variant status: %w", err)
			}

			fmt.Printf("Variant %s is now %s\n", variant.Name, activeWord(variant.IsActive))

			return nil
		},
	}

	cmd.Flags().BoolVar(&active, "active", true, "set the variant active or inactive")

	return cmd
}

func newVariantsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete VARIANT_ID",
		Short: "Delete a variant",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			err = client.API().Variants().Delete(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to delete variant: %w", err)
			}

			fmt.Printf("Deleted variant %s\n", args[0])

			return nil
		},
	}
}
