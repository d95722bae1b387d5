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

// NewAttributesCommand creates the attributes command group.
func NewAttributesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "attributes",
		Aliases: []string{"attribute"},
		Short:   "Manage attributes",
		Long:    "List and manage variant attributes and their values",
	}

	cmd.AddCommand(newAttributesListCommand())
	cmd.AddCommand(newAttributesCreateCommand())
	cmd.AddCommand(newAttributesDeleteCommand())
	cmd.AddCommand(newAttributeValuesCommand())

	return cmd
}

func newAttributesListCommand() *cobra.Command {
	var (
		page   int
		limit  int
		search string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List attributes",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			params := &catalog.AttributeListParams{
				ListParams: listParamsFromFlags(page, limit, search),
			}

			attributes, err := client.API().Attributes().List(context.Background(), params)
			if err != nil {
				return fmt.Errorf("failed to list attributes: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON, OutputFormatYAML:
				return renderEncoded(output, attributes.Items)
			default:
				if len(attributes.Items) == 0 {
					fmt.Println("No attributes found")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Name", "Data Type", "Active")

				for _, attribute := range attributes.Items {
					table.Append(attribute.ID, attribute.Name, string(attribute.DataType), formatBool(attribute.IsActive))
				}

				table.Render()
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "page number")
	cmd.Flags().IntVar(&limit, "limit", 10, "results per page")
	cmd.Flags().StringVar(&search, "search", "", "search term")

	return cmd
}

func newAttributesCreateCommand() *cobra.Command {
	var (
		name     string
		dataType string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an attribute",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			request := &catalog.AttributeCreateRequest{
				Name:     name,
				DataType: catalog.AttributeDataType(dataType),
			}

			attribute, err := client.API().Attributes().Create(context.Background(), request)
			if err != nil {
				return fmt.Errorf("failed to create attribute: %w", err)
			}

			fmt.Printf("Created attribute %s (%s)\n", attribute.Name, attribute.ID)

			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "attribute name (required)")
	cmd.Flags().StringVar(&dataType, "data-type", "TEXT", "data type (TEXT, NUMBER, BOOLEAN)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newAttributesDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete ATTRIBUTE_ID",
		Short: "Delete an attribute",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			err = client.API().Attributes().Delete(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to delete attribute: %w", err)
			}

			fmt.Printf("Deleted attribute %s\n", args[0])

			return nil
		},
	}
}

// newAttributeValuesCommand creates the attribute values subgroup.
func newAttributeValuesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "values",
		Short: "Manage attribute values",
	}

	cmd.AddCommand(newAttributeValuesListCommand())
	cmd.AddCommand(newAttributeValuesCreateCommand())
	cmd.AddCommand(newAttributeValuesDeleteCommand())

	return cmd
}

func newAttributeValuesListCommand() *cobra.Command {
	var (
		attributeID string
		page        int
		limit       int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List attribute values",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			params := &catalog.AttributeValueListParams{
				ListParams:  listParamsFromFlags(page, limit, ""),
				AttributeID: attributeID,
			}

			values, err := client.API().AttributeValues().List(context.Background(), params)
			if err != nil {
				return fmt.Errorf("failed to list attribute values: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON, OutputFormatYAML:
				return renderEncoded(output, values.Items)
			default:
				if len(values.Items) == 0 {
					fmt.Println("No attribute values found")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Attribute", "Value", "Active")

				for _, value := range values.Items {
					table.Append(value.ID, value.AttributeID, value.Value, formatBool(value.IsActive))
				}

				table.Render()
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&attributeID, "attribute", "", "filter by attribute id")
	cmd.Flags().IntVar(&page, "page", 1, "page number")
	cmd.Flags().IntVar(&limit, "limit", 10, "results per page")

	return cmd
}

func newAttributeValuesCreateCommand() *cobra.Command {
	var request catalog.AttributeValueCreateRequest

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an attribute value",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			value, err := client.API().AttributeValues().Create(context.Background(), &request)
			if err != nil {
				return fmt.Errorf("failed to create attribute value: %w", err)
			}

			fmt.Printf("Created attribute value %s (%s)\n", value.Value, value.ID)

			return nil
		},
	}

	cmd.Flags().StringVar(&request.AttributeID, "attribute", "", "attribute id (required)")
	cmd.Flags().StringVar(&request.Value, "value", "", "value (required)")
	_ = cmd.MarkFlagRequired("attribute")
	_ = cmd.MarkFlagRequired("value")

	return cmd
}

func newAttributeValuesDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete VALUE_ID",
		Short: "Delete an attribute value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			err = client.API().AttributeValues().Delete(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to delete attribute value: %w", err)
			}

			fmt.Printf("Deleted attribute value %s\n", args[0])

			return nil
		},
	}
}
