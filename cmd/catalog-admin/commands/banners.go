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

// NewBannersCommand creates the banners command group.
func NewBannersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "banners",
		Aliases: []string{"banner"},
		Short:   "Manage banners",
		Long:    "List and manage storefront banners",
	}

	cmd.AddCommand(newBannersListCommand())
	cmd.AddCommand(newBannersCreateCommand())
	cmd.AddCommand(newBannersStatusCommand())
	cmd.AddCommand(newBannersDeleteCommand())

	return cmd
}

func newBannersListCommand() *cobra.Command {
	var (
		page  int
		limit int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List banners",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			params := &catalog.BannerListParams{
				ListParams: listParamsFromFlags(page, limit, ""),
			}

			banners, err := client.API().Banners().List(context.Background(), params)
			if err != nil {
				return fmt.Errorf("failed to list banners: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON, OutputFormatYAML:
				return renderEncoded(output, banners.Items)
			default:
				if len(banners.Items) == 0 {
					fmt.Println("No banners found")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Title", "Link Type", "Link Value", "Active")

				for _, banner := range banners.Items {
					table.Append(banner.ID, banner.Title, string(banner.LinkType), banner.LinkValue, formatBool(banner.IsActive))
				}

				table.Render()
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "page number")
	cmd.Flags().IntVar(&limit, "limit", 10, "results per page")

	return cmd
}

func newBannersCreateCommand() *cobra.Command {
	var (
		request  catalog.BannerCreateRequest
		linkType string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a banner",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			request.LinkType = catalog.BannerLinkType(linkType)

			banner, err := client.API().Banners().Create(context.Background(), &request)
			if err != nil {
				return fmt.Errorf("failed to create banner: %w", err)
			}

			fmt.Printf("Created banner %s (%s)\n", banner.Title, banner.ID)

			return nil
		},
	}

	cmd.Flags().StringVar(&request.Title, "title", "", "banner title (required)")
	cmd.Flags().StringVar(&request.Subtitle, "subtitle", "", "banner subtitle")
	cmd.Flags().StringVar(&request.ImageURL, "image-url", "", "image URL (required)")
	cmd.Flags().StringVar(&linkType, "link-type", "", "link type (CATEGORY, PRODUCT, EXTERNAL)")
	cmd.Flags().StringVar(&request.LinkValue, "link-value", "", "link target (category id, product id, or URL)")
	cmd.Flags().IntVar(&request.Position, "position", 0, "display position")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("image-url")
	_ = cmd.MarkFlagRequired("link-type")
	_ = cmd.MarkFlagRequired("link-value")

	return cmd
}

func newBannersStatusCommand() *cobra.Command {
	var active bool

	cmd := &cobra.Command{
		Use:   "status BANNER_ID",
		Short: "Enable or disable a banner",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			banner, err := client.API().Banners().SetActive(context.Background(), args[0], active)
			if err != nil {
				return fmt.Errorf("failed to update banner status: %w", err)
			}

			fmt.Printf("Banner %s is now %s\n", banner.Title, activeWord(banner.IsActive))

			return nil
		},
	}

	cmd.Flags().BoolVar(&active, "active", true, "set the banner active or inactive")

	return cmd
}

func newBannersDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete BANNER_ID",
		Short: "Delete a banner",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			err = client.API().Banners().Delete(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to delete banner: %w", err)
			}

			fmt.Printf("Deleted banner %s\n", args[0])

			return nil
		},
	}
}
