package commands_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/storekit-io/catalog-admin-client/cmd/catalog-admin/commands"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findSubcommand(root *cobra.Command, name string) *cobra.Command {
	for _, cmd := range root.Commands() {
		if cmd.Name() == name {
			return cmd
		}
	}

	return nil
}

func TestNewCategoriesCommand(t *testing.T) {
	t.Parallel()

	cmd := commands.NewCategoriesCommand()
	assert.Equal(t, "categories", cmd.Use)
	assert.Equal(t, []string{"category"}, cmd.Aliases)

	subcommands := cmd.Commands()
	assert.Len(t, subcommands, 5)

	commandNames := make([]string, 0, len(subcommands))
	for _, subcmd := range subcommands {
		commandNames = append(commandNames, subcmd.Name())
	}

	assert.Contains(t, commandNames, "list")
	assert.Contains(t, commandNames, "get")
	assert.Contains(t, commandNames, "create")
	assert.Contains(t, commandNames, "status")
	assert.Contains(t, commandNames, "delete")
}

func TestCategoriesListCommand(t *testing.T) {
	t.Parallel()

	root := commands.NewCategoriesCommand()
	cmd := findSubcommand(root, "list")
	require.NotNil(t, cmd)
	assert.NotNil(t, cmd.RunE)

	assert.NotNil(t, cmd.Flags().Lookup("page"))
	assert.NotNil(t, cmd.Flags().Lookup("search"))

	limitFlag := cmd.Flags().Lookup("limit")
	require.NotNil(t, limitFlag)
	assert.Equal(t, "10", limitFlag.DefValue)
}

func TestNewVariantsCommand_ListRequiresProduct(t *testing.T) {
	t.Parallel()

	root := commands.NewVariantsCommand()
	cmd := findSubcommand(root, "list")
	require.NotNil(t, cmd)

	productFlag := cmd.Flags().Lookup("product")
	require.NotNil(t, productFlag)
	assert.Equal(t, "true", productFlag.Annotations[cobra.BashCompOneRequiredFlag][0])
}

func TestNewLoginCommand(t *testing.T) {
	t.Parallel()

	cmd := commands.NewLoginCommand()
	assert.Equal(t, "login", cmd.Use)
	assert.NotNil(t, cmd.Flags().Lookup("phone"))
	assert.NotNil(t, cmd.Flags().Lookup("otp"))
}

func TestNewVersionCommand(t *testing.T) {
	t.Parallel()

	cmd := commands.NewVersionCommand("1.2.3", "abc", "today")
	assert.Equal(t, "version", cmd.Use)
	assert.NotNil(t, cmd.Run)
}

// runListAgainst points the CLI at a server and executes a group's list
// subcommand.
func runListAgainst(t *testing.T, serverURL string, group *cobra.Command) error {
	t.Helper()

	// Keep the file credential store away from the real home directory.
	t.Setenv("HOME", t.TempDir())

	viper.Set("api", serverURL)
	t.Cleanup(func() { viper.Set("api", "") })

	cmd := findSubcommand(group, "list")
	require.NotNil(t, cmd)

	return cmd.RunE(cmd, nil)
}

func TestCategoriesListCommand_BareArrayResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		_, _ = writer.Write([]byte(`[{"id":"c1","name":"Dairy","slug":"dairy","is_active":true}]`))
	}))
	defer server.Close()

	// A list response without pagination meta must render without error.
	err := runListAgainst(t, server.URL, commands.NewCategoriesCommand())
	require.NoError(t, err)
}

func TestProductsListCommand_BareArrayResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		_, _ = writer.Write([]byte(`[{"id":"p1","name":"Milk","code":"MILK-01","is_active":true}]`))
	}))
	defer server.Close()

	err := runListAgainst(t, server.URL, commands.NewProductsCommand())
	require.NoError(t, err)
}
