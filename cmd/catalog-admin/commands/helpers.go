package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/viper"
	"github.com/storekit-io/catalog-admin-client/internal/auth"
	"github.com/storekit-io/catalog-admin-client/pkg/adminclient"
	"github.com/storekit-io/catalog-admin-client/pkg/catalog"
	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	OutputFormatJSON = "json"
	OutputFormatYAML = "yaml"
)

// Common static errors used throughout the commands package.
var (
	ErrAPIEndpointRequired = errors.New("API base URL is required (use --api or set CATALOG_API)")
	ErrPhoneRequired       = errors.New("phone number is required")
	ErrOTPRequired         = errors.New("OTP code is required")
	ErrNotLoggedIn         = errors.New("not logged in. Run 'catalog-admin login'")
)

// createClient builds an admin client from the CLI configuration. The
// credential store lives next to the config file so logins survive
// between invocations.
func createClient() (*adminclient.Client, error) {
	api := viper.GetString("api")
	if api == "" {
		return nil, ErrAPIEndpointRequired
	}

	store, err := auth.NewFileStore(credentialsPath())
	if err != nil {
		return nil, fmt.Errorf("opening credential store: %w", err)
	}

	config := &catalog.Config{
		BaseURL:    api,
		Store:      store,
		Navigator:  loginHintNavigator{},
		Production: viper.GetBool("production"),
		Debug:      viper.GetBool("verbose"),
	}

	if config.Debug {
		config.Logger = stderrLogger{}
	}

	return adminclient.New(config)
}

func credentialsPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".catalog-admin-credentials.yml"
	}

	return filepath.Join(home, ".catalog-admin", "credentials.yml")
}

// loginHintNavigator is the CLI rendition of the forced-logout
// navigation: it prints a hint instead of redirecting.
type loginHintNavigator struct{}

func (loginHintNavigator) NavigateToLogin() {
	fmt.Fprintln(os.Stderr, "Session expired. Run 'catalog-admin login' to sign in again.")
}

// stderrLogger writes structured log lines to stderr for --verbose runs.
type stderrLogger struct{}

func (stderrLogger) Debug(msg string, fields map[string]interface{}) { logLine("DEBUG", msg, fields) }
func (stderrLogger) Info(msg string, fields map[string]interface{})  { logLine("INFO", msg, fields) }
func (stderrLogger) Warn(msg string, fields map[string]interface{})  { logLine("WARN", msg, fields) }
func (stderrLogger) Error(msg string, fields map[string]interface{}) { logLine("ERROR", msg, fields) }

func logLine(level, msg string, fields map[string]interface{}) {
	fmt.Fprintf(os.Stderr, "%s %s", level, msg)

	for key, value := range fields {
		fmt.Fprintf(os.Stderr, " %s=%v", key, value)
	}

	fmt.Fprintln(os.Stderr)
}

// renderEncoded writes value as JSON or YAML to stdout.
func renderEncoded(format string, value interface{}) error {
	switch format {
	case OutputFormatJSON:
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")

		return encoder.Encode(value)
	default:
		encoder := yaml.NewEncoder(os.Stdout)

		return encoder.Encode(value)
	}
}

func formatBool(value bool) string {
	if value {
		return "yes"
	}

	return "no"
}

func formatInt(value int) string {
	return strconv.Itoa(value)
}

// listParamsFromFlags assembles the shared pagination and search params.
func listParamsFromFlags(page, limit int, search string) catalog.ListParams {
	return catalog.ListParams{
		Page:   page,
		Limit:  limit,
		Search: search,
	}
}
