package adminclient

import (
	"strings"

	"github.com/storekit-io/catalog-admin-client/internal/auth"
	"github.com/storekit-io/catalog-admin-client/internal/client"
	internalhttp "github.com/storekit-io/catalog-admin-client/internal/http"
	"github.com/storekit-io/catalog-admin-client/pkg/catalog"
)

// Client bundles the resource clients with the session that owns the
// credentials behind them.
type Client struct {
	api     catalog.Client
	session catalog.Session
}

// New creates a catalog admin client from configuration. The returned
// client shares one credential store between the session, which writes
// it, and the HTTP gateway, which reads the token and clears on 401.
func New(config *catalog.Config) (*Client, error) {
	if config == nil {
		return nil, catalog.ErrConfigRequired
	}

	if config.BaseURL == "" {
		return nil, catalog.ErrBaseURLRequired
	}

	baseURL := strings.TrimSuffix(config.BaseURL, "/")
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		baseURL = "https://" + baseURL
	}

	store := config.Store
	if store == nil {
		store = auth.NewMemoryStore()
	}

	logger := config.Logger
	if logger == nil {
		logger = catalog.NoopLogger{}
	}

	opts := []internalhttp.Option{
		internalhttp.WithLogger(logger),
		internalhttp.WithDebug(config.Debug),
	}

	if config.UserAgent != "" {
		opts = append(opts, internalhttp.WithUserAgent(config.UserAgent))
	}

	if config.Timeout > 0 {
		opts = append(opts, internalhttp.WithTimeout(config.Timeout))
	}

	if config.RetryMax > 0 {
		opts = append(opts, internalhttp.WithRetryConfig(config.RetryMax, config.RetryWaitMin, config.RetryWaitMax))
	}

	gateway := internalhttp.NewClient(baseURL, store, opts...)
	apiClient := client.New(gateway)

	session := auth.NewSession(apiClient.Auth(), store, config.Navigator, config.Production, logger)

	// The session is built on the gateway, so the 401 hook is installed
	// after both exist.
	gateway.SetUnauthorizedHandler(session)

	return &Client{
		api:     apiClient,
		session: session,
	}, nil
}

// NewWithBaseURL creates a client with default configuration.
func NewWithBaseURL(baseURL string) (*Client, error) {
	return New(&catalog.Config{BaseURL: baseURL})
}

// NewWithToken creates a client with a pre-issued access token.
func NewWithToken(baseURL, token string) (*Client, error) {
	store := auth.NewMemoryStore()

	err := store.SetCredentials(token, "", nil)
	if err != nil {
		return nil, err
	}

	return New(&catalog.Config{BaseURL: baseURL, Store: store})
}

// API returns the resource clients.
func (c *Client) API() catalog.Client {
	return c.api
}

// Session returns the authentication session.
func (c *Client) Session() catalog.Session {
	return c.session
}
