package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/storekit-io/catalog-admin-client/pkg/catalog"
)

const defaultTimeout = 30 * time.Second

// TokenSource supplies the current bearer token. An empty token means the
// request proceeds unauthenticated and the server decides.
type TokenSource interface {
	Token() string
}

// UnauthorizedHandler is invoked exactly once per 401 response, before the
// error is returned to the caller.
type UnauthorizedHandler interface {
	HandleUnauthorized()
}

// Request represents an HTTP request.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Body    interface{}
	Headers map[string]string
}

// Response represents an HTTP response.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger used for debug logging.
func WithLogger(logger catalog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the default User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithTimeout overrides the default request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient.HTTPClient.Timeout = timeout
		}
	}
}

// WithRetryConfig enables automatic retries for transient failures. The
// default is no retries.
func WithRetryConfig(maxRetries int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.httpClient.RetryMax = maxRetries
		c.httpClient.RetryWaitMin = waitMin
		c.httpClient.RetryWaitMax = waitMax
	}
}

// WithUnauthorizedHandler installs the forced-logout hook for 401
// responses.
func WithUnauthorizedHandler(handler UnauthorizedHandler) Option {
	return func(c *Client) {
		c.onUnauthorized = handler
	}
}

// Client is the HTTP gateway. It injects bearer tokens, normalizes every
// failure into a *catalog.Error, and triggers the forced-logout hook on
// 401.
type Client struct {
	baseURL        string
	tokens         TokenSource
	httpClient     *retryablehttp.Client
	logger         catalog.Logger
	debug          bool
	userAgent      string
	onUnauthorized UnauthorizedHandler
}

// NewClient creates a gateway for the given base URL. tokens may be nil
// for an unauthenticated client.
func NewClient(baseURL string, tokens TokenSource, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 0
	retryClient.Logger = nil
	retryClient.HTTPClient.Timeout = defaultTimeout

	client := &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		tokens:     tokens,
		httpClient: retryClient,
		logger:     catalog.NoopLogger{},
		userAgent:  "catalog-admin-client/1.0",
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// SetUnauthorizedHandler installs the forced-logout hook after
// construction. The session that handles 401s is itself built on top of
// this client, so the hook cannot always be supplied up front.
func (c *Client) SetUnauthorizedHandler(handler UnauthorizedHandler) {
	c.onUnauthorized = handler
}

// Do executes the request. Non-2xx responses return both the response and
// a *catalog.Error so callers never assume success.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	body, contentType, err := encodeBody(req.Body)
	if err != nil {
		return nil, catalog.NewRequestError(err.Error())
	}

	fullURL := c.baseURL + req.Path
	if len(req.Query) > 0 {
		fullURL += "?" + req.Query.Encode()
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, fullURL, body)
	if err != nil {
		return nil, catalog.NewRequestError(err.Error())
	}

	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)

	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}

	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			httpReq.Header.Set("Authorization", "Bearer "+token)
		}
	}

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	if c.debug {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": req.Method,
			"url":    fullURL,
		})
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, catalog.NewNetworkError()
	}

	defer func() { _ = httpResp.Body.Close() }()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, catalog.NewNetworkError()
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       respBody,
	}

	if c.debug {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"status": httpResp.StatusCode,
			"url":    fullURL,
		})
	}

	if httpResp.StatusCode >= 400 {
		if httpResp.StatusCode == http.StatusUnauthorized && c.onUnauthorized != nil {
			c.onUnauthorized.HandleUnauthorized()
		}

		return resp, c.serverError(resp)
	}

	return resp, nil
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodGet, Path: path, Query: query})
}

// Post performs a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPost, Path: path, Body: body})
}

// Put performs a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPut, Path: path, Body: body})
}

// Patch performs a PATCH request with a JSON body.
func (c *Client) Patch(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPatch, Path: path, Body: body})
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodDelete, Path: path})
}

// serverError extracts the server-provided message from the error
// envelope, falling back to the status text.
func (c *Client) serverError(resp *Response) error {
	var envelope struct {
		Message string `json:"message"`
		Error   struct {
			Message string `json:"message"`
		} `json:"error"`
	}

	message := ""
	if json.Unmarshal(resp.Body, &envelope) == nil {
		message = envelope.Message
		if message == "" {
			message = envelope.Error.Message
		}
	}

	if message == "" {
		message = http.StatusText(resp.StatusCode)
	}

	return catalog.NewServerError(resp.StatusCode, message)
}

func encodeBody(body interface{}) (io.Reader, string, error) {
	if body == nil {
		return nil, "", nil
	}

	data, err := json.Marshal(body)
	if err != nil {
		return nil, "", fmt.Errorf("encoding request body: %w", err)
	}

	return bytes.NewReader(data), "application/json", nil
}
