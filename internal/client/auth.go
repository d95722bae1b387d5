package client

import (
	"context"
	"fmt"

	"github.com/storekit-io/catalog-admin-client/internal/http"
	"github.com/storekit-io/catalog-admin-client/pkg/catalog"
)

// AuthClient implements catalog.AuthClient.
type AuthClient struct {
	httpClient *http.Client
}

// NewAuthClient creates a new auth client.
func NewAuthClient(httpClient *http.Client) *AuthClient {
	return &AuthClient{httpClient: httpClient}
}

// RequestOTP implements catalog.AuthClient.RequestOTP. Non-production
// backends echo the issued OTP in the response.
func (c *AuthClient) RequestOTP(ctx context.Context, phone string) (*catalog.OTPRequestResult, error) {
	if phone == "" {
		return nil, catalog.NewValidationError("phone", "phone is required")
	}

	body := map[string]string{"phone": phone}

	resp, err := c.httpClient.Post(ctx, "/auth/login", body)
	if err != nil {
		return nil, fmt.Errorf("requesting OTP: %w", err)
	}

	return decodeRaw[catalog.OTPRequestResult](resp.Body, "OTP request result")
}

// VerifyOTP implements catalog.AuthClient.VerifyOTP.
func (c *AuthClient) VerifyOTP(ctx context.Context, phone, otp string) (*catalog.OTPVerifyResult, error) {
	if otp == "" {
		return nil, catalog.NewValidationError("otp", "otp is required")
	}

	body := map[string]string{"phone": phone, "otp": otp}

	resp, err := c.httpClient.Post(ctx, "/auth/verify", body)
	if err != nil {
		return nil, fmt.Errorf("verifying OTP: %w", err)
	}

	return decodeRaw[catalog.OTPVerifyResult](resp.Body, "OTP verify result")
}

// Logout implements catalog.AuthClient.Logout.
func (c *AuthClient) Logout(ctx context.Context) error {
	_, err := c.httpClient.Post(ctx, "/auth/logout", nil)
	if err != nil {
		return fmt.Errorf("logging out: %w", err)
	}

	return nil
}

// Me implements catalog.AuthClient.Me.
func (c *AuthClient) Me(ctx context.Context) (*catalog.User, error) {
	resp, err := c.httpClient.Get(ctx, "/auth/me", nil)
	if err != nil {
		return nil, fmt.Errorf("getting current user: %w", err)
	}

	return decodeData[catalog.User](resp.Body, "user")
}
