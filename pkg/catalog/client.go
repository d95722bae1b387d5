package catalog

import (
	"context"
	"time"
)

// CategoriesClient provides access to category operations.
type CategoriesClient interface {
	List(ctx context.Context, params *CategoryListParams) (*List[Category], error)
	Get(ctx context.Context, id string) (*Category, error)
	Create(ctx context.Context, request *CategoryCreateRequest) (*Category, error)
	Update(ctx context.Context, id string, request *CategoryUpdateRequest) (*Category, error)
	SetActive(ctx context.Context, id string, isActive bool) (*Category, error)
	Delete(ctx context.Context, id string) error
}

// ProductsClient provides access to product operations.
type ProductsClient interface {
	List(ctx context.Context, params *ProductListParams) (*List[Product], error)
	Get(ctx context.Context, id string) (*Product, error)
	Create(ctx context.Context, request *ProductCreateRequest) (*Product, error)
	Update(ctx context.Context, id string, request *ProductUpdateRequest) (*Product, error)
	SetActive(ctx context.Context, id string, isActive bool) (*Product, error)
	Delete(ctx context.Context, id string) error
}

// VariantsClient provides access to variant operations.
type VariantsClient interface {
	List(ctx context.Context, params *VariantListParams) (*List[Variant], error)
	Get(ctx context.Context, id string) (*Variant, error)
	Create(ctx context.Context, request *VariantCreateRequest) (*Variant, error)
	Update(ctx context.Context, id string, request *VariantUpdateRequest) (*Variant, error)
	SetActive(ctx context.Context, id string, isActive bool) (*Variant, error)
	Delete(ctx context.Context, id string) error
}

// AttributesClient provides access to attribute operations.
type AttributesClient interface {
	List(ctx context.Context, params *AttributeListParams) (*List[Attribute], error)
	Get(ctx context.Context, id string) (*Attribute, error)
	Create(ctx context.Context, request *AttributeCreateRequest) (*Attribute, error)
	Update(ctx context.Context, id string, request *AttributeUpdateRequest) (*Attribute, error)
	SetActive(ctx context.Context, id string, isActive bool) (*Attribute, error)
	Delete(ctx context.Context, id string) error
}

// AttributeValuesClient provides access to attribute value operations.
type AttributeValuesClient interface {
	List(ctx context.Context, params *AttributeValueListParams) (*List[AttributeValue], error)
	Get(ctx context.Context, id string) (*AttributeValue, error)
	Create(ctx context.Context, request *AttributeValueCreateRequest) (*AttributeValue, error)
	Update(ctx context.Context, id string, request *AttributeValueUpdateRequest) (*AttributeValue, error)
	SetActive(ctx context.Context, id string, isActive bool) (*AttributeValue, error)
	Delete(ctx context.Context, id string) error
}

// VariantAttributeValuesClient provides access to variant attribute value
// links.
type VariantAttributeValuesClient interface {
	List(ctx context.Context, params *VariantAttributeValueListParams) (*List[VariantAttributeValue], error)
	Get(ctx context.Context, id string) (*VariantAttributeValue, error)
	Create(ctx context.Context, request *VariantAttributeValueCreateRequest) (*VariantAttributeValue, error)
	Update(ctx context.Context, id string, request *VariantAttributeValueUpdateRequest) (*VariantAttributeValue, error)
	Delete(ctx context.Context, id string) error
}

// BannersClient provides access to banner operations.
type BannersClient interface {
	List(ctx context.Context, params *BannerListParams) (*List[Banner], error)
	Get(ctx context.Context, id string) (*Banner, error)
	Create(ctx context.Context, request *BannerCreateRequest) (*Banner, error)
	Update(ctx context.Context, id string, request *BannerUpdateRequest) (*Banner, error)
	SetActive(ctx context.Context, id string, isActive bool) (*Banner, error)
	Delete(ctx context.Context, id string) error
}

// OTPRequestResult is the server's answer to an OTP request. OTP is only
// populated by non-production backends for on-screen display.
type OTPRequestResult struct {
	Status  string `json:"status"        yaml:"status"`
	Message string `json:"message"       yaml:"message"`
	OTP     string `json:"otp,omitempty" yaml:"otp,omitempty"`
}

// OTPVerifyResult carries the issued credentials after verification.
type OTPVerifyResult struct {
	Status       string `json:"status"        yaml:"status"`
	Message      string `json:"message"       yaml:"message"`
	Token        string `json:"token"         yaml:"token"`
	RefreshToken string `json:"refresh_token" yaml:"refresh_token"`
	User         User   `json:"user"          yaml:"user"`
}

// AuthClient provides access to the authentication endpoints.
type AuthClient interface {
	RequestOTP(ctx context.Context, phone string) (*OTPRequestResult, error)
	VerifyOTP(ctx context.Context, phone, otp string) (*OTPVerifyResult, error)
	Logout(ctx context.Context) error
	Me(ctx context.Context) (*User, error)
}

// Client provides access to all resource-specific clients.
type Client interface {
	Categories() CategoriesClient
	Products() ProductsClient
	Variants() VariantsClient
	Attributes() AttributesClient
	AttributeValues() AttributeValuesClient
	VariantAttributeValues() VariantAttributeValuesClient
	Banners() BannersClient
	Auth() AuthClient
}

// SessionState is the authentication state machine's current state.
type SessionState string

const (
	// SessionAnonymous means no credentials are held and no OTP flow is in
	// progress.
	SessionAnonymous SessionState = "anonymous"

	// SessionOTPRequested means an OTP was requested for a phone number and
	// verification is pending.
	SessionOTPRequested SessionState = "otp_requested"

	// SessionAuthenticated means credentials are persisted and a user is
	// known.
	SessionAuthenticated SessionState = "authenticated"
)

// Session drives the OTP login flow and owns the persisted credentials.
// It is the single writer of the credential store; the gateway only reads
// the token and clears on 401.
type Session interface {
	State() SessionState
	User() *User
	Phone() string
	DevelopmentOTP() string

	// Initialize loads persisted credentials and validates them remotely;
	// invalid credentials are cleared.
	Initialize(ctx context.Context) error

	RequestOTP(ctx context.Context, phone string) error
	VerifyOTP(ctx context.Context, otp string) error
	ResetOTPFlow()
	RefreshUser(ctx context.Context) error

	// Logout clears local credentials and forces the anonymous state even
	// when the remote logout call fails.
	Logout(ctx context.Context) error
}

// CredentialStore persists the access token, refresh token, and user. The
// zero values mean "absent". Clear removes all three atomically.
type CredentialStore interface {
	Token() string
	RefreshToken() string
	User() *User
	SetCredentials(token, refreshToken string, user *User) error
	SetUser(user *User) error
	Clear() error
}

// Navigator abstracts the hard navigation performed on forced logout. A
// browser shell navigates to the login route; a CLI prints a hint.
type Navigator interface {
	NavigateToLogin()
}

// Config represents client configuration for building a catalog Client.
//
// Timeout bounds every request; a timeout surfaces as a network error.
// RetryMax defaults to 0: the core never retries automatically, but the
// transport supports opt-in retries for operators that want them.
type Config struct {
	// BaseURL is the API origin, e.g. "http://localhost:3004".
	BaseURL string

	// Timeout is the fixed per-request timeout. Defaults to 30s.
	Timeout time.Duration

	// RetryMax is the maximum number of automatic retries for transient
	// failures. 0 disables retrying.
	RetryMax int

	// RetryWaitMin is the minimum backoff between retries.
	RetryWaitMin time.Duration

	// RetryWaitMax is the maximum backoff between retries.
	RetryWaitMax time.Duration

	// UserAgent overrides the default User-Agent header.
	UserAgent string

	// Debug enables verbose HTTP request/response logging when a Logger is
	// provided.
	Debug bool

	// Logger is an optional structured logger.
	Logger Logger

	// Production suppresses capture of server-issued development OTPs.
	Production bool

	// Store persists credentials. Defaults to an in-memory store.
	Store CredentialStore

	// Navigator receives the forced-logout navigation on 401. Optional.
	Navigator Navigator

	// Media upload credentials. Declared for completeness; uploads happen
	// outside this SDK.
	MediaCloudName    string
	MediaUploadPreset string
}
