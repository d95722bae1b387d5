package client

import (
	"encoding/json"
	"fmt"

	"github.com/storekit-io/catalog-admin-client/internal/http"
	"github.com/storekit-io/catalog-admin-client/pkg/catalog"
)

// Client implements the catalog.Client interface.
type Client struct {
	httpClient *http.Client

	categories             catalog.CategoriesClient
	products               catalog.ProductsClient
	variants               catalog.VariantsClient
	attributes             catalog.AttributesClient
	attributeValues        catalog.AttributeValuesClient
	variantAttributeValues catalog.VariantAttributeValuesClient
	banners                catalog.BannersClient
	auth                   catalog.AuthClient
}

// New creates a catalog API client over the given gateway.
func New(httpClient *http.Client) *Client {
	client := &Client{httpClient: httpClient}
	client.initializeResourceClients()

	return client
}

// Categories implements catalog.Client.Categories.
func (c *Client) Categories() catalog.CategoriesClient {
	return c.categories
}

// Products implements catalog.Client.Products.
func (c *Client) Products() catalog.ProductsClient {
	return c.products
}

// Variants implements catalog.Client.Variants.
func (c *Client) Variants() catalog.VariantsClient {
	return c.variants
}

// Attributes implements catalog.Client.Attributes.
func (c *Client) Attributes() catalog.AttributesClient {
	return c.attributes
}

// AttributeValues implements catalog.Client.AttributeValues.
func (c *Client) AttributeValues() catalog.AttributeValuesClient {
	return c.attributeValues
}

// VariantAttributeValues implements catalog.Client.VariantAttributeValues.
func (c *Client) VariantAttributeValues() catalog.VariantAttributeValuesClient {
	return c.variantAttributeValues
}

// Banners implements catalog.Client.Banners.
func (c *Client) Banners() catalog.BannersClient {
	return c.banners
}

// Auth implements catalog.Client.Auth.
func (c *Client) Auth() catalog.AuthClient {
	return c.auth
}

// initializeResourceClients initializes all resource-specific clients.
func (c *Client) initializeResourceClients() {
	c.categories = NewCategoriesClient(c.httpClient)
	c.products = NewProductsClient(c.httpClient)
	c.variants = NewVariantsClient(c.httpClient)
	c.attributes = NewAttributesClient(c.httpClient)
	c.attributeValues = NewAttributeValuesClient(c.httpClient)
	c.variantAttributeValues = NewVariantAttributeValuesClient(c.httpClient)
	c.banners = NewBannersClient(c.httpClient)
	c.auth = NewAuthClient(c.httpClient)
}

// decodeData unwraps the success envelope around a single resource.
func decodeData[T any](body []byte, what string) (*T, error) {
	var envelope catalog.Response[T]

	err := json.Unmarshal(body, &envelope)
	if err != nil {
		return nil, fmt.Errorf("parsing %s response: %w", what, err)
	}

	return &envelope.Data, nil
}

// decodeRaw parses a response body whose payload is the top-level object
// rather than a data envelope. The auth endpoints respond this way.
func decodeRaw[T any](body []byte, what string) (*T, error) {
	var value T

	err := json.Unmarshal(body, &value)
	if err != nil {
		return nil, fmt.Errorf("parsing %s response: %w", what, err)
	}

	return &value, nil
}

// decodeList normalizes a list response, accepting both the envelope and a
// bare array.
func decodeList[T any](body []byte, what string) (*catalog.List[T], error) {
	var list catalog.List[T]

	err := json.Unmarshal(body, &list)
	if err != nil {
		return nil, fmt.Errorf("parsing %s list response: %w", what, err)
	}

	return &list, nil
}
