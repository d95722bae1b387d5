package client

import (
	"context"
	"fmt"

	"github.com/storekit-io/catalog-admin-client/internal/http"
	"github.com/storekit-io/catalog-admin-client/pkg/catalog"
)

// ProductsClient implements catalog.ProductsClient.
type ProductsClient struct {
	httpClient *http.Client
}

// NewProductsClient creates a new products client.
func NewProductsClient(httpClient *http.Client) *ProductsClient {
	return &ProductsClient{httpClient: httpClient}
}

// List implements catalog.ProductsClient.List.
func (c *ProductsClient) List(ctx context.Context, params *catalog.ProductListParams) (*catalog.List[catalog.Product], error) {
	resp, err := c.httpClient.Get(ctx, "/products", params.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing products: %w", err)
	}

	return decodeList[catalog.Product](resp.Body, "products")
}

// Get implements catalog.ProductsClient.Get.
func (c *ProductsClient) Get(ctx context.Context, id string) (*catalog.Product, error) {
	resp, err := c.httpClient.Get(ctx, "/products/"+id, nil)
	if err != nil {
		return nil, fmt.Errorf("getting product: %w", err)
	}

	return decodeData[catalog.Product](resp.Body, "product")
}

// Create implements catalog.ProductsClient.Create.
func (c *ProductsClient) Create(ctx context.Context, request *catalog.ProductCreateRequest) (*catalog.Product, error) {
	err := request.Validate()
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Post(ctx, "/products", request)
	if err != nil {
		return nil, fmt.Errorf("creating product: %w", err)
	}

	return decodeData[catalog.Product](resp.Body, "product")
}

// Update implements catalog.ProductsClient.Update.
func (c *ProductsClient) Update(ctx context.Context, id string, request *catalog.ProductUpdateRequest) (*catalog.Product, error) {
	resp, err := c.httpClient.Put(ctx, "/products/update/"+id, request)
	if err != nil {
		return nil, fmt.Errorf("updating product: %w", err)
	}

	return decodeData[catalog.Product](resp.Body, "product")
}

// SetActive implements catalog.ProductsClient.SetActive. Products expose a
// dedicated status endpoint.
func (c *ProductsClient) SetActive(ctx context.Context, id string, isActive bool) (*catalog.Product, error) {
	body := map[string]bool{"is_active": isActive}

	resp, err := c.httpClient.Patch(ctx, "/products/status/"+id, body)
	if err != nil {
		return nil, fmt.Errorf("updating product status: %w", err)
	}

	return decodeData[catalog.Product](resp.Body, "product")
}

// Delete implements catalog.ProductsClient.Delete.
func (c *ProductsClient) Delete(ctx context.Context, id string) error {
	_, err := c.httpClient.Delete(ctx, "/products/"+id)
	if err != nil {
		return fmt.Errorf("deleting product: %w", err)
	}

	return nil
}
