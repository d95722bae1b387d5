package client

import (
	"context"
	"fmt"

	"github.com/storekit-io/catalog-admin-client/internal/http"
	"github.com/storekit-io/catalog-admin-client/pkg/catalog"
)

// CategoriesClient implements catalog.CategoriesClient.
type CategoriesClient struct {
	httpClient *http.Client
}

// NewCategoriesClient creates a new categories client.
func NewCategoriesClient(httpClient *http.Client) *CategoriesClient {
	return &CategoriesClient{httpClient: httpClient}
}

// List implements catalog.CategoriesClient.List.
func (c *CategoriesClient) List(ctx context.Context, params *catalog.CategoryListParams) (*catalog.List[catalog.Category], error) {
	resp, err := c.httpClient.Get(ctx, "/categories", params.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}

	return decodeList[catalog.Category](resp.Body, "categories")
}

// Get implements catalog.CategoriesClient.Get.
func (c *CategoriesClient) Get(ctx context.Context, id string) (*catalog.Category, error) {
	resp, err := c.httpClient.Get(ctx, "/categories/"+id, nil)
	if err != nil {
		return nil, fmt.Errorf("getting category: %w", err)
	}

	return decodeData[catalog.Category](resp.Body, "category")
}

// Create implements catalog.CategoriesClient.Create.
func (c *CategoriesClient) Create(ctx context.Context, request *catalog.CategoryCreateRequest) (*catalog.Category, error) {
	err := request.Validate()
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Post(ctx, "/categories", request)
	if err != nil {
		return nil, fmt.Errorf("creating category: %w", err)
	}

	return decodeData[catalog.Category](resp.Body, "category")
}

// Update implements catalog.CategoriesClient.Update.
func (c *CategoriesClient) Update(ctx context.Context, id string, request *catalog.CategoryUpdateRequest) (*catalog.Category, error) {
	err := request.Validate()
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Put(ctx, "/categories/update/"+id, request)
	if err != nil {
		return nil, fmt.Errorf("updating category: %w", err)
	}

	return decodeData[catalog.Category](resp.Body, "category")
}

// SetActive implements catalog.CategoriesClient.SetActive. The toggle is
// an update call carrying only the active flag.
func (c *CategoriesClient) SetActive(ctx context.Context, id string, isActive bool) (*catalog.Category, error) {
	body := map[string]bool{"is_active": isActive}

	resp, err := c.httpClient.Put(ctx, "/categories/update/"+id, body)
	if err != nil {
		return nil, fmt.Errorf("updating category status: %w", err)
	}

	return decodeData[catalog.Category](resp.Body, "category")
}

// Delete implements catalog.CategoriesClient.Delete. The server soft
// deletes; the client treats it as terminal.
func (c *CategoriesClient) Delete(ctx context.Context, id string) error {
	_, err := c.httpClient.Patch(ctx, "/categories/delete/"+id, nil)
	if err != nil {
		return fmt.Errorf("deleting category: %w", err)
	}

	return nil
}
