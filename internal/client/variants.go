package client

import (
	"context"
	"fmt"

	"github.com/storekit-io/catalog-admin-client/internal/http"
	"github.com/storekit-io/catalog-admin-client/pkg/catalog"
)

// VariantsClient implements catalog.VariantsClient.
type VariantsClient struct {
	httpClient *http.Client
}

// NewVariantsClient creates a new variants client.
func NewVariantsClient(httpClient *http.Client) *VariantsClient {
	return &VariantsClient{httpClient: httpClient}
}

// List implements catalog.VariantsClient.List. The listing is scoped to
// one product via params.ProductID.
func (c *VariantsClient) List(ctx context.Context, params *catalog.VariantListParams) (*catalog.List[catalog.Variant], error) {
	resp, err := c.httpClient.Get(ctx, "/variants", params.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing variants: %w", err)
	}

	return decodeList[catalog.Variant](resp.Body, "variants")
}

// Get implements catalog.VariantsClient.Get.
func (c *VariantsClient) Get(ctx context.Context, id string) (*catalog.Variant, error) {
	resp, err := c.httpClient.Get(ctx, "/variants/"+id, nil)
	if err != nil {
		return nil, fmt.Errorf("getting variant: %w", err)
	}

	return decodeData[catalog.Variant](resp.Body, "variant")
}

// Create implements catalog.VariantsClient.Create.
func (c *VariantsClient) Create(ctx context.Context, request *catalog.VariantCreateRequest) (*catalog.Variant, error) {
	err := request.Validate()
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Post(ctx, "/variants", request)
	if err != nil {
		return nil, fmt.Errorf("creating variant: %w", err)
	}

	return decodeData[catalog.Variant](resp.Body, "variant")
}

// Update implements catalog.VariantsClient.Update.
func (c *VariantsClient) Update(ctx context.Context, id string, request *catalog.VariantUpdateRequest) (*catalog.Variant, error) {
	err := request.Validate()
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Patch(ctx, "/variants/"+id+"/update", request)
	if err != nil {
		return nil, fmt.Errorf("updating variant: %w", err)
	}

	return decodeData[catalog.Variant](resp.Body, "variant")
}

// SetActive implements catalog.VariantsClient.SetActive.
func (c *VariantsClient) SetActive(ctx context.Context, id string, isActive bool) (*catalog.Variant, error) {
	body := map[string]bool{"is_active": isActive}

	resp, err := c.httpClient.Patch(ctx, "/variants/"+id+"/status", body)
	if err != nil {
		return nil, fmt.Errorf("updating variant status: %w", err)
	}

	return decodeData[catalog.Variant](resp.Body, "variant")
}

// Delete implements catalog.VariantsClient.Delete.
func (c *VariantsClient) Delete(ctx context.Context, id string) error {
	_, err := c.httpClient.Patch(ctx, "/variants/"+id+"/delete", nil)
	if err != nil {
		return fmt.Errorf("deleting variant: %w", err)
	}

	return nil
}
