package client

import (
	"context"
	"fmt"

	"github.com/storekit-io/catalog-admin-client/internal/http"
	"github.com/storekit-io/catalog-admin-client/pkg/catalog"
)

// VariantAttributeValuesClient implements
// catalog.VariantAttributeValuesClient.
type VariantAttributeValuesClient struct {
	httpClient *http.Client
}

// NewVariantAttributeValuesClient creates a new variant attribute values
// client.
func NewVariantAttributeValuesClient(httpClient *http.Client) *VariantAttributeValuesClient {
	return &VariantAttributeValuesClient{httpClient: httpClient}
}

// List implements catalog.VariantAttributeValuesClient.List.
func (c *VariantAttributeValuesClient) List(ctx context.Context, params *catalog.VariantAttributeValueListParams) (*catalog.List[catalog.VariantAttributeValue], error) {
	resp, err := c.httpClient.Get(ctx, "/variant-attribute-values", params.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing variant attribute values: %w", err)
	}

	return decodeList[catalog.VariantAttributeValue](resp.Body, "variant attribute values")
}

// Get implements catalog.VariantAttributeValuesClient.Get.
func (c *VariantAttributeValuesClient) Get(ctx context.Context, id string) (*catalog.VariantAttributeValue, error) {
	resp, err := c.httpClient.Get(ctx, "/variant-attribute-values/"+id, nil)
	if err != nil {
		return nil, fmt.Errorf("getting variant attribute value: %w", err)
	}

	return decodeData[catalog.VariantAttributeValue](resp.Body, "variant attribute value")
}

// Create implements catalog.VariantAttributeValuesClient.Create.
func (c *VariantAttributeValuesClient) Create(ctx context.Context, request *catalog.VariantAttributeValueCreateRequest) (*catalog.VariantAttributeValue, error) {
	err := request.Validate()
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Post(ctx, "/variant-attribute-values", request)
	if err != nil {
		return nil, fmt.Errorf("creating variant attribute value: %w", err)
	}

	return decodeData[catalog.VariantAttributeValue](resp.Body, "variant attribute value")
}

// Update implements catalog.VariantAttributeValuesClient.Update.
func (c *VariantAttributeValuesClient) Update(ctx context.Context, id string, request *catalog.VariantAttributeValueUpdateRequest) (*catalog.VariantAttributeValue, error) {
	resp, err := c.httpClient.Put(ctx, "/variant-attribute-values/update/"+id, request)
	if err != nil {
		return nil, fmt.Errorf("updating variant attribute value: %w", err)
	}

	return decodeData[catalog.VariantAttributeValue](resp.Body, "variant attribute value")
}

// Delete implements catalog.VariantAttributeValuesClient.Delete.
func (c *VariantAttributeValuesClient) Delete(ctx context.Context, id string) error {
	_, err := c.httpClient.Patch(ctx, "/variant-attribute-values/delete/"+id, nil)
	if err != nil {
		return fmt.Errorf("deleting variant attribute value: %w", err)
	}

	return nil
}
