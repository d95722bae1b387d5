package client

import (
	"context"
	"fmt"

	"github.com/storekit-io/catalog-admin-client/internal/http"
	"github.com/storekit-io/catalog-admin-client/pkg/catalog"
)

// AttributeValuesClient implements catalog.AttributeValuesClient.
type AttributeValuesClient struct {
	httpClient *http.Client
}

// NewAttributeValuesClient creates a new attribute values client.
func NewAttributeValuesClient(httpClient *http.Client) *AttributeValuesClient {
	return &AttributeValuesClient{httpClient: httpClient}
}

// List implements catalog.AttributeValuesClient.List.
func (c *AttributeValuesClient) List(ctx context.Context, params *catalog.AttributeValueListParams) (*catalog.List[catalog.AttributeValue], error) {
	resp, err := c.httpClient.Get(ctx, "/attribute-values", params.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing attribute values: %w", err)
	}

	return decodeList[catalog.AttributeValue](resp.Body, "attribute values")
}

// Get implements catalog.AttributeValuesClient.Get.
func (c *AttributeValuesClient) Get(ctx context.Context, id string) (*catalog.AttributeValue, error) {
	resp, err := c.httpClient.Get(ctx, "/attribute-values/"+id, nil)
	if err != nil {
		return nil, fmt.Errorf("getting attribute value: %w", err)
	}

	return decodeData[catalog.AttributeValue](resp.Body, "attribute value")
}

// Create implements catalog.AttributeValuesClient.Create.
func (c *AttributeValuesClient) Create(ctx context.Context, request *catalog.AttributeValueCreateRequest) (*catalog.AttributeValue, error) {
	err := request.Validate()
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Post(ctx, "/attribute-values", request)
	if err != nil {
		return nil, fmt.Errorf("creating attribute value: %w", err)
	}

	return decodeData[catalog.AttributeValue](resp.Body, "attribute value")
}

// Update implements catalog.AttributeValuesClient.Update.
func (c *AttributeValuesClient) Update(ctx context.Context, id string, request *catalog.AttributeValueUpdateRequest) (*catalog.AttributeValue, error) {
	resp, err := c.httpClient.Put(ctx, "/attribute-values/update/"+id, request)
	if err != nil {
		return nil, fmt.Errorf("updating attribute value: %w", err)
	}

	return decodeData[catalog.AttributeValue](resp.Body, "attribute value")
}

// SetActive implements catalog.AttributeValuesClient.SetActive.
func (c *AttributeValuesClient) SetActive(ctx context.Context, id string, isActive bool) (*catalog.AttributeValue, error) {
	body := map[string]bool{"is_active": isActive}

	resp, err := c.httpClient.Put(ctx, "/attribute-values/update/"+id, body)
	if err != nil {
		return nil, fmt.Errorf("updating attribute value status: %w", err)
	}

	return decodeData[catalog.AttributeValue](resp.Body, "attribute value")
}

// Delete implements catalog.AttributeValuesClient.Delete.
func (c *AttributeValuesClient) Delete(ctx context.Context, id string) error {
	_, err := c.httpClient.Patch(ctx, "/attribute-values/delete/"+id, nil)
	if err != nil {
		return fmt.Errorf("deleting attribute value: %w", err)
	}

	return nil
}
