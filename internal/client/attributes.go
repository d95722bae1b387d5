package client

import (
	"context"
	"fmt"

	"github.com/storekit-io/catalog-admin-client/internal/http"
	"github.com/storekit-io/catalog-admin-client/pkg/catalog"
)

// AttributesClient implements catalog.AttributesClient.
type AttributesClient struct {
	httpClient *http.Client
}

// NewAttributesClient creates a new attributes client.
func NewAttributesClient(httpClient *http.Client) *AttributesClient {
	return &AttributesClient{httpClient: httpClient}
}

// List implements catalog.AttributesClient.List.
func (c *AttributesClient) List(ctx context.Context, params *catalog.AttributeListParams) (*catalog.List[catalog.Attribute], error) {
	resp, err := c.httpClient.Get(ctx, "/attributes", params.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing attributes: %w", err)
	}

	return decodeList[catalog.Attribute](resp.Body, "attributes")
}

// Get implements catalog.AttributesClient.Get.
func (c *AttributesClient) Get(ctx context.Context, id string) (*catalog.Attribute, error) {
	resp, err := c.httpClient.Get(ctx, "/attributes/"+id, nil)
	if err != nil {
		return nil, fmt.Errorf("getting attribute: %w", err)
	}

	return decodeData[catalog.Attribute](resp.Body, "attribute")
}

// Create implements catalog.AttributesClient.Create.
func (c *AttributesClient) Create(ctx context.Context, request *catalog.AttributeCreateRequest) (*catalog.Attribute, error) {
	err := request.Validate()
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Post(ctx, "/attributes", request)
	if err != nil {
		return nil, fmt.Errorf("creating attribute: %w", err)
	}

	return decodeData[catalog.Attribute](resp.Body, "attribute")
}

// Update implements catalog.AttributesClient.Update.
func (c *AttributesClient) Update(ctx context.Context, id string, request *catalog.AttributeUpdateRequest) (*catalog.Attribute, error) {
	resp, err := c.httpClient.Put(ctx, "/attributes/update/"+id, request)
	if err != nil {
		return nil, fmt.Errorf("updating attribute: %w", err)
	}

	return decodeData[catalog.Attribute](resp.Body, "attribute")
}

// SetActive implements catalog.AttributesClient.SetActive.
func (c *AttributesClient) SetActive(ctx context.Context, id string, isActive bool) (*catalog.Attribute, error) {
	body := map[string]bool{"is_active": isActive}

	resp, err := c.httpClient.Put(ctx, "/attributes/update/"+id, body)
	if err != nil {
		return nil, fmt.Errorf("updating attribute status: %w", err)
	}

	return decodeData[catalog.Attribute](resp.Body, "attribute")
}

// Delete implements catalog.AttributesClient.Delete.
func (c *AttributesClient) Delete(ctx context.Context, id string) error {
	_, err := c.httpClient.Patch(ctx, "/attributes/delete/"+id, nil)
	if err != nil {
		return fmt.Errorf("deleting attribute: %w", err)
	}

	return nil
}
