package client

import (
	"context"
	"fmt"

	"github.com/storekit-io/catalog-admin-client/internal/http"
	"github.com/storekit-io/catalog-admin-client/pkg/catalog"
)

// BannersClient implements catalog.BannersClient.
type BannersClient struct {
	httpClient *http.Client
}

// NewBannersClient creates a new banners client.
func NewBannersClient(httpClient *http.Client) *BannersClient {
	return &BannersClient{httpClient: httpClient}
}

// List implements catalog.BannersClient.List.
func (c *BannersClient) List(ctx context.Context, params *catalog.BannerListParams) (*catalog.List[catalog.Banner], error) {
	resp, err := c.httpClient.Get(ctx, "/banners", params.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing banners: %w", err)
	}

	return decodeList[catalog.Banner](resp.Body, "banners")
}

// Get implements catalog.BannersClient.Get.
func (c *BannersClient) Get(ctx context.Context, id string) (*catalog.Banner, error) {
	resp, err := c.httpClient.Get(ctx, "/banners/"+id, nil)
	if err != nil {
		return nil, fmt.Errorf("getting banner: %w", err)
	}

	return decodeData[catalog.Banner](resp.Body, "banner")
}

// Create implements catalog.BannersClient.Create.
func (c *BannersClient) Create(ctx context.Context, request *catalog.BannerCreateRequest) (*catalog.Banner, error) {
	err := request.Validate()
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Post(ctx, "/banners", request)
	if err != nil {
		return nil, fmt.Errorf("creating banner: %w", err)
	}

	return decodeData[catalog.Banner](resp.Body, "banner")
}

// Update implements catalog.BannersClient.Update.
func (c *BannersClient) Update(ctx context.Context, id string, request *catalog.BannerUpdateRequest) (*catalog.Banner, error) {
	resp, err := c.httpClient.Put(ctx, "/banners/update/"+id, request)
	if err != nil {
		return nil, fmt.Errorf("updating banner: %w", err)
	}

	return decodeData[catalog.Banner](resp.Body, "banner")
}

// SetActive implements catalog.BannersClient.SetActive.
func (c *BannersClient) SetActive(ctx context.Context, id string, isActive bool) (*catalog.Banner, error) {
	body := map[string]bool{"is_active": isActive}

	resp, err := c.httpClient.Put(ctx, "/banners/update/"+id, body)
	if err != nil {
		return nil, fmt.Errorf("updating banner status: %w", err)
	}

	return decodeData[catalog.Banner](resp.Body, "banner")
}

// Delete implements catalog.BannersClient.Delete.
func (c *BannersClient) Delete(ctx context.Context, id string) error {
	_, err := c.httpClient.Patch(ctx, "/banners/delete/"+id, nil)
	if err != nil {
		return fmt.Errorf("deleting banner: %w", err)
	}

	return nil
}
