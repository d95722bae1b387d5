package catalog

import (
	"net/url"
	"strconv"
)

// ListParams are the pagination and filtering parameters shared by list
// endpoints. Entity-specific params embed it.
type ListParams struct {
	Page      int
	Limit     int
	Search    string
	SortBy    string
	SortOrder string
}

// ToValues converts the params to URL query values. Zero values are
// omitted.
func (p *ListParams) ToValues() url.Values {
	values := url.Values{}

	if p == nil {
		return values
	}

	if p.Page > 0 {
		values.Set("page", strconv.Itoa(p.Page))
	}

	if p.Limit > 0 {
		values.Set("limit", strconv.Itoa(p.Limit))
	}

	if p.Search != "" {
		values.Set("search", p.Search)
	}

	if p.SortBy != "" {
		values.Set("sortBy", p.SortBy)
	}

	if p.SortOrder != "" {
		values.Set("sortOrder", p.SortOrder)
	}

	return values
}

// FilterMap flattens the params into a string map for use as a cache key.
func (p *ListParams) FilterMap() map[string]string {
	filters := make(map[string]string)

	if p == nil {
		return filters
	}

	for key, vals := range p.ToValues() {
		if len(vals) > 0 {
			filters[key] = vals[0]
		}
	}

	return filters
}

// CategoryListParams filter category listings.
type CategoryListParams struct {
	ListParams

	IsActive *bool
	ParentID string
}

// ToValues converts the params to URL query values.
func (p *CategoryListParams) ToValues() url.Values {
	if p == nil {
		return url.Values{}
	}

	values := p.ListParams.ToValues()

	if p.IsActive != nil {
		values.Set("is_active", strconv.FormatBool(*p.IsActive))
	}

	if p.ParentID != "" {
		values.Set("parent_id", p.ParentID)
	}

	return values
}

// ProductListParams filter product listings.
type ProductListParams struct {
	ListParams
}

// VariantListParams filter variant listings. ProductID scopes the listing
// to one product and is required by the API.
type VariantListParams struct {
	ListParams

	ProductID string
}

// ToValues converts the params to URL query values.
func (p *VariantListParams) ToValues() url.Values {
	if p == nil {
		return url.Values{}
	}

	values := p.ListParams.ToValues()

	if p.ProductID != "" {
		values.Set("product_id", p.ProductID)
	}

	return values
}

// AttributeListParams filter attribute listings.
type AttributeListParams struct {
	ListParams

	IsActive *bool
}

// ToValues converts the params to URL query values.
func (p *AttributeListParams) ToValues() url.Values {
	if p == nil {
		return url.Values{}
	}

	values := p.ListParams.ToValues()

	if p.IsActive != nil {
		values.Set("is_active", strconv.FormatBool(*p.IsActive))
	}

	return values
}

// AttributeValueListParams filter attribute value listings.
type AttributeValueListParams struct {
	ListParams

	AttributeID string
	IsActive    *bool
}

// ToValues converts the params to URL query values.
func (p *AttributeValueListParams) ToValues() url.Values {
	if p == nil {
		return url.Values{}
	}

	values := p.ListParams.ToValues()

	if p.AttributeID != "" {
		values.Set("attribute_id", p.AttributeID)
	}

	if p.IsActive != nil {
		values.Set("is_active", strconv.FormatBool(*p.IsActive))
	}

	return values
}

// VariantAttributeValueListParams filter variant attribute value listings.
type VariantAttributeValueListParams struct {
	ListParams

	VariantID string
}

// ToValues converts the params to URL query values.
func (p *VariantAttributeValueListParams) ToValues() url.Values {
	if p == nil {
		return url.Values{}
	}

	values := p.ListParams.ToValues()

	if p.VariantID != "" {
		values.Set("variant_id", p.VariantID)
	}

	return values
}

// BannerListParams filter banner listings.
type BannerListParams struct {
	ListParams
}
