package catalog

import (
	"encoding/json"
	"regexp"
	"strings"
)

// AttributeDataType enumerates attribute value types.
type AttributeDataType string

const (
	AttributeTypeText    AttributeDataType = "TEXT"
	AttributeTypeNumber  AttributeDataType = "NUMBER"
	AttributeTypeBoolean AttributeDataType = "BOOLEAN"
)

// BannerLinkType enumerates banner targets.
type BannerLinkType string

const (
	BannerLinkCategory BannerLinkType = "CATEGORY"
	BannerLinkProduct  BannerLinkType = "PRODUCT"
	BannerLinkExternal BannerLinkType = "EXTERNAL"
)

// User represents an authenticated account.
type User struct {
	ID        string `json:"id"                  yaml:"id"`
	Phone     string `json:"phone"               yaml:"phone"`
	Name      string `json:"name"                yaml:"name"`
	Role      string `json:"role"                yaml:"role"`
	CreatedAt string `json:"createdAt,omitempty" yaml:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty" yaml:"updatedAt,omitempty"`
}

// Category represents a catalog category. Categories form a tree through
// ParentID.
type Category struct {
	ID          string `json:"id"                    yaml:"id"`
	Name        string `json:"name"                  yaml:"name"`
	Slug        string `json:"slug"                  yaml:"slug"`
	Image       string `json:"image,omitempty"       yaml:"image,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	ParentID    string `json:"parent_id,omitempty"   yaml:"parent_id,omitempty"`
	IsActive    bool   `json:"is_active"             yaml:"is_active"`
	IsDeleted   bool   `json:"is_deleted"            yaml:"is_deleted"`
	CreatedAt   string `json:"created_at,omitempty"  yaml:"created_at,omitempty"`
	UpdatedAt   string `json:"updated_at,omitempty"  yaml:"updated_at,omitempty"`
}

// CategoryCreateRequest is the payload for creating a category.
type CategoryCreateRequest struct {
	Name        string `json:"name"                  yaml:"name"`
	Slug        string `json:"slug"                  yaml:"slug"`
	Image       string `json:"image,omitempty"       yaml:"image,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	ParentID    string `json:"parent_id,omitempty"   yaml:"parent_id,omitempty"`
	IsActive    bool   `json:"is_active"             yaml:"is_active"`
}

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// Validate checks the payload before submission.
func (r *CategoryCreateRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return NewValidationError("name", "Name is required")
	}

	if len(r.Name) > 100 {
		return NewValidationError("name", "Name is too long")
	}

	if strings.TrimSpace(r.Slug) == "" {
		return NewValidationError("slug", "Slug is required")
	}

	if len(r.Slug) > 100 {
		return NewValidationError("slug", "Slug is too long")
	}

	if !slugPattern.MatchString(r.Slug) {
		return NewValidationError("slug", "Slug must be lowercase with hyphens only")
	}

	if len(r.Description) > 500 {
		return NewValidationError("description", "Description is too long")
	}

	return nil
}

// CategoryUpdateRequest is the payload for updating a category. Zero-value
// fields are omitted from the request body.
type CategoryUpdateRequest struct {
	Name        string `json:"name,omitempty"        yaml:"name,omitempty"`
	Slug        string `json:"slug,omitempty"        yaml:"slug,omitempty"`
	Image       string `json:"image,omitempty"       yaml:"image,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	ParentID    string `json:"parent_id,omitempty"   yaml:"parent_id,omitempty"`
	IsActive    *bool  `json:"is_active,omitempty"   yaml:"is_active,omitempty"`
}

// Validate checks the payload before submission.
func (r *CategoryUpdateRequest) Validate() error {
	if len(r.Name) > 100 {
		return NewValidationError("name", "Name is too long")
	}

	if r.Slug != "" && !slugPattern.MatchString(r.Slug) {
		return NewValidationError("slug", "Slug must be lowercase with hyphens only")
	}

	if len(r.Description) > 500 {
		return NewValidationError("description", "Description is too long")
	}

	return nil
}

// ProductCategoryLink nests the category summary the list endpoint attaches
// to each product.
type ProductCategoryLink struct {
	Category struct {
		ID   string `json:"id"   yaml:"id"`
		Name string `json:"name" yaml:"name"`
		Slug string `json:"slug" yaml:"slug"`
	} `json:"category" yaml:"category"`
}

// ProductCounts carries relation counts included in product listings.
type ProductCounts struct {
	Variants int `json:"variants" yaml:"variants"`
	Addons   int `json:"addons"   yaml:"addons"`
}

// Product represents a sellable product.
type Product struct {
	ID          string                `json:"id"                    yaml:"id"`
	Name        string                `json:"name"                  yaml:"name"`
	Description string                `json:"description,omitempty" yaml:"description,omitempty"`
	Image       string                `json:"image,omitempty"       yaml:"image,omitempty"`
	Code        string                `json:"code"                  yaml:"code"`
	IsAvailable bool                  `json:"is_available"          yaml:"is_available"`
	IsActive    bool                  `json:"is_active"             yaml:"is_active"`
	CreatedAt   string                `json:"created_at,omitempty"  yaml:"created_at,omitempty"`
	UpdatedAt   string                `json:"updated_at,omitempty"  yaml:"updated_at,omitempty"`
	Categories  []ProductCategoryLink `json:"categories,omitempty"  yaml:"categories,omitempty"`
	Counts      *ProductCounts        `json:"_count,omitempty"      yaml:"_count,omitempty"`
}

// ProductCreateRequest is the payload for creating a product.
type ProductCreateRequest struct {
	Name        string   `json:"name"                  yaml:"name"`
	Code        string   `json:"code"                  yaml:"code"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Image       string   `json:"image,omitempty"       yaml:"image,omitempty"`
	IsAvailable bool     `json:"is_available"          yaml:"is_available"`
	IsActive    bool     `json:"is_active"             yaml:"is_active"`
	CategoryIDs []string `json:"category_ids"          yaml:"category_ids"`
}

// Validate checks the payload before submission.
func (r *ProductCreateRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return NewValidationError("name", "Name is required")
	}

	if strings.TrimSpace(r.Code) == "" {
		return NewValidationError("code", "Code is required")
	}

	if len(r.CategoryIDs) == 0 {
		return NewValidationError("category_ids", "At least one category is required")
	}

	return nil
}

// ProductUpdateRequest is the payload for updating a product; all fields
// are optional.
type ProductUpdateRequest struct {
	Name        string   `json:"name,omitempty"         yaml:"name,omitempty"`
	Code        string   `json:"code,omitempty"         yaml:"code,omitempty"`
	Description string   `json:"description,omitempty"  yaml:"description,omitempty"`
	Image       string   `json:"image,omitempty"        yaml:"image,omitempty"`
	IsAvailable *bool    `json:"is_available,omitempty" yaml:"is_available,omitempty"`
	IsActive    *bool    `json:"is_active,omitempty"    yaml:"is_active,omitempty"`
	CategoryIDs []string `json:"category_ids,omitempty" yaml:"category_ids,omitempty"`
}

// Variant represents a product variant.
type Variant struct {
	ID          string      `json:"id"                   yaml:"id"`
	Name        string      `json:"name"                 yaml:"name"`
	Price       json.Number `json:"price"                yaml:"price"`
	SKU         string      `json:"sku,omitempty"        yaml:"sku,omitempty"`
	Image       string      `json:"image,omitempty"      yaml:"image,omitempty"`
	IsDefault   bool        `json:"is_default"           yaml:"is_default"`
	IsAvailable bool        `json:"is_available"         yaml:"is_available"`
	IsActive    bool        `json:"is_active"            yaml:"is_active"`
	ProductID   string      `json:"product_id"           yaml:"product_id"`
	CreatedAt   string      `json:"created_at,omitempty" yaml:"created_at,omitempty"`
	UpdatedAt   string      `json:"updated_at,omitempty" yaml:"updated_at,omitempty"`
}

// VariantCreateRequest is the payload for creating a variant.
type VariantCreateRequest struct {
	Name        string  `json:"name"            yaml:"name"`
	Price       float64 `json:"price"           yaml:"price"`
	SKU         string  `json:"sku,omitempty"   yaml:"sku,omitempty"`
	Image       string  `json:"image,omitempty" yaml:"image,omitempty"`
	IsDefault   bool    `json:"is_default"      yaml:"is_default"`
	IsAvailable bool    `json:"is_available"    yaml:"is_available"`
	IsActive    bool    `json:"is_active"       yaml:"is_active"`
	ProductID   string  `json:"product_id"      yaml:"product_id"`
}

// Validate checks the payload before submission.
func (r *VariantCreateRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return NewValidationError("name", "Name is required")
	}

	if r.Price <= 0 {
		return NewValidationError("price", "Price must be a positive number")
	}

	if strings.TrimSpace(r.ProductID) == "" {
		return NewValidationError("product_id", "Invalid product ID")
	}

	return nil
}

// VariantUpdateRequest is the payload for partially updating a variant.
type VariantUpdateRequest struct {
	Name        string   `json:"name,omitempty"         yaml:"name,omitempty"`
	Price       *float64 `json:"price,omitempty"        yaml:"price,omitempty"`
	SKU         string   `json:"sku,omitempty"          yaml:"sku,omitempty"`
	Image       string   `json:"image,omitempty"        yaml:"image,omitempty"`
	IsDefault   *bool    `json:"is_default,omitempty"   yaml:"is_default,omitempty"`
	IsAvailable *bool    `json:"is_available,omitempty" yaml:"is_available,omitempty"`
	IsActive    *bool    `json:"is_active,omitempty"    yaml:"is_active,omitempty"`
}

// Validate checks the payload before submission.
func (r *VariantUpdateRequest) Validate() error {
	if r.Price != nil && *r.Price <= 0 {
		return NewValidationError("price", "Price must be a positive number")
	}

	return nil
}

// Attribute represents a variant attribute definition.
type Attribute struct {
	ID        string            `json:"id"                   yaml:"id"`
	Name      string            `json:"name"                 yaml:"name"`
	DataType  AttributeDataType `json:"data_type"            yaml:"data_type"`
	IsActive  bool              `json:"is_active"            yaml:"is_active"`
	IsDeleted bool              `json:"is_deleted"           yaml:"is_deleted"`
	CreatedAt string            `json:"created_at,omitempty" yaml:"created_at,omitempty"`
	UpdatedAt string            `json:"updated_at,omitempty" yaml:"updated_at,omitempty"`
}

// AttributeCreateRequest is the payload for creating an attribute.
type AttributeCreateRequest struct {
	Name     string            `json:"name"      yaml:"name"`
	DataType AttributeDataType `json:"data_type" yaml:"data_type"`
}

// Validate checks the payload before submission.
func (r *AttributeCreateRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return NewValidationError("name", "Name is required")
	}

	if len(r.Name) > 100 {
		return NewValidationError("name", "Name is too long")
	}

	switch r.DataType {
	case AttributeTypeText, AttributeTypeNumber, AttributeTypeBoolean:
		return nil
	default:
		return NewValidationError("data_type", "Invalid data type")
	}
}

// AttributeUpdateRequest is the payload for updating an attribute.
type AttributeUpdateRequest struct {
	Name     string            `json:"name,omitempty"      yaml:"name,omitempty"`
	DataType AttributeDataType `json:"data_type,omitempty" yaml:"data_type,omitempty"`
	IsActive *bool             `json:"is_active,omitempty" yaml:"is_active,omitempty"`
}

// AttributeValue represents a selectable value for an attribute.
type AttributeValue struct {
	ID          string `json:"id"                   yaml:"id"`
	AttributeID string `json:"attribute_id"         yaml:"attribute_id"`
	Value       string `json:"value"                yaml:"value"`
	IsActive    bool   `json:"is_active"            yaml:"is_active"`
	IsDeleted   bool   `json:"is_deleted"           yaml:"is_deleted"`
	CreatedAt   string `json:"created_at,omitempty" yaml:"created_at,omitempty"`
	UpdatedAt   string `json:"updated_at,omitempty" yaml:"updated_at,omitempty"`
}

// AttributeValueCreateRequest is the payload for creating an attribute
// value.
type AttributeValueCreateRequest struct {
	AttributeID string `json:"attribute_id" yaml:"attribute_id"`
	Value       string `json:"value"        yaml:"value"`
}

// Validate checks the payload before submission.
func (r *AttributeValueCreateRequest) Validate() error {
	if strings.TrimSpace(r.AttributeID) == "" {
		return NewValidationError("attribute_id", "Attribute is required")
	}

	if strings.TrimSpace(r.Value) == "" {
		return NewValidationError("value", "Value is required")
	}

	if len(r.Value) > 100 {
		return NewValidationError("value", "Value is too long")
	}

	return nil
}

// AttributeValueUpdateRequest is the payload for updating an attribute
// value.
type AttributeValueUpdateRequest struct {
	Value    string `json:"value,omitempty"     yaml:"value,omitempty"`
	IsActive *bool  `json:"is_active,omitempty" yaml:"is_active,omitempty"`
}

// VariantAttributeValue links a variant to an attribute value, with the
// nested attribute summary the API includes on reads.
type VariantAttributeValue struct {
	ID               string `json:"id"                   yaml:"id"`
	VariantID        string `json:"variant_id"           yaml:"variant_id"`
	AttributeValueID string `json:"attribute_value_id"   yaml:"attribute_value_id"`
	IsActive         bool   `json:"is_active"            yaml:"is_active"`
	CreatedAt        string `json:"created_at,omitempty" yaml:"created_at,omitempty"`
	UpdatedAt        string `json:"updated_at,omitempty" yaml:"updated_at,omitempty"`
	AttributeValue   *struct {
		ID        string `json:"id"    yaml:"id"`
		Value     string `json:"value" yaml:"value"`
		Attribute struct {
			ID       string `json:"id"        yaml:"id"`
			Name     string `json:"name"      yaml:"name"`
			DataType string `json:"data_type" yaml:"data_type"`
		} `json:"attribute" yaml:"attribute"`
	} `json:"attribute_value,omitempty" yaml:"attribute_value,omitempty"`
}

// VariantAttributeValueCreateRequest is the payload for linking a variant
// to an attribute value.
type VariantAttributeValueCreateRequest struct {
	VariantID        string `json:"variant_id"         yaml:"variant_id"`
	AttributeValueID string `json:"attribute_value_id" yaml:"attribute_value_id"`
}

// Validate checks the payload before submission.
func (r *VariantAttributeValueCreateRequest) Validate() error {
	if strings.TrimSpace(r.VariantID) == "" {
		return NewValidationError("variant_id", "Variant is required")
	}

	if strings.TrimSpace(r.AttributeValueID) == "" {
		return NewValidationError("attribute_value_id", "Attribute value is required")
	}

	return nil
}

// VariantAttributeValueUpdateRequest is the payload for updating a link.
type VariantAttributeValueUpdateRequest struct {
	AttributeValueID string `json:"attribute_value_id,omitempty" yaml:"attribute_value_id,omitempty"`
	IsActive         *bool  `json:"is_active,omitempty"          yaml:"is_active,omitempty"`
}

// Banner represents a storefront banner.
type Banner struct {
	ID        string         `json:"id"                   yaml:"id"`
	Title     string         `json:"title"                yaml:"title"`
	Subtitle  string         `json:"subtitle,omitempty"   yaml:"subtitle,omitempty"`
	ImageURL  string         `json:"image_url"            yaml:"image_url"`
	LinkType  BannerLinkType `json:"link_type"            yaml:"link_type"`
	LinkValue string         `json:"link_value"           yaml:"link_value"`
	IsActive  bool           `json:"is_active"            yaml:"is_active"`
	Position  int            `json:"position,omitempty"   yaml:"position,omitempty"`
	CreatedAt string         `json:"created_at,omitempty" yaml:"created_at,omitempty"`
}

// BannerCreateRequest is the payload for creating a banner.
type BannerCreateRequest struct {
	Title     string         `json:"title"              yaml:"title"`
	Subtitle  string         `json:"subtitle,omitempty" yaml:"subtitle,omitempty"`
	ImageURL  string         `json:"image_url"          yaml:"image_url"`
	LinkType  BannerLinkType `json:"link_type"          yaml:"link_type"`
	LinkValue string         `json:"link_value"         yaml:"link_value"`
	IsActive  bool           `json:"is_active"          yaml:"is_active"`
	Position  int            `json:"position,omitempty" yaml:"position,omitempty"`
}

// Validate checks the payload before submission.
func (r *BannerCreateRequest) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return NewValidationError("title", "Title is required")
	}

	if strings.TrimSpace(r.ImageURL) == "" {
		return NewValidationError("image_url", "Image is required")
	}

	switch r.LinkType {
	case BannerLinkCategory, BannerLinkProduct, BannerLinkExternal:
	default:
		return NewValidationError("link_type", "Invalid link type")
	}

	if strings.TrimSpace(r.LinkValue) == "" {
		return NewValidationError("link_value", "Link value is required")
	}

	return nil
}

// BannerUpdateRequest is the payload for updating a banner.
type BannerUpdateRequest struct {
	Title     string         `json:"title,omitempty"      yaml:"title,omitempty"`
	Subtitle  string         `json:"subtitle,omitempty"   yaml:"subtitle,omitempty"`
	ImageURL  string         `json:"image_url,omitempty"  yaml:"image_url,omitempty"`
	LinkType  BannerLinkType `json:"link_type,omitempty"  yaml:"link_type,omitempty"`
	LinkValue string         `json:"link_value,omitempty" yaml:"link_value,omitempty"`
	IsActive  *bool          `json:"is_active,omitempty"  yaml:"is_active,omitempty"`
	Position  *int           `json:"position,omitempty"   yaml:"position,omitempty"`
}
