package dto

type ProductFilters struct {
	CategoryID  string   `json:"category_id,omitempty"`
	IsActive    *bool    `json:"is_active,omitempty"`
	SearchQuery string   `json:"q,omitempty"` // name, sku or description
	MinPrice    *float64 `json:"min_price,omitempty"`
	MaxPrice    *float64 `json:"max_price,omitempty"`
	SortBy      string   `json:"sort_by,omitempty"`    // name, price, created_at
	SortOrder   string   `json:"sort_order,omitempty"` // asc, desc
	Page        int      `json:"page"`
	PageSize    int      `json:"page_size"`
}

type CreateProductInput struct {
	CategoryID  string  `json:"category_id" validate:"omitempty,uuid"`
	SKU         string  `json:"sku" validate:"required,max=64"`
	Name        string  `json:"name" validate:"required,max=200"`
	Description string  `json:"description" validate:"max=5000"`
	Price       float64 `json:"price" validate:"gte=0"`
	Unit        string  `json:"unit" validate:"max=20"`
	ImageURL    string  `json:"image_url" validate:"omitempty,url"`
}

// UpdateProductInput only touches the fields that are set. CategoryID set to ""
// detaches the product from its category.
type UpdateProductInput struct {
	ID          string   `json:"-"`
	CategoryID  *string  `json:"category_id"`
	SKU         *string  `json:"sku" validate:"omitempty,min=1,max=64"`
	Name        *string  `json:"name" validate:"omitempty,min=1,max=200"`
	Description *string  `json:"description" validate:"omitempty,max=5000"`
	Price       *float64 `json:"price" validate:"omitempty,gte=0"`
	Unit        *string  `json:"unit" validate:"omitempty,max=20"`
	ImageURL    *string  `json:"image_url" validate:"omitempty,max=2048"`
	IsActive    *bool    `json:"is_active"`
}
