package dto

type CategoryFilters struct {
	ParentID *string // nil ignores the parent, "" selects root categories
	IsActive *bool
	Tree     bool
	Page     int
	PageSize int
}

type CreateCategoryInput struct {
	ParentID    *string `json:"parent_id"`
	Name        string  `json:"name" validate:"required,max=120"`
	Description string  `json:"description" validate:"max=2000"`
	ImageURL    string  `json:"image_url" validate:"omitempty,url"`
	SortOrder   int     `json:"sort_order"`
}

// UpdateCategoryInput only touches the fields that are set.
// ParentID set to "" moves the category to the root.
type UpdateCategoryInput struct {
	ID          string  `json:"-"`
	ParentID    *string `json:"parent_id"`
	Name        *string `json:"name" validate:"omitempty,min=1,max=120"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
	ImageURL    *string `json:"image_url" validate:"omitempty,max=2048"`
	SortOrder   *int    `json:"sort_order"`
	IsActive    *bool   `json:"is_active"`
}
