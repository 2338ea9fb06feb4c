package model

type Product struct {
	BaseModel
	CategoryID  *string   `db:"category_id" json:"category_id"` // Nullable
	SKU         string    `db:"sku" json:"sku"`
	Name        string    `db:"name" json:"name"`
	Slug        string    `db:"slug" json:"slug"`
	Description *string   `db:"description" json:"description"`
	Price       float64   `db:"price" json:"price"`
	Unit        string    `db:"unit" json:"unit"`
	ImageURL    *string   `db:"image_url" json:"image_url"`
	IsActive    bool      `db:"is_active" json:"is_active"`
	Category    *Category `db:"-" json:"category,omitempty"` // Joined data
}
