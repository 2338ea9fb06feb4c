package model

import "time"

type Inventory struct {
	ID             string     `db:"id" json:"id"`
	ProductID      string     `db:"product_id" json:"product_id"`
	Quantity       int        `db:"quantity" json:"quantity"`
	ReorderPoint   int        `db:"reorder_point" json:"reorder_point"`
	ShelfLifeDays  *int       `db:"shelf_life_days" json:"shelf_life_days"`
	ExpirationDate *time.Time `db:"expiration_date" json:"expiration_date"`
	UpdatedAt      time.Time  `db:"updated_at" json:"updated_at"`

	ProductName string `db:"product_name" json:"product_name,omitempty"` // joined
	ProductSKU  string `db:"product_sku" json:"product_sku,omitempty"`   // joined
}

const (
	MovementAdjustment = "adjustment"
	MovementSale       = "sale"
	MovementReturn     = "return"
)

type InventoryMovement struct {
	ID             string    `db:"id" json:"id"`
	ProductID      string    `db:"product_id" json:"product_id"`
	MovementType   string    `db:"movement_type" json:"movement_type"`
	QuantityChange int       `db:"quantity_change" json:"quantity_change"`
	QuantityBefore int       `db:"quantity_before" json:"quantity_before"`
	QuantityAfter  int       `db:"quantity_after" json:"quantity_after"`
	ReferenceType  *string   `db:"reference_type" json:"reference_type"`
	ReferenceID    *string   `db:"reference_id" json:"reference_id"`
	Notes          string    `db:"notes" json:"notes"`
	CreatedBy      *string   `db:"created_by" json:"created_by"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}
