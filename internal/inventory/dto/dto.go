package dto

import "time"

type InventoryFilters struct {
	ProductID      string
	LowStock       bool       // quantity <= reorder_point
	ExpiringBefore *time.Time // expiration_date <= ExpiringBefore
	Page           int
	PageSize       int
}

type MovementFilters struct {
	ProductID    string
	MovementType string
	StartDate    *time.Time
	EndDate      *time.Time
	Page         int
	PageSize     int
}

type AdjustInventoryInput struct {
	ProductID      string `json:"-"`
	QuantityChange int    `json:"quantity_change" validate:"required,ne=0"`
	MovementType   string `json:"movement_type" validate:"omitempty,oneof=adjustment sale return"`
	Reason         string `json:"reason" validate:"max=500"`
	ReferenceID    string `json:"reference_id" validate:"max=100"`
	ReferenceType  string `json:"reference_type" validate:"max=50"`
	UserID         string `json:"-"`
}

// UpdateInventoryInput changes stock settings, never the quantity.
// ExpirationDate is a calendar date (YYYY-MM-DD); "" clears it.
type UpdateInventoryInput struct {
	ProductID      string  `json:"-"`
	ReorderPoint   *int    `json:"reorder_point" validate:"omitempty,gte=0"`
	ShelfLifeDays  *int    `json:"shelf_life_days" validate:"omitempty,gte=0"`
	ExpirationDate *string `json:"expiration_date"`
}
