package model

import "time"

// BulkDiscount applies when a single order line reaches MinQuantity.
type BulkDiscount struct {
	BaseModel
	ProductID       string     `db:"product_id" json:"product_id"`
	MinQuantity     int        `db:"min_quantity" json:"min_quantity"`
	DiscountPercent float64    `db:"discount_percent" json:"discount_percent"`
	ValidFrom       time.Time  `db:"valid_from" json:"valid_from"`
	ValidTo         *time.Time `db:"valid_to" json:"valid_to"`
	IsActive        bool       `db:"is_active" json:"is_active"`
}

// Discount is a campaign discount on a product, gated by the order value.
type Discount struct {
	BaseModel
	ProductID       string     `db:"product_id" json:"product_id"`
	DiscountPercent float64    `db:"discount_percent" json:"discount_percent"`
	MinOrderValue   float64    `db:"min_order_value" json:"min_order_value"`
	ValidFrom       time.Time  `db:"valid_from" json:"valid_from"`
	ValidTo         *time.Time `db:"valid_to" json:"valid_to"`
	IsActive        bool       `db:"is_active" json:"is_active"`
}

func activeAt(isActive bool, from time.Time, to *time.Time, at time.Time) bool {
	if !isActive || at.Before(from) {
		return false
	}
	return to == nil || at.Before(*to)
}

func (d *BulkDiscount) ActiveAt(at time.Time) bool {
	return activeAt(d.IsActive, d.ValidFrom, d.ValidTo, at)
}

func (d *Discount) ActiveAt(at time.Time) bool {
	return activeAt(d.IsActive, d.ValidFrom, d.ValidTo, at)
}
