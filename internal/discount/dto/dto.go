package dto

import (
	"time"

	"github.com/fekuna/omnipos-commerce/internal/model"
)

type DiscountFilters struct {
	ProductID  string
	ActiveOnly bool
	Page       int
	PageSize   int
}

type CreateBulkDiscountInput struct {
	ProductID       string     `json:"product_id" validate:"required,uuid"`
	MinQuantity     int        `json:"min_quantity" validate:"required,gt=0"`
	DiscountPercent float64    `json:"discount_percent" validate:"required,gt=0,lte=100"`
	ValidFrom       *time.Time `json:"valid_from"`
	ValidTo         *time.Time `json:"valid_to"`
	IsActive        *bool      `json:"is_active"`
}

type UpdateBulkDiscountInput struct {
	ID              string     `json:"-"`
	MinQuantity     *int       `json:"min_quantity" validate:"omitempty,gt=0"`
	DiscountPercent *float64   `json:"discount_percent" validate:"omitempty,gt=0,lte=100"`
	ValidFrom       *time.Time `json:"valid_from"`
	ValidTo         *time.Time `json:"valid_to"`
	IsActive        *bool      `json:"is_active"`
}

type CreateDiscountInput struct {
	ProductID       string     `json:"product_id" validate:"required,uuid"`
	DiscountPercent float64    `json:"discount_percent" validate:"required,gt=0,lte=100"`
	MinOrderValue   float64    `json:"min_order_value" validate:"gte=0"`
	ValidFrom       *time.Time `json:"valid_from"`
	ValidTo         *time.Time `json:"valid_to"`
	IsActive        *bool      `json:"is_active"`
}

type UpdateDiscountInput struct {
	ID              string     `json:"-"`
	DiscountPercent *float64   `json:"discount_percent" validate:"omitempty,gt=0,lte=100"`
	MinOrderValue   *float64   `json:"min_order_value" validate:"omitempty,gte=0"`
	ValidFrom       *time.Time `json:"valid_from"`
	ValidTo         *time.Time `json:"valid_to"`
	IsActive        *bool      `json:"is_active"`
}

// ProductDiscounts lists what currently applies to one product.
type ProductDiscounts struct {
	ProductID string               `json:"product_id"`
	Bulk      []model.BulkDiscount `json:"bulk"`
	Campaigns []model.Discount     `json:"campaigns"`
}
