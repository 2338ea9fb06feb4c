package dto

import "time"

// OrderRow is an order flattened with its customer for the export sheet.
type OrderRow struct {
	OrderNumber   string    `db:"order_number"`
	CreatedAt     time.Time `db:"created_at"`
	Status        string    `db:"status"`
	CustomerName  string    `db:"customer_name"`
	CompanyName   string    `db:"company_name"`
	CustomerEmail string    `db:"customer_email"`
	ItemCount     int       `db:"item_count"`
	Subtotal      float64   `db:"subtotal"`
	DiscountTotal float64   `db:"discount_total"`
	Total         float64   `db:"total"`
}

// ProductRow is a product joined with its category and stock.
type ProductRow struct {
	SKU          string  `db:"sku"`
	Name         string  `db:"name"`
	CategoryName *string `db:"category_name"`
	Price        float64 `db:"price"`
	Unit         string  `db:"unit"`
	Quantity     *int    `db:"quantity"`
	IsActive     bool    `db:"is_active"`
}
