package model

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:    {OrderStatusProcessing, OrderStatusCancelled},
	OrderStatusProcessing: {OrderStatusShipped, OrderStatusCancelled},
	OrderStatusShipped:    {OrderStatusDelivered},
}

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// CanTransitionTo reports whether an order in status s may move to next.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type Order struct {
	BaseModel
	OrderNumber   string      `db:"order_number" json:"order_number"`
	UserID        string      `db:"user_id" json:"user_id"`
	Status        OrderStatus `db:"status" json:"status"`
	Subtotal      float64     `db:"subtotal" json:"subtotal"`
	DiscountTotal float64     `db:"discount_total" json:"discount_total"`
	Total         float64     `db:"total" json:"total"`
	Note          *string     `db:"note" json:"note"`
	Items         []OrderItem `db:"-" json:"items"`
}

type OrderItem struct {
	ID              string  `db:"id" json:"id"`
	OrderID         string  `db:"order_id" json:"order_id"`
	ProductID       string  `db:"product_id" json:"product_id"`
	ProductName     string  `db:"product_name" json:"product_name"`
	Quantity        int     `db:"quantity" json:"quantity"`
	UnitPrice       float64 `db:"unit_price" json:"unit_price"`
	DiscountPercent float64 `db:"discount_percent" json:"discount_percent"`
	LineTotal       float64 `db:"line_total" json:"line_total"`
}
