package model

import "time"

const EventOrderCreated = "OrderCreated"

// OrderCreatedEvent is published on the orders topic after an order is stored.
type OrderCreatedEvent struct {
	EventID   string       `json:"event_id"`
	EventType string       `json:"event_type"`
	Payload   OrderPayload `json:"payload"`
	Timestamp time.Time    `json:"timestamp"`
}

type OrderPayload struct {
	ID          string             `json:"id"`
	OrderNumber string             `json:"order_number"`
	UserID      string             `json:"user_id"`
	Total       float64            `json:"total"`
	Items       []OrderItemPayload `json:"items"`
}

type OrderItemPayload struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}
