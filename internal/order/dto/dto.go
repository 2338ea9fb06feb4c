package dto

import "github.com/fekuna/omnipos-commerce/internal/model"

type OrderItemInput struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
	Quantity  int    `json:"quantity" validate:"required,gt=0,lte=100000"`
}

type CreateOrderInput struct {
	Items []OrderItemInput `json:"items" validate:"required,min=1,max=200,dive"`
	Note  *string          `json:"note" validate:"omitempty,max=1000"`
}

type UpdateStatusInput struct {
	ID     string            `json:"-"`
	Status model.OrderStatus `json:"status" validate:"required,oneof=pending processing shipped delivered cancelled"`
}

type OrderFilters struct {
	UserID      string
	Status      model.OrderStatus
	OrderNumber string
	Page        int
	PageSize    int
}
