package order

import (
	"context"

	"github.com/fekuna/omnipos-commerce/internal/model"
	"github.com/fekuna/omnipos-commerce/internal/order/dto"
)

//go:generate mockgen -source=usecase.go -destination=mock/usecase_mock.go -package=mock

type UseCase interface {
	CreateOrder(ctx context.Context, userID string, input *dto.CreateOrderInput) (*model.Order, error)
	GetOrder(ctx context.Context, id string) (*model.Order, error)
	GetUserOrder(ctx context.Context, userID, id string) (*model.Order, error)
	ListOrders(ctx context.Context, filters *dto.OrderFilters) ([]model.Order, int, error)
	UpdateOrderStatus(ctx context.Context, input *dto.UpdateStatusInput) (*model.Order, error)
}
