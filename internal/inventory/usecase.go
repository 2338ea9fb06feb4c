package inventory

import (
	"context"

	"github.com/fekuna/omnipos-commerce/internal/inventory/dto"
	"github.com/fekuna/omnipos-commerce/internal/model"
)

//go:generate mockgen -source=usecase.go -destination=mock/usecase_mock.go -package=mock

type UseCase interface {
	GetProductInventory(ctx context.Context, productID string) (*model.Inventory, error)
	UpdateInventory(ctx context.Context, input *dto.UpdateInventoryInput) (*model.Inventory, error)
	AdjustInventory(ctx context.Context, input *dto.AdjustInventoryInput) (*model.Inventory, error)
	ListLowStock(ctx context.Context, page, pageSize int) ([]model.Inventory, int, error)
	ListExpiring(ctx context.Context, withinDays, page, pageSize int) ([]model.Inventory, int, error)
	ListMovements(ctx context.Context, filters *dto.MovementFilters) ([]model.InventoryMovement, int, error)
	ApplyOrder(ctx context.Context, event *model.OrderCreatedEvent) error
}
