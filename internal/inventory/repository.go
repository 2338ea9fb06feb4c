package inventory

import (
	"context"

	"github.com/fekuna/omnipos-commerce/internal/inventory/dto"
	"github.com/fekuna/omnipos-commerce/internal/model"
)

//go:generate mockgen -source=repository.go -destination=mock/repository_mock.go -package=mock

type Repository interface {
	GetByProduct(ctx context.Context, productID string) (*model.Inventory, error)
	BatchGetByProducts(ctx context.Context, productIDs []string) ([]model.Inventory, error)
	FindAll(ctx context.Context, filters *dto.InventoryFilters) ([]model.Inventory, int, error)

	CreateOrUpdate(ctx context.Context, inv *model.Inventory) error

	ListMovements(ctx context.Context, filters *dto.MovementFilters) ([]model.InventoryMovement, int, error)
	HasMovement(ctx context.Context, productID, referenceType, referenceID string) (bool, error)

	// AdjustStockWithMovement stores the new stock level and its movement in one transaction.
	AdjustStockWithMovement(ctx context.Context, inv *model.Inventory, movement *model.InventoryMovement) error
}

// ProductChecker confirms a product exists before stock is created for it.
type ProductChecker interface {
	FindByID(ctx context.Context, id string) (*model.Product, error)
}
