package discount

import (
	"context"

	"github.com/fekuna/omnipos-commerce/internal/discount/dto"
	"github.com/fekuna/omnipos-commerce/internal/model"
)

//go:generate mockgen -source=usecase.go -destination=mock/usecase_mock.go -package=mock

type UseCase interface {
	CreateBulkDiscount(ctx context.Context, input *dto.CreateBulkDiscountInput) (*model.BulkDiscount, error)
	ListBulkDiscounts(ctx context.Context, filters *dto.DiscountFilters) ([]model.BulkDiscount, int, error)
	UpdateBulkDiscount(ctx context.Context, input *dto.UpdateBulkDiscountInput) (*model.BulkDiscount, error)
	DeleteBulkDiscount(ctx context.Context, id string) error

	CreateDiscount(ctx context.Context, input *dto.CreateDiscountInput) (*model.Discount, error)
	ListDiscounts(ctx context.Context, filters *dto.DiscountFilters) ([]model.Discount, int, error)
	UpdateDiscount(ctx context.Context, input *dto.UpdateDiscountInput) (*model.Discount, error)
	DeleteDiscount(ctx context.Context, id string) error

	GetProductDiscounts(ctx context.Context, productID string) (*dto.ProductDiscounts, error)
	DeactivateExpired(ctx context.Context) (int64, error)
}
