package discount

import (
	"context"
	"time"

	"github.com/fekuna/omnipos-commerce/internal/discount/dto"
	"github.com/fekuna/omnipos-commerce/internal/model"
)

//go:generate mockgen -source=repository.go -destination=mock/repository_mock.go -package=mock

type Repository interface {
	CreateBulk(ctx context.Context, d *model.BulkDiscount) error
	FindBulkByID(ctx context.Context, id string) (*model.BulkDiscount, error)
	ListBulk(ctx context.Context, filters *dto.DiscountFilters) ([]model.BulkDiscount, int, error)
	UpdateBulk(ctx context.Context, d *model.BulkDiscount) error
	DeleteBulk(ctx context.Context, id string) error

	Create(ctx context.Context, d *model.Discount) error
	FindByID(ctx context.Context, id string) (*model.Discount, error)
	List(ctx context.Context, filters *dto.DiscountFilters) ([]model.Discount, int, error)
	Update(ctx context.Context, d *model.Discount) error
	Delete(ctx context.Context, id string) error

	ActiveBulkForProducts(ctx context.Context, productIDs []string, at time.Time) ([]model.BulkDiscount, error)
	ActiveForProducts(ctx context.Context, productIDs []string, at time.Time) ([]model.Discount, error)

	// DeactivateExpired switches off every discount whose valid_to is before at
	// and reports how many rows of each kind changed.
	DeactivateExpired(ctx context.Context, at time.Time) (int64, int64, error)
}

// ProductChecker confirms a discount targets an existing product.
type ProductChecker interface {
	FindByID(ctx context.Context, id string) (*model.Product, error)
}
