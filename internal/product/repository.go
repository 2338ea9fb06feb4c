package product

import (
	"context"

	"github.com/fekuna/omnipos-commerce/internal/model"
	"github.com/fekuna/omnipos-commerce/internal/product/dto"
)

//go:generate mockgen -source=repository.go -destination=mock/repository_mock.go -package=mock

type Repository interface {
	Create(ctx context.Context, product *model.Product) error
	FindByID(ctx context.Context, id string) (*model.Product, error)
	FindBySlug(ctx context.Context, slug string) (*model.Product, error)
	FindByIDs(ctx context.Context, ids []string) ([]model.Product, error)
	FindAll(ctx context.Context, filters *dto.ProductFilters) ([]model.Product, int, error)
	Update(ctx context.Context, product *model.Product) error
	Delete(ctx context.Context, id string) error

	IsSKUUnique(ctx context.Context, sku, excludeID string) (bool, error)
}

// CategoryFinder resolves the category a product belongs to.
type CategoryFinder interface {
	FindByID(ctx context.Context, id string) (*model.Category, error)
}
