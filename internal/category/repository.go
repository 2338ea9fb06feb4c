package category

import (
	"context"

	"github.com/fekuna/omnipos-commerce/internal/category/dto"
	"github.com/fekuna/omnipos-commerce/internal/model"
)

//go:generate mockgen -source=repository.go -destination=mock/repository_mock.go -package=mock

type Repository interface {
	Create(ctx context.Context, category *model.Category) error
	FindByID(ctx context.Context, id string) (*model.Category, error)
	FindBySlug(ctx context.Context, slug string) (*model.Category, error)
	FindAll(ctx context.Context, filters *dto.CategoryFilters) ([]model.Category, int, error)
	Update(ctx context.Context, category *model.Category) error
	Delete(ctx context.Context, id string) error
	CountChildren(ctx context.Context, id string) (int, error)
	CountProducts(ctx context.Context, id string) (int, error)
}
