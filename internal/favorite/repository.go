package favorite

import (
	"context"

	"github.com/fekuna/omnipos-commerce/internal/model"
)

//go:generate mockgen -source=repository.go -destination=mock/repository_mock.go -package=mock

type Repository interface {
	// Add is idempotent: favoriting twice keeps the first row.
	Add(ctx context.Context, fav *model.Favorite) error
	Remove(ctx context.Context, userID, productID string) (bool, error)
	ListByUser(ctx context.Context, userID string) ([]model.Favorite, error)
}

type ProductFinder interface {
	FindByID(ctx context.Context, id string) (*model.Product, error)
	FindByIDs(ctx context.Context, ids []string) ([]model.Product, error)
}
