package favorite

import (
	"context"

	"github.com/fekuna/omnipos-commerce/internal/model"
)

//go:generate mockgen -source=usecase.go -destination=mock/usecase_mock.go -package=mock

type UseCase interface {
	ListFavorites(ctx context.Context, userID string) ([]model.Favorite, error)
	AddFavorite(ctx context.Context, userID, productID string) (*model.Favorite, error)
	RemoveFavorite(ctx context.Context, userID, productID string) error
}
