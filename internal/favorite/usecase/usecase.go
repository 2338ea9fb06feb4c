package usecase

import (
	"context"
	"time"

	"github.com/fekuna/omnipos-commerce/internal/favorite"
	"github.com/fekuna/omnipos-commerce/internal/model"
	"github.com/fekuna/omnipos-commerce/pkg/apperror"
	"github.com/fekuna/omnipos-commerce/pkg/logger"
	"github.com/google/uuid"
)

type favoriteUseCase struct {
	repo     favorite.Repository
	products favorite.ProductFinder
	logger   logger.ZapLogger
}

func NewFavoriteUseCase(repo favorite.Repository, products favorite.ProductFinder, log logger.ZapLogger) favorite.UseCase {
	return &favoriteUseCase{repo: repo, products: products, logger: log}
}

// ListFavorites returns the user's favorites with their products attached.
// Favorites whose product is gone are left out.
func (uc *favoriteUseCase) ListFavorites(ctx context.Context, userID string) ([]model.Favorite, error) {
	favs, err := uc.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(favs) == 0 {
		return favs, nil
	}

	ids := make([]string, 0, len(favs))
	for _, f := range favs {
		ids = append(ids, f.ProductID)
	}
	products, err := uc.products.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*model.Product, len(products))
	for i := range products {
		byID[products[i].ID] = &products[i]
	}

	out := make([]model.Favorite, 0, len(favs))
	for _, f := range favs {
		if p, ok := byID[f.ProductID]; ok {
			f.Product = p
			out = append(out, f)
		}
	}
	return out, nil
}

func (uc *favoriteUseCase) AddFavorite(ctx context.Context, userID, productID string) (*model.Favorite, error) {
	p, err := uc.products.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperror.NotFound("Product not found")
	}

	now := time.Now()
	fav := &model.Favorite{
		BaseModel: model.BaseModel{
			ID:        uuid.New().String(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:    userID,
		ProductID: productID,
		Product:   p,
	}
	if err := uc.repo.Add(ctx, fav); err != nil {
		return nil, err
	}
	return fav, nil
}

func (uc *favoriteUseCase) RemoveFavorite(ctx context.Context, userID, productID string) error {
	removed, err := uc.repo.Remove(ctx, userID, productID)
	if err != nil {
		return err
	}
	if !removed {
		return apperror.NotFound("Favorite not found")
	}
	return nil
}
