package usecase

import (
	"context"
	"net/http"
	"testing"

	"github.com/fekuna/omnipos-commerce/internal/favorite/mock"
	"github.com/fekuna/omnipos-commerce/internal/model"
	"github.com/fekuna/omnipos-commerce/pkg/apperror"
	"github.com/fekuna/omnipos-commerce/pkg/logger"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUseCase(t *testing.T) (*mock.MockRepository, *mock.MockProductFinder, *favoriteUseCase) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockRepository(ctrl)
	products := mock.NewMockProductFinder(ctrl)
	return repo, products, NewFavoriteUseCase(repo, products, logger.NewNop()).(*favoriteUseCase)
}

func TestListFavoritesAttachesProducts(t *testing.T) {
	repo, products, uc := newUseCase(t)
	repo.EXPECT().ListByUser(gomock.Any(), "u1").Return([]model.Favorite{
		{UserID: "u1", ProductID: "p1"},
		{UserID: "u1", ProductID: "gone"},
	}, nil)
	products.EXPECT().FindByIDs(gomock.Any(), []string{"p1", "gone"}).Return([]model.Product{
		{BaseModel: model.BaseModel{ID: "p1"}, Name: "Kaffe"},
	}, nil)

	favs, err := uc.ListFavorites(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, favs, 1)
	require.NotNil(t, favs[0].Product)
	assert.Equal(t, "Kaffe", favs[0].Product.Name)
}

func TestAddFavoriteUnknownProduct(t *testing.T) {
	_, products, uc := newUseCase(t)
	products.EXPECT().FindByID(gomock.Any(), "ghost").Return(nil, nil)

	_, err := uc.AddFavorite(context.Background(), "u1", "ghost")
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusNotFound, appErr.StatusCode)
}

func TestAddFavorite(t *testing.T) {
	repo, products, uc := newUseCase(t)
	products.EXPECT().FindByID(gomock.Any(), "p1").Return(&model.Product{BaseModel: model.BaseModel{ID: "p1"}}, nil)
	repo.EXPECT().Add(gomock.Any(), gomock.Any()).Return(nil)

	fav, err := uc.AddFavorite(context.Background(), "u1", "p1")
	require.NoError(t, err)
	assert.Equal(t, "u1", fav.UserID)
	assert.NotEmpty(t, fav.ID)
}

func TestRemoveFavoriteMissing(t *testing.T) {
	repo, _, uc := newUseCase(t)
	repo.EXPECT().Remove(gomock.Any(), "u1", "p1").Return(false, nil)

	err := uc.RemoveFavorite(context.Background(), "u1", "p1")
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusNotFound, appErr.StatusCode)
}
