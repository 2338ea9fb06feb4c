package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/fekuna/omnipos-commerce/internal/middleware"
	"github.com/fekuna/omnipos-commerce/internal/model"
	"github.com/fekuna/omnipos-commerce/internal/product/dto"
	"github.com/fekuna/omnipos-commerce/internal/product/mock"
	"github.com/fekuna/omnipos-commerce/pkg/apperror"
	"github.com/fekuna/omnipos-commerce/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(h *ProductHandler) http.Handler {
	eh := middleware.NewErrorHandler(logger.NewNop())
	r := chi.NewRouter()
	r.Get("/products", eh.Wrap(h.ListProducts))
	r.Get("/products/admin", eh.Wrap(h.ListAllProducts))
	r.Post("/products", eh.Wrap(h.CreateProduct))
	r.Get("/products/slug/{slug}", eh.Wrap(h.GetProductBySlug))
	r.Get("/products/{id}", eh.Wrap(h.GetProduct))
	r.Put("/products/{id}", eh.Wrap(h.UpdateProduct))
	r.Delete("/products/{id}", eh.Wrap(h.DeleteProduct))
	return r
}

func TestListProductsParsesQuery(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mock.NewMockUseCase(ctrl)

	uc.EXPECT().ListProducts(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, f *dto.ProductFilters) ([]model.Product, int, error) {
			assert.Equal(t, "cat-1", f.CategoryID)
			assert.Equal(t, "kaffe", f.SearchQuery)
			assert.Equal(t, "price", f.SortBy)
			assert.Equal(t, "asc", f.SortOrder)
			assert.Equal(t, 2, f.Page)
			assert.Equal(t, 5, f.PageSize)
			require.NotNil(t, f.MaxPrice)
			assert.Equal(t, 100.0, *f.MaxPrice)
			assert.Nil(t, f.MinPrice)
			require.NotNil(t, f.IsActive)
			assert.True(t, *f.IsActive)
			return nil, 0, nil
		})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/products?category_id=cat-1&q=kaffe&sort_by=price&sort_order=asc&page=2&page_size=5&max_price=100", nil)
	newRouter(NewProductHandler(uc, logger.NewNop())).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"items":[]`)
}

func TestListProductsIgnoresInactiveFilterOnStorefront(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mock.NewMockUseCase(ctrl)

	uc.EXPECT().ListProducts(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, f *dto.ProductFilters) ([]model.Product, int, error) {
			require.NotNil(t, f.IsActive)
			assert.True(t, *f.IsActive)
			return nil, 0, nil
		})

	rec := httptest.NewRecorder()
	newRouter(NewProductHandler(uc, logger.NewNop())).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/products?is_active=false", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestListAllProductsHonoursActiveFilter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mock.NewMockUseCase(ctrl)

	gomock.InOrder(
		uc.EXPECT().ListProducts(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, f *dto.ProductFilters) ([]model.Product, int, error) {
				require.NotNil(t, f.IsActive)
				assert.False(t, *f.IsActive)
				return nil, 0, nil
			}),
		uc.EXPECT().ListProducts(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, f *dto.ProductFilters) ([]model.Product, int, error) {
				assert.Nil(t, f.IsActive)
				return nil, 0, nil
			}),
	)

	router := newRouter(NewProductHandler(uc, logger.NewNop()))
	for _, path := range []string{"/products/admin?is_active=false", "/products/admin"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
}

func TestGetProductHidesInactive(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mock.NewMockUseCase(ctrl)
	uc.EXPECT().GetProduct(gomock.Any(), "p1").Return(&model.Product{Name: "Skjult", IsActive: false}, nil)
	uc.EXPECT().GetProductBySlug(gomock.Any(), "skjult").Return(&model.Product{Slug: "skjult", IsActive: false}, nil)
	uc.EXPECT().GetProduct(gomock.Any(), "p2").Return(&model.Product{Name: "Kaffe", IsActive: true}, nil)

	router := newRouter(NewProductHandler(uc, logger.NewNop()))
	for path, want := range map[string]int{
		"/products/p1":          http.StatusNotFound,
		"/products/slug/skjult": http.StatusNotFound,
		"/products/p2":          http.StatusOK,
	} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, want, rec.Code, path)
	}
}

func TestGetProductBySlugNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mock.NewMockUseCase(ctrl)
	uc.EXPECT().GetProductBySlug(gomock.Any(), "ukjent").Return(nil, apperror.NotFound("Product not found"))

	rec := httptest.NewRecorder()
	newRouter(NewProductHandler(uc, logger.NewNop())).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/products/slug/ukjent", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":false`)
}

func TestCreateProductRejectsNegativePrice(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mock.NewMockUseCase(ctrl)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/products", strings.NewReader(`{"sku":"A","name":"B","price":-1}`))
	newRouter(NewProductHandler(uc, logger.NewNop())).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "price")
}
