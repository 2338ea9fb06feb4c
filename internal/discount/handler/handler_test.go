package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/fekuna/omnipos-commerce/internal/discount/dto"
	"github.com/fekuna/omnipos-commerce/internal/discount/mock"
	"github.com/fekuna/omnipos-commerce/internal/middleware"
	"github.com/fekuna/omnipos-commerce/internal/model"
	"github.com/fekuna/omnipos-commerce/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const productID = "0b7f8a3e-4c1d-4e4a-9a57-2f0c5d1b9e11"

func newRouter(h *DiscountHandler) http.Handler {
	eh := middleware.NewErrorHandler(logger.NewNop())
	r := chi.NewRouter()
	r.Get("/discounts/bulk", eh.Wrap(h.ListBulkDiscounts))
	r.Post("/discounts/bulk", eh.Wrap(h.CreateBulkDiscount))
	r.Put("/discounts/bulk/{id}", eh.Wrap(h.UpdateBulkDiscount))
	r.Get("/discounts/product/{productID}", eh.Wrap(h.GetProductDiscounts))
	r.Post("/discounts", eh.Wrap(h.CreateDiscount))
	return r
}

func TestCreateBulkDiscount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mock.NewMockUseCase(ctrl)
	uc.EXPECT().CreateBulkDiscount(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, in *dto.CreateBulkDiscountInput) (*model.BulkDiscount, error) {
			assert.Equal(t, 10, in.MinQuantity)
			return &model.BulkDiscount{ProductID: in.ProductID, MinQuantity: 10, DiscountPercent: 5}, nil
		})

	rec := httptest.NewRecorder()
	body := `{"product_id":"` + productID + `","min_quantity":10,"discount_percent":5}`
	newRouter(NewDiscountHandler(uc, logger.NewNop())).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/discounts/bulk", strings.NewReader(body)))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestCreateDiscountRejectsPercentAbove100(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mock.NewMockUseCase(ctrl)

	rec := httptest.NewRecorder()
	body := `{"product_id":"` + productID + `","discount_percent":150}`
	newRouter(NewDiscountHandler(uc, logger.NewNop())).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/discounts", strings.NewReader(body)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListBulkDiscountsFilters(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mock.NewMockUseCase(ctrl)
	uc.EXPECT().ListBulkDiscounts(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, f *dto.DiscountFilters) ([]model.BulkDiscount, int, error) {
			assert.Equal(t, "p1", f.ProductID)
			assert.True(t, f.ActiveOnly)
			return nil, 0, nil
		})

	rec := httptest.NewRecorder()
	newRouter(NewDiscountHandler(uc, logger.NewNop())).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/discounts/bulk?product_id=p1&active=true", nil))
	require.Equal(t, http.StatusOK, rec.Code)
}
