package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/fekuna/omnipos-commerce/internal/auth"
	"github.com/fekuna/omnipos-commerce/internal/middleware"
	"github.com/fekuna/omnipos-commerce/internal/model"
	"github.com/fekuna/omnipos-commerce/internal/order/dto"
	"github.com/fekuna/omnipos-commerce/internal/order/mock"
	"github.com/fekuna/omnipos-commerce/pkg/logger"
	"github.com/fekuna/omnipos-commerce/pkg/token"
	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(h *OrderHandler) http.Handler {
	eh := middleware.NewErrorHandler(logger.NewNop())
	r := chi.NewRouter()
	r.Post("/orders", eh.Wrap(h.CreateOrder))
	r.Get("/orders/me", eh.Wrap(h.ListMyOrders))
	r.Get("/orders/me/{id}", eh.Wrap(h.GetMyOrder))
	r.Get("/orders", eh.Wrap(h.ListOrders))
	r.Patch("/orders/{id}/status", eh.Wrap(h.UpdateOrderStatus))
	return r
}

func asUser(r *http.Request, id string) *http.Request {
	return r.WithContext(auth.WithPrincipal(r.Context(), &auth.Principal{ID: id, Role: token.RoleUser}))
}

func TestCreateOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mock.NewMockUseCase(ctrl)
	uc.EXPECT().CreateOrder(gomock.Any(), "u1", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, in *dto.CreateOrderInput) (*model.Order, error) {
			require.Len(t, in.Items, 1)
			assert.Equal(t, 3, in.Items[0].Quantity)
			return &model.Order{OrderNumber: "ABCDEFGHJK"}, nil
		})

	body := `{"items":[{"product_id":"0b7f8a3e-4c1d-4e4a-9a57-2f0c5d1b9e11","quantity":3}]}`
	rec := httptest.NewRecorder()
	newRouter(NewOrderHandler(uc, logger.NewNop())).ServeHTTP(rec, asUser(httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(body)), "u1"))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "ABCDEFGHJK")
}

func TestCreateOrderRejectsEmptyItems(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mock.NewMockUseCase(ctrl)

	rec := httptest.NewRecorder()
	newRouter(NewOrderHandler(uc, logger.NewNop())).ServeHTTP(rec, asUser(httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(`{"items":[]}`)), "u1"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListMyOrdersScopesToUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mock.NewMockUseCase(ctrl)
	uc.EXPECT().ListOrders(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, f *dto.OrderFilters) ([]model.Order, int, error) {
			assert.Equal(t, "u1", f.UserID)
			return nil, 0, nil
		})

	rec := httptest.NewRecorder()
	newRouter(NewOrderHandler(uc, logger.NewNop())).ServeHTTP(rec, asUser(httptest.NewRequest(http.MethodGet, "/orders/me?user_id=u2", nil), "u1"))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUpdateOrderStatusValidates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mock.NewMockUseCase(ctrl)
	uc.EXPECT().UpdateOrderStatus(gomock.Any(), &dto.UpdateStatusInput{ID: "o1", Status: model.OrderStatusShipped}).
		Return(&model.Order{Status: model.OrderStatusShipped}, nil)

	h := newRouter(NewOrderHandler(uc, logger.NewNop()))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, "/orders/o1/status", strings.NewReader(`{"status":"lost"}`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, "/orders/o1/status", strings.NewReader(`{"status":"shipped"}`)))
	assert.Equal(t, http.StatusOK, rec.Code)
}
