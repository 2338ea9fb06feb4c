package handler

import (
	"net/http"
	"strings"

	"github.com/fekuna/omnipos-commerce/internal/auth"
	"github.com/fekuna/omnipos-commerce/internal/model"
	"github.com/fekuna/omnipos-commerce/internal/order"
	"github.com/fekuna/omnipos-commerce/internal/order/dto"
	"github.com/fekuna/omnipos-commerce/pkg/apperror"
	"github.com/fekuna/omnipos-commerce/pkg/logger"
	"github.com/fekuna/omnipos-commerce/pkg/request"
	"github.com/fekuna/omnipos-commerce/pkg/response"
	"github.com/go-chi/chi/v5"
)

type OrderHandler struct {
	uc     order.UseCase
	logger logger.ZapLogger
}

func NewOrderHandler(uc order.UseCase, log logger.ZapLogger) *OrderHandler {
	return &OrderHandler{uc: uc, logger: log}
}

func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) error {
	userID := auth.GetUserID(r.Context())
	if userID == "" {
		return apperror.Unauthorized("Not authorized")
	}

	var input dto.CreateOrderInput
	if err := request.Decode(r, &input); err != nil {
		return err
	}

	o, err := h.uc.CreateOrder(r.Context(), userID, &input)
	if err != nil {
		return err
	}
	response.JSON(w, http.StatusCreated, "Order created", o)
	return nil
}

func (h *OrderHandler) ListMyOrders(w http.ResponseWriter, r *http.Request) error {
	userID := auth.GetUserID(r.Context())
	if userID == "" {
		return apperror.Unauthorized("Not authorized")
	}

	filters := &dto.OrderFilters{
		UserID: userID,
		Status: model.OrderStatus(r.URL.Query().Get("status")),
	}
	filters.Page, filters.PageSize = request.Pagination(r)
	return h.list(w, r, filters)
}

func (h *OrderHandler) GetMyOrder(w http.ResponseWriter, r *http.Request) error {
	userID := auth.GetUserID(r.Context())
	if userID == "" {
		return apperror.Unauthorized("Not authorized")
	}

	o, err := h.uc.GetUserOrder(r.Context(), userID, chi.URLParam(r, "id"))
	if err != nil {
		return err
	}
	response.JSON(w, http.StatusOK, "Order fetched", o)
	return nil
}

func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) error {
	q := r.URL.Query()
	filters := &dto.OrderFilters{
		UserID:      q.Get("user_id"),
		Status:      model.OrderStatus(q.Get("status")),
		OrderNumber: strings.TrimSpace(q.Get("q")),
	}
	filters.Page, filters.PageSize = request.Pagination(r)
	return h.list(w, r, filters)
}

func (h *OrderHandler) list(w http.ResponseWriter, r *http.Request, filters *dto.OrderFilters) error {
	orders, count, err := h.uc.ListOrders(r.Context(), filters)
	if err != nil {
		return err
	}
	response.JSON(w, http.StatusOK, "Orders fetched", response.NewPage(orders, count, filters.Page, filters.PageSize))
	return nil
}

func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) error {
	o, err := h.uc.GetOrder(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		return err
	}
	response.JSON(w, http.StatusOK, "Order fetched", o)
	return nil
}

func (h *OrderHandler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) error {
	var input dto.UpdateStatusInput
	if err := request.Decode(r, &input); err != nil {
		return err
	}
	input.ID = chi.URLParam(r, "id")

	o, err := h.uc.UpdateOrderStatus(r.Context(), &input)
	if err != nil {
		return err
	}
	response.JSON(w, http.StatusOK, "Order status updated", o)
	return nil
}
