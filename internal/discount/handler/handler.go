package handler

import (
	"net/http"

	"github.com/fekuna/omnipos-commerce/internal/discount"
	"github.com/fekuna/omnipos-commerce/internal/discount/dto"
	"github.com/fekuna/omnipos-commerce/pkg/logger"
	"github.com/fekuna/omnipos-commerce/pkg/request"
	"github.com/fekuna/omnipos-commerce/pkg/response"
	"github.com/go-chi/chi/v5"
)

type DiscountHandler struct {
	uc     discount.UseCase
	logger logger.ZapLogger
}

func NewDiscountHandler(uc discount.UseCase, log logger.ZapLogger) *DiscountHandler {
	return &DiscountHandler{uc: uc, logger: log}
}

func filtersFromQuery(r *http.Request) *dto.DiscountFilters {
	f := &dto.DiscountFilters{
		ProductID:  r.URL.Query().Get("product_id"),
		ActiveOnly: request.QueryBool(r, "active"),
	}
	f.Page, f.PageSize = request.Pagination(r)
	return f
}

func (h *DiscountHandler) ListBulkDiscounts(w http.ResponseWriter, r *http.Request) error {
	f := filtersFromQuery(r)
	items, count, err := h.uc.ListBulkDiscounts(r.Context(), f)
	if err != nil {
		return err
	}
	response.JSON(w, http.StatusOK, "Bulk discounts fetched", response.NewPage(items, count, f.Page, f.PageSize))
	return nil
}

func (h *DiscountHandler) CreateBulkDiscount(w http.ResponseWriter, r *http.Request) error {
	var input dto.CreateBulkDiscountInput
	if err := request.Decode(r, &input); err != nil {
		return err
	}
	d, err := h.uc.CreateBulkDiscount(r.Context(), &input)
	if err != nil {
		return err
	}
	response.JSON(w, http.StatusCreated, "Bulk discount created", d)
	return nil
}

func (h *DiscountHandler) UpdateBulkDiscount(w http.ResponseWriter, r *http.Request) error {
	var input dto.UpdateBulkDiscountInput
	if err := request.Decode(r, &input); err != nil {
		return err
	}
	input.ID = chi.URLParam(r, "id")

	d, err := h.uc.UpdateBulkDiscount(r.Context(), &input)
	if err != nil {
		return err
	}
	response.JSON(w, http.StatusOK, "Bulk discount updated", d)
	return nil
}

func (h *DiscountHandler) DeleteBulkDiscount(w http.ResponseWriter, r *http.Request) error {
	if err := h.uc.DeleteBulkDiscount(r.Context(), chi.URLParam(r, "id")); err != nil {
		return err
	}
	response.JSON(w, http.StatusOK, "Bulk discount deleted")
	return nil
}

func (h *DiscountHandler) ListDiscounts(w http.ResponseWriter, r *http.Request) error {
	f := filtersFromQuery(r)
	items, count, err := h.uc.ListDiscounts(r.Context(), f)
	if err != nil {
		return err
	}
	response.JSON(w, http.StatusOK, "Discounts fetched", response.NewPage(items, count, f.Page, f.PageSize))
	return nil
}

func (h *DiscountHandler) CreateDiscount(w http.ResponseWriter, r *http.Request) error {
	var input dto.CreateDiscountInput
	if err := request.Decode(r, &input); err != nil {
		return err
	}
	d, err := h.uc.CreateDiscount(r.Context(), &input)
	if err != nil {
		return err
	}
	response.JSON(w, http.StatusCreated, "Discount created", d)
	return nil
}

func (h *DiscountHandler) UpdateDiscount(w http.ResponseWriter, r *http.Request) error {
	var input dto.UpdateDiscountInput
	if err := request.Decode(r, &input); err != nil {
		return err
	}
	input.ID = chi.URLParam(r, "id")

	d, err := h.uc.UpdateDiscount(r.Context(), &input)
	if err != nil {
		return err
	}
	response.JSON(w, http.StatusOK, "Discount updated", d)
	return nil
}

func (h *DiscountHandler) DeleteDiscount(w http.ResponseWriter, r *http.Request) error {
	if err := h.uc.DeleteDiscount(r.Context(), chi.URLParam(r, "id")); err != nil {
		return err
	}
	response.JSON(w, http.StatusOK, "Discount deleted")
	return nil
}

func (h *DiscountHandler) GetProductDiscounts(w http.ResponseWriter, r *http.Request) error {
	res, err := h.uc.GetProductDiscounts(r.Context(), chi.URLParam(r, "productID"))
	if err != nil {
		return err
	}
	response.JSON(w, http.StatusOK, "Discounts fetched", res)
	return nil
}
