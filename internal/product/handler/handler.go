package handler

import (
	"net/http"
	"strconv"

	"github.com/fekuna/omnipos-commerce/internal/product"
	"github.com/fekuna/omnipos-commerce/internal/product/dto"
	"github.com/fekuna/omnipos-commerce/pkg/apperror"
	"github.com/fekuna/omnipos-commerce/pkg/logger"
	"github.com/fekuna/omnipos-commerce/pkg/request"
	"github.com/fekuna/omnipos-commerce/pkg/response"
	"github.com/go-chi/chi/v5"
)

type ProductHandler struct {
	uc     product.UseCase
	logger logger.ZapLogger
}

func NewProductHandler(uc product.UseCase, log logger.ZapLogger) *ProductHandler {
	return &ProductHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) error {
	var input dto.CreateProductInput
	if err := request.Decode(r, &input); err != nil {
		return err
	}

	p, err := h.uc.CreateProduct(r.Context(), &input)
	if err != nil {
		return err
	}
	response.JSON(w, http.StatusCreated, "Product created", p)
	return nil
}

// GetProduct serves the storefront; inactive products are hidden.
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) error {
	p, err := h.uc.GetProduct(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		return err
	}
	if !p.IsActive {
		return apperror.NotFound("Product not found")
	}
	response.JSON(w, http.StatusOK, "Product fetched", p)
	return nil
}

func (h *ProductHandler) GetProductBySlug(w http.ResponseWriter, r *http.Request) error {
	p, err := h.uc.GetProductBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		return err
	}
	if !p.IsActive {
		return apperror.NotFound("Product not found")
	}
	response.JSON(w, http.StatusOK, "Product fetched", p)
	return nil
}

// ListProducts lists active products only, whatever is_active says.
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) error {
	filters := parseFilters(r)
	active := true
	filters.IsActive = &active
	return h.list(w, r, filters)
}

// ListAllProducts is the admin listing; is_active is an optional filter.
func (h *ProductHandler) ListAllProducts(w http.ResponseWriter, r *http.Request) error {
	filters := parseFilters(r)
	if r.URL.Query().Has("is_active") {
		active := request.QueryBool(r, "is_active")
		filters.IsActive = &active
	}
	return h.list(w, r, filters)
}

func (h *ProductHandler) list(w http.ResponseWriter, r *http.Request, filters *dto.ProductFilters) error {
	products, count, err := h.uc.ListProducts(r.Context(), filters)
	if err != nil {
		return err
	}
	response.JSON(w, http.StatusOK, "Products fetched", response.NewPage(products, count, filters.Page, filters.PageSize))
	return nil
}

func parseFilters(r *http.Request) *dto.ProductFilters {
	q := r.URL.Query()
	filters := &dto.ProductFilters{
		CategoryID:  q.Get("category_id"),
		SearchQuery: q.Get("q"),
		SortBy:      q.Get("sort_by"),
		SortOrder:   q.Get("sort_order"),
	}
	filters.Page, filters.PageSize = request.Pagination(r)
	if v, err := strconv.ParseFloat(q.Get("min_price"), 64); err == nil {
		filters.MinPrice = &v
	}
	if v, err := strconv.ParseFloat(q.Get("max_price"), 64); err == nil {
		filters.MaxPrice = &v
	}
	return filters
}

func (h *ProductHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) error {
	var input dto.UpdateProductInput
	if err := request.Decode(r, &input); err != nil {
		return err
	}
	input.ID = chi.URLParam(r, "id")

	p, err := h.uc.UpdateProduct(r.Context(), &input)
	if err != nil {
		return err
	}
	response.JSON(w, http.StatusOK, "Product updated", p)
	return nil
}

func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) error {
	if err := h.uc.DeleteProduct(r.Context(), chi.URLParam(r, "id")); err != nil {
		return err
	}
	response.JSON(w, http.StatusOK, "Product deleted")
	return nil
}
