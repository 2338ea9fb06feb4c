package handler

import (
	"net/http"

	"github.com/fekuna/omnipos-commerce/internal/category"
	"github.com/fekuna/omnipos-commerce/internal/category/dto"
	"github.com/fekuna/omnipos-commerce/pkg/logger"
	"github.com/fekuna/omnipos-commerce/pkg/request"
	"github.com/fekuna/omnipos-commerce/pkg/response"
	"github.com/go-chi/chi/v5"
)

type CategoryHandler struct {
	uc     category.UseCase
	logger logger.ZapLogger
}

func NewCategoryHandler(uc category.UseCase, log logger.ZapLogger) *CategoryHandler {
	return &CategoryHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *CategoryHandler) CreateCategory(w http.ResponseWriter, r *http.Request) error {
	var input dto.CreateCategoryInput
	if err := request.Decode(r, &input); err != nil {
		return err
	}

	cat, err := h.uc.CreateCategory(r.Context(), &input)
	if err != nil {
		return err
	}
	response.JSON(w, http.StatusCreated, "Category created", cat)
	return nil
}

func (h *CategoryHandler) GetCategory(w http.ResponseWriter, r *http.Request) error {
	cat, err := h.uc.GetCategory(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		return err
	}
	response.JSON(w, http.StatusOK, "Category fetched", cat)
	return nil
}

// ListCategories serves ?tree=true as a nested tree and everything else as a flat page.
func (h *CategoryHandler) ListCategories(w http.ResponseWriter, r *http.Request) error {
	q := r.URL.Query()
	filters := &dto.CategoryFilters{Tree: request.QueryBool(r, "tree")}
	if q.Has("parent_id") {
		parentID := q.Get("parent_id")
		filters.ParentID = &parentID
	}
	if q.Has("is_active") {
		active := request.QueryBool(r, "is_active")
		filters.IsActive = &active
	}
	if q.Has("page") || q.Has("page_size") {
		filters.Page, filters.PageSize = request.Pagination(r)
	}

	cats, count, err := h.uc.ListCategories(r.Context(), filters)
	if err != nil {
		return err
	}
	response.JSON(w, http.StatusOK, "Categories fetched", response.NewPage(cats, count, filters.Page, filters.PageSize))
	return nil
}

func (h *CategoryHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) error {
	var input dto.UpdateCategoryInput
	if err := request.Decode(r, &input); err != nil {
		return err
	}
	input.ID = chi.URLParam(r, "id")

	cat, err := h.uc.UpdateCategory(r.Context(), &input)
	if err != nil {
		return err
	}
	response.JSON(w, http.StatusOK, "Category updated", cat)
	return nil
}

func (h *CategoryHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) error {
	if err := h.uc.DeleteCategory(r.Context(), chi.URLParam(r, "id")); err != nil {
		return err
	}
	response.JSON(w, http.StatusOK, "Category deleted")
	return nil
}
