package handler

import (
	"net/http"
	"time"

	"github.com/fekuna/omnipos-commerce/internal/auth"
	"github.com/fekuna/omnipos-commerce/internal/inventory"
	"github.com/fekuna/omnipos-commerce/internal/inventory/dto"
	"github.com/fekuna/omnipos-commerce/pkg/apperror"
	"github.com/fekuna/omnipos-commerce/pkg/logger"
	"github.com/fekuna/omnipos-commerce/pkg/request"
	"github.com/fekuna/omnipos-commerce/pkg/response"
	"github.com/go-chi/chi/v5"
)

type InventoryHandler struct {
	uc         inventory.UseCase
	logger     logger.ZapLogger
	expiryDays int
}

// NewInventoryHandler builds the handler. expiryDays is the default window for /inventory/expiring.
func NewInventoryHandler(uc inventory.UseCase, log logger.ZapLogger, expiryDays int) *InventoryHandler {
	return &InventoryHandler{
		uc:         uc,
		logger:     log,
		expiryDays: expiryDays,
	}
}

func (h *InventoryHandler) GetProductInventory(w http.ResponseWriter, r *http.Request) error {
	inv, err := h.uc.GetProductInventory(r.Context(), chi.URLParam(r, "productID"))
	if err != nil {
		return err
	}
	response.JSON(w, http.StatusOK, "Inventory fetched", inv)
	return nil
}

func (h *InventoryHandler) UpdateInventory(w http.ResponseWriter, r *http.Request) error {
	var input dto.UpdateInventoryInput
	if err := request.Decode(r, &input); err != nil {
		return err
	}
	input.ProductID = chi.URLParam(r, "productID")

	inv, err := h.uc.UpdateInventory(r.Context(), &input)
	if err != nil {
		return err
	}
	response.JSON(w, http.StatusOK, "Inventory updated", inv)
	return nil
}

func (h *InventoryHandler) AdjustInventory(w http.ResponseWriter, r *http.Request) error {
	var input dto.AdjustInventoryInput
	if err := request.Decode(r, &input); err != nil {
		return err
	}
	input.ProductID = chi.URLParam(r, "productID")
	input.UserID = auth.GetAdminID(r.Context())

	inv, err := h.uc.AdjustInventory(r.Context(), &input)
	if err != nil {
		return err
	}
	response.JSON(w, http.StatusOK, "Inventory adjusted", inv)
	return nil
}

func (h *InventoryHandler) ListLowStock(w http.ResponseWriter, r *http.Request) error {
	page, pageSize := request.Pagination(r)
	items, count, err := h.uc.ListLowStock(r.Context(), page, pageSize)
	if err != nil {
		return err
	}
	response.JSON(w, http.StatusOK, "Low stock fetched", response.NewPage(items, count, page, pageSize))
	return nil
}

func (h *InventoryHandler) ListExpiring(w http.ResponseWriter, r *http.Request) error {
	page, pageSize := request.Pagination(r)
	days := request.QueryInt(r, "days", h.expiryDays)

	items, count, err := h.uc.ListExpiring(r.Context(), days, page, pageSize)
	if err != nil {
		return err
	}
	response.JSON(w, http.StatusOK, "Expiring stock fetched", response.NewPage(items, count, page, pageSize))
	return nil
}

func (h *InventoryHandler) ListMovements(w http.ResponseWriter, r *http.Request) error {
	q := r.URL.Query()
	filters := &dto.MovementFilters{
		ProductID:    q.Get("product_id"),
		MovementType: q.Get("type"),
	}
	filters.Page, filters.PageSize = request.Pagination(r)

	var err error
	if filters.StartDate, err = parseDate(q.Get("from")); err != nil {
		return err
	}
	if filters.EndDate, err = parseDate(q.Get("to")); err != nil {
		return err
	}
	if filters.EndDate != nil {
		end := filters.EndDate.AddDate(0, 0, 1) // inclusive of the whole day
		filters.EndDate = &end
	}

	items, count, err := h.uc.ListMovements(r.Context(), filters)
	if err != nil {
		return err
	}
	response.JSON(w, http.StatusOK, "Movements fetched", response.NewPage(items, count, filters.Page, filters.PageSize))
	return nil
}

func parseDate(v string) (*time.Time, error) {
	if v == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return nil, apperror.BadRequest("Dates must be formatted YYYY-MM-DD")
	}
	return &t, nil
}
