package handler

import (
	"net/http"
	"strings"

	"github.com/fekuna/omnipos-commerce/internal/user/dto"
	"github.com/fekuna/omnipos-commerce/pkg/request"
	"github.com/fekuna/omnipos-commerce/pkg/response"
	"github.com/go-chi/chi/v5"
)

func (h *UserHandler) ListCustomers(w http.ResponseWriter, r *http.Request) error {
	filters := &dto.UserFilters{
		Search: strings.TrimSpace(r.URL.Query().Get("q")),
	}
	if r.URL.Query().Has("is_approved") {
		approved := request.QueryBool(r, "is_approved")
		filters.IsApproved = &approved
	}
	filters.Page, filters.PageSize = request.Pagination(r)

	users, count, err := h.uc.ListCustomers(r.Context(), filters)
	if err != nil {
		return err
	}
	response.JSON(w, http.StatusOK, "Customers fetched", response.NewPage(users, count, filters.Page, filters.PageSize))
	return nil
}

func (h *UserHandler) GetCustomer(w http.ResponseWriter, r *http.Request) error {
	u, err := h.uc.GetCustomer(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		return err
	}
	response.JSON(w, http.StatusOK, "Customer fetched", u)
	return nil
}

func (h *UserHandler) ApproveCustomer(w http.ResponseWriter, r *http.Request) error {
	u, err := h.uc.ApproveCustomer(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		return err
	}
	response.JSON(w, http.StatusOK, "Customer approved", u)
	return nil
}

func (h *UserHandler) DeleteCustomer(w http.ResponseWriter, r *http.Request) error {
	if err := h.uc.DeleteCustomer(r.Context(), chi.URLParam(r, "id")); err != nil {
		return err
	}
	response.JSON(w, http.StatusOK, "Customer deleted")
	return nil
}
