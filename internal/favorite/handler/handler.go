package handler

import (
	"net/http"

	"github.com/fekuna/omnipos-commerce/internal/auth"
	"github.com/fekuna/omnipos-commerce/internal/favorite"
	"github.com/fekuna/omnipos-commerce/pkg/apperror"
	"github.com/fekuna/omnipos-commerce/pkg/logger"
	"github.com/fekuna/omnipos-commerce/pkg/response"
	"github.com/go-chi/chi/v5"
)

type FavoriteHandler struct {
	uc     favorite.UseCase
	logger logger.ZapLogger
}

func NewFavoriteHandler(uc favorite.UseCase, log logger.ZapLogger) *FavoriteHandler {
	return &FavoriteHandler{uc: uc, logger: log}
}

func (h *FavoriteHandler) ListFavorites(w http.ResponseWriter, r *http.Request) error {
	userID := auth.GetUserID(r.Context())
	if userID == "" {
		return apperror.Unauthorized("Not authorized")
	}
	favs, err := h.uc.ListFavorites(r.Context(), userID)
	if err != nil {
		return err
	}
	response.JSON(w, http.StatusOK, "Favorites fetched", favs)
	return nil
}

func (h *FavoriteHandler) AddFavorite(w http.ResponseWriter, r *http.Request) error {
	userID := auth.GetUserID(r.Context())
	if userID == "" {
		return apperror.Unauthorized("Not authorized")
	}
	fav, err := h.uc.AddFavorite(r.Context(), userID, chi.URLParam(r, "productID"))
	if err != nil {
		return err
	}
	response.JSON(w, http.StatusCreated, "Added to favorites", fav)
	return nil
}

func (h *FavoriteHandler) RemoveFavorite(w http.ResponseWriter, r *http.Request) error {
	userID := auth.GetUserID(r.Context())
	if userID == "" {
		return apperror.Unauthorized("Not authorized")
	}
	if err := h.uc.RemoveFavorite(r.Context(), userID, chi.URLParam(r, "productID")); err != nil {
		return err
	}
	response.JSON(w, http.StatusOK, "Removed from favorites")
	return nil
}
