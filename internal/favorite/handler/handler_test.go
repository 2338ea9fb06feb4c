package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fekuna/omnipos-commerce/internal/auth"
	"github.com/fekuna/omnipos-commerce/internal/favorite/mock"
	"github.com/fekuna/omnipos-commerce/internal/middleware"
	"github.com/fekuna/omnipos-commerce/internal/model"
	"github.com/fekuna/omnipos-commerce/pkg/logger"
	"github.com/fekuna/omnipos-commerce/pkg/token"
	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func TestFavoriteRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mock.NewMockUseCase(ctrl)
	uc.EXPECT().AddFavorite(gomock.Any(), "u1", "p1").Return(&model.Favorite{ProductID: "p1"}, nil)
	uc.EXPECT().ListFavorites(gomock.Any(), "u1").Return([]model.Favorite{}, nil)

	eh := middleware.NewErrorHandler(logger.NewNop())
	h := NewFavoriteHandler(uc, logger.NewNop())
	r := chi.NewRouter()
	r.Get("/favorites", eh.Wrap(h.ListFavorites))
	r.Post("/favorites/{productID}", eh.Wrap(h.AddFavorite))

	withUser := func(req *http.Request) *http.Request {
		return req.WithContext(auth.WithPrincipal(req.Context(), &auth.Principal{ID: "u1", Role: token.RoleUser}))
	}

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, withUser(httptest.NewRequest(http.MethodPost, "/favorites/p1", nil)))
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, withUser(httptest.NewRequest(http.MethodGet, "/favorites", nil)))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"data":[]`)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/favorites", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
