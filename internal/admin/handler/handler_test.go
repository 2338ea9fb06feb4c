package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/fekuna/omnipos-commerce/internal/admin/dto"
	"github.com/fekuna/omnipos-commerce/internal/admin/mock"
	"github.com/fekuna/omnipos-commerce/internal/auth"
	"github.com/fekuna/omnipos-commerce/internal/middleware"
	"github.com/fekuna/omnipos-commerce/internal/model"
	"github.com/fekuna/omnipos-commerce/pkg/logger"
	"github.com/fekuna/omnipos-commerce/pkg/token"
	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminLoginAndMe(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mock.NewMockUseCase(ctrl)

	uc.EXPECT().Login(gomock.Any(), gomock.Any()).Return(&dto.AuthResult{Token: "admin-signed", Admin: &model.Admin{Name: "Ola"}}, nil)
	uc.EXPECT().GetMe(gomock.Any(), "a1").Return(&model.Admin{Name: "Ola"}, nil)

	eh := middleware.NewErrorHandler(logger.NewNop())
	h := NewAdminHandler(uc, &auth.CookieConfig{MaxAge: time.Hour}, logger.NewNop())
	r := chi.NewRouter()
	r.Post("/auth/admin/login", eh.Wrap(h.Login))
	r.Get("/auth/admin/me", eh.Wrap(h.Me))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/auth/admin/login", strings.NewReader(`{"email":"ola@omnipos.no","password":"superhemmelig"}`)))
	require.Equal(t, http.StatusOK, rec.Code)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, auth.AdminCookie, cookies[0].Name)

	// a user principal is not an admin
	req := httptest.NewRequest(http.MethodGet, "/auth/admin/me", nil)
	req = req.WithContext(auth.WithPrincipal(req.Context(), &auth.Principal{ID: "u1", Role: token.RoleUser}))
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/auth/admin/me", nil)
	req = req.WithContext(auth.WithPrincipal(req.Context(), &auth.Principal{ID: "a1", Role: token.RoleAdmin}))
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
