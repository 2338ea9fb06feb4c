package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/fekuna/omnipos-commerce/internal/auth"
	"github.com/fekuna/omnipos-commerce/internal/middleware"
	"github.com/fekuna/omnipos-commerce/internal/model"
	"github.com/fekuna/omnipos-commerce/internal/user/dto"
	"github.com/fekuna/omnipos-commerce/internal/user/mock"
	"github.com/fekuna/omnipos-commerce/pkg/apperror"
	"github.com/fekuna/omnipos-commerce/pkg/logger"
	"github.com/fekuna/omnipos-commerce/pkg/token"
	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cookieCfg = &auth.CookieConfig{Domain: "localhost", MaxAge: time.Hour}

func newRouter(h *UserHandler) http.Handler {
	eh := middleware.NewErrorHandler(logger.NewNop())
	r := chi.NewRouter()
	r.Post("/auth/register", eh.Wrap(h.Register))
	r.Post("/auth/login", eh.Wrap(h.Login))
	r.Post("/auth/logout", eh.Wrap(h.Logout))
	r.Get("/auth/me", eh.Wrap(h.Me))
	r.Get("/auth/verify", eh.Wrap(h.VerifyEmail))
	r.Get("/customers", eh.Wrap(h.ListCustomers))
	r.Patch("/customers/{id}/approve", eh.Wrap(h.ApproveCustomer))
	r.Delete("/customers/{id}", eh.Wrap(h.DeleteCustomer))
	return r
}

func TestLoginSetsCookie(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mock.NewMockUseCase(ctrl)
	uc.EXPECT().Login(gomock.Any(), &dto.LoginInput{Email: "kari@firma.no", Password: "hemmelig123"}).
		Return(&dto.AuthResult{Token: "signed", User: &model.User{Email: "kari@firma.no"}}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"email":"kari@firma.no","password":"hemmelig123"}`))
	newRouter(NewUserHandler(uc, cookieCfg, logger.NewNop())).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, auth.UserCookie, cookies[0].Name)
	assert.Equal(t, "signed", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
}

func TestLoginUnapproved(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mock.NewMockUseCase(ctrl)
	uc.EXPECT().Login(gomock.Any(), gomock.Any()).Return(nil, apperror.Unauthorized("Your account is awaiting approval"))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"email":"kari@firma.no","password":"x"}`))
	newRouter(NewUserHandler(uc, cookieCfg, logger.NewNop())).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, rec.Result().Cookies())
	assert.Contains(t, rec.Body.String(), "awaiting approval")
}

func TestRegisterValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mock.NewMockUseCase(ctrl)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(`{"email":"not-an-email","password":"short"}`))
	newRouter(NewUserHandler(uc, cookieCfg, logger.NewNop())).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"error":"Validation"`)
}

func TestLogoutRevokesAndClearsCookie(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mock.NewMockUseCase(ctrl)

	exp := time.Now().Add(time.Hour)
	uc.EXPECT().Logout(gomock.Any(), "jti-1", exp).Return(nil)

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	req = req.WithContext(auth.WithPrincipal(req.Context(), &auth.Principal{ID: "u1", Role: token.RoleUser, TokenID: "jti-1", ExpiresAt: exp}))
	rec := httptest.NewRecorder()
	newRouter(NewUserHandler(uc, cookieCfg, logger.NewNop())).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, -1, cookies[0].MaxAge)
}

func TestMeRequiresUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mock.NewMockUseCase(ctrl)
	uc.EXPECT().GetMe(gomock.Any(), "u1").Return(&model.User{Name: "Kari"}, nil)

	h := newRouter(NewUserHandler(uc, cookieCfg, logger.NewNop()))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/auth/me", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req = req.WithContext(auth.WithPrincipal(context.Background(), &auth.Principal{ID: "u1", Role: token.RoleUser}))
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Kari")
}

func TestListCustomersFilters(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mock.NewMockUseCase(ctrl)
	uc.EXPECT().ListCustomers(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, f *dto.UserFilters) ([]model.User, int, error) {
			assert.Equal(t, "firma", f.Search)
			require.NotNil(t, f.IsApproved)
			assert.False(t, *f.IsApproved)
			return []model.User{{Name: "Kari"}}, 1, nil
		})

	rec := httptest.NewRecorder()
	newRouter(NewUserHandler(uc, cookieCfg, logger.NewNop())).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/customers?q=firma&is_approved=false", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total":1`)
}

func TestApproveCustomer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mock.NewMockUseCase(ctrl)
	uc.EXPECT().ApproveCustomer(gomock.Any(), "u1").Return(&model.User{IsApproved: true}, nil)

	rec := httptest.NewRecorder()
	newRouter(NewUserHandler(uc, cookieCfg, logger.NewNop())).ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, "/customers/u1/approve", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"is_approved":true`)
}
