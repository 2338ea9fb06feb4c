package server

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	adminH "github.com/fekuna/omnipos-commerce/internal/admin/handler"
	"github.com/fekuna/omnipos-commerce/internal/auth"
	catH "github.com/fekuna/omnipos-commerce/internal/category/handler"
	discountH "github.com/fekuna/omnipos-commerce/internal/discount/handler"
	exportH "github.com/fekuna/omnipos-commerce/internal/export/handler"
	favoriteH "github.com/fekuna/omnipos-commerce/internal/favorite/handler"
	healthH "github.com/fekuna/omnipos-commerce/internal/health/handler"
	invH "github.com/fekuna/omnipos-commerce/internal/inventory/handler"
	"github.com/fekuna/omnipos-commerce/internal/middleware"
	"github.com/fekuna/omnipos-commerce/internal/model"
	newsletterH "github.com/fekuna/omnipos-commerce/internal/newsletter/handler"
	orderH "github.com/fekuna/omnipos-commerce/internal/order/handler"
	prodH "github.com/fekuna/omnipos-commerce/internal/product/handler"
	settingH "github.com/fekuna/omnipos-commerce/internal/setting/handler"
	settingMock "github.com/fekuna/omnipos-commerce/internal/setting/mock"
	userH "github.com/fekuna/omnipos-commerce/internal/user/handler"
	userMock "github.com/fekuna/omnipos-commerce/internal/user/mock"
	"github.com/fekuna/omnipos-commerce/pkg/logger"
	"github.com/fekuna/omnipos-commerce/pkg/token"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type checkerFunc func(ctx context.Context) error

func (f checkerFunc) Check(ctx context.Context) error { return f(ctx) }

type noRevocations struct{}

func (noRevocations) IsTokenRevoked(context.Context, string) (bool, error) { return false, nil }

type fixture struct {
	router   http.Handler
	maker    *token.JWTMaker
	users    *userMock.MockUseCase
	settings *settingMock.MockUseCase
}

func newFixture(t *testing.T, dbErr error) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := logger.NewNop()

	maker, err := token.NewJWTMaker("a-very-secret-signing-key", "omnipos-commerce")
	require.NoError(t, err)

	users := userMock.NewMockUseCase(ctrl)
	settings := settingMock.NewMockUseCase(ctrl)
	cookie := &auth.CookieConfig{MaxAge: 3600}

	h := &Handlers{
		User:       userH.NewUserHandler(users, cookie, log),
		Admin:      adminH.NewAdminHandler(nil, cookie, log),
		Category:   catH.NewCategoryHandler(nil, log),
		Product:    prodH.NewProductHandler(nil, log),
		Inventory:  invH.NewInventoryHandler(nil, log, 30),
		Discount:   discountH.NewDiscountHandler(nil, log),
		Order:      orderH.NewOrderHandler(nil, log),
		Favorite:   favoriteH.NewFavoriteHandler(nil, log),
		Newsletter: newsletterH.NewNewsletterHandler(nil, log),
		Setting:    settingH.NewSettingHandler(settings, log),
		Export:     exportH.NewExportHandler(nil, log),
		Health:     healthH.NewHealthHandler(checkerFunc(func(context.Context) error { return dbErr }), log),
	}

	admins := middleware.PrincipalLoaderFunc(func(_ context.Context, id string) (*auth.Principal, error) {
		return &auth.Principal{ID: id, Role: token.RoleAdmin}, nil
	})
	errs := middleware.NewErrorHandler(log)
	authn := middleware.NewAuthenticator(errs, maker, noRevocations{}, users, admins, "api-key")

	return &fixture{
		router:   NewRouter(h, errs, authn, log),
		maker:    maker,
		users:    users,
		settings: settings,
	}
}

func TestHealthRoute(t *testing.T) {
	rec := httptest.NewRecorder()
	newFixture(t, nil).router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/check", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	newFixture(t, errors.New("down")).router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/check", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestUnknownRouteKeepsEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	newFixture(t, nil).router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":false`)
}

func TestPublicConfigRoute(t *testing.T) {
	f := newFixture(t, nil)
	f.settings.EXPECT().GetConfig(gomock.Any()).Return(&model.AppConfig{PaletteEnabled: true}, nil)

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/config", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	f := newFixture(t, nil)
	for _, tc := range []struct{ method, path string }{
		{http.MethodPut, "/config"},
		{http.MethodGet, "/orders"},
		{http.MethodPost, "/orders"},
		{http.MethodGet, "/favorites"},
		{http.MethodGet, "/export/users"},
		{http.MethodGet, "/inventory/low-stock"},
		{http.MethodGet, "/products/admin"},
		{http.MethodPost, "/auth/admin/register"},
	} {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			f.router.ServeHTTP(rec, httptest.NewRequest(tc.method, tc.path, nil))
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestUserTokenCannotReachAdminRoutes(t *testing.T) {
	f := newFixture(t, nil)
	f.users.EXPECT().LoadPrincipal(gomock.Any(), "u1").Return(&auth.Principal{ID: "u1", Role: token.RoleUser}, nil).AnyTimes()

	tok, _, err := f.maker.CreateToken("u1", token.RoleUser, time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/customers", nil)
	req.AddCookie(&http.Cookie{Name: auth.AdminCookie, Value: tok})
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAdminListsCustomers(t *testing.T) {
	f := newFixture(t, nil)
	f.users.EXPECT().ListCustomers(gomock.Any(), gomock.Any()).Return([]model.User{}, 0, nil)

	tok, _, err := f.maker.CreateToken("a1", token.RoleAdmin, time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/customers", nil)
	req.AddCookie(&http.Cookie{Name: auth.AdminCookie, Value: tok})
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
