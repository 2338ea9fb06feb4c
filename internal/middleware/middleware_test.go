package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fekuna/omnipos-commerce/internal/auth"
	"github.com/fekuna/omnipos-commerce/pkg/apperror"
	"github.com/fekuna/omnipos-commerce/pkg/logger"
	"github.com/fekuna/omnipos-commerce/pkg/response"
	"github.com/fekuna/omnipos-commerce/pkg/token"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) response.Body {
	t.Helper()
	var body response.Body
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestWrapWritesTranslatedErrors(t *testing.T) {
	eh := NewErrorHandler(logger.NewNop())

	cases := []struct {
		name   string
		err    error
		status int
		kind   string
	}{
		{"app error", apperror.NotFound("Product not found"), http.StatusNotFound, "NotFound"},
		{"duplicate key", &pgconn.PgError{Code: "23505", Detail: "Key (email)=(a@b.no) already exists."}, http.StatusConflict, "DuplicateKey"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "InternalServerError"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := eh.Wrap(func(w http.ResponseWriter, r *http.Request) error { return tc.err })
			rec := httptest.NewRecorder()
			h(rec, httptest.NewRequest(http.MethodGet, "/", nil))

			assert.Equal(t, tc.status, rec.Code)
			body := decodeBody(t, rec)
			assert.False(t, body.Success)
			assert.Equal(t, tc.kind, body.Error)
		})
	}
}

func TestWrapHidesInternalDetails(t *testing.T) {
	eh := NewErrorHandler(logger.NewNop())
	h := eh.Wrap(func(w http.ResponseWriter, r *http.Request) error {
		return errors.New("dial tcp 10.0.0.5:5432: connection refused")
	})
	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.NotContains(t, rec.Body.String(), "10.0.0.5")
	assert.Equal(t, "Internal server error", decodeBody(t, rec).Message)
}

func TestWrapRecoversPanics(t *testing.T) {
	eh := NewErrorHandler(logger.NewNop())
	h := eh.Wrap(func(w http.ResponseWriter, r *http.Request) error { panic("nil map") })
	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	guarded := eh.Recover(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { panic(errors.New("x")) }))
	rec = httptest.NewRecorder()
	guarded.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

type fakeRevocations map[string]bool

func (f fakeRevocations) IsTokenRevoked(_ context.Context, id string) (bool, error) {
	return f[id], nil
}

func newTestAuthenticator(t *testing.T, revoked fakeRevocations) (*Authenticator, *token.JWTMaker) {
	t.Helper()
	maker, err := token.NewJWTMaker("a-very-long-test-secret", "omnipos-commerce")
	require.NoError(t, err)

	users := PrincipalLoaderFunc(func(_ context.Context, id string) (*auth.Principal, error) {
		if id == "u1" {
			return &auth.Principal{ID: "u1", Email: "kari@example.no"}, nil
		}
		return nil, nil
	})
	admins := PrincipalLoaderFunc(func(_ context.Context, id string) (*auth.Principal, error) {
		return &auth.Principal{ID: id}, nil
	})
	return NewAuthenticator(NewErrorHandler(logger.NewNop()), maker, revoked, users, admins, "secret-key"), maker
}

func TestRequireUser(t *testing.T) {
	a, maker := newTestAuthenticator(t, fakeRevocations{})

	var got *auth.Principal
	h := a.RequireUser(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = auth.PrincipalFromContext(r.Context())
	}))

	userTok, _, err := maker.CreateToken("u1", token.RoleUser, time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req.AddCookie(&http.Cookie{Name: auth.UserCookie, Value: userTok})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, got)
	assert.Equal(t, "u1", got.ID)
	assert.Equal(t, token.RoleUser, got.Role)

	// Bearer header works too.
	got = nil
	req = httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+userTok)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, got)
}

func TestRequireUserRejects(t *testing.T) {
	a, maker := newTestAuthenticator(t, fakeRevocations{})
	h := a.RequireUser(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	}))

	adminTok, _, _ := maker.CreateToken("a1", token.RoleAdmin, time.Hour)
	ghostTok, _, _ := maker.CreateToken("ghost", token.RoleUser, time.Hour)

	cases := []struct {
		name   string
		value  string
		status int
	}{
		{"no token", "", http.StatusUnauthorized},
		{"garbage", "not-a-jwt", http.StatusUnauthorized},
		{"wrong role", adminTok, http.StatusForbidden},
		{"unknown user", ghostTok, http.StatusUnauthorized},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.value != "" {
				req.AddCookie(&http.Cookie{Name: auth.UserCookie, Value: tc.value})
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			assert.Equal(t, tc.status, rec.Code)
		})
	}
}

func TestRequireAdminRejectsRevokedToken(t *testing.T) {
	revoked := fakeRevocations{}
	a, maker := newTestAuthenticator(t, revoked)
	tok, payload, err := maker.CreateToken("a1", token.RoleAdmin, time.Hour)
	require.NoError(t, err)
	revoked[payload.ID] = true

	h := a.RequireAdmin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: auth.AdminCookie, Value: tok})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Not authorized, token revoked", decodeBody(t, rec).Message)
}

func TestRequireAPIKey(t *testing.T) {
	a, _ := newTestAuthenticator(t, nil)
	h := a.RequireAPIKey(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))

	req := httptest.NewRequest(http.MethodPost, "/auth/admin/register", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req.Header.Set(APIKeyHeader, "secret-key")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusCreated, rec.Code)
}
