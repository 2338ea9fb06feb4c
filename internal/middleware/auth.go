package middleware

import (
	"context"
	"crypto/subtle"
	"errors"
	"net/http"
	"strings"

	"github.com/fekuna/omnipos-commerce/internal/auth"
	"github.com/fekuna/omnipos-commerce/pkg/apperror"
	"github.com/fekuna/omnipos-commerce/pkg/token"
	"go.uber.org/zap"
)

// RevocationChecker reports whether a token id was revoked by a logout.
type RevocationChecker interface {
	IsTokenRevoked(ctx context.Context, tokenID string) (bool, error)
}

// PrincipalLoader resolves a token subject to a principal. It returns (nil, nil)
// when the subject no longer exists.
type PrincipalLoader interface {
	LoadPrincipal(ctx context.Context, id string) (*auth.Principal, error)
}

type PrincipalLoaderFunc func(ctx context.Context, id string) (*auth.Principal, error)

func (f PrincipalLoaderFunc) LoadPrincipal(ctx context.Context, id string) (*auth.Principal, error) {
	return f(ctx, id)
}

const APIKeyHeader = "X-API-Key"

type Authenticator struct {
	errs    *ErrorHandler
	maker   token.Maker
	revoked RevocationChecker
	users   PrincipalLoader
	admins  PrincipalLoader
	apiKey  string
}

func NewAuthenticator(errs *ErrorHandler, maker token.Maker, revoked RevocationChecker, users, admins PrincipalLoader, apiKey string) *Authenticator {
	return &Authenticator{
		errs:    errs,
		maker:   maker,
		revoked: revoked,
		users:   users,
		admins:  admins,
		apiKey:  apiKey,
	}
}

func (a *Authenticator) RequireUser(next http.Handler) http.Handler {
	return a.require(token.RoleUser, auth.UserCookie, a.users, next)
}

func (a *Authenticator) RequireAdmin(next http.Handler) http.Handler {
	return a.require(token.RoleAdmin, auth.AdminCookie, a.admins, next)
}

func (a *Authenticator) require(role token.Role, cookie string, loader PrincipalLoader, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		principal, err := a.authenticate(r, role, cookie, loader)
		if err != nil {
			a.errs.WriteError(w, r, err)
			return
		}
		next.ServeHTTP(w, r.WithContext(auth.WithPrincipal(r.Context(), principal)))
	})
}

func (a *Authenticator) authenticate(r *http.Request, role token.Role, cookie string, loader PrincipalLoader) (*auth.Principal, error) {
	raw := tokenFromRequest(r, cookie)
	if raw == "" {
		return nil, apperror.Unauthorized("Not authorized, no token")
	}

	payload, err := a.maker.VerifyToken(raw)
	if err != nil {
		if errors.Is(err, token.ErrExpiredToken) {
			return nil, apperror.Unauthorized("Not authorized, token expired")
		}
		return nil, apperror.Unauthorized("Not authorized, token failed")
	}
	if payload.Role != role {
		return nil, apperror.Forbidden("Not authorized for this resource")
	}

	if a.revoked != nil {
		revoked, err := a.revoked.IsTokenRevoked(r.Context(), payload.ID)
		if err != nil {
			// A cache outage must not lock every user out.
			a.errs.logger.Warn("token revocation check failed", zap.Error(err))
		} else if revoked {
			return nil, apperror.Unauthorized("Not authorized, token revoked")
		}
	}

	principal, err := loader.LoadPrincipal(r.Context(), payload.Subject)
	if err != nil {
		return nil, err
	}
	if principal == nil {
		return nil, apperror.Unauthorized("Not authorized, account not found")
	}
	principal.Role = role
	principal.TokenID = payload.ID
	principal.ExpiresAt = payload.ExpiresAt
	return principal, nil
}

func tokenFromRequest(r *http.Request, cookie string) string {
	if c, err := r.Cookie(cookie); err == nil && c.Value != "" {
		return c.Value
	}
	if h := r.Header.Get("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
	}
	return ""
}

// RequireAPIKey guards endpoints that bootstrap admin accounts.
func (a *Authenticator) RequireAPIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Header.Get(APIKeyHeader)
		if a.apiKey == "" || subtle.ConstantTimeCompare([]byte(key), []byte(a.apiKey)) != 1 {
			a.errs.WriteError(w, r, apperror.Unauthorized("Invalid API key"))
			return
		}
		next.ServeHTTP(w, r)
	})
}
