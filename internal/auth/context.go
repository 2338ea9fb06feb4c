package auth

import (
	"context"
	"time"

	"github.com/fekuna/omnipos-commerce/pkg/token"
)

// Principal is the authenticated caller attached to a request context.
type Principal struct {
	ID        string
	Email     string
	Name      string
	Role      token.Role
	TokenID   string
	ExpiresAt time.Time
}

type principalKey struct{}

func WithPrincipal(ctx context.Context, p *Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

func PrincipalFromContext(ctx context.Context) (*Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(*Principal)
	return p, ok && p != nil
}

// GetUserID returns the id of the authenticated user, or "" for admins and anonymous callers.
func GetUserID(ctx context.Context) string {
	if p, ok := PrincipalFromContext(ctx); ok && p.Role == token.RoleUser {
		return p.ID
	}
	return ""
}

// GetAdminID returns the id of the authenticated admin, or "".
func GetAdminID(ctx context.Context) string {
	if p, ok := PrincipalFromContext(ctx); ok && p.Role == token.RoleAdmin {
		return p.ID
	}
	return ""
}
