package admin

import (
	"context"
	"time"

	"github.com/fekuna/omnipos-commerce/internal/admin/dto"
	"github.com/fekuna/omnipos-commerce/internal/auth"
	"github.com/fekuna/omnipos-commerce/internal/model"
)

//go:generate mockgen -source=usecase.go -destination=mock/usecase_mock.go -package=mock

type UseCase interface {
	Register(ctx context.Context, input *dto.RegisterAdminInput) (*model.Admin, error)
	Login(ctx context.Context, input *dto.LoginInput) (*dto.AuthResult, error)
	Logout(ctx context.Context, tokenID string, expiresAt time.Time) error
	GetMe(ctx context.Context, id string) (*model.Admin, error)
	LoadPrincipal(ctx context.Context, id string) (*auth.Principal, error)
}
