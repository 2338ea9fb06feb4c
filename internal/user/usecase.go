package user

import (
	"context"
	"time"

	"github.com/fekuna/omnipos-commerce/internal/auth"
	"github.com/fekuna/omnipos-commerce/internal/model"
	"github.com/fekuna/omnipos-commerce/internal/user/dto"
)

//go:generate mockgen -source=usecase.go -destination=mock/usecase_mock.go -package=mock

type UseCase interface {
	Register(ctx context.Context, input *dto.RegisterInput) (*model.User, error)
	Login(ctx context.Context, input *dto.LoginInput) (*dto.AuthResult, error)
	Logout(ctx context.Context, tokenID string, expiresAt time.Time) error
	GetMe(ctx context.Context, id string) (*model.User, error)
	VerifyEmail(ctx context.Context, rawToken string) (*model.User, error)

	ListCustomers(ctx context.Context, filters *dto.UserFilters) ([]model.User, int, error)
	GetCustomer(ctx context.Context, id string) (*model.User, error)
	ApproveCustomer(ctx context.Context, id string) (*model.User, error)
	DeleteCustomer(ctx context.Context, id string) error

	LoadPrincipal(ctx context.Context, id string) (*auth.Principal, error)
}
