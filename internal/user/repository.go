package user

import (
	"context"

	"github.com/fekuna/omnipos-commerce/internal/model"
	"github.com/fekuna/omnipos-commerce/internal/user/dto"
)

//go:generate mockgen -source=repository.go -destination=mock/repository_mock.go -package=mock

type Repository interface {
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id string) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindAll(ctx context.Context, filters *dto.UserFilters) ([]model.User, int, error)
	SetApproved(ctx context.Context, id string, approved bool) error
	SetVerified(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}
