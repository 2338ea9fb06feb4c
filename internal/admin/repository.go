package admin

import (
	"context"

	"github.com/fekuna/omnipos-commerce/internal/model"
)

//go:generate mockgen -source=repository.go -destination=mock/repository_mock.go -package=mock

type Repository interface {
	Create(ctx context.Context, admin *model.Admin) error
	FindByID(ctx context.Context, id string) (*model.Admin, error)
	FindByEmail(ctx context.Context, email string) (*model.Admin, error)
}
