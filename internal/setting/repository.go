package setting

import (
	"context"

	"github.com/fekuna/omnipos-commerce/internal/model"
)

//go:generate mockgen -source=repository.go -destination=mock/repository_mock.go -package=mock

type Repository interface {
	Get(ctx context.Context) (*model.AppConfig, error)
	Update(ctx context.Context, cfg *model.AppConfig) error
}
