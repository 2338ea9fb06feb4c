package setting

import (
	"context"

	"github.com/fekuna/omnipos-commerce/internal/model"
	"github.com/fekuna/omnipos-commerce/internal/setting/dto"
)

//go:generate mockgen -source=usecase.go -destination=mock/usecase_mock.go -package=mock

type UseCase interface {
	GetConfig(ctx context.Context) (*model.AppConfig, error)
	UpdateConfig(ctx context.Context, input *dto.UpdateConfigInput) (*model.AppConfig, error)
}
