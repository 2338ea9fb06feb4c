package export

import (
	"context"

	"github.com/fekuna/omnipos-commerce/internal/export/dto"
	"github.com/fekuna/omnipos-commerce/internal/model"
)

//go:generate mockgen -source=repository.go -destination=mock/repository_mock.go -package=mock

type Repository interface {
	Users(ctx context.Context) ([]model.User, error)
	Products(ctx context.Context) ([]dto.ProductRow, error)
	Orders(ctx context.Context) ([]dto.OrderRow, error)
}
