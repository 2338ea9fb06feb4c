package order

import (
	"context"
	"time"

	"github.com/fekuna/omnipos-commerce/internal/model"
	"github.com/fekuna/omnipos-commerce/internal/order/dto"
)

//go:generate mockgen -source=repository.go -destination=mock/repository_mock.go -package=mock

type Repository interface {
	// CreateWithItems stores the order and its lines in one transaction.
	CreateWithItems(ctx context.Context, order *model.Order) error
	FindByID(ctx context.Context, id string) (*model.Order, error)
	FindAll(ctx context.Context, filters *dto.OrderFilters) ([]model.Order, int, error)
	UpdateStatus(ctx context.Context, id string, status model.OrderStatus, updatedAt time.Time) error
}

type ProductFinder interface {
	FindByIDs(ctx context.Context, ids []string) ([]model.Product, error)
}

type DiscountFinder interface {
	ActiveBulkForProducts(ctx context.Context, productIDs []string, at time.Time) ([]model.BulkDiscount, error)
	ActiveForProducts(ctx context.Context, productIDs []string, at time.Time) ([]model.Discount, error)
}

type CustomerFinder interface {
	FindByID(ctx context.Context, id string) (*model.User, error)
}

// EventPublisher is satisfied by *broker.KafkaProducer.
type EventPublisher interface {
	Publish(ctx context.Context, key string, value []byte) error
}
