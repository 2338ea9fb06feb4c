package newsletter

import (
	"context"

	"github.com/fekuna/omnipos-commerce/internal/model"
	"github.com/fekuna/omnipos-commerce/internal/newsletter/dto"
)

//go:generate mockgen -source=repository.go -destination=mock/repository_mock.go -package=mock

type Repository interface {
	// Upsert stores the subscriber row, replacing the status of an existing one.
	Upsert(ctx context.Context, sub *model.Subscriber) error
	FindByUser(ctx context.Context, userID string) (*model.Subscriber, error)
	List(ctx context.Context, filters *dto.SubscriberFilters) ([]model.Subscriber, int, error)
	SubscribedEmails(ctx context.Context) ([]string, error)
}
