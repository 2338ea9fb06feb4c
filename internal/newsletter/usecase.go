package newsletter

import (
	"context"

	"github.com/fekuna/omnipos-commerce/internal/model"
	"github.com/fekuna/omnipos-commerce/internal/newsletter/dto"
)

//go:generate mockgen -source=usecase.go -destination=mock/usecase_mock.go -package=mock

type UseCase interface {
	Subscribe(ctx context.Context, userID string) (*model.Subscriber, error)
	Unsubscribe(ctx context.Context, userID string) (*model.Subscriber, error)
	ListSubscribers(ctx context.Context, filters *dto.SubscriberFilters) ([]model.Subscriber, int, error)
	Send(ctx context.Context, input *dto.SendNewsletterInput) (*dto.SendResult, error)
}
