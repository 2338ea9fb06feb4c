package usecase

import (
	"context"
	"time"

	"github.com/fekuna/omnipos-commerce/internal/model"
	"github.com/fekuna/omnipos-commerce/internal/newsletter"
	"github.com/fekuna/omnipos-commerce/internal/newsletter/dto"
	"github.com/fekuna/omnipos-commerce/pkg/apperror"
	"github.com/fekuna/omnipos-commerce/pkg/i18n"
	"github.com/fekuna/omnipos-commerce/pkg/logger"
	"github.com/fekuna/omnipos-commerce/pkg/mailer"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// batchSize caps the Bcc list of a single newsletter mail.
const batchSize = 50

type newsletterUseCase struct {
	repo       newsletter.Repository
	mailer     mailer.Mailer
	translator *i18n.Translator
	logger     logger.ZapLogger
}

func NewNewsletterUseCase(repo newsletter.Repository, mail mailer.Mailer, translator *i18n.Translator, log logger.ZapLogger) newsletter.UseCase {
	return &newsletterUseCase{
		repo:       repo,
		mailer:     mail,
		translator: translator,
		logger:     log,
	}
}

func (uc *newsletterUseCase) setStatus(ctx context.Context, userID string, status model.SubscriptionStatus) (*model.Subscriber, error) {
	sub, err := uc.repo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if sub == nil {
		sub = &model.Subscriber{
			BaseModel: model.BaseModel{ID: uuid.New().String(), CreatedAt: now},
			UserID:    userID,
		}
	}
	sub.Status = status
	sub.UpdatedAt = now

	if err := uc.repo.Upsert(ctx, sub); err != nil {
		return nil, err
	}
	return sub, nil
}

func (uc *newsletterUseCase) Subscribe(ctx context.Context, userID string) (*model.Subscriber, error) {
	return uc.setStatus(ctx, userID, model.Subscribed)
}

func (uc *newsletterUseCase) Unsubscribe(ctx context.Context, userID string) (*model.Subscriber, error) {
	return uc.setStatus(ctx, userID, model.Unsubscribed)
}

func (uc *newsletterUseCase) ListSubscribers(ctx context.Context, filters *dto.SubscriberFilters) ([]model.Subscriber, int, error) {
	if filters.Status != "" && filters.Status != model.Subscribed && filters.Status != model.Unsubscribed {
		return nil, 0, apperror.BadRequest("Unknown subscription status")
	}
	return uc.repo.List(ctx, filters)
}

// Send mails the newsletter to every subscribed user in Bcc batches.
// A failed batch stops the run; earlier batches are already delivered.
func (uc *newsletterUseCase) Send(ctx context.Context, input *dto.SendNewsletterInput) (*dto.SendResult, error) {
	emails, err := uc.repo.SubscribedEmails(ctx)
	if err != nil {
		return nil, err
	}
	if len(emails) == 0 {
		return nil, apperror.BadRequest("There are no subscribers")
	}

	text := input.Body
	if uc.translator != nil {
		text += "\n\n--\n" + uc.translator.T("NewsletterFooter", nil)
	}

	res := &dto.SendResult{}
	for start := 0; start < len(emails); start += batchSize {
		end := min(start+batchSize, len(emails))
		msg := &mailer.Message{
			Bcc:     emails[start:end],
			Subject: input.Subject,
			Text:    text,
		}
		if err := uc.mailer.Send(ctx, msg); err != nil {
			uc.logger.Error("newsletter batch failed",
				zap.Int("batch", res.Batches+1),
				zap.Int("delivered", res.Recipients),
				zap.Error(err),
			)
			return nil, err
		}
		res.Batches++
		res.Recipients += end - start
	}

	uc.logger.Info("Newsletter sent", zap.Int("recipients", res.Recipients), zap.Int("batches", res.Batches))
	return res, nil
}
