package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/fekuna/omnipos-commerce/internal/model"
	"github.com/fekuna/omnipos-commerce/internal/newsletter/dto"
	"github.com/fekuna/omnipos-commerce/internal/newsletter/mock"
	"github.com/fekuna/omnipos-commerce/pkg/apperror"
	"github.com/fekuna/omnipos-commerce/pkg/i18n"
	"github.com/fekuna/omnipos-commerce/pkg/logger"
	"github.com/fekuna/omnipos-commerce/pkg/mailer"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMailer struct {
	sent   []*mailer.Message
	failAt int
}

func (f *fakeMailer) Send(_ context.Context, msg *mailer.Message) error {
	if f.failAt > 0 && len(f.sent)+1 == f.failAt {
		return errors.New("smtp: connection reset")
	}
	f.sent = append(f.sent, msg)
	return nil
}

func newUseCase(t *testing.T, mail *fakeMailer) (*mock.MockRepository, *newsletterUseCase) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockRepository(ctrl)
	tr, err := i18n.New()
	require.NoError(t, err)
	return repo, NewNewsletterUseCase(repo, mail, tr, logger.NewNop()).(*newsletterUseCase)
}

func emails(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("kunde%d@example.no", i)
	}
	return out
}

func TestSubscribeCreatesRow(t *testing.T) {
	repo, uc := newUseCase(t, &fakeMailer{})
	repo.EXPECT().FindByUser(gomock.Any(), "u1").Return(nil, nil)
	repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, s *model.Subscriber) error {
		assert.NotEmpty(t, s.ID)
		assert.Equal(t, model.Subscribed, s.Status)
		return nil
	})

	sub, err := uc.Subscribe(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "u1", sub.UserID)
}

func TestUnsubscribeKeepsRow(t *testing.T) {
	repo, uc := newUseCase(t, &fakeMailer{})
	existing := &model.Subscriber{BaseModel: model.BaseModel{ID: "s1"}, UserID: "u1", Status: model.Subscribed}
	repo.EXPECT().FindByUser(gomock.Any(), "u1").Return(existing, nil)
	repo.EXPECT().Upsert(gomock.Any(), existing).Return(nil)

	sub, err := uc.Unsubscribe(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "s1", sub.ID)
	assert.Equal(t, model.Unsubscribed, sub.Status)
}

func TestListSubscribersRejectsUnknownStatus(t *testing.T) {
	_, uc := newUseCase(t, &fakeMailer{})
	_, _, err := uc.ListSubscribers(context.Background(), &dto.SubscriberFilters{Status: "maybe"})
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.StatusCode)
}

func TestSendBatchesBcc(t *testing.T) {
	mail := &fakeMailer{}
	repo, uc := newUseCase(t, mail)
	repo.EXPECT().SubscribedEmails(gomock.Any()).Return(emails(120), nil)

	res, err := uc.Send(context.Background(), &dto.SendNewsletterInput{Subject: "Nyheter", Body: "Hei"})
	require.NoError(t, err)
	assert.Equal(t, 120, res.Recipients)
	assert.Equal(t, 3, res.Batches)

	require.Len(t, mail.sent, 3)
	assert.Len(t, mail.sent[0].Bcc, 50)
	assert.Len(t, mail.sent[2].Bcc, 20)
	assert.Empty(t, mail.sent[0].To)
	assert.True(t, strings.HasPrefix(mail.sent[0].Text, "Hei"))
	assert.Contains(t, mail.sent[0].Text, "abonnerer på nyhetsbrevet")
}

func TestSendStopsOnFailure(t *testing.T) {
	mail := &fakeMailer{failAt: 2}
	repo, uc := newUseCase(t, mail)
	repo.EXPECT().SubscribedEmails(gomock.Any()).Return(emails(60), nil)

	_, err := uc.Send(context.Background(), &dto.SendNewsletterInput{Subject: "s", Body: "b"})
	require.Error(t, err)
	assert.Len(t, mail.sent, 1)
}

func TestSendWithoutSubscribers(t *testing.T) {
	repo, uc := newUseCase(t, &fakeMailer{})
	repo.EXPECT().SubscribedEmails(gomock.Any()).Return([]string{}, nil)

	_, err := uc.Send(context.Background(), &dto.SendNewsletterInput{Subject: "s", Body: "b"})
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.StatusCode)
}
