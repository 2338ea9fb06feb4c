package handler

import (
	"net/http"

	"github.com/fekuna/omnipos-commerce/internal/auth"
	"github.com/fekuna/omnipos-commerce/internal/model"
	"github.com/fekuna/omnipos-commerce/internal/newsletter"
	"github.com/fekuna/omnipos-commerce/internal/newsletter/dto"
	"github.com/fekuna/omnipos-commerce/pkg/apperror"
	"github.com/fekuna/omnipos-commerce/pkg/logger"
	"github.com/fekuna/omnipos-commerce/pkg/request"
	"github.com/fekuna/omnipos-commerce/pkg/response"
)

type NewsletterHandler struct {
	uc     newsletter.UseCase
	logger logger.ZapLogger
}

func NewNewsletterHandler(uc newsletter.UseCase, log logger.ZapLogger) *NewsletterHandler {
	return &NewsletterHandler{uc: uc, logger: log}
}

func (h *NewsletterHandler) Subscribe(w http.ResponseWriter, r *http.Request) error {
	userID := auth.GetUserID(r.Context())
	if userID == "" {
		return apperror.Unauthorized("Not authorized")
	}
	sub, err := h.uc.Subscribe(r.Context(), userID)
	if err != nil {
		return err
	}
	response.JSON(w, http.StatusOK, "Subscribed to the newsletter", sub)
	return nil
}

func (h *NewsletterHandler) Unsubscribe(w http.ResponseWriter, r *http.Request) error {
	userID := auth.GetUserID(r.Context())
	if userID == "" {
		return apperror.Unauthorized("Not authorized")
	}
	sub, err := h.uc.Unsubscribe(r.Context(), userID)
	if err != nil {
		return err
	}
	response.JSON(w, http.StatusOK, "Unsubscribed from the newsletter", sub)
	return nil
}

func (h *NewsletterHandler) ListSubscribers(w http.ResponseWriter, r *http.Request) error {
	filters := &dto.SubscriberFilters{Status: model.SubscriptionStatus(r.URL.Query().Get("status"))}
	filters.Page, filters.PageSize = request.Pagination(r)

	subs, count, err := h.uc.ListSubscribers(r.Context(), filters)
	if err != nil {
		return err
	}
	response.JSON(w, http.StatusOK, "Subscribers fetched", response.NewPage(subs, count, filters.Page, filters.PageSize))
	return nil
}

func (h *NewsletterHandler) Send(w http.ResponseWriter, r *http.Request) error {
	var input dto.SendNewsletterInput
	if err := request.Decode(r, &input); err != nil {
		return err
	}
	res, err := h.uc.Send(r.Context(), &input)
	if err != nil {
		return err
	}
	response.JSON(w, http.StatusOK, "Newsletter sent", res)
	return nil
}
