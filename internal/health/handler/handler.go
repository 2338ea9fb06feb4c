package handler

import (
	"context"
	"net/http"

	"github.com/fekuna/omnipos-commerce/pkg/apperror"
	"github.com/fekuna/omnipos-commerce/pkg/logger"
	"github.com/fekuna/omnipos-commerce/pkg/response"
)

// Checker reports whether the service dependencies answer.
type Checker interface {
	Check(ctx context.Context) error
}

type HealthHandler struct {
	checker Checker
	logger  logger.ZapLogger
}

func NewHealthHandler(checker Checker, log logger.ZapLogger) *HealthHandler {
	return &HealthHandler{checker: checker, logger: log}
}

func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) error {
	if err := h.checker.Check(r.Context()); err != nil {
		return apperror.Wrap(err, http.StatusServiceUnavailable, "Database unavailable", apperror.KindInternalServerError)
	}
	response.JSON(w, http.StatusOK, "OK", map[string]string{"database": "up"})
	return nil
}
