package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fekuna/omnipos-commerce/internal/middleware"
	"github.com/fekuna/omnipos-commerce/pkg/logger"
	"github.com/stretchr/testify/assert"
)

type checkerFunc func(ctx context.Context) error

func (f checkerFunc) Check(ctx context.Context) error { return f(ctx) }

func TestHealthCheck(t *testing.T) {
	eh := middleware.NewErrorHandler(logger.NewNop())

	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"up", nil, http.StatusOK},
		{"down", errors.New("dial tcp: connection refused"), http.StatusServiceUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHealthHandler(checkerFunc(func(context.Context) error { return tt.err }), logger.NewNop())
			rec := httptest.NewRecorder()
			eh.Wrap(h.Check).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/check", nil))
			assert.Equal(t, tt.status, rec.Code)
			assert.NotContains(t, rec.Body.String(), "connection refused")
		})
	}
}
