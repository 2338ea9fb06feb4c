package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fekuna/omnipos-commerce/internal/export/mock"
	"github.com/fekuna/omnipos-commerce/internal/middleware"
	"github.com/fekuna/omnipos-commerce/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(h *ExportHandler) http.Handler {
	eh := middleware.NewErrorHandler(logger.NewNop())
	r := chi.NewRouter()
	r.Get("/export/users", eh.Wrap(h.ExportUsers))
	r.Get("/export/products", eh.Wrap(h.ExportProducts))
	r.Get("/export/orders", eh.Wrap(h.ExportOrders))
	return r
}

func TestExportOrdersDownload(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mock.NewMockUseCase(ctrl)
	uc.EXPECT().ExportOrders(gomock.Any()).Return([]byte("PK-xlsx"), nil)

	h := NewExportHandler(uc, logger.NewNop())
	h.now = func() time.Time { return time.Date(2026, 4, 2, 9, 0, 0, 0, time.UTC) }

	rec := httptest.NewRecorder()
	newRouter(h).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/export/orders", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, xlsxContentType, rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="ordrer-2026-04-02.xlsx"`, rec.Header().Get("Content-Disposition"))
	assert.Equal(t, "PK-xlsx", rec.Body.String())
}

func TestExportUsersError(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mock.NewMockUseCase(ctrl)
	uc.EXPECT().ExportUsers(gomock.Any()).Return(nil, errors.New("db down"))

	rec := httptest.NewRecorder()
	newRouter(NewExportHandler(uc, logger.NewNop())).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/export/users", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":false`)
}
