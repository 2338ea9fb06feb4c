package handler

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/fekuna/omnipos-commerce/internal/export"
	"github.com/fekuna/omnipos-commerce/pkg/logger"
	"go.uber.org/zap"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ExportHandler struct {
	uc     export.UseCase
	logger logger.ZapLogger
	now    func() time.Time
}

func NewExportHandler(uc export.UseCase, log logger.ZapLogger) *ExportHandler {
	return &ExportHandler{uc: uc, logger: log, now: time.Now}
}

func (h *ExportHandler) ExportUsers(w http.ResponseWriter, r *http.Request) error {
	return h.download(w, r, "kunder", h.uc.ExportUsers)
}

func (h *ExportHandler) ExportProducts(w http.ResponseWriter, r *http.Request) error {
	return h.download(w, r, "produkter", h.uc.ExportProducts)
}

func (h *ExportHandler) ExportOrders(w http.ResponseWriter, r *http.Request) error {
	return h.download(w, r, "ordrer", h.uc.ExportOrders)
}

func (h *ExportHandler) download(w http.ResponseWriter, r *http.Request, name string, build func(context.Context) ([]byte, error)) error {
	data, err := build(r.Context())
	if err != nil {
		return err
	}

	filename := fmt.Sprintf("%s-%s.xlsx", name, h.now().Format("2006-01-02"))
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		h.logger.Warn("export download interrupted", zap.String("file", filename), zap.Error(err))
	}
	return nil
}
