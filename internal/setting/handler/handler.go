package handler

import (
	"net/http"

	"github.com/fekuna/omnipos-commerce/internal/setting"
	"github.com/fekuna/omnipos-commerce/internal/setting/dto"
	"github.com/fekuna/omnipos-commerce/pkg/logger"
	"github.com/fekuna/omnipos-commerce/pkg/request"
	"github.com/fekuna/omnipos-commerce/pkg/response"
)

type SettingHandler struct {
	uc     setting.UseCase
	logger logger.ZapLogger
}

func NewSettingHandler(uc setting.UseCase, log logger.ZapLogger) *SettingHandler {
	return &SettingHandler{uc: uc, logger: log}
}

func (h *SettingHandler) GetConfig(w http.ResponseWriter, r *http.Request) error {
	cfg, err := h.uc.GetConfig(r.Context())
	if err != nil {
		return err
	}
	response.JSON(w, http.StatusOK, "Config fetched", cfg)
	return nil
}

func (h *SettingHandler) UpdateConfig(w http.ResponseWriter, r *http.Request) error {
	var input dto.UpdateConfigInput
	if err := request.Decode(r, &input); err != nil {
		return err
	}
	cfg, err := h.uc.UpdateConfig(r.Context(), &input)
	if err != nil {
		return err
	}
	response.JSON(w, http.StatusOK, "Config updated", cfg)
	return nil
}
