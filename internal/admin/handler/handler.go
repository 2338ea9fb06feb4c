package handler

import (
	"net/http"

	"github.com/fekuna/omnipos-commerce/internal/admin"
	"github.com/fekuna/omnipos-commerce/internal/admin/dto"
	"github.com/fekuna/omnipos-commerce/internal/auth"
	"github.com/fekuna/omnipos-commerce/pkg/apperror"
	"github.com/fekuna/omnipos-commerce/pkg/logger"
	"github.com/fekuna/omnipos-commerce/pkg/request"
	"github.com/fekuna/omnipos-commerce/pkg/response"
	"go.uber.org/zap"
)

type AdminHandler struct {
	uc     admin.UseCase
	cookie *auth.CookieConfig
	logger logger.ZapLogger
}

func NewAdminHandler(uc admin.UseCase, cookie *auth.CookieConfig, log logger.ZapLogger) *AdminHandler {
	return &AdminHandler{uc: uc, cookie: cookie, logger: log}
}

func (h *AdminHandler) Register(w http.ResponseWriter, r *http.Request) error {
	var input dto.RegisterAdminInput
	if err := request.Decode(r, &input); err != nil {
		return err
	}
	a, err := h.uc.Register(r.Context(), &input)
	if err != nil {
		return err
	}
	response.JSON(w, http.StatusCreated, "Admin registered", a)
	return nil
}

func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) error {
	var input dto.LoginInput
	if err := request.Decode(r, &input); err != nil {
		return err
	}
	res, err := h.uc.Login(r.Context(), &input)
	if err != nil {
		return err
	}
	auth.SetTokenCookie(w, h.cookie, auth.AdminCookie, res.Token)
	response.JSON(w, http.StatusOK, "Logged in", res)
	return nil
}

func (h *AdminHandler) Logout(w http.ResponseWriter, r *http.Request) error {
	if p, ok := auth.PrincipalFromContext(r.Context()); ok {
		if err := h.uc.Logout(r.Context(), p.TokenID, p.ExpiresAt); err != nil {
			h.logger.Warn("failed to revoke token", zap.String("admin_id", p.ID), zap.Error(err))
		}
	}
	auth.ClearTokenCookie(w, h.cookie, auth.AdminCookie)
	response.JSON(w, http.StatusOK, "Logged out")
	return nil
}

func (h *AdminHandler) Me(w http.ResponseWriter, r *http.Request) error {
	id := auth.GetAdminID(r.Context())
	if id == "" {
		return apperror.Unauthorized("Not authorized")
	}
	a, err := h.uc.GetMe(r.Context(), id)
	if err != nil {
		return err
	}
	response.JSON(w, http.StatusOK, "Admin fetched", a)
	return nil
}
