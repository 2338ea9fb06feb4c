package handler

import (
	"net/http"

	"github.com/fekuna/omnipos-commerce/internal/auth"
	"github.com/fekuna/omnipos-commerce/internal/user"
	"github.com/fekuna/omnipos-commerce/internal/user/dto"
	"github.com/fekuna/omnipos-commerce/pkg/apperror"
	"github.com/fekuna/omnipos-commerce/pkg/logger"
	"github.com/fekuna/omnipos-commerce/pkg/request"
	"github.com/fekuna/omnipos-commerce/pkg/response"
	"go.uber.org/zap"
)

type UserHandler struct {
	uc     user.UseCase
	cookie *auth.CookieConfig
	logger logger.ZapLogger
}

func NewUserHandler(uc user.UseCase, cookie *auth.CookieConfig, log logger.ZapLogger) *UserHandler {
	return &UserHandler{
		uc:     uc,
		cookie: cookie,
		logger: log,
	}
}

func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) error {
	var input dto.RegisterInput
	if err := request.Decode(r, &input); err != nil {
		return err
	}

	u, err := h.uc.Register(r.Context(), &input)
	if err != nil {
		return err
	}
	response.JSON(w, http.StatusCreated, "Registration received, the account awaits approval", u)
	return nil
}

func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) error {
	var input dto.LoginInput
	if err := request.Decode(r, &input); err != nil {
		return err
	}

	res, err := h.uc.Login(r.Context(), &input)
	if err != nil {
		return err
	}
	auth.SetTokenCookie(w, h.cookie, auth.UserCookie, res.Token)
	response.JSON(w, http.StatusOK, "Logged in", res)
	return nil
}

func (h *UserHandler) Logout(w http.ResponseWriter, r *http.Request) error {
	if p, ok := auth.PrincipalFromContext(r.Context()); ok {
		if err := h.uc.Logout(r.Context(), p.TokenID, p.ExpiresAt); err != nil {
			// the cookie is cleared regardless
			h.logger.Warn("failed to revoke token", zap.String("user_id", p.ID), zap.Error(err))
		}
	}
	auth.ClearTokenCookie(w, h.cookie, auth.UserCookie)
	response.JSON(w, http.StatusOK, "Logged out")
	return nil
}

func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) error {
	id := auth.GetUserID(r.Context())
	if id == "" {
		return apperror.Unauthorized("Not authorized")
	}
	u, err := h.uc.GetMe(r.Context(), id)
	if err != nil {
		return err
	}
	response.JSON(w, http.StatusOK, "User fetched", u)
	return nil
}

func (h *UserHandler) VerifyEmail(w http.ResponseWriter, r *http.Request) error {
	u, err := h.uc.VerifyEmail(r.Context(), r.URL.Query().Get("token"))
	if err != nil {
		return err
	}
	response.JSON(w, http.StatusOK, "Email verified", u)
	return nil
}
