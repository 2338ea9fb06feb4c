package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/fekuna/omnipos-commerce/internal/auth"
	"github.com/fekuna/omnipos-commerce/internal/model"
	"github.com/fekuna/omnipos-commerce/internal/user"
	"github.com/fekuna/omnipos-commerce/internal/user/dto"
	"github.com/fekuna/omnipos-commerce/pkg/apperror"
	"github.com/fekuna/omnipos-commerce/pkg/i18n"
	"github.com/fekuna/omnipos-commerce/pkg/logger"
	"github.com/fekuna/omnipos-commerce/pkg/mailer"
	"github.com/fekuna/omnipos-commerce/pkg/token"
	"github.com/fekuna/omnipos-commerce/pkg/utils"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const verifyTokenDuration = 24 * time.Hour

// TokenRevoker puts a token id on the deny-list until it would have expired anyway.
type TokenRevoker interface {
	RevokeToken(ctx context.Context, tokenID string, until time.Time) error
}

type Options struct {
	TokenDuration time.Duration
	// VerifyURL receives the verification token as ?token=.
	VerifyURL string
	// LoginURL is linked from the approval mail.
	LoginURL string
}

type userUseCase struct {
	repo       user.Repository
	maker      token.Maker
	revoker    TokenRevoker
	mailer     mailer.Mailer
	translator *i18n.Translator
	opts       Options
	logger     logger.ZapLogger
}

func NewUserUseCase(
	repo user.Repository,
	maker token.Maker,
	revoker TokenRevoker,
	mail mailer.Mailer,
	translator *i18n.Translator,
	opts Options,
	log logger.ZapLogger,
) user.UseCase {
	return &userUseCase{
		repo:       repo,
		maker:      maker,
		revoker:    revoker,
		mailer:     mail,
		translator: translator,
		opts:       opts,
		logger:     log,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (uc *userUseCase) Register(ctx context.Context, input *dto.RegisterInput) (*model.User, error) {
	email := normalizeEmail(input.Email)

	existing, err := uc.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.New(http.StatusConflict, "Duplicate field value entered: email", apperror.KindDuplicateKey)
	}

	hash, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	u := &model.User{
		BaseModel: model.BaseModel{
			ID:        uuid.New().String(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Email:        email,
		PasswordHash: hash,
		Name:         strings.TrimSpace(input.Name),
		Phone:        input.Phone,
		CompanyName:  strings.TrimSpace(input.CompanyName),
		OrgNumber:    input.OrgNumber,
		Address:      input.Address,
		PostalCode:   input.PostalCode,
		City:         input.City,
	}
	if err := uc.repo.Create(ctx, u); err != nil {
		return nil, err
	}

	uc.sendVerification(ctx, u)
	return u, nil
}

func (uc *userUseCase) sendVerification(ctx context.Context, u *model.User) {
	tok, _, err := uc.maker.CreateToken(u.ID, token.RoleVerify, verifyTokenDuration)
	if err != nil {
		uc.logger.Error("failed to create verification token", zap.String("user_id", u.ID), zap.Error(err))
		return
	}
	data := map[string]any{"Name": u.Name, "Link": uc.opts.VerifyURL + "?token=" + tok}
	uc.send(ctx, u.Email, "VerifyEmailSubject", "VerifyEmailBody", data)
}

// send mails one recipient. Failures are logged, never returned.
func (uc *userUseCase) send(ctx context.Context, to, subjectID, bodyID string, data map[string]any) {
	if uc.mailer == nil || uc.translator == nil {
		return
	}
	msg := &mailer.Message{
		To:      []string{to},
		Subject: uc.translator.T(subjectID, data),
		Text:    uc.translator.T(bodyID, data),
	}
	if err := uc.mailer.Send(ctx, msg); err != nil {
		uc.logger.Warn("failed to send mail", zap.String("to", to), zap.String("template", bodyID), zap.Error(err))
	}
}

func (uc *userUseCase) Login(ctx context.Context, input *dto.LoginInput) (*dto.AuthResult, error) {
	u, err := uc.repo.FindByEmail(ctx, normalizeEmail(input.Email))
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, apperror.Unauthorized("Invalid email or password")
	}

	ok, err := utils.ComparePassword(u.PasswordHash, input.Password)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperror.Unauthorized("Invalid email or password")
	}
	if !u.IsApproved {
		return nil, apperror.Unauthorized("Your account is awaiting approval")
	}

	tok, payload, err := uc.maker.CreateToken(u.ID, token.RoleUser, uc.opts.TokenDuration)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResult{Token: tok, ExpiresAt: payload.ExpiresAt, User: u}, nil
}

func (uc *userUseCase) Logout(ctx context.Context, tokenID string, expiresAt time.Time) error {
	if uc.revoker == nil || tokenID == "" {
		return nil
	}
	return uc.revoker.RevokeToken(ctx, tokenID, expiresAt)
}

func (uc *userUseCase) GetMe(ctx context.Context, id string) (*model.User, error) {
	return uc.GetCustomer(ctx, id)
}

func (uc *userUseCase) VerifyEmail(ctx context.Context, rawToken string) (*model.User, error) {
	if rawToken == "" {
		return nil, apperror.BadRequest("Verification token is required")
	}
	payload, err := uc.maker.VerifyToken(rawToken)
	if err != nil {
		if errors.Is(err, token.ErrExpiredToken) {
			return nil, apperror.BadRequest("Verification link has expired")
		}
		return nil, apperror.BadRequest("Invalid verification link")
	}
	if payload.Role != token.RoleVerify {
		return nil, apperror.BadRequest("Invalid verification link")
	}

	u, err := uc.GetCustomer(ctx, payload.Subject)
	if err != nil {
		return nil, err
	}
	if u.IsVerified {
		return u, nil
	}
	if err := uc.repo.SetVerified(ctx, u.ID); err != nil {
		return nil, err
	}
	u.IsVerified = true
	return u, nil
}

func (uc *userUseCase) ListCustomers(ctx context.Context, filters *dto.UserFilters) ([]model.User, int, error) {
	return uc.repo.FindAll(ctx, filters)
}

func (uc *userUseCase) GetCustomer(ctx context.Context, id string) (*model.User, error) {
	u, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, apperror.NotFound("User not found")
	}
	return u, nil
}

func (uc *userUseCase) ApproveCustomer(ctx context.Context, id string) (*model.User, error) {
	u, err := uc.GetCustomer(ctx, id)
	if err != nil {
		return nil, err
	}
	if u.IsApproved {
		return u, nil
	}

	if err := uc.repo.SetApproved(ctx, id, true); err != nil {
		return nil, err
	}
	u.IsApproved = true

	uc.send(ctx, u.Email, "AccountApprovedSubject", "AccountApprovedBody", map[string]any{
		"Name": u.Name,
		"Link": uc.opts.LoginURL,
	})
	return u, nil
}

func (uc *userUseCase) DeleteCustomer(ctx context.Context, id string) error {
	if _, err := uc.GetCustomer(ctx, id); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}

func (uc *userUseCase) LoadPrincipal(ctx context.Context, id string) (*auth.Principal, error) {
	u, err := uc.repo.FindByID(ctx, id)
	if err != nil || u == nil {
		return nil, err
	}
	return &auth.Principal{ID: u.ID, Email: u.Email, Name: u.Name}, nil
}
