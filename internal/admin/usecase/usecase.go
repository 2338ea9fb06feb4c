package usecase

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/fekuna/omnipos-commerce/internal/admin"
	"github.com/fekuna/omnipos-commerce/internal/admin/dto"
	"github.com/fekuna/omnipos-commerce/internal/auth"
	"github.com/fekuna/omnipos-commerce/internal/model"
	"github.com/fekuna/omnipos-commerce/pkg/apperror"
	"github.com/fekuna/omnipos-commerce/pkg/logger"
	"github.com/fekuna/omnipos-commerce/pkg/token"
	"github.com/fekuna/omnipos-commerce/pkg/utils"
	"github.com/google/uuid"
)

type TokenRevoker interface {
	RevokeToken(ctx context.Context, tokenID string, until time.Time) error
}

type adminUseCase struct {
	repo          admin.Repository
	maker         token.Maker
	revoker       TokenRevoker
	tokenDuration time.Duration
	logger        logger.ZapLogger
}

func NewAdminUseCase(repo admin.Repository, maker token.Maker, revoker TokenRevoker, tokenDuration time.Duration, log logger.ZapLogger) admin.UseCase {
	return &adminUseCase{
		repo:          repo,
		maker:         maker,
		revoker:       revoker,
		tokenDuration: tokenDuration,
		logger:        log,
	}
}

func (uc *adminUseCase) Register(ctx context.Context, input *dto.RegisterAdminInput) (*model.Admin, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

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
	a := &model.Admin{
		BaseModel: model.BaseModel{
			ID:        uuid.New().String(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:         strings.TrimSpace(input.Name),
		Email:        email,
		PasswordHash: hash,
	}
	if err := uc.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (uc *adminUseCase) Login(ctx context.Context, input *dto.LoginInput) (*dto.AuthResult, error) {
	a, err := uc.repo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(input.Email)))
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, apperror.Unauthorized("Invalid email or password")
	}
	ok, err := utils.ComparePassword(a.PasswordHash, input.Password)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperror.Unauthorized("Invalid email or password")
	}

	tok, payload, err := uc.maker.CreateToken(a.ID, token.RoleAdmin, uc.tokenDuration)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResult{Token: tok, ExpiresAt: payload.ExpiresAt, Admin: a}, nil
}

func (uc *adminUseCase) Logout(ctx context.Context, tokenID string, expiresAt time.Time) error {
	if uc.revoker == nil || tokenID == "" {
		return nil
	}
	return uc.revoker.RevokeToken(ctx, tokenID, expiresAt)
}

func (uc *adminUseCase) GetMe(ctx context.Context, id string) (*model.Admin, error) {
	a, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, apperror.NotFound("Admin not found")
	}
	return a, nil
}

func (uc *adminUseCase) LoadPrincipal(ctx context.Context, id string) (*auth.Principal, error) {
	a, err := uc.repo.FindByID(ctx, id)
	if err != nil || a == nil {
		return nil, err
	}
	return &auth.Principal{ID: a.ID, Email: a.Email, Name: a.Name}, nil
}
