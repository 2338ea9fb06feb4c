package usecase

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/fekuna/omnipos-commerce/internal/admin/dto"
	"github.com/fekuna/omnipos-commerce/internal/admin/mock"
	"github.com/fekuna/omnipos-commerce/internal/model"
	"github.com/fekuna/omnipos-commerce/pkg/apperror"
	"github.com/fekuna/omnipos-commerce/pkg/logger"
	"github.com/fekuna/omnipos-commerce/pkg/token"
	"github.com/fekuna/omnipos-commerce/pkg/utils"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingRevoker struct {
	revoked map[string]time.Time
}

func (r *recordingRevoker) RevokeToken(_ context.Context, id string, until time.Time) error {
	r.revoked[id] = until
	return nil
}

func newUseCase(t *testing.T) (*mock.MockRepository, *token.JWTMaker, *recordingRevoker, *adminUseCase) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockRepository(ctrl)
	maker, err := token.NewJWTMaker("a-very-secret-signing-key", "omnipos-commerce")
	require.NoError(t, err)
	revoker := &recordingRevoker{revoked: map[string]time.Time{}}
	uc := NewAdminUseCase(repo, maker, revoker, time.Hour, logger.NewNop()).(*adminUseCase)
	return repo, maker, revoker, uc
}

func TestRegisterAdmin(t *testing.T) {
	repo, _, _, uc := newUseCase(t)

	repo.EXPECT().FindByEmail(gomock.Any(), "ola@omnipos.no").Return(nil, nil)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, a *model.Admin) error {
		ok, err := utils.ComparePassword(a.PasswordHash, "superhemmelig")
		require.NoError(t, err)
		assert.True(t, ok)
		return nil
	})

	a, err := uc.Register(context.Background(), &dto.RegisterAdminInput{Name: "Ola", Email: "Ola@Omnipos.no", Password: "superhemmelig"})
	require.NoError(t, err)
	assert.Equal(t, "ola@omnipos.no", a.Email)
}

func TestRegisterAdminDuplicate(t *testing.T) {
	repo, _, _, uc := newUseCase(t)
	repo.EXPECT().FindByEmail(gomock.Any(), "ola@omnipos.no").Return(&model.Admin{}, nil)

	_, err := uc.Register(context.Background(), &dto.RegisterAdminInput{Email: "ola@omnipos.no", Password: "superhemmelig"})
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusConflict, appErr.StatusCode)
}

func TestRegisterAdminMultibytePasswordOverBcryptLimit(t *testing.T) {
	repo, _, _, uc := newUseCase(t)
	repo.EXPECT().FindByEmail(gomock.Any(), "ola@omnipos.no").Return(nil, nil)

	_, err := uc.Register(context.Background(), &dto.RegisterAdminInput{Name: "Ola", Email: "ola@omnipos.no", Password: strings.Repeat("ø", 40)})
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.StatusCode)
	assert.Equal(t, apperror.KindValidation, appErr.Kind)
}

func TestLoginIssuesAdminToken(t *testing.T) {
	repo, maker, _, uc := newUseCase(t)
	hash, err := utils.HashPassword("superhemmelig")
	require.NoError(t, err)
	repo.EXPECT().FindByEmail(gomock.Any(), "ola@omnipos.no").Return(&model.Admin{BaseModel: model.BaseModel{ID: "a1"}, PasswordHash: hash}, nil).Times(2)

	res, err := uc.Login(context.Background(), &dto.LoginInput{Email: "ola@omnipos.no", Password: "superhemmelig"})
	require.NoError(t, err)
	payload, err := maker.VerifyToken(res.Token)
	require.NoError(t, err)
	assert.Equal(t, token.RoleAdmin, payload.Role)
	assert.Equal(t, "a1", payload.Subject)

	_, err = uc.Login(context.Background(), &dto.LoginInput{Email: "ola@omnipos.no", Password: "galt"})
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusUnauthorized, appErr.StatusCode)
}

func TestLogout(t *testing.T) {
	_, _, revoker, uc := newUseCase(t)
	until := time.Now().Add(time.Hour)

	require.NoError(t, uc.Logout(context.Background(), "jti-9", until))
	require.NoError(t, uc.Logout(context.Background(), "", until))
	assert.Len(t, revoker.revoked, 1)
	assert.Equal(t, until, revoker.revoked["jti-9"])
}
