package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/fekuna/omnipos-commerce/internal/model"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewPGRepository(sqlx.NewDb(db, "pgx"))

	mock.ExpectQuery(regexp.QuoteMeta("FROM app_config WHERE id = 1")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "palette_enabled", "maintenance_mode", "updated_at"}).
			AddRow(1, true, false, time.Now()))

	cfg, err := repo.Get(context.Background())
	require.NoError(t, err)
	assert.True(t, cfg.PaletteEnabled)
}

func TestUpdate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewPGRepository(sqlx.NewDb(db, "pgx"))

	now := time.Now()
	mock.ExpectExec(regexp.QuoteMeta("ON CONFLICT (id)")).
		WithArgs(false, true, now).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Update(context.Background(), &model.AppConfig{ID: 1, MaintenanceMode: true, UpdatedAt: now}))
	assert.NoError(t, mock.ExpectationsWereMet())
}
