package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/fekuna/omnipos-commerce/internal/model"
	"github.com/jmoiron/sqlx"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) Get(ctx context.Context) (*model.AppConfig, error) {
	var cfg model.AppConfig
	query := `SELECT id, palette_enabled, maintenance_mode, updated_at FROM app_config WHERE id = 1`
	if err := r.DB.GetContext(ctx, &cfg, query); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get app config: %w", err)
	}
	return &cfg, nil
}

// Update writes the singleton row, recreating it if it was removed.
func (r *PGRepository) Update(ctx context.Context, cfg *model.AppConfig) error {
	query := `
        INSERT INTO app_config (id, palette_enabled, maintenance_mode, updated_at)
        VALUES (1, :palette_enabled, :maintenance_mode, :updated_at)
        ON CONFLICT (id)
        DO UPDATE SET palette_enabled = EXCLUDED.palette_enabled,
                      maintenance_mode = EXCLUDED.maintenance_mode,
                      updated_at = EXCLUDED.updated_at
    `
	if _, err := r.DB.NamedExecContext(ctx, query, cfg); err != nil {
		return fmt.Errorf("update app config: %w", err)
	}
	return nil
}
