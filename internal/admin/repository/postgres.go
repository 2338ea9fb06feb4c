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

func (r *PGRepository) Create(ctx context.Context, a *model.Admin) error {
	query := `
        INSERT INTO admins (id, name, email, password_hash, created_at, updated_at)
        VALUES (:id, :name, :email, :password_hash, :created_at, :updated_at)
    `
	if _, err := r.DB.NamedExecContext(ctx, query, a); err != nil {
		return fmt.Errorf("insert admin: %w", err)
	}
	return nil
}

func (r *PGRepository) FindByID(ctx context.Context, id string) (*model.Admin, error) {
	return r.findOne(ctx, `SELECT * FROM admins WHERE id = $1 LIMIT 1`, id)
}

func (r *PGRepository) FindByEmail(ctx context.Context, email string) (*model.Admin, error) {
	return r.findOne(ctx, `SELECT * FROM admins WHERE lower(email) = lower($1) LIMIT 1`, email)
}

func (r *PGRepository) findOne(ctx context.Context, query string, arg any) (*model.Admin, error) {
	var a model.Admin
	if err := r.DB.GetContext(ctx, &a, query, arg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get admin: %w", err)
	}
	return &a, nil
}
