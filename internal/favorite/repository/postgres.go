package repository

import (
	"context"
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

func (r *PGRepository) Add(ctx context.Context, fav *model.Favorite) error {
	query := `
        INSERT INTO favorites (id, user_id, product_id, created_at, updated_at)
        VALUES (:id, :user_id, :product_id, :created_at, :updated_at)
        ON CONFLICT (user_id, product_id) DO NOTHING
    `
	if _, err := r.DB.NamedExecContext(ctx, query, fav); err != nil {
		return fmt.Errorf("insert favorite: %w", err)
	}
	return nil
}

func (r *PGRepository) Remove(ctx context.Context, userID, productID string) (bool, error) {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM favorites WHERE user_id = $1 AND product_id = $2`, userID, productID)
	if err != nil {
		return false, fmt.Errorf("delete favorite: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *PGRepository) ListByUser(ctx context.Context, userID string) ([]model.Favorite, error) {
	favs := []model.Favorite{}
	query := `SELECT id, user_id, product_id, created_at, updated_at FROM favorites WHERE user_id = $1 ORDER BY created_at DESC`
	if err := r.DB.SelectContext(ctx, &favs, query, userID); err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	return favs, nil
}
