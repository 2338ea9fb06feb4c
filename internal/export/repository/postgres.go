package repository

import (
	"context"
	"fmt"

	"github.com/fekuna/omnipos-commerce/internal/export/dto"
	"github.com/fekuna/omnipos-commerce/internal/model"
	"github.com/jmoiron/sqlx"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) Users(ctx context.Context) ([]model.User, error) {
	users := []model.User{}
	query := `
        SELECT id, email, name, phone, company_name, org_number, address, postal_code, city,
               is_approved, is_verified, created_at, updated_at
        FROM users
        ORDER BY created_at
    `
	if err := r.DB.SelectContext(ctx, &users, query); err != nil {
		return nil, fmt.Errorf("export users: %w", err)
	}
	return users, nil
}

func (r *PGRepository) Products(ctx context.Context) ([]dto.ProductRow, error) {
	rows := []dto.ProductRow{}
	query := `
        SELECT p.sku, p.name, c.name AS category_name, p.price, p.unit, i.quantity, p.is_active
        FROM products p
        LEFT JOIN categories c ON c.id = p.category_id
        LEFT JOIN inventory i ON i.product_id = p.id
        ORDER BY p.name
    `
	if err := r.DB.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("export products: %w", err)
	}
	return rows, nil
}

func (r *PGRepository) Orders(ctx context.Context) ([]dto.OrderRow, error) {
	rows := []dto.OrderRow{}
	query := `
        SELECT o.order_number, o.created_at, o.status,
               u.name AS customer_name, u.company_name, u.email AS customer_email,
               (SELECT count(*) FROM order_items oi WHERE oi.order_id = o.id) AS item_count,
               o.subtotal, o.discount_total, o.total
        FROM orders o
        JOIN users u ON u.id = o.user_id
        ORDER BY o.created_at DESC
    `
	if err := r.DB.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("export orders: %w", err)
	}
	return rows, nil
}
