package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fekuna/omnipos-commerce/internal/model"
	"github.com/fekuna/omnipos-commerce/internal/order/dto"
	"github.com/jmoiron/sqlx"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

const orderColumns = `id, order_number, user_id, status, subtotal, discount_total, total, note, created_at, updated_at`

func (r *PGRepository) CreateWithItems(ctx context.Context, o *model.Order) error {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	insertOrder := `
        INSERT INTO orders (
            id, order_number, user_id, status, subtotal, discount_total, total, note, created_at, updated_at
        )
        VALUES (
            :id, :order_number, :user_id, :status, :subtotal, :discount_total, :total, :note, :created_at, :updated_at
        )
    `
	if _, err := tx.NamedExecContext(ctx, insertOrder, o); err != nil {
		return fmt.Errorf("insert order: %w", err)
	}

	insertItem := `
        INSERT INTO order_items (
            id, order_id, product_id, product_name, quantity, unit_price, discount_percent, line_total
        )
        VALUES (
            :id, :order_id, :product_id, :product_name, :quantity, :unit_price, :discount_percent, :line_total
        )
    `
	for i := range o.Items {
		if _, err := tx.NamedExecContext(ctx, insertItem, &o.Items[i]); err != nil {
			return fmt.Errorf("insert order item: %w", err)
		}
	}

	return tx.Commit()
}

func (r *PGRepository) FindByID(ctx context.Context, id string) (*model.Order, error) {
	var o model.Order
	err := r.DB.GetContext(ctx, &o, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}

	o.Items = []model.OrderItem{}
	if err := r.DB.SelectContext(ctx, &o.Items, `SELECT * FROM order_items WHERE order_id = $1 ORDER BY product_name`, id); err != nil {
		return nil, fmt.Errorf("get order items: %w", err)
	}
	return &o, nil
}

func (r *PGRepository) FindAll(ctx context.Context, f *dto.OrderFilters) ([]model.Order, int, error) {
	orders := []model.Order{}
	var count int

	conditions := []string{}
	args := map[string]interface{}{}

	if f.UserID != "" {
		conditions = append(conditions, "user_id = :user_id")
		args["user_id"] = f.UserID
	}
	if f.Status != "" {
		conditions = append(conditions, "status = :status")
		args["status"] = f.Status
	}
	if f.OrderNumber != "" {
		conditions = append(conditions, "order_number ILIKE :order_number")
		args["order_number"] = "%" + f.OrderNumber + "%"
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	countQuery, countArgs, err := sqlx.Named("SELECT count(*) FROM orders"+whereClause, args)
	if err != nil {
		return nil, 0, err
	}
	if err := r.DB.GetContext(ctx, &count, r.DB.Rebind(countQuery), countArgs...); err != nil {
		return nil, 0, fmt.Errorf("count orders: %w", err)
	}

	query := "SELECT " + orderColumns + " FROM orders" + whereClause + " ORDER BY created_at DESC"
	if f.PageSize > 0 {
		offset := (f.Page - 1) * f.PageSize
		query += fmt.Sprintf(" LIMIT %d OFFSET %d", f.PageSize, offset)
	}

	listQuery, listArgs, err := sqlx.Named(query, args)
	if err != nil {
		return nil, 0, err
	}
	if err := r.DB.SelectContext(ctx, &orders, r.DB.Rebind(listQuery), listArgs...); err != nil {
		return nil, 0, fmt.Errorf("list orders: %w", err)
	}
	return orders, count, nil
}

func (r *PGRepository) UpdateStatus(ctx context.Context, id string, status model.OrderStatus, updatedAt time.Time) error {
	query := `UPDATE orders SET status = $1, updated_at = $2 WHERE id = $3`
	if _, err := r.DB.ExecContext(ctx, query, string(status), updatedAt, id); err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	return nil
}
