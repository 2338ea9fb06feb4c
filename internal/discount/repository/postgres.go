package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fekuna/omnipos-commerce/internal/discount/dto"
	"github.com/fekuna/omnipos-commerce/internal/model"
	"github.com/jmoiron/sqlx"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) CreateBulk(ctx context.Context, d *model.BulkDiscount) error {
	query := `
        INSERT INTO bulk_discounts (
            id, product_id, min_quantity, discount_percent, valid_from, valid_to, is_active, created_at, updated_at
        )
        VALUES (
            :id, :product_id, :min_quantity, :discount_percent, :valid_from, :valid_to, :is_active, :created_at, :updated_at
        )
    `
	if _, err := r.DB.NamedExecContext(ctx, query, d); err != nil {
		return fmt.Errorf("insert bulk discount: %w", err)
	}
	return nil
}

func (r *PGRepository) FindBulkByID(ctx context.Context, id string) (*model.BulkDiscount, error) {
	var d model.BulkDiscount
	if err := r.DB.GetContext(ctx, &d, `SELECT * FROM bulk_discounts WHERE id = $1`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get bulk discount: %w", err)
	}
	return &d, nil
}

func (r *PGRepository) ListBulk(ctx context.Context, f *dto.DiscountFilters) ([]model.BulkDiscount, int, error) {
	items := []model.BulkDiscount{}
	count, err := r.list(ctx, "bulk_discounts", "product_id, min_quantity", f, &items)
	if err != nil {
		return nil, 0, err
	}
	return items, count, nil
}

func (r *PGRepository) UpdateBulk(ctx context.Context, d *model.BulkDiscount) error {
	query := `
        UPDATE bulk_discounts SET
            min_quantity = :min_quantity,
            discount_percent = :discount_percent,
            valid_from = :valid_from,
            valid_to = :valid_to,
            is_active = :is_active,
            updated_at = :updated_at
        WHERE id = :id
    `
	if _, err := r.DB.NamedExecContext(ctx, query, d); err != nil {
		return fmt.Errorf("update bulk discount: %w", err)
	}
	return nil
}

func (r *PGRepository) DeleteBulk(ctx context.Context, id string) error {
	if _, err := r.DB.ExecContext(ctx, `DELETE FROM bulk_discounts WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete bulk discount: %w", err)
	}
	return nil
}

func (r *PGRepository) Create(ctx context.Context, d *model.Discount) error {
	query := `
        INSERT INTO discounts (
            id, product_id, discount_percent, min_order_value, valid_from, valid_to, is_active, created_at, updated_at
        )
        VALUES (
            :id, :product_id, :discount_percent, :min_order_value, :valid_from, :valid_to, :is_active, :created_at, :updated_at
        )
    `
	if _, err := r.DB.NamedExecContext(ctx, query, d); err != nil {
		return fmt.Errorf("insert discount: %w", err)
	}
	return nil
}

func (r *PGRepository) FindByID(ctx context.Context, id string) (*model.Discount, error) {
	var d model.Discount
	if err := r.DB.GetContext(ctx, &d, `SELECT * FROM discounts WHERE id = $1`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get discount: %w", err)
	}
	return &d, nil
}

func (r *PGRepository) List(ctx context.Context, f *dto.DiscountFilters) ([]model.Discount, int, error) {
	items := []model.Discount{}
	count, err := r.list(ctx, "discounts", "product_id, valid_from DESC", f, &items)
	if err != nil {
		return nil, 0, err
	}
	return items, count, nil
}

func (r *PGRepository) Update(ctx context.Context, d *model.Discount) error {
	query := `
        UPDATE discounts SET
            discount_percent = :discount_percent,
            min_order_value = :min_order_value,
            valid_from = :valid_from,
            valid_to = :valid_to,
            is_active = :is_active,
            updated_at = :updated_at
        WHERE id = :id
    `
	if _, err := r.DB.NamedExecContext(ctx, query, d); err != nil {
		return fmt.Errorf("update discount: %w", err)
	}
	return nil
}

func (r *PGRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.DB.ExecContext(ctx, `DELETE FROM discounts WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete discount: %w", err)
	}
	return nil
}

// list runs the shared filter/count/page query for both discount tables.
func (r *PGRepository) list(ctx context.Context, table, orderBy string, f *dto.DiscountFilters, dest any) (int, error) {
	var count int
	conditions := []string{}
	args := map[string]interface{}{}

	if f.ProductID != "" {
		conditions = append(conditions, "product_id = :product_id")
		args["product_id"] = f.ProductID
	}
	if f.ActiveOnly {
		conditions = append(conditions, "is_active = TRUE AND valid_from <= NOW() AND (valid_to IS NULL OR valid_to > NOW())")
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	countQuery, countArgs, err := sqlx.Named("SELECT count(*) FROM "+table+whereClause, args)
	if err != nil {
		return 0, err
	}
	if err := r.DB.GetContext(ctx, &count, r.DB.Rebind(countQuery), countArgs...); err != nil {
		return 0, fmt.Errorf("count %s: %w", table, err)
	}

	query := "SELECT * FROM " + table + whereClause + " ORDER BY " + orderBy
	if f.PageSize > 0 {
		offset := (f.Page - 1) * f.PageSize
		query += fmt.Sprintf(" LIMIT %d OFFSET %d", f.PageSize, offset)
	}
	listQuery, listArgs, err := sqlx.Named(query, args)
	if err != nil {
		return 0, err
	}
	if err := r.DB.SelectContext(ctx, dest, r.DB.Rebind(listQuery), listArgs...); err != nil {
		return 0, fmt.Errorf("list %s: %w", table, err)
	}
	return count, nil
}

const activeCondition = `product_id IN (?) AND is_active = TRUE AND valid_from <= ? AND (valid_to IS NULL OR valid_to > ?)`

func (r *PGRepository) ActiveBulkForProducts(ctx context.Context, productIDs []string, at time.Time) ([]model.BulkDiscount, error) {
	items := []model.BulkDiscount{}
	if len(productIDs) == 0 {
		return items, nil
	}
	query, args, err := sqlx.In(`SELECT * FROM bulk_discounts WHERE `+activeCondition+` ORDER BY min_quantity`, productIDs, at, at)
	if err != nil {
		return nil, err
	}
	if err := r.DB.SelectContext(ctx, &items, r.DB.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("active bulk discounts: %w", err)
	}
	return items, nil
}

func (r *PGRepository) ActiveForProducts(ctx context.Context, productIDs []string, at time.Time) ([]model.Discount, error) {
	items := []model.Discount{}
	if len(productIDs) == 0 {
		return items, nil
	}
	query, args, err := sqlx.In(`SELECT * FROM discounts WHERE `+activeCondition+` ORDER BY min_order_value`, productIDs, at, at)
	if err != nil {
		return nil, err
	}
	if err := r.DB.SelectContext(ctx, &items, r.DB.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("active discounts: %w", err)
	}
	return items, nil
}

func (r *PGRepository) DeactivateExpired(ctx context.Context, at time.Time) (int64, int64, error) {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return 0, 0, err
	}
	defer tx.Rollback()

	const stmt = `UPDATE %s SET is_active = FALSE, updated_at = $1
        WHERE is_active = TRUE AND valid_to IS NOT NULL AND valid_to <= $1`

	res, err := tx.ExecContext(ctx, fmt.Sprintf(stmt, "bulk_discounts"), at)
	if err != nil {
		return 0, 0, fmt.Errorf("deactivate bulk discounts: %w", err)
	}
	bulk, _ := res.RowsAffected()

	res, err = tx.ExecContext(ctx, fmt.Sprintf(stmt, "discounts"), at)
	if err != nil {
		return 0, 0, fmt.Errorf("deactivate discounts: %w", err)
	}
	campaigns, _ := res.RowsAffected()

	if err := tx.Commit(); err != nil {
		return 0, 0, err
	}
	return bulk, campaigns, nil
}
