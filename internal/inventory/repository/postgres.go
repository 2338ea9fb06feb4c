package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/fekuna/omnipos-commerce/internal/inventory/dto"
	"github.com/fekuna/omnipos-commerce/internal/model"
	"github.com/jmoiron/sqlx"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

const inventorySelect = `
    SELECT i.id, i.product_id, i.quantity, i.reorder_point, i.shelf_life_days,
           i.expiration_date, i.updated_at, p.name AS product_name, p.sku AS product_sku
    FROM inventory i
    JOIN products p ON p.id = i.product_id`

func (r *PGRepository) GetByProduct(ctx context.Context, productID string) (*model.Inventory, error) {
	var inv model.Inventory
	err := r.DB.GetContext(ctx, &inv, inventorySelect+` WHERE i.product_id = $1`, productID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil // caller decides on defaults
		}
		return nil, fmt.Errorf("get inventory: %w", err)
	}
	return &inv, nil
}

func (r *PGRepository) BatchGetByProducts(ctx context.Context, productIDs []string) ([]model.Inventory, error) {
	items := []model.Inventory{}
	if len(productIDs) == 0 {
		return items, nil
	}

	query, args, err := sqlx.In(inventorySelect+` WHERE i.product_id IN (?)`, productIDs)
	if err != nil {
		return nil, err
	}
	if err := r.DB.SelectContext(ctx, &items, r.DB.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("batch get inventory: %w", err)
	}
	return items, nil
}

func (r *PGRepository) FindAll(ctx context.Context, f *dto.InventoryFilters) ([]model.Inventory, int, error) {
	items := []model.Inventory{}
	var count int

	conditions := []string{}
	args := map[string]interface{}{}

	if f.ProductID != "" {
		conditions = append(conditions, "i.product_id = :product_id")
		args["product_id"] = f.ProductID
	}
	if f.LowStock {
		conditions = append(conditions, "i.quantity <= i.reorder_point AND i.reorder_point > 0")
	}
	if f.ExpiringBefore != nil {
		conditions = append(conditions, "i.expiration_date IS NOT NULL AND i.expiration_date <= :expiring_before")
		args["expiring_before"] = *f.ExpiringBefore
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	countQuery, countArgs, err := sqlx.Named("SELECT count(*) FROM inventory i"+whereClause, args)
	if err != nil {
		return nil, 0, err
	}
	if err := r.DB.GetContext(ctx, &count, r.DB.Rebind(countQuery), countArgs...); err != nil {
		return nil, 0, fmt.Errorf("count inventory: %w", err)
	}

	orderBy := " ORDER BY i.updated_at DESC"
	if f.ExpiringBefore != nil {
		orderBy = " ORDER BY i.expiration_date ASC"
	} else if f.LowStock {
		orderBy = " ORDER BY i.quantity ASC"
	}
	query := inventorySelect + whereClause + orderBy
	if f.PageSize > 0 {
		offset := (f.Page - 1) * f.PageSize
		query += fmt.Sprintf(" LIMIT %d OFFSET %d", f.PageSize, offset)
	}

	listQuery, listArgs, err := sqlx.Named(query, args)
	if err != nil {
		return nil, 0, err
	}
	if err := r.DB.SelectContext(ctx, &items, r.DB.Rebind(listQuery), listArgs...); err != nil {
		return nil, 0, fmt.Errorf("list inventory: %w", err)
	}
	return items, count, nil
}

const upsertInventory = `
    INSERT INTO inventory (
        id, product_id, quantity, reorder_point, shelf_life_days, expiration_date, updated_at
    )
    VALUES (
        :id, :product_id, :quantity, :reorder_point, :shelf_life_days, :expiration_date, :updated_at
    )
    ON CONFLICT (product_id)
    DO UPDATE SET
        quantity = EXCLUDED.quantity,
        reorder_point = EXCLUDED.reorder_point,
        shelf_life_days = EXCLUDED.shelf_life_days,
        expiration_date = EXCLUDED.expiration_date,
        updated_at = EXCLUDED.updated_at
`

func (r *PGRepository) CreateOrUpdate(ctx context.Context, inv *model.Inventory) error {
	if _, err := r.DB.NamedExecContext(ctx, upsertInventory, inv); err != nil {
		return fmt.Errorf("upsert inventory: %w", err)
	}
	return nil
}

func (r *PGRepository) ListMovements(ctx context.Context, f *dto.MovementFilters) ([]model.InventoryMovement, int, error) {
	items := []model.InventoryMovement{}
	var count int

	conditions := []string{}
	args := map[string]interface{}{}

	if f.ProductID != "" {
		conditions = append(conditions, "product_id = :product_id")
		args["product_id"] = f.ProductID
	}
	if f.MovementType != "" {
		conditions = append(conditions, "movement_type = :movement_type")
		args["movement_type"] = f.MovementType
	}
	if f.StartDate != nil {
		conditions = append(conditions, "created_at >= :start_date")
		args["start_date"] = *f.StartDate
	}
	if f.EndDate != nil {
		conditions = append(conditions, "created_at < :end_date")
		args["end_date"] = *f.EndDate
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	countQuery, countArgs, err := sqlx.Named("SELECT count(*) FROM inventory_movements"+whereClause, args)
	if err != nil {
		return nil, 0, err
	}
	if err := r.DB.GetContext(ctx, &count, r.DB.Rebind(countQuery), countArgs...); err != nil {
		return nil, 0, fmt.Errorf("count movements: %w", err)
	}

	query := "SELECT * FROM inventory_movements" + whereClause + " ORDER BY created_at DESC"
	if f.PageSize > 0 {
		offset := (f.Page - 1) * f.PageSize
		query += fmt.Sprintf(" LIMIT %d OFFSET %d", f.PageSize, offset)
	}

	listQuery, listArgs, err := sqlx.Named(query, args)
	if err != nil {
		return nil, 0, err
	}
	if err := r.DB.SelectContext(ctx, &items, r.DB.Rebind(listQuery), listArgs...); err != nil {
		return nil, 0, fmt.Errorf("list movements: %w", err)
	}
	return items, count, nil
}

func (r *PGRepository) HasMovement(ctx context.Context, productID, referenceType, referenceID string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (
        SELECT 1 FROM inventory_movements
        WHERE product_id = $1 AND reference_type = $2 AND reference_id = $3
    )`
	if err := r.DB.GetContext(ctx, &exists, query, productID, referenceType, referenceID); err != nil {
		return false, fmt.Errorf("check movement: %w", err)
	}
	return exists, nil
}

func (r *PGRepository) AdjustStockWithMovement(ctx context.Context, inv *model.Inventory, movement *model.InventoryMovement) error {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// 1. Update Inventory
	if _, err = tx.NamedExecContext(ctx, upsertInventory, inv); err != nil {
		return fmt.Errorf("failed to update inventory: %w", err)
	}

	// 2. Log Movement
	insertLogQuery := `
        INSERT INTO inventory_movements (
            id, product_id, movement_type, quantity_change, quantity_before, quantity_after,
            reference_type, reference_id, notes, created_by, created_at
        )
        VALUES (
            :id, :product_id, :movement_type, :quantity_change, :quantity_before, :quantity_after,
            :reference_type, :reference_id, :notes, :created_by, :created_at
        )
    `
	if _, err = tx.NamedExecContext(ctx, insertLogQuery, movement); err != nil {
		return fmt.Errorf("failed to log movement: %w", err)
	}

	return tx.Commit()
}
