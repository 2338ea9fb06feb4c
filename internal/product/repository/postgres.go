package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/fekuna/omnipos-commerce/internal/model"
	"github.com/fekuna/omnipos-commerce/internal/product/dto"
	"github.com/jmoiron/sqlx"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

const productColumns = `id, category_id, sku, name, slug, description, price, unit, image_url, is_active, created_at, updated_at`

func (r *PGRepository) Create(ctx context.Context, p *model.Product) error {
	query := `
        INSERT INTO products (
            id, category_id, sku, name, slug, description,
            price, unit, image_url, is_active, created_at, updated_at
        )
        VALUES (
            :id, :category_id, :sku, :name, :slug, :description,
            :price, :unit, :image_url, :is_active, :created_at, :updated_at
        )
    `
	if _, err := r.DB.NamedExecContext(ctx, query, p); err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

func (r *PGRepository) FindByID(ctx context.Context, id string) (*model.Product, error) {
	return r.findOne(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1 LIMIT 1`, id)
}

func (r *PGRepository) FindBySlug(ctx context.Context, slug string) (*model.Product, error) {
	return r.findOne(ctx, `SELECT `+productColumns+` FROM products WHERE slug = $1 LIMIT 1`, slug)
}

func (r *PGRepository) findOne(ctx context.Context, query string, arg any) (*model.Product, error) {
	var product model.Product
	err := r.DB.GetContext(ctx, &product, query, arg)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &product, nil
}

func (r *PGRepository) FindByIDs(ctx context.Context, ids []string) ([]model.Product, error) {
	products := []model.Product{}
	if len(ids) == 0 {
		return products, nil
	}
	query, args, err := sqlx.In(`SELECT `+productColumns+` FROM products WHERE id IN (?)`, ids)
	if err != nil {
		return nil, err
	}
	if err := r.DB.SelectContext(ctx, &products, r.DB.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("get products: %w", err)
	}
	return products, nil
}

var sortColumns = map[string]string{
	"name":       "name",
	"price":      "price",
	"created_at": "created_at",
}

func (r *PGRepository) FindAll(ctx context.Context, f *dto.ProductFilters) ([]model.Product, int, error) {
	products := []model.Product{}
	var count int

	conditions := []string{}
	args := map[string]interface{}{}

	if f.CategoryID != "" {
		conditions = append(conditions, "category_id = :category_id")
		args["category_id"] = f.CategoryID
	}
	if f.IsActive != nil {
		conditions = append(conditions, "is_active = :is_active")
		args["is_active"] = *f.IsActive
	}
	if f.MinPrice != nil {
		conditions = append(conditions, "price >= :min_price")
		args["min_price"] = *f.MinPrice
	}
	if f.MaxPrice != nil {
		conditions = append(conditions, "price <= :max_price")
		args["max_price"] = *f.MaxPrice
	}
	if f.SearchQuery != "" {
		conditions = append(conditions, "(name ILIKE :search OR sku ILIKE :search OR description ILIKE :search)")
		args["search"] = "%" + f.SearchQuery + "%"
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	countQuery, countArgs, err := sqlx.Named("SELECT count(*) FROM products"+whereClause, args)
	if err != nil {
		return nil, 0, err
	}
	if err := r.DB.GetContext(ctx, &count, r.DB.Rebind(countQuery), countArgs...); err != nil {
		return nil, 0, fmt.Errorf("count products: %w", err)
	}

	// Sort columns are whitelisted; user input never reaches the query text.
	orderBy := "created_at DESC"
	if col, ok := sortColumns[f.SortBy]; ok {
		orderBy = col + " DESC"
		if strings.ToLower(f.SortOrder) == "asc" {
			orderBy = col + " ASC"
		}
	}

	query := fmt.Sprintf("SELECT %s FROM products%s ORDER BY %s", productColumns, whereClause, orderBy)
	if f.PageSize > 0 {
		offset := (f.Page - 1) * f.PageSize
		query += fmt.Sprintf(" LIMIT %d OFFSET %d", f.PageSize, offset)
	}

	listQuery, listArgs, err := sqlx.Named(query, args)
	if err != nil {
		return nil, 0, err
	}
	if err := r.DB.SelectContext(ctx, &products, r.DB.Rebind(listQuery), listArgs...); err != nil {
		return nil, 0, fmt.Errorf("list products: %w", err)
	}

	return products, count, nil
}

func (r *PGRepository) Update(ctx context.Context, p *model.Product) error {
	query := `
        UPDATE products
        SET category_id = :category_id,
            sku = :sku,
            name = :name,
            slug = :slug,
            description = :description,
            price = :price,
            unit = :unit,
            image_url = :image_url,
            is_active = :is_active,
            updated_at = :updated_at
        WHERE id = :id
    `
	if _, err := r.DB.NamedExecContext(ctx, query, p); err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

func (r *PGRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.DB.ExecContext(ctx, "DELETE FROM products WHERE id = $1", id); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

func (r *PGRepository) IsSKUUnique(ctx context.Context, sku, excludeID string) (bool, error) {
	var count int
	query := `SELECT count(*) FROM products WHERE sku = $1`
	args := []interface{}{sku}
	if excludeID != "" {
		query += ` AND id != $2`
		args = append(args, excludeID)
	}

	if err := r.DB.GetContext(ctx, &count, query, args...); err != nil {
		return false, fmt.Errorf("check sku: %w", err)
	}
	return count == 0, nil
}
