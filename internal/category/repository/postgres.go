package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/fekuna/omnipos-commerce/internal/category/dto"
	"github.com/fekuna/omnipos-commerce/internal/model"
	"github.com/jmoiron/sqlx"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

const categoryColumns = `id, parent_id, name, slug, description, image_url, sort_order, is_active, created_at, updated_at`

func (r *PGRepository) Create(ctx context.Context, c *model.Category) error {
	query := `
        INSERT INTO categories (id, parent_id, name, slug, description, image_url, sort_order, is_active, created_at, updated_at)
        VALUES (:id, :parent_id, :name, :slug, :description, :image_url, :sort_order, :is_active, :created_at, :updated_at)
    `
	if _, err := r.DB.NamedExecContext(ctx, query, c); err != nil {
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

func (r *PGRepository) FindByID(ctx context.Context, id string) (*model.Category, error) {
	return r.findOne(ctx, `SELECT `+categoryColumns+` FROM categories WHERE id = $1 LIMIT 1`, id)
}

func (r *PGRepository) FindBySlug(ctx context.Context, slug string) (*model.Category, error) {
	return r.findOne(ctx, `SELECT `+categoryColumns+` FROM categories WHERE slug = $1 LIMIT 1`, slug)
}

func (r *PGRepository) findOne(ctx context.Context, query string, arg any) (*model.Category, error) {
	var category model.Category
	err := r.DB.GetContext(ctx, &category, query, arg)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return &category, nil
}

func (r *PGRepository) FindAll(ctx context.Context, f *dto.CategoryFilters) ([]model.Category, int, error) {
	categories := []model.Category{}
	var count int

	conditions := []string{}
	args := map[string]interface{}{}

	if f.ParentID != nil {
		if *f.ParentID == "" {
			conditions = append(conditions, "parent_id IS NULL")
		} else {
			conditions = append(conditions, "parent_id = :parent_id")
			args["parent_id"] = *f.ParentID
		}
	}
	if f.IsActive != nil {
		conditions = append(conditions, "is_active = :is_active")
		args["is_active"] = *f.IsActive
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	countQuery, countArgs, err := sqlx.Named("SELECT count(*) FROM categories"+whereClause, args)
	if err != nil {
		return nil, 0, err
	}
	if err := r.DB.GetContext(ctx, &count, r.DB.Rebind(countQuery), countArgs...); err != nil {
		return nil, 0, fmt.Errorf("count categories: %w", err)
	}

	query := "SELECT " + categoryColumns + " FROM categories" + whereClause + " ORDER BY sort_order ASC, name ASC"
	if f.PageSize > 0 {
		offset := (f.Page - 1) * f.PageSize
		query += fmt.Sprintf(" LIMIT %d OFFSET %d", f.PageSize, offset)
	}

	listQuery, listArgs, err := sqlx.Named(query, args)
	if err != nil {
		return nil, 0, err
	}
	if err := r.DB.SelectContext(ctx, &categories, r.DB.Rebind(listQuery), listArgs...); err != nil {
		return nil, 0, fmt.Errorf("list categories: %w", err)
	}

	return categories, count, nil
}

func (r *PGRepository) Update(ctx context.Context, c *model.Category) error {
	query := `
        UPDATE categories
        SET parent_id = :parent_id,
            name = :name,
            slug = :slug,
            description = :description,
            image_url = :image_url,
            sort_order = :sort_order,
            is_active = :is_active,
            updated_at = :updated_at
        WHERE id = :id
    `
	if _, err := r.DB.NamedExecContext(ctx, query, c); err != nil {
		return fmt.Errorf("update category: %w", err)
	}
	return nil
}

func (r *PGRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.DB.ExecContext(ctx, "DELETE FROM categories WHERE id = $1", id); err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}

func (r *PGRepository) CountChildren(ctx context.Context, id string) (int, error) {
	var n int
	if err := r.DB.GetContext(ctx, &n, "SELECT count(*) FROM categories WHERE parent_id = $1", id); err != nil {
		return 0, fmt.Errorf("count child categories: %w", err)
	}
	return n, nil
}

func (r *PGRepository) CountProducts(ctx context.Context, id string) (int, error) {
	var n int
	if err := r.DB.GetContext(ctx, &n, "SELECT count(*) FROM products WHERE category_id = $1", id); err != nil {
		return 0, fmt.Errorf("count category products: %w", err)
	}
	return n, nil
}
