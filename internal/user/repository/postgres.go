package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/fekuna/omnipos-commerce/internal/model"
	"github.com/fekuna/omnipos-commerce/internal/user/dto"
	"github.com/jmoiron/sqlx"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

const userColumns = `id, email, password_hash, name, phone, company_name, org_number, address,
    postal_code, city, is_approved, is_verified, created_at, updated_at`

func (r *PGRepository) Create(ctx context.Context, u *model.User) error {
	query := `
        INSERT INTO users (
            id, email, password_hash, name, phone, company_name, org_number,
            address, postal_code, city, is_approved, is_verified, created_at, updated_at
        )
        VALUES (
            :id, :email, :password_hash, :name, :phone, :company_name, :org_number,
            :address, :postal_code, :city, :is_approved, :is_verified, :created_at, :updated_at
        )
    `
	if _, err := r.DB.NamedExecContext(ctx, query, u); err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (r *PGRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	return r.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1 LIMIT 1`, id)
}

func (r *PGRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE lower(email) = lower($1) LIMIT 1`, email)
}

func (r *PGRepository) findOne(ctx context.Context, query string, arg any) (*model.User, error) {
	var u model.User
	if err := r.DB.GetContext(ctx, &u, query, arg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}

func (r *PGRepository) FindAll(ctx context.Context, f *dto.UserFilters) ([]model.User, int, error) {
	users := []model.User{}
	var count int

	conditions := []string{}
	args := map[string]interface{}{}

	if f.Search != "" {
		conditions = append(conditions, "(name ILIKE :search OR email ILIKE :search OR company_name ILIKE :search)")
		args["search"] = "%" + f.Search + "%"
	}
	if f.IsApproved != nil {
		conditions = append(conditions, "is_approved = :is_approved")
		args["is_approved"] = *f.IsApproved
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	countQuery, countArgs, err := sqlx.Named("SELECT count(*) FROM users"+whereClause, args)
	if err != nil {
		return nil, 0, err
	}
	if err := r.DB.GetContext(ctx, &count, r.DB.Rebind(countQuery), countArgs...); err != nil {
		return nil, 0, fmt.Errorf("count users: %w", err)
	}

	query := "SELECT " + userColumns + " FROM users" + whereClause + " ORDER BY created_at DESC"
	if f.PageSize > 0 {
		offset := (f.Page - 1) * f.PageSize
		query += fmt.Sprintf(" LIMIT %d OFFSET %d", f.PageSize, offset)
	}

	listQuery, listArgs, err := sqlx.Named(query, args)
	if err != nil {
		return nil, 0, err
	}
	if err := r.DB.SelectContext(ctx, &users, r.DB.Rebind(listQuery), listArgs...); err != nil {
		return nil, 0, fmt.Errorf("list users: %w", err)
	}
	return users, count, nil
}

func (r *PGRepository) SetApproved(ctx context.Context, id string, approved bool) error {
	query := `UPDATE users SET is_approved = $1, updated_at = NOW() WHERE id = $2`
	if _, err := r.DB.ExecContext(ctx, query, approved, id); err != nil {
		return fmt.Errorf("approve user: %w", err)
	}
	return nil
}

func (r *PGRepository) SetVerified(ctx context.Context, id string) error {
	query := `UPDATE users SET is_verified = TRUE, updated_at = NOW() WHERE id = $1`
	if _, err := r.DB.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("verify user: %w", err)
	}
	return nil
}

func (r *PGRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.DB.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}
