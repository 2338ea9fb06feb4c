package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/fekuna/omnipos-commerce/internal/model"
	"github.com/fekuna/omnipos-commerce/internal/newsletter/dto"
	"github.com/jmoiron/sqlx"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

const subscriberSelect = `
    SELECT s.id, s.user_id, s.status, s.created_at, s.updated_at, u.email, u.name
    FROM subscribers s
    JOIN users u ON u.id = s.user_id`

func (r *PGRepository) Upsert(ctx context.Context, sub *model.Subscriber) error {
	query := `
        INSERT INTO subscribers (id, user_id, status, created_at, updated_at)
        VALUES (:id, :user_id, :status, :created_at, :updated_at)
        ON CONFLICT (user_id)
        DO UPDATE SET status = EXCLUDED.status, updated_at = EXCLUDED.updated_at
    `
	if _, err := r.DB.NamedExecContext(ctx, query, sub); err != nil {
		return fmt.Errorf("upsert subscriber: %w", err)
	}
	return nil
}

func (r *PGRepository) FindByUser(ctx context.Context, userID string) (*model.Subscriber, error) {
	var sub model.Subscriber
	if err := r.DB.GetContext(ctx, &sub, subscriberSelect+` WHERE s.user_id = $1`, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get subscriber: %w", err)
	}
	return &sub, nil
}

func (r *PGRepository) List(ctx context.Context, f *dto.SubscriberFilters) ([]model.Subscriber, int, error) {
	subs := []model.Subscriber{}
	var count int

	whereClause := ""
	args := []any{}
	if f.Status != "" {
		whereClause = " WHERE s.status = $1"
		args = append(args, string(f.Status))
	}

	if err := r.DB.GetContext(ctx, &count, `SELECT count(*) FROM subscribers s`+whereClause, args...); err != nil {
		return nil, 0, fmt.Errorf("count subscribers: %w", err)
	}

	query := subscriberSelect + whereClause + ` ORDER BY s.created_at DESC`
	if f.PageSize > 0 {
		query += fmt.Sprintf(" LIMIT %d OFFSET %d", f.PageSize, (f.Page-1)*f.PageSize)
	}
	if err := r.DB.SelectContext(ctx, &subs, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list subscribers: %w", err)
	}
	return subs, count, nil
}

func (r *PGRepository) SubscribedEmails(ctx context.Context) ([]string, error) {
	emails := []string{}
	query := `
        SELECT u.email FROM subscribers s
        JOIN users u ON u.id = s.user_id
        WHERE s.status = 'subscribed'
        ORDER BY u.email
    `
	if err := r.DB.SelectContext(ctx, &emails, query); err != nil {
		return nil, fmt.Errorf("list subscriber emails: %w", err)
	}
	return emails, nil
}
