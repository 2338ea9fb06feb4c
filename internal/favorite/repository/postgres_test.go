package repository

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/fekuna/omnipos-commerce/internal/model"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddIgnoresDuplicates(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewPGRepository(sqlx.NewDb(db, "pgx"))

	mock.ExpectExec(regexp.QuoteMeta("ON CONFLICT (user_id, product_id) DO NOTHING")).WillReturnResult(sqlmock.NewResult(0, 0))
	require.NoError(t, repo.Add(context.Background(), &model.Favorite{UserID: "u1", ProductID: "p1"}))
}

func TestRemoveReportsRowsAffected(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewPGRepository(sqlx.NewDb(db, "pgx"))

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM favorites")).WithArgs("u1", "p1").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM favorites")).WithArgs("u1", "p2").WillReturnResult(sqlmock.NewResult(0, 0))

	ok, err := repo.Remove(context.Background(), "u1", "p1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.Remove(context.Background(), "u1", "p2")
	require.NoError(t, err)
	assert.False(t, ok)
}
