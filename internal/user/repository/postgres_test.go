package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/fekuna/omnipos-commerce/internal/user/dto"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMock(t *testing.T) (*PGRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewPGRepository(sqlx.NewDb(db, "pgx")), mock
}

var userRowColumns = []string{
	"id", "email", "password_hash", "name", "phone", "company_name", "org_number", "address",
	"postal_code", "city", "is_approved", "is_verified", "created_at", "updated_at",
}

func TestFindByEmailMissingReturnsNil(t *testing.T) {
	repo, mock := newMock(t)
	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE lower(email) = lower($1)")).
		WithArgs("kari@firma.no").
		WillReturnRows(sqlmock.NewRows(userRowColumns))

	u, err := repo.FindByEmail(context.Background(), "kari@firma.no")
	require.NoError(t, err)
	assert.Nil(t, u)
}

func TestFindAllFilters(t *testing.T) {
	repo, mock := newMock(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT count(*) FROM users WHERE (name ILIKE $1 OR email ILIKE $2 OR company_name ILIKE $3) AND is_approved = $4")).
		WithArgs("%firma%", "%firma%", "%firma%", false).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY created_at DESC LIMIT 10 OFFSET 10")).
		WithArgs("%firma%", "%firma%", "%firma%", false).
		WillReturnRows(sqlmock.NewRows(userRowColumns).
			AddRow("u1", "kari@firma.no", "hash", "Kari", nil, "Firma AS", nil, nil, nil, nil, false, true, now, now))

	approved := false
	users, total, err := repo.FindAll(context.Background(), &dto.UserFilters{Search: "firma", IsApproved: &approved, Page: 2, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, users, 1)
	assert.Equal(t, "Firma AS", users[0].CompanyName)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSetApproved(t *testing.T) {
	repo, mock := newMock(t)
	mock.ExpectExec(regexp.QuoteMeta("UPDATE users SET is_approved = $1")).
		WithArgs(true, "u1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.SetApproved(context.Background(), "u1", true))
	require.NoError(t, mock.ExpectationsWereMet())
}
