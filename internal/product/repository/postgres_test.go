package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/fekuna/omnipos-commerce/internal/product/dto"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var columns = []string{"id", "category_id", "sku", "name", "slug", "description", "price", "unit", "image_url", "is_active", "created_at", "updated_at"}

func newMock(t *testing.T) (*PGRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewPGRepository(sqlx.NewDb(db, "pgx")), mock
}

func TestFindAllFiltersAndSorts(t *testing.T) {
	repo, mock := newMock(t)
	now := time.Now()
	minPrice := 10.0

	mock.ExpectQuery(regexp.QuoteMeta("SELECT count(*) FROM products WHERE category_id = $1 AND price >= $2 AND (name ILIKE $3 OR sku ILIKE $4 OR description ILIKE $5)")).
		WithArgs("cat-1", 10.0, "%te%", "%te%", "%te%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY price ASC LIMIT 10 OFFSET 0")).
		WithArgs("cat-1", 10.0, "%te%", "%te%", "%te%").
		WillReturnRows(sqlmock.NewRows(columns).AddRow("p1", "cat-1", "TE-1", "Te", "te", nil, 12.5, "stk", nil, true, now, now))

	products, total, err := repo.FindAll(context.Background(), &dto.ProductFilters{
		CategoryID:  "cat-1",
		MinPrice:    &minPrice,
		SearchQuery: "te",
		SortBy:      "price",
		SortOrder:   "ASC",
		Page:        1,
		PageSize:    10,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, products, 1)
	assert.Equal(t, 12.5, products[0].Price)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFindAllIgnoresUnknownSort(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT count(*) FROM products")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY created_at DESC")).
		WillReturnRows(sqlmock.NewRows(columns))

	products, _, err := repo.FindAll(context.Background(), &dto.ProductFilters{SortBy: "price; DROP TABLE products"})
	require.NoError(t, err)
	assert.Empty(t, products)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByIDs(t *testing.T) {
	repo, mock := newMock(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("FROM products WHERE id IN ($1, $2)")).
		WithArgs("p1", "p2").
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow("p1", nil, "A", "A", "a", nil, 1.0, "stk", nil, true, now, now).
			AddRow("p2", nil, "B", "B", "b", nil, 2.0, "kg", nil, true, now, now))

	products, err := repo.FindByIDs(context.Background(), []string{"p1", "p2"})
	require.NoError(t, err)
	assert.Len(t, products, 2)

	empty, err := repo.FindByIDs(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestIsSKUUnique(t *testing.T) {
	repo, mock := newMock(t)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT count(*) FROM products WHERE sku = $1 AND id != $2")).
		WithArgs("TE-1", "p1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	unique, err := repo.IsSKUUnique(context.Background(), "TE-1", "p1")
	require.NoError(t, err)
	assert.False(t, unique)
}
