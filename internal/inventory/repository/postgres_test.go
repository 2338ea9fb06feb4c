package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/fekuna/omnipos-commerce/internal/inventory/dto"
	"github.com/fekuna/omnipos-commerce/internal/model"
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

func TestAdjustStockWithMovementCommits(t *testing.T) {
	repo, mock := newMock(t)
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO inventory (")).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO inventory_movements")).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.AdjustStockWithMovement(context.Background(),
		&model.Inventory{ID: "i1", ProductID: "p1", Quantity: 5, UpdatedAt: now},
		&model.InventoryMovement{ID: "m1", ProductID: "p1", MovementType: model.MovementAdjustment, QuantityChange: 5, QuantityAfter: 5, CreatedAt: now},
	)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAdjustStockWithMovementRollsBack(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO inventory (")).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO inventory_movements")).WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	err := repo.AdjustStockWithMovement(context.Background(), &model.Inventory{}, &model.InventoryMovement{})
	require.Error(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFindAllLowStock(t *testing.T) {
	repo, mock := newMock(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT count(*) FROM inventory i WHERE i.quantity <= i.reorder_point AND i.reorder_point > 0")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY i.quantity ASC LIMIT 20 OFFSET 0")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "product_id", "quantity", "reorder_point", "shelf_life_days", "expiration_date", "updated_at", "product_name", "product_sku"}).
			AddRow("i1", "p1", 2, 5, nil, nil, now, "Kaffe", "K1"))

	items, total, err := repo.FindAll(context.Background(), &dto.InventoryFilters{LowStock: true, Page: 1, PageSize: 20})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, items, 1)
	assert.Equal(t, "Kaffe", items[0].ProductName)
}

func TestHasMovement(t *testing.T) {
	repo, mock := newMock(t)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS")).
		WithArgs("p1", "sale", "o1").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	ok, err := repo.HasMovement(context.Background(), "p1", "sale", "o1")
	require.NoError(t, err)
	assert.True(t, ok)
}
