package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
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

func sampleOrder() *model.Order {
	now := time.Now()
	return &model.Order{
		BaseModel:   model.BaseModel{ID: "o1", CreatedAt: now, UpdatedAt: now},
		OrderNumber: "ABCDEFGHJK",
		UserID:      "u1",
		Status:      model.OrderStatusPending,
		Subtotal:    20,
		Total:       20,
		Items: []model.OrderItem{
			{ID: "i1", OrderID: "o1", ProductID: "p1", ProductName: "Kaffe", Quantity: 1, UnitPrice: 10, LineTotal: 10},
			{ID: "i2", OrderID: "o1", ProductID: "p2", ProductName: "Te", Quantity: 1, UnitPrice: 10, LineTotal: 10},
		},
	}
}

func TestCreateWithItemsCommits(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO orders")).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO order_items")).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO order_items")).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.CreateWithItems(context.Background(), sampleOrder()))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateWithItemsRollsBackOnItemFailure(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO orders")).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO order_items")).WillReturnError(errors.New("fk violation"))
	mock.ExpectRollback()

	require.Error(t, repo.CreateWithItems(context.Background(), sampleOrder()))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByIDLoadsItems(t *testing.T) {
	repo, mock := newMock(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("FROM orders WHERE id = $1")).
		WithArgs("o1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "order_number", "user_id", "status", "subtotal", "discount_total", "total", "note", "created_at", "updated_at"}).
			AddRow("o1", "ABCDEFGHJK", "u1", "pending", 20.0, 0.0, 20.0, nil, now, now))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM order_items WHERE order_id = $1")).
		WithArgs("o1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "order_id", "product_id", "product_name", "quantity", "unit_price", "discount_percent", "line_total"}).
			AddRow("i1", "o1", "p1", "Kaffe", 2, 10.0, 0.0, 20.0))

	o, err := repo.FindByID(context.Background(), "o1")
	require.NoError(t, err)
	require.Len(t, o.Items, 1)
	assert.Equal(t, model.OrderStatusPending, o.Status)
	assert.Equal(t, 20.0, o.Items[0].LineTotal)
}

func TestUpdateStatus(t *testing.T) {
	repo, mock := newMock(t)
	at := time.Now()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE orders SET status = $1, updated_at = $2 WHERE id = $3")).
		WithArgs("shipped", at, "o1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.UpdateStatus(context.Background(), "o1", model.OrderStatusShipped, at))
}
