package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrdersJoinsCustomer(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewPGRepository(sqlx.NewDb(db, "pgx"))

	cols := []string{"order_number", "created_at", "status", "customer_name", "company_name", "customer_email", "item_count", "subtotal", "discount_total", "total"}
	mock.ExpectQuery(regexp.QuoteMeta("JOIN users u ON u.id = o.user_id")).
		WillReturnRows(sqlmock.NewRows(cols).AddRow("AB12CD34EF", time.Now(), "pending", "Kari", "Nordmann AS", "kari@example.no", 2, "100.00", "10.00", "90.00"))

	rows, err := repo.Orders(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 90.0, rows[0].Total)
	assert.Equal(t, 2, rows[0].ItemCount)
}

func TestProductsLeftJoinsStock(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewPGRepository(sqlx.NewDb(db, "pgx"))

	mock.ExpectQuery(regexp.QuoteMeta("LEFT JOIN inventory i ON i.product_id = p.id")).
		WillReturnRows(sqlmock.NewRows([]string{"sku", "name", "category_name", "price", "unit", "quantity", "is_active"}).
			AddRow("KAF-1", "Kaffe", nil, 89.5, "stk", nil, true))

	rows, err := repo.Products(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Nil(t, rows[0].Quantity)
	assert.Nil(t, rows[0].CategoryName)
}
