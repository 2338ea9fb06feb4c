package postgres

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectorIsIdempotent(t *testing.T) {
	mockDB, _, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()

	calls := 0
	c := &Connector{
		cfg: &Config{URI: "ignored"},
		open: func(*Config) (*sqlx.DB, error) {
			calls++
			return sqlx.NewDb(mockDB, "sqlmock"), nil
		},
	}

	var wg sync.WaitGroup
	handles := make([]*sqlx.DB, 8)
	for i := range handles {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			db, err := c.Connect()
			assert.NoError(t, err)
			handles[i] = db
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, calls)
	for _, h := range handles {
		assert.Same(t, handles[0], h)
	}
}

func TestConnectorRemembersError(t *testing.T) {
	boom := errors.New("dial failed")
	calls := 0
	c := &Connector{
		cfg: &Config{},
		open: func(*Config) (*sqlx.DB, error) {
			calls++
			return nil, boom
		},
	}

	_, err := c.Connect()
	assert.ErrorIs(t, err, boom)
	_, err = c.Connect()
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, calls)
	assert.NoError(t, c.Close())
}

func TestApplyPool(t *testing.T) {
	mockDB, _, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()

	db := sqlx.NewDb(mockDB, "sqlmock")
	applyPool(db, &Config{MaxOpenConns: 7, MaxIdleConns: 3, ConnMaxLifetime: time.Minute})
	assert.Equal(t, 7, db.Stats().MaxOpenConnections)
}
