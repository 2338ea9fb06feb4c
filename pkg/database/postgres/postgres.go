package postgres

import (
	"context"
	"fmt"
	"sync"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" driver
	"github.com/jmoiron/sqlx"
)

const driverName = "pgx"

type Config struct {
	URI             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

// NewPostgres opens a pool and verifies it with a ping.
func NewPostgres(cfg *Config) (*sqlx.DB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := sqlx.ConnectContext(ctx, driverName, cfg.URI)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}
	applyPool(db, cfg)
	return db, nil
}

func applyPool(db *sqlx.DB, cfg *Config) {
	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}
	if cfg.ConnMaxIdleTime > 0 {
		db.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)
	}
}

// Connector hands out one shared *sqlx.DB. Connect is idempotent: the first
// call dials, later calls return the same handle (or the same error).
type Connector struct {
	cfg  *Config
	open func(*Config) (*sqlx.DB, error)

	once sync.Once
	db   *sqlx.DB
	err  error
}

func NewConnector(cfg *Config) *Connector {
	return &Connector{cfg: cfg, open: NewPostgres}
}

func (c *Connector) Connect() (*sqlx.DB, error) {
	c.once.Do(func() {
		c.db, c.err = c.open(c.cfg)
	})
	return c.db, c.err
}

func (c *Connector) Close() error {
	if c.db == nil {
		return nil
	}
	return c.db.Close()
}
