package health

import (
	"context"
	"time"

	"github.com/fekuna/omnipos-commerce/pkg/logger"
	"go.uber.org/zap"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

const pingTimeout = 2 * time.Second

// Pinger is satisfied by *sqlx.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Checker struct {
	db     Pinger
	logger logger.ZapLogger
}

func NewChecker(db Pinger, log logger.ZapLogger) *Checker {
	return &Checker{db: db, logger: log}
}

// Check pings the database.
func (c *Checker) Check(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	return c.db.PingContext(ctx)
}

// Watch mirrors the database status into the gRPC health server until ctx ends.
func (c *Checker) Watch(ctx context.Context, srv *health.Server, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	last := healthpb.HealthCheckResponse_UNKNOWN
	for {
		status := healthpb.HealthCheckResponse_SERVING
		if err := c.Check(ctx); err != nil {
			status = healthpb.HealthCheckResponse_NOT_SERVING
			if last != status {
				c.logger.Error("Database health check failed", zap.Error(err))
			}
		}
		if status != last {
			srv.SetServingStatus("", status)
			last = status
		}

		select {
		case <-ctx.Done():
			srv.Shutdown()
			return
		case <-ticker.C:
		}
	}
}
