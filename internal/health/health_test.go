package health

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/fekuna/omnipos-commerce/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

type fakeDB struct {
	mu  sync.Mutex
	err error
}

func (f *fakeDB) PingContext(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.err
}

func (f *fakeDB) set(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.err = err
}

func status(t *testing.T, srv *health.Server) healthpb.HealthCheckResponse_ServingStatus {
	t.Helper()
	res, err := srv.Check(context.Background(), &healthpb.HealthCheckRequest{})
	require.NoError(t, err)
	return res.Status
}

func TestWatchFollowsDatabase(t *testing.T) {
	db := &fakeDB{}
	srv := health.NewServer()
	c := NewChecker(db, logger.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		c.Watch(ctx, srv, 10*time.Millisecond)
		close(done)
	}()

	assert.Eventually(t, func() bool { return status(t, srv) == healthpb.HealthCheckResponse_SERVING }, time.Second, 5*time.Millisecond)

	db.set(errors.New("connection refused"))
	assert.Eventually(t, func() bool { return status(t, srv) == healthpb.HealthCheckResponse_NOT_SERVING }, time.Second, 5*time.Millisecond)

	cancel()
	<-done
}
