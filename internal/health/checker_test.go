package health

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/acs-faq/backend/internal/database"
	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStores struct {
	db, redis bool
	dbErr     error
}

func (f fakeStores) HasDatabase() bool                      { return f.db }
func (f fakeStores) HasRedis() bool                         { return f.redis }
func (f fakeStores) PingDatabase(ctx context.Context) error { return f.dbErr }
func (f fakeStores) PingRedis(ctx context.Context) error    { return nil }

func TestCheckAll_NothingConfigured(t *testing.T) {
	checker := NewHealthChecker(fakeStores{}, 8, logrus.New())

	health := checker.CheckAll(context.Background())

	assert.Equal(t, StatusHealthy, health.Status)
	assert.Equal(t, 8, health.FAQEntries)
	require.Len(t, health.Services, 2)
	for _, s := range health.Services {
		assert.Equal(t, StatusDisabled, s.Status)
	}
}

func TestCheckAll_UnhealthyDatabase(t *testing.T) {
	checker := NewHealthChecker(fakeStores{db: true, redis: true, dbErr: errors.New("connection refused")}, 1, logrus.New())

	health := checker.CheckAll(context.Background())

	assert.Equal(t, StatusUnhealthy, health.Status)
	assert.Equal(t, "postgresql", health.Services[0].Name)
	assert.Equal(t, "connection refused", health.Services[0].Error)
	assert.Equal(t, StatusHealthy, health.Services[1].Status)
}

func TestCheckRedis_WithManager(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	manager := database.NewManagerWith(nil, client, logrus.New())
	defer manager.Close()

	checker := NewHealthChecker(manager, 0, logrus.New())
	assert.Equal(t, StatusHealthy, checker.CheckRedis(context.Background()).Status)

	mr.Close()
	assert.Equal(t, StatusUnhealthy, checker.CheckRedis(context.Background()).Status)
}

func TestPeriodicHealthCheck_StopsOnCancel(t *testing.T) {
	checker := NewHealthChecker(fakeStores{}, 0, logrus.New())
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		checker.PeriodicHealthCheck(ctx, 10*time.Millisecond)
		close(done)
	}()

	time.Sleep(30 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("periodic health check did not stop")
	}
}
