package database

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewManager_NothingConfigured(t *testing.T) {
	m, err := NewManager(&Config{}, logrus.New())
	require.NoError(t, err)

	assert.False(t, m.HasDatabase())
	assert.False(t, m.HasRedis())
	assert.Error(t, m.PingDatabase(context.Background()))
	assert.Error(t, m.PingRedis(context.Background()))
	assert.Error(t, m.Migrate())
	assert.NoError(t, m.Close())
}

func TestNewManager_Redis(t *testing.T) {
	mr := miniredis.RunT(t)

	m, err := NewManager(&Config{RedisURL: "redis://" + mr.Addr()}, logrus.New())
	require.NoError(t, err)
	defer m.Close()

	assert.True(t, m.HasRedis())
	assert.NoError(t, m.PingRedis(context.Background()))
}

func TestNewManager_BadRedisURL(t *testing.T) {
	_, err := NewManager(&Config{RedisURL: "not-a-url"}, logrus.New())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse Redis URL")
}
