package snapshot

import (
	"context"
	"sync"

	"github.com/zeromicro/go-zero/core/stores/redis"
)

type (
	// SnapshotModel is a key/value blob store. Callers treat it as best effort:
	// a failed save never fails the mutation that triggered it.
	SnapshotModel interface {
		Save(ctx context.Context, key, value string) error
		Load(ctx context.Context, key string) (string, error)
	}

	redisSnapshotModel struct {
		rds *redis.Redis
	}

	memorySnapshotModel struct {
		mu    sync.RWMutex
		blobs map[string]string
	}
)

var (
	_ SnapshotModel = (*redisSnapshotModel)(nil)
	_ SnapshotModel = (*memorySnapshotModel)(nil)
)

func NewRedisSnapshotModel(rds *redis.Redis) SnapshotModel {
	return &redisSnapshotModel{rds: rds}
}

func MustNewRedisSnapshotModel(c redis.RedisConf) SnapshotModel {
	return NewRedisSnapshotModel(redis.MustNewRedis(c))
}

func (m *redisSnapshotModel) Save(ctx context.Context, key, value string) error {
	return m.rds.SetCtx(ctx, key, value)
}

// Load returns an empty string when the key is absent.
func (m *redisSnapshotModel) Load(ctx context.Context, key string) (string, error) {
	return m.rds.GetCtx(ctx, key)
}

func NewMemorySnapshotModel() SnapshotModel {
	return &memorySnapshotModel{blobs: make(map[string]string)}
}

func (m *memorySnapshotModel) Save(_ context.Context, key, value string) error {
	m.mu.Lock()
	m.blobs[key] = value
	m.mu.Unlock()
	return nil
}

func (m *memorySnapshotModel) Load(_ context.Context, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.blobs[key], nil
}
