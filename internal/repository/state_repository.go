package repository

import (
	"context"
	"errors"
	"skillerset/internal/util"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
)

// StateRepository 保存每个会话的页面交互状态（原始字节，由 service 负责编解码）
type StateRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
}

const stateKeyPrefix = "page_state:"

type RedisStateRepository struct {
	Redis *redis.Client
}

func NewRedisStateRepository(rdb *redis.Client) *RedisStateRepository {
	return &RedisStateRepository{Redis: rdb}
}

func (r *RedisStateRepository) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := r.Redis.Get(ctx, stateKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, util.ErrStateNotFound
	}
	return data, err
}

func (r *RedisStateRepository) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	return r.Redis.Set(ctx, stateKeyPrefix+key, data, ttl).Err()
}

func (r *RedisStateRepository) Delete(ctx context.Context, key string) error {
	return r.Redis.Del(ctx, stateKeyPrefix+key).Err()
}

func (r *RedisStateRepository) Ping(ctx context.Context) error {
	return r.Redis.Ping(ctx).Err()
}

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

// MemoryStateRepository 未启用 Redis 时使用的进程内实现
type MemoryStateRepository struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	now     func() time.Time
}

func NewMemoryStateRepository() *MemoryStateRepository {
	return &MemoryStateRepository{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

func (r *MemoryStateRepository) Get(_ context.Context, key string) ([]byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[key]
	if !ok {
		return nil, util.ErrStateNotFound
	}
	if !e.expiresAt.IsZero() && r.now().After(e.expiresAt) {
		delete(r.entries, key)
		return nil, util.ErrStateNotFound
	}
	return append([]byte(nil), e.data...), nil
}

func (r *MemoryStateRepository) Set(_ context.Context, key string, data []byte, ttl time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	e := memoryEntry{data: append([]byte(nil), data...)}
	if ttl > 0 {
		e.expiresAt = r.now().Add(ttl)
	}
	r.entries[key] = e
	return nil
}

func (r *MemoryStateRepository) Delete(_ context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, key)
	return nil
}

func (r *MemoryStateRepository) Ping(context.Context) error {
	return nil
}

// Sweep 清理过期条目，由后台任务定期调用
func (r *MemoryStateRepository) Sweep() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	now := r.now()
	for k, e := range r.entries {
		if !e.expiresAt.IsZero() && now.After(e.expiresAt) {
			delete(r.entries, k)
			removed++
		}
	}
	return removed
}
