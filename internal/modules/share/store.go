// README: Pluggable share-store backends: Redis (native TTL), Postgres, and an in-process fallback.
package share

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// Backend is the minimal key-value surface the share service needs. Get
// returns ErrNotFound for absent keys; expiry of stale records is the
// service's job, native TTL support is an optimization on top.
type Backend interface {
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Get(ctx context.Context, key string) ([]byte, error)
	Del(ctx context.Context, key string) error
}

// RedisBackend stores records with a native expiry.
type RedisBackend struct {
	client *redis.Client
}

func NewRedisBackend(client *redis.Client) *RedisBackend {
	return &RedisBackend{client: client}
}

func (b *RedisBackend) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return b.client.Set(ctx, key, value, ttl).Err()
}

func (b *RedisBackend) Get(ctx context.Context, key string) ([]byte, error) {
	v, err := b.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (b *RedisBackend) Del(ctx context.Context, key string) error {
	return b.client.Del(ctx, key).Err()
}

// PostgresBackend stores records in a shared_trips table. TTL is recorded as
// expires_at; rows are removed lazily on read, not by a background job.
type PostgresBackend struct {
	db *pgxpool.Pool
}

func NewPostgresBackend(db *pgxpool.Pool) *PostgresBackend {
	return &PostgresBackend{db: db}
}

// EnsureSchema creates the shared_trips table when it does not exist yet.
// Mirrors migrations/0001_shared_trips.sql for deployments without a
// migration step.
func (b *PostgresBackend) EnsureSchema(ctx context.Context) error {
	_, err := b.db.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS shared_trips (
			key        TEXT PRIMARY KEY,
			payload    JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			expires_at TIMESTAMPTZ NOT NULL
		)`)
	return err
}

func (b *PostgresBackend) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	_, err := b.db.Exec(ctx, `
		INSERT INTO shared_trips (key, payload, expires_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE
		SET payload = EXCLUDED.payload, expires_at = EXCLUDED.expires_at`,
		key, value, time.Now().UTC().Add(ttl))
	return err
}

func (b *PostgresBackend) Get(ctx context.Context, key string) ([]byte, error) {
	var payload []byte
	err := b.db.QueryRow(ctx,
		`SELECT payload FROM shared_trips WHERE key = $1`, key).Scan(&payload)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return payload, nil
}

func (b *PostgresBackend) Del(ctx context.Context, key string) error {
	_, err := b.db.Exec(ctx, `DELETE FROM shared_trips WHERE key = $1`, key)
	return err
}

// MemoryBackend is the silent fallback when no external store is configured.
// Process-lifetime scoped; nothing is persisted across restarts. TTL is not
// enforced here beyond the service's lazy expiry check.
type MemoryBackend struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{data: make(map[string][]byte)}
}

func (b *MemoryBackend) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	cp := make([]byte, len(value))
	copy(cp, value)
	b.data[key] = cp
	return nil
}

func (b *MemoryBackend) Get(_ context.Context, key string) ([]byte, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	v, ok := b.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	return v, nil
}

func (b *MemoryBackend) Del(_ context.Context, key string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.data, key)
	return nil
}
