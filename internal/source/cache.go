package source

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Store is a byte cache with per-entry TTL. Backends: process-local memory,
// or Redis when several resolver instances should share fetched pages.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration)
}

// CachedFetcher caches raw page HTML by request path. Resolution stays a
// pure function of document content, so serving a cached page is transparent
// to everything downstream.
type CachedFetcher struct {
	inner HTMLFetcher
	store Store
	ttl   time.Duration
}

func NewCachedFetcher(inner HTMLFetcher, store Store, ttl time.Duration) *CachedFetcher {
	return &CachedFetcher{inner: inner, store: store, ttl: ttl}
}

func (c *CachedFetcher) FetchHTML(ctx context.Context, path string) ([]byte, error) {
	if body, ok := c.store.Get(ctx, path); ok {
		return body, nil
	}
	body, err := c.inner.FetchHTML(ctx, path)
	if err != nil {
		return nil, err
	}
	c.store.Set(ctx, path, body, c.ttl)
	return body, nil
}

type memoryEntry struct {
	body      []byte
	expiresAt time.Time
}

// MemoryStore is a process-local Store. Expired entries are dropped lazily
// on read.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]memoryEntry)}
}

func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.entries[key]
	if !ok {
		return nil, false
	}
	if time.Now().After(entry.expiresAt) {
		delete(s.entries, key)
		return nil, false
	}
	return entry.body, true
}

func (s *MemoryStore) Set(_ context.Context, key string, value []byte, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = memoryEntry{body: value, expiresAt: time.Now().Add(ttl)}
}

// RedisStore keeps fetched pages in Redis so parallel bulk runs and service
// replicas share one fetch per path per TTL window.
type RedisStore struct {
	client *redis.Client
	prefix string
}

func NewRedisStore(addr string, db int) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{Addr: addr, DB: db})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connect to redis %s: %w", addr, err)
	}
	return &RedisStore{client: client, prefix: "matchref:page:"}, nil
}

func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, bool) {
	body, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		slog.Warn("redis cache read failed, treating as miss", "key", key, "error", err)
		return nil, false
	}
	return body, true
}

func (s *RedisStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {
	if err := s.client.Set(ctx, s.prefix+key, value, ttl).Err(); err != nil {
		slog.Warn("redis cache write failed", "key", key, "error", err)
	}
}
