package cache

import (
	"context"
	"sync"
	"time"
)

type entry[V any] struct {
	value     V
	expiresAt int64 // Unix nanoseconds; zero = no expire
}

type shard[V any] struct {
	sync.Mutex
	entries map[string]entry[V]
}

// MemoryCache is a sharded in-process cache with background expiry.
type MemoryCache[V any] struct {
	shards []*shard[V]
	quit   chan struct{}
}

// NewMemoryCache creates a 64-shard cache with a 1s sweeper.
func NewMemoryCache[V any]() *MemoryCache[V] {
	return NewMemoryCacheWithOptions[V](64, time.Second)
}

// NewMemoryCacheWithOptions allows customizing shard count and sweep interval.
func NewMemoryCacheWithOptions[V any](shardCount int, sweepInterval time.Duration) *MemoryCache[V] {
	mc := &MemoryCache[V]{
		shards: make([]*shard[V], shardCount),
		quit:   make(chan struct{}),
	}
	for i := range mc.shards {
		mc.shards[i] = &shard[V]{entries: make(map[string]entry[V])}
	}
	go mc.sweep(sweepInterval)
	return mc
}

// Stop terminates the sweeper goroutine.
func (mc *MemoryCache[V]) Stop() {
	select {
	case <-mc.quit:
	default:
		close(mc.quit)
	}
}

func (mc *MemoryCache[V]) shardFor(key string) *shard[V] {
	// Modulo in uint32 space; converting the hash to int first would go
	// negative on 32-bit targets.
	return mc.shards[fnv32(key)%uint32(len(mc.shards))]
}

func fnv32(key string) uint32 {
	const offset = 2166136261
	const prime = 16777619
	h := uint32(offset)
	for i := 0; i < len(key); i++ {
		h ^= uint32(key[i])
		h *= prime
	}
	return h
}

func (mc *MemoryCache[V]) Get(_ context.Context, key string) (V, error) {
	var zero V
	now := time.Now().UnixNano()
	s := mc.shardFor(key)

	s.Lock()
	defer s.Unlock()
	e, ok := s.entries[key]
	if !ok {
		return zero, ErrCacheMiss
	}
	if e.expiresAt > 0 && now > e.expiresAt {
		delete(s.entries, key)
		return zero, ErrCacheMiss
	}
	return e.value, nil
}

func (mc *MemoryCache[V]) Set(_ context.Context, key string, value V, ttl time.Duration) error {
	var exp int64
	if ttl > 0 {
		exp = time.Now().Add(ttl).UnixNano()
	}
	s := mc.shardFor(key)
	s.Lock()
	s.entries[key] = entry[V]{value: value, expiresAt: exp}
	s.Unlock()
	return nil
}

func (mc *MemoryCache[V]) Delete(_ context.Context, key string) error {
	s := mc.shardFor(key)
	s.Lock()
	delete(s.entries, key)
	s.Unlock()
	return nil
}

func (mc *MemoryCache[V]) sweep(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			now := time.Now().UnixNano()
			for _, s := range mc.shards {
				s.Lock()
				for k, e := range s.entries {
					if e.expiresAt > 0 && now > e.expiresAt {
						delete(s.entries, k)
					}
				}
				s.Unlock()
			}
		case <-mc.quit:
			return
		}
	}
}
