// Package cache holds the short-lived read cache in front of promotion
// listing queries.
package cache

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

type entry[V any] struct {
	value   V
	expires time.Time
}

// LoadTimeout bounds a shared load, which runs detached from any one caller.
const LoadTimeout = 30 * time.Second

// TTLCache keeps values for a fixed time after they are loaded. Concurrent
// misses on the same key share a single load.
type TTLCache[V any] struct {
	mu          sync.RWMutex
	store       map[string]entry[V]
	ttl         time.Duration
	group       singleflight.Group
	now         func() time.Time
	loadTimeout time.Duration
}

func NewTTLCache[V any](ttl time.Duration) *TTLCache[V] {
	return &TTLCache[V]{
		store:       make(map[string]entry[V]),
		ttl:         ttl,
		now:         time.Now,
		loadTimeout: LoadTimeout,
	}
}

func (c *TTLCache[V]) Get(key string) (V, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.store[key]
	if !ok || !c.now().Before(e.expires) {
		var zero V
		return zero, false
	}
	return e.value, true
}

func (c *TTLCache[V]) Set(key string, value V) {
	if c.ttl <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store[key] = entry[V]{value: value, expires: c.now().Add(c.ttl)}
}

// GetOrLoad returns the cached value for key, calling load on a miss. Errors
// are not cached. The shared load keeps ctx's values but not its
// cancellation, so one caller giving up does not fail the others waiting on
// the same key; each caller still returns as soon as its own ctx is done.
func (c *TTLCache[V]) GetOrLoad(ctx context.Context, key string, load func(context.Context) (V, error)) (V, error) {
	if v, ok := c.Get(key); ok {
		return v, nil
	}

	loadCtx := context.WithoutCancel(ctx)
	ch := c.group.DoChan(key, func() (interface{}, error) {
		if v, ok := c.Get(key); ok {
			return v, nil
		}
		ctx, cancel := context.WithTimeout(loadCtx, c.loadTimeout)
		defer cancel()
		v, err := load(ctx)
		if err != nil {
			return v, err
		}
		c.Set(key, v)
		c.sweep()
		return v, nil
	})

	var zero V
	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return zero, res.Err
		}
		return res.Val.(V), nil
	}
}

// sweep drops expired entries so distinct filter combinations don't pile up.
func (c *TTLCache[V]) sweep() {
	now := c.now()
	c.mu.Lock()
	defer c.mu.Unlock()
	for k, e := range c.store {
		if !now.Before(e.expires) {
			delete(c.store, k)
		}
	}
}

// Len reports the number of stored entries, expired or not.
func (c *TTLCache[V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.store)
}
