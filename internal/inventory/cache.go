// Package inventory provides caching decorators for the stock and catalog
// lookups consulted during bucket allocation.
package inventory

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/dukerupert/consign/internal/domain"
)

type entry[V any] struct {
	value   V
	expires time.Time
}

// cache is a TTL map with per-key request coalescing. Errors are never stored.
type cache[V any] struct {
	ttl   time.Duration
	clock domain.Clock

	mu      sync.RWMutex
	entries map[string]entry[V]
	flight  singleflight.Group
}

func newCache[V any](ttl time.Duration, clock domain.Clock) *cache[V] {
	if clock == nil {
		clock = domain.SystemClock
	}
	return &cache[V]{
		ttl:     ttl,
		clock:   clock,
		entries: make(map[string]entry[V]),
	}
}

func (c *cache[V]) get(key string) (V, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[key]
	if !ok || !c.clock.Now().Before(e.expires) {
		var zero V
		return zero, false
	}
	return e.value, true
}

// load returns the cached value for key or fetches it. A fetch is shared by
// every caller waiting on key and runs detached from their cancellation;
// each caller still stops waiting when its own ctx is done.
func (c *cache[V]) load(ctx context.Context, key string, fetch func(context.Context) (V, error)) (V, error) {
	var zero V
	if v, ok := c.get(key); ok {
		return v, nil
	}

	ch := c.flight.DoChan(key, func() (interface{}, error) {
		// A flight that just finished may have filled the entry.
		if v, ok := c.get(key); ok {
			return v, nil
		}
		v, err := fetch(context.WithoutCancel(ctx))
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.entries[key] = entry[V]{value: v, expires: c.clock.Now().Add(c.ttl)}
		c.mu.Unlock()
		return v, nil
	})

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

func (c *cache[V]) delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

func (c *cache[V]) purge() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.entries)
}

// CachedLookup caches stock records from another InventoryLookup.
// Untracked SKUs (nil records) are cached as well.
type CachedLookup struct {
	next  domain.InventoryLookup
	cache *cache[*domain.InventoryRecord]
}

var _ domain.InventoryLookup = (*CachedLookup)(nil)

// NewCachedLookup wraps next. Entries live for ttl as measured by clock;
// a nil clock uses the system clock.
func NewCachedLookup(next domain.InventoryLookup, ttl time.Duration, clock domain.Clock) *CachedLookup {
	return &CachedLookup{
		next:  next,
		cache: newCache[*domain.InventoryRecord](ttl, clock),
	}
}

func stockKey(supplierCode, sku string) string {
	return supplierCode + "\x00" + sku
}

// Find returns a cached record or loads it from the wrapped lookup.
// Concurrent misses for the same key share one load, and a caller that gives
// up does not fail the others. The returned record is
// a copy and may be modified by the caller.
func (l *CachedLookup) Find(ctx context.Context, supplierCode, sku string) (*domain.InventoryRecord, error) {
	record, err := l.cache.load(ctx, stockKey(supplierCode, sku), func(ctx context.Context) (*domain.InventoryRecord, error) {
		return l.next.Find(ctx, supplierCode, sku)
	})
	if err != nil || record == nil {
		return nil, err
	}
	out := *record
	return &out, nil
}

// Invalidate drops the cached record for (supplierCode, sku).
func (l *CachedLookup) Invalidate(supplierCode, sku string) {
	l.cache.delete(stockKey(supplierCode, sku))
}

// Purge drops every cached record.
func (l *CachedLookup) Purge() {
	l.cache.purge()
}

// CachedCatalog caches digital flags from another DigitalGoodsLookup.
type CachedCatalog struct {
	next  domain.DigitalGoodsLookup
	cache *cache[bool]
}

var _ domain.DigitalGoodsLookup = (*CachedCatalog)(nil)

// NewCachedCatalog wraps next with the same expiry rules as NewCachedLookup.
func NewCachedCatalog(next domain.DigitalGoodsLookup, ttl time.Duration, clock domain.Clock) *CachedCatalog {
	return &CachedCatalog{
		next:  next,
		cache: newCache[bool](ttl, clock),
	}
}

// IsDigital returns a cached flag or loads it from the wrapped lookup.
func (c *CachedCatalog) IsDigital(ctx context.Context, sku string) (bool, error) {
	return c.cache.load(ctx, sku, func(ctx context.Context) (bool, error) {
		return c.next.IsDigital(ctx, sku)
	})
}

// Purge drops every cached flag.
func (c *CachedCatalog) Purge() {
	c.cache.purge()
}
