package pool

import "sync"

// Pool is a LIFO stack of reusable handles of type T.
//
// Contract:
// - Concurrency: safe for concurrent Get/Put.
// - Blocking: Get never blocks beyond the internal mutex; an empty pool
//   returns (zero, false) rather than waiting for a Put.
// - Ownership: a handle returned by Get is exclusively owned by the
//   caller until it is handed back with Put.
type Pool[T any] struct {
	mu    sync.Mutex
	items []T
}

// Get pops the most recently returned handle. It reports false when the
// pool is empty; the caller then constructs a fresh handle outside any
// pool lock.
func (p *Pool[T]) Get() (T, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	n := len(p.items)
	if n == 0 {
		var zero T
		return zero, false
	}
	item := p.items[n-1]
	var zero T
	p.items[n-1] = zero
	p.items = p.items[:n-1]
	return item, true
}

// Put returns a handle to the pool. It accepts handles the pool never
// handed out: redundant handles built during a concurrent miss are
// absorbed here.
func (p *Pool[T]) Put(item T) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.items = append(p.items, item)
}

// Len reports the number of idle handles currently held.
func (p *Pool[T]) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.items)
}

// Group manages one Pool per string key, creating pools lazily.
type Group[T any] struct {
	pools sync.Map // string -> *Pool[T]
}

// Pool returns the pool for key, creating it on first access. Concurrent
// first access for the same key yields the same Pool instance.
func (g *Group[T]) Pool(key string) *Pool[T] {
	if p, ok := g.pools.Load(key); ok {
		return p.(*Pool[T])
	}
	p, _ := g.pools.LoadOrStore(key, &Pool[T]{})
	return p.(*Pool[T])
}

// Reset drops all pools and the handles they hold. It is intended for
// tests and administrative use; it must not run while handles are in
// flight.
func (g *Group[T]) Reset() {
	g.pools.Range(func(key, _ any) bool {
		g.pools.Delete(key)
		return true
	})
}
