package vector

import (
	"sync"
	"weak"
)

// Pool provides a goroutine-safe pool of reusable vectors so hot paths can
// recycle grown storage instead of re-growing from zero every time.
//
// Pooled items are held through weak pointers: the GC can reclaim an idle
// vector at any moment, so the pool sizes itself to actual memory pressure.
// Acquire upgrades a weak pointer back to a strong one while removing it
// from the pool; Release resets the vector and re-pools it weakly.
type Pool[T any] struct {
	// pool is a slice of weak pointers to the struct holding the vector
	pool  []weak.Pointer[Item[T]]
	sizes map[uint64]*poolItemSize
	mu    sync.Mutex
}

// poolItemSize tracks the storage needed across the last 50 released
// vectors for one key.
type poolItemSize struct {
	count    int
	totalCap int
}

// Item wraps a pooled Vector for use with Pool.
type Item[T any] struct {
	Vec *Vector[T]
	Key uint64
}

// NewPool creates a new Pool instance.
func NewPool[T any]() *Pool[T] {
	return &Pool[T]{
		sizes: make(map[uint64]*poolItemSize),
	}
}

// Acquire gets a vector from the pool or creates a new one if none are
// available. The key identifies a use case; fresh vectors are pre-reserved
// to the rolling mean capacity recorded for that key.
func (p *Pool[T]) Acquire(key uint64) *Item[T] {
	p.mu.Lock()
	defer p.mu.Unlock()

	// Try to find an available vector in the pool
	for len(p.pool) > 0 {
		// Pop the last item
		lastIdx := len(p.pool) - 1
		wp := p.pool[lastIdx]
		p.pool = p.pool[:lastIdx]

		v := wp.Value()
		if v != nil {
			v.Key = key
			return v
		}
		// If weak pointer was nil (GC collected), continue to next item
	}

	// No vector available, create a new one
	vec := New[T]()
	// Recorded capacities came from live vectors, so Reserve cannot
	// overflow here.
	_ = vec.Reserve(p.vectorSize(key))
	return &Item[T]{
		Vec: vec,
		Key: key,
	}
}

// Release returns a vector to the pool for reuse. Its storage capacity is
// recorded to size future vectors acquired under the same key.
func (p *Pool[T]) Release(item *Item[T]) {
	capacity := item.Vec.Cap()
	item.Vec.Reset()

	p.mu.Lock()
	defer p.mu.Unlock()

	p.record(item.Key, capacity)
	item.Key = 0

	// Add the vector back to the pool using a weak pointer
	w := weak.Make(item)
	p.pool = append(p.pool, w)
}

// ReleaseMany returns several vectors to the pool under one lock.
func (p *Pool[T]) ReleaseMany(items []*Item[T]) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, item := range items {
		capacity := item.Vec.Cap()
		item.Vec.Reset()

		p.record(item.Key, capacity)
		item.Key = 0

		w := weak.Make(item)
		p.pool = append(p.pool, w)
	}
}

// record folds a released capacity into the rolling window for key.
// Callers must hold p.mu.
func (p *Pool[T]) record(key uint64, capacity int) {
	if size, ok := p.sizes[key]; ok {
		if size.count == 50 {
			size.count = 1
			size.totalCap = size.totalCap / 50
		}
		size.count++
		size.totalCap += capacity
	} else {
		p.sizes[key] = &poolItemSize{
			count:    1,
			totalCap: capacity,
		}
	}
}

// vectorSize returns the capacity to pre-reserve for a given key, or zero
// when the key has no history.
func (p *Pool[T]) vectorSize(key uint64) int {
	if size, ok := p.sizes[key]; ok {
		return size.totalCap / size.count
	}
	return 0
}
