// Package cache stores upstream response bodies keyed by request URL.
package cache

import (
	"container/list"
	"context"
	"sync"
	"time"
)

// DefaultCapacity bounds the number of entries in a Memory cache.
const DefaultCapacity = 10000

type entry struct {
	key       string
	value     []byte
	expiresAt time.Time
}

// Memory is a process-local TTL cache with least-recently-used eviction
// once capacity entries are stored. Expired entries are dropped lazily on
// lookup and by Sweep.
type Memory struct {
	mu       sync.Mutex
	capacity int
	entries  map[string]*list.Element
	order    *list.List // front is most recently used
	now      func() time.Time
}

// MemoryOpt configures a Memory cache.
type MemoryOpt func(*Memory)

// WithCapacity sets the maximum number of entries. Non-positive values keep
// DefaultCapacity.
func WithCapacity(n int) MemoryOpt {
	return func(m *Memory) {
		if n > 0 {
			m.capacity = n
		}
	}
}

// NewMemory creates an empty Memory cache.
func NewMemory(opts ...MemoryOpt) *Memory {
	m := &Memory{
		capacity: DefaultCapacity,
		entries:  make(map[string]*list.Element),
		order:    list.New(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Get returns a copy of the cached value for key.
func (m *Memory) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	el, ok := m.entries[key]
	if !ok {
		return nil, false, nil
	}
	e := el.Value.(*entry)
	if !m.now().Before(e.expiresAt) {
		m.remove(el)
		return nil, false, nil
	}
	m.order.MoveToFront(el)

	out := make([]byte, len(e.value))
	copy(out, e.value)
	return out, true, nil
}

// Set stores value under key for ttl. A non-positive ttl is a no-op. When the
// cache is full the least recently used entry is evicted.
func (m *Memory) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}

	v := make([]byte, len(value))
	copy(v, value)

	m.mu.Lock()
	defer m.mu.Unlock()

	expiresAt := m.now().Add(ttl)
	if el, ok := m.entries[key]; ok {
		e := el.Value.(*entry)
		e.value = v
		e.expiresAt = expiresAt
		m.order.MoveToFront(el)
		return nil
	}

	for m.order.Len() >= m.capacity {
		m.remove(m.order.Back())
	}
	m.entries[key] = m.order.PushFront(&entry{key: key, value: v, expiresAt: expiresAt})
	return nil
}

func (m *Memory) remove(el *list.Element) {
	m.order.Remove(el)
	delete(m.entries, el.Value.(*entry).key)
}

// Sweep removes expired entries and returns how many were dropped.
func (m *Memory) Sweep() int {
	now := m.now()

	m.mu.Lock()
	defer m.mu.Unlock()

	n := 0
	for el := m.order.Front(); el != nil; {
		next := el.Next()
		if !now.Before(el.Value.(*entry).expiresAt) {
			m.remove(el)
			n++
		}
		el = next
	}
	return n
}

// Len returns the number of stored entries, expired ones included.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

// SweepInterval is how often Start drops expired entries.
const SweepInterval = time.Minute

// Start sweeps expired entries every SweepInterval until ctx is done.
func (m *Memory) Start(ctx context.Context) error {
	ticker := time.NewTicker(SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			m.Sweep()
		}
	}
}
