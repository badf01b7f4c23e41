package cache

import (
	"context"
	"sync"
	"time"
)

type entry struct {
	value  string
	expiry time.Time // zero = no per-entry deadline
}

// Memory is the in-process Store driver. All state is lost on restart.
type Memory struct {
	mu         sync.Mutex
	entries    map[string]entry
	lastWrite  map[string]time.Time
	defaultTTL time.Duration
	now        func() time.Time
}

func NewMemory(defaultTTL time.Duration) *Memory {
	return &Memory{
		entries:    make(map[string]entry),
		lastWrite:  make(map[string]time.Time),
		defaultTTL: defaultTTL,
		now:        time.Now,
	}
}

// SetClock replaces the time source. Tests fast-forward a synthetic clock
// instead of sleeping.
func (m *Memory) SetClock(now func() time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = now
}

func (m *Memory) Get(_ context.Context, key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.entries[key]
	if !ok {
		return "", false
	}
	if !e.expiry.IsZero() && m.now().After(e.expiry) {
		// Expired, purge lazily
		delete(m.entries, key)
		delete(m.lastWrite, key)
		return "", false
	}
	return e.value, true
}

func (m *Memory) Set(_ context.Context, key, value string, ttl time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var expiry time.Time
	if ttl > 0 {
		expiry = m.now().Add(ttl)
	}
	m.entries[key] = entry{value: value, expiry: expiry}
	m.lastWrite[key] = m.now()
}

func (m *Memory) IsValid(_ context.Context, key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.entries[key]
	if !ok {
		return false
	}
	if !e.expiry.IsZero() {
		return m.now().Before(e.expiry)
	}
	last, ok := m.lastWrite[key]
	return ok && m.now().Sub(last) < m.defaultTTL
}

func (m *Memory) Clear(_ context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries = make(map[string]entry)
	m.lastWrite = make(map[string]time.Time)
}
