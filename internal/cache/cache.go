package cache

import (
	"sync"
	"time"

	"github.com/creai-labs/creai/internal/component"
)

// KeyPrefixLen is how much of the current source code participates in a
// modification-cache key. The key embeds both the modification prompt and
// this prefix, so stale entries are acceptable by construction.
const KeyPrefixLen = 100

// Key builds the modification-cache key from the modification prompt and
// the current source code.
func Key(prompt, code string) string {
	if len(code) > KeyPrefixLen {
		code = code[:KeyPrefixLen]
	}
	return prompt + code
}

// Cache stores previously computed records keyed by modification input.
// It is a memoization convenience, not a correctness-critical store.
type Cache interface {
	Get(key string) (*component.Record, bool)
	Put(key string, rec *component.Record)
	Clear()
}

type memoryEntry struct {
	rec     component.Record
	expires time.Time
}

// Memory is an in-process cache. With a zero TTL entries persist for the
// process lifetime, matching the original memoization behavior; a non-zero
// TTL bounds the cache for long-lived server deployments, with expired
// entries dropped lazily on Get and in bulk by Sweep.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	ttl     time.Duration
}

// NewMemory creates an in-process cache. ttl of zero disables expiry.
func NewMemory(ttl time.Duration) *Memory {
	return &Memory{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
	}
}

// Get returns the cached record for key, if present and unexpired.
func (m *Memory) Get(key string) (*component.Record, bool) {
	m.mu.RLock()
	entry, ok := m.entries[key]
	m.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if !entry.expires.IsZero() && time.Now().After(entry.expires) {
		m.mu.Lock()
		delete(m.entries, key)
		m.mu.Unlock()
		return nil, false
	}
	rec := entry.rec
	return &rec, true
}

// Put stores a copy of rec under key.
func (m *Memory) Put(key string, rec *component.Record) {
	entry := memoryEntry{rec: *rec}
	if m.ttl > 0 {
		entry.expires = time.Now().Add(m.ttl)
	}
	m.mu.Lock()
	m.entries[key] = entry
	m.mu.Unlock()
}

// Clear drops all entries.
func (m *Memory) Clear() {
	m.mu.Lock()
	m.entries = make(map[string]memoryEntry)
	m.mu.Unlock()
}

// Sweep removes expired entries in bulk and returns how many were dropped.
// The serve daemon runs it on a schedule when a TTL is configured.
func (m *Memory) Sweep() int {
	now := time.Now()
	removed := 0
	m.mu.Lock()
	for key, entry := range m.entries {
		if !entry.expires.IsZero() && now.After(entry.expires) {
			delete(m.entries, key)
			removed++
		}
	}
	m.mu.Unlock()
	return removed
}

// Len reports the number of live entries, expired or not.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}
