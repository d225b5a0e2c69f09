// Package cache implements the gateway's keyed read cache. Keys are derived
// from (resource, filters), every key carries a generation counter so a slow
// in-flight fetch can never overwrite the result of a newer one, and entries
// are tagged so mutations can invalidate every read they might affect.
package cache

import (
	"sort"
	"strings"
	"sync"
	"time"
)

// Store is a mutex-guarded result cache with per-key generations, tag
// invalidation and TTL expiry.
type Store struct {
	mu      sync.Mutex
	entries map[string]*entry
	ttl     time.Duration
	now     func() time.Time
}

type entry struct {
	value     any
	tags      []string
	gen       uint64
	expiresAt time.Time
	filled    bool
}

// New creates a cache whose entries expire after ttl.
func New(ttl time.Duration) *Store {
	return &Store{
		entries: make(map[string]*entry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Key derives a cache key from a resource name and its filter parts. Parts
// are sorted so two equivalent filter states always collide on the same key.
func Key(resource string, parts ...string) string {
	if len(parts) == 0 {
		return resource
	}
	sorted := make([]string, len(parts))
	copy(sorted, parts)
	sort.Strings(sorted)
	return resource + "?" + strings.Join(sorted, "&")
}

// Get returns the cached value for key if present and unexpired.
func (s *Store) Get(key string) (any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok || !e.filled {
		return nil, false
	}
	if s.now().After(e.expiresAt) {
		delete(s.entries, key)
		return nil, false
	}
	return e.value, true
}

// Begin registers the start of a fetch for key and returns a generation
// token. Starting a newer fetch for the same key invalidates every token
// handed out before it.
func (s *Store) Begin(key string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok {
		e = &entry{}
		s.entries[key] = e
	}
	e.gen++
	return e.gen
}

// Complete stores the fetched value if gen is still the key's current
// generation. A stale generation is discarded and Complete reports false;
// the stale result must not be applied anywhere else either.
func (s *Store) Complete(key string, gen uint64, value any, tags ...string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok || e.gen != gen {
		return false
	}
	e.value = value
	e.tags = tags
	e.filled = true
	e.expiresAt = s.now().Add(s.ttl)
	return true
}

// Invalidate drops every entry carrying any of the given tags. Pending
// generations stay registered so an in-flight fetch for a dropped key still
// completes into a fresh entry.
func (s *Store) Invalidate(tags ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range s.entries {
		if !e.filled {
			continue
		}
		for _, tag := range tags {
			if hasTag(e.tags, tag) {
				e.value = nil
				e.filled = false
				break
			}
		}
	}
}

func hasTag(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}
