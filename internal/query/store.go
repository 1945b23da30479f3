package query

import (
	"context"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/sync/singleflight"
)

// FetchFunc loads the value for a key from the network.
type FetchFunc func(ctx context.Context) (any, error)

// Store is the session-scoped query cache. Reads for an identical key
// reuse a cached or in-flight result; key changes fetch anew. Entries
// carry a TTL so screens eventually converge even without an explicit
// invalidation. Mutations go through InvalidatePrefix, never by writing
// entries directly.
//
// A Store is built once in the composition root and injected; it is the
// only mutable state shared across screens.
type Store struct {
	ttl     time.Duration
	entries *gocache.Cache
	group   singleflight.Group

	mu     sync.Mutex
	seq    uint64
	latest map[string]uint64
}

func NewStore(ttl time.Duration) *Store {
	return &Store{
		ttl:     ttl,
		entries: gocache.New(ttl, time.Minute),
		latest:  map[string]uint64{},
	}
}

// advance registers a new request for lineage and returns its token.
func (s *Store) advance(lineage string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	s.latest[lineage] = s.seq
	return s.seq
}

func (s *Store) isLatest(lineage string, token uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.latest[lineage] == token
}

// Fetch returns the value for key, reusing a fresh cached entry or an
// in-flight request for the same key. lineage identifies the screen the
// key belongs to: when a newer key has been requested for the same
// lineage by the time this fetch resolves, the result is returned to the
// caller but not applied to the cache (last request wins).
func (s *Store) Fetch(ctx context.Context, lineage string, key Key, fn FetchFunc) (any, error) {
	token := s.advance(lineage)
	ks := key.String()

	if v, ok := s.entries.Get(ks); ok {
		return v, nil
	}

	v, err, _ := s.group.Do(ks, func() (any, error) {
		return fn(ctx)
	})
	if err != nil {
		return nil, err
	}

	if s.isLatest(lineage, token) {
		s.entries.Set(ks, v, s.ttl)
	}
	return v, nil
}

// Fetch is the typed wrapper over Store.Fetch.
func Fetch[T any](ctx context.Context, s *Store, lineage string, key Key, fn func(ctx context.Context) (T, error)) (T, error) {
	v, err := s.Fetch(ctx, lineage, key, func(ctx context.Context) (any, error) {
		return fn(ctx)
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return v.(T), nil
}

// InvalidatePrefix drops every cached entry whose key starts with
// prefix, forcing the next read to re-fetch. Entries under other
// prefixes are untouched.
func (s *Store) InvalidatePrefix(prefix Key) int {
	n := 0
	for joined := range s.entries.Items() {
		if matchesPrefix(joined, prefix) {
			s.entries.Delete(joined)
			n++
		}
	}
	return n
}

// Len reports the number of live cache entries.
func (s *Store) Len() int {
	return s.entries.ItemCount()
}
