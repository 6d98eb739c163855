package memory

import (
	"container/list"
	"context"
	"sync"
	"time"

	"github.com/mcoot/tennisscore/internal/dependencies/clock"
	"github.com/mcoot/tennisscore/internal/model"
	"github.com/mcoot/tennisscore/internal/storage"
)

// DefaultMaxEntries caps the number of cached results held at once
const DefaultMaxEntries = 10000

// Storage is an in-memory implementation of the storage interface.
// Entries are kept in save order. Every entry shares one TTL, so that is also
// expiry order and the oldest entries are the ones swept or evicted first.
type Storage struct {
	mu sync.RWMutex

	results    map[string]*list.Element
	order      *list.List // of *entry, oldest save at the front
	ttl        time.Duration
	maxEntries int
	clock      clock.Clock
}

type entry struct {
	sequence  string
	result    *model.GameResult
	expiresAt time.Time // Zero when the entry never expires
}

// New creates a new in-memory storage instance whose entries never expire
func New() *Storage {
	return NewWithTTL(0, clock.New())
}

// NewWithTTL creates an in-memory storage that expires entries after ttl
func NewWithTTL(ttl time.Duration, clk clock.Clock) *Storage {
	return NewBounded(ttl, DefaultMaxEntries, clk)
}

// NewBounded creates an in-memory storage that expires entries after ttl and
// holds at most maxEntries, dropping the oldest save when full.
// maxEntries <= 0 means no limit.
func NewBounded(ttl time.Duration, maxEntries int, clk clock.Clock) *Storage {
	return &Storage{
		results:    make(map[string]*list.Element),
		order:      list.New(),
		ttl:        ttl,
		maxEntries: maxEntries,
		clock:      clk,
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) GetResult(ctx context.Context, sequence string) (*model.GameResult, error) {
	s.mu.RLock()
	el, ok := s.results[sequence]
	var e entry
	if ok {
		e = *el.Value.(*entry)
	}
	s.mu.RUnlock()

	if !ok {
		return nil, model.ErrResultNotFound
	}
	if s.expired(e, s.clock.Now()) {
		s.evict(sequence, e.expiresAt)
		return nil, model.ErrResultNotFound
	}
	return copyResult(e.result), nil
}

func (s *Storage) SaveResult(ctx context.Context, result *model.GameResult) error {
	now := s.clock.Now()
	e := &entry{sequence: result.Sequence, result: copyResult(result)}
	if s.ttl > 0 {
		e.expiresAt = now.Add(s.ttl)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.sweep(now)

	if el, ok := s.results[e.sequence]; ok {
		el.Value = e
		s.order.MoveToBack(el)
		return nil
	}

	s.results[e.sequence] = s.order.PushBack(e)
	for s.maxEntries > 0 && s.order.Len() > s.maxEntries {
		s.remove(s.order.Front())
	}
	return nil
}

func (s *Storage) DeleteResult(ctx context.Context, sequence string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if el, ok := s.results[sequence]; ok {
		s.remove(el)
	}
	return nil
}

func (s *Storage) expired(e entry, now time.Time) bool {
	return !e.expiresAt.IsZero() && !now.Before(e.expiresAt)
}

// sweep drops expired entries from the front of the order list.
// Caller must hold the write lock.
func (s *Storage) sweep(now time.Time) {
	for front := s.order.Front(); front != nil; front = s.order.Front() {
		if !s.expired(*front.Value.(*entry), now) {
			return
		}
		s.remove(front)
	}
}

// remove unlinks an element. Caller must hold the write lock.
func (s *Storage) remove(el *list.Element) {
	s.order.Remove(el)
	delete(s.results, el.Value.(*entry).sequence)
}

// evict removes an expired entry unless it was replaced since it was read
func (s *Storage) evict(sequence string, expiresAt time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if el, ok := s.results[sequence]; ok && el.Value.(*entry).expiresAt.Equal(expiresAt) {
		s.remove(el)
	}
}

// Len returns the number of cached results, including expired ones not yet swept
func (s *Storage) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.results)
}

// copyResult detaches the score slice so callers cannot mutate cached history
func copyResult(r *model.GameResult) *model.GameResult {
	scores := make([]model.Score, len(r.Scores))
	copy(scores, r.Scores)
	return &model.GameResult{Sequence: r.Sequence, Scores: scores}
}
