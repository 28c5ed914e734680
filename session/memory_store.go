package session

import (
	"context"
	"sync"
	"time"
)

type memoryItem struct {
	entry     Entry
	expiresAt time.Time
}

// MemoryStore is a process-local Store. Expired entries are dropped on read
// and by Sweep.
type MemoryStore struct {
	mu    sync.RWMutex
	items map[string]memoryItem
	now   func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{items: make(map[string]memoryItem), now: time.Now}
}

func (s *MemoryStore) Get(_ context.Context, token string) (Entry, bool, error) {
	s.mu.RLock()
	item, ok := s.items[token]
	s.mu.RUnlock()
	if !ok {
		return Entry{}, false, nil
	}
	if !s.now().Before(item.expiresAt) {
		s.mu.Lock()
		// re-check; a concurrent Set may have refreshed it
		if cur, ok := s.items[token]; ok && !s.now().Before(cur.expiresAt) {
			delete(s.items, token)
		}
		s.mu.Unlock()
		return Entry{}, false, nil
	}
	return copyEntry(item.entry), true, nil
}

func (s *MemoryStore) Set(_ context.Context, token string, entry Entry, ttl time.Duration) error {
	s.mu.Lock()
	s.items[token] = memoryItem{entry: copyEntry(entry), expiresAt: s.now().Add(ttl)}
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Destroy(_ context.Context, token string) error {
	s.mu.Lock()
	delete(s.items, token)
	s.mu.Unlock()
	return nil
}

// Sweep removes every expired entry and returns how many were dropped.
func (s *MemoryStore) Sweep() int {
	now := s.now()
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for tok, item := range s.items {
		if !now.Before(item.expiresAt) {
			delete(s.items, tok)
			n++
		}
	}
	return n
}

// Len is the number of entries currently held, expired or not.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// RunSweeper calls Sweep every interval until ctx is done.
func (s *MemoryStore) RunSweeper(ctx context.Context, interval time.Duration) {
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			s.Sweep()
		}
	}
}

// copyEntry keeps callers from mutating the stored record through the pointer.
func copyEntry(e Entry) Entry {
	if e.User == nil {
		return Entry{}
	}
	u := *e.User
	return Entry{User: &u}
}
