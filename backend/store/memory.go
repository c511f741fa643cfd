package store

import (
	"sort"
	"sync"

	"mavericks/backend/models"
)

// MemoryStore is the default activity log: an append-ordered slice plus a
// per-user index for O(1) user lookup.
type MemoryStore struct {
	mu     sync.RWMutex
	events []models.ActivityEvent
	byUser map[string][]int // user id -> indexes into events
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		byUser: make(map[string][]int),
	}
}

func (s *MemoryStore) Append(event models.ActivityEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.events = append(s.events, event)
	s.byUser[event.UserID] = append(s.byUser[event.UserID], len(s.events)-1)
	return nil
}

func (s *MemoryStore) UserEvents(userID string) ([]models.ActivityEvent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.byUser[userID]
	events := make([]models.ActivityEvent, 0, len(idx))
	for _, i := range idx {
		events = append(events, s.events[i])
	}
	return events, nil
}

func (s *MemoryStore) AllEvents() ([]models.ActivityEvent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	events := make([]models.ActivityEvent, len(s.events))
	copy(events, s.events)
	return events, nil
}

func (s *MemoryStore) UserIDs() ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.byUser))
	for id := range s.byUser {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}
