package tracker

import "sync"

// userLocks serializes appends per user so concurrent events for the same
// user cannot lose profile increments, while different users proceed
// independently.
type userLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newUserLocks() *userLocks {
	return &userLocks{locks: make(map[string]*sync.Mutex)}
}

func (l *userLocks) lock(userID string) {
	l.mu.Lock()
	m, ok := l.locks[userID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[userID] = m
	}
	l.mu.Unlock()
	m.Lock()
}

func (l *userLocks) unlock(userID string) {
	l.mu.Lock()
	m := l.locks[userID]
	l.mu.Unlock()
	m.Unlock()
}
