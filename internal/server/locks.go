package server

import "sync"

// nameLocks serializes the load → step → save sequence per game
// name. The core never locks; lost-update protection for concurrent
// requests against the same game lives here.
type nameLocks struct {
	mu sync.Mutex
	m  map[string]*sync.Mutex
}

func newNameLocks() *nameLocks {
	return &nameLocks{m: make(map[string]*sync.Mutex)}
}

// lock acquires the mutex for name, creating it on first use, and
// returns the matching unlock.
func (l *nameLocks) lock(name string) func() {
	l.mu.Lock()
	m, ok := l.m[name]
	if !ok {
		m = &sync.Mutex{}
		l.m[name] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}
