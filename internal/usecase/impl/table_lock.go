package impl

import "sync"

// TableLocks serializes state changes per table number.
// Tables share one lock set so cart edits and checkout steps never interleave.
type TableLocks struct {
	mu    sync.Mutex
	locks map[int]*sync.Mutex
}

// NewTableLocks creates an empty lock set.
func NewTableLocks() *TableLocks {
	return &TableLocks{locks: make(map[int]*sync.Mutex)}
}

// Lock acquires the lock of a table and returns its release function.
func (l *TableLocks) Lock(tableNumber int) func() {
	l.mu.Lock()
	m, ok := l.locks[tableNumber]
	if !ok {
		m = &sync.Mutex{}
		l.locks[tableNumber] = m
	}
	l.mu.Unlock()

	m.Lock()

	return m.Unlock
}
