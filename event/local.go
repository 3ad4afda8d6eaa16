package event

import (
	"encoding/json"
	"sync"
)

// Listeners is an in-process listener table for the synthetic lifecycle
// events. Registration order is dispatch order; no host round trip is ever
// issued.
type Listeners struct {
	mu     sync.Mutex
	nextID int
	byName map[string][]localEntry
}

type localEntry struct {
	id int
	h  Handler
}

// Listen registers a handler and returns a closure that removes exactly that
// registration. The closure is idempotent.
func (l *Listeners) Listen(name string, h Handler) func() {
	l.mu.Lock()
	if l.byName == nil {
		l.byName = make(map[string][]localEntry)
	}
	l.nextID++
	id := l.nextID
	l.byName[name] = append(l.byName[name], localEntry{id: id, h: h})
	l.mu.Unlock()

	return func() {
		l.mu.Lock()
		defer l.mu.Unlock()
		entries := l.byName[name]
		for i, e := range entries {
			if e.id == id {
				l.byName[name] = append(entries[:i:i], entries[i+1:]...)
				return
			}
		}
	}
}

// Once registers a handler that fires at most one time.
func (l *Listeners) Once(name string, h Handler) func() {
	var (
		once sync.Once
		un   func()
	)
	un = l.Listen(name, func(e Event) {
		once.Do(func() {
			un()
			h(e)
		})
	})
	return un
}

// Emit dispatches synchronously to every registered handler with a synthetic
// envelope.
func (l *Listeners) Emit(name string, payload json.RawMessage) {
	l.mu.Lock()
	entries := make([]localEntry, len(l.byName[name]))
	copy(entries, l.byName[name])
	l.mu.Unlock()

	e := Event{Name: name, ID: syntheticID, Payload: payload}
	for _, entry := range entries {
		entry.h(e)
	}
}

// Len reports how many handlers are registered for name.
func (l *Listeners) Len(name string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.byName[name])
}
