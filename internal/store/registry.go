package store

import (
	"errors"
	"sync"

	"github.com/google/uuid"
)

// ErrSessionNotFound is returned when a session id has no live ledger.
var ErrSessionNotFound = errors.New("session not found")

// Registry owns one ledger per session. Sessions never share a table: the
// correction operations mutate in place with no isolation, so isolation comes
// from each session holding an independent copy.
type Registry struct {
	mu      sync.RWMutex
	ledgers map[uuid.UUID]*Ledger
}

// NewRegistry returns an empty session registry.
func NewRegistry() *Registry {
	return &Registry{ledgers: make(map[uuid.UUID]*Ledger)}
}

// Create allocates a new session with an empty ledger and returns its id.
func (r *Registry) Create() uuid.UUID {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := uuid.New()
	r.ledgers[id] = NewLedger()
	return id
}

// Get returns the ledger for a session.
func (r *Registry) Get(id uuid.UUID) (*Ledger, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ledger, ok := r.ledgers[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return ledger, nil
}

// Delete drops a session and its table.
func (r *Registry) Delete(id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.ledgers[id]; !ok {
		return ErrSessionNotFound
	}
	delete(r.ledgers, id)
	return nil
}

// Count returns the number of live sessions.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.ledgers)
}
