package fraud

import (
	"context"
	"sync"
)

// MemoryStore is the in-memory session store. Appends are O(1); reads
// return defensive newest-first copies. Safe for concurrent use so the
// core can sit behind an HTTP surface.
type MemoryStore struct {
	mu      sync.RWMutex
	entries []*Transaction // insertion order (oldest first)
	nextSeq int64
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make([]*Transaction, 0)}
}

// Compile-time interface check
var _ Store = (*MemoryStore)(nil)

// Append records the transaction and stamps its session sequence number.
func (m *MemoryStore) Append(ctx context.Context, tx *Transaction) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextSeq++
	tx.Sequence = m.nextSeq
	m.entries = append(m.entries, tx)
	return nil
}

// List returns a newest-first snapshot.
func (m *MemoryStore) List(ctx context.Context) ([]*Transaction, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*Transaction, 0, len(m.entries))
	for i := len(m.entries) - 1; i >= 0; i-- {
		cp := *m.entries[i]
		out = append(out, &cp)
	}
	return out, nil
}

// Len returns the number of stored transactions.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}
