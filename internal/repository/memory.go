package repository

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/information-sharing-networks/journey/internal/journal"
)

// Memory is an in-process journal.Repository.
//
// Transactions are serialized: WithinTx holds the write lock for the duration of fn and
// works on a copy of the entries that replaces the original only when fn succeeds.
type Memory struct {
	mu    sync.RWMutex
	store *memoryStore
}

func NewMemory() *Memory {
	return &Memory{store: newMemoryStore()}
}

func (m *Memory) WithinTx(ctx context.Context, fn func(ctx context.Context, repo journal.Repository) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	working := m.store.clone()
	if err := fn(ctx, &memoryTx{store: working}); err != nil {
		return err
	}
	m.store = working
	return nil
}

func (m *Memory) FindAll(ctx context.Context, orders []journal.SortOrder) ([]journal.Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.store.find(journal.Criteria{}, orders), nil
}

func (m *Memory) FindByID(ctx context.Context, id int64) (journal.Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.store.findByID(id)
}

func (m *Memory) Save(ctx context.Context, e journal.Entry) (journal.Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.store.save(e)
}

func (m *Memory) DeleteByID(ctx context.Context, id int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.store.delete(id), nil
}

func (m *Memory) Count(ctx context.Context) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return int64(len(m.store.entries)), nil
}

func (m *Memory) FindByCriteria(ctx context.Context, c journal.Criteria, orders []journal.SortOrder) ([]journal.Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.store.find(c, orders), nil
}

func (m *Memory) CountByCriteria(ctx context.Context, c journal.Criteria) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.store.count(c), nil
}

// memoryTx is the repository passed to a WithinTx callback. The caller holds the lock.
type memoryTx struct {
	store *memoryStore
}

func (t *memoryTx) WithinTx(ctx context.Context, fn func(ctx context.Context, repo journal.Repository) error) error {
	return fn(ctx, t)
}

func (t *memoryTx) FindAll(ctx context.Context, orders []journal.SortOrder) ([]journal.Entry, error) {
	return t.store.find(journal.Criteria{}, orders), nil
}

func (t *memoryTx) FindByID(ctx context.Context, id int64) (journal.Entry, error) {
	return t.store.findByID(id)
}

func (t *memoryTx) Save(ctx context.Context, e journal.Entry) (journal.Entry, error) {
	return t.store.save(e)
}

func (t *memoryTx) DeleteByID(ctx context.Context, id int64) (bool, error) {
	return t.store.delete(id), nil
}

func (t *memoryTx) Count(ctx context.Context) (int64, error) {
	return int64(len(t.store.entries)), nil
}

func (t *memoryTx) FindByCriteria(ctx context.Context, c journal.Criteria, orders []journal.SortOrder) ([]journal.Entry, error) {
	return t.store.find(c, orders), nil
}

func (t *memoryTx) CountByCriteria(ctx context.Context, c journal.Criteria) (int64, error) {
	return t.store.count(c), nil
}

type memoryStore struct {
	entries map[int64]journal.Entry
	lastID  int64
}

func newMemoryStore() *memoryStore {
	return &memoryStore{entries: make(map[int64]journal.Entry)}
}

// clone copies the map; entries are stored as private copies so they can be shared.
func (s *memoryStore) clone() *memoryStore {
	return &memoryStore{
		entries: maps.Clone(s.entries),
		lastID:  s.lastID,
	}
}

func (s *memoryStore) findByID(id int64) (journal.Entry, error) {
	e, ok := s.entries[id]
	if !ok {
		return journal.Entry{}, fmt.Errorf("%w: id %d", journal.ErrNotFound, id)
	}
	return copyEntry(e), nil
}

func (s *memoryStore) save(e journal.Entry) (journal.Entry, error) {
	e = copyEntry(e)
	if e.ID == nil {
		s.lastID++
		id := s.lastID
		e.ID = &id
	} else if _, ok := s.entries[*e.ID]; !ok {
		return journal.Entry{}, fmt.Errorf("%w: id %d", journal.ErrNotFound, *e.ID)
	}
	s.entries[*e.ID] = e
	return copyEntry(e), nil
}

func (s *memoryStore) delete(id int64) bool {
	_, ok := s.entries[id]
	delete(s.entries, id)
	return ok
}

func (s *memoryStore) find(c journal.Criteria, orders []journal.SortOrder) []journal.Entry {
	result := []journal.Entry{}
	for _, e := range s.entries {
		if c.Matches(e) {
			result = append(result, copyEntry(e))
		}
	}
	orders = journal.NormalizeSort(orders)
	slices.SortFunc(result, func(a, b journal.Entry) int {
		return journal.CompareEntries(a, b, orders)
	})
	return result
}

func (s *memoryStore) count(c journal.Criteria) int64 {
	var n int64
	for _, e := range s.entries {
		if c.Matches(e) {
			n++
		}
	}
	return n
}

func copyEntry(e journal.Entry) journal.Entry {
	out := journal.Entry{Title: e.Title}
	if e.ID != nil {
		id := *e.ID
		out.ID = &id
	}
	if e.Description != nil {
		d := *e.Description
		out.Description = &d
	}
	return out
}
