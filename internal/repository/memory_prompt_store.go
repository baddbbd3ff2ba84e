package repository

import (
	"context"
	"sync"

	"prompt-vault/internal/domain/prompt"
	vault_errors "prompt-vault/pkg/errors"
)

// MemoryPromptStore is the basic service's globally shared store: a mapping
// from id to record, exclusively owned by the running process and lost on
// restart. Listing follows insertion order.
type MemoryPromptStore struct {
	mu      sync.RWMutex
	records map[string]prompt.Record
	order   []string
}

func NewMemoryPromptStore() *MemoryPromptStore {
	return &MemoryPromptStore{records: make(map[string]prompt.Record)}
}

func (s *MemoryPromptStore) Insert(ctx context.Context, rec prompt.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.records[rec.ID]; !ok {
		s.order = append(s.order, rec.ID)
	}
	s.records[rec.ID] = rec
	return nil
}

func (s *MemoryPromptStore) List(ctx context.Context, typeFilter string, limit, offset int) ([]prompt.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]prompt.Record, 0, len(s.order))
	for _, id := range s.order {
		rec := s.records[id]
		if typeFilter != "" && rec.Type != typeFilter {
			continue
		}
		items = append(items, rec)
	}
	return paginate(items, limit, offset), nil
}

func (s *MemoryPromptStore) Get(ctx context.Context, id string) (prompt.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.records[id]
	if !ok {
		return prompt.Record{}, vault_errors.ErrNotFound
	}
	return rec, nil
}

func (s *MemoryPromptStore) Update(ctx context.Context, id string, mutate func(*prompt.Record)) (prompt.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.records[id]
	if !ok {
		return prompt.Record{}, vault_errors.ErrNotFound
	}
	mutate(&rec)
	s.records[id] = rec
	return rec, nil
}

func (s *MemoryPromptStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.records[id]; !ok {
		return vault_errors.ErrNotFound
	}
	delete(s.records, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

func paginate(items []prompt.Record, limit, offset int) []prompt.Record {
	if offset >= len(items) {
		return []prompt.Record{}
	}
	end := offset + limit
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}
