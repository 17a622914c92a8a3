package db

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/donalddop/proteinlab/pkg/model"
)

// MemStore keeps records in a map guarded by a mutex. The id counter and the
// insert share one critical section, so concurrent creates can never be
// assigned the same id. This is the default backend.
type MemStore struct {
	mu      sync.RWMutex
	lastID  int
	records map[int]model.ProteinSequence
}

// NewMemStore constructs an empty in-memory store. Ids start at 1.
func NewMemStore() *MemStore {
	return &MemStore{
		records: make(map[int]model.ProteinSequence),
	}
}

// Create validates the sequence, assigns the next id and stores the record.
// When validation fails nothing is stored and no id is consumed.
func (s *MemStore) Create(_ context.Context, name, sequence string) (model.ProteinSequence, error) {
	if err := model.ValidateSequence(sequence); err != nil {
		return model.ProteinSequence{}, err
	}

	record := model.ProteinSequence{
		Name:        name,
		Sequence:    sequence,
		Length:      len(sequence),
		Composition: model.Analyze(sequence),
	}

	s.mu.Lock()
	s.lastID++
	record.ID = s.lastID
	s.records[record.ID] = record
	s.mu.Unlock()

	return cloneRecord(record), nil
}

// Get returns the record with the given id.
func (s *MemStore) Get(_ context.Context, id int) (model.ProteinSequence, error) {
	s.mu.RLock()
	record, ok := s.records[id]
	s.mu.RUnlock()

	if !ok {
		return model.ProteinSequence{}, fmt.Errorf("%w: sequence %d", model.ErrNotFound, id)
	}
	return cloneRecord(record), nil
}

// List returns every record in ascending id order. The slice is never nil.
func (s *MemStore) List(_ context.Context) ([]model.ProteinSequence, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]int, 0, len(s.records))
	for id := range s.records {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	records := make([]model.ProteinSequence, 0, len(ids))
	for _, id := range ids {
		records = append(records, cloneRecord(s.records[id]))
	}
	return records, nil
}

// Records carry a map, so the store hands out copies to keep its own state
// safe from callers mutating what they receive.
func cloneRecord(p model.ProteinSequence) model.ProteinSequence {
	composition := make(model.Composition, len(p.Composition))
	for code, count := range p.Composition {
		composition[code] = count
	}
	p.Composition = composition
	return p
}
