// Package db provides the protein sequence stores. Both backends hold state
// for the process lifetime only: the memory store by nature, the sqlite
// store by running on an in-memory database.
package db

import (
	"context"
	"fmt"

	"github.com/donalddop/proteinlab/pkg/model"
)

// ProteinStore is the storage contract for sequence records: create with a
// fresh id, fetch by id, list in ascending id order. There are no update or
// delete operations; mutating a sequence creates a new record instead.
type ProteinStore interface {
	Create(ctx context.Context, name, sequence string) (model.ProteinSequence, error)
	Get(ctx context.Context, id int) (model.ProteinSequence, error)
	List(ctx context.Context) ([]model.ProteinSequence, error)
}

// Backend names accepted by NewStore.
const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
)

// NewStore builds the store backend selected by name. An empty name selects
// the memory backend.
func NewStore(backend string) (ProteinStore, error) {
	switch backend {
	case BackendMemory, "":
		return NewMemStore(), nil
	case BackendSQLite:
		return NewSQLStore()
	default:
		return nil, fmt.Errorf("unknown store backend: %q", backend)
	}
}
