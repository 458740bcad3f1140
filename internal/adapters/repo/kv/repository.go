package kv

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/bnema/kiroku/internal/domain"
	"github.com/bnema/kiroku/internal/ports"
)

// JournalKey is the fixed key holding the serialized journal.
const JournalKey = "journalEntries"

// Repository stores the journal as one JSON array under JournalKey.
type Repository struct {
	store ports.KeyValueStore
}

var _ ports.JournalRepository = (*Repository)(nil)

func NewRepository(store ports.KeyValueStore) *Repository {
	return &Repository{store: store}
}

func (r *Repository) Load(ctx context.Context) ([]domain.JournalEntry, error) {
	data, ok, err := r.store.Get(ctx, JournalKey)
	if err != nil {
		return nil, fmt.Errorf("read journal: %w", err)
	}
	if !ok {
		return []domain.JournalEntry{}, nil
	}

	var encoded []entrySchema
	if err := json.Unmarshal(data, &encoded); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", domain.ErrCorruptJournal, JournalKey, err)
	}

	return fromSchema(encoded), nil
}

// Save writes the full sequence. An empty journal removes the key, so a store
// holding an undecodable payload is recovered by saving nothing.
func (r *Repository) Save(ctx context.Context, entries []domain.JournalEntry) error {
	if len(entries) == 0 {
		if err := r.store.Delete(ctx, JournalKey); err != nil {
			return fmt.Errorf("clear journal: %w", err)
		}
		return nil
	}

	data, err := json.Marshal(toSchema(entries))
	if err != nil {
		return fmt.Errorf("encode journal: %w", err)
	}

	if err := r.store.Put(ctx, JournalKey, data); err != nil {
		return fmt.Errorf("write journal: %w", err)
	}

	return nil
}
