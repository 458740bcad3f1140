package kv

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bnema/kiroku/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryStore struct {
	values map[string][]byte
	getErr error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{values: map[string][]byte{}}
}

func (m *memoryStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	if m.getErr != nil {
		return nil, false, m.getErr
	}
	value, ok := m.values[key]
	return value, ok, nil
}

func (m *memoryStore) Put(_ context.Context, key string, value []byte) error {
	m.values[key] = value
	return nil
}

func (m *memoryStore) Delete(_ context.Context, key string) error {
	delete(m.values, key)
	return nil
}

func TestRepositoryRoundTrip(t *testing.T) {
	store := newMemoryStore()
	repo := NewRepository(store)

	created := time.Date(2026, 1, 5, 21, 30, 0, 0, time.UTC)
	entries := []domain.JournalEntry{
		{ID: "e1", Text: "upsolved D", CreatedAt: created},
		{ID: "e2", Text: "read editorial", CreatedAt: created.Add(time.Minute)},
	}

	require.NoError(t, repo.Save(context.Background(), entries))
	assert.Contains(t, store.values, JournalKey)

	got, err := repo.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, domain.EntryID("e1"), got[0].ID)
	assert.True(t, created.Equal(got[0].CreatedAt))
	assert.Equal(t, "read editorial", got[1].Text)
}

func TestRepositoryMissingKeyIsEmpty(t *testing.T) {
	repo := NewRepository(newMemoryStore())

	got, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestRepositoryCorruptPayload(t *testing.T) {
	store := newMemoryStore()
	store.values[JournalKey] = []byte("{not json")
	repo := NewRepository(store)

	_, err := repo.Load(context.Background())
	require.ErrorIs(t, err, domain.ErrCorruptJournal)
}

func TestRepositoryStoreError(t *testing.T) {
	store := newMemoryStore()
	store.getErr = errors.New("disk gone")
	repo := NewRepository(store)

	_, err := repo.Load(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrCorruptJournal)
}

func TestRepositoryAssignsStableLegacyIDs(t *testing.T) {
	store := newMemoryStore()
	store.values[JournalKey] = []byte(`[
		{"text":"first","createdAt":"2025-11-02T10:00:00Z"},
		{"text":"second","createdAt":"2025-11-02T10:00:00Z"}
	]`)
	repo := NewRepository(store)

	first, err := repo.Load(context.Background())
	require.NoError(t, err)
	second, err := repo.Load(context.Background())
	require.NoError(t, err)

	require.Len(t, first, 2)
	assert.NotEmpty(t, first[0].ID)
	assert.NotEqual(t, first[0].ID, first[1].ID)
	assert.Equal(t, first[0].ID, second[0].ID)
	assert.Equal(t, first[1].ID, second[1].ID)
}

func TestRepositorySaveEmptyRemovesKey(t *testing.T) {
	store := newMemoryStore()
	store.values[JournalKey] = []byte("{not json")
	repo := NewRepository(store)

	require.NoError(t, repo.Save(context.Background(), nil))

	_, ok := store.values[JournalKey]
	assert.False(t, ok)
	got, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}
