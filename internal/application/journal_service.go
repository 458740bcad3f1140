package application

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/bnema/kiroku/internal/domain"
	"github.com/bnema/kiroku/internal/ports"
	"github.com/google/uuid"
)

type JournalService struct {
	// mu is held across load and save of every mutation.
	mu    sync.Mutex
	repo  ports.JournalRepository
	clock ports.Clock
	newID func() domain.EntryID
}

func NewJournalService(repo ports.JournalRepository, clock ports.Clock) *JournalService {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &JournalService{
		repo:  repo,
		clock: clock,
		newID: func() domain.EntryID { return domain.EntryID(uuid.NewString()) },
	}
}

func (s *JournalService) Entries(ctx context.Context) ([]domain.JournalEntry, error) {
	entries, err := s.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load journal: %w", err)
	}

	return entries, nil
}

// Append stores a new entry stamped with the current time. Whitespace-only
// text is ignored and reported as added == false.
func (s *JournalService) Append(ctx context.Context, text string) (domain.JournalEntry, bool, error) {
	if strings.TrimSpace(text) == "" {
		return domain.JournalEntry{}, false, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.Entries(ctx)
	if err != nil {
		return domain.JournalEntry{}, false, err
	}

	entry := domain.JournalEntry{
		ID:        s.newID(),
		Text:      text,
		CreatedAt: s.clock.Now(),
	}
	entries = append(entries, entry)

	if err := s.repo.Save(ctx, entries); err != nil {
		return domain.JournalEntry{}, false, fmt.Errorf("save journal: %w", err)
	}

	return entry, true, nil
}

func (s *JournalService) Edit(ctx context.Context, id domain.EntryID, text string) (bool, error) {
	if strings.TrimSpace(text) == "" {
		return false, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.Entries(ctx)
	if err != nil {
		return false, err
	}

	pos := indexOf(entries, id)
	if pos < 0 {
		return false, fmt.Errorf("edit entry %s: %w", id, domain.ErrEntryNotFound)
	}
	entries[pos].Text = text

	if err := s.repo.Save(ctx, entries); err != nil {
		return false, fmt.Errorf("save journal: %w", err)
	}

	return true, nil
}

func (s *JournalService) Delete(ctx context.Context, id domain.EntryID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.Entries(ctx)
	if err != nil {
		return err
	}

	pos := indexOf(entries, id)
	if pos < 0 {
		return fmt.Errorf("delete entry %s: %w", id, domain.ErrEntryNotFound)
	}

	remaining := make([]domain.JournalEntry, 0, len(entries)-1)
	remaining = append(remaining, entries[:pos]...)
	remaining = append(remaining, entries[pos+1:]...)

	if err := s.repo.Save(ctx, remaining); err != nil {
		return fmt.Errorf("save journal: %w", err)
	}

	return nil
}

// ClearAll overwrites the store without reading it, so it also recovers a
// store that no longer decodes.
func (s *JournalService) ClearAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.Save(ctx, []domain.JournalEntry{}); err != nil {
		return fmt.Errorf("clear journal: %w", err)
	}

	return nil
}

// EntryAt resolves a positional index against the current sequence.
func (s *JournalService) EntryAt(ctx context.Context, index int) (domain.JournalEntry, error) {
	entries, err := s.Entries(ctx)
	if err != nil {
		return domain.JournalEntry{}, err
	}
	if index < 0 || index >= len(entries) {
		return domain.JournalEntry{}, fmt.Errorf("entry index %d: %w", index, domain.ErrEntryNotFound)
	}

	return entries[index], nil
}

// Resolve finds the entry whose ID equals ref or, failing that, the single
// entry whose ID starts with ref.
func (s *JournalService) Resolve(ctx context.Context, ref string) (domain.JournalEntry, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return domain.JournalEntry{}, fmt.Errorf("empty entry id: %w", domain.ErrEntryNotFound)
	}

	entries, err := s.Entries(ctx)
	if err != nil {
		return domain.JournalEntry{}, err
	}

	var matches []domain.JournalEntry
	for _, entry := range entries {
		if string(entry.ID) == ref {
			return entry, nil
		}
		if strings.HasPrefix(string(entry.ID), ref) {
			matches = append(matches, entry)
		}
	}

	switch len(matches) {
	case 0:
		return domain.JournalEntry{}, fmt.Errorf("entry %q: %w", ref, domain.ErrEntryNotFound)
	case 1:
		return matches[0], nil
	default:
		return domain.JournalEntry{}, fmt.Errorf("entry id prefix %q matches %d entries", ref, len(matches))
	}
}

func (s *JournalService) Days(ctx context.Context, query string) ([]domain.DayGroup, error) {
	entries, err := s.Entries(ctx)
	if err != nil {
		return nil, err
	}

	return domain.FilterDays(domain.GroupByDay(entries), query), nil
}

func indexOf(entries []domain.JournalEntry, id domain.EntryID) int {
	for i := range entries {
		if entries[i].ID == id {
			return i
		}
	}

	return -1
}
