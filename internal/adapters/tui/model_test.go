package tui

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync"
	"testing"
	"time"

	"github.com/bnema/kiroku/internal/domain"
	"github.com/bnema/kiroku/internal/shell"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeJournal struct {
	mu      sync.Mutex
	entries []domain.JournalEntry
	nextID  int
}

func (f *fakeJournal) Entries(context.Context) ([]domain.JournalEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]domain.JournalEntry(nil), f.entries...), nil
}

func (f *fakeJournal) Append(_ context.Context, text string) (domain.JournalEntry, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	entry := domain.JournalEntry{
		ID:        domain.EntryID(fmt.Sprintf("id-%d", f.nextID)),
		Text:      text,
		CreatedAt: time.Date(2026, 4, 1, 8, f.nextID, 0, 0, time.UTC),
	}
	f.entries = append(f.entries, entry)
	return entry, true, nil
}

func (f *fakeJournal) Edit(_ context.Context, id domain.EntryID, text string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.entries {
		if f.entries[i].ID == id {
			f.entries[i].Text = text
			return true, nil
		}
	}
	return false, domain.ErrEntryNotFound
}

func (f *fakeJournal) Delete(_ context.Context, id domain.EntryID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.entries {
		if f.entries[i].ID == id {
			f.entries = append(f.entries[:i], f.entries[i+1:]...)
			return nil
		}
	}
	return domain.ErrEntryNotFound
}

type fakeSolved struct {
	mu       sync.Mutex
	contexts []context.Context
	problems []domain.SolvedProblem
}

func (f *fakeSolved) FetchForHandle(ctx context.Context, handle string) []domain.SolvedProblem {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.contexts = append(f.contexts, ctx)
	return f.problems
}

func newTestModel(journal *fakeJournal, solved *fakeSolved, tab shell.Tab) Model {
	return New(context.Background(), journal, solved, Options{
		StartTab: tab,
		Rand:     rand.New(rand.NewPCG(7, 7)),
	})
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model, cmd
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()
	for _, r := range text {
		m, _ = update(t, m, keyRunes(string(r)))
	}
	return m
}

// settle runs a command chain until it yields no message the model cares about.
func settle(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	for cmd != nil {
		msg := cmd()
		switch msg.(type) {
		case entriesLoadedMsg, journalMutatedMsg:
			m, cmd = update(t, m, msg)
		default:
			return m
		}
	}
	return m
}

func TestAddEntryThroughInput(t *testing.T) {
	journal := &fakeJournal{}
	m := newTestModel(journal, &fakeSolved{}, shell.TabJournal)

	m, _ = update(t, m, keyRunes("a"))
	m = typeText(t, m, "solved 1850A")
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = settle(t, m, cmd)

	require.Len(t, m.State().Journal.Entries, 1)
	assert.Equal(t, "solved 1850A", m.State().Journal.Entries[0].Text)
	assert.Contains(t, m.View(), "solved 1850A")
}

func TestDeleteRequiresConfirmation(t *testing.T) {
	journal := &fakeJournal{}
	_, _, _ = journal.Append(context.Background(), "keep me")
	m := newTestModel(journal, &fakeSolved{}, shell.TabJournal)
	m = settle(t, m, m.loadEntries())

	m, _ = update(t, m, keyRunes("d"))
	assert.NotEmpty(t, m.State().Journal.PendingDelete)
	assert.Contains(t, m.View(), "delete this entry? (y/n)")

	m, cmd := update(t, m, keyRunes("n"))
	assert.Nil(t, cmd)
	assert.Empty(t, m.State().Journal.PendingDelete)

	m, _ = update(t, m, keyRunes("d"))
	m, cmd = update(t, m, keyRunes("y"))
	m = settle(t, m, cmd)

	assert.Empty(t, m.State().Journal.Entries)
	assert.Empty(t, journal.entries)
}

func TestEditPrefillsAndSaves(t *testing.T) {
	journal := &fakeJournal{}
	_, _, _ = journal.Append(context.Background(), "draft")
	m := newTestModel(journal, &fakeSolved{}, shell.TabJournal)
	m = settle(t, m, m.loadEntries())

	m, _ = update(t, m, keyRunes("e"))
	assert.Equal(t, "draft", m.input.Value())
	m = typeText(t, m, " v2")
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = settle(t, m, cmd)

	assert.Equal(t, "draft v2", m.State().Journal.Entries[0].Text)
	assert.Empty(t, m.State().Journal.Editing)
}

func TestDayFilterAppliesWhileTyping(t *testing.T) {
	journal := &fakeJournal{}
	_, _, _ = journal.Append(context.Background(), "note")
	m := newTestModel(journal, &fakeSolved{}, shell.TabJournal)
	m = settle(t, m, m.loadEntries())

	m, _ = update(t, m, keyRunes("/"))
	m = typeText(t, m, "friday")
	assert.Empty(t, shell.DayGroups(m.State()))

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Len(t, shell.DayGroups(m.State()), 1)
}

func TestNewFetchCancelsPreviousAndDropsStaleResult(t *testing.T) {
	solved := &fakeSolved{problems: []domain.SolvedProblem{{Platform: domain.PlatformCodeforces, Name: "A", ContestID: "1", Index: "A"}}}
	m := New(context.Background(), &fakeJournal{}, solved, Options{StartTab: shell.TabSolved, Handle: "tourist"})

	m, _ = update(t, m, keyRunes("r"))
	first := m.State().Solved.Generation
	m, _ = update(t, m, keyRunes("r"))
	second := m.State().Solved.Generation
	require.Greater(t, second, first)

	m, _ = update(t, m, fetchDoneMsg{generation: first, problems: solved.problems})
	assert.Empty(t, m.State().Solved.Problems)
	assert.True(t, m.State().Solved.Loading)

	m, _ = update(t, m, fetchDoneMsg{generation: second, problems: solved.problems})
	assert.Len(t, m.State().Solved.Problems, 1)
	assert.False(t, m.State().Solved.Loading)
	assert.Contains(t, m.View(), "showing 1 of 1")
}

func TestNewFetchCancelsPreviousContext(t *testing.T) {
	solved := &fakeSolved{}
	m := New(context.Background(), &fakeJournal{}, solved, Options{StartTab: shell.TabSolved, Handle: "tourist"})

	m, first := update(t, m, keyRunes("r"))
	runFetch(t, first)
	require.Len(t, solved.contexts, 1)
	require.NoError(t, solved.contexts[0].Err())

	m, _ = update(t, m, keyRunes("r"))
	assert.ErrorIs(t, solved.contexts[0].Err(), context.Canceled)

	m.shutdown()
	assert.Nil(t, m.cancelFetch)
}

func runFetch(t *testing.T, cmd tea.Cmd) {
	t.Helper()
	require.NotNil(t, cmd)
	batch, ok := cmd().(tea.BatchMsg)
	require.True(t, ok)
	for _, c := range batch {
		if c == nil {
			continue
		}
		if _, done := c().(fetchDoneMsg); done {
			return
		}
	}
	t.Fatal("fetch command not found in batch")
}

func TestSparksTabMountsAndUnmounts(t *testing.T) {
	m := newTestModel(&fakeJournal{}, &fakeSolved{}, shell.TabJournal)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 40, Height: 20})

	m, cmd := update(t, m, keyRunes("3"))
	require.NotNil(t, cmd)
	require.NotNil(t, m.mount)
	pointer, resize := m.hub.Listeners()
	assert.Equal(t, 1, pointer)
	assert.Equal(t, 1, resize)

	m, _ = update(t, m, tea.MouseMsg{X: 5, Y: 5, Action: tea.MouseActionMotion})
	assert.Len(t, m.sim.Particles(), 4)

	m, next := update(t, m, frameMsg{seq: m.frameSeq})
	assert.NotNil(t, next)
	assert.Len(t, m.frame.Discs, 4)

	m, _ = update(t, m, keyRunes("1"))
	assert.Nil(t, m.mount)
	pointer, resize = m.hub.Listeners()
	assert.Zero(t, pointer)
	assert.Zero(t, resize)

	m, next = update(t, m, frameMsg{seq: m.frameSeq})
	assert.Nil(t, next)

	m, _ = update(t, m, tea.MouseMsg{X: 1, Y: 1, Action: tea.MouseActionMotion})
	assert.Len(t, m.sim.Particles(), 4)
}

func TestSparksStartTabMountsImmediately(t *testing.T) {
	m := newTestModel(&fakeJournal{}, &fakeSolved{}, shell.TabSparks)

	require.NotNil(t, m.mount)
	m, cmd := update(t, m, keyRunes("q"))
	require.NotNil(t, cmd)
	assert.Nil(t, m.mount)
}

func TestToggleThemeShowsInTabBar(t *testing.T) {
	m := newTestModel(&fakeJournal{}, &fakeSolved{}, shell.TabJournal)

	m, _ = update(t, m, keyRunes("t"))

	assert.Equal(t, shell.ThemeLight, m.State().Theme)
	assert.Contains(t, m.View(), "theme: light")
}

func TestFailedMutationStaysVisibleUntilNextKey(t *testing.T) {
	journal := &fakeJournal{}
	_, _, _ = journal.Append(context.Background(), "still here")
	m := newTestModel(journal, &fakeSolved{}, shell.TabJournal)
	m = settle(t, m, m.loadEntries())

	m = settle(t, m, m.deleteEntry("gone"))

	assert.Contains(t, m.err, "not found")
	assert.Contains(t, m.View(), "not found")
	require.Len(t, m.State().Journal.Entries, 1)

	m, _ = update(t, m, keyRunes("j"))
	assert.Empty(t, m.err)
}
