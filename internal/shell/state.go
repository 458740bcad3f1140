// Package shell holds the interactive UI state and the pure transitions
// applied to it.
package shell

import (
	"slices"

	"github.com/bnema/kiroku/internal/application"
	"github.com/bnema/kiroku/internal/domain"
)

type Theme int

const (
	ThemeDark Theme = iota
	ThemeLight
)

func (t Theme) String() string {
	if t == ThemeLight {
		return "light"
	}
	return "dark"
}

type Tab int

const (
	TabJournal Tab = iota
	TabSolved
	TabSparks
)

var Tabs = []Tab{TabJournal, TabSolved, TabSparks}

func (t Tab) String() string {
	switch t {
	case TabSolved:
		return "Solved"
	case TabSparks:
		return "Sparks"
	default:
		return "Journal"
	}
}

type JournalState struct {
	Entries       []domain.JournalEntry
	DayQuery      string
	PendingDelete domain.EntryID
	Editing       domain.EntryID
}

type SolvedState struct {
	Handle     string
	Search     string
	Problems   []domain.SolvedProblem
	Visible    int
	Loading    bool
	Generation uint64
}

// State is never mutated in place; Reduce returns a new value.
type State struct {
	Theme   Theme
	Tab     Tab
	Journal JournalState
	Solved  SolvedState
}

func Initial() State {
	return State{
		Theme:  ThemeDark,
		Tab:    TabJournal,
		Solved: SolvedState{Visible: application.PageSize},
	}
}

// DayGroups is the journal grouped by day and narrowed by the day query.
func DayGroups(s State) []domain.DayGroup {
	return domain.FilterDays(domain.GroupByDay(s.Journal.Entries), s.Journal.DayQuery)
}

// FilteredProblems is every fetched problem matching the search text.
func FilteredProblems(s State) []domain.SolvedProblem {
	return application.Search(s.Solved.Problems, s.Solved.Search)
}

// VisibleProblems is the current page window over FilteredProblems.
func VisibleProblems(s State) []domain.SolvedProblem {
	return application.Paginate(FilteredProblems(s), s.Solved.Visible)
}

// CanLoadMore reports whether LoadMore would reveal more problems.
func CanLoadMore(s State) bool {
	return s.Solved.Visible < len(FilteredProblems(s))
}

func (s State) entry(id domain.EntryID) (domain.JournalEntry, bool) {
	i := slices.IndexFunc(s.Journal.Entries, func(e domain.JournalEntry) bool { return e.ID == id })
	if i < 0 {
		return domain.JournalEntry{}, false
	}
	return s.Journal.Entries[i], true
}

// EditingEntry returns the entry being edited, if any.
func EditingEntry(s State) (domain.JournalEntry, bool) {
	if s.Journal.Editing == "" {
		return domain.JournalEntry{}, false
	}
	return s.entry(s.Journal.Editing)
}
