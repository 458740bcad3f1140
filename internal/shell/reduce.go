package shell

import (
	"slices"

	"github.com/bnema/kiroku/internal/application"
	"github.com/bnema/kiroku/internal/domain"
)

// Action is a user or system event applied by Reduce.
type Action interface {
	isAction()
}

type (
	ToggleTheme struct{}
	SelectTab   struct{ Tab Tab }

	EntriesLoaded struct{ Entries []domain.JournalEntry }
	SetDayQuery   struct{ Query string }
	RequestDelete struct{ ID domain.EntryID }
	CancelDelete  struct{}
	ConfirmDelete struct{}
	StartEdit     struct{ ID domain.EntryID }
	CancelEdit    struct{}

	SetHandle      struct{ Handle string }
	SetSearch      struct{ Query string }
	FetchStarted   struct{}
	FetchCompleted struct {
		Generation uint64
		Problems   []domain.SolvedProblem
	}
	LoadMore struct{}
)

func (ToggleTheme) isAction()    {}
func (SelectTab) isAction()      {}
func (EntriesLoaded) isAction()  {}
func (SetDayQuery) isAction()    {}
func (RequestDelete) isAction()  {}
func (CancelDelete) isAction()   {}
func (ConfirmDelete) isAction()  {}
func (StartEdit) isAction()      {}
func (CancelEdit) isAction()     {}
func (SetHandle) isAction()      {}
func (SetSearch) isAction()      {}
func (FetchStarted) isAction()   {}
func (FetchCompleted) isAction() {}
func (LoadMore) isAction()       {}

// Reduce returns the state that results from applying action to s.
// ConfirmDelete only clears the marker; the caller performs the deletion
// for the ID it read from PendingDelete before dispatching.
func Reduce(s State, action Action) State {
	switch a := action.(type) {
	case ToggleTheme:
		if s.Theme == ThemeDark {
			s.Theme = ThemeLight
		} else {
			s.Theme = ThemeDark
		}
	case SelectTab:
		if slices.Contains(Tabs, a.Tab) {
			s.Tab = a.Tab
		}

	case EntriesLoaded:
		s.Journal.Entries = slices.Clone(a.Entries)
		if _, ok := s.entry(s.Journal.PendingDelete); !ok {
			s.Journal.PendingDelete = ""
		}
		if _, ok := s.entry(s.Journal.Editing); !ok {
			s.Journal.Editing = ""
		}
	case SetDayQuery:
		s.Journal.DayQuery = a.Query
	case RequestDelete:
		if _, ok := s.entry(a.ID); ok {
			s.Journal.PendingDelete = a.ID
			s.Journal.Editing = ""
		}
	case CancelDelete, ConfirmDelete:
		s.Journal.PendingDelete = ""
	case StartEdit:
		if _, ok := s.entry(a.ID); ok {
			s.Journal.Editing = a.ID
			s.Journal.PendingDelete = ""
		}
	case CancelEdit:
		s.Journal.Editing = ""

	case SetHandle:
		s.Solved.Handle = a.Handle
	case SetSearch:
		s.Solved.Search = a.Query
	case FetchStarted:
		s.Solved.Generation++
		s.Solved.Loading = true
	case FetchCompleted:
		if a.Generation != s.Solved.Generation {
			return s
		}
		s.Solved.Problems = slices.Clone(a.Problems)
		s.Solved.Visible = application.PageSize
		s.Solved.Loading = false
	case LoadMore:
		s.Solved.Visible = application.NextVisible(s.Solved.Visible, len(FilteredProblems(s)))
	}

	return s
}
