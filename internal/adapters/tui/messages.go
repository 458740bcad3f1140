package tui

import (
	"time"

	"github.com/bnema/kiroku/internal/domain"
)

const frameInterval = 16 * time.Millisecond

type entriesLoadedMsg struct {
	entries []domain.JournalEntry
	err     error
}

type journalMutatedMsg struct {
	err error
}

type fetchDoneMsg struct {
	generation uint64
	problems   []domain.SolvedProblem
}

type frameMsg struct {
	seq int
}
