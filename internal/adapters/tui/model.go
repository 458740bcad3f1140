// Package tui is the interactive terminal shell: journal, solved problems
// and the particle field, one tab each.
package tui

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/bnema/kiroku/internal/domain"
	"github.com/bnema/kiroku/internal/particles"
	"github.com/bnema/kiroku/internal/shell"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
)

type Journal interface {
	Entries(ctx context.Context) ([]domain.JournalEntry, error)
	Append(ctx context.Context, text string) (domain.JournalEntry, bool, error)
	Edit(ctx context.Context, id domain.EntryID, text string) (bool, error)
	Delete(ctx context.Context, id domain.EntryID) error
}

type Solved interface {
	FetchForHandle(ctx context.Context, handle string) []domain.SolvedProblem
}

type Options struct {
	StartTab shell.Tab
	Handle   string
	Rand     *rand.Rand
	Logger   zerolog.Logger
}

type inputMode int

const (
	inputNone inputMode = iota
	inputAdd
	inputEdit
	inputDayQuery
	inputHandle
	inputSearch
)

type Model struct {
	ctx     context.Context
	journal Journal
	solved  Solved
	logger  zerolog.Logger

	state  shell.State
	cursor int
	err    string

	input   textinput.Model
	mode    inputMode
	spinner spinner.Model

	cancelFetch context.CancelFunc

	sim      *particles.Simulator
	hub      *particles.Hub
	mount    *particles.Mount
	frameSeq int
	frame    particles.Frame

	width  int
	height int
}

func New(ctx context.Context, journal Journal, solved Solved, opts Options) Model {
	input := textinput.New()
	input.Prompt = "> "
	input.CharLimit = 0

	m := Model{
		ctx:     ctx,
		journal: journal,
		solved:  solved,
		logger:  opts.Logger,
		state:   shell.Initial(),
		input:   input,
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
		),
		sim: particles.NewSimulator(opts.Rand),
		hub: particles.NewHub(),
	}
	if opts.Handle != "" {
		m.state = shell.Reduce(m.state, shell.SetHandle{Handle: opts.Handle})
	}
	m.state = shell.Reduce(m.state, shell.SelectTab{Tab: opts.StartTab})
	if m.state.Tab == shell.TabSparks {
		m.mountSparks()
	}

	return m
}

func (m Model) State() shell.State {
	return m.state
}

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.loadEntries()}
	if m.mount != nil {
		cmds = append(cmds, m.nextFrame())
	}
	return tea.Batch(cmds...)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.input.Width = max(msg.Width-4, 10)
		m.hub.Resize(float64(msg.Width*CellWidth), float64(m.canvasRows()*CellHeight))
		return m, nil

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionMotion || msg.Action == tea.MouseActionPress {
			m.hub.PointerMove(float64(msg.X*CellWidth+CellWidth/2), float64((msg.Y-headerRows)*CellHeight+CellHeight/2))
		}
		return m, nil

	case entriesLoadedMsg:
		if msg.err != nil {
			m.err = msg.err.Error()
			return m, nil
		}
		m.state = shell.Reduce(m.state, shell.EntriesLoaded{Entries: msg.entries})
		m.clampCursor()
		return m, nil

	case journalMutatedMsg:
		if msg.err != nil {
			m.err = msg.err.Error()
		}
		return m, m.loadEntries()

	case fetchDoneMsg:
		m.state = shell.Reduce(m.state, shell.FetchCompleted{Generation: msg.generation, Problems: msg.problems})
		return m, nil

	case spinner.TickMsg:
		if !m.state.Solved.Loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case frameMsg:
		if m.mount == nil || msg.seq != m.frameSeq {
			return m, nil
		}
		frame, ok := m.mount.Frame()
		if !ok {
			return m, nil
		}
		m.frame = frame
		return m, m.nextFrame()

	case tea.KeyMsg:
		// Errors stay on screen until the next key press.
		m.err = ""
		if m.mode != inputNone {
			return m.updateInput(msg)
		}
		return m.updateKeys(msg)
	}

	return m, nil
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		m.shutdown()
		return m, tea.Quit
	case "tab":
		return m.selectTab(shell.Tabs[(int(m.state.Tab)+1)%len(shell.Tabs)])
	case "shift+tab":
		return m.selectTab(shell.Tabs[(int(m.state.Tab)+len(shell.Tabs)-1)%len(shell.Tabs)])
	case "1":
		return m.selectTab(shell.TabJournal)
	case "2":
		return m.selectTab(shell.TabSolved)
	case "3":
		return m.selectTab(shell.TabSparks)
	case "t":
		m.state = shell.Reduce(m.state, shell.ToggleTheme{})
		return m, nil
	}

	switch m.state.Tab {
	case shell.TabJournal:
		return m.updateJournalKeys(msg)
	case shell.TabSolved:
		return m.updateSolvedKeys(msg)
	}

	return m, nil
}

func (m Model) updateJournalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if pending := m.state.Journal.PendingDelete; pending != "" {
		switch msg.String() {
		case "y":
			m.state = shell.Reduce(m.state, shell.ConfirmDelete{})
			return m, m.deleteEntry(pending)
		case "n", "esc":
			m.state = shell.Reduce(m.state, shell.CancelDelete{})
		}
		return m, nil
	}

	switch msg.String() {
	case "j", "down":
		m.cursor++
		m.clampCursor()
	case "k", "up":
		m.cursor--
		m.clampCursor()
	case "a":
		cmd := m.openInput(inputAdd, "", "what happened?")
		return m, cmd
	case "e":
		if id, ok := m.selectedID(); ok {
			m.state = shell.Reduce(m.state, shell.StartEdit{ID: id})
			entry, _ := shell.EditingEntry(m.state)
			cmd := m.openInput(inputEdit, entry.Text, "")
			return m, cmd
		}
	case "d":
		if id, ok := m.selectedID(); ok {
			m.state = shell.Reduce(m.state, shell.RequestDelete{ID: id})
		}
	case "/":
		cmd := m.openInput(inputDayQuery, m.state.Journal.DayQuery, "filter days")
		return m, cmd
	case "esc":
		m.state = shell.Reduce(m.state, shell.SetDayQuery{Query: ""})
		m.clampCursor()
	}

	return m, nil
}

func (m Model) updateSolvedKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "h":
		cmd := m.openInput(inputHandle, m.state.Solved.Handle, "codeforces / atcoder handle")
		return m, cmd
	case "/":
		cmd := m.openInput(inputSearch, m.state.Solved.Search, "search problems")
		return m, cmd
	case "r":
		return m.startFetch()
	case "m", "enter":
		m.state = shell.Reduce(m.state, shell.LoadMore{})
	case "esc":
		m.state = shell.Reduce(m.state, shell.SetSearch{Query: ""})
	}

	return m, nil
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		switch m.mode {
		case inputEdit:
			m.state = shell.Reduce(m.state, shell.CancelEdit{})
		case inputDayQuery:
			m.state = shell.Reduce(m.state, shell.SetDayQuery{Query: ""})
			m.clampCursor()
		case inputSearch:
			m.state = shell.Reduce(m.state, shell.SetSearch{Query: ""})
		}
		m.closeInput()
		return m, nil

	case tea.KeyEnter:
		value := m.input.Value()
		mode := m.mode
		m.closeInput()
		switch mode {
		case inputAdd:
			return m, m.appendEntry(value)
		case inputEdit:
			id := m.state.Journal.Editing
			m.state = shell.Reduce(m.state, shell.CancelEdit{})
			return m, m.editEntry(id, value)
		case inputHandle:
			m.state = shell.Reduce(m.state, shell.SetHandle{Handle: value})
			return m.startFetch()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	switch m.mode {
	case inputDayQuery:
		m.state = shell.Reduce(m.state, shell.SetDayQuery{Query: m.input.Value()})
		m.clampCursor()
	case inputSearch:
		m.state = shell.Reduce(m.state, shell.SetSearch{Query: m.input.Value()})
	}
	return m, cmd
}

func (m *Model) openInput(mode inputMode, value, placeholder string) tea.Cmd {
	m.mode = mode
	m.input.Placeholder = placeholder
	m.input.SetValue(value)
	m.input.CursorEnd()
	return m.input.Focus()
}

func (m *Model) closeInput() {
	m.mode = inputNone
	m.input.Blur()
	m.input.Reset()
}

func (m Model) selectTab(tab shell.Tab) (tea.Model, tea.Cmd) {
	previous := m.state.Tab
	m.state = shell.Reduce(m.state, shell.SelectTab{Tab: tab})
	if previous == m.state.Tab {
		return m, nil
	}

	if previous == shell.TabSparks {
		m.unmountSparks()
	}
	if m.state.Tab == shell.TabSparks {
		m.mountSparks()
		return m, m.nextFrame()
	}

	return m, nil
}

func (m *Model) mountSparks() {
	m.unmountSparks()
	m.mount = m.sim.Mount(m.hub)
	m.frameSeq++
	if m.width > 0 {
		m.hub.Resize(float64(m.width*CellWidth), float64(m.canvasRows()*CellHeight))
	}
}

func (m *Model) unmountSparks() {
	if m.mount == nil {
		return
	}
	m.mount.Stop()
	m.mount = nil
	m.frame = particles.Frame{}
}

func (m *Model) shutdown() {
	m.unmountSparks()
	if m.cancelFetch != nil {
		m.cancelFetch()
		m.cancelFetch = nil
	}
}

func (m Model) nextFrame() tea.Cmd {
	seq := m.frameSeq
	return tea.Tick(frameInterval, func(time.Time) tea.Msg {
		return frameMsg{seq: seq}
	})
}

// startFetch cancels any outstanding fetch before issuing a new one.
func (m Model) startFetch() (tea.Model, tea.Cmd) {
	handle := m.state.Solved.Handle
	if handle == "" {
		return m, nil
	}
	if m.cancelFetch != nil {
		m.cancelFetch()
	}

	ctx, cancel := context.WithCancel(m.ctx)
	m.cancelFetch = cancel
	m.state = shell.Reduce(m.state, shell.FetchStarted{})
	generation := m.state.Solved.Generation
	solved := m.solved
	m.logger.Debug().Str("handle", handle).Uint64("generation", generation).Msg("fetch solved problems")

	fetch := func() tea.Msg {
		return fetchDoneMsg{generation: generation, problems: solved.FetchForHandle(ctx, handle)}
	}
	return m, tea.Batch(fetch, m.spinner.Tick)
}

func (m Model) loadEntries() tea.Cmd {
	ctx, journal := m.ctx, m.journal
	return func() tea.Msg {
		entries, err := journal.Entries(ctx)
		return entriesLoadedMsg{entries: entries, err: err}
	}
}

func (m Model) appendEntry(text string) tea.Cmd {
	ctx, journal := m.ctx, m.journal
	return func() tea.Msg {
		_, _, err := journal.Append(ctx, text)
		return journalMutatedMsg{err: err}
	}
}

func (m Model) editEntry(id domain.EntryID, text string) tea.Cmd {
	ctx, journal := m.ctx, m.journal
	return func() tea.Msg {
		_, err := journal.Edit(ctx, id, text)
		return journalMutatedMsg{err: err}
	}
}

func (m Model) deleteEntry(id domain.EntryID) tea.Cmd {
	ctx, journal := m.ctx, m.journal
	return func() tea.Msg {
		return journalMutatedMsg{err: journal.Delete(ctx, id)}
	}
}

// visibleIDs lists entry IDs in display order.
func (m Model) visibleIDs() []domain.EntryID {
	var ids []domain.EntryID
	for _, group := range shell.DayGroups(m.state) {
		for _, item := range group.Entries {
			ids = append(ids, item.Entry.ID)
		}
	}
	return ids
}

func (m Model) selectedID() (domain.EntryID, bool) {
	ids := m.visibleIDs()
	if m.cursor < 0 || m.cursor >= len(ids) {
		return "", false
	}
	return ids[m.cursor], true
}

func (m *Model) clampCursor() {
	n := len(m.visibleIDs())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m Model) canvasRows() int {
	return max(m.height-headerRows-footerRows, 1)
}
