// Package tui is the terminal front-end of the Note List View.
package tui

import (
	"context"
	"strings"

	"github.com/haierkeys/quicknote/internal/notestore"
	"github.com/haierkeys/quicknote/internal/view"
	"github.com/haierkeys/quicknote/pkg/code"
	"github.com/haierkeys/quicknote/pkg/logger"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

type mode int

const (
	modeList mode = iota
	modeTitle
	modeContent
	modeConfirm
	modeAlert
)

const helpLine = "↑/↓ select  a add  d delete  r reload  x dismiss  q quit"

// Store results, tagged with the token of the request that produced them.
type (
	loadedMsg struct {
		tok   view.Token
		notes []notestore.Note
		err   error
	}
	createdMsg struct {
		tok  view.Token
		note notestore.Note
		err  error
	}
	deletedMsg struct {
		tok view.Token
		id  notestore.NoteID
		err error
	}
)

// Model is the bubbletea model. The view state is only changed by Update.
type Model struct {
	ctx     context.Context
	store   view.Store
	logger  *zap.Logger
	opts    view.RenderOptions
	state   view.State
	initTok view.Token

	mode    mode
	cursor  int
	title   string
	content string
	alert   string
	target  notestore.NoteID
}

// New returns a model whose first load is issued by Init.
func New(ctx context.Context, store view.Store, opts view.RenderOptions, lg *zap.Logger) Model {
	if lg == nil {
		lg = zap.NewNop()
	}
	state, tok := view.NewState().BeginLoad()
	return Model{
		ctx:     ctx,
		store:   store,
		logger:  lg,
		opts:    opts,
		state:   state,
		initTok: tok,
	}
}

func (m Model) Init() tea.Cmd {
	return m.load(m.initTok)
}

// State is the current view state.
func (m Model) State() view.State {
	return m.state
}

func (m Model) load(tok view.Token) tea.Cmd {
	ctx, store := m.ctx, m.store
	return func() tea.Msg {
		notes, err := store.List(ctx)
		return loadedMsg{tok: tok, notes: notes, err: err}
	}
}

func (m Model) create(tok view.Token, title, content string) tea.Cmd {
	ctx, store := m.ctx, m.store
	return func() tea.Msg {
		note, err := store.Create(ctx, title, content)
		return createdMsg{tok: tok, note: note, err: err}
	}
}

func (m Model) remove(tok view.Token, id notestore.NoteID) tea.Cmd {
	ctx, store := m.ctx, m.store
	return func() tea.Msg {
		return deletedMsg{tok: tok, id: id, err: store.Delete(ctx, id)}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		if msg.err != nil {
			m.logger.Warn("tui load notes failed", zap.Uint64(logger.FieldGeneration, msg.tok.Gen), zap.Error(msg.err))
		}
		m.state = m.state.FinishLoad(msg.tok, msg.notes, msg.err)
		m.clampCursor()
		return m, nil
	case createdMsg:
		if msg.err != nil {
			m.logger.Warn("tui add note failed", zap.Uint64(logger.FieldGeneration, msg.tok.Gen), zap.Error(msg.err))
		}
		m.state = m.state.FinishCreate(msg.tok, msg.note, msg.err)
		if msg.err == nil && m.state.Draft().Empty() {
			m.title, m.content = "", ""
		}
		return m, nil
	case deletedMsg:
		if msg.err != nil {
			m.logger.Warn("tui delete note failed",
				zap.String(logger.FieldNoteID, msg.id.String()),
				zap.Uint64(logger.FieldGeneration, msg.tok.Gen),
				zap.Error(msg.err))
		}
		m.state = m.state.FinishDelete(msg.tok, msg.id, msg.err)
		m.clampCursor()
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case modeAlert:
		// any key closes the alert and returns to the form
		m.alert = ""
		m.mode = modeTitle
		return m, nil
	case modeConfirm:
		m.mode = modeList
		if msg.String() != "y" && msg.String() != "Y" {
			return m, nil
		}
		var tok view.Token
		m.state, tok = m.state.BeginDelete()
		return m, m.remove(tok, m.target)
	case modeTitle, modeContent:
		return m.handleCompose(msg)
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < m.state.Len()-1 {
			m.cursor++
		}
	case "a":
		if m.state.Status() == view.StatusLoading {
			return m, nil
		}
		d := m.state.Draft()
		m.title, m.content = d.Title, d.Content
		m.mode = modeTitle
	case "d":
		notes := m.state.Notes()
		if m.state.Status() == view.StatusLoading || len(notes) == 0 {
			return m, nil
		}
		m.target = notes[m.cursor].ID
		m.mode = modeConfirm
	case "r":
		var tok view.Token
		m.state, tok = m.state.BeginLoad()
		return m, m.load(tok)
	case "x":
		m.state = m.state.DismissError()
	}
	return m, nil
}

func (m Model) handleCompose(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	field := &m.title
	if m.mode == modeContent {
		field = &m.content
	}

	switch msg.Type {
	case tea.KeyEsc:
		m.state = m.state.SetDraft(m.title, m.content)
		m.mode = modeList
		return m, nil
	case tea.KeyEnter:
		m.state = m.state.SetDraft(m.title, m.content)
		if m.mode == modeTitle {
			m.mode = modeContent
			return m, nil
		}
		if err := view.ValidateDraft(m.title, m.content); err != nil {
			m.alert = m.message(code.ErrorDraftEmpty)
			m.mode = modeAlert
			return m, nil
		}
		m.mode = modeList
		var tok view.Token
		m.state, tok = m.state.BeginCreate()
		return m, m.create(tok, m.title, m.content)
	case tea.KeyBackspace:
		if r := []rune(*field); len(r) > 0 {
			*field = string(r[:len(r)-1])
		}
	case tea.KeySpace:
		*field += " "
	case tea.KeyRunes:
		*field += string(msg.Runes)
	}
	return m, nil
}

func (m Model) message(c *code.Code) string {
	if m.opts.Lang == "" {
		return c.Msg()
	}
	return c.MsgIn(m.opts.Lang)
}

func (m *Model) clampCursor() {
	if n := m.state.Len(); m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m Model) View() string {
	opts := m.opts
	opts.Alert = m.alert

	var b strings.Builder
	if err := view.RenderText(&b, m.state, opts); err != nil {
		return err.Error()
	}
	if m.state.Status() == view.StatusLoading {
		return b.String()
	}

	b.WriteString("\n")
	switch m.mode {
	case modeTitle:
		b.WriteString("Title: " + m.title + "_\n")
	case modeContent:
		b.WriteString("Title: " + m.title + "\nContent: " + m.content + "_\n")
	case modeConfirm:
		b.WriteString(m.message(code.PromptDeleteNote) + " (y/n)\n")
	case modeAlert:
		b.WriteString("press any key\n")
	default:
		if notes := m.state.Notes(); len(notes) > 0 {
			n := notes[m.cursor]
			b.WriteString("> [" + n.ID.String() + "] " + n.Title + "\n")
		}
		b.WriteString(helpLine + "\n")
	}
	return b.String()
}

// Run starts the terminal UI and blocks until the user quits.
func Run(ctx context.Context, store view.Store, opts view.RenderOptions, lg *zap.Logger, programOpts ...tea.ProgramOption) error {
	programOpts = append([]tea.ProgramOption{tea.WithContext(ctx), tea.WithAltScreen()}, programOpts...)
	_, err := tea.NewProgram(New(ctx, store, opts, lg), programOpts...).Run()
	return err
}
