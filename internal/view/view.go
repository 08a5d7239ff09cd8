package view

import (
	"context"
	"sync"

	"github.com/haierkeys/quicknote/internal/notestore"
	"github.com/haierkeys/quicknote/pkg/code"
	"github.com/haierkeys/quicknote/pkg/logger"

	"go.uber.org/zap"
)

// Store is the note store as the view sees it.
type Store interface {
	List(ctx context.Context) ([]notestore.Note, error)
	Create(ctx context.Context, title, content string) (notestore.Note, error)
	Delete(ctx context.Context, id notestore.NoteID) error
}

// Prompter shows blocking notifications to the user.
type Prompter interface {
	Alert(ctx context.Context, msg string)
	Confirm(ctx context.Context, msg string) bool
}

// AssumeYes confirms every prompt and drops alerts.
type AssumeYes struct{}

func (AssumeYes) Alert(context.Context, string) {}

func (AssumeYes) Confirm(context.Context, string) bool { return true }

// View owns one State and runs store requests against it.
// Store calls never hold the lock, so requests may overlap; the generation
// tokens decide which results still apply.
type View struct {
	mu       sync.Mutex
	state    State
	store    Store
	prompter Prompter
	logger   *zap.Logger
	lang     string
	once     sync.Once
}

type Option func(*View)

func WithLogger(lg *zap.Logger) Option {
	return func(v *View) {
		if lg != nil {
			v.logger = lg
		}
	}
}

// WithLanguage selects the language of alert and confirm prompts.
func WithLanguage(lang string) Option {
	return func(v *View) {
		v.lang = lang
	}
}

// New 创建笔记列表视图
func New(store Store, prompter Prompter, opts ...Option) *View {
	v := &View{
		state:    NewState(),
		store:    store,
		prompter: prompter,
		logger:   zap.NewNop(),
	}
	if v.prompter == nil {
		v.prompter = AssumeYes{}
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// State returns a snapshot of the current state.
func (v *View) State() State {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

func (v *View) update(fn func(State) State) State {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.state = fn(v.state)
	return v.state
}

// Activate loads the notes the first time it is called; later calls only return the state.
func (v *View) Activate(ctx context.Context) State {
	v.once.Do(func() {
		v.Load(ctx)
	})
	return v.State()
}

// Load replaces the notes with the store listing.
func (v *View) Load(ctx context.Context) State {
	var tok Token
	v.update(func(s State) State {
		s, tok = s.BeginLoad()
		return s
	})

	notes, err := v.store.List(ctx)
	if err != nil {
		v.logger.Warn("view load notes failed",
			zap.String(logger.FieldAction, KindLoad.String()),
			zap.Uint64(logger.FieldGeneration, tok.Gen),
			zap.Error(err))
	} else {
		v.logger.Debug("view load notes",
			zap.Uint64(logger.FieldGeneration, tok.Gen),
			zap.Int(logger.FieldCount, len(notes)))
	}
	return v.update(func(s State) State {
		if !s.Latest(tok) {
			v.logger.Debug("view discard stale load", zap.Uint64(logger.FieldGeneration, tok.Gen))
		}
		return s.FinishLoad(tok, notes, err)
	})
}

// Reload is the manual retry after a failed load.
func (v *View) Reload(ctx context.Context) State {
	v.once.Do(func() {})
	return v.Load(ctx)
}

// SetDraft replaces the draft.
func (v *View) SetDraft(title, content string) State {
	return v.update(func(s State) State {
		return s.SetDraft(title, content)
	})
}

// DismissError hides the error banner.
func (v *View) DismissError() State {
	return v.update(State.DismissError)
}

// Create stores a new note. The typed fields become the draft first so
// nothing is lost when validation or the request fails.
func (v *View) Create(ctx context.Context, title, content string) State {
	v.SetDraft(title, content)
	if err := ValidateDraft(title, content); err != nil {
		v.prompter.Alert(ctx, code.ErrorDraftEmpty.MsgIn(v.lang))
		return v.State()
	}

	var tok Token
	v.update(func(s State) State {
		s, tok = s.BeginCreate()
		return s
	})

	note, err := v.store.Create(ctx, title, content)
	if err != nil {
		v.logger.Warn("view add note failed",
			zap.String(logger.FieldAction, KindCreate.String()),
			zap.Uint64(logger.FieldGeneration, tok.Gen),
			zap.Error(err))
	} else {
		v.logger.Debug("view add note",
			zap.String(logger.FieldNoteID, note.ID.String()),
			zap.Uint64(logger.FieldGeneration, tok.Gen))
	}
	return v.update(func(s State) State {
		return s.FinishCreate(tok, note, err)
	})
}

// Delete removes a note after the user confirms. Declining sends nothing.
func (v *View) Delete(ctx context.Context, id notestore.NoteID) State {
	if !v.prompter.Confirm(ctx, code.PromptDeleteNote.MsgIn(v.lang)) {
		return v.State()
	}

	var tok Token
	v.update(func(s State) State {
		s, tok = s.BeginDelete()
		return s
	})

	err := v.store.Delete(ctx, id)
	if err != nil {
		v.logger.Warn("view delete note failed",
			zap.String(logger.FieldAction, KindDelete.String()),
			zap.String(logger.FieldNoteID, id.String()),
			zap.Uint64(logger.FieldGeneration, tok.Gen),
			zap.Error(err))
	} else {
		v.logger.Debug("view delete note",
			zap.String(logger.FieldNoteID, id.String()),
			zap.Uint64(logger.FieldGeneration, tok.Gen))
	}
	return v.update(func(s State) State {
		return s.FinishDelete(tok, id, err)
	})
}
