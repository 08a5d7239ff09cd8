// Package view is the Note List View: an immutable state, its transitions,
// a controller that runs store requests, and text/HTML renderers.
package view

import (
	"strings"

	"github.com/haierkeys/quicknote/internal/notestore"
	"github.com/haierkeys/quicknote/pkg/code"
)

// Status of the view as seen by a renderer.
type Status int

const (
	StatusLoading Status = iota
	StatusError
	StatusReady
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusError:
		return "error"
	case StatusReady:
		return "ready"
	}
	return "unknown"
}

// Draft is the in-progress note typed by the user.
type Draft struct {
	Title   string
	Content string
}

// Empty reports whether the draft has nothing typed in it.
func (d Draft) Empty() bool {
	return d.Title == "" && d.Content == ""
}

// Kind of store operation.
type Kind int

const (
	KindLoad Kind = iota
	KindCreate
	KindDelete
	kindCount
)

func (k Kind) String() string {
	switch k {
	case KindLoad:
		return "load"
	case KindCreate:
		return "create"
	case KindDelete:
		return "delete"
	}
	return "unknown"
}

// Token tags one in-flight request. Gen grows per Kind.
type Token struct {
	Kind Kind
	Gen  uint64
}

// State is a value; every transition returns a new State and leaves the receiver untouched.
type State struct {
	notes   []notestore.Note
	draft   Draft
	loading bool
	failure *code.Code
	gens    [kindCount]uint64
	// landed holds create/delete successes seen while the newest load is in
	// flight. Its listing may predate them, so they are replayed onto it.
	landed []mutation
}

type mutation struct {
	note    notestore.Note
	deleted bool
}

// NewState returns the state of a view that has not been activated yet.
func NewState() State {
	return State{loading: true}
}

// Status is Loading while a load is in flight, Error while a banner is shown, Ready otherwise.
func (s State) Status() Status {
	switch {
	case s.loading:
		return StatusLoading
	case s.failure != nil:
		return StatusError
	}
	return StatusReady
}

// Message is the banner text in the default language, empty when there is none.
func (s State) Message() string {
	if s.failure == nil {
		return ""
	}
	return s.failure.Msg()
}

// Failure is the banner as a registered code, nil when there is none.
func (s State) Failure() *code.Code {
	return s.failure
}

// Notes returns a copy of the displayed notes.
func (s State) Notes() []notestore.Note {
	return append([]notestore.Note(nil), s.notes...)
}

// Len is the number of displayed notes.
func (s State) Len() int {
	return len(s.notes)
}

func (s State) Draft() Draft {
	return s.draft
}

// Latest reports whether tok is the newest token issued for its kind.
func (s State) Latest(tok Token) bool {
	return tok.Kind >= 0 && tok.Kind < kindCount && s.gens[tok.Kind] == tok.Gen
}

// Find returns the note with exactly matching id.
func (s State) Find(id notestore.NoteID) (notestore.Note, bool) {
	for _, n := range s.notes {
		if n.ID == id {
			return n, true
		}
	}
	return notestore.Note{}, false
}

func (s State) issue(k Kind) (State, Token) {
	s.gens[k]++
	return s, Token{Kind: k, Gen: s.gens[k]}
}

// BeginLoad marks a listing request as in flight.
func (s State) BeginLoad() (State, Token) {
	s, tok := s.issue(KindLoad)
	s.loading = true
	s.landed = nil
	return s, tok
}

// FinishLoad applies a listing result. Results of superseded loads are dropped.
// On failure the notes already shown stay as they are.
func (s State) FinishLoad(tok Token, notes []notestore.Note, err error) State {
	if tok.Kind != KindLoad || !s.Latest(tok) {
		return s
	}
	s.loading = false
	if err != nil {
		s.failure = code.ErrorLoadNotes
		return s
	}
	s.notes = dedupe(notes)
	for _, m := range s.landed {
		if m.deleted {
			s.notes = remove(s.notes, m.note.ID)
		} else {
			s.notes = prepend(s.notes, m.note)
		}
	}
	s.landed = nil
	s.failure = nil
	return s
}

// record keeps a mutation for replay onto the listing of the in-flight load.
func (s State) record(m mutation) State {
	if !s.loading {
		return s
	}
	landed := make([]mutation, 0, len(s.landed)+1)
	s.landed = append(append(landed, s.landed...), m)
	return s
}

// SetDraft replaces the draft.
func (s State) SetDraft(title, content string) State {
	s.draft = Draft{Title: title, Content: content}
	return s
}

// ValidateDraft rejects a title or content that is empty after trimming whitespace.
func ValidateDraft(title, content string) error {
	if strings.TrimSpace(title) == "" || strings.TrimSpace(content) == "" {
		return code.ErrorDraftEmpty
	}
	return nil
}

// BeginCreate marks a create request as in flight.
func (s State) BeginCreate() (State, Token) {
	return s.issue(KindCreate)
}

// FinishCreate applies a create result.
// A stored note is always prepended so the list keeps mirroring the store;
// draft and banner only follow the newest create.
func (s State) FinishCreate(tok Token, note notestore.Note, err error) State {
	if tok.Kind != KindCreate {
		return s
	}
	latest := s.Latest(tok)
	if err != nil {
		if latest {
			s.failure = code.ErrorAddNote
		}
		return s
	}
	s.notes = prepend(s.notes, note)
	s = s.record(mutation{note: note})
	if latest {
		s.draft = Draft{}
		s.failure = nil
	}
	return s
}

// BeginDelete marks a delete request as in flight.
func (s State) BeginDelete() (State, Token) {
	return s.issue(KindDelete)
}

// FinishDelete applies a delete result. A deleted note is always removed;
// the banner only follows the newest delete. Unknown ids are a no-op.
func (s State) FinishDelete(tok Token, id notestore.NoteID, err error) State {
	if tok.Kind != KindDelete {
		return s
	}
	latest := s.Latest(tok)
	if err != nil {
		if latest {
			s.failure = code.ErrorDeleteNote
		}
		return s
	}
	s.notes = remove(s.notes, id)
	s = s.record(mutation{note: notestore.Note{ID: id}, deleted: true})
	if latest {
		s.failure = nil
	}
	return s
}

// DismissError hides the banner. Notes and draft are kept.
func (s State) DismissError() State {
	s.failure = nil
	return s
}

// prepend puts note first unless its id is already shown.
func prepend(notes []notestore.Note, note notestore.Note) []notestore.Note {
	for _, n := range notes {
		if n.ID == note.ID {
			return notes
		}
	}
	out := make([]notestore.Note, 0, len(notes)+1)
	out = append(out, note)
	return append(out, notes...)
}

func remove(notes []notestore.Note, id notestore.NoteID) []notestore.Note {
	for i, n := range notes {
		if n.ID == id {
			out := make([]notestore.Note, 0, len(notes)-1)
			out = append(out, notes[:i]...)
			return append(out, notes[i+1:]...)
		}
	}
	return notes
}

// dedupe keeps the first note of every id so ids stay unique in the view.
func dedupe(notes []notestore.Note) []notestore.Note {
	out := make([]notestore.Note, 0, len(notes))
	seen := make(map[notestore.NoteID]struct{}, len(notes))
	for _, n := range notes {
		if _, ok := seen[n.ID]; ok {
			continue
		}
		seen[n.ID] = struct{}{}
		out = append(out, n)
	}
	return out
}
