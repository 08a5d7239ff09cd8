package view

import (
	"time"

	"github.com/haierkeys/quicknote/internal/notestore"
	"github.com/haierkeys/quicknote/pkg/code"
)

// DefaultTimeFormat is used when RenderOptions.TimeFormat is empty.
const DefaultTimeFormat = "2006-01-02 15:04:05"

const Title = "QuickNote"

// RenderOptions controls how a State is turned into text or HTML.
type RenderOptions struct {
	// Location of displayed dates, time.Local when nil.
	Location   *time.Location
	TimeFormat string
	// Lang of the fixed messages, the global default when empty.
	Lang string
	// Alert is a pending blocking notification, shown above everything else.
	Alert string
}

func (o RenderOptions) msg(c *code.Code) string {
	if o.Lang == "" {
		return c.Msg()
	}
	return c.MsgIn(o.Lang)
}

// Date formats the creation time of n for display. Unparseable timestamps are shown as sent.
func (o RenderOptions) Date(n notestore.Note) string {
	t, ok := n.CreatedTime()
	if !ok {
		return n.CreatedAt
	}
	loc := o.Location
	if loc == nil {
		loc = time.Local
	}
	layout := o.TimeFormat
	if layout == "" {
		layout = DefaultTimeFormat
	}
	return t.In(loc).Format(layout)
}

// Banner is the error banner text in the render language.
func (o RenderOptions) Banner(s State) string {
	if s.failure == nil {
		return ""
	}
	return o.msg(s.failure)
}

func (o RenderOptions) Loading() string {
	return o.msg(code.PromptLoading)
}

func (o RenderOptions) Placeholder() string {
	return o.msg(code.PromptNoNotes)
}

func (o RenderOptions) ConfirmDelete() string {
	return o.msg(code.PromptDeleteNote)
}

// Retryable reports whether the banner comes from a failed load.
func Retryable(s State) bool {
	return s.failure != nil && s.failure.Is(code.ErrorLoadNotes)
}
