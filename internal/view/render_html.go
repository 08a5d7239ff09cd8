package view

import (
	"context"
	"io"
	"net/url"
	"strconv"
	"strings"

	"github.com/a-h/templ"
)

const pageStyle = `body{font-family:sans-serif;background:#f4f4f4;margin:0}
.container{max-width:800px;margin:20px auto;padding:20px;background:#fff;border-radius:8px}
.error-message{color:#b00020;background:#fdecea;padding:10px;border-radius:4px}
.error-message form{display:inline;margin-left:8px}
.note-form{display:flex;flex-direction:column;gap:10px;margin-bottom:20px}
.note-item{border:1px solid #ddd;border-radius:4px;padding:10px;margin-bottom:10px}
.note-item p{white-space:pre-wrap}
.note-date{color:#777;font-size:.8em}
.no-notes-message{color:#777;text-align:center}`

// htmlWriter keeps the first write error so markup can be emitted without checks on every line.
type htmlWriter struct {
	w   io.Writer
	err error
}

func (h *htmlWriter) raw(s string) {
	if h.err == nil {
		_, h.err = io.WriteString(h.w, s)
	}
}

func (h *htmlWriter) text(s string) {
	h.raw(templ.EscapeString(s))
}

// Layout is the HTML document around the children in ctx.
func Layout(opts RenderOptions) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		lang := "en"
		if strings.HasPrefix(opts.Lang, "zh") {
			lang = "zh-CN"
		}
		h.raw(`<!DOCTYPE html><html lang="` + lang + `"><head><meta charset="utf-8">`)
		h.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		h.raw(`<title>`)
		h.text(Title)
		h.raw(`</title><style>` + pageStyle + `</style></head><body>`)
		if h.err != nil {
			return h.err
		}
		if err := templ.GetChildren(ctx).Render(ctx, w); err != nil {
			return err
		}
		h.raw(`</body></html>`)
		return h.err
	})
}

// Page renders s as a complete HTML document.
func Page(s State, opts RenderOptions) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return Layout(opts).Render(templ.WithChildren(ctx, Body(s, opts)), w)
	})
}

// Body renders s without the surrounding document.
func Body(s State, opts RenderOptions) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		if opts.Alert != "" {
			h.raw(`<dialog class="alert" role="alertdialog" open><p>`)
			h.text(opts.Alert)
			h.raw(`</p><form method="dialog"><button type="submit">OK</button></form></dialog>`)
		}
		if s.Status() == StatusLoading {
			h.raw(`<div class="container">`)
			h.text(opts.Loading())
			h.raw(`</div>`)
			return h.err
		}

		h.raw(`<div class="container"><h1>`)
		h.text(Title)
		h.raw(`</h1>`)
		if banner := opts.Banner(s); banner != "" {
			h.raw(`<div class="error-message" role="alert">`)
			h.text(banner)
			if Retryable(s) {
				h.raw(`<form method="post" action="/reload"><button type="submit">Retry</button></form>`)
			}
			h.raw(`<form method="post" action="/dismiss"><button type="submit">Dismiss</button></form></div>`)
		}

		d := s.Draft()
		h.raw(`<form method="post" action="/notes" class="note-form">`)
		h.raw(`<input type="text" name="title" placeholder="Note Title" value="`)
		h.text(d.Title)
		h.raw(`" required><textarea name="content" placeholder="Note Content" required>`)
		h.text(d.Content)
		h.raw(`</textarea><button type="submit">Add Note</button></form>`)

		h.raw(`<div class="notes-list">`)
		if s.Len() == 0 {
			h.raw(`<p class="no-notes-message">`)
			h.text(opts.Placeholder())
			h.raw(`</p>`)
		}
		confirm := `if(!confirm(` + strconv.Quote(opts.ConfirmDelete()) + `)){return false;}this.confirmed.value='yes';`
		for _, n := range s.notes {
			h.raw(`<div class="note-item" id="note-`)
			h.text(n.ID.String())
			h.raw(`"><h2>`)
			h.text(n.Title)
			h.raw(`</h2><p>`)
			h.text(n.Content)
			h.raw(`</p><span class="note-date">`)
			h.text(opts.Date(n))
			h.raw(`</span><form method="post" action="/notes/`)
			h.text(url.PathEscape(n.ID.String()))
			h.raw(`/delete" onsubmit="`)
			h.text(confirm)
			h.raw(`"><input type="hidden" name="confirmed" value="no"><button type="submit" class="delete-button">Delete</button></form></div>`)
		}
		h.raw(`</div></div>`)
		return h.err
	})
}
