package cmd

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/haierkeys/quicknote/internal/notestore"
	"github.com/haierkeys/quicknote/internal/view"
	"github.com/haierkeys/quicknote/pkg/code"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const listing = `[{"id":2,"title":"B","content":"b","created_at":"2024-05-01T10:00:00.000000Z"},{"id":1,"title":"A","content":"a","created_at":"2024-05-01T09:00:00.000000Z"}]`

type storeStub struct {
	list    int32
	deletes int32
	status  int
}

func (s *storeStub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if s.status != 0 {
		w.WriteHeader(s.status)
		return
	}
	switch {
	case r.Method == http.MethodGet && r.URL.Path == "/notes":
		atomic.AddInt32(&s.list, 1)
		_, _ = io.WriteString(w, listing)
	case r.Method == http.MethodPost && r.URL.Path == "/notes":
		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `{"id":3,"title":"C","content":"c","created_at":"2024-05-01T11:00:00.000000Z"}`)
	case r.Method == http.MethodDelete && r.URL.Path == "/notes/2":
		atomic.AddInt32(&s.deletes, 1)
		_, _ = io.WriteString(w, `{"message":"Note deleted successfully!"}`)
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func newTestView(t *testing.T, stub *storeStub, prompter view.Prompter) *view.View {
	t.Helper()
	srv := httptest.NewServer(stub)
	t.Cleanup(srv.Close)
	store, err := notestore.New(srv.URL)
	require.NoError(t, err)
	return view.New(store, prompter)
}

var utcOpts = view.RenderOptions{Location: time.UTC}

func TestNotesListText(t *testing.T) {
	v := newTestView(t, &storeStub{}, view.AssumeYes{})
	var out bytes.Buffer
	require.NoError(t, notesList(context.Background(), v, &out, utcOpts, false))
	assert.Contains(t, out.String(), "[2] B")
	assert.Less(t, strings.Index(out.String(), "[2] B"), strings.Index(out.String(), "[1] A"))
	assert.Contains(t, out.String(), "2024-05-01 10:00:00")
}

func TestNotesListJSON(t *testing.T) {
	v := newTestView(t, &storeStub{}, view.AssumeYes{})
	var out bytes.Buffer
	require.NoError(t, notesList(context.Background(), v, &out, utcOpts, true))
	assert.JSONEq(t, listing, out.String())
}

func TestNotesListFailureExitsWithError(t *testing.T) {
	v := newTestView(t, &storeStub{status: http.StatusInternalServerError}, view.AssumeYes{})
	var out bytes.Buffer
	err := notesList(context.Background(), v, &out, utcOpts, true)
	require.Error(t, err)
	assert.ErrorIs(t, err, code.ErrorLoadNotes)
	assert.Equal(t, "[]\n", out.String())
}

func TestNotesAdd(t *testing.T) {
	v := newTestView(t, &storeStub{}, view.AssumeYes{})
	var out bytes.Buffer
	require.NoError(t, notesAdd(context.Background(), v, &out, utcOpts, "C", "c"))
	assert.Equal(t, "3", v.State().Notes()[0].ID.String())
	assert.Contains(t, out.String(), "[3] C")
}

func TestNotesAddBlank(t *testing.T) {
	var alerts bytes.Buffer
	v := newTestView(t, &storeStub{}, newStdinPrompter(strings.NewReader(""), &alerts))
	err := notesAdd(context.Background(), v, io.Discard, utcOpts, " ", "c")
	assert.ErrorIs(t, err, code.ErrorDraftEmpty)
	assert.Equal(t, "Title and Content cannot be empty!\n", alerts.String())
	assert.Len(t, v.State().Notes(), 2)
}

func TestNotesDeleteConfirm(t *testing.T) {
	stub := &storeStub{}
	var prompts bytes.Buffer
	v := newTestView(t, stub, newStdinPrompter(strings.NewReader("n\n"), &prompts))
	require.NoError(t, notesDelete(context.Background(), v, io.Discard, utcOpts, "2"))
	assert.Equal(t, int32(0), atomic.LoadInt32(&stub.deletes))
	assert.Equal(t, "Are you sure you want to delete this note? [y/N] ", prompts.String())

	v = newTestView(t, stub, newStdinPrompter(strings.NewReader("yes\n"), io.Discard))
	var out bytes.Buffer
	require.NoError(t, notesDelete(context.Background(), v, &out, utcOpts, "2"))
	assert.Equal(t, int32(1), atomic.LoadInt32(&stub.deletes))
	assert.NotContains(t, out.String(), "[2] B")
}

func TestNotesDeleteUnknownIDFails(t *testing.T) {
	v := newTestView(t, &storeStub{}, view.AssumeYes{})
	err := notesDelete(context.Background(), v, io.Discard, utcOpts, "99")
	assert.ErrorIs(t, err, code.ErrorDeleteNote)
	assert.Len(t, v.State().Notes(), 2)
}
