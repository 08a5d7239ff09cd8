package view

import (
	"context"
	"sync"
	"testing"

	"github.com/haierkeys/quicknote/internal/notestore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	mu       sync.Mutex
	notes    []notestore.Note
	created  notestore.Note
	err      error
	lists    int
	creates  int
	deletes  []notestore.NoteID
	listHook func()
}

func (f *fakeStore) List(context.Context) ([]notestore.Note, error) {
	f.mu.Lock()
	f.lists++
	hook := f.listHook
	notes, err := append([]notestore.Note(nil), f.notes...), f.err
	f.mu.Unlock()
	if hook != nil {
		hook()
	}
	return notes, err
}

func (f *fakeStore) Create(_ context.Context, title, content string) (notestore.Note, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.creates++
	if f.err != nil {
		return notestore.Note{}, f.err
	}
	return f.created, nil
}

func (f *fakeStore) Delete(_ context.Context, id notestore.NoteID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deletes = append(f.deletes, id)
	return f.err
}

func (f *fakeStore) requests() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lists + f.creates + len(f.deletes)
}

type fakePrompter struct {
	answer   bool
	alerts   []string
	confirms []string
}

func (p *fakePrompter) Alert(_ context.Context, msg string) {
	p.alerts = append(p.alerts, msg)
}

func (p *fakePrompter) Confirm(_ context.Context, msg string) bool {
	p.confirms = append(p.confirms, msg)
	return p.answer
}

func TestViewLoadSuccess(t *testing.T) {
	a, b := note("1", "A"), note("2", "B")
	store := &fakeStore{notes: []notestore.Note{a, b}}
	v := New(store, &fakePrompter{})

	s := v.Activate(context.Background())
	assert.Equal(t, StatusReady, s.Status())
	assert.Equal(t, []notestore.Note{a, b}, s.Notes())

	v.Activate(context.Background())
	assert.Equal(t, 1, store.lists)
}

func TestViewLoadFailureAndRetry(t *testing.T) {
	store := &fakeStore{err: errStore}
	v := New(store, &fakePrompter{})

	s := v.Activate(context.Background())
	assert.Equal(t, StatusError, s.Status())
	assert.Equal(t, "Failed to load notes. Please try again.", s.Message())
	assert.Empty(t, s.Notes())

	store.err = nil
	store.notes = []notestore.Note{note("1", "A")}
	s = v.Reload(context.Background())
	assert.Equal(t, StatusReady, s.Status())
	assert.Len(t, s.Notes(), 1)
}

func TestViewCreateValidation(t *testing.T) {
	store := &fakeStore{notes: []notestore.Note{note("1", "A")}}
	prompter := &fakePrompter{}
	v := New(store, prompter)
	v.Activate(context.Background())
	before := store.requests()

	for _, title := range []string{"", "   ", "\t\n"} {
		s := v.Create(context.Background(), title, "content")
		assert.Equal(t, []notestore.Note{note("1", "A")}, s.Notes())
		assert.Equal(t, title, s.Draft().Title)
	}
	v.Create(context.Background(), "title", " ")

	assert.Equal(t, before, store.requests())
	require.Len(t, prompter.alerts, 4)
	assert.Equal(t, "Title and Content cannot be empty!", prompter.alerts[0])
}

func TestViewCreatePrepends(t *testing.T) {
	a, b, c := note("1", "A"), note("2", "B"), note("3", "C")
	store := &fakeStore{notes: []notestore.Note{a, b}, created: c}
	v := New(store, &fakePrompter{})
	v.Activate(context.Background())

	s := v.Create(context.Background(), "C", "C content")
	assert.Equal(t, []notestore.Note{c, a, b}, s.Notes())
	assert.Equal(t, Draft{}, s.Draft())
	assert.Equal(t, StatusReady, s.Status())
}

func TestViewCreateFailureKeepsDraft(t *testing.T) {
	store := &fakeStore{}
	v := New(store, &fakePrompter{})
	v.Activate(context.Background())

	store.err = errStore
	s := v.Create(context.Background(), "t", "c")
	assert.Equal(t, "Failed to add note. Please try again.", s.Message())
	assert.Equal(t, Draft{Title: "t", Content: "c"}, s.Draft())
}

func TestViewDelete(t *testing.T) {
	a, b := note("1", "A"), note("2", "B")
	store := &fakeStore{notes: []notestore.Note{a, b}}
	prompter := &fakePrompter{answer: true}
	v := New(store, prompter)
	v.Activate(context.Background())

	s := v.Delete(context.Background(), b.ID)
	assert.Equal(t, []notestore.Note{a}, s.Notes())
	assert.Equal(t, []string{"Are you sure you want to delete this note?"}, prompter.confirms)

	s = v.Delete(context.Background(), "42")
	assert.Equal(t, []notestore.Note{a}, s.Notes())
	assert.Equal(t, StatusReady, s.Status())
}

func TestViewDeleteCancelled(t *testing.T) {
	store := &fakeStore{notes: []notestore.Note{note("1", "A")}}
	v := New(store, &fakePrompter{answer: false})
	v.Activate(context.Background())
	before := store.requests()

	s := v.Delete(context.Background(), "1")
	assert.Equal(t, before, store.requests())
	assert.Empty(t, store.deletes)
	assert.Len(t, s.Notes(), 1)
}

func TestViewDeleteFailure(t *testing.T) {
	store := &fakeStore{notes: []notestore.Note{note("1", "A")}}
	v := New(store, AssumeYes{})
	v.Activate(context.Background())

	store.err = errStore
	s := v.Delete(context.Background(), "1")
	assert.Equal(t, "Failed to delete note. Please try again.", s.Message())
	assert.Len(t, s.Notes(), 1)

	s = v.DismissError()
	assert.Equal(t, StatusReady, s.Status())
}

func TestViewOverlappingLoadsKeepNewest(t *testing.T) {
	store := &fakeStore{notes: []notestore.Note{note("1", "old")}}
	v := New(store, &fakePrompter{})

	started := make(chan struct{})
	release := make(chan struct{})
	store.listHook = func() {
		close(started)
		<-release
	}

	done := make(chan State)
	go func() { done <- v.Load(context.Background()) }()
	<-started

	store.mu.Lock()
	store.listHook = nil
	store.notes = []notestore.Note{note("2", "new")}
	store.mu.Unlock()
	s := v.Load(context.Background())
	require.Equal(t, []notestore.Note{note("2", "new")}, s.Notes())

	close(release)
	<-done
	assert.Equal(t, []notestore.Note{note("2", "new")}, v.State().Notes())
	assert.Equal(t, StatusReady, v.State().Status())
}

func TestViewWithLanguage(t *testing.T) {
	prompter := &fakePrompter{}
	v := New(&fakeStore{}, prompter, WithLanguage("zh_cn"))
	v.Activate(context.Background())
	v.Create(context.Background(), "", "")
	assert.Equal(t, []string{"标题和内容不能为空！"}, prompter.alerts)
}

func TestViewCreateDuringReloadSurvivesListing(t *testing.T) {
	a, c := note("1", "A"), note("2", "C")
	store := &fakeStore{notes: []notestore.Note{a}, created: c}
	v := New(store, &fakePrompter{answer: true})
	v.Activate(context.Background())

	started := make(chan struct{})
	release := make(chan struct{})
	store.mu.Lock()
	store.listHook = func() {
		close(started)
		<-release
	}
	store.mu.Unlock()

	done := make(chan State)
	go func() { done <- v.Reload(context.Background()) }()
	<-started

	s := v.Create(context.Background(), "C", "C content")
	require.Equal(t, []notestore.Note{c, a}, s.Notes())

	close(release)
	s = <-done
	assert.Equal(t, []notestore.Note{c, a}, s.Notes())
	assert.Equal(t, StatusReady, s.Status())
}

func TestViewDeleteDuringReloadSurvivesListing(t *testing.T) {
	a, b := note("1", "A"), note("2", "B")
	store := &fakeStore{notes: []notestore.Note{a, b}}
	v := New(store, &fakePrompter{answer: true})
	v.Activate(context.Background())

	started := make(chan struct{})
	release := make(chan struct{})
	store.mu.Lock()
	store.listHook = func() {
		close(started)
		<-release
	}
	store.mu.Unlock()

	done := make(chan State)
	go func() { done <- v.Reload(context.Background()) }()
	<-started

	s := v.Delete(context.Background(), b.ID)
	require.Equal(t, []notestore.Note{a}, s.Notes())

	close(release)
	s = <-done
	assert.Equal(t, []notestore.Note{a}, s.Notes())
}
