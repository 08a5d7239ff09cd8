package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/haierkeys/quicknote/internal/domain"
	"github.com/haierkeys/quicknote/internal/dto"
	"github.com/haierkeys/quicknote/pkg/code"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeNoteRepo 内存实现，用于服务层测试
type fakeNoteRepo struct {
	mu        sync.Mutex
	notes     []*domain.Note
	nextID    int64
	listCalls atomic.Int32
	listGate  chan struct{}
	getCalls  int
	err       error
}

func (f *fakeNoteRepo) List(ctx context.Context) ([]*domain.Note, error) {
	f.listCalls.Add(1)
	if f.listGate != nil {
		<-f.listGate
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return append([]*domain.Note(nil), f.notes...), nil
}

func (f *fakeNoteRepo) Create(ctx context.Context, note *domain.Note) (*domain.Note, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	f.nextID++
	n := &domain.Note{ID: f.nextID, Title: note.Title, Content: note.Content, CreatedAt: time.Now().UTC()}
	f.notes = append([]*domain.Note{n}, f.notes...)
	return n, nil
}

func (f *fakeNoteRepo) GetByID(ctx context.Context, id int64) (*domain.Note, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.getCalls++
	if f.err != nil {
		return nil, f.err
	}
	for _, n := range f.notes {
		if n.ID == id {
			return n, nil
		}
	}
	return nil, domain.ErrNoteNotFound
}

func (f *fakeNoteRepo) Delete(ctx context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	for i, n := range f.notes {
		if n.ID == id {
			f.notes = append(f.notes[:i], f.notes[i+1:]...)
			return nil
		}
	}
	return domain.ErrNoteNotFound
}

func TestNoteService_CreateValidation(t *testing.T) {
	repo := &fakeNoteRepo{}
	svc := NewNoteService(repo, nil, nil)
	ctx := context.Background()

	cases := []*dto.NoteCreateRequest{
		nil,
		{Title: "", Content: "c"},
		{Title: "   ", Content: "c"},
		{Title: "t", Content: "\n\t"},
		{Title: strings.Repeat("a", 101), Content: "c"},
	}
	for _, params := range cases {
		_, err := svc.Create(ctx, params)
		require.Error(t, err)
		assert.ErrorIs(t, err, code.ErrorInvalidParams)
	}
	assert.Empty(t, repo.notes)

	n, err := svc.Create(ctx, &dto.NoteCreateRequest{Title: strings.Repeat("标", 100), Content: "c"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n.ID)
}

func TestNoteService_ListAndDelete(t *testing.T) {
	repo := &fakeNoteRepo{}
	svc := NewNoteService(repo, nil, nil)
	ctx := context.Background()

	a, err := svc.Create(ctx, &dto.NoteCreateRequest{Title: "A", Content: "a"})
	require.NoError(t, err)
	b, err := svc.Create(ctx, &dto.NoteCreateRequest{Title: "B", Content: "b"})
	require.NoError(t, err)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, b.ID, list[0].ID)
	assert.Equal(t, a.ID, list[1].ID)

	require.NoError(t, svc.Delete(ctx, a.ID))
	err = svc.Delete(ctx, a.ID)
	assert.ErrorIs(t, err, code.ErrorNoteNotFound)

	var c *code.Code
	require.True(t, errors.As(err, &c))
	assert.Equal(t, 404, c.StatusCode())
}

func TestNoteService_RepoFailuresMapToCodes(t *testing.T) {
	repo := &fakeNoteRepo{err: errors.New("disk full")}
	svc := NewNoteService(repo, nil, nil)
	ctx := context.Background()

	_, err := svc.List(ctx)
	assert.ErrorIs(t, err, code.ErrorNoteList)

	_, err = svc.Create(ctx, &dto.NoteCreateRequest{Title: "t", Content: "c"})
	assert.ErrorIs(t, err, code.ErrorNoteCreate)

	err = svc.Delete(ctx, 1)
	assert.ErrorIs(t, err, code.ErrorNoteDelete)
	var c *code.Code
	require.True(t, errors.As(err, &c))
	assert.Equal(t, []string{"disk full"}, c.Details())
}

func TestNoteService_ListSingleflight(t *testing.T) {
	repo := &fakeNoteRepo{listGate: make(chan struct{})}
	svc := NewNoteService(repo, nil, nil)

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.List(context.Background())
			assert.NoError(t, err)
		}()
	}

	// 等待第一个请求进入仓储层后放行
	require.Eventually(t, func() bool { return repo.listCalls.Load() >= 1 }, time.Second, time.Millisecond)
	time.Sleep(20 * time.Millisecond)
	close(repo.listGate)
	wg.Wait()

	assert.Less(t, repo.listCalls.Load(), int32(5))
}

func TestNoteService_DeleteChecksExistenceFirst(t *testing.T) {
	repo := &fakeNoteRepo{}
	svc := NewNoteService(repo, nil, nil)
	ctx := context.Background()

	err := svc.Delete(ctx, 42)
	assert.ErrorIs(t, err, code.ErrorNoteNotFound)
	assert.Equal(t, 1, repo.getCalls)

	n, err := svc.Create(ctx, &dto.NoteCreateRequest{Title: "A", Content: "a"})
	require.NoError(t, err)
	require.NoError(t, svc.Delete(ctx, n.ID))
	assert.Equal(t, 2, repo.getCalls)
}

func TestNoteService_ListCallerCancelDoesNotFailOthers(t *testing.T) {
	repo := &fakeNoteRepo{listGate: make(chan struct{})}
	svc := NewNoteService(repo, nil, nil)

	first, cancel := context.WithCancel(context.Background())
	firstErr := make(chan error, 1)
	go func() {
		_, err := svc.List(first)
		firstErr <- err
	}()
	require.Eventually(t, func() bool { return repo.listCalls.Load() >= 1 }, time.Second, time.Millisecond)

	secondErr := make(chan error, 1)
	go func() {
		_, err := svc.List(context.Background())
		secondErr <- err
	}()
	time.Sleep(20 * time.Millisecond)

	cancel()
	assert.ErrorIs(t, <-firstErr, code.ErrorNoteList)

	close(repo.listGate)
	assert.NoError(t, <-secondErr)
	assert.Equal(t, int32(1), repo.listCalls.Load())
}

func TestNoteService_WriteStartsFreshListing(t *testing.T) {
	repo := &fakeNoteRepo{listGate: make(chan struct{})}
	svc := NewNoteService(repo, nil, nil)
	ctx := context.Background()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, err := svc.List(ctx)
		assert.NoError(t, err)
	}()
	require.Eventually(t, func() bool { return repo.listCalls.Load() == 1 }, time.Second, time.Millisecond)

	_, err := svc.Create(ctx, &dto.NoteCreateRequest{Title: "A", Content: "a"})
	require.NoError(t, err)

	// a listing requested after the write must not join the earlier one
	wg.Add(1)
	go func() {
		defer wg.Done()
		list, err := svc.List(ctx)
		assert.NoError(t, err)
		assert.Len(t, list, 1)
	}()
	require.Eventually(t, func() bool { return repo.listCalls.Load() == 2 }, time.Second, time.Millisecond)

	close(repo.listGate)
	wg.Wait()
}
