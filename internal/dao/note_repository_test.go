package dao

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/haierkeys/quicknote/internal/domain"

	"github.com/jinzhu/copier"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRepo(t *testing.T) domain.NoteRepository {
	t.Helper()
	cfg := DatabaseConfig{
		Type:         "sqlite",
		Path:         filepath.Join(t.TempDir(), "db", "notes.sqlite3"),
		AutoMigrate:  true,
		MaxIdleConns: 1,
		MaxOpenConns: 1,
	}
	db, err := NewDBEngineWithConfig(cfg, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return NewNoteRepository(New(db, context.Background(), WithConfig(&cfg), WithLogger(zap.NewNop())))
}

func TestNoteRepository_CreateAssignsIDAndTime(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	before := time.Now().UTC().Add(-time.Second)
	created, err := repo.Create(ctx, &domain.Note{ID: 99, Title: "Groceries", Content: "milk"})
	require.NoError(t, err)

	assert.NotZero(t, created.ID)
	assert.NotEqual(t, int64(99), created.ID, "store assigns the id")
	assert.Equal(t, "Groceries", created.Title)
	assert.Equal(t, "milk", created.Content)
	assert.True(t, created.CreatedAt.After(before))

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Title, got.Title)
}

func TestNoteRepository_ListNewestFirst(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	base := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	for i, title := range []string{"first", "second", "third"} {
		_, err := repo.Create(ctx, &domain.Note{Title: title, Content: "c", CreatedAt: base.Add(time.Duration(i) * time.Hour)})
		require.NoError(t, err)
	}

	notes, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, notes, 3)
	assert.Equal(t, "third", notes[0].Title)
	assert.Equal(t, "second", notes[1].Title)
	assert.Equal(t, "first", notes[2].Title)
	assert.True(t, notes[2].CreatedAt.Equal(base))
}

func TestNoteRepository_Delete(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	n, err := repo.Create(ctx, &domain.Note{Title: "t", Content: "c"})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, n.ID))
	assert.ErrorIs(t, repo.Delete(ctx, n.ID), domain.ErrNoteNotFound)

	_, err = repo.GetByID(ctx, n.ID)
	assert.ErrorIs(t, err, domain.ErrNoteNotFound)

	notes, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, notes)
}

func TestUseDialectorRejectsUnknownType(t *testing.T) {
	_, err := NewDBEngineWithConfig(DatabaseConfig{Type: "oracle"}, nil)
	assert.Error(t, err)
}

func TestNoteRepository_ConversionErrorsAreReturned(t *testing.T) {
	r := &noteRepository{}
	_, err := r.toModel(nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, copier.ErrInvalidCopyFrom)
	assert.Contains(t, err.Error(), "convert note")

	repo := newTestRepo(t)
	_, err = repo.Create(context.Background(), nil)
	assert.ErrorIs(t, err, copier.ErrInvalidCopyFrom)
}
