package code

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithDetailsDoesNotMutateRegisteredCode(t *testing.T) {
	c := ErrorInvalidParams.WithDetails("title is required")

	assert.Equal(t, []string{"title is required"}, c.Details())
	assert.False(t, ErrorInvalidParams.HaveDetails())
	assert.Empty(t, ErrorInvalidParams.Details())
}

func TestIsMatchesClones(t *testing.T) {
	var err error = ErrorNoteNotFound.WithDetails("id=3")

	assert.True(t, errors.Is(err, ErrorNoteNotFound))
	assert.False(t, errors.Is(err, ErrorNoteDelete))
}

func TestStatusCode(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, ErrorNoteNotFound.StatusCode())
	assert.Equal(t, http.StatusCreated, Created.StatusCode())
	// view messages carry no HTTP status
	assert.Equal(t, http.StatusOK, ErrorLoadNotes.StatusCode())
}

func TestMessageLanguageFallback(t *testing.T) {
	assert.Equal(t, "Failed to add note. Please try again.", ErrorAddNote.MsgIn("en"))
	assert.Equal(t, "添加笔记失败，请重试。", ErrorAddNote.MsgIn("zh_cn"))
	assert.Equal(t, "Failed to add note. Please try again.", ErrorAddNote.MsgIn("fr"))
}

func TestSetGlobalDefaultLang(t *testing.T) {
	t.Cleanup(func() { _ = SetGlobalDefaultLang(FALLBACK_LNG) })

	assert.NoError(t, SetGlobalDefaultLang("zh_cn"))
	assert.Equal(t, "笔记不存在！", ErrorNoteNotFound.Msg())

	assert.Error(t, SetGlobalDefaultLang("klingon"))
	assert.Equal(t, "Note not found!", ErrorNoteNotFound.Msg())
}
