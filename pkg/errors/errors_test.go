package errors

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/haierkeys/quicknote/pkg/code"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(err error) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Set(traceIDKey, "trace-1")
	ErrorResponse(c, err)
	return w
}

func TestErrorResponseUsesCodeStatus(t *testing.T) {
	w := run(fmt.Errorf("delete: %w", code.ErrorNoteNotFound))

	assert.Equal(t, http.StatusNotFound, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Note not found!", body["message"])
	assert.Equal(t, "trace-1", body["traceId"])
}

func TestErrorResponseUnknownError(t *testing.T) {
	w := run(fmt.Errorf("boom"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Internal Server Error")
}

func TestGetAppError(t *testing.T) {
	appErr := NewAppError(code.ErrorNoteCreate, fmt.Errorf("disk full"))
	wrapped := fmt.Errorf("create: %w", appErr)

	assert.Same(t, appErr, GetAppError(wrapped))
	assert.Nil(t, GetAppError(fmt.Errorf("plain")))
	assert.EqualError(t, appErr.Unwrap(), "disk full")
}

func TestErrorResponseUsesRequestLanguage(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodDelete, "/notes/9", nil)
	c.Set("lang", "zh_cn")

	ErrorResponse(c, code.ErrorNoteNotFound)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "笔记不存在！", body["message"])
}
