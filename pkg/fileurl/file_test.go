package fileurl

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePathAndIsExist(t *testing.T) {
	dir := t.TempDir()
	dst := filepath.Join(dir, "storage", "db", "notes.db")

	assert.False(t, IsExist(filepath.Dir(dst)))
	require.NoError(t, CreatePath(dst, os.ModePerm))
	assert.True(t, IsExist(filepath.Dir(dst)))
}

func TestResolvePath(t *testing.T) {
	root := t.TempDir()
	assert.Equal(t, filepath.Join(root, "storage/notes.db"), ResolvePath("storage/notes.db", root))
	assert.Equal(t, ":memory:", ResolvePath(":memory:", root))

	abs := filepath.Join(root, "abs.db")
	assert.Equal(t, abs, ResolvePath(abs, "/elsewhere"))
	assert.Equal(t, "", ResolvePath("", root))
}
