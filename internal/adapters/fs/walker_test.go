package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/bundle/internal/adapters/fs"
	"go.trai.ch/bundle/internal/core/domain"
)

// writeTree creates files below root from a map of slash paths to contents.
func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), domain.DirPerm))
		require.NoError(t, os.WriteFile(path, []byte(content), domain.FilePerm))
	}
}

func TestWalker_Files(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeTree(t, root, map[string]string{
		".git/config":       "git config",
		"ignored/file":      "ignored content",
		"src/main.cs":       "class Program {}",
		"src/gen/out.tmp":   "tmp",
		"README.md":         "# Readme",
		"node_modules/a.js": "js",
	})

	files, err := fs.NewWalker().Files(root, []string{"ignored", "**/*.tmp", "node_modules/**"})
	require.NoError(t, err)
	assert.Equal(t, []string{"README.md", "src/main.cs"}, files)
}

func TestWalker_WalkFiles_MissingRoot(t *testing.T) {
	t.Parallel()

	_, err := fs.NewWalker().Files(filepath.Join(t.TempDir(), "missing"), nil)
	assert.Error(t, err)
}

func TestWalker_WalkFiles_EarlyStop(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeTree(t, root, map[string]string{"a": "1", "b": "2", "c": "3"})

	count := 0
	for _, err := range fs.NewWalker().WalkFiles(root, nil) {
		require.NoError(t, err)
		count++
		break
	}
	assert.Equal(t, 1, count)
}
