package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cook/internal/adapters/fs"
)

func TestWalker_WalkFiles(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, "Maps"), 0o750))
	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, ".git"), 0o750))
	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, ".cook"), 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "Rock.uasset"), []byte("a"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "Maps", "Arena.UMAP"), []byte("b"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "notes.txt"), []byte("c"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, ".git", "config"), []byte("d"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, ".cook", "Cached.uasset"), []byte("e"), 0o600))

	walker := fs.NewWalker()

	t.Run("all files", func(t *testing.T) {
		t.Parallel()
		var files []string
		for f := range walker.WalkFiles(tmpDir) {
			files = append(files, f)
		}
		assert.ElementsMatch(t, []string{
			filepath.Join(tmpDir, "Rock.uasset"),
			filepath.Join(tmpDir, "Maps", "Arena.UMAP"),
			filepath.Join(tmpDir, "notes.txt"),
		}, files)
	})

	t.Run("extension filter", func(t *testing.T) {
		t.Parallel()
		var files []string
		for f := range walker.WalkFiles(tmpDir, ".uasset", ".umap") {
			files = append(files, f)
		}
		assert.ElementsMatch(t, []string{
			filepath.Join(tmpDir, "Rock.uasset"),
			filepath.Join(tmpDir, "Maps", "Arena.UMAP"),
		}, files)
	})

	t.Run("early stop", func(t *testing.T) {
		t.Parallel()
		n := 0
		for range walker.WalkFiles(tmpDir) {
			n++
			break
		}
		assert.Equal(t, 1, n)
	})
}

func TestWalker_MissingRoot(t *testing.T) {
	t.Parallel()

	walker := fs.NewWalker()
	for f := range walker.WalkFiles(filepath.Join(t.TempDir(), "missing")) {
		t.Fatalf("unexpected file %s", f)
	}
}
