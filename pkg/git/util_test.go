package git

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	t.Run("no .git entry", func(t *testing.T) {
		kind, err := Classify(t.TempDir())
		require.NoError(t, err)
		require.Equal(t, KindNone, kind)
	})

	t.Run(".git directory", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.Mkdir(filepath.Join(dir, ".git"), 0o755))

		kind, err := Classify(dir)
		require.NoError(t, err)
		require.Equal(t, KindRepo, kind)
	})

	t.Run(".git gitlink file", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".git"), []byte("gitdir: elsewhere\n"), 0o644))

		kind, err := Classify(dir)
		require.NoError(t, err)
		require.Equal(t, KindDeadEnd, kind)
	})

	t.Run(".git symlink is not a repo root", func(t *testing.T) {
		dir := t.TempDir()
		real := filepath.Join(dir, "real-git")
		require.NoError(t, os.Mkdir(real, 0o755))
		require.NoError(t, os.Symlink(real, filepath.Join(dir, ".git")))

		// Lstat sees the symlink itself, not the directory behind it.
		kind, err := Classify(dir)
		require.NoError(t, err)
		require.Equal(t, KindDeadEnd, kind)
	})
}
