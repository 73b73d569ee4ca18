package git_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	pushiterrors "pushit.dev/pushit/internal/errors"
	"pushit.dev/pushit/internal/git"
	"pushit.dev/pushit/testhelpers"
)

func TestGetRepoRoot(t *testing.T) {
	t.Run("returns the repository root", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)

		root, err := git.GetRepoRoot()
		require.NoError(t, err)
		require.Equal(t, mustEvalSymlinks(t, scene.Dir), mustEvalSymlinks(t, root))
	})

	t.Run("finds the root from a subdirectory", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)

		subdir := filepath.Join(scene.Dir, "nested", "dir")
		require.NoError(t, os.MkdirAll(subdir, 0750))
		require.NoError(t, os.Chdir(subdir))

		root, err := git.GetRepoRoot()
		require.NoError(t, err)
		require.Equal(t, mustEvalSymlinks(t, scene.Dir), mustEvalSymlinks(t, root))
	})

	t.Run("fails outside a working tree", func(t *testing.T) {
		chdirTemp(t)

		_, err := git.GetRepoRoot()
		require.Error(t, err)
		require.ErrorIs(t, err, pushiterrors.ErrNotARepository)
	})
}

func TestInitDefaultRepo(t *testing.T) {
	t.Run("succeeds inside a working tree", func(t *testing.T) {
		_ = testhelpers.NewScene(t, testhelpers.BasicSceneSetup)

		require.NoError(t, git.InitDefaultRepo())
	})

	t.Run("fails outside a working tree", func(t *testing.T) {
		chdirTemp(t)

		err := git.InitDefaultRepo()
		require.ErrorIs(t, err, pushiterrors.ErrNotARepository)
	})
}

// chdirTemp moves the test into a directory that is not a git repository
func chdirTemp(t *testing.T) {
	t.Helper()

	oldDir, err := os.Getwd()
	require.NoError(t, err)

	tmpDir, err := os.MkdirTemp("", "pushit-norepo-*")
	require.NoError(t, err)

	require.NoError(t, os.Chdir(tmpDir))
	t.Cleanup(func() {
		os.Chdir(oldDir)
		os.RemoveAll(tmpDir)
	})
}

// mustEvalSymlinks resolves symlinks so paths compare cleanly on macOS tmpdirs
func mustEvalSymlinks(t *testing.T, path string) string {
	t.Helper()

	resolved, err := filepath.EvalSymlinks(path)
	require.NoError(t, err)
	return resolved
}
