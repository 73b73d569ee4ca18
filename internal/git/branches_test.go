package git_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"pushit.dev/pushit/internal/git"
	"pushit.dev/pushit/testhelpers"
)

func TestGetCurrentBranch(t *testing.T) {
	t.Run("returns the checked out branch", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)

		branch, err := git.GetCurrentBranch()
		require.NoError(t, err)
		require.Equal(t, "main", branch)

		require.NoError(t, scene.Repo.CreateAndCheckoutBranch("feature"))

		branch, err = git.GetCurrentBranch()
		require.NoError(t, err)
		require.Equal(t, "feature", branch)
	})

	t.Run("fails on a detached HEAD", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)

		sha, err := scene.Repo.RunGitCommandAndGetOutput("rev-parse", "HEAD")
		require.NoError(t, err)
		require.NoError(t, scene.Repo.RunGitCommand("checkout", sha))

		_, err = git.GetCurrentBranch()
		require.Error(t, err)
	})
}

func TestHasCommits(t *testing.T) {
	t.Run("false on a fresh repository", func(t *testing.T) {
		_ = testhelpers.NewScene(t, nil)

		require.False(t, git.HasCommits())
	})

	t.Run("true after the first commit", func(t *testing.T) {
		_ = testhelpers.NewScene(t, testhelpers.BasicSceneSetup)

		require.True(t, git.HasCommits())
	})
}
