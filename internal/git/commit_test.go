package git_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"pushit.dev/pushit/internal/git"
	"pushit.dev/pushit/testhelpers"
)

func TestCommit(t *testing.T) {
	t.Run("creates a commit with the given message", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)

		err := scene.Repo.CreateChange("change", "test", false)
		require.NoError(t, err)

		err = git.Commit("temp commit")
		require.NoError(t, err)

		subject, err := git.GetHeadSubject()
		require.NoError(t, err)
		require.Equal(t, "temp commit", subject)

		count, err := git.CountCommits()
		require.NoError(t, err)
		require.Equal(t, 2, count)
	})

	t.Run("fails when nothing is staged", func(t *testing.T) {
		_ = testhelpers.NewScene(t, testhelpers.BasicSceneSetup)

		err := git.Commit("temp commit")
		require.Error(t, err)
	})
}

func TestCommitsAheadOfUpstream(t *testing.T) {
	t.Run("returns zero when no upstream is set", func(t *testing.T) {
		_ = testhelpers.NewScene(t, testhelpers.BasicSceneSetup)

		ahead, err := git.CommitsAheadOfUpstream()
		require.NoError(t, err)
		require.Equal(t, 0, ahead)
	})

	t.Run("treats a missing remote-tracking ref as no upstream", func(t *testing.T) {
		scene := testhelpers.NewSceneWithRemote(t, testhelpers.BasicSceneSetup)

		err := git.Push(t.Context(), "origin", "main")
		require.NoError(t, err)

		// Drop the remote-tracking ref; upstream resolution fails again
		err = scene.Repo.RunGitCommand("update-ref", "-d", "refs/remotes/origin/main")
		require.NoError(t, err)

		ahead, err := git.CommitsAheadOfUpstream()
		require.NoError(t, err)
		require.Equal(t, 0, ahead)
	})

	t.Run("counts local commits after a push", func(t *testing.T) {
		scene := testhelpers.NewSceneWithRemote(t, testhelpers.BasicSceneSetup)

		err := git.Push(t.Context(), "origin", "main")
		require.NoError(t, err)

		ahead, err := git.CommitsAheadOfUpstream()
		require.NoError(t, err)
		require.Equal(t, 0, ahead)

		err = scene.Repo.CreateChangeAndCommit("second", "second")
		require.NoError(t, err)

		ahead, err = git.CommitsAheadOfUpstream()
		require.NoError(t, err)
		require.Equal(t, 1, ahead)
	})
}
