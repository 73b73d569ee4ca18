package git_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"pushit.dev/pushit/internal/git"
	"pushit.dev/pushit/testhelpers"
)

func TestPush(t *testing.T) {
	t.Run("pushes the branch and sets the upstream", func(t *testing.T) {
		scene := testhelpers.NewSceneWithRemote(t, testhelpers.BasicSceneSetup)

		err := git.Push(t.Context(), "origin", "main")
		require.NoError(t, err)

		subject, err := scene.Repo.RemoteHeadSubject("main")
		require.NoError(t, err)
		require.Equal(t, "initial", subject)

		// Upstream is set, so ahead counting works from now on
		ahead, err := git.CommitsAheadOfUpstream()
		require.NoError(t, err)
		require.Equal(t, 0, ahead)
	})

	t.Run("pushes subsequent commits", func(t *testing.T) {
		scene := testhelpers.NewSceneWithRemote(t, testhelpers.BasicSceneSetup)

		err := git.Push(t.Context(), "origin", "main")
		require.NoError(t, err)

		err = scene.Repo.CreateChangeAndCommit("second", "second")
		require.NoError(t, err)

		err = git.Push(t.Context(), "origin", "main")
		require.NoError(t, err)

		count, err := scene.Repo.RemoteCommitCount("main")
		require.NoError(t, err)
		require.Equal(t, 2, count)
	})

	t.Run("fails when the remote does not exist", func(t *testing.T) {
		_ = testhelpers.NewScene(t, testhelpers.BasicSceneSetup)

		err := git.Push(t.Context(), "origin", "main")
		require.Error(t, err)
	})
}
