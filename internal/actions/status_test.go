package actions_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"pushit.dev/pushit/internal/actions"
	"pushit.dev/pushit/testhelpers"
)

func TestGetStatus(t *testing.T) {
	t.Run("clean tree has no pending changes", func(t *testing.T) {
		_ = testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		rt := newTestContext(t)

		info, err := actions.GetStatus(rt)
		require.NoError(t, err)
		require.Equal(t, "main", info.Branch)
		require.Equal(t, "origin", info.Remote)
		require.False(t, info.HasPendingChanges())
		require.Zero(t, info.Ahead)
	})

	t.Run("detects unstaged and untracked changes", func(t *testing.T) {
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			return s.Repo.CreateChangeAndCommit("initial", "tracked")
		})
		rt := newTestContext(t)

		require.NoError(t, scene.Repo.CreateChange("modified", "tracked", true))
		require.NoError(t, scene.Repo.CreateChange("new", "other", true))

		info, err := actions.GetStatus(rt)
		require.NoError(t, err)
		require.True(t, info.HasUnstaged)
		require.True(t, info.HasUntracked)
		require.False(t, info.HasStaged)
		require.True(t, info.HasPendingChanges())
	})

	t.Run("counts commits ahead of upstream", func(t *testing.T) {
		scene := testhelpers.NewSceneWithRemote(t, testhelpers.BasicSceneSetup)
		rt := newTestContext(t)

		_, err := actions.Save(t.Context(), rt, actions.SaveOptions{})
		require.NoError(t, err)

		require.NoError(t, scene.Repo.CreateChangeAndCommit("second", "second"))

		info, err := actions.GetStatus(rt)
		require.NoError(t, err)
		require.Equal(t, 1, info.Ahead)
	})
}

func TestPrintStatus(t *testing.T) {
	t.Run("runs without error on a fresh scene", func(t *testing.T) {
		_ = testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		rt := newTestContext(t)

		require.NoError(t, actions.PrintStatus(rt))
	})
}
