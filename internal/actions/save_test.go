package actions_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"pushit.dev/pushit/internal/actions"
	"pushit.dev/pushit/internal/config"
	"pushit.dev/pushit/internal/git"
	"pushit.dev/pushit/internal/runtime"
	"pushit.dev/pushit/internal/tui"
	"pushit.dev/pushit/testhelpers"
)

// newTestContext builds a runtime context for the current scene directory
func newTestContext(t *testing.T) *runtime.Context {
	t.Helper()

	root, err := git.GetRepoRoot()
	require.NoError(t, err)

	cfg, err := config.LoadConfig(root)
	require.NoError(t, err)

	return &runtime.Context{
		Splog:    tui.NewSplog(),
		RepoRoot: root,
		Config:   cfg,
	}
}

func TestSave(t *testing.T) {
	t.Run("pending changes produce exactly one temp commit before pushing", func(t *testing.T) {
		scene := testhelpers.NewSceneWithRemote(t, testhelpers.BasicSceneSetup)
		rt := newTestContext(t)

		require.NoError(t, scene.Repo.CreateChange("dirty", "work", true))
		require.NoError(t, scene.Repo.CreateChange("untracked", "extra", true))

		result, err := actions.Save(t.Context(), rt, actions.SaveOptions{})
		require.NoError(t, err)
		require.True(t, result.Committed)
		require.True(t, result.Pushed)
		require.Equal(t, "main", result.Branch)

		subject, err := scene.Repo.HeadSubject()
		require.NoError(t, err)
		require.Equal(t, "temp commit", subject)

		count, err := scene.Repo.CommitCount()
		require.NoError(t, err)
		require.Equal(t, 2, count)

		remoteCount, err := scene.Repo.RemoteCommitCount("main")
		require.NoError(t, err)
		require.Equal(t, 2, remoteCount)
	})

	t.Run("clean tree skips the commit but still pushes", func(t *testing.T) {
		scene := testhelpers.NewSceneWithRemote(t, testhelpers.BasicSceneSetup)
		rt := newTestContext(t)

		result, err := actions.Save(t.Context(), rt, actions.SaveOptions{})
		require.NoError(t, err)
		require.False(t, result.Committed)
		require.True(t, result.Pushed)

		count, err := scene.Repo.CommitCount()
		require.NoError(t, err)
		require.Equal(t, 1, count)

		subject, err := scene.Repo.RemoteHeadSubject("main")
		require.NoError(t, err)
		require.Equal(t, "initial", subject)
	})

	t.Run("push failure propagates after the commit is created", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		rt := newTestContext(t)

		require.NoError(t, scene.Repo.CreateChange("dirty", "work", true))

		_, err := actions.Save(t.Context(), rt, actions.SaveOptions{})
		require.Error(t, err)

		// The commit landed even though the push failed
		subject, err := scene.Repo.HeadSubject()
		require.NoError(t, err)
		require.Equal(t, "temp commit", subject)
	})

	t.Run("message flag overrides the default", func(t *testing.T) {
		scene := testhelpers.NewSceneWithRemote(t, testhelpers.BasicSceneSetup)
		rt := newTestContext(t)

		require.NoError(t, scene.Repo.CreateChange("dirty", "work", true))

		result, err := actions.Save(t.Context(), rt, actions.SaveOptions{Message: "checkpoint before refactor"})
		require.NoError(t, err)
		require.True(t, result.Committed)

		subject, err := scene.Repo.HeadSubject()
		require.NoError(t, err)
		require.Equal(t, "checkpoint before refactor", subject)
	})

	t.Run("configured message is used when no flag is given", func(t *testing.T) {
		scene := testhelpers.NewSceneWithRemote(t, testhelpers.BasicSceneSetup)
		rt := newTestContext(t)

		require.NoError(t, rt.Config.Set("message", "wip"))
		require.NoError(t, scene.Repo.CreateChange("dirty", "work", true))

		_, err := actions.Save(t.Context(), rt, actions.SaveOptions{})
		require.NoError(t, err)

		subject, err := scene.Repo.HeadSubject()
		require.NoError(t, err)
		require.Equal(t, "wip", subject)
	})

	t.Run("no-push commits locally only", func(t *testing.T) {
		scene := testhelpers.NewSceneWithRemote(t, testhelpers.BasicSceneSetup)
		rt := newTestContext(t)

		require.NoError(t, scene.Repo.CreateChange("dirty", "work", true))

		result, err := actions.Save(t.Context(), rt, actions.SaveOptions{NoPush: true})
		require.NoError(t, err)
		require.True(t, result.Committed)
		require.False(t, result.Pushed)

		_, err = scene.Repo.RemoteHeadSubject("main")
		require.Error(t, err) // nothing was ever pushed
	})

	t.Run("dry run mutates nothing", func(t *testing.T) {
		scene := testhelpers.NewSceneWithRemote(t, testhelpers.BasicSceneSetup)
		rt := newTestContext(t)

		require.NoError(t, scene.Repo.CreateChange("dirty", "work", true))

		result, err := actions.Save(t.Context(), rt, actions.SaveOptions{DryRun: true})
		require.NoError(t, err)
		require.False(t, result.Committed)
		require.False(t, result.Pushed)

		count, err := scene.Repo.CommitCount()
		require.NoError(t, err)
		require.Equal(t, 1, count)

		hasUntracked, err := git.HasUntrackedFiles()
		require.NoError(t, err)
		require.True(t, hasUntracked)
	})

	t.Run("reports the open pull request after pushing", func(t *testing.T) {
		scene := testhelpers.NewSceneWithRemote(t, testhelpers.BasicSceneSetup)
		rt := newTestContext(t)

		mock := testhelpers.NewMockGitHubClient()
		mock.PRsByBranch["main"] = &git.PullRequestInfo{
			Number:  7,
			HTMLURL: "https://github.com/testowner/testrepo/pull/7",
		}
		rt.GitHubClient = mock

		require.NoError(t, scene.Repo.CreateChange("dirty", "work", true))

		result, err := actions.Save(t.Context(), rt, actions.SaveOptions{})
		require.NoError(t, err)
		require.True(t, result.Pushed)
		require.Equal(t, "https://github.com/testowner/testrepo/pull/7", result.PRURL)
		require.Equal(t, []string{"main"}, mock.Lookups)
	})

	t.Run("non-GitHub remotes skip the pull request report", func(t *testing.T) {
		scene := testhelpers.NewSceneWithRemote(t, testhelpers.BasicSceneSetup)
		rt := newTestContext(t)

		require.NoError(t, scene.Repo.CreateChange("dirty", "work", true))

		// origin is a local bare repository, so client construction fails
		// before any token lookup and the save itself is unaffected
		result, err := actions.Save(t.Context(), rt, actions.SaveOptions{})
		require.NoError(t, err)
		require.True(t, result.Pushed)
		require.Empty(t, result.PRURL)
	})

	t.Run("pull request lookup failures are not fatal", func(t *testing.T) {
		scene := testhelpers.NewSceneWithRemote(t, testhelpers.BasicSceneSetup)
		rt := newTestContext(t)

		mock := testhelpers.NewMockGitHubClient()
		mock.Err = errors.New("api unavailable")
		rt.GitHubClient = mock

		require.NoError(t, scene.Repo.CreateChange("dirty", "work", true))

		result, err := actions.Save(t.Context(), rt, actions.SaveOptions{})
		require.NoError(t, err)
		require.True(t, result.Pushed)
		require.Empty(t, result.PRURL)
	})
}
