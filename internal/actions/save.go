package actions

import (
	"context"

	"pushit.dev/pushit/internal/git"
	"pushit.dev/pushit/internal/runtime"
	"pushit.dev/pushit/internal/tui"
)

// SaveOptions contains options for the save workflow
type SaveOptions struct {
	Message   string // overrides the configured commit message
	NoPush    bool
	DryRun    bool
	AssumeYes bool
}

// SaveResult reports what a save run did
type SaveResult struct {
	Branch    string
	Remote    string
	Message   string
	Committed bool
	Pushed    bool
	PRURL     string
}

// Save stages all changes, commits them when anything is staged, and
// pushes the current branch. The commit step is skipped when the index
// stays empty after staging; the push still runs so local-only commits
// from earlier runs reach the remote.
func Save(ctx context.Context, rt *runtime.Context, opts SaveOptions) (*SaveResult, error) {
	splog := rt.Splog

	branch, err := git.GetCurrentBranch()
	if err != nil {
		return nil, err
	}

	result := &SaveResult{
		Branch:  branch,
		Remote:  git.GetRemote(rt.Config.GetRemote()),
		Message: resolveMessage(rt, opts),
	}

	if opts.DryRun {
		return result, dryRun(rt, result)
	}

	if err := git.StageAll(); err != nil {
		return nil, err
	}

	staged, err := git.HasStagedChanges()
	if err != nil {
		return nil, err
	}

	if staged {
		if err := git.Commit(result.Message); err != nil {
			return nil, err
		}
		result.Committed = true
		splog.Info("Committed staged changes as %q", result.Message)
	} else {
		splog.Info("Nothing staged, skipping commit")
	}

	if opts.NoPush || rt.Config.GetNoPush() {
		splog.Info("Push skipped")
		if !opts.NoPush {
			splog.Tip("noPush is set in the repo config; run pushit config set noPush false to push again")
		}
		return result, nil
	}

	if rt.Config.IsProtected(branch) && !opts.AssumeYes && tui.IsInteractive() {
		ahead, err := git.CommitsAheadOfUpstream()
		if err != nil {
			return nil, err
		}
		if ahead == 0 && result.Committed {
			// First push of a branch with no upstream yet
			ahead = 1
		}
		confirmed, err := tui.ConfirmPush(branch, result.Remote, ahead)
		if err != nil {
			return nil, err
		}
		if !confirmed {
			splog.Info("Push declined")
			return result, nil
		}
	}

	if err := git.Push(ctx, result.Remote, branch); err != nil {
		return nil, err
	}
	result.Pushed = true
	splog.Info("Pushed %s to %s", tui.ColorBranchName(branch, rt.Config.IsProtected(branch)), result.Remote)

	reportPullRequest(ctx, rt, result)

	return result, nil
}

// dryRun reports what a save would do without touching the index
func dryRun(rt *runtime.Context, result *SaveResult) error {
	splog := rt.Splog

	info, err := GetStatus(rt)
	if err != nil {
		return err
	}

	splog.Info("Dry run, nothing will be modified")
	if info.HasPendingChanges() {
		splog.Info("Would stage all changes and commit as %q", result.Message)
	} else {
		splog.Info("Nothing to stage, would skip the commit")
	}
	splog.Info("Would push %s to %s", result.Branch, result.Remote)

	return nil
}

// reportPullRequest prints the open PR for the pushed branch when GitHub
// integration is available. Never fatal: the push already succeeded.
func reportPullRequest(ctx context.Context, rt *runtime.Context, result *SaveResult) {
	client := rt.GitHubClient
	if client == nil {
		// Construction fails for non-GitHub remotes and when neither
		// GITHUB_TOKEN nor the gh CLI can produce a token.
		real, err := git.NewRealGitHubClient(ctx, result.Remote)
		if err != nil {
			rt.Splog.Debug("GitHub integration unavailable: %v", err)
			return
		}
		client = real
	}

	pr, err := client.GetPullRequestByBranch(ctx, result.Branch)
	if err != nil {
		rt.Splog.Debug("failed to look up pull request: %v", err)
		return
	}
	if pr == nil {
		return
	}

	result.PRURL = pr.HTMLURL
	rt.Splog.Info("Open pull request: %s", tui.ColorCyan(pr.HTMLURL))
}

// resolveMessage picks the commit message: flag, then config, then default
func resolveMessage(rt *runtime.Context, opts SaveOptions) string {
	if opts.Message != "" {
		return opts.Message
	}
	return rt.Config.GetMessage()
}
