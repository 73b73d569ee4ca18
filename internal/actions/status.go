package actions

import (
	"pushit.dev/pushit/internal/git"
	"pushit.dev/pushit/internal/runtime"
	"pushit.dev/pushit/internal/tui"
)

// StatusInfo describes the state of the work tree and branch
type StatusInfo struct {
	Branch       string
	Remote       string
	HasStaged    bool
	HasUnstaged  bool
	HasUntracked bool
	Ahead        int
}

// GetStatus collects the current work tree state without mutating anything
func GetStatus(rt *runtime.Context) (*StatusInfo, error) {
	branch, err := git.GetCurrentBranch()
	if err != nil {
		return nil, err
	}

	info := &StatusInfo{
		Branch: branch,
		Remote: git.GetRemote(rt.Config.GetRemote()),
	}

	if info.HasStaged, err = git.HasStagedChanges(); err != nil {
		return nil, err
	}
	if info.HasUnstaged, err = git.HasUnstagedChanges(); err != nil {
		return nil, err
	}
	if info.HasUntracked, err = git.HasUntrackedFiles(); err != nil {
		return nil, err
	}
	if info.Ahead, err = git.CommitsAheadOfUpstream(); err != nil {
		return nil, err
	}

	return info, nil
}

// HasPendingChanges reports whether anything would be staged by a save
func (s *StatusInfo) HasPendingChanges() bool {
	return s.HasStaged || s.HasUnstaged || s.HasUntracked
}

// PrintStatus renders the status report
func PrintStatus(rt *runtime.Context) error {
	info, err := GetStatus(rt)
	if err != nil {
		return err
	}

	splog := rt.Splog
	splog.Info("On branch %s", tui.ColorBranchName(info.Branch, rt.Config.IsProtected(info.Branch)))
	splog.Info("Remote: %s", info.Remote)
	splog.Newline()

	switch {
	case !info.HasPendingChanges():
		splog.Info("%s", tui.ColorDim("Working tree clean, nothing to save"))
	default:
		if info.HasStaged {
			splog.Info("  staged changes: %s", tui.ColorGreen("yes"))
		}
		if info.HasUnstaged {
			splog.Info("  unstaged changes: %s", tui.ColorYellow("yes"))
		}
		if info.HasUntracked {
			splog.Info("  untracked files: %s", tui.ColorYellow("yes"))
		}
	}

	if info.Ahead > 0 {
		noun := "commit"
		if info.Ahead != 1 {
			noun = "commits"
		}
		splog.Info("Branch is %d %s ahead of %s", info.Ahead, noun, info.Remote)
	}

	return nil
}
