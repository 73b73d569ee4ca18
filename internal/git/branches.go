package git

import (
	pushiterrors "pushit.dev/pushit/internal/errors"
)

// GetCurrentBranch returns the name of the branch HEAD is on
func GetCurrentBranch() (string, error) {
	branch, err := RunGitCommand("symbolic-ref", "--short", "HEAD")
	if err != nil {
		return "", pushiterrors.ErrDetachedHead
	}
	return branch, nil
}

// HasCommits reports whether HEAD resolves to a commit.
// A freshly initialized repository has no commits and nothing to push.
func HasCommits() bool {
	_, err := RunGitCommand("rev-parse", "--verify", "HEAD")
	return err == nil
}
