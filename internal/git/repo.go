package git

import (
	"fmt"
	"os"

	gogit "github.com/go-git/go-git/v5"

	pushiterrors "pushit.dev/pushit/internal/errors"
)

// GetRepoRoot returns the root directory of the Git repository
func GetRepoRoot() (string, error) {
	wd := defaultRunner.workingDir
	if wd == "" {
		var err error
		wd, err = os.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to get working directory: %w", err)
		}
	}

	// Use go-git to find the repository
	repo, err := gogit.PlainOpenWithOptions(wd, &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return "", pushiterrors.NewNotARepositoryError(wd)
	}

	// Get the worktree to find the root
	worktree, err := repo.Worktree()
	if err != nil {
		// Bare repositories have no work tree to stage into
		return "", pushiterrors.NewNotARepositoryError(wd)
	}

	return worktree.Filesystem.Root(), nil
}

// InitDefaultRepo verifies that the current directory is inside a work tree
func InitDefaultRepo() error {
	_, err := RunGitCommand("rev-parse", "--is-inside-work-tree")
	if err != nil {
		return pushiterrors.ErrNotARepository
	}
	return nil
}
