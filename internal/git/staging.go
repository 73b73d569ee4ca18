package git

import (
	"fmt"
	"strings"
)

// StageAll stages all changes including untracked files
func StageAll() error {
	_, err := RunGitCommand("add", "-A")
	if err != nil {
		return fmt.Errorf("failed to stage all changes: %w", err)
	}
	return nil
}

// HasStagedChanges checks if there are staged changes
func HasStagedChanges() (bool, error) {
	output, err := RunGitCommand("diff", "--cached", "--shortstat")
	if err != nil {
		return false, fmt.Errorf("failed to check staged changes: %w", err)
	}
	return strings.TrimSpace(output) != "", nil
}

// HasUnstagedChanges checks if there are unstaged changes to tracked files
func HasUnstagedChanges() (bool, error) {
	output, err := RunGitCommand("diff", "--name-only")
	if err != nil {
		return false, fmt.Errorf("failed to check unstaged changes: %w", err)
	}
	return strings.TrimSpace(output) != "", nil
}

// HasUntrackedFiles checks if there are untracked files
func HasUntrackedFiles() (bool, error) {
	output, err := RunGitCommand("ls-files", "--others", "--exclude-standard")
	if err != nil {
		return false, fmt.Errorf("failed to check untracked files: %w", err)
	}
	return strings.TrimSpace(output) != "", nil
}

// StagedFiles returns the paths currently staged in the index
func StagedFiles() ([]string, error) {
	lines, err := RunGitCommandLines("diff", "--cached", "--name-only")
	if err != nil {
		return nil, fmt.Errorf("failed to list staged files: %w", err)
	}
	return lines, nil
}
