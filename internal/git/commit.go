package git

import (
	"fmt"
	"strconv"
)

// Commit creates a commit with the given message. The message is passed
// with -m so the editor is never opened.
func Commit(message string) error {
	_, err := RunGitCommand("commit", "-m", message)
	if err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}

// GetHeadSubject returns the subject line of the HEAD commit
func GetHeadSubject() (string, error) {
	subject, err := RunGitCommand("log", "-1", "--pretty=%s")
	if err != nil {
		return "", fmt.Errorf("failed to read HEAD subject: %w", err)
	}
	return subject, nil
}

// CountCommits returns the number of commits reachable from HEAD
func CountCommits() (int, error) {
	output, err := RunGitCommand("rev-list", "--count", "HEAD")
	if err != nil {
		return 0, fmt.Errorf("failed to count commits: %w", err)
	}
	count, err := strconv.Atoi(output)
	if err != nil {
		return 0, fmt.Errorf("unexpected rev-list output %q: %w", output, err)
	}
	return count, nil
}

// CommitsAheadOfUpstream returns how many commits the current branch is
// ahead of its upstream. Returns 0 with no error when no upstream is set.
func CommitsAheadOfUpstream() (int, error) {
	if _, err := RunGitCommand("rev-parse", "--abbrev-ref", "@{upstream}"); err != nil {
		// No upstream configured yet; the first push will set one
		return 0, nil
	}
	output, err := RunGitCommand("rev-list", "--count", "@{upstream}..HEAD")
	if err != nil {
		return 0, fmt.Errorf("failed to count commits ahead of upstream: %w", err)
	}
	count, err := strconv.Atoi(output)
	if err != nil {
		return 0, fmt.Errorf("unexpected rev-list output %q: %w", output, err)
	}
	return count, nil
}
