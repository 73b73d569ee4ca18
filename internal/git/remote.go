package git

import (
	"fmt"
	"strings"

	pushiterrors "pushit.dev/pushit/internal/errors"
)

// GetRemote returns the remote for the current branch, falling back to
// the requested default (usually "origin") when no branch remote is set
func GetRemote(fallback string) string {
	branch, err := GetCurrentBranch()
	if err == nil {
		remote, err := RunGitCommand("config", "--get", fmt.Sprintf("branch.%s.remote", branch))
		if err == nil && remote != "" {
			return remote
		}
	}
	return fallback
}

// HasRemote reports whether the named remote exists
func HasRemote(remote string) bool {
	remotes, err := RunGitCommandLines("remote")
	if err != nil {
		return false
	}
	for _, r := range remotes {
		if r == remote {
			return true
		}
	}
	return false
}

// GetRemoteURL returns the configured URL for a remote
func GetRemoteURL(remote string) (string, error) {
	url, err := RunGitCommand("config", "--get", fmt.Sprintf("remote.%s.url", remote))
	if err != nil || url == "" {
		return "", pushiterrors.ErrNoRemote
	}
	return url, nil
}

// ParseGitHubRemote extracts owner and repo from a GitHub remote URL.
// Handles both https and ssh formats:
//
//	https://github.com/owner/repo.git
//	git@github.com:owner/repo.git
//
// Returns ok=false for non-GitHub remotes.
func ParseGitHubRemote(url string) (owner, repo string, ok bool) {
	if !strings.Contains(url, "github.com") {
		return "", "", false
	}

	url = strings.TrimSuffix(url, ".git")

	if strings.Contains(url, "@") {
		// SSH format: git@github.com:owner/repo
		sshParts := strings.SplitN(url, ":", 2)
		if len(sshParts) < 2 {
			return "", "", false
		}
		pathParts := strings.Split(sshParts[1], "/")
		if len(pathParts) < 2 {
			return "", "", false
		}
		return pathParts[0], pathParts[len(pathParts)-1], true
	}

	// HTTPS format: https://github.com/owner/repo
	parts := strings.Split(url, "/")
	if len(parts) < 2 {
		return "", "", false
	}
	return parts[len(parts)-2], parts[len(parts)-1], true
}
