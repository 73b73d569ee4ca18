package git

import "context"

// PullRequestInfo contains information about a pull request
// This is a simplified struct to avoid coupling to go-github library
type PullRequestInfo struct {
	Number  int
	HTMLURL string
	Title   string
	State   string
	Draft   bool
	Base    string
	Head    string
}

// GitHubClient is an interface for GitHub API interactions
type GitHubClient interface {
	// GetPullRequestByBranch gets the open pull request for a branch, or nil
	GetPullRequestByBranch(ctx context.Context, branchName string) (*PullRequestInfo, error)

	// GetOwnerRepo returns the repository owner and name
	GetOwnerRepo() (owner, repo string)
}
