package testhelpers

import (
	"context"

	"pushit.dev/pushit/internal/git"
)

// MockGitHubClient is a GitHubClient backed by an in-memory PR table
type MockGitHubClient struct {
	Owner string
	Repo  string

	// PRsByBranch maps a branch name to its open pull request
	PRsByBranch map[string]*git.PullRequestInfo

	// Err, when set, is returned from every lookup
	Err error

	// Lookups records the branches queried
	Lookups []string
}

// NewMockGitHubClient creates a mock client with no pull requests
func NewMockGitHubClient() *MockGitHubClient {
	return &MockGitHubClient{
		Owner:       "testowner",
		Repo:        "testrepo",
		PRsByBranch: map[string]*git.PullRequestInfo{},
	}
}

// GetPullRequestByBranch returns the registered PR for a branch, or nil
func (c *MockGitHubClient) GetPullRequestByBranch(_ context.Context, branchName string) (*git.PullRequestInfo, error) {
	c.Lookups = append(c.Lookups, branchName)
	if c.Err != nil {
		return nil, c.Err
	}
	return c.PRsByBranch[branchName], nil
}

// GetOwnerRepo returns the repository owner and name
func (c *MockGitHubClient) GetOwnerRepo() (string, string) {
	return c.Owner, c.Repo
}
