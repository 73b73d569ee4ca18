package git

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/google/go-github/v62/github"
	"golang.org/x/oauth2"
)

// RealGitHubClient implements GitHubClient using the real GitHub API
type RealGitHubClient struct {
	client *github.Client
	owner  string
	repo   string
}

// NewRealGitHubClient creates a new RealGitHubClient for the given remote.
// Returns an error when no token is available or the remote is not GitHub.
func NewRealGitHubClient(ctx context.Context, remote string) (*RealGitHubClient, error) {
	url, err := GetRemoteURL(remote)
	if err != nil {
		return nil, fmt.Errorf("failed to read remote URL: %w", err)
	}

	owner, repo, ok := ParseGitHubRemote(url)
	if !ok {
		return nil, fmt.Errorf("remote %s is not a GitHub repository", remote)
	}

	token, err := getGitHubToken(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get GitHub token: %w", err)
	}

	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	tc := oauth2.NewClient(ctx, ts)

	return &RealGitHubClient{
		client: github.NewClient(tc),
		owner:  owner,
		repo:   repo,
	}, nil
}

// GetOwnerRepo returns the repository owner and name
func (c *RealGitHubClient) GetOwnerRepo() (string, string) {
	return c.owner, c.repo
}

// GetPullRequestByBranch gets the open pull request for a branch, or nil
func (c *RealGitHubClient) GetPullRequestByBranch(ctx context.Context, branchName string) (*PullRequestInfo, error) {
	prs, _, err := c.client.PullRequests.List(ctx, c.owner, c.repo, &github.PullRequestListOptions{
		Head:  fmt.Sprintf("%s:%s", c.owner, branchName),
		State: "open",
		ListOptions: github.ListOptions{
			PerPage: 1,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list pull requests: %w", err)
	}

	if len(prs) == 0 {
		return nil, nil
	}

	return toPullRequestInfo(prs[0]), nil
}

// toPullRequestInfo converts a go-github PR into the local struct
func toPullRequestInfo(pr *github.PullRequest) *PullRequestInfo {
	info := &PullRequestInfo{}
	if pr.Number != nil {
		info.Number = *pr.Number
	}
	if pr.HTMLURL != nil {
		info.HTMLURL = *pr.HTMLURL
	}
	if pr.Title != nil {
		info.Title = *pr.Title
	}
	if pr.State != nil {
		info.State = strings.ToUpper(*pr.State)
	}
	if pr.Draft != nil {
		info.Draft = *pr.Draft
	}
	if pr.Base != nil && pr.Base.Ref != nil {
		info.Base = *pr.Base.Ref
	}
	if pr.Head != nil && pr.Head.Ref != nil {
		info.Head = *pr.Head.Ref
	}
	return info
}

// getGitHubToken gets GitHub token from environment or gh CLI
func getGitHubToken(ctx context.Context) (string, error) {
	// Try environment variable first
	if token := os.Getenv("GITHUB_TOKEN"); token != "" {
		return token, nil
	}

	// Try gh CLI
	output, err := RunGHCommandWithContext(ctx, "auth", "token")
	if err != nil {
		return "", fmt.Errorf("failed to get GitHub token: %w", err)
	}

	token := strings.TrimSpace(output)
	if token == "" {
		return "", fmt.Errorf("empty GitHub token")
	}

	return token, nil
}
