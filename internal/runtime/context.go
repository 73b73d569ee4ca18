package runtime

import (
	"pushit.dev/pushit/internal/config"
	"pushit.dev/pushit/internal/git"
	"pushit.dev/pushit/internal/tui"
)

// Context provides access to configuration and output for commands
type Context struct {
	Splog        *tui.Splog
	RepoRoot     string
	Config       *config.Config
	GitHubClient git.GitHubClient
}

// NewContext verifies the working directory is a git work tree, loads the
// repository configuration, and wires up logging. Every command goes
// through here, so the not-a-repository case aborts before any mutation.
func NewContext() (*Context, error) {
	if err := git.InitDefaultRepo(); err != nil {
		return nil, err
	}

	repoRoot, err := git.GetRepoRoot()
	if err != nil {
		return nil, err
	}

	cfg, err := config.LoadConfig(repoRoot)
	if err != nil {
		return nil, err
	}

	splog, err := tui.NewSplogWithLogFile(tui.GetLogFilePath())
	if err != nil {
		// File logging is best effort; fall back to console only
		splog = tui.NewSplog()
	}

	return &Context{
		Splog:    splog,
		RepoRoot: repoRoot,
		Config:   cfg,
	}, nil
}

// Close releases resources held by the context
func (c *Context) Close() error {
	if c.Splog != nil {
		return c.Splog.Close()
	}
	return nil
}
