// Package git provides low-level Git operations.
//
// It wraps git command execution and provides a Go-friendly interface for:
//   - Repo state queries (work tree discovery, staged/unstaged changes)
//   - Commit operations
//   - Remote operations (push, upstream queries)
//
// This package should be the only place where direct git commands are executed.
package git
