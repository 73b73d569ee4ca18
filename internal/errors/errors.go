// Package errors provides sentinel errors and custom error types for the pushit application.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	// ErrNotARepository indicates that the current directory is not inside a git working tree
	ErrNotARepository = errors.New("not a git repository")

	// ErrNoRemote indicates that the repository has no usable remote
	ErrNoRemote = errors.New("no remote configured")

	// ErrDetachedHead indicates that HEAD is not on a branch
	ErrDetachedHead = errors.New("not on a branch")
)

// NotARepositoryError reports the directory that failed repository discovery
type NotARepositoryError struct {
	Dir string
}

func (e *NotARepositoryError) Error() string {
	return fmt.Sprintf("%s is not inside a git working tree", e.Dir)
}

// Is returns true if the target error is ErrNotARepository
func (e *NotARepositoryError) Is(target error) bool {
	return target == ErrNotARepository
}

// NewNotARepositoryError creates a new NotARepositoryError
func NewNotARepositoryError(dir string) *NotARepositoryError {
	return &NotARepositoryError{Dir: dir}
}

// GitCommandError represents an error from a git command execution
type GitCommandError struct {
	Command string
	Args    []string
	Stdout  string
	Stderr  string
	Err     error
}

func (e *GitCommandError) Error() string {
	msg := fmt.Sprintf("git command failed: %s", e.Command)
	if len(e.Args) > 0 {
		msg += fmt.Sprintf(" %v", e.Args)
	}
	if e.Stderr != "" {
		msg += fmt.Sprintf("\nstderr: %s", e.Stderr)
	}
	if e.Stdout != "" {
		msg += fmt.Sprintf("\nstdout: %s", e.Stdout)
	}
	if e.Err != nil {
		msg += fmt.Sprintf("\n%v", e.Err)
	}
	return msg
}

func (e *GitCommandError) Unwrap() error {
	return e.Err
}

// NewGitCommandError creates a new GitCommandError
func NewGitCommandError(command string, args []string, stdout, stderr string, err error) *GitCommandError {
	return &GitCommandError{
		Command: command,
		Args:    args,
		Stdout:  stdout,
		Stderr:  stderr,
		Err:     err,
	}
}
