package git

import (
	"context"
	"fmt"
)

// Push pushes a branch to the remote with -u so the upstream is set on
// the first push. Subsequent pushes are plain fast-forward pushes.
func Push(ctx context.Context, remote, branchName string) error {
	_, err := RunGitCommandWithContext(ctx, "push", "-u", remote, branchName)
	if err != nil {
		return fmt.Errorf("failed to push %s to %s: %w", branchName, remote, err)
	}
	return nil
}
