package tui

import (
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/mattn/go-isatty"
)

// ErrInteractiveDisabled is returned when interactive prompts are disabled via PUSHIT_TEST_NO_INTERACTIVE
var ErrInteractiveDisabled = fmt.Errorf("interactive prompts are disabled (PUSHIT_TEST_NO_INTERACTIVE is set)")

// IsInteractive reports whether stdin is attached to a terminal
func IsInteractive() bool {
	if os.Getenv("PUSHIT_TEST_NO_INTERACTIVE") != "" {
		return false
	}
	return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
}

// ConfirmPush asks whether the given branch should be pushed.
// Callers must check IsInteractive first; prompting without a terminal blocks.
func ConfirmPush(branchName, remote string, commitCount int) (bool, error) {
	if os.Getenv("PUSHIT_TEST_NO_INTERACTIVE") != "" {
		return false, ErrInteractiveDisabled
	}

	noun := "commit"
	if commitCount != 1 {
		noun = "commits"
	}

	confirmed := false
	prompt := &survey.Confirm{
		Message: fmt.Sprintf("Push %d %s to %s/%s?", commitCount, noun, remote, branchName),
		Default: true,
	}
	if err := survey.AskOne(prompt, &confirmed); err != nil {
		return false, err
	}
	return confirmed, nil
}
