package cli

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"pushit.dev/pushit/internal/actions"
	"pushit.dev/pushit/internal/runtime"
	"pushit.dev/pushit/internal/tui"
)

// newWatchCmd creates the watch command
func newWatchCmd() *cobra.Command {
	var (
		interval time.Duration
		noPush   bool
		message  string
	)

	cmd := &cobra.Command{
		Use:          "watch",
		Short:        "Save on an interval until interrupted",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !tui.IsInteractive() {
				return fmt.Errorf("watch mode requires an interactive terminal")
			}
			if interval < time.Second {
				return fmt.Errorf("interval must be at least one second")
			}

			rt, err := runtime.NewContext()
			if err != nil {
				return err
			}
			defer rt.Close()

			// The watch UI owns the terminal; saves log to file only
			rt.Splog.SetQuiet(true)

			ctx := cmd.Context()
			saveFunc := func() (string, error) {
				result, err := actions.Save(ctx, rt, actions.SaveOptions{
					Message: message,
					NoPush:  noPush,
					// Watch mode never blocks on a prompt
					AssumeYes: true,
				})
				if err != nil {
					return "", err
				}
				return summarize(result), nil
			}

			model := tui.NewWatchModel(interval, saveFunc)
			_, err = tea.NewProgram(model).Run()
			return err
		},
	}

	cmd.Flags().DurationVarP(&interval, "interval", "i", 5*time.Minute, "Time between saves")
	cmd.Flags().BoolVar(&noPush, "no-push", false, "Commit locally but don't push to the remote")
	cmd.Flags().StringVarP(&message, "message", "m", "", "Commit message for each save")

	return cmd
}

// summarize produces the one-line result shown in the watch UI
func summarize(result *actions.SaveResult) string {
	switch {
	case result.Committed && result.Pushed:
		return fmt.Sprintf("committed and pushed %s", result.Branch)
	case result.Committed:
		return fmt.Sprintf("committed on %s", result.Branch)
	case result.Pushed:
		return fmt.Sprintf("nothing to commit, pushed %s", result.Branch)
	default:
		return "nothing to do"
	}
}
