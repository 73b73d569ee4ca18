package cli

import (
	"github.com/spf13/cobra"

	"pushit.dev/pushit/internal/actions"
	"pushit.dev/pushit/internal/runtime"
)

// newStatusCmd creates the status command
func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "status",
		Aliases:      []string{"st"},
		Short:        "Show what a save would stage, commit, and push",
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			rt, err := runtime.NewContext()
			if err != nil {
				return err
			}
			defer rt.Close()

			return actions.PrintStatus(rt)
		},
	}
}
