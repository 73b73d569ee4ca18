package cli

import (
	"github.com/spf13/cobra"

	"pushit.dev/pushit/internal/actions"
	"pushit.dev/pushit/internal/runtime"
)

// saveFlags holds the flags shared by the root command and `pushit save`
type saveFlags struct {
	message   string
	noPush    bool
	dryRun    bool
	assumeYes bool
}

// registerSaveFlags attaches the save flags to a command
func registerSaveFlags(cmd *cobra.Command, flags *saveFlags) {
	cmd.Flags().StringVarP(&flags.message, "message", "m", "", "Commit message for this run")
	cmd.Flags().BoolVar(&flags.noPush, "no-push", false, "Commit locally but don't push to the remote")
	cmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "Show what would happen without modifying anything")
	cmd.Flags().BoolVarP(&flags.assumeYes, "yes", "y", false, "Skip the confirmation prompt on protected branches")
}

// newSaveCmd creates the explicit save command
func newSaveCmd() *cobra.Command {
	flags := &saveFlags{}

	cmd := &cobra.Command{
		Use:          "save",
		Aliases:      []string{"s"},
		Short:        "Stage all changes, commit, and push the current branch",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSave(cmd, flags)
		},
	}

	registerSaveFlags(cmd, flags)

	return cmd
}

// runSave executes the save workflow with the given flags
func runSave(cmd *cobra.Command, flags *saveFlags) error {
	rt, err := runtime.NewContext()
	if err != nil {
		return err
	}
	defer rt.Close()

	_, err = actions.Save(cmd.Context(), rt, actions.SaveOptions{
		Message:   flags.message,
		NoPush:    flags.noPush,
		DryRun:    flags.dryRun,
		AssumeYes: flags.assumeYes,
	})
	return err
}
