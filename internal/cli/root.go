// Package cli wires the cobra command tree for pushit.
package cli

import (
	"github.com/spf13/cobra"

	"pushit.dev/pushit/internal/git"
)

// NewRootCmd creates the root cobra command.
// Running pushit with no subcommand performs a save: stage everything,
// commit when anything is staged, push the current branch.
func NewRootCmd(version, commit, date string) *cobra.Command {
	flags := &saveFlags{}
	var directory string

	rootCmd := &cobra.Command{
		Use:   "pushit",
		Short: "Stage all changes, commit, and push in one shot",
		Long: `Pushit automates the checkpoint workflow: stage all changes, commit them
with a fixed message if anything is staged, and push the current branch.

Running pushit with no arguments performs a save.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if directory != "" {
				git.SetWorkingDir(directory)
			}
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSave(cmd, flags)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&directory, "directory", "C", "", "Run as if pushit was started in this directory")

	registerSaveFlags(rootCmd, flags)

	// Add subcommands
	rootCmd.AddCommand(newSaveCmd())
	rootCmd.AddCommand(newStatusCmd())
	rootCmd.AddCommand(newWatchCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newVersionCmd(version, commit, date))

	return rootCmd
}
