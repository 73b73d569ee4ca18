package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"pushit.dev/pushit/internal/runtime"
)

// newConfigCmd creates the config command and its subcommands
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "config",
		Short:        "Show or change the repository configuration",
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			rt, err := runtime.NewContext()
			if err != nil {
				return err
			}
			defer rt.Close()

			cfg := rt.Config
			splog := rt.Splog
			splog.Info("message: %q", cfg.GetMessage())
			splog.Info("remote: %s", cfg.GetRemote())
			splog.Info("noPush: %t", cfg.GetNoPush())
			splog.Info("protectedBranches: %s", strings.Join(cfg.GetProtectedBranches(), ", "))
			return nil
		},
	}

	cmd.AddCommand(newConfigSetCmd())

	return cmd
}

// newConfigSetCmd creates the config set subcommand
func newConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "set <key> <value>",
		Short:        "Set a configuration value",
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, args []string) error {
			rt, err := runtime.NewContext()
			if err != nil {
				return err
			}
			defer rt.Close()

			if err := rt.Config.Set(args[0], args[1]); err != nil {
				return err
			}
			if err := rt.Config.Save(); err != nil {
				return fmt.Errorf("failed to write config: %w", err)
			}

			rt.Splog.Info("Set %s to %q", args[0], args[1])
			return nil
		},
	}
}
