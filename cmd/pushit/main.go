package main

import (
	"fmt"
	"os"

	"pushit.dev/pushit/internal/cli"
	"pushit.dev/pushit/internal/tui"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := cli.NewRootCmd(version, commit, date)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, tui.ColorRed(err.Error()))
		os.Exit(1)
	}
}
