package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"devproc/internal/tui"
)

func init() {
	rootCmd.AddCommand(cmdTUI)
}

var cmdTUI = &cobra.Command{
	Use:   "tui [config]",
	Short: "Launch the interactive terminal UI",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var configArg string
		if len(args) > 0 {
			configArg = args[0]
		}
		if err := tui.Run(controller(), configArg); err != nil {
			return fmt.Errorf("tui exited with error: %w", err)
		}
		return nil
	},
}
