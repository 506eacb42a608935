package main

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(cmdAutorun)
}

var cmdAutorun = &cobra.Command{
	Use:   "autorun [config]",
	Short: "Print the processes that start automatically, in start order",
	Long:  "Resolves the configuration locally, without the daemon, and prints the autorun processes ordered by index.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var configArg string
		if len(args) > 0 {
			configArg = args[0]
		}
		procs, err := controller().Autorun(configArg)
		if err != nil {
			return err
		}
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "LABEL\tPORT\tSLEEP\tDIRECTORY\tCOMMAND")
		for _, p := range procs {
			port := "-"
			if p.HasPort() {
				port = strconv.Itoa(p.Port)
			}
			dir := p.Dir
			if dir == "" {
				dir = "."
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", p.Label, port, p.SleepDuration(), dir, p.Command)
		}
		return tw.Flush()
	},
}
