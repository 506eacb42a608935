package main

import (
	"errors"
	"fmt"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"devproc/internal/app"
)

func init() {
	rootCmd.AddCommand(cmdList, cmdLookup, cmdAdd)

	cmdList.Flags().IntVar(&rpcTimeoutSeconds, "timeout", 2, "Timeout in seconds for contacting the daemon")
	cmdLookup.Flags().IntVar(&rpcTimeoutSeconds, "timeout", 2, "Timeout in seconds for contacting the daemon")
	cmdAdd.Flags().IntVar(&rpcTimeoutSeconds, "timeout", 2, "Timeout in seconds for contacting the daemon")
}

var rpcTimeoutSeconds = 2

func rpcTimeout() time.Duration {
	return time.Duration(rpcTimeoutSeconds) * time.Second
}

var cmdList = &cobra.Command{
	Use:   "list",
	Short: "List the processes the daemon serves",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		procs, err := controller().List(cmd.Context(), rpcTimeout())
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if len(procs) == 0 {
			fmt.Fprintln(out, "No processes configured")
			return nil
		}
		tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "LABEL\tPORT\tAUTORUN\tCOMMAND")
		for _, p := range procs {
			port := "-"
			if p.HasPort() {
				port = strconv.Itoa(p.Port)
			}
			fmt.Fprintf(tw, "%s\t%s\t%t\t%s\n", p.Label, port, !p.DisableAutorun, p.Command)
		}
		return tw.Flush()
	},
}

var cmdLookup = &cobra.Command{
	Use:   "lookup <label>",
	Short: "Print the port registered for a label",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		port, err := controller().Lookup(cmd.Context(), args[0], rpcTimeout())
		if err != nil {
			if errors.Is(err, app.ErrLabelNotFound) {
				return &ExitError{Code: 3, Message: err.Error()}
			}
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), port)
		return nil
	},
}

var cmdAdd = &cobra.Command{
	Use:   "add <label> <port>",
	Short: "Register or replace a label -> port mapping in the running daemon",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		port, err := strconv.Atoi(args[1])
		if err != nil {
			return &ExitError{Code: 2, Message: fmt.Sprintf("invalid port %q", args[1])}
		}
		params := app.AddParams{Label: args[0], Port: port, Timeout: rpcTimeout()}
		if err := controller().Add(cmd.Context(), params); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s -> %d\n", args[0], port)
		return nil
	},
}
