package main

import (
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"

	"devproc/internal/app"
)

func init() {
	rootCmd.AddCommand(cmdStart)
	rootCmd.AddCommand(cmdStop)
}

var (
	startForceRestart bool
	stopForce         bool
)

func init() {
	cmdStart.Flags().BoolVarP(&startForceRestart, "force", "f", false, "Restart the daemon if it is already running")
	cmdStop.Flags().BoolVarP(&stopForce, "force", "f", false, "Send SIGKILL if the daemon ignores SIGTERM")
}

var cmdStart = &cobra.Command{
	Use:   "start [config]",
	Short: "Start the daemon in the foreground",
	Long: `Resolves the configuration (a path, a name searched in the working directory and ~/.devproc,
or devproc.ini / Procfile when omitted), assigns ports and serves them until interrupted.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctrl := controller()
		out := cmd.OutOrStdout()

		st, err := ctrl.Status()
		if st.Running {
			if !startForceRestart {
				message := "Daemon is already running. Stop it manually or re-run with --force."
				if st.PID != 0 {
					message = fmt.Sprintf("Daemon is already running (pid %d). Stop it manually or re-run with --force.", st.PID)
				}
				if err != nil {
					message = fmt.Sprintf("Error checking if daemon is running: %v", err)
				}
				fmt.Fprintln(out, message)
				return nil
			}
			fmt.Fprintln(out, "Stopping existing daemon process...")
			if err := ctrl.StopDaemon(true); err != nil {
				return err
			}
		}

		var configArg string
		if len(args) > 0 {
			configArg = args[0]
		}
		handle, err := ctrl.StartDaemon(app.StartParams{Config: configArg})
		if err != nil {
			return err
		}
		if srv := handle.Server(); srv != nil {
			cfg := srv.Config()
			fmt.Fprintf(out, "Serving %d processes from %s\n", len(cfg.Processes), cfg.Filename)
		}

		runSpin := spinner.New(spinner.CharSets[21], 120*time.Millisecond, spinner.WithWriter(out))
		runSpin.Suffix = " Running..."
		runSpin.Start()

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		<-ctx.Done()

		runSpin.Stop()
		return handle.Close()
	},
}

var cmdStop = &cobra.Command{
	Use:   "stop",
	Short: "Stop the running daemon",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := controller().StopDaemon(stopForce); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Daemon stopped")
		return nil
	},
}
