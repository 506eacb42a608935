package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"devproc/internal/app"
)

func init() {
	rootCmd.AddCommand(cmdSetup, cmdUninstall)

	cmdSetup.Flags().IntVar(&setupParams.DNSPort, "dns-port", 0, "Port of the local DNS responder")
	cmdSetup.Flags().IntVar(&setupParams.HTTPPort, "http-port", 0, "Port of the local HTTP proxy")
	cmdSetup.Flags().IntVar(&setupParams.HTTPSPort, "https-port", 0, "Port of the local HTTPS proxy")
	cmdSetup.Flags().IntVar(&setupParams.FirewallRuleNumber, "ipfw-rule", 0, "Firewall rule number used for port forwarding")
	cmdSetup.Flags().StringVar(&setupParams.TLD, "tld", "", "Top level domain served for labels (default \"test\")")
}

var setupParams app.PowerParams

var cmdSetup = &cobra.Command{
	Use:   "setup",
	Short: "Write the platform settings document (~/.devproc/config)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := controller().SetupPower(nil, setupParams)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Platform settings written (tld=%s)\n", settings.TLD())
		return nil
	},
}

var cmdUninstall = &cobra.Command{
	Use:   "uninstall",
	Short: "Remove the platform settings document",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := controller().RemovePower(nil); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Platform settings removed")
		return nil
	},
}
