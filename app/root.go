// Package app implements the main application commands.
package app

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "vida-admin",
	Short: "vida-admin is the administrative backend for Vida",
	Long: `vida-admin is the administrative backend for Vida.
It serves the REST API for login, admin provisioning, password reset,
SMTP system settings and the audit log.`,
	Args: cobra.OnlyValidArgs,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
