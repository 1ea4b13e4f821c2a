package main

import (
	"os"

	"github.com/spf13/cobra"
)

// @title Bill Tracker API
// @version 1.0
// @description CRUD API for bills, due bills, bank accounts and their statuses.

// @host localhost:8080
// @BasePath /api
func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCommand creates the root CLI command with all subcommands registered.
// Running it without a subcommand starts the server.
func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "bt_backend",
		Short: "Bill tracker REST API",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}

	rootCmd.AddCommand(newServeCommand())
	rootCmd.AddCommand(newMigrateCommand())

	return rootCmd
}
