package main

import (
	"github.com/aussiebroadwan/todo/internal/todo/app"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var envFile string

	root := &cobra.Command{
		Use:   "todo",
		Short: "Todo API server",
		Long: `Serves the todo HTTP API backed by SQLite.

Configuration is read from TODO_* environment variables, optionally loaded
from a .env file. Running without a subcommand is the same as "todo serve".`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(envFile)
		},
	}
	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Path to a .env file (ignored if missing)")

	root.AddCommand(
		newServeCmd(&envFile),
		newMigrateCmd(&envFile),
		newAssignRoleCmd(&envFile),
		newVersionCmd(),
	)
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the build version",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Println("todo", app.BuildVersion)
		},
	}
}
