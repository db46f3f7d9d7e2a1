package main

import (
	"github.com/aussiebroadwan/todo/internal/todo/app"
	"github.com/spf13/cobra"
)

func newMigrateCmd(envFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.LoadConfig(*envFile)
			if err != nil {
				return err
			}

			db, err := app.OpenStore(cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			cmd.Printf("database %s is up to date\n", cfg.DatabaseFile)
			return nil
		},
	}
}
