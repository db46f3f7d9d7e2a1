package main

import (
	"github.com/aussiebroadwan/todo/internal/todo/app"
	"github.com/aussiebroadwan/todo/internal/todo/service"
	"github.com/aussiebroadwan/todo/pkg/slogx"
	"github.com/spf13/cobra"
)

// newAssignRoleCmd grants a role straight against the database. It is how
// the first Admin gets made when no seed file is used.
func newAssignRoleCmd(envFile *string) *cobra.Command {
	var email, role string

	cmd := &cobra.Command{
		Use:   "assign-role",
		Short: "Grant a role to a registered user",
		Example: `  todo assign-role --email admin@example.com --role Admin`,
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

			ctx := slogx.WithContext(cmd.Context(), app.NewLogger(cfg))
			users := service.NewUserService(db, nil)
			if err := users.AssignRole(ctx, email, role); err != nil {
				return err
			}

			cmd.Printf("Role name %s assigned to %s successful!\n", role, email)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Email of the user")
	cmd.Flags().StringVar(&role, "role", "", "Role name, created if it does not exist")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("role")
	return cmd
}
