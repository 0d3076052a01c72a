package main

import (
	"fmt"

	"github.com/shenikar/shelter_guard/pkg/postgres"
	"github.com/spf13/cobra"
)

func migrateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or roll back database migrations",
	}

	for _, direction := range []string{"up", "down"} {
		cmd.AddCommand(&cobra.Command{
			Use:   direction,
			Short: fmt.Sprintf("Run all %s migrations from MIGRATIONS_PATH", direction),
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				a.log.WithField("direction", direction).Info("Running database migrations...")
				if err := postgres.Migrate(a.cfg, direction); err != nil {
					return err
				}
				a.log.WithField("direction", direction).Info("Database migrations applied successfully")
				return nil
			},
		})
	}
	return cmd
}
