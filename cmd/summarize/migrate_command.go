package main

import (
	"fmt"

	migrate "github.com/rubenv/sql-migrate"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-summarizer/internal/infrastructure/database"
	"github.com/johnquangdev/meeting-summarizer/pkg/config"
)

func newMigrateCommand(verbose *bool) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or roll back the embedded Postgres migrations",
	}
	cmd.AddCommand(newMigrateDirectionCommand("up", "Apply pending migrations", migrate.Up, verbose))
	cmd.AddCommand(newMigrateDirectionCommand("down", "Roll back applied migrations", migrate.Down, verbose))
	return cmd
}

func newMigrateDirectionCommand(use, short string, dir migrate.MigrationDirection, verbose *bool) *cobra.Command {
	var max int

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cfg.Database.Driver != config.DriverPostgres {
				return fmt.Errorf("migrations need DB_DRIVER=postgres (got %q)", cfg.Database.Driver)
			}

			logger := newCLILogger(cmd.ErrOrStderr(), *verbose)
			defer logger.Sync()

			db, err := database.NewPostgresDB(cmd.Context(), cfg, logger)
			if err != nil {
				return err
			}
			defer func() {
				if err := database.CloseDB(db); err != nil {
					logger.Warn("failed to close database", zap.Error(err))
				}
			}()

			n, err := database.Migrate(db, dir, max)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Applied %d migration(s) %s\n", n, use)
			return nil
		},
	}

	defaultMax := 0
	if dir == migrate.Down {
		defaultMax = 1
	}
	cmd.Flags().IntVar(&max, "max", defaultMax, "Maximum number of migrations to apply (0 = all)")
	return cmd
}
