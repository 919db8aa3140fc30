package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/neexbeast/travel-atlas/internal/storage"
	"github.com/neexbeast/travel-atlas/migrations"
)

func newSeedCmd(a *app) *cobra.Command {
	var databaseURL string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Apply migrations and write the catalog to PostgreSQL",
		Long: `Apply the embedded migrations and upsert every destination and journey
of the loaded catalog. Running it twice leaves the database unchanged.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if databaseURL == "" {
				return errors.New("--database-url or DATABASE_URL is required")
			}

			c, err := a.loadCatalog()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			pool, err := storage.Connect(ctx, databaseURL)
			if err != nil {
				return fmt.Errorf("connecting to database: %w", err)
			}
			defer pool.Close()

			if err := storage.RunMigrations(ctx, pool, migrations.FS); err != nil {
				return fmt.Errorf("running migrations: %w", err)
			}
			slog.Debug("migrations applied")

			if err := storage.NewRepository(pool).Seed(ctx, c); err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "seeded %d destinations and %d journeys\n",
				len(c.Destinations()), len(c.Journeys()))
			return err
		},
	}

	cmd.Flags().StringVar(&databaseURL, "database-url", os.Getenv("DATABASE_URL"), "PostgreSQL connection string")

	return cmd
}
