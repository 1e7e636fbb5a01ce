// Command migrate manages the product module database schema.
package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/aeshevdaniyar/medusa/internal/infrastructure/config"
	"github.com/aeshevdaniyar/medusa/internal/infrastructure/logger"
	"github.com/aeshevdaniyar/medusa/internal/infrastructure/migration"
	_ "github.com/lib/pq"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
)

func main() {
	app := &cli.Command{
		Name:  "migrate",
		Usage: "Manage the product module database schema",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "Directory holding medusa-config.toml"},
			&cli.StringFlag{Name: "log-level", Value: "info", Usage: "Log level: debug, info, warn, error"},
		},
		Commands: []*cli.Command{
			{
				Name:  "up",
				Usage: "Apply all pending migrations",
				Action: withMigrator(func(_ context.Context, _ *cli.Command, m *migration.Migrator, _ *zap.Logger) error {
					return m.Up()
				}),
			},
			{
				Name:  "down",
				Usage: "Roll back all migrations",
				Action: withMigrator(func(_ context.Context, _ *cli.Command, m *migration.Migrator, _ *zap.Logger) error {
					return m.Down()
				}),
			},
			{
				Name:      "step",
				Usage:     "Apply n migrations, negative to roll back",
				ArgsUsage: "<n>",
				Action: withMigrator(func(_ context.Context, cmd *cli.Command, m *migration.Migrator, _ *zap.Logger) error {
					var n int
					if _, err := fmt.Sscanf(cmd.Args().First(), "%d", &n); err != nil {
						return fmt.Errorf("invalid step count %q", cmd.Args().First())
					}
					return m.Steps(n)
				}),
			},
			{
				Name:  "version",
				Usage: "Show the applied migration version",
				Action: withMigrator(func(_ context.Context, _ *cli.Command, m *migration.Migrator, log *zap.Logger) error {
					version, dirty, err := m.Version()
					if err != nil {
						return err
					}
					log.Info("Current migration version", zap.Uint("version", version), zap.Bool("dirty", dirty))
					return nil
				}),
			},
			{
				Name:      "force",
				Usage:     "Set the migration version without running migrations",
				ArgsUsage: "<version>",
				Action: withMigrator(func(_ context.Context, cmd *cli.Command, m *migration.Migrator, _ *zap.Logger) error {
					var version int
					if _, err := fmt.Sscanf(cmd.Args().First(), "%d", &version); err != nil {
						return fmt.Errorf("invalid version %q", cmd.Args().First())
					}
					return m.Force(version)
				}),
			},
			{
				Name:  "list",
				Usage: "List the embedded migrations",
				Action: func(_ context.Context, cmd *cli.Command) error {
					names, err := migration.List()
					if err != nil {
						return err
					}
					for _, name := range names {
						fmt.Fprintln(cmd.Root().Writer, name)
					}
					return nil
				},
			},
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "migrate: %v\n", err)
		os.Exit(1)
	}
}

type migratorAction func(ctx context.Context, cmd *cli.Command, m *migration.Migrator, log *zap.Logger) error

func withMigrator(action migratorAction) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		logCfg := logger.DefaultConfig()
		logCfg.Level = cmd.String("log-level")
		log, err := logger.New(logCfg)
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		var paths []string
		if dir := cmd.String("config"); dir != "" {
			paths = append(paths, dir)
		}
		cfg, err := config.Load(paths...)
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		if cfg.Database.Driver != config.DriverPostgres {
			return fmt.Errorf("migrations require postgres, got driver %q", cfg.Database.Driver)
		}

		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer db.Close()

		if err := db.PingContext(ctx); err != nil {
			return fmt.Errorf("failed to ping database: %w", err)
		}

		m, err := migration.New(db, log)
		if err != nil {
			return err
		}
		defer m.Close()

		return action(ctx, cmd, m, log)
	}
}
