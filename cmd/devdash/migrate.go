package main

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql
	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/devdash-backend/migrations"
)

const migrateTimeout = 5 * time.Minute

func newMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage database schema migrations",
	}

	var version int64
	up := &cobra.Command{
		Use:   "up",
		Short: "Apply pending migrations",
		Long:  "Apply all pending migrations, or only those up to --version when it is set.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withProvider(cmd, func(ctx context.Context, p *goose.Provider) error {
				var (
					results []*goose.MigrationResult
					err     error
				)
				if version > 0 {
					results, err = p.UpTo(ctx, version)
				} else {
					results, err = p.Up(ctx)
				}
				printResults(cmd.OutOrStdout(), results)
				return err
			})
		},
	}
	up.Flags().Int64Var(&version, "version", 0, "target schema version")

	down := &cobra.Command{
		Use:   "down",
		Short: "Roll back the most recent migration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withProvider(cmd, func(ctx context.Context, p *goose.Provider) error {
				result, err := p.Down(ctx)
				if result != nil {
					printResults(cmd.OutOrStdout(), []*goose.MigrationResult{result})
				}
				return err
			})
		},
	}

	status := &cobra.Command{
		Use:   "status",
		Short: "Show the state of each migration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withProvider(cmd, func(ctx context.Context, p *goose.Provider) error {
				statuses, err := p.Status(ctx)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				for _, s := range statuses {
					applied := "-"
					if s.State == goose.StateApplied {
						applied = s.AppliedAt.Format(time.RFC3339)
					}
					fmt.Fprintf(out, "%-8s %-25s %s\n", s.State, applied, s.Source.Path)
				}
				return nil
			})
		},
	}

	cmd.AddCommand(up, down, status)
	return cmd
}

func withProvider(cmd *cobra.Command, fn func(ctx context.Context, p *goose.Provider) error) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	db, err := sql.Open("pgx", cfg.Database.DSN)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return fmt.Errorf("create migration provider: %w", err)
	}

	ctx, cancel := context.WithTimeout(contextOrBackground(cmd), migrateTimeout)
	defer cancel()

	if err := fn(ctx, provider); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

func printResults(w io.Writer, results []*goose.MigrationResult) {
	if len(results) == 0 {
		fmt.Fprintln(w, "no migrations to run")
		return
	}
	for _, r := range results {
		fmt.Fprintln(w, r.String())
	}
}
