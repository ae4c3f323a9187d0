package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jonathan/resume-editor/internal/storage"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the database migrations",
	Long:  "Creates the document table in the database named by DATABASE_URL or the config file.",
	Args:  cobra.NoArgs,
	RunE:  runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store, err := storage.OpenPostgres(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := storage.Migrate(ctx, store.DB); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	_, _ = fmt.Fprintln(os.Stdout, "Migrations applied")
	return nil
}
