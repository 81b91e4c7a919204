package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/angelmondragon/opusclip-demo/pkg/config"
	"github.com/angelmondragon/opusclip-demo/pkg/db"
	"github.com/angelmondragon/opusclip-demo/pkg/logger"
	"github.com/angelmondragon/opusclip-demo/pkg/migrate"
)

func newMigrateCommand() *cobra.Command {
	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the schema of the SQL storage backend",
	}

	migrateCmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSQLClient(cmd, func(client *db.Client) error {
				sqlDB, err := client.SQL()
				if err != nil {
					return err
				}
				if err := migrate.Up(cmd.Context(), sqlDB, client.Driver()); err != nil {
					return err
				}
				return printSchemaVersion(cmd, client)
			})
		},
	})

	migrateCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the applied schema version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSQLClient(cmd, func(client *db.Client) error {
				return printSchemaVersion(cmd, client)
			})
		},
	})

	migrateCmd.AddCommand(&cobra.Command{
		Use:   "validate",
		Short: "Check the embedded migration files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := migrate.ValidateEmbedded(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Embedded migrations are valid")
			return nil
		},
	})

	return migrateCmd
}

func withSQLClient(cmd *cobra.Command, fn func(*db.Client) error) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cfg.Storage.Backend != config.StorageSQLite && cfg.Storage.Backend != config.StoragePostgres {
		return fmt.Errorf("storage backend %q has no schema to migrate", cfg.Storage.Backend)
	}
	logg := logger.New(logger.Options{ServiceName: "opusctl", Level: logger.ParseLevel(cfg.App.LogLevel)})
	client, err := db.New(cmd.Context(), cfg.DB, logg)
	if err != nil {
		return err
	}
	defer client.Close()
	return fn(client)
}

func printSchemaVersion(cmd *cobra.Command, client *db.Client) error {
	sqlDB, err := client.SQL()
	if err != nil {
		return err
	}
	version, err := migrate.Version(cmd.Context(), sqlDB, client.Driver())
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Schema version: %d\n", version)
	return nil
}
