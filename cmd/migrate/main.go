package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/angelmondragon/opusclip-demo/pkg/config"
	"github.com/angelmondragon/opusclip-demo/pkg/db"
	"github.com/angelmondragon/opusclip-demo/pkg/logger"
	"github.com/angelmondragon/opusclip-demo/pkg/migrate"
)

type options struct {
	cmd     string
	dir     string
	name    string
	version string
}

func main() {
	var opts options
	flag.StringVar(&opts.cmd, "cmd", "up", "migration command: up|redo|down|status|version|create|validate")
	flag.StringVar(&opts.dir, "dir", migrate.DefaultDir, "migrations directory for create and validate")
	flag.StringVar(&opts.name, "name", "", "migration name (for create)")
	flag.StringVar(&opts.version, "version", "", "target version (YYYYMMDDHHMMSS) for -cmd=version")
	flag.Parse()

	_ = godotenv.Load()

	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "migrate %s: %v\n", opts.cmd, err)
		os.Exit(1)
	}
}

func run(opts options) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logg := logger.New(logger.Options{
		ServiceName: "migrate",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":     cfg.App.Env,
		"cmd":     opts.cmd,
		"storage": cfg.Storage.Backend,
	})

	switch opts.cmd {
	case "create":
		if opts.name == "" {
			return fmt.Errorf("missing -name")
		}
		path, err := migrate.CreateSQLMigration(opts.dir, opts.name)
		if err != nil {
			return err
		}
		fmt.Println("created migration:", path)
		return nil
	case "validate":
		if err := migrate.ValidateDir(opts.dir); err != nil {
			return err
		}
		if err := migrate.ValidateEmbedded(); err != nil {
			return fmt.Errorf("embedded: %w", err)
		}
		fmt.Println("migration validation passed")
		return nil
	}

	// The remaining commands operate on the kv_entries schema of a SQL backend.
	if cfg.Storage.Backend != config.StorageSQLite && cfg.Storage.Backend != config.StoragePostgres {
		return fmt.Errorf("storage backend %q has no schema to migrate", cfg.Storage.Backend)
	}
	client, err := db.New(ctx, cfg.DB, logg)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer client.Close()

	sqlDB, err := client.SQL()
	if err != nil {
		return err
	}
	driver := client.Driver()
	logg.Info(ctx, "migrate ready")

	var apply func(context.Context, *sql.DB, string) error
	switch opts.cmd {
	case "up":
		apply = migrate.Up
	case "redo", "down", "status":
		apply = func(ctx context.Context, db *sql.DB, driver string) error {
			return migrate.Run(ctx, db, driver, opts.cmd)
		}
	case "version":
		if opts.version == "" {
			return fmt.Errorf("missing -version")
		}
		apply = func(ctx context.Context, db *sql.DB, driver string) error {
			return migrate.MigrateToVersion(ctx, db, driver, opts.version)
		}
	default:
		return fmt.Errorf("unknown command")
	}

	if err := apply(ctx, sqlDB, driver); err != nil {
		logg.Error(ctx, "migration failed", err)
		return err
	}
	version, err := migrate.Version(ctx, sqlDB, driver)
	if err != nil {
		return err
	}
	logg.Info(logg.WithField(ctx, "version", version), "migrate done")
	return nil
}
