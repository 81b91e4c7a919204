package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv(EnvAppEnv, "dev")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	if cfg.App.Port != "8080" {
		t.Fatalf("expected default port 8080, got %q", cfg.App.Port)
	}
	if cfg.Storage.Backend != StorageFile {
		t.Fatalf("expected file backend, got %q", cfg.Storage.Backend)
	}
	if cfg.Transition.Window != 300*time.Millisecond {
		t.Fatalf("expected 300ms transition window, got %v", cfg.Transition.Window)
	}
	if cfg.Transition.NavDelay != 50*time.Millisecond {
		t.Fatalf("expected 50ms navigation delay, got %v", cfg.Transition.NavDelay)
	}
	if cfg.Editor.SaveDelay != 500*time.Millisecond {
		t.Fatalf("expected 500ms save delay, got %v", cfg.Editor.SaveDelay)
	}
	if cfg.Analytics.MaxEvents != 100 {
		t.Fatalf("expected 100 analytics events, got %d", cfg.Analytics.MaxEvents)
	}
	if !cfg.Onboarding.GateEnabled {
		t.Fatal("expected onboarding gate enabled by default")
	}
	if got := cfg.Onboarding.ProtectedPrefixes; len(got) != 3 || got[0] != "/dashboard" {
		t.Fatalf("unexpected protected prefixes %v", got)
	}
}

func TestLoad_MissingRequired(t *testing.T) {
	t.Setenv(EnvAppEnv, "")

	if _, err := Load(); err == nil {
		t.Fatal("expected missing required env to return an error")
	}
}

func TestLoad_StorageBackends(t *testing.T) {
	t.Run("sqlite fills dsn", func(t *testing.T) {
		t.Setenv(EnvAppEnv, "dev")
		t.Setenv(EnvStorageBackend, "SQLite")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() returned unexpected error: %v", err)
		}
		if cfg.Storage.Backend != StorageSQLite || cfg.DB.Driver != StorageSQLite {
			t.Fatalf("expected sqlite backend, got %q/%q", cfg.Storage.Backend, cfg.DB.Driver)
		}
		if cfg.DB.DSN == "" {
			t.Fatal("expected default sqlite dsn")
		}
	})

	t.Run("postgres requires dsn", func(t *testing.T) {
		t.Setenv(EnvAppEnv, "dev")
		t.Setenv(EnvStorageBackend, "postgres")

		if _, err := Load(); err == nil {
			t.Fatal("expected error without dsn")
		}
	})

	t.Run("redis requires address", func(t *testing.T) {
		t.Setenv(EnvAppEnv, "dev")
		t.Setenv(EnvStorageBackend, "redis")

		if _, err := Load(); err == nil {
			t.Fatal("expected error without redis url")
		}
	})

	t.Run("unknown backend", func(t *testing.T) {
		t.Setenv(EnvAppEnv, "dev")
		t.Setenv(EnvStorageBackend, "indexeddb")

		if _, err := Load(); err == nil {
			t.Fatal("expected error for unknown backend")
		}
	})
}

func TestLoad_RejectsNegativeLatency(t *testing.T) {
	t.Setenv(EnvAppEnv, "dev")
	t.Setenv(EnvLatencyScale, "-1")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for negative latency scale")
	}
}

func TestAppConfigEnvHelpers(t *testing.T) {
	devConfig := AppConfig{Env: "DEV"}
	if !devConfig.IsDev() {
		t.Fatalf("expected IsDev true for %q", devConfig.Env)
	}
	if devConfig.IsProd() {
		t.Fatalf("expected IsProd false for %q", devConfig.Env)
	}

	prodConfig := AppConfig{Env: "prod"}
	if !prodConfig.IsProd() {
		t.Fatalf("expected IsProd true for %q", prodConfig.Env)
	}
}
