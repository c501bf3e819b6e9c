package config

import (
	"os"
	"path/filepath"
	"testing"
)

func clearEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
		if err := os.Unsetenv(key); err != nil {
			t.Fatalf("failed to unset %s: %v", key, err)
		}
	}
}

func TestLoader(t *testing.T) {

	t.Run("applies defaults when variables are missing", func(t *testing.T) {
		clearEnv(t, "ESCALA_HTTP_PORT", "ESCALA_SQLITE_DSN", "ESCALA_LOG_LEVEL", "ESCALA_CONFIG_FILE")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load returned error: %v", err)
		}

		if cfg.HTTPPort != 8080 {
			t.Fatalf("expected default HTTP port 8080, got %d", cfg.HTTPPort)
		}
		if cfg.SQLiteDSN != "file:escala.db" {
			t.Fatalf("unexpected default DSN: %q", cfg.SQLiteDSN)
		}
		if cfg.LogLevel != "info" {
			t.Fatalf("expected default log level info, got %q", cfg.LogLevel)
		}
	})

	t.Run("parses environment values", func(t *testing.T) {
		clearEnv(t, "ESCALA_CONFIG_FILE")
		t.Setenv("ESCALA_HTTP_PORT", "9090")
		t.Setenv("ESCALA_SQLITE_DSN", "file:/tmp/escala.db")
		t.Setenv("ESCALA_LOG_LEVEL", "DEBUG")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load returned error: %v", err)
		}

		if cfg.HTTPPort != 9090 {
			t.Fatalf("expected HTTP port 9090, got %d", cfg.HTTPPort)
		}
		if cfg.SQLiteDSN != "file:/tmp/escala.db" {
			t.Fatalf("unexpected DSN: %q", cfg.SQLiteDSN)
		}
		if cfg.LogLevel != "debug" {
			t.Fatalf("expected normalised log level debug, got %q", cfg.LogLevel)
		}
	})

	t.Run("rejects invalid values", func(t *testing.T) {
		clearEnv(t, "ESCALA_CONFIG_FILE", "ESCALA_SQLITE_DSN")
		t.Setenv("ESCALA_HTTP_PORT", "not-a-port")
		t.Setenv("ESCALA_LOG_LEVEL", "loud")

		_, err := Load()
		if err == nil {
			t.Fatalf("expected error for invalid values")
		}
	})

	t.Run("reads the YAML file and lets the environment win", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "escala.yaml")
		contents := "http_port: 9000\nsqlite_dsn: file:from-file.db\nlog_level: warn\n"
		if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
			t.Fatalf("failed to write config file: %v", err)
		}

		clearEnv(t, "ESCALA_HTTP_PORT", "ESCALA_SQLITE_DSN", "ESCALA_LOG_LEVEL")
		t.Setenv("ESCALA_CONFIG_FILE", path)
		t.Setenv("ESCALA_LOG_LEVEL", "error")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load returned error: %v", err)
		}

		if cfg.HTTPPort != 9000 {
			t.Fatalf("expected port 9000 from file, got %d", cfg.HTTPPort)
		}
		if cfg.SQLiteDSN != "file:from-file.db" {
			t.Fatalf("expected DSN from file, got %q", cfg.SQLiteDSN)
		}
		if cfg.LogLevel != "error" {
			t.Fatalf("expected environment to win for log level, got %q", cfg.LogLevel)
		}
	})

	t.Run("missing config file is an error", func(t *testing.T) {
		clearEnv(t, "ESCALA_HTTP_PORT", "ESCALA_SQLITE_DSN", "ESCALA_LOG_LEVEL")
		t.Setenv("ESCALA_CONFIG_FILE", filepath.Join(t.TempDir(), "absent.yaml"))

		if _, err := Load(); err == nil {
			t.Fatalf("expected error for missing config file")
		}
	})
}
