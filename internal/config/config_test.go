package config

import (
	"os"
	"strings"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"HOST", "PORT", "DATABASE_TYPE", "DATABASE_URL", "DATABASE_HOST",
		"DATABASE_PORT", "DATABASE_NAME", "DATABASE_USER", "DATABASE_PASSWORD",
		"SQLITE_DB_PATH", "RESET_ON_START", "CORS_ORIGINS",
	} {
		// Setenv registers the restore; Unsetenv makes the key truly absent.
		t.Setenv(key, "")
		if err := os.Unsetenv(key); err != nil {
			t.Fatalf("unset %s: %v", key, err)
		}
	}
}

func TestFromEnvDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Port != 3000 {
		t.Fatalf("expected default port 3000, got %d", cfg.Port)
	}
	if cfg.Address() != "0.0.0.0:3000" {
		t.Fatalf("expected address 0.0.0.0:3000, got %q", cfg.Address())
	}
	if cfg.DatabaseType != "postgres" {
		t.Fatalf("expected postgres database type, got %q", cfg.DatabaseType)
	}
	if !cfg.ResetOnStart {
		t.Fatal("expected reset on start by default")
	}
	if got := cfg.PostgresDSN(); got != defaultPostgresURL {
		t.Fatalf("expected default dsn %q, got %q", defaultPostgresURL, got)
	}
	if len(cfg.AllowedOrigins) != 2 {
		t.Fatalf("expected 2 default origins, got %v", cfg.AllowedOrigins)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "8080")
	t.Setenv("DATABASE_TYPE", " SQLite ")
	t.Setenv("SQLITE_DB_PATH", ":memory:")
	t.Setenv("RESET_ON_START", "false")
	t.Setenv("CORS_ORIGINS", "http://a.example, ,http://b.example")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Port != 8080 {
		t.Fatalf("expected port 8080, got %d", cfg.Port)
	}
	if cfg.DatabaseType != "sqlite" {
		t.Fatalf("expected sqlite, got %q", cfg.DatabaseType)
	}
	if cfg.SQLiteDBPath != ":memory:" {
		t.Fatalf("expected :memory:, got %q", cfg.SQLiteDBPath)
	}
	if cfg.ResetOnStart {
		t.Fatal("expected reset on start to be disabled")
	}
	want := []string{"http://localhost:3000", "http://127.0.0.1:3000", "http://a.example", "http://b.example"}
	if strings.Join(cfg.AllowedOrigins, ",") != strings.Join(want, ",") {
		t.Fatalf("expected origins %v, got %v", want, cfg.AllowedOrigins)
	}
}

func TestFromEnvInvalidPort(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "not-an-int")

	_, err := FromEnv()
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}

func TestPostgresDSN(t *testing.T) {
	cfg := Settings{DatabaseURL: "postgres://u:p@db/flavors"}
	if got := cfg.PostgresDSN(); got != "postgres://u:p@db/flavors" {
		t.Fatalf("expected DATABASE_URL to win, got %q", got)
	}

	cfg = Settings{
		DatabaseHost:     "db",
		DatabaseName:     "flavors_db",
		DatabaseUser:     "app",
		DatabasePassword: "it's secret",
	}
	want := `host=db port=5432 dbname=flavors_db user=app password='it\'s secret' sslmode=disable`
	if got := cfg.PostgresDSN(); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestMySQLDSN(t *testing.T) {
	cfg := Settings{DatabaseUser: "app", DatabasePassword: "pw", DatabaseName: "flavors_db"}
	want := "app:pw@tcp(localhost:3306)/flavors_db?charset=utf8mb4&parseTime=True&loc=Local"
	if got := cfg.MySQLDSN(); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}
