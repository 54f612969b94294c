package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const defaultPostgresURL = "postgres://localhost/flavors_db"

// Settings holds runtime configuration loaded from environment variables.
type Settings struct {
	Host             string   `env:"HOST" envDefault:"0.0.0.0"`
	Port             int      `env:"PORT" envDefault:"3000"`
	DatabaseType     string   `env:"DATABASE_TYPE" envDefault:"postgres"`
	DatabaseURL      string   `env:"DATABASE_URL"`
	DatabaseHost     string   `env:"DATABASE_HOST"`
	DatabasePort     int      `env:"DATABASE_PORT"`
	DatabaseName     string   `env:"DATABASE_NAME" envDefault:"flavors_db"`
	DatabaseUser     string   `env:"DATABASE_USER"`
	DatabasePassword string   `env:"DATABASE_PASSWORD"`
	SQLiteDBPath     string   `env:"SQLITE_DB_PATH" envDefault:"flavors.db"`
	ResetOnStart     bool     `env:"RESET_ON_START" envDefault:"true"`
	ExtraOrigins     []string `env:"CORS_ORIGINS" envSeparator:","`
	AllowedOrigins   []string
}

// Load reads an optional .env file from the working directory and then
// parses the process environment. Variables already set win over .env.
func Load() (Settings, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Settings{}, fmt.Errorf("load .env: %w", err)
	}
	return FromEnv()
}

// FromEnv parses the process environment without touching .env.
func FromEnv() (Settings, error) {
	var cfg Settings
	if err := env.Parse(&cfg); err != nil {
		return Settings{}, fmt.Errorf("parse env: %w", err)
	}
	cfg.DatabaseType = strings.ToLower(strings.TrimSpace(cfg.DatabaseType))
	cfg.AllowedOrigins = loadAllowedOrigins(cfg.ExtraOrigins)
	return cfg, nil
}

// Address is the host:port the HTTP listener binds to.
func (s Settings) Address() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// PostgresDSN resolves the postgres connection string: DATABASE_URL first,
// then the discrete DATABASE_* settings, then the local default.
func (s Settings) PostgresDSN() string {
	if v := strings.TrimSpace(s.DatabaseURL); v != "" {
		return v
	}
	if strings.TrimSpace(s.DatabaseHost) == "" {
		return defaultPostgresURL
	}

	parts := []string{
		"host=" + s.DatabaseHost,
		fmt.Sprintf("port=%d", portOr(s.DatabasePort, 5432)),
		"dbname=" + s.DatabaseName,
	}
	if s.DatabaseUser != "" {
		parts = append(parts, "user="+s.DatabaseUser)
	}
	if s.DatabasePassword != "" {
		parts = append(parts, "password="+quoteDSNValue(s.DatabasePassword))
	}
	parts = append(parts, "sslmode=disable")
	return strings.Join(parts, " ")
}

// MySQLDSN builds a go-sql-driver DSN from the discrete DATABASE_* settings.
func (s Settings) MySQLDSN() string {
	host := s.DatabaseHost
	if strings.TrimSpace(host) == "" {
		host = "localhost"
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		s.DatabaseUser,
		s.DatabasePassword,
		host,
		portOr(s.DatabasePort, 3306),
		s.DatabaseName,
	)
}

func loadAllowedOrigins(extra []string) []string {
	origins := []string{"http://localhost:3000", "http://127.0.0.1:3000"}
	for _, item := range extra {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		origins = append(origins, item)
	}
	return origins
}

func portOr(port, fallback int) int {
	if port <= 0 {
		return fallback
	}
	return port
}

func quoteDSNValue(v string) string {
	if !strings.ContainsAny(v, " '\\") {
		return v
	}
	v = strings.ReplaceAll(v, `\`, `\\`)
	v = strings.ReplaceAll(v, `'`, `\'`)
	return "'" + v + "'"
}
