package config

import (
	"fmt"
	"log"
	"log/slog"
	"strings"

	"github.com/SscSPs/bill_tracker/pkg/database"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DBDriver           string
	DatabaseURL        string
	SQLitePath         string
	DBMaxConns         int32
	Port               string
	APIBasePath        string
	IsProduction       bool
	CORSAllowedOrigins []string
	RateLimit          string // ulule/limiter format, e.g. "300-M"; empty disables
	LogLevel           slog.Level
	AutoMigrate        bool
}

const (
	defaultDBDriver    = database.DriverPostgres
	defaultSQLitePath  = "billtracker.db"
	defaultDBMaxConns  = 10
	defaultPort        = "8080"
	defaultAPIBasePath = "/api"
	defaultCORSOrigins = "http://localhost:3000"
)

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("DB_DRIVER", defaultDBDriver)
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("SQLITE_PATH", defaultSQLitePath)
	v.SetDefault("DB_MAX_CONNS", defaultDBMaxConns)
	v.SetDefault("PORT", defaultPort)
	v.SetDefault("API_BASE_PATH", defaultAPIBasePath)
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("CORS_ALLOWED_ORIGINS", defaultCORSOrigins)
	v.SetDefault("RATE_LIMIT", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("AUTO_MIGRATE", true)

	// Environment variables override the defaults above.
	v.AutomaticEnv()

	cfg := &Config{}

	cfg.DBDriver = strings.ToLower(strings.TrimSpace(v.GetString("DB_DRIVER")))
	cfg.DatabaseURL = v.GetString("PGSQL_URL")
	if cfg.DBDriver == database.DriverPostgres && cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.SQLitePath = v.GetString("SQLITE_PATH")
	if cfg.SQLitePath == "" {
		cfg.SQLitePath = defaultSQLitePath
		log.Printf("Warning: SQLITE_PATH not set. Defaulting to %s\n", cfg.SQLitePath)
	}

	maxConns := v.GetInt("DB_MAX_CONNS")
	if maxConns <= 0 {
		log.Printf("Warning: Invalid value for DB_MAX_CONNS ('%s'). Defaulting to %d.\n", v.GetString("DB_MAX_CONNS"), defaultDBMaxConns)
		maxConns = defaultDBMaxConns
	}
	cfg.DBMaxConns = int32(maxConns)

	cfg.Port = v.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = defaultPort
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.APIBasePath = normalizeBasePath(v.GetString("API_BASE_PATH"))
	cfg.IsProduction = v.GetBool("IS_PRODUCTION")
	cfg.CORSAllowedOrigins = splitList(v.GetString("CORS_ALLOWED_ORIGINS"))
	cfg.RateLimit = strings.TrimSpace(v.GetString("RATE_LIMIT"))

	levelStr := v.GetString("LOG_LEVEL")
	if err := cfg.LogLevel.UnmarshalText([]byte(levelStr)); err != nil {
		log.Printf("Warning: Invalid value for LOG_LEVEL ('%s'). Defaulting to info.\n", levelStr)
		cfg.LogLevel = slog.LevelInfo
	}

	cfg.AutoMigrate = v.GetBool("AUTO_MIGRATE")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks settings that have no usable fallback.
func (c *Config) Validate() error {
	switch c.DBDriver {
	case database.DriverPostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("PGSQL_URL is required when DB_DRIVER is %q", database.DriverPostgres)
		}
	case database.DriverSQLite:
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q (expected %q or %q)", c.DBDriver, database.DriverPostgres, database.DriverSQLite)
	}
	return nil
}

// DatabaseOptions maps the storage settings onto database.Open.
func (c *Config) DatabaseOptions() database.Options {
	return database.Options{
		Driver:      c.DBDriver,
		PostgresURL: c.DatabaseURL,
		SQLitePath:  c.SQLitePath,
		MaxConns:    c.DBMaxConns,
	}
}

// normalizeBasePath returns "" for the root mount and "/x/y" otherwise.
func normalizeBasePath(p string) string {
	p = strings.Trim(strings.TrimSpace(p), "/")
	if p == "" {
		return ""
	}
	return "/" + p
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
