package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Database struct {
	Driver string
	// Path es el archivo local cuando Driver es sqlite.
	Path     string
	DSN      string
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

type Config struct {
	Env      string
	Port     string
	Database Database
	Log      struct {
		Level  string
		Format string
	}
}

// Load lee .env si existe y luego las variables de entorno.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return FromEnv()
}

func FromEnv() (*Config, error) {
	cfg := &Config{}
	cfg.Env = strings.ToLower(getEnv("APP_ENV", "development"))
	cfg.Port = getEnv("PORT", "8080")

	cfg.Database.Driver = strings.ToLower(getEnv("DB_DRIVER", DriverSQLite))
	cfg.Database.Path = getEnv("DB_PATH", "customers.db")
	cfg.Database.DSN = strings.TrimSpace(os.Getenv("DB_DSN"))
	cfg.Database.Host = getEnv("DB_HOST", "localhost")
	cfg.Database.Port = getEnv("DB_PORT", "5432")
	cfg.Database.User = getEnv("DB_USER", "postgres")
	cfg.Database.Password = getEnv("DB_PASSWORD", "postgres")
	cfg.Database.Name = getEnv("DB_NAME", "customerdesk")
	cfg.Database.SSLMode = getEnv("DB_SSLMODE", "disable")

	cfg.Log.Level = strings.ToLower(getEnv("LOG_LEVEL", "info"))
	defaultFormat := "console"
	if cfg.IsProduction() {
		defaultFormat = "json"
	}
	cfg.Log.Format = strings.ToLower(getEnv("LOG_FORMAT", defaultFormat))

	switch cfg.Database.Driver {
	case DriverSQLite:
		if strings.TrimSpace(cfg.Database.Path) == "" {
			return nil, fmt.Errorf("DB_PATH is required for driver %q", DriverSQLite)
		}
	case DriverPostgres:
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.Database.Driver)
	}
	return cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production" || c.Env == "prod"
}

// PostgresDSN usa DB_DSN si está definido; si no, lo arma con las partes.
func (d Database) PostgresDSN() string {
	if d.DSN != "" {
		return d.DSN
	}
	return "host=" + d.Host + " user=" + d.User + " password=" + d.Password + " dbname=" + d.Name + " port=" + d.Port + " sslmode=" + d.SSLMode
}

func getEnv(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}
