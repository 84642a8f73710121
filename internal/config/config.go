package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Storage driver names accepted in STORAGE_DRIVER.
const (
	DriverFile     = "file"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	GinMode string
	Port    string
	TZ      string

	// Generative-language service. An empty key is passed through and
	// rejected by the service, never pre-validated here.
	GeminiAPIKey string
	GeminiModel  string

	// Snapshot storage.
	StorageDriver string
	LibraryFile   string
	SQLitePath    string
	DBHost        string
	DBPort        string
	DBUser        string
	DBPass        string
	DBName        string
	DBSSLMode     string
}

func Load() *Config {
	if getenv("GIN_MODE", "debug") == "debug" {
		if err := godotenv.Load(); err != nil {
			log.Printf("no .env file loaded: %v", err)
		}
	}

	cfg := &Config{
		GinMode:       getenv("GIN_MODE", "debug"),
		Port:          getenv("PORT", "8080"),
		TZ:            getenv("TZ", "UTC"),
		GeminiAPIKey:  os.Getenv("GEMINI_API_KEY"),
		GeminiModel:   getenv("GEMINI_MODEL", ""),
		StorageDriver: getenv("STORAGE_DRIVER", DriverFile),
		LibraryFile:   getenv("LIBRARY_FILE", "library.json"),
		SQLitePath:    getenv("SQLITE_PATH", "library.db"),
		DBHost:        getenv("DB_HOST", "localhost"),
		DBPort:        getenv("DB_PORT", "5432"),
		DBUser:        getenv("DB_USER", "postgres"),
		DBPass:        getenv("DB_PASS", ""),
		DBName:        getenv("DB_NAME", "readingnest"),
		DBSSLMode:     os.Getenv("DB_SSLMODE"),
	}

	if cfg.DBSSLMode == "" {
		if cfg.GinMode == "release" {
			cfg.DBSSLMode = "require"
		} else {
			cfg.DBSSLMode = "disable"
		}
	}

	return cfg
}

func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		c.DBHost,
		c.DBUser,
		c.DBPass,
		c.DBName,
		c.DBPort,
		c.DBSSLMode,
		c.TZ,
	)
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
