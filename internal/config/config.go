package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

const (
	StorageFile   = "file"
	StorageSQLite = "sqlite"
)

type Config struct {
	DataDir     string
	Storage     string // StorageFile or StorageSQLite
	LogLevel    string
	SeedCatalog bool
}

func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	dataDir := getEnv("GYMTRACKER_DATA_DIR", "")
	if dataDir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("unable to resolve data directory: %w", err)
		}
		dataDir = filepath.Join(base, "gymtracker")
	}

	storage := strings.ToLower(strings.TrimSpace(getEnv("GYMTRACKER_STORAGE", StorageFile)))
	switch storage {
	case StorageFile, StorageSQLite:
	default:
		return nil, fmt.Errorf("unknown storage backend %q", storage)
	}

	return &Config{
		DataDir:     dataDir,
		Storage:     storage,
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		SeedCatalog: getEnvBool("GYMTRACKER_SEED_CATALOG", true),
	}, nil
}

// SQLitePath is where the sqlite backend keeps its database file.
func (c *Config) SQLitePath() string {
	return filepath.Join(c.DataDir, "gymtracker.db")
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return fallback
	}

	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		return fallback
	}
}
