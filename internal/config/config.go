package config

import (
	"os"
)

type Config struct {
	Storage StorageConfig
}

type StorageConfig struct {
	// Path is the SQLite database file backing the snapshot store.
	Path string
	// Slot is the snapshot key the event collection is written to.
	Slot string
}

func Load() *Config {
	return &Config{
		Storage: StorageConfig{
			Path: getEnv("DASHBOARD_DB_PATH", "dashboard.db"),
			Slot: getEnv("DASHBOARD_STORAGE_SLOT", "events"),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
