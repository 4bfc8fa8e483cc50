// Package config loads application configuration from environment variables.
package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Storage driver names accepted in STORAGE_DRIVER.
const (
	DriverDisk = "disk"
	DriverS3   = "s3"
)

// Config holds all runtime configuration for the service.
type Config struct {
	Port   string
	AppEnv string

	// PublicBaseURL is the CDN origin prefix baked into upload responses,
	// e.g. "https://cdn.example.com".
	PublicBaseURL string

	// StorageDriver selects the blob backend: "disk" (default) or "s3".
	StorageDriver string

	// Disk driver
	StorageRoot string

	// S3 driver (S3-compatible: MinIO locally, ArvanCloud in production)
	StorageEndpoint  string
	StorageAccessKey string
	StorageSecretKey string
	StorageBucket    string
	StorageUseSSL    bool
}

// Load reads configuration from a .env file (if present) and environment variables.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, reading from environment")
	}

	return &Config{
		Port:   getEnv("PORT", "8080"),
		AppEnv: getEnv("APP_ENV", "development"),

		PublicBaseURL: getEnv("PUBLIC_BASE_URL", "http://localhost:8080"),

		StorageDriver: getEnv("STORAGE_DRIVER", DriverDisk),
		StorageRoot:   getEnv("STORAGE_ROOT", "./uploads"),

		StorageEndpoint:  getEnv("STORAGE_ENDPOINT", "localhost:9000"),
		StorageAccessKey: getEnv("STORAGE_ACCESS_KEY", "minioadmin"),
		StorageSecretKey: getEnv("STORAGE_SECRET_KEY", "minioadmin"),
		StorageBucket:    getEnv("STORAGE_BUCKET", "media"),
		StorageUseSSL:    getEnv("STORAGE_USE_SSL", "false") == "true",
	}
}

// IsProduction returns true when the app is running in production mode.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
