package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// StorageDriver selects the persistence strategy.
type StorageDriver string

const (
	// StorageLocal persists the full aggregate state to a SQLite file on
	// every mutation, atomically.
	StorageLocal StorageDriver = "local"
	// StorageRemote syncs fine-grained mutations to a Postgres database
	// with Supabase-shaped tables.
	StorageRemote StorageDriver = "remote"
)

// Config holds application configuration
type Config struct {
	// Server
	Port string
	Env  string

	// Storage
	Driver     StorageDriver
	SQLitePath string

	// Remote database (STORAGE_DRIVER=remote)
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Auth. When OwnerPasswordHash is empty, authentication is disabled;
	// that is the expected setup for a purely local instance.
	OwnerPasswordHash string
	JWTSecret         string
	JWTExpirationDur  time.Duration
}

var appConfig *Config

// Load loads configuration from environment variables
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	config := &Config{
		Port: getEnv("PORT", "8080"),
		Env:  getEnv("ENV", "development"),

		Driver:     StorageDriver(getEnv("STORAGE_DRIVER", string(StorageLocal))),
		SQLitePath: getEnv("SQLITE_PATH", "duitku.db"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "duitku"),
		DBPassword: getEnv("DB_PASSWORD", "duitku"),
		DBName:     getEnv("DB_NAME", "duitku"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		OwnerPasswordHash: getEnv("OWNER_PASSWORD_HASH", ""),
		JWTSecret:         getEnv("JWT_SECRET", "fallback-secret-key-for-dev-only"),
	}

	if config.Driver != StorageLocal && config.Driver != StorageRemote {
		return nil, fmt.Errorf("invalid STORAGE_DRIVER %q (use local or remote)", config.Driver)
	}

	expStr := getEnv("JWT_EXPIRES_IN", "24h")
	expDur, err := time.ParseDuration(expStr)
	if err != nil {
		log.Printf("Warning: invalid JWT_EXPIRES_IN value '%s', falling back to 24h\n", expStr)
		expDur = 24 * time.Hour
	}
	config.JWTExpirationDur = expDur

	appConfig = config
	return config, nil
}

// Get returns the application configuration
func Get() *Config {
	if appConfig == nil {
		var err error
		appConfig, err = Load()
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
	}
	return appConfig
}

// AuthEnabled reports whether the API requires a bearer token.
func (c *Config) AuthEnabled() bool {
	return c.OwnerPasswordHash != ""
}

// PostgresDSN returns the remote database connection string.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode)
}

// PostgresURL returns the migration-style URL for the remote database.
func (c *Config) PostgresURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode)
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
