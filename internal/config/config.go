package config

import (
	"errors"
	"fmt"
	"os"
)

// Config holds all configuration for the application
type Config struct {
	Port          string
	Origin        string
	Environment   string
	SessionSecret string
	Database      DatabaseConfig
}

// DatabaseConfig holds database connection details
type DatabaseConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	Name     string
	SSLMode  string
	DSN      string
}

// LoadConfig loads configuration from environment variables.
// SESSION_SECRET has no default: session cookies are signed with it, so
// startup fails fast when it is absent.
func LoadConfig() (*Config, error) {
	sessionSecret := os.Getenv("SESSION_SECRET")
	if sessionSecret == "" {
		return nil, errors.New("SESSION_SECRET environment variable is required")
	}

	dbConfig := DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "5432"),
		Username: getEnv("DB_USERNAME", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "clinic"),
		SSLMode:  getEnv("DB_SSLMODE", "disable"),
	}

	dbConfig.DSN = fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		dbConfig.Host, dbConfig.Username, dbConfig.Password, dbConfig.Name, dbConfig.Port, dbConfig.SSLMode)

	return &Config{
		Port:          getEnv("PORT", "3001"),
		Origin:        getEnv("ORIGIN", "http://localhost:5173"),
		Environment:   getEnv("APP_ENV", "development"),
		SessionSecret: sessionSecret,
		Database:      dbConfig,
	}, nil
}

// IsProduction reports whether the server runs in production mode.
// Production mode enables the Secure flag on the session cookie.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// Helper function to get environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
