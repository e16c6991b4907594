package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	// Database Configuration
	MongoURI string
	DBName   string

	// Security Configuration
	SecretKey string

	// Server Configuration
	Port string
}

// LoadConfig loads the configuration from environment variables.
// A .env file is optional; deployed environments set the variables directly.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		MongoURI:  getEnvOrDefault("MONGODB_URI", ""),
		DBName:    getEnvOrDefault("DB_NAME", "watchlist"),
		SecretKey: getEnvOrDefault("SECRET_KEY", ""),
		Port:      getEnvOrDefault("PORT", "8080"),
	}

	if cfg.MongoURI == "" {
		return nil, fmt.Errorf("MONGODB_URI is not set")
	}
	if cfg.SecretKey == "" {
		return nil, fmt.Errorf("SECRET_KEY is not set")
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
