package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL string
	Port        string
	Timezone    string
	LogLevel    string
	LogFile     string
	StaticDir   string
}

// Load reads settings from the environment. A .env file in the working
// directory is applied first; variables already set take precedence.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		DatabaseURL: getEnv("DATABASE_URL", "tracker.db"),
		Port:        getEnv("PORT", "8080"),
		Timezone:    getEnv("TIMEZONE", "Local"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFile:     getEnv("LOG_FILE", ""),
		StaticDir:   getEnv("STATIC_DIR", ""),
	}
}

// Location resolves Timezone, falling back to the server's local zone.
func (c *Config) Location() *time.Location {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
