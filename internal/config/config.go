package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port       string
	DBDriver   string
	DBPath     string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	JWTSecret  string
	TokenTTL   time.Duration
	Retention  time.Duration
	GinMode    string
}

func Load() *Config {
	return &Config{
		Port:       getEnv("PORT", "3000"),
		DBDriver:   getEnv("DB_DRIVER", "sqlite"),
		DBPath:     getEnv("DB_PATH", "task_tracker.db"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "3306"),
		DBUser:     getEnv("DB_USER", "taskuser"),
		DBPassword: getEnv("DB_PASSWORD", "taskpassword"),
		DBName:     getEnv("DB_NAME", "task_tracker"),
		JWTSecret:  getEnv("JWT_SECRET", "default-secret-key-change-me"),
		TokenTTL:   getDurationEnv("TOKEN_TTL_MINUTES", 60) * time.Minute,
		Retention:  getDurationEnv("RETENTION_DAYS", 30) * 24 * time.Hour,
		GinMode:    getEnv("GIN_MODE", "debug"),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getDurationEnv(key string, defaultValue int) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return time.Duration(defaultValue)
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return time.Duration(defaultValue)
	}
	return time.Duration(n)
}
