package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DBPath          string
	RedisHost       string
	RedisPort       string
	SessionSecret   string
	GinMode         string
	Port            string
	PasswordHashing bool
}

func Load() *Config {
	// Missing .env is fine; real environment variables still apply.
	_ = godotenv.Load()

	return &Config{
		DBPath:          getEnv("DB_PATH", "sems.db"),
		RedisHost:       getEnv("REDIS_HOST", ""),
		RedisPort:       getEnv("REDIS_PORT", "6379"),
		SessionSecret:   getEnv("SESSION_SECRET", "default-secret-key-change-me"),
		GinMode:         getEnv("GIN_MODE", "debug"),
		Port:            getEnv("PORT", "8080"),
		PasswordHashing: getEnv("PASSWORD_HASHING", "false") == "true",
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
