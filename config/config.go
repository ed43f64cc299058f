package config

import (
	"errors"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the client layer's settings
type Config struct {
	APIBaseURL     string
	LogLevel       string
	RequestTimeout time.Duration
	MaxAttempts    int
	RetryBackoff   time.Duration
	Debug          bool
}

// AppConfig is the global configuration
var AppConfig Config

// Init loads .env (if present) and the environment into AppConfig
func Init() error {
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: could not load .env file: %v", err)
	}

	AppConfig = Config{
		APIBaseURL:     getEnv("API_BASE_URL", "http://localhost:8080"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		RequestTimeout: getEnvAsDuration("REQUEST_TIMEOUT", 10*time.Second),
		MaxAttempts:    getEnvAsInt("API_MAX_ATTEMPTS", 1),
		RetryBackoff:   getEnvAsDuration("RETRY_BACKOFF", 500*time.Millisecond),
		Debug:          getEnvAsBool("DEBUG", false),
	}

	if AppConfig.Debug {
		AppConfig.LogLevel = "debug"
	}

	return validateConfig(AppConfig)
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultVal int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultVal
}

func getEnvAsBool(key string, defaultVal bool) bool {
	valStr := getEnv(key, "")
	if val, err := strconv.ParseBool(valStr); err == nil {
		return val
	}
	return defaultVal
}

func getEnvAsDuration(key string, defaultVal time.Duration) time.Duration {
	valStr := getEnv(key, "")
	if val, err := time.ParseDuration(valStr); err == nil {
		return val
	}
	return defaultVal
}

func validateConfig(cfg Config) error {
	if cfg.APIBaseURL == "" {
		return errors.New("API_BASE_URL is empty")
	}
	if cfg.RequestTimeout <= 0 {
		return errors.New("REQUEST_TIMEOUT must be positive")
	}
	if cfg.MaxAttempts < 1 {
		return errors.New("API_MAX_ATTEMPTS must be at least 1")
	}
	return nil
}
