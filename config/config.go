package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	ScholarsAPIKey  string
	ScholarsBaseURL string
	GeminiAPIKey    string
	GeminiModel     string
	RequestTimeout  time.Duration
	RequestDelay    time.Duration
	DelayMinRows    int
	ImageDir        string

	DatabaseURL string
	Port        string

	Auth0Domain   string
	Auth0Audience string

	AWSRegion          string
	AWSS3Bucket        string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
}

// Load loads the configuration from environment variables.
// A .env file is honored when present; real environment variables win.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found, using system environment variables")
	}

	config := &Config{
		ScholarsAPIKey:  getEnv("SS_API_KEY", ""),
		ScholarsBaseURL: getEnv("SS_BASE_URL", "https://api.storagescholars.com"),
		GeminiAPIKey:    getEnv("GEMINI_API_KEY", ""),
		GeminiModel:     getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		RequestTimeout:  time.Duration(getEnvInt("REQUEST_TIMEOUT_SECONDS", 10)) * time.Second,
		RequestDelay:    time.Duration(getEnvInt("REQUEST_DELAY_MS", 300)) * time.Millisecond,
		DelayMinRows:    getEnvInt("DELAY_MIN_ROWS", 5),
		ImageDir:        getEnv("IMAGE_DIR", "./images"),

		DatabaseURL: getEnv("DATABASE_URL", ""),
		Port:        getEnv("PORT", "8080"),

		Auth0Domain:   getEnv("AUTH0_DOMAIN", ""),
		Auth0Audience: getEnv("AUTH0_AUDIENCE", ""),

		AWSRegion:          getEnv("AWS_REGION", "us-east-1"),
		AWSS3Bucket:        getEnv("AWS_S3_BUCKET", ""),
		AWSAccessKeyID:     getEnv("AWS_ACCESS_KEY_ID", ""),
		AWSSecretAccessKey: getEnv("AWS_SECRET_ACCESS_KEY", ""),
	}

	return config, nil
}

// ValidateOrderAPI checks that the order-management API credential is set.
// Every command that talks to the order API requires it.
func (c *Config) ValidateOrderAPI() error {
	if c.ScholarsAPIKey == "" {
		return fmt.Errorf("SS_API_KEY is required")
	}
	return nil
}

// ValidateEnrich checks everything the enrich pipeline needs before any row
// is processed. Missing credentials are fatal up front, never mid-batch.
func (c *Config) ValidateEnrich() error {
	if err := c.ValidateOrderAPI(); err != nil {
		return err
	}
	if c.GeminiAPIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY is required")
	}
	return nil
}

// ArchiveEnabled returns true if downloaded images should also be copied to S3
func (c *Config) ArchiveEnabled() bool {
	return c.AWSS3Bucket != ""
}

// AuthEnabled returns true if the review API should require Auth0 JWTs
func (c *Config) AuthEnabled() bool {
	return c.Auth0Domain != "" && c.Auth0Audience != ""
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt retrieves an integer environment variable or returns a default value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Invalid value for %s: %q, using default %d", key, value, defaultValue)
		return defaultValue
	}
	return parsed
}
