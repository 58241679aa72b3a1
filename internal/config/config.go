package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Server
	Port        string
	CORSOrigins []string
	Env         string

	// Quote defaults
	WindowYears        int
	PropertyTaxRatePct float64

	// Report storage
	ReportStore string // "local" or "s3"
	ReportDir   string

	// S3 Storage
	S3 S3Config
}

// S3Config holds AWS S3 configuration
type S3Config struct {
	Region          string
	Bucket          string
	AccessKeyID     string
	SecretAccessKey string
	Endpoint        string // Optional: for MinIO/LocalStack local dev
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	cfg := &Config{
		Port:               getEnv("PORT", "8080"),
		CORSOrigins:        strings.Split(getEnv("CORS_ORIGINS", "http://localhost:3000"), ","),
		Env:                getEnv("ENV", "development"),
		WindowYears:        getEnvInt("WINDOW_YEARS", 7),
		PropertyTaxRatePct: getEnvFloat("PROPERTY_TAX_RATE", 1.25),
		ReportStore:        getEnv("REPORT_STORE", "local"),
		ReportDir:          getEnv("REPORT_DIR", "reports"),
		S3: S3Config{
			Region:          getEnv("S3_REGION", "us-east-1"),
			Bucket:          getEnv("S3_BUCKET", "casaplan-reports"),
			AccessKeyID:     getEnv("AWS_ACCESS_KEY_ID", ""),
			SecretAccessKey: getEnv("AWS_SECRET_ACCESS_KEY", ""),
			Endpoint:        getEnv("S3_ENDPOINT", ""), // Empty = use AWS, set for MinIO/LocalStack
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.WindowYears < 1 {
		return fmt.Errorf("WINDOW_YEARS must be at least 1")
	}
	if c.PropertyTaxRatePct < 0 {
		return fmt.Errorf("PROPERTY_TAX_RATE must not be negative")
	}
	if c.ReportStore != "local" && c.ReportStore != "s3" {
		return fmt.Errorf("REPORT_STORE must be \"local\" or \"s3\"")
	}
	if c.ReportStore == "s3" && c.S3.Bucket == "" {
		return fmt.Errorf("S3_BUCKET is required when REPORT_STORE is \"s3\"")
	}
	return nil
}

// WindowMonths returns the configured summary window in months.
func (c *Config) WindowMonths() int {
	return c.WindowYears * 12
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}
