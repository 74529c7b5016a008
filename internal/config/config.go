// Package config loads application configuration from the environment.
// A .env file is read when present (local development); real deployments
// set variables directly. Collaborators receive their sections explicitly —
// nothing in the codebase reads the environment after Load returns.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config is the full application configuration.
type Config struct {
	Port   string
	AI     AIConfig
	R2     R2Config
	Upload UploadConfig
}

// AIConfig configures the optional external draft generator.
// An empty Endpoint means the capability is absent — that is a valid,
// fully supported configuration, not an error.
type AIConfig struct {
	Endpoint string
	APIKey   string
	Timeout  time.Duration
}

// R2Config configures Cloudflare R2 (S3-compatible) evidence storage.
// Complete credentials switch the app from local-disk storage to R2.
type R2Config struct {
	AccountID string
	AccessKey string
	SecretKey string
	Bucket    string
	PublicURL string
}

// Configured reports whether every required R2 field is set.
func (c R2Config) Configured() bool {
	return c.AccountID != "" && c.AccessKey != "" && c.SecretKey != "" && c.Bucket != ""
}

// UploadConfig configures local evidence storage.
type UploadConfig struct {
	Dir     string
	BaseURL string
}

// Load reads configuration from the environment, preferring a local
// .env file when one exists.
func Load() (*Config, error) {
	// Missing .env is fine — production sets real env vars.
	_ = godotenv.Load()

	cfg := &Config{
		Port: getEnv("PORT", "8080"),
		AI: AIConfig{
			Endpoint: os.Getenv("AI_DRAFT_ENDPOINT"),
			APIKey:   os.Getenv("AI_DRAFT_API_KEY"),
			Timeout:  15 * time.Second,
		},
		R2: R2Config{
			AccountID: os.Getenv("R2_ACCOUNT_ID"),
			AccessKey: os.Getenv("R2_ACCESS_KEY"),
			SecretKey: os.Getenv("R2_SECRET_KEY"),
			Bucket:    os.Getenv("R2_BUCKET"),
			PublicURL: os.Getenv("R2_PUBLIC_URL"),
		},
		Upload: UploadConfig{
			Dir:     getEnv("UPLOAD_DIR", "uploads"),
			BaseURL: getEnv("UPLOAD_BASE_URL", "/api/files"),
		},
	}

	if raw := os.Getenv("AI_DRAFT_TIMEOUT"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid AI_DRAFT_TIMEOUT %q: %w", raw, err)
		}
		cfg.AI.Timeout = d
	}

	return cfg, nil
}

// getEnv returns the variable's value or a default when unset.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
