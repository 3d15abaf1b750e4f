// Package config provides configuration management functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	DataDir              string // Base directory for all databases (always absolute)
	LogLevel             string
	Port                 int
	DevMode              bool
	AnalysisEndpointURL  string // Empty means generated research data only
	AnalysisAPIKey       string
	AnalysisTimeout      time.Duration
	TickSchedule         string
	CacheCleanupSchedule string
	CacheTTL             time.Duration
	Backup               *BackupConfig
}

// BackupConfig holds database backup settings for S3-compatible storage
type BackupConfig struct {
	Endpoint        string // Custom endpoint (R2, MinIO); empty uses AWS
	Region          string
	Bucket          string // Empty disables backups
	AccessKeyID     string
	SecretAccessKey string
	Prefix          string
	Schedule        string
	RetentionDays   int
}

// Enabled reports whether backups have somewhere to go
func (b *BackupConfig) Enabled() bool {
	return b != nil && b.Bucket != ""
}

// SettingsGetter reads a stored setting
type SettingsGetter interface {
	Get(key string) (*string, error)
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	absDataDir, err := filepath.Abs(getEnv("BAZAAR_DATA_DIR", "./data"))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve data directory path: %w", err)
	}

	if err := os.MkdirAll(absDataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	cfg := &Config{
		DataDir:              absDataDir,
		Port:                 getEnvAsInt("PORT", 8001),
		LogLevel:             getEnv("LOG_LEVEL", "info"),
		DevMode:              getEnvAsBool("DEV_MODE", false),
		AnalysisEndpointURL:  strings.TrimSpace(getEnv("ANALYSIS_ENDPOINT_URL", "")),
		AnalysisAPIKey:       getEnv("ANALYSIS_API_KEY", ""),
		AnalysisTimeout:      time.Duration(getEnvAsInt("ANALYSIS_TIMEOUT_SECONDS", 20)) * time.Second,
		TickSchedule:         getEnv("TICK_SCHEDULE", "@every 30s"),
		CacheCleanupSchedule: getEnv("CACHE_CLEANUP_SCHEDULE", "@daily"),
		CacheTTL:             time.Duration(getEnvAsInt("CACHE_TTL_MINUTES", 60)) * time.Minute,
		Backup:               loadBackupConfig(),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// UpdateFromSettings lets a stored analysis API key override the environment.
// Empty stored values keep the environment value.
func (c *Config) UpdateFromSettings(settings SettingsGetter) error {
	apiKey, err := settings.Get("analysis_api_key")
	if err != nil {
		return fmt.Errorf("failed to get analysis_api_key from settings: %w", err)
	}
	if apiKey != nil && *apiKey != "" {
		c.AnalysisAPIKey = *apiKey
	}
	return nil
}

// Validate checks that the configuration is usable
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d: must be between 1 and 65535", c.Port)
	}
	if strings.TrimSpace(c.TickSchedule) == "" {
		return errors.New("tick schedule must not be empty")
	}
	if strings.TrimSpace(c.CacheCleanupSchedule) == "" {
		return errors.New("cache cleanup schedule must not be empty")
	}
	if c.AnalysisTimeout <= 0 {
		return errors.New("analysis timeout must be positive")
	}
	if c.CacheTTL <= 0 {
		return errors.New("cache TTL must be positive")
	}
	if c.Backup.Enabled() {
		if c.Backup.AccessKeyID == "" || c.Backup.SecretAccessKey == "" {
			return errors.New("backup bucket set without access credentials")
		}
		if c.Backup.RetentionDays < 1 {
			return fmt.Errorf("invalid backup retention %d: must be at least 1 day", c.Backup.RetentionDays)
		}
	}
	return nil
}

func loadBackupConfig() *BackupConfig {
	return &BackupConfig{
		Endpoint:        getEnv("BACKUP_S3_ENDPOINT", ""),
		Region:          getEnv("BACKUP_S3_REGION", "auto"),
		Bucket:          getEnv("BACKUP_S3_BUCKET", ""),
		AccessKeyID:     getEnv("BACKUP_S3_ACCESS_KEY_ID", ""),
		SecretAccessKey: getEnv("BACKUP_S3_SECRET_ACCESS_KEY", ""),
		Prefix:          getEnv("BACKUP_S3_PREFIX", "bazaar-backups/"),
		Schedule:        getEnv("BACKUP_SCHEDULE", "0 0 3 * * *"),
		RetentionDays:   getEnvAsInt("BACKUP_RETENTION_DAYS", 14),
	}
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
