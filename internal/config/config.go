package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	JWT       JWTConfig       `yaml:"jwt"`
	Admin     AdminConfig     `yaml:"admin"`
	RateLimit RateLimitConfig `yaml:"ratelimit"`
	Log       LogConfig       `yaml:"log"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// DatabaseConfig contains PostgreSQL connection settings
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
	SSLMode  string `yaml:"ssl_mode"`
}

// JWTConfig contains JWT token settings
type JWTConfig struct {
	Secret           string `yaml:"secret"`
	UserTokenExpiry  int    `yaml:"user_token_expiry_days"`
	AdminTokenExpiry int    `yaml:"admin_token_expiry_days"`
}

// AdminConfig identifies the single oversight account. PasswordHash holds a
// bcrypt hash, never the plaintext password.
type AdminConfig struct {
	ID           string `yaml:"id"`
	PasswordHash string `yaml:"password_hash"`
}

// PairPolicy selects how the per-pair admission check behaves. Two variants
// existed historically; the rolling cooldown is the current default.
type PairPolicy string

const (
	// PairPolicyCooldown denies a request when any request for the same
	// owner/tenant pair was created within the cooldown window.
	PairPolicyCooldown PairPolicy = "cooldown"
	// PairPolicySinglePending denies a request only while a Pending request
	// for the same pair exists (legacy behavior).
	PairPolicySinglePending PairPolicy = "single-pending"
)

// RateLimitConfig contains rent-request admission settings
type RateLimitConfig struct {
	PairPolicy        PairPolicy `yaml:"pair_policy"`
	PairCooldownHours int        `yaml:"pair_cooldown_hours"`
	ActiveWindowHours int        `yaml:"active_window_hours"`
	MaxActivePending  int        `yaml:"max_active_pending"`
	ExpiryDays        int        `yaml:"expiry_days"`
}

// PairCooldown returns the pair cooldown as a duration.
func (c RateLimitConfig) PairCooldown() time.Duration {
	return time.Duration(c.PairCooldownHours) * time.Hour
}

// ActiveWindow returns the quota window as a duration.
func (c RateLimitConfig) ActiveWindow() time.Duration {
	return time.Duration(c.ActiveWindowHours) * time.Hour
}

// Expiry returns the stale-request horizon as a duration.
func (c RateLimitConfig) Expiry() time.Duration {
	return time.Duration(c.ExpiryDays) * 24 * time.Hour
}

// LogConfig contains logging settings
type LogConfig struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `yaml:"format"` // "json" or "text"
}

// SchedulerConfig contains cron schedule settings
type SchedulerConfig struct {
	ExpireStaleRequests string `yaml:"expire_stale_requests"`
}

// Load reads configuration from a YAML file
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Override with environment variables if present
	cfg.overrideWithEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// overrideWithEnv overrides config values with environment variables
func (c *Config) overrideWithEnv() {
	// Database
	if val := os.Getenv("DB_HOST"); val != "" {
		c.Database.Host = val
	}
	if val := os.Getenv("DB_PORT"); val != "" {
		fmt.Sscanf(val, "%d", &c.Database.Port)
	}
	if val := os.Getenv("DB_USER"); val != "" {
		c.Database.User = val
	}
	if val := os.Getenv("DB_PASSWORD"); val != "" {
		c.Database.Password = val
	}
	if val := os.Getenv("DB_NAME"); val != "" {
		c.Database.Database = val
	}
	if val := os.Getenv("DB_SSL_MODE"); val != "" {
		c.Database.SSLMode = val
	}

	// JWT
	if val := os.Getenv("JWT_SECRET"); val != "" {
		c.JWT.Secret = val
	}

	// Admin
	if val := os.Getenv("ADMIN_ID"); val != "" {
		c.Admin.ID = val
	}
	if val := os.Getenv("ADMIN_PASSWORD_HASH"); val != "" {
		c.Admin.PasswordHash = val
	}

	// Server
	if val := os.Getenv("SERVER_HOST"); val != "" {
		c.Server.Host = val
	}
	if val := os.Getenv("SERVER_PORT"); val != "" {
		fmt.Sscanf(val, "%d", &c.Server.Port)
	}

	// Log
	if val := os.Getenv("LOG_LEVEL"); val != "" {
		c.Log.Level = val
	}
	if val := os.Getenv("LOG_FORMAT"); val != "" {
		c.Log.Format = val
	}

	// Rate limit policy
	if val := os.Getenv("PAIR_POLICY"); val != "" {
		c.RateLimit.PairPolicy = PairPolicy(strings.ToLower(val))
	}

	// Set defaults for log if not configured
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	// Server validation
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	// Database validation
	if c.Database.Host == "" {
		return fmt.Errorf("database host is required")
	}
	if c.Database.User == "" {
		return fmt.Errorf("database user is required")
	}
	if c.Database.Database == "" {
		return fmt.Errorf("database name is required")
	}

	// JWT validation
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT secret is required")
	}
	if len(c.JWT.Secret) < 32 {
		return fmt.Errorf("JWT secret must be at least 32 characters")
	}
	if c.JWT.UserTokenExpiry == 0 {
		c.JWT.UserTokenExpiry = 30
	}
	if c.JWT.AdminTokenExpiry == 0 {
		c.JWT.AdminTokenExpiry = 5
	}

	// Admin validation
	if c.Admin.ID == "" {
		return fmt.Errorf("admin id is required")
	}
	if c.Admin.PasswordHash == "" {
		return fmt.Errorf("admin password hash is required")
	}

	// Rate limit defaults
	if c.RateLimit.PairPolicy == "" {
		c.RateLimit.PairPolicy = PairPolicyCooldown
	}
	if c.RateLimit.PairPolicy != PairPolicyCooldown && c.RateLimit.PairPolicy != PairPolicySinglePending {
		return fmt.Errorf("invalid pair policy: %s", c.RateLimit.PairPolicy)
	}
	if c.RateLimit.PairCooldownHours == 0 {
		c.RateLimit.PairCooldownHours = 24
	}
	if c.RateLimit.ActiveWindowHours == 0 {
		c.RateLimit.ActiveWindowHours = 24
	}
	if c.RateLimit.MaxActivePending == 0 {
		c.RateLimit.MaxActivePending = 2
	}
	if c.RateLimit.ExpiryDays == 0 {
		c.RateLimit.ExpiryDays = 5
	}

	// Scheduler defaults
	if c.Scheduler.ExpireStaleRequests == "" {
		c.Scheduler.ExpireStaleRequests = "0 0 2 * * *" // 2 AM UTC
	}

	return nil
}

// GetDatabaseConnectionString returns a PostgreSQL connection string
func (c *Config) GetDatabaseConnectionString() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Database,
		c.Database.SSLMode,
	)
}

// GetServerAddress returns the HTTP server address
func (c *Config) GetServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
