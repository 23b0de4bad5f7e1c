package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server         ServerConfig         `yaml:"server"`
	Storage        StorageConfig        `yaml:"storage"`
	Generation     GenerationConfig     `yaml:"generation"`
	RateLimit      RateLimitConfig      `yaml:"rate_limit"`
	CircuitBreaker CircuitBreakerConfig `yaml:"circuit_breaker"`
	Search         SearchConfig         `yaml:"search"`
	Report         ReportConfig         `yaml:"report"`
	Logging        LoggingConfig        `yaml:"logging"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Port         string   `yaml:"port"`
	AllowOrigins []string `yaml:"allow_origins"`
}

// StorageConfig selects the repository backend
type StorageConfig struct {
	// Type is one of memory, sqlite, mysql, postgres
	Type     string         `yaml:"type"`
	SQLite   SQLiteConfig   `yaml:"sqlite"`
	MySQL    MySQLConfig    `yaml:"mysql"`
	Postgres PostgresConfig `yaml:"postgres"`
}

// SQLiteConfig contains SQLite settings
type SQLiteConfig struct {
	Path string `yaml:"path"`
}

// MySQLConfig contains MySQL connection settings
type MySQLConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
}

// PostgresConfig contains PostgreSQL connection settings
type PostgresConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
	SSLMode  string `yaml:"sslmode"`
}

// GenerationConfig contains text generation service settings
type GenerationConfig struct {
	APIKey         string `yaml:"api_key"`
	Model          string `yaml:"model"`
	BaseURL        string `yaml:"base_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
	// Context is the phrase passed to every message draft request
	Context string `yaml:"context"`
}

// RateLimitConfig limits calls to the generation service
type RateLimitConfig struct {
	Enabled           bool `yaml:"enabled"`
	RequestsPerMinute int  `yaml:"requests_per_minute"`
	RequestsPerHour   int  `yaml:"requests_per_hour"`
	RequestsPerDay    int  `yaml:"requests_per_day"`
}

// CircuitBreakerConfig contains breaker settings for the generation service
type CircuitBreakerConfig struct {
	Enabled             bool `yaml:"enabled"`
	ConsecutiveFailures int  `yaml:"consecutive_failures"`
	ResetTimeoutSeconds int  `yaml:"reset_timeout_seconds"`
}

// SearchConfig contains search engine settings
type SearchConfig struct {
	Meilisearch MeilisearchConfig `yaml:"meilisearch"`
}

// MeilisearchConfig contains Meilisearch connection settings
type MeilisearchConfig struct {
	Enabled bool   `yaml:"enabled"`
	Host    string `yaml:"host"`
	APIKey  string `yaml:"api_key"`
}

// ReportConfig schedules the daily dashboard stats report
type ReportConfig struct {
	Enabled      bool   `yaml:"enabled"`
	DailyRunTime string `yaml:"daily_run_time"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level       string `yaml:"level"`
	LogRequests bool   `yaml:"log_requests"`
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         "8080",
			AllowOrigins: []string{"http://localhost:3000", "http://localhost:5173"},
		},
		Storage: StorageConfig{
			Type:   "memory",
			SQLite: SQLiteConfig{Path: "estateflow.db"},
			Postgres: PostgresConfig{
				SSLMode: "disable",
			},
		},
		Generation: GenerationConfig{
			Model:          "gemini-3-flash-preview",
			TimeoutSeconds: 30,
			Context:        "following up on interest",
		},
		RateLimit: RateLimitConfig{
			Enabled:           true,
			RequestsPerMinute: 15,
			RequestsPerHour:   500,
			RequestsPerDay:    1500,
		},
		CircuitBreaker: CircuitBreakerConfig{
			Enabled:             true,
			ConsecutiveFailures: 5,
			ResetTimeoutSeconds: 60,
		},
		Report: ReportConfig{
			Enabled:      false,
			DailyRunTime: "08:00",
		},
		Logging: LoggingConfig{
			Level:       "info",
			LogRequests: true,
		},
	}
}

// LoadConfig loads configuration from a YAML file
func LoadConfig(filepath string) (*Config, error) {
	config := DefaultConfig()

	// If file doesn't exist, return default config
	if _, err := os.Stat(filepath); os.IsNotExist(err) {
		return config, nil
	}

	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// ApplyEnv overrides file values with environment variables when they are set
func (c *Config) ApplyEnv() {
	setString(&c.Server.Port, "PORT")

	setString(&c.Generation.APIKey, "API_KEY")
	setString(&c.Generation.APIKey, "GEMINI_API_KEY")
	setString(&c.Generation.Model, "GEMINI_MODEL")

	setString(&c.Storage.Type, "STORAGE_TYPE")
	setString(&c.Storage.SQLite.Path, "SQLITE_PATH")
	switch c.Storage.Type {
	case "mysql":
		setString(&c.Storage.MySQL.Host, "DB_HOST")
		setInt(&c.Storage.MySQL.Port, "DB_PORT")
		setString(&c.Storage.MySQL.User, "DB_USER")
		setString(&c.Storage.MySQL.Password, "DB_PASSWORD")
		setString(&c.Storage.MySQL.Database, "DB_NAME")
	case "postgres":
		setString(&c.Storage.Postgres.Host, "DB_HOST")
		setInt(&c.Storage.Postgres.Port, "DB_PORT")
		setString(&c.Storage.Postgres.User, "DB_USER")
		setString(&c.Storage.Postgres.Password, "DB_PASSWORD")
		setString(&c.Storage.Postgres.Database, "DB_NAME")
	}

	if setString(&c.Search.Meilisearch.Host, "MEILISEARCH_HOST") {
		c.Search.Meilisearch.Enabled = true
	}
	setString(&c.Search.Meilisearch.APIKey, "MEILISEARCH_KEY")
}

func setString(dst *string, key string) bool {
	if v := os.Getenv(key); v != "" {
		*dst = v
		return true
	}
	return false
}

func setInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

// GetTimeout returns the generation timeout as a duration. Zero means none.
func (c *GenerationConfig) GetTimeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// GetResetTimeout returns how long the breaker stays open
func (c *CircuitBreakerConfig) GetResetTimeout() time.Duration {
	return time.Duration(c.ResetTimeoutSeconds) * time.Second
}
