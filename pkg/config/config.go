package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-pkgz/lgr"
	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server     ServerConfig     `yaml:"server" json:"server" jsonschema:"description=Server configuration"`
	Database   DatabaseConfig   `yaml:"database" json:"database" jsonschema:"description=Database configuration"`
	Engine     EngineConfig     `yaml:"engine" json:"engine" jsonschema:"description=Rule engine configuration"`
	Schedule   ScheduleConfig   `yaml:"schedule" json:"schedule" jsonschema:"description=Scheduler configuration"`
	Extraction ExtractionConfig `yaml:"extraction" json:"extraction" jsonschema:"description=Feature extraction configuration"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
	Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
}

// DatabaseConfig holds SQLite settings
type DatabaseConfig struct {
	DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:autocat.db?cache=shared&mode=rwc,description=Database connection string"`
	MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
	MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
	ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
}

// EngineConfig holds rule execution and statistics settings
type EngineConfig struct {
	AutoAssignThreshold *float64      `yaml:"auto_assign_threshold" json:"auto_assign_threshold" jsonschema:"default=0.8,exclusiveMinimum=0,maximum=1,description=Confidence a match has to exceed to be auto-assigned"`
	SuccessThreshold    *float64      `yaml:"success_threshold" json:"success_threshold" jsonschema:"default=0.5,exclusiveMinimum=0,maximum=1,description=Confidence above which a ledger entry counts as successful"`
	StatsWindow         int           `yaml:"stats_window" json:"stats_window" jsonschema:"default=100,minimum=1,description=Number of recent ledger entries statistics are computed over"`
	RecentExecutions    int           `yaml:"recent_executions" json:"recent_executions" jsonschema:"default=10,minimum=1,description=Number of ledger entries returned with statistics"`
	RunTimeout          time.Duration `yaml:"run_timeout" json:"run_timeout" jsonschema:"default=30s,description=Time limit for running all rules against one content item"`
}

// ScheduleConfig holds background job settings
type ScheduleConfig struct {
	Disabled               bool          `yaml:"disabled" json:"disabled" jsonschema:"default=false,description=Disable background jobs"`
	AutocategorizeInterval time.Duration `yaml:"autocategorize_interval" json:"autocategorize_interval" jsonschema:"default=1h,description=How often uncategorized content is processed"`
	Lookback               time.Duration `yaml:"lookback" json:"lookback" jsonschema:"default=24h,description=How far back uncategorized content is selected"`
	BatchLimit             int           `yaml:"batch_limit" json:"batch_limit" jsonschema:"default=500,minimum=1,description=Maximum content items per batch"`
	CleanupInterval        time.Duration `yaml:"cleanup_interval" json:"cleanup_interval" jsonschema:"default=24h,description=How often old ledger entries are pruned"`
	RetentionDays          int           `yaml:"retention_days" json:"retention_days" jsonschema:"default=30,minimum=1,description=Days of ledger history to keep"`
	RetryAttempts          int           `yaml:"retry_attempts" json:"retry_attempts" jsonschema:"default=3,minimum=1,description=Attempts for committing a category assignment while storage is busy"`
	RetryInitialDelay      time.Duration `yaml:"retry_initial_delay" json:"retry_initial_delay" jsonschema:"default=100ms,description=Initial retry delay"`
	RetryMaxDelay          time.Duration `yaml:"retry_max_delay" json:"retry_max_delay" jsonschema:"default=2s,description=Maximum retry delay"`
}

// ExtractionConfig holds feature extraction settings
type ExtractionConfig struct {
	LexiconFile    string `yaml:"lexicon_file" json:"lexicon_file" jsonschema:"description=Custom lexicon YAML file, the embedded lexicon is used if empty"`
	MaxKeywords    int    `yaml:"max_keywords" json:"max_keywords" jsonschema:"default=20,minimum=1,description=Maximum keywords kept per text"`
	WordsPerMinute int    `yaml:"words_per_minute" json:"words_per_minute" jsonschema:"default=200,minimum=1,description=Reading speed for reading time estimation"`
	TopicCount     int    `yaml:"topic_count" json:"topic_count" jsonschema:"default=5,minimum=1,description=Number of topics kept per text"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.setDefaults()

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// verify against embedded schema
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		// schema validation is supplementary
		lgr.Printf("[WARN] schema validation failed: %v", err)
	}

	return &cfg, nil
}

func (c *Config) setDefaults() {
	// server
	if c.Server.Listen == "" {
		c.Server.Listen = ":8080"
	}
	if c.Server.Timeout == 0 {
		c.Server.Timeout = 30 * time.Second
	}

	// database
	if c.Database.DSN == "" {
		c.Database.DSN = "file:autocat.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 10
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 3600
	}

	// engine
	// thresholds are pointers, an explicit zero is kept and rejected by validate
	if c.Engine.AutoAssignThreshold == nil {
		c.Engine.AutoAssignThreshold = floatPtr(0.8)
	}
	if c.Engine.SuccessThreshold == nil {
		c.Engine.SuccessThreshold = floatPtr(0.5)
	}
	if c.Engine.StatsWindow == 0 {
		c.Engine.StatsWindow = 100
	}
	if c.Engine.RecentExecutions == 0 {
		c.Engine.RecentExecutions = 10
	}
	if c.Engine.RunTimeout == 0 {
		c.Engine.RunTimeout = 30 * time.Second
	}

	// schedule
	if c.Schedule.AutocategorizeInterval == 0 {
		c.Schedule.AutocategorizeInterval = time.Hour
	}
	if c.Schedule.Lookback == 0 {
		c.Schedule.Lookback = 24 * time.Hour
	}
	if c.Schedule.BatchLimit == 0 {
		c.Schedule.BatchLimit = 500
	}
	if c.Schedule.CleanupInterval == 0 {
		c.Schedule.CleanupInterval = 24 * time.Hour
	}
	if c.Schedule.RetentionDays == 0 {
		c.Schedule.RetentionDays = 30
	}
	if c.Schedule.RetryAttempts == 0 {
		c.Schedule.RetryAttempts = 3
	}
	if c.Schedule.RetryInitialDelay == 0 {
		c.Schedule.RetryInitialDelay = 100 * time.Millisecond
	}
	if c.Schedule.RetryMaxDelay == 0 {
		c.Schedule.RetryMaxDelay = 2 * time.Second
	}

	// extraction
	if c.Extraction.MaxKeywords == 0 {
		c.Extraction.MaxKeywords = 20
	}
	if c.Extraction.WordsPerMinute == 0 {
		c.Extraction.WordsPerMinute = 200
	}
	if c.Extraction.TopicCount == 0 {
		c.Extraction.TopicCount = 5
	}
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	// server
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}

	// engine
	if !inUnitRange(cfg.Engine.AutoAssignThreshold) {
		return fmt.Errorf("engine.auto_assign_threshold must be above 0 and at most 1")
	}
	if !inUnitRange(cfg.Engine.SuccessThreshold) {
		return fmt.Errorf("engine.success_threshold must be above 0 and at most 1")
	}
	if cfg.Engine.StatsWindow < 1 || cfg.Engine.RecentExecutions < 1 {
		return fmt.Errorf("engine.stats_window and engine.recent_executions must be positive")
	}
	if cfg.Engine.RunTimeout < 100*time.Millisecond {
		return fmt.Errorf("engine.run_timeout must be at least 100ms")
	}

	// schedule
	if cfg.Schedule.AutocategorizeInterval < time.Second || cfg.Schedule.CleanupInterval < time.Second {
		return fmt.Errorf("schedule intervals must be at least 1 second")
	}
	if cfg.Schedule.Lookback < 0 {
		return fmt.Errorf("schedule.lookback must be non-negative")
	}
	if cfg.Schedule.BatchLimit < 1 {
		return fmt.Errorf("schedule.batch_limit must be at least 1")
	}
	if cfg.Schedule.RetentionDays < 1 {
		return fmt.Errorf("schedule.retention_days must be at least 1")
	}
	if cfg.Schedule.RetryAttempts < 1 {
		return fmt.Errorf("schedule.retry_attempts must be at least 1")
	}

	// extraction
	if cfg.Extraction.MaxKeywords < 1 || cfg.Extraction.WordsPerMinute < 1 || cfg.Extraction.TopicCount < 1 {
		return fmt.Errorf("extraction limits must be positive")
	}
	if cfg.Extraction.LexiconFile != "" {
		if _, err := os.Stat(cfg.Extraction.LexiconFile); err != nil {
			return fmt.Errorf("extraction.lexicon_file: %w", err)
		}
	}

	return nil
}

// inUnitRange checks a set value lies in (0, 1]
func inUnitRange(v *float64) bool {
	return v != nil && *v > 0 && *v <= 1
}

func floatPtr(v float64) *float64 { return &v }

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}
