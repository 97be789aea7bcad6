package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	configPath := filepath.Join(t.TempDir(), "test-config.yml")
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0o600))
	return configPath
}

func TestLoad(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		configPath := writeConfig(t, `
server:
  listen: ":9090"
  timeout: 45s
database:
  dsn: "file:test.db"
engine:
  auto_assign_threshold: 0.9
  run_timeout: 5s
schedule:
  autocategorize_interval: 15m
  lookback: 6h
  batch_limit: 100
  retention_days: 7
extraction:
  max_keywords: 10
  words_per_minute: 250
`)
		cfg, err := Load(configPath)
		require.NoError(t, err)
		require.NotNil(t, cfg)

		assert.Equal(t, ":9090", cfg.Server.Listen)
		assert.Equal(t, 45*time.Second, cfg.Server.Timeout)
		assert.Equal(t, "file:test.db", cfg.Database.DSN)
		require.NotNil(t, cfg.Engine.AutoAssignThreshold)
		assert.InDelta(t, 0.9, *cfg.Engine.AutoAssignThreshold, 1e-9)
		assert.Equal(t, 5*time.Second, cfg.Engine.RunTimeout)
		assert.Equal(t, 15*time.Minute, cfg.Schedule.AutocategorizeInterval)
		assert.Equal(t, 6*time.Hour, cfg.Schedule.Lookback)
		assert.Equal(t, 100, cfg.Schedule.BatchLimit)
		assert.Equal(t, 7, cfg.Schedule.RetentionDays)
		assert.Equal(t, 10, cfg.Extraction.MaxKeywords)
		assert.Equal(t, 250, cfg.Extraction.WordsPerMinute)
	})

	t.Run("defaults", func(t *testing.T) {
		cfg, err := Load(writeConfig(t, "server:\n  listen: \":8081\"\n"))
		require.NoError(t, err)

		assert.Equal(t, 30*time.Second, cfg.Server.Timeout)
		assert.Equal(t, "file:autocat.db?cache=shared&mode=rwc&_txlock=immediate", cfg.Database.DSN)
		assert.Equal(t, 10, cfg.Database.MaxOpenConns)
		assert.Equal(t, 5, cfg.Database.MaxIdleConns)
		assert.Equal(t, 3600, cfg.Database.ConnMaxLifetime)

		require.NotNil(t, cfg.Engine.AutoAssignThreshold)
		require.NotNil(t, cfg.Engine.SuccessThreshold)
		assert.InDelta(t, 0.8, *cfg.Engine.AutoAssignThreshold, 1e-9)
		assert.InDelta(t, 0.5, *cfg.Engine.SuccessThreshold, 1e-9)
		assert.Equal(t, 100, cfg.Engine.StatsWindow)
		assert.Equal(t, 10, cfg.Engine.RecentExecutions)
		assert.Equal(t, 30*time.Second, cfg.Engine.RunTimeout)

		assert.False(t, cfg.Schedule.Disabled)
		assert.Equal(t, time.Hour, cfg.Schedule.AutocategorizeInterval)
		assert.Equal(t, 24*time.Hour, cfg.Schedule.Lookback)
		assert.Equal(t, 500, cfg.Schedule.BatchLimit)
		assert.Equal(t, 24*time.Hour, cfg.Schedule.CleanupInterval)
		assert.Equal(t, 30, cfg.Schedule.RetentionDays)
		assert.Equal(t, 3, cfg.Schedule.RetryAttempts)
		assert.Equal(t, 100*time.Millisecond, cfg.Schedule.RetryInitialDelay)
		assert.Equal(t, 2*time.Second, cfg.Schedule.RetryMaxDelay)

		assert.Empty(t, cfg.Extraction.LexiconFile)
		assert.Equal(t, 20, cfg.Extraction.MaxKeywords)
		assert.Equal(t, 200, cfg.Extraction.WordsPerMinute)
		assert.Equal(t, 5, cfg.Extraction.TopicCount)
	})

	t.Run("empty file", func(t *testing.T) {
		cfg, err := Load(writeConfig(t, ""))
		require.NoError(t, err)
		assert.Equal(t, ":8080", cfg.Server.Listen)
	})

	t.Run("env expansion", func(t *testing.T) {
		t.Setenv("AUTOCAT_TEST_DSN", "file:from-env.db")
		cfg, err := Load(writeConfig(t, "database:\n  dsn: ${AUTOCAT_TEST_DSN}\n"))
		require.NoError(t, err)
		assert.Equal(t, "file:from-env.db", cfg.Database.DSN)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load("/nonexistent/config.yml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "read config file")
	})

	t.Run("invalid yaml", func(t *testing.T) {
		_, err := Load(writeConfig(t, "server: [unclosed"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse config")
	})

	t.Run("lexicon file", func(t *testing.T) {
		lexPath := filepath.Join(t.TempDir(), "lexicon.yml")
		require.NoError(t, os.WriteFile(lexPath, []byte("stopwords: [the]\n"), 0o600))
		cfg, err := Load(writeConfig(t, "extraction:\n  lexicon_file: "+lexPath+"\n"))
		require.NoError(t, err)
		assert.Equal(t, lexPath, cfg.Extraction.LexiconFile)
	})
}

func TestLoad_Invalid(t *testing.T) {
	tbl := []struct {
		name   string
		config string
		errMsg string
	}{
		{name: "short server timeout", config: "server:\n  timeout: 500ms\n", errMsg: "server timeout must be at least 1 second"},
		{name: "threshold above one", config: "engine:\n  auto_assign_threshold: 1.5\n", errMsg: "engine.auto_assign_threshold"},
		{name: "negative success threshold", config: "engine:\n  success_threshold: -0.1\n", errMsg: "engine.success_threshold"},
		{name: "zero assign threshold", config: "engine:\n  auto_assign_threshold: 0\n", errMsg: "engine.auto_assign_threshold must be above 0"},
		{name: "zero success threshold", config: "engine:\n  success_threshold: 0\n", errMsg: "engine.success_threshold must be above 0"},
		{name: "negative stats window", config: "engine:\n  stats_window: -1\n", errMsg: "engine.stats_window"},
		{name: "tiny run timeout", config: "engine:\n  run_timeout: 1ms\n", errMsg: "engine.run_timeout"},
		{name: "tiny interval", config: "schedule:\n  autocategorize_interval: 10ms\n", errMsg: "schedule intervals"},
		{name: "negative lookback", config: "schedule:\n  lookback: -1h\n", errMsg: "schedule.lookback"},
		{name: "negative batch limit", config: "schedule:\n  batch_limit: -5\n", errMsg: "schedule.batch_limit"},
		{name: "negative retention", config: "schedule:\n  retention_days: -1\n", errMsg: "schedule.retention_days"},
		{name: "negative retry attempts", config: "schedule:\n  retry_attempts: -2\n", errMsg: "schedule.retry_attempts"},
		{name: "negative keywords", config: "extraction:\n  max_keywords: -1\n", errMsg: "extraction limits"},
		{name: "missing lexicon", config: "extraction:\n  lexicon_file: /nonexistent/lexicon.yml\n", errMsg: "extraction.lexicon_file"},
	}

	for _, tt := range tbl {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.config))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "validate config")
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestConfig_GetServerConfig(t *testing.T) {
	cfg := &Config{Server: ServerConfig{Listen: ":9999", Timeout: time.Minute}}
	listen, timeout := cfg.GetServerConfig()
	assert.Equal(t, ":9999", listen)
	assert.Equal(t, time.Minute, timeout)
}
