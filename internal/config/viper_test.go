package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearTestEnvVars(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"VISPEND_LOG_LEVEL",
		"VISPEND_LOG_FORMAT",
		"VISPEND_CSV_DELIMITER",
		"VISPEND_OCR_MIN_CONFIDENCE",
		"VISPEND_AI_ENABLED",
		"VISPEND_AI_MODEL",
		"VISPEND_AI_TIMEOUT_SECONDS",
		"VISPEND_ANALYTICS_TREND_DAYS",
		"VISPEND_ANALYTICS_ANOMALY_DAYS",
		"VISPEND_DATA_SNAPSHOT_FILE",
		"VISPEND_DATA_BUDGETS_FILE",
		"GEMINI_API_KEY",
	} {
		if err := os.Unsetenv(key); err != nil {
			t.Fatalf("failed to unset %s: %v", key, err)
		}
	}
}

// chdirTemp runs the rest of the test from an empty directory so no stray
// config file is picked up.
func chdirTemp(t *testing.T) {
	t.Helper()
	originalDir, err := os.Getwd()
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, os.Chdir(originalDir))
	})
	require.NoError(t, os.Chdir(t.TempDir()))
}

func validTestConfig(t *testing.T) *Config {
	t.Helper()
	clearTestEnvVars(t)
	chdirTemp(t)

	config, err := InitializeConfig()
	require.NoError(t, err)
	return config
}

func TestInitializeConfig_Defaults(t *testing.T) {
	config := validTestConfig(t)

	assert.Equal(t, "info", config.Log.Level)
	assert.Equal(t, "text", config.Log.Format)
	assert.Equal(t, ",", config.CSV.Delimiter)
	assert.Equal(t, 0.3, config.OCR.MinConfidence)
	assert.Equal(t, 10, config.OCR.MinTextLength)
	assert.False(t, config.AI.Enabled)
	assert.Equal(t, "gemini-2.0-flash", config.AI.Model)
	assert.Equal(t, 30, config.AI.TimeoutSeconds)
	assert.Equal(t, 30, config.Analytics.TrendDays)
	assert.Equal(t, 30, config.Analytics.AnomalyDays)
	assert.Equal(t, "data/transactions.csv", config.Data.SnapshotFile)
	assert.Equal(t, "", config.Data.BudgetsFile)
}

func TestInitializeConfig_EnvironmentVariables(t *testing.T) {
	clearTestEnvVars(t)
	chdirTemp(t)

	t.Setenv("VISPEND_LOG_LEVEL", "debug")
	t.Setenv("VISPEND_LOG_FORMAT", "json")
	t.Setenv("VISPEND_CSV_DELIMITER", ";")
	t.Setenv("VISPEND_AI_ENABLED", "true")
	t.Setenv("VISPEND_ANALYTICS_TREND_DAYS", "60")
	t.Setenv("VISPEND_DATA_SNAPSHOT_FILE", "override.csv")
	t.Setenv("GEMINI_API_KEY", "test-api-key")

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "debug", config.Log.Level)
	assert.Equal(t, "json", config.Log.Format)
	assert.Equal(t, ";", config.CSV.Delimiter)
	assert.True(t, config.AI.Enabled)
	assert.Equal(t, 60, config.Analytics.TrendDays)
	assert.Equal(t, "override.csv", config.Data.SnapshotFile)
	assert.Equal(t, "test-api-key", config.AI.APIKey)
}

func TestInitializeConfig_ConfigFile(t *testing.T) {
	clearTestEnvVars(t)

	tempDir := t.TempDir()
	configContent := `
log:
  level: "warn"
  format: "json"
csv:
  delimiter: "|"
analytics:
  trend_days: 90
data:
  budgets_file: "budgets.yaml"
`
	require.NoError(t, os.WriteFile(filepath.Join(tempDir, "config.yaml"), []byte(configContent), 0644))

	originalDir, err := os.Getwd()
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, os.Chdir(originalDir))
	})
	require.NoError(t, os.Chdir(tempDir))

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "warn", config.Log.Level)
	assert.Equal(t, "json", config.Log.Format)
	assert.Equal(t, "|", config.CSV.Delimiter)
	assert.Equal(t, 90, config.Analytics.TrendDays)
	assert.Equal(t, "budgets.yaml", config.Data.BudgetsFile)
	// Values the file does not mention keep their defaults.
	assert.Equal(t, 0.3, config.OCR.MinConfidence)
}

func TestInitializeConfig_EnvOverridesFile(t *testing.T) {
	clearTestEnvVars(t)

	tempDir := t.TempDir()
	configContent := `
log:
  level: "warn"
csv:
  delimiter: "|"
`
	require.NoError(t, os.WriteFile(filepath.Join(tempDir, "config.yaml"), []byte(configContent), 0644))

	t.Setenv("VISPEND_LOG_LEVEL", "error")
	t.Setenv("GEMINI_API_KEY", "env-api-key")

	originalDir, err := os.Getwd()
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, os.Chdir(originalDir))
	})
	require.NoError(t, os.Chdir(tempDir))

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "error", config.Log.Level) // env var wins
	assert.Equal(t, "|", config.CSV.Delimiter) // config file value
	assert.Equal(t, "env-api-key", config.AI.APIKey)
}

func TestValidateConfig_InvalidValues(t *testing.T) {
	tests := []struct {
		name         string
		modifyConfig func(*Config)
		expectError  string
	}{
		{
			name:         "invalid log level",
			modifyConfig: func(c *Config) { c.Log.Level = "invalid" },
			expectError:  "invalid log level",
		},
		{
			name:         "invalid log format",
			modifyConfig: func(c *Config) { c.Log.Format = "invalid" },
			expectError:  "invalid log format",
		},
		{
			name:         "invalid CSV delimiter",
			modifyConfig: func(c *Config) { c.CSV.Delimiter = "abc" },
			expectError:  "CSV delimiter must be a single character",
		},
		{
			name:         "OCR confidence out of range",
			modifyConfig: func(c *Config) { c.OCR.MinConfidence = 1.5 },
			expectError:  "ocr.min_confidence must be between 0.0 and 1.0",
		},
		{
			name:         "negative OCR text length",
			modifyConfig: func(c *Config) { c.OCR.MinTextLength = -1 },
			expectError:  "ocr.min_text_length must not be negative",
		},
		{
			name: "AI enabled without API key",
			modifyConfig: func(c *Config) {
				c.AI.Enabled = true
				c.AI.APIKey = ""
			},
			expectError: "GEMINI_API_KEY required when AI is enabled",
		},
		{
			name: "invalid timeout seconds",
			modifyConfig: func(c *Config) {
				c.AI.Enabled = true
				c.AI.APIKey = "test-key"
				c.AI.TimeoutSeconds = 0
			},
			expectError: "ai.timeout_seconds must be between 1 and 300",
		},
		{
			name:         "non-positive trend days",
			modifyConfig: func(c *Config) { c.Analytics.TrendDays = 0 },
			expectError:  "analytics.trend_days must be positive",
		},
		{
			name:         "non-positive anomaly days",
			modifyConfig: func(c *Config) { c.Analytics.AnomalyDays = -5 },
			expectError:  "analytics.anomaly_days must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := validTestConfig(t)
			tt.modifyConfig(config)

			err := validateConfig(config)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectError)
		})
	}
}

func TestConfigureLoggingFromConfig(t *testing.T) {
	config := validTestConfig(t)
	config.Log.Level = "debug"
	config.Log.Format = "json"

	logger := ConfigureLoggingFromConfig(config)
	require.NotNil(t, logger)
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, logger.Formatter)
}

func TestConfigureLoggingFromConfig_InvalidLevel(t *testing.T) {
	config := validTestConfig(t)
	config.Log.Level = "not-a-level"

	logger := ConfigureLoggingFromConfig(config)
	require.NotNil(t, logger)
	assert.Equal(t, logrus.InfoLevel, logger.GetLevel())
}
