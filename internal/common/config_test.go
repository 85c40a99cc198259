package common

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultConfigHasSaneDefaults(t *testing.T) {
	cfg := NewDefaultConfig()
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 2, cfg.Seeds.MinLength)
	assert.Equal(t, 200, cfg.Seeds.MaxLength)
}

func TestIsProductionCaseInsensitive(t *testing.T) {
	cfg := &Config{Environment: "PRODUCTION"}
	assert.True(t, cfg.IsProduction())

	cfg.Environment = "development"
	assert.False(t, cfg.IsProduction())
}

func TestLoadFromFilesAppliesDefaultsWithNoFiles(t *testing.T) {
	cfg, err := LoadFromFiles()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
}

func TestLoadFromFilesMissingFileErrors(t *testing.T) {
	_, err := LoadFromFiles("/nonexistent/path/hireradar.toml")
	assert.Error(t, err)
}

func TestLoadFromFilesEnvOverridesPort(t *testing.T) {
	os.Setenv("HIRERADAR_SERVER_PORT", "9999")
	defer os.Unsetenv("HIRERADAR_SERVER_PORT")

	cfg, err := LoadFromFiles()
	require.NoError(t, err)
	assert.Equal(t, 9999, cfg.Server.Port)
}

func TestApplyEnvOverridesIgnoresInvalidValues(t *testing.T) {
	os.Setenv("HIRERADAR_SERVER_PORT", "not-a-number")
	defer os.Unsetenv("HIRERADAR_SERVER_PORT")

	cfg := NewDefaultConfig()
	applyEnvOverrides(cfg)
	assert.Equal(t, 8080, cfg.Server.Port, "invalid env value should be ignored")
}

func TestApplyFlagOverrides(t *testing.T) {
	cfg := NewDefaultConfig()
	ApplyFlagOverrides(cfg, 1234, "example.com")
	assert.Equal(t, 1234, cfg.Server.Port)
	assert.Equal(t, "example.com", cfg.Server.Host)
}

func TestApplyFlagOverridesZeroValuesLeaveDefaultsUntouched(t *testing.T) {
	cfg := NewDefaultConfig()
	ApplyFlagOverrides(cfg, 0, "")
	assert.Equal(t, 8080, cfg.Server.Port, "zero port flag should leave default untouched")
	assert.Equal(t, "localhost", cfg.Server.Host, "empty host flag should leave default untouched")
}
