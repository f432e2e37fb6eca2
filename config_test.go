package main

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultConfig(t *testing.T) {
	config, err := LoadDefaultConfig()
	require.NoError(t, err)

	assert.Equal(t, 5, config.InitialInputs.PropertiesPerHost)
	assert.Equal(t, 100, config.InitialInputs.NightlyRateUSD)
	assert.InDelta(t, 0.15, config.InitialInputs.MarketShare, 1e-12)
	assert.Equal(t, "localhost:0", config.Server.Addr)
	assert.True(t, config.Server.OpenBrowser)
	assert.Equal(t, "info", config.Logging.Level)
	assert.Equal(t, "text", config.Logging.Format)
	assert.Equal(t, "exports", config.Export.Dir)
}

func TestPreprocessPercentages(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"market_share: 15%", "market_share: 0.15"},
		{"market_share: 7.5%", "market_share: 0.075"},
		{"market_share:   30%", "market_share:   0.3"},
		{"market_share: 0.15", "market_share: 0.15"},
		{"addr: localhost:0", "addr: localhost:0"},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, preprocessPercentages(tc.in))
		})
	}
}

func TestLoadConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `initial_inputs:
  properties_per_host: 8
  nightly_rate_usd: 150
  market_share: 20%
server:
  addr: ":9090"
  open_browser: false
logging:
  level: debug
  format: json
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	config, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 8, config.InitialInputs.PropertiesPerHost)
	assert.Equal(t, 150, config.InitialInputs.NightlyRateUSD)
	assert.InDelta(t, 0.20, config.InitialInputs.MarketShare, 1e-12)
	assert.Equal(t, ":9090", config.Server.Addr)
	assert.False(t, config.Server.OpenBrowser)
	assert.Equal(t, "debug", config.Logging.Level)
	assert.Equal(t, "json", config.Logging.Format)
	assert.Empty(t, config.Export.Dir, "unset until Normalize")
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("initial_inputs: [unclosed"), 0644))

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken.yaml")
}

func TestLoadConfigOrDefault_MissingFile(t *testing.T) {
	t.Setenv(envAddr, "")
	t.Setenv(envLogLevel, "")
	t.Setenv(envLogFormat, "")
	t.Setenv(envExportDir, "")

	config, err := LoadConfigOrDefault(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, DefaultInputs(), config.InitialInputs)
	assert.Equal(t, "localhost:0", config.Server.Addr)
}

func TestLoadConfigOrDefault_EnvOverrides(t *testing.T) {
	t.Setenv(envAddr, ":8181")
	t.Setenv(envLogLevel, "warn")
	t.Setenv(envLogFormat, "json")
	t.Setenv(envExportDir, "/tmp/arr")

	config, err := LoadConfigOrDefault(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, ":8181", config.Server.Addr)
	assert.Equal(t, "warn", config.Logging.Level)
	assert.Equal(t, "json", config.Logging.Format)
	assert.Equal(t, "/tmp/arr", config.Export.Dir)
}

func TestApplyEnv_IgnoresEmpty(t *testing.T) {
	config := &Config{Server: ServerConfig{Addr: ":1"}}
	config.ApplyEnv(func(string) string { return "" })
	assert.Equal(t, ":1", config.Server.Addr)
}

func TestNormalize(t *testing.T) {
	t.Run("zero config gets defaults", func(t *testing.T) {
		config := &Config{}
		config.Normalize()

		assert.Equal(t, DefaultInputs(), config.InitialInputs)
		assert.Equal(t, "localhost:0", config.Server.Addr)
		assert.Equal(t, "info", config.Logging.Level)
		assert.Equal(t, "text", config.Logging.Format)
		assert.Equal(t, "exports", config.Export.Dir)
	})

	t.Run("NaN market share is clamped to the minimum", func(t *testing.T) {
		config := &Config{InitialInputs: CalculatorInputs{PropertiesPerHost: 5, NightlyRateUSD: 100, MarketShare: math.NaN()}}
		config.Normalize()

		assert.InDelta(t, 0.01, config.InitialInputs.MarketShare, 1e-12)
	})

	t.Run("initial inputs are clamped", func(t *testing.T) {
		config := &Config{InitialInputs: CalculatorInputs{PropertiesPerHost: 40, NightlyRateUSD: 20, MarketShare: 0.5}}
		config.Normalize()

		assert.Equal(t, CalculatorInputs{PropertiesPerHost: 10, NightlyRateUSD: 50, MarketShare: 0.3}, config.InitialInputs)
	})
}

func TestSaveConfig_RoundTrip(t *testing.T) {
	config, err := LoadDefaultConfig()
	require.NoError(t, err)
	config.InitialInputs = CalculatorInputs{PropertiesPerHost: 3, NightlyRateUSD: 75, MarketShare: 0.12}
	config.Export.Dir = "out"
	config.Normalize()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, SaveConfig(config, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# ARR Calculator Configuration")

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, config, loaded)
}
