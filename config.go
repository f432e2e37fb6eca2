package main

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"regexp"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

//go:embed default-config.yaml
var defaultConfigYAML string

// Environment variables that override the config file
const (
	envAddr      = "ARR_CALC_ADDR"
	envLogLevel  = "ARR_CALC_LOG_LEVEL"
	envLogFormat = "ARR_CALC_LOG_FORMAT"
	envExportDir = "ARR_CALC_EXPORT_DIR"
)

// ServerConfig holds web server settings
type ServerConfig struct {
	Addr        string `yaml:"addr" json:"addr"`                 // Listen address, ":0" picks a free port
	OpenBrowser bool   `yaml:"open_browser" json:"open_browser"` // Open the system browser on start
}

// LoggingConfig holds logger settings
type LoggingConfig struct {
	Level  string `yaml:"level" json:"level"`   // debug, info, warn, error
	Format string `yaml:"format" json:"format"` // text or json
}

// ExportConfig holds file export settings
type ExportConfig struct {
	Dir string `yaml:"dir" json:"dir"`
}

// Config holds the complete configuration
type Config struct {
	// Slider positions on first load. Reset always goes back to DefaultInputs.
	InitialInputs CalculatorInputs `yaml:"initial_inputs" json:"initial_inputs"`
	Server        ServerConfig     `yaml:"server" json:"server"`
	Logging       LoggingConfig    `yaml:"logging" json:"logging"`
	Export        ExportConfig     `yaml:"export" json:"export"`
}

// LoadConfig loads configuration from a YAML file
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	config, err := parseConfig(string(data))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", filename, err)
	}
	return config, nil
}

// LoadDefaultConfig loads the default configuration from embedded default-config.yaml
func LoadDefaultConfig() (*Config, error) {
	return parseConfig(defaultConfigYAML)
}

// LoadConfigOrDefault loads filename, falling back to the embedded defaults when
// the file does not exist, then applies .env and environment overrides
func LoadConfigOrDefault(filename string) (*Config, error) {
	config, err := LoadConfig(filename)
	if errors.Is(err, fs.ErrNotExist) {
		config, err = LoadDefaultConfig()
	}
	if err != nil {
		return nil, err
	}

	// A missing .env is fine, the process environment may already be set
	_ = godotenv.Load()
	config.ApplyEnv(os.Getenv)
	config.Normalize()

	return config, nil
}

// ApplyEnv overrides config values from the environment
func (c *Config) ApplyEnv(getenv func(string) string) {
	if v := getenv(envAddr); v != "" {
		c.Server.Addr = v
	}
	if v := getenv(envLogLevel); v != "" {
		c.Logging.Level = v
	}
	if v := getenv(envLogFormat); v != "" {
		c.Logging.Format = v
	}
	if v := getenv(envExportDir); v != "" {
		c.Export.Dir = v
	}
}

// Normalize fills unset values and clamps the initial inputs to slider ranges
func (c *Config) Normalize() {
	if c.InitialInputs == (CalculatorInputs{}) {
		c.InitialInputs = DefaultInputs()
	}
	c.InitialInputs = ClampInputs(c.InitialInputs)
	if c.Server.Addr == "" {
		c.Server.Addr = "localhost:0"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}
	if c.Export.Dir == "" {
		c.Export.Dir = "exports"
	}
}

// SaveConfig saves configuration to a YAML file
func SaveConfig(config *Config, filename string) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return err
	}

	header := []byte(`# ARR Calculator Configuration
#
# initial_inputs: slider positions when the page first opens.
#   "Reset to Defaults" always restores 5 properties, $100/night, 15% share.
#   market_share accepts a fraction (0.15) or a percentage (15%).
#
# Environment overrides (also read from .env):
#   ARR_CALC_ADDR, ARR_CALC_LOG_LEVEL, ARR_CALC_LOG_FORMAT, ARR_CALC_EXPORT_DIR
#
# Run:
#   ./arrcalc                 Desktop window
#   ./arrcalc serve           Web server (opens external browser)
#   ./arrcalc table           Console table
#   ./arrcalc export -f pdf   Write the table to exports/

`)
	content := append(header, data...)
	return os.WriteFile(filename, content, 0644)
}

func parseConfig(content string) (*Config, error) {
	var config Config
	if err := yaml.Unmarshal([]byte(preprocessPercentages(content)), &config); err != nil {
		return nil, err
	}
	return &config, nil
}

var percentPattern = regexp.MustCompile(`(:\s*)(\d+\.?\d*)%`)

// preprocessPercentages converts percentage values like "15%" to decimal "0.15"
func preprocessPercentages(content string) string {
	return percentPattern.ReplaceAllStringFunc(content, func(match string) string {
		parts := percentPattern.FindStringSubmatch(match)
		if len(parts) >= 3 {
			num, err := strconv.ParseFloat(parts[2], 64)
			if err == nil {
				return parts[1] + strconv.FormatFloat(num/100.0, 'f', -1, 64)
			}
		}
		return match
	})
}
