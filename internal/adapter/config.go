package adapter

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DefaultOMDbURL is the public OMDb endpoint
const DefaultOMDbURL = "https://www.omdbapi.com/"

// Config holds all application configuration
type Config struct {
	OMDb    OMDbConfig    `mapstructure:"omdb"`
	UI      UIConfig      `mapstructure:"ui"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// OMDbConfig holds title database configuration
type OMDbConfig struct {
	APIKey  string `mapstructure:"api_key"`
	BaseURL string `mapstructure:"base_url"`
	Timeout int    `mapstructure:"timeout"` // Seconds, 0 = no client timeout
	Plot    string `mapstructure:"plot"`    // "short" or "full" for the detail view
}

// UIConfig holds UI configuration
type UIConfig struct {
	GridColumns int `mapstructure:"grid_columns"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		OMDb: OMDbConfig{
			BaseURL: DefaultOMDbURL,
			Plot:    "full",
		},
		UI: UIConfig{
			GridColumns: 2,
		},
		Logging: LoggingConfig{
			File:  defaultLogPath(),
			Level: "INFO",
		},
	}
}

// defaultLogPath returns the default log file path for the current OS
func defaultLogPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "nextep", "nextep.log")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "nextep", "nextep.log")
	}
}

// defaultConfigPath returns the default config directory for the current OS
func defaultConfigPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "nextep")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "nextep")
	}
}

// DefaultConfigFile returns the path SaveConfig writes to when no file is given
func DefaultConfigFile() string {
	return filepath.Join(defaultConfigPath(), "config.yaml")
}

func newViper(cfgFile string) *viper.Viper {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("omdb.api_key", "")
	v.SetDefault("omdb.base_url", defaults.OMDb.BaseURL)
	v.SetDefault("omdb.timeout", defaults.OMDb.Timeout)
	v.SetDefault("omdb.plot", defaults.OMDb.Plot)
	v.SetDefault("ui.grid_columns", defaults.UI.GridColumns)
	v.SetDefault("logging.file", defaults.Logging.File)
	v.SetDefault("logging.level", defaults.Logging.Level)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(defaultConfigPath())
		v.AddConfigPath(".")
	}

	// Environment variable overrides: NEXTEP_OMDB_API_KEY etc.
	v.SetEnvPrefix("NEXTEP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("omdb.api_key", "NEXTEP_OMDB_API_KEY", "OMDB_API_KEY")

	return v
}

// LoadConfig loads configuration from .env, the config file and the environment.
// cfgFile may be empty to search the default locations.
func LoadConfig(cfgFile string) (*Config, error) {
	// .env in the working directory is optional
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("error reading .env file: %w", err)
	}

	v := newViper(cfgFile)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !(cfgFile == "" && errors.Is(err, os.ErrNotExist)) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	cfg := DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	if cfg.UI.GridColumns < 1 {
		cfg.UI.GridColumns = 1
	}
	if cfg.OMDb.Timeout < 0 {
		return nil, fmt.Errorf("invalid omdb.timeout: %d (must be >= 0)", cfg.OMDb.Timeout)
	}

	return cfg, nil
}

// SaveConfig writes cfg to path, or to the default location when path is empty
func SaveConfig(cfg *Config, path string) error {
	if path == "" {
		path = DefaultConfigFile()
	}

	// Ensure config directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	v := viper.New()

	// Set fields individually to ensure correct key names (snake_case)
	v.Set("omdb.api_key", cfg.OMDb.APIKey)
	v.Set("omdb.base_url", cfg.OMDb.BaseURL)
	v.Set("omdb.timeout", cfg.OMDb.Timeout)
	v.Set("omdb.plot", cfg.OMDb.Plot)

	v.Set("ui.grid_columns", cfg.UI.GridColumns)

	v.Set("logging.file", cfg.Logging.File)
	v.Set("logging.level", cfg.Logging.Level)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// HasAPIKey returns true if an OMDb API key is configured
func (c *Config) HasAPIKey() bool {
	return strings.TrimSpace(c.OMDb.APIKey) != ""
}
