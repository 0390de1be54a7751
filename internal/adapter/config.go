package adapter

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/mmcdole/accordion/internal/domain"
	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	Accordion AccordionConfig `mapstructure:"accordion"`
	Store     StoreConfig     `mapstructure:"store"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

// AccordionConfig holds the widget options
type AccordionConfig struct {
	ActiveClass string        `mapstructure:"active_class"`
	ActiveIndex string        `mapstructure:"active_index"` // Empty for none
	CloseAll    bool          `mapstructure:"close_all"`
	Radio       bool          `mapstructure:"radio"`
	Animate     bool          `mapstructure:"animate"`
	Duration    time.Duration `mapstructure:"duration"`
	Easing      string        `mapstructure:"easing"`
}

// StoreConfig holds panel state persistence configuration
type StoreConfig struct {
	Dir     string `mapstructure:"dir"`     // Empty for memory-only
	Restore bool   `mapstructure:"restore"` // Re-open panels from the last session
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	opts := domain.DefaultOptions()
	return &Config{
		Accordion: AccordionConfig{
			ActiveClass: opts.ActiveClass,
			ActiveIndex: "",
			CloseAll:    opts.CloseAll,
			Radio:       opts.Radio,
			Animate:     opts.Animate,
			Duration:    opts.Duration,
			Easing:      opts.Easing,
		},
		Store: StoreConfig{
			Dir:     defaultCachePath(),
			Restore: true,
		},
		Logging: LoggingConfig{
			File:  defaultLogPath(),
			Level: "INFO",
		},
	}
}

// Options converts the accordion section into widget options. A non-numeric
// active_index is rejected here.
func (c *Config) Options() (domain.Options, error) {
	idx, err := domain.ParseIndex(c.Accordion.ActiveIndex)
	if err != nil {
		return domain.Options{}, fmt.Errorf("accordion.active_index: %w", err)
	}
	return domain.Options{
		ActiveClass: c.Accordion.ActiveClass,
		ActiveIndex: idx,
		CloseAll:    c.Accordion.CloseAll,
		Radio:       c.Accordion.Radio,
		Animate:     c.Accordion.Animate,
		Duration:    c.Accordion.Duration,
		Easing:      c.Accordion.Easing,
	}, nil
}

// defaultLogPath returns the default log file path for the current OS
func defaultLogPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "accordion", "accordion.log")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "accordion", "accordion.log")
	}
}

// defaultConfigPath returns the default config directory for the current OS
func defaultConfigPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "accordion")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "accordion")
	}
}

// defaultCachePath returns the default state directory for the current OS
func defaultCachePath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("LOCALAPPDATA"), "accordion", "state")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "accordion", "state")
	}
}

func newViper(defaults *Config) *viper.Viper {
	v := viper.New()

	v.SetDefault("accordion.active_class", defaults.Accordion.ActiveClass)
	v.SetDefault("accordion.active_index", defaults.Accordion.ActiveIndex)
	v.SetDefault("accordion.close_all", defaults.Accordion.CloseAll)
	v.SetDefault("accordion.radio", defaults.Accordion.Radio)
	v.SetDefault("accordion.animate", defaults.Accordion.Animate)
	v.SetDefault("accordion.duration", defaults.Accordion.Duration)
	v.SetDefault("accordion.easing", defaults.Accordion.Easing)
	v.SetDefault("store.dir", defaults.Store.Dir)
	v.SetDefault("store.restore", defaults.Store.Restore)
	v.SetDefault("logging.file", defaults.Logging.File)
	v.SetDefault("logging.level", defaults.Logging.Level)

	// Environment variable overrides, e.g. ACCORDION_ACCORDION_RADIO=true
	v.SetEnvPrefix("ACCORDION")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// LoadConfig loads configuration from file and environment. An empty
// configFile searches the default config directory and the working directory.
func LoadConfig(configFile string) (*Config, error) {
	cfg := DefaultConfig()
	v := newViper(cfg)
	v.SetConfigType("yaml")

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(defaultConfigPath())
		v.AddConfigPath(".")
	}

	// Read config file if it exists
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	return cfg, nil
}

// SaveConfig writes cfg to configFile, or to the default location when
// configFile is empty.
func SaveConfig(cfg *Config, configFile string) error {
	if configFile == "" {
		configFile = filepath.Join(defaultConfigPath(), "config.yaml")
	}

	// Ensure config directory exists
	if err := os.MkdirAll(filepath.Dir(configFile), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")

	// Set fields individually to ensure correct key names (snake_case)
	v.Set("accordion.active_class", cfg.Accordion.ActiveClass)
	v.Set("accordion.active_index", cfg.Accordion.ActiveIndex)
	v.Set("accordion.close_all", cfg.Accordion.CloseAll)
	v.Set("accordion.radio", cfg.Accordion.Radio)
	v.Set("accordion.animate", cfg.Accordion.Animate)
	v.Set("accordion.duration", cfg.Accordion.Duration.String())
	v.Set("accordion.easing", cfg.Accordion.Easing)

	v.Set("store.dir", cfg.Store.Dir)
	v.Set("store.restore", cfg.Store.Restore)

	v.Set("logging.file", cfg.Logging.File)
	v.Set("logging.level", cfg.Logging.Level)

	if err := v.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
