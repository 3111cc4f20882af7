package config

import (
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config represents the client configuration
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Storage   StorageConfig   `mapstructure:"storage"`
	Cache     CacheConfig     `mapstructure:"cache"`
	Scan      ScanConfig      `mapstructure:"scan"`
	Logging   LoggingConfig   `mapstructure:"logging"`
	Inventory InventoryConfig `mapstructure:"inventory"`
}

// ServerConfig represents remote server endpoints
type ServerConfig struct {
	URL       string        `mapstructure:"url"`
	SocketURL string        `mapstructure:"socket_url"`
	Timeout   time.Duration `mapstructure:"timeout"`
}

// StorageConfig represents local storage configuration
type StorageConfig struct {
	DBPath string `mapstructure:"db_path"`
}

// CacheConfig represents query cache configuration
type CacheConfig struct {
	StaleTime time.Duration `mapstructure:"stale_time"`
	Retry     int           `mapstructure:"retry"`
}

// ScanConfig represents scan stream configuration
type ScanConfig struct {
	// RingCapacity ограничивает flat список legacy serial потока
	RingCapacity int  `mapstructure:"ring_capacity"`
	CueEnabled   bool `mapstructure:"cue_enabled"`
}

// LoggingConfig represents logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// InventoryConfig represents inventory scan configuration
type InventoryConfig struct {
	AutoStopTimeout time.Duration `mapstructure:"auto_stop_timeout"`
}

// Load loads configuration from an optional file and environment
// variables. Пустой path - конфиг только из env и дефолтов.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetEnvPrefix("JRDCLIENT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.url", "http://localhost:8080")
	v.SetDefault("server.timeout", "30s")

	v.SetDefault("storage.db_path", "jrdclient.db")

	v.SetDefault("cache.stale_time", "1m")
	v.SetDefault("cache.retry", 1)

	v.SetDefault("scan.ring_capacity", 200)
	v.SetDefault("scan.cue_enabled", true)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")

	v.SetDefault("inventory.auto_stop_timeout", "180s")
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Server.URL == "" {
		return fmt.Errorf("server.url is required")
	}
	if _, err := url.ParseRequestURI(config.Server.URL); err != nil {
		return fmt.Errorf("server.url is invalid: %w", err)
	}
	if config.Scan.RingCapacity <= 0 {
		return fmt.Errorf("scan.ring_capacity must be positive")
	}

	validLevels := []string{"debug", "info", "warn", "error"}
	isValidLevel := false
	for _, level := range validLevels {
		if config.Logging.Level == level {
			isValidLevel = true
			break
		}
	}
	if !isValidLevel {
		return fmt.Errorf("logging.level must be one of: %v", validLevels)
	}

	return nil
}

// GetSocketURL returns the websocket endpoint, derived from the server
// URL when not set explicitly
func (c *Config) GetSocketURL() string {
	if c.Server.SocketURL != "" {
		return c.Server.SocketURL
	}
	ws := c.Server.URL
	ws = strings.Replace(ws, "https://", "wss://", 1)
	ws = strings.Replace(ws, "http://", "ws://", 1)
	return strings.TrimRight(ws, "/") + "/socket"
}

// SlogLevel maps logging.level onto a slog level
func (c *Config) SlogLevel() slog.Level {
	switch c.Logging.Level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
