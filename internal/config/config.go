package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/username/yearcal/internal/calendar"
)

// Config represents application configuration
type Config struct {
	Calendar CalendarConfig `mapstructure:"calendar"`
	Holidays HolidaysConfig `mapstructure:"holidays"`
	Stocks   StocksConfig   `mapstructure:"stocks"`
	Server   ServerConfig   `mapstructure:"server"`
	Log      LogConfig      `mapstructure:"log"`
}

// CalendarConfig represents the derivation engine settings
type CalendarConfig struct {
	Year           int    `mapstructure:"year"`
	BoundaryPolicy string `mapstructure:"boundary_policy"` // "strict", "legacy" or "spill"
}

// HolidaysConfig represents the holiday data sources
type HolidaysConfig struct {
	File     string `mapstructure:"file"`
	URL      string `mapstructure:"url"` // optional, may contain {year}
	CacheTTL string `mapstructure:"cache_ttl"`
}

// StocksConfig represents the stock event data source
type StocksConfig struct {
	File string `mapstructure:"file"` // optional
}

// ServerConfig represents the HTTP server
type ServerConfig struct {
	Addr            string `mapstructure:"addr"`
	RateLimit       int    `mapstructure:"rate_limit"` // requests per minute per IP, 0 disables
	ShutdownTimeout string `mapstructure:"shutdown_timeout"`
}

// LogConfig represents logging
type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// Load loads configuration from file
func Load(configPath string) (*Config, error) {
	v := viper.New()

	v.SetDefault("calendar.year", 2024)
	v.SetDefault("calendar.boundary_policy", "strict")
	v.SetDefault("holidays.cache_ttl", "24h")
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.rate_limit", 120)
	v.SetDefault("server.shutdown_timeout", "10s")
	v.SetDefault("log.level", "info")

	// Set config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.yearcal")
		v.AddConfigPath("/etc/yearcal")
	}

	// Optional .env next to the binary; real env vars win
	_ = godotenv.Load()

	// Read environment variables, e.g. YEARCAL_CALENDAR_YEAR
	v.SetEnvPrefix("yearcal")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	config.ExpandEnvVars()

	// Validate config
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Calendar.Year < 1 || c.Calendar.Year > 9999 {
		return fmt.Errorf("calendar.year must be between 1 and 9999, got %d", c.Calendar.Year)
	}
	if _, err := calendar.ParseBoundaryPolicy(c.Calendar.BoundaryPolicy); err != nil {
		return fmt.Errorf("calendar.boundary_policy: %w", err)
	}

	if c.Holidays.File == "" && c.Holidays.URL == "" {
		return fmt.Errorf("holidays.file or holidays.url is required")
	}
	if c.Holidays.URL != "" && !strings.HasPrefix(c.Holidays.URL, "http://") && !strings.HasPrefix(c.Holidays.URL, "https://") {
		return fmt.Errorf("holidays.url must be an http(s) URL, got '%s'", c.Holidays.URL)
	}

	if c.Server.RateLimit < 0 {
		return fmt.Errorf("server.rate_limit must not be negative")
	}

	return nil
}

// GetBoundaryPolicy returns the parsed policy, strict when invalid
func (c *CalendarConfig) GetBoundaryPolicy() calendar.BoundaryPolicy {
	policy, err := calendar.ParseBoundaryPolicy(c.BoundaryPolicy)
	if err != nil {
		return calendar.BoundaryStrict
	}
	return policy
}

// GetCacheTTL returns cache TTL duration
func (c *HolidaysConfig) GetCacheTTL() time.Duration {
	if c.CacheTTL == "" {
		return 24 * time.Hour
	}
	duration, err := time.ParseDuration(c.CacheTTL)
	if err != nil {
		return 24 * time.Hour
	}
	return duration
}

// GetShutdownTimeout returns the graceful shutdown timeout
func (c *ServerConfig) GetShutdownTimeout() time.Duration {
	if c.ShutdownTimeout == "" {
		return 10 * time.Second
	}
	duration, err := time.ParseDuration(c.ShutdownTimeout)
	if err != nil {
		return 10 * time.Second
	}
	return duration
}

// ExpandEnvVars expands environment variables in config strings
func (c *Config) ExpandEnvVars() {
	c.Holidays.File = os.ExpandEnv(c.Holidays.File)
	c.Holidays.URL = os.ExpandEnv(c.Holidays.URL)
	c.Stocks.File = os.ExpandEnv(c.Stocks.File)
	c.Log.File = os.ExpandEnv(c.Log.File)
}
