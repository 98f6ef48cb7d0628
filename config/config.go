package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	DefaultPort            = 5000
	DefaultQueryTimeout    = 30 * time.Second
	DefaultShutdownTimeout = 10 * time.Second
	DefaultLogLevel        = "info"
	DefaultLogFormat       = "console"
)

var (
	ErrMissingDatabaseURL = errors.New("DATABASE_URL is required")
	ErrInvalidPort        = errors.New("PORT must be between 1 and 65535")
	ErrInvalidLogFormat   = errors.New("LOG_FORMAT must be console or json")
	ErrNegativeTimeout    = errors.New("timeouts must not be negative")
)

type Config struct {
	DatabaseURL     string        `mapstructure:"database_url"`
	Port            int           `mapstructure:"port"`
	QueryTimeout    time.Duration `mapstructure:"query_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	LogLevel        string        `mapstructure:"log_level"`
	LogFormat       string        `mapstructure:"log_format"`
}

// Load reads the configuration from flags, the environment and an optional
// dotenv file, in that order of precedence. A missing envFile is ignored.
func Load(envFile string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetDefault("database_url", "")
	v.SetDefault("port", DefaultPort)
	v.SetDefault("query_timeout", DefaultQueryTimeout)
	v.SetDefault("shutdown_timeout", DefaultShutdownTimeout)
	v.SetDefault("log_level", DefaultLogLevel)
	v.SetDefault("log_format", DefaultLogFormat)
	v.AutomaticEnv()

	if envFile != "" {
		v.SetConfigFile(envFile)
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read %s: %w", envFile, err)
		}
	}

	if flags != nil {
		if f := flags.Lookup("port"); f != nil {
			if err := v.BindPFlag("port", f); err != nil {
				return nil, err
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.DatabaseURL == "" {
		return ErrMissingDatabaseURL
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("%w: got %d", ErrInvalidPort, c.Port)
	}
	if c.QueryTimeout < 0 || c.ShutdownTimeout < 0 {
		return ErrNegativeTimeout
	}
	if c.LogFormat != "console" && c.LogFormat != "json" {
		return fmt.Errorf("%w: got %q", ErrInvalidLogFormat, c.LogFormat)
	}
	return nil
}

// Addr is the listen address. Like the original service it binds every
// interface.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
