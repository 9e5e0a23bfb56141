// Package config provides configuration types and defaults for pqueue.
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"

	"github.com/pic32/Priority-Queue/monitoring"
)

const (
	OrderAsc  = "asc"
	OrderDesc = "desc"

	OutputText = "text"
	OutputYAML = "yaml"
	OutputJSON = "json"
)

var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds all configuration options for pqueue.
type Config struct {
	Order    string `mapstructure:"order"`     // "asc" (default) or "desc"
	SafeMode bool   `mapstructure:"safe_mode"` // Report invalid queue use as errors
	MaxBytes uint64 `mapstructure:"max_bytes"` // Storage budget for the queue, 0 for unlimited
	Output   string `mapstructure:"output"`    // "text" (default), "yaml" or "json"
	LogLevel string `mapstructure:"log_level"` // debug, info, warn or error
	Stats    bool   `mapstructure:"stats"`     // Print queue metrics after draining
}

// Defaults returns the default configuration.
func Defaults() Config {
	return Config{
		Order:    OrderAsc,
		SafeMode: true,
		MaxBytes: 0,
		Output:   OutputText,
		LogLevel: "warn",
		Stats:    false,
	}
}

// SetDefaults registers the default configuration on v.
func SetDefaults(v *viper.Viper) {
	d := Defaults()
	v.SetDefault("order", d.Order)
	v.SetDefault("safe_mode", d.SafeMode)
	v.SetDefault("max_bytes", d.MaxBytes)
	v.SetDefault("output", d.Output)
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("stats", d.Stats)
}

// Load unmarshals and validates the configuration held by v.
func Load(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that every enumerated option holds a known value and that
// MaxBytes fits in a uintptr.
func (c Config) Validate() error {
	switch c.Order {
	case OrderAsc, OrderDesc:
	default:
		return fmt.Errorf("%w: order must be %q or %q, got %q", ErrInvalidConfig, OrderAsc, OrderDesc, c.Order)
	}

	switch c.Output {
	case OutputText, OutputYAML, OutputJSON:
	default:
		return fmt.Errorf("%w: unknown output format %q", ErrInvalidConfig, c.Output)
	}

	if _, err := monitoring.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: unknown log level %q", ErrInvalidConfig, c.LogLevel)
	}

	if c.MaxBytes > uint64(^uintptr(0)) {
		return fmt.Errorf("%w: max_bytes %d exceeds the addressable range", ErrInvalidConfig, c.MaxBytes)
	}
	return nil
}
