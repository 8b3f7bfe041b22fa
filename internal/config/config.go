// Package config loads splitflow settings from defaults, an optional YAML
// file and SPLITFLOW_* environment variables, in increasing precedence.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/katalvlaran/splitflow/internal/logging"
	"github.com/katalvlaran/splitflow/internal/metrics"
)

// EnvPrefix prefixes every environment override, e.g. SPLITFLOW_LOG_LEVEL.
const EnvPrefix = "SPLITFLOW"

// ErrInvalidConfig wraps read, decode and validation failures.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the full CLI configuration.
type Config struct {
	Log     logging.Config `mapstructure:"log"`
	Settle  SettleConfig   `mapstructure:"settle"`
	Metrics metrics.Config `mapstructure:"metrics"`
}

// SettleConfig mirrors the settle.Engine options.
type SettleConfig struct {
	Strategy          string `mapstructure:"strategy"            validate:"oneof=chains pairwise"`
	MinorUnitExponent int32  `mapstructure:"minor_unit_exponent" validate:"min=0,max=8"`
	MaxParticipants   int    `mapstructure:"max_participants"    validate:"min=0"`
	MaxCollapses      int    `mapstructure:"max_collapses"       validate:"min=0"`
	Concurrency       int    `mapstructure:"concurrency"         validate:"min=0"`
}

var validate = validator.New()

// setDefaults registers every key so that environment overrides apply even
// when no file mentions them.
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size", 100)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age", 28)
	v.SetDefault("log.compress", false)

	v.SetDefault("settle.strategy", "chains")
	v.SetDefault("settle.minor_unit_exponent", 2)
	v.SetDefault("settle.max_participants", 0)
	v.SetDefault("settle.max_collapses", 0)
	v.SetDefault("settle.concurrency", 0)

	v.SetDefault("metrics.namespace", "splitflow")
	v.SetDefault("metrics.textfile", "")
}

// New returns a viper instance with defaults and environment binding.
func New() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads path (skipped when empty) into v and decodes and validates
// the result. Callers bind command-line flags to v before calling Load.
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("%w: read %s: %v", ErrInvalidConfig, path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrInvalidConfig, err)
	}
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return &cfg, nil
}
