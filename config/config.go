package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config holds the engine settings.
type Config struct {
	// SearchDepthCeiling is the last depth the iterative-deepening loop
	// will run. The loop has no convergence condition; it keeps
	// re-searching deeper until this ceiling, a context deadline, or an
	// external stop.
	SearchDepthCeiling int `mapstructure:"search_depth_ceiling"`
	// SearchTimeLimitSeconds bounds the whole solve. 0 means no limit.
	SearchTimeLimitSeconds int  `mapstructure:"search_time_limit_seconds"`
	Debug                  bool `mapstructure:"debug"`
}

// DefaultConfig returns the settings used when no file or environment
// overrides are present.
func DefaultConfig() *Config {
	return &Config{
		SearchDepthCeiling:     100,
		SearchTimeLimitSeconds: 0,
		Debug:                  false,
	}
}

// Load reads settings from an optional config file and from CHESSAI_*
// environment variables, on top of the defaults.
func Load(cfgPath string) (*Config, error) {
	cfg := DefaultConfig()

	v := viper.New()
	v.SetDefault("search_depth_ceiling", cfg.SearchDepthCeiling)
	v.SetDefault("search_time_limit_seconds", cfg.SearchTimeLimitSeconds)
	v.SetDefault("debug", cfg.Debug)

	v.SetEnvPrefix("chessai")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
