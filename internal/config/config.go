// Package config loads application configuration from config.yaml, the
// environment, and defaults, and bootstraps the global logger.
package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/eatclub/pantry-cli/internal/fault"
)

// Config holds the full application configuration.
type Config struct {
	Store   StoreConfig   `yaml:"store" mapstructure:"store"`
	Recipes RecipesConfig `yaml:"recipes" mapstructure:"recipes"`
	Scoring ScoringConfig `yaml:"scoring" mapstructure:"scoring"`
	Expiry  ExpiryConfig  `yaml:"expiry" mapstructure:"expiry"`
	Log     LogConfig     `yaml:"log" mapstructure:"log"`
}

// StoreConfig selects and configures the ledger backend.
type StoreConfig struct {
	// Driver is "memory" or "sqlite".
	Driver string `yaml:"driver" mapstructure:"driver"`
	// Path is the sqlite database file (sqlite driver only).
	Path string `yaml:"path" mapstructure:"path"`
}

// RecipesConfig points at the recipe catalog and substitution rule files.
type RecipesConfig struct {
	CatalogPath       string `yaml:"catalog_path" mapstructure:"catalog_path"`
	SubstitutionsPath string `yaml:"substitutions_path" mapstructure:"substitutions_path"`
}

// ScoringConfig tunes the recommender.
type ScoringConfig struct {
	// Threshold below which the recommender asks instead of suggesting.
	Threshold float64 `yaml:"threshold" mapstructure:"threshold"`
}

// ExpiryConfig overrides shelf-life days per item name.
type ExpiryConfig struct {
	ShelfLifeDays map[string]int `yaml:"shelf_life_days" mapstructure:"shelf_life_days"`
}

// LogConfig configures the global zap logger.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads config.yaml (optional), applies PANTRY_* environment
// overrides, and fills defaults.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("PANTRY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("store.driver", "sqlite")
	v.SetDefault("store.path", "pantry.db")
	v.SetDefault("recipes.catalog_path", "recipes.yaml")
	v.SetDefault("recipes.substitutions_path", "substitutions.yaml")
	v.SetDefault("scoring.threshold", 0.6)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// Validate checks cross-field constraints before a command runs.
func (c *Config) Validate() error {
	switch c.Store.Driver {
	case "memory":
	case "sqlite":
		if c.Store.Path == "" {
			return fault.Contract("store.path required for sqlite driver")
		}
	default:
		return fault.Contract("unknown store driver %q", c.Store.Driver)
	}
	if c.Scoring.Threshold < 0 {
		return fault.Contract("scoring.threshold must be non-negative")
	}
	for name, days := range c.Expiry.ShelfLifeDays {
		if days < 0 {
			return fault.Contract("expiry.shelf_life_days[%s] must be non-negative", name)
		}
	}
	return nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
