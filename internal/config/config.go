// Package config loads the library's own runtime configuration (logging
// destination and default mining thresholds) from a YAML file. After
// loading it watches the file and logs each change; changed values are
// not re-read, so All keeps what the last Load call produced.
package config

import (
	"fmt"
	"log"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the directory searched for config.yml.
var DefaultPath = "./config"

// All holds the most recently loaded configuration. It is nil until
// Load succeeds.
var All *Config

// Config is the root of the YAML configuration file.
type Config struct {
	Logger LoggerConfig `mapstructure:"logger_config"`
	Mining MiningConfig `mapstructure:"mining_config"`
}

// LoggerConfig mirrors the arguments to logging.InitLogger.
type LoggerConfig struct {
	ProjectName  string        `mapstructure:"project_name"`
	Path         string        `mapstructure:"path"`
	MaxAge       time.Duration `mapstructure:"max_age"`
	RotationTime time.Duration `mapstructure:"rotation_time"`
	RotationSize uint32        `mapstructure:"rotation_size"`
	SentryDsn    string        `mapstructure:"sentry_dsn"`
}

// MiningConfig supplies the thresholds a tree is constructed with when
// built via fptree.NewWithConfig.
type MiningConfig struct {
	DefaultSupport    float64 `mapstructure:"default_support"`
	DefaultConfidence float64 `mapstructure:"default_confidence"`
}

// Load reads config.yml from DefaultPath, watches it for changes, and
// unmarshals it into All. It returns an error rather than panicking:
// this package is a library dependency, not a process entry point, and
// must not take down its host on a bad config file.
func Load() (*Config, error) {
	v := viper.New()
	v.AddConfigPath(DefaultPath)
	v.SetConfigName("config")
	v.SetConfigType("yml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	v.WatchConfig()
	v.OnConfigChange(func(e fsnotify.Event) {
		log.Printf("config: file changed: %s", e.Name)
	})

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if cfg.Mining.DefaultSupport == 0 {
		cfg.Mining.DefaultSupport = 0.1
	}
	if cfg.Mining.DefaultConfidence == 0 {
		cfg.Mining.DefaultConfidence = 0.1
	}

	All = cfg
	return cfg, nil
}

// Dump renders the configuration as YAML, for diagnostics.
func (c *Config) Dump() (string, error) {
	b, err := yaml.Marshal(c)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
