// Package config loads the driver configuration from defaults, an optional
// YAML file, CONTAINERS_* environment variables and bound command-line flags.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"containers/arraylist"
	"containers/hashset"
)

const (
	HasherReference = "reference"
	HasherXXHash    = "xxhash"
)

type Config struct {
	Log  LogConfig  `mapstructure:"log"`
	Demo DemoConfig `mapstructure:"demo"`
	Set  SetConfig  `mapstructure:"set"`
	List ListConfig `mapstructure:"list"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}

type DemoConfig struct {
	Lang string `mapstructure:"lang"`
}

type SetConfig struct {
	Capacity int    `mapstructure:"capacity"`
	Hasher   string `mapstructure:"hasher"`
}

type ListConfig struct {
	Capacity int `mapstructure:"capacity"`
}

// Load reads configuration into v and unmarshals it. An empty file means the
// default search path is used and a missing file is not an error.
func Load(v *viper.Viper, file string) (*Config, error) {
	setDefaults(v)

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("containers")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/containers")
	}

	v.SetEnvPrefix("CONTAINERS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects values the containers or the driver cannot work with.
func (c *Config) Validate() error {
	if c.Set.Capacity < 1 {
		return fmt.Errorf("set.capacity must be positive, got %d", c.Set.Capacity)
	}
	if c.List.Capacity < 1 {
		return fmt.Errorf("list.capacity must be positive, got %d", c.List.Capacity)
	}
	switch c.Set.Hasher {
	case HasherReference, HasherXXHash:
	default:
		return fmt.Errorf("unknown set.hasher %q (want %s or %s)", c.Set.Hasher, HasherReference, HasherXXHash)
	}
	switch strings.ToLower(c.Demo.Lang) {
	case "en", "ru":
	default:
		return fmt.Errorf("unknown demo.lang %q (want en or ru)", c.Demo.Lang)
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log.format %q (want text or json)", c.Log.Format)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.output", "stderr")

	v.SetDefault("demo.lang", "en")

	v.SetDefault("set.capacity", hashset.DefaultCapacity)
	v.SetDefault("set.hasher", HasherReference)

	v.SetDefault("list.capacity", arraylist.DefaultCapacity)
}
