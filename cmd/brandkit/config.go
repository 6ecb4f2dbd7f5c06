package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-brandkit/pkg/model"
)

// Config is the optional YAML file passed with --config. Flags override it.
type Config struct {
	Template      string                    `yaml:"template"`
	Mode          string                    `yaml:"mode"`
	Customization model.CustomizationConfig `yaml:"customization"`
	Presets       string                    `yaml:"presets"`
	Cache         CacheConfig               `yaml:"cache"`
	Store         StoreConfig               `yaml:"store"`
}

// CacheConfig selects the markup cache. A redis address wins over the
// in-memory cache; MemoryEntries of zero disables caching.
type CacheConfig struct {
	MemoryEntries int           `yaml:"memoryEntries"`
	RedisAddr     string        `yaml:"redisAddr"`
	RedisPassword string        `yaml:"redisPassword"`
	RedisDB       int           `yaml:"redisDB"`
	TTL           time.Duration `yaml:"ttl"`
}

// StoreConfig selects the profile store. A postgres DSN wins over the
// directory store.
type StoreConfig struct {
	Dir         string `yaml:"dir"`
	Format      string `yaml:"format"`
	PostgresDSN string `yaml:"postgresDSN"`
	Table       string `yaml:"table"`
}

func defaultConfig() Config {
	return Config{
		Cache: CacheConfig{MemoryEntries: 64},
		Store: StoreConfig{Dir: "profiles", Format: "yaml"},
	}
}

// loadConfig reads path over the defaults. A missing file is only an error
// when the path was given explicitly.
func loadConfig(path string, explicit bool) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
