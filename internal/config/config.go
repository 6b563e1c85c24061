// Package config loads and validates the application configuration.
package config

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/viper"
)

type Config struct {
	Dictionary DictionaryConfig `mapstructure:"dictionary"`
	Cache      CacheConfig      `mapstructure:"cache"`
	Server     ServerConfig     `mapstructure:"server"`
	Database   DatabaseConfig   `mapstructure:"database"`
}

type DictionaryConfig struct {
	// URL of the bulk dictionary JSON resource.
	URL string `mapstructure:"url" validate:"required,url"`
	// TTLDays bounds how long persisted cache envelopes stay fresh.
	TTLDays int `mapstructure:"ttl_days" validate:"gte=1"`
}

type CacheConfig struct {
	// Backend selects where envelopes persist: per-machine files or a shared
	// MySQL table.
	Backend   string `mapstructure:"backend" validate:"oneof=file mysql"`
	Directory string `mapstructure:"directory" validate:"required_if=Backend file"`
}

type ServerConfig struct {
	Host           string   `mapstructure:"host"`
	Port           int      `mapstructure:"port" validate:"gte=1,lte=65535"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type DatabaseConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	Username     string `mapstructure:"username"`
	Password     string `mapstructure:"password"`
	Database     string `mapstructure:"database"`
	TLS          bool   `mapstructure:"tls"`
	MaxOpenConns int    `mapstructure:"max_open_conns"`
	MaxIdleConns int    `mapstructure:"max_idle_conns"`
	// ConnMaxLifetime is in seconds.
	ConnMaxLifetime int `mapstructure:"conn_max_lifetime"`
}

func Load(configFile string) (*Config, error) {
	v := viper.New()

	v.SetConfigType("yaml")

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/hanzikit")
	}

	v.SetDefault("dictionary.url", "https://cdn.hanzikit.dev/data/dictionary.json")
	v.SetDefault("dictionary.ttl_days", 30)
	v.SetDefault("cache.backend", "file")
	v.SetDefault("cache.directory", filepath.Join("caches", "hanzikit"))
	v.SetDefault("server.host", "localhost")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.allowed_origins", []string{"http://localhost:3000"})
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.database", "hanzikit")

	// Credentials come from the environment only, never the config file.
	if err := v.BindEnv("database.username", "HANZIKIT_DB_USERNAME"); err != nil {
		return nil, fmt.Errorf("failed to bind HANZIKIT_DB_USERNAME environment variable: %w", err)
	}
	if err := v.BindEnv("database.password", "HANZIKIT_DB_PASSWORD"); err != nil {
		return nil, fmt.Errorf("failed to bind HANZIKIT_DB_PASSWORD environment variable: %w", err)
	}
	if err := v.BindEnv("dictionary.url", "HANZIKIT_DICTIONARY_URL"); err != nil {
		return nil, fmt.Errorf("failed to bind HANZIKIT_DICTIONARY_URL environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}
	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("config.Validate > %w", err)
	}

	return &cfg, nil
}
