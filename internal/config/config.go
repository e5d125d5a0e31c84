// Package config loads backend configuration from an optional YAML
// file plus MUNCHBOX_* environment overrides.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Storage StorageConfig `mapstructure:"storage"`
	Auth    AuthConfig    `mapstructure:"auth"`
	Orders  OrdersConfig  `mapstructure:"orders"`
	Log     LogConfig     `mapstructure:"log"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

type StorageConfig struct {
	// Backend selects the store implementation: "jsonfile" or "sqlite".
	Backend string `mapstructure:"backend"`
	// Dir holds the JSON collection files.
	Dir string `mapstructure:"dir"`
	// Persistence is "disk" or "discard". Discard accepts writes and
	// drops them, for hosts without a writable filesystem.
	Persistence string `mapstructure:"persistence"`
	// SQLitePath is the database file for the sqlite backend.
	SQLitePath string `mapstructure:"sqlite_path"`
}

type AuthConfig struct {
	AdminEmail string `mapstructure:"admin_email"`
	// AdminPassword is compared directly when AdminPasswordHash is
	// empty; the hash, when set, is verified with bcrypt instead.
	AdminPassword     string        `mapstructure:"admin_password"`
	AdminPasswordHash string        `mapstructure:"admin_password_hash"`
	JWTSecret         string        `mapstructure:"jwt_secret"`
	TokenTTL          time.Duration `mapstructure:"token_ttl"`
}

type OrdersConfig struct {
	// StrictTransitions enforces the forward status path. Off by
	// default, matching the historically permissive update.
	StrictTransitions bool `mapstructure:"strict_transitions"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

// Load reads configuration. configPath may be empty, in which case
// only defaults and environment variables apply; a named file that
// cannot be read is an error.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("storage.backend", "jsonfile")
	v.SetDefault("storage.dir", "./data")
	v.SetDefault("storage.persistence", "disk")
	v.SetDefault("storage.sqlite_path", "./data/munchbox.db")
	v.SetDefault("auth.admin_email", "admin@munchbox.com")
	v.SetDefault("auth.admin_password", "munchbox123")
	v.SetDefault("auth.jwt_secret", "dev-secret-change-me")
	v.SetDefault("auth.token_ttl", 24*time.Hour)
	v.SetDefault("log.level", "info")

	v.SetEnvPrefix("MUNCHBOX")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	switch config.Storage.Backend {
	case "jsonfile", "sqlite":
	default:
		return nil, fmt.Errorf("unknown storage backend %q", config.Storage.Backend)
	}
	switch config.Storage.Persistence {
	case "disk", "discard":
	default:
		return nil, fmt.Errorf("unknown persistence mode %q", config.Storage.Persistence)
	}

	return &config, nil
}

// Addr is the listen address.
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
