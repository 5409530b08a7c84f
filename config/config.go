// Package config loads the daemon configuration from a YAML file with
// environment variable overrides, or from the environment alone when no file
// is present.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Black-And-White-Club/club-mirror/internal/snowflake"
)

// Config struct to hold the configuration settings
type Config struct {
	NATS          NATSConfig          `yaml:"nats"`
	HTTP          HTTPConfig          `yaml:"http"`
	JWT           JWTConfig           `yaml:"jwt"`
	Cache         CacheConfig         `yaml:"cache"`
	Observability ObservabilityConfig `yaml:"observability"`
}

// NATSConfig holds NATS configuration.
type NATSConfig struct {
	URL string `yaml:"url"`
}

// HTTPConfig holds the query API listener configuration.
type HTTPConfig struct {
	Address string `yaml:"address"`
}

// JWTConfig holds JWT configuration for the query API.
type JWTConfig struct {
	Secret     string        `yaml:"secret"`
	DefaultTTL time.Duration `yaml:"default_ttl"`
}

// CacheConfig holds the entity cache tuning knobs.
type CacheConfig struct {
	// ShardCount is the gateway shard count, used only to attribute
	// anomalies to the shard their dispatch arrived on.
	ShardCount int `yaml:"shard_count"`
	// LocalUserID is the account the upstream gateway session runs as.
	LocalUserID snowflake.ID `yaml:"local_user_id"`
	// FullCaching applies voice states eagerly during club snapshots.
	FullCaching bool `yaml:"full_caching"`
	// VoiceConnectRate caps outbound voice connect commands per second.
	VoiceConnectRate float64 `yaml:"voice_connect_rate"`
}

// ObservabilityConfig holds configuration for observability components.
type ObservabilityConfig struct {
	Environment    string `yaml:"environment"`
	LogLevel       string `yaml:"log_level"`
	MetricsAddress string `yaml:"metrics_address"`
}

// LoadConfig loads the configuration from a YAML file.
func LoadConfig(filename string) (*Config, error) {
	// Try reading configuration from the file first
	data, err := os.ReadFile(filename)
	if err != nil {
		// If the file is not found, try loading from environment variables
		return loadConfigFromEnv()
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyEnvOverrides(&cfg)
	applyDefaults(&cfg)
	return &cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("NATS_URL"); v != "" {
		cfg.NATS.URL = v
	}
	if v := os.Getenv("HTTP_ADDRESS"); v != "" {
		cfg.HTTP.Address = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		cfg.JWT.Secret = v
	}
	if v := os.Getenv("JWT_DEFAULT_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.JWT.DefaultTTL = d
		}
	}
	if v := os.Getenv("CACHE_SHARD_COUNT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Cache.ShardCount = n
		}
	}
	if v := os.Getenv("CACHE_LOCAL_USER_ID"); v != "" {
		if id, err := snowflake.Parse(v); err == nil {
			cfg.Cache.LocalUserID = id
		}
	}
	if v := os.Getenv("CACHE_FULL_CACHING"); v != "" {
		cfg.Cache.FullCaching = v == "true"
	}
	if v := os.Getenv("CACHE_VOICE_CONNECT_RATE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Cache.VoiceConnectRate = f
		}
	}
	if v := os.Getenv("METRICS_ADDRESS"); v != "" {
		cfg.Observability.MetricsAddress = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Observability.LogLevel = v
	}
	if v := os.Getenv("ENV"); v != "" {
		cfg.Observability.Environment = v
	}
}

func applyDefaults(cfg *Config) {
	if cfg.HTTP.Address == "" {
		cfg.HTTP.Address = ":8080"
	}
	if cfg.JWT.DefaultTTL == 0 {
		cfg.JWT.DefaultTTL = 24 * time.Hour
	}
	if cfg.Cache.ShardCount <= 0 {
		cfg.Cache.ShardCount = 1
	}
	if cfg.Cache.VoiceConnectRate <= 0 {
		cfg.Cache.VoiceConnectRate = 1
	}
	if cfg.Observability.LogLevel == "" {
		cfg.Observability.LogLevel = "info"
	}
}

// loadConfigFromEnv loads the configuration from environment variables.
func loadConfigFromEnv() (*Config, error) {
	var cfg Config

	cfg.NATS.URL = os.Getenv("NATS_URL")
	if cfg.NATS.URL == "" {
		return nil, fmt.Errorf("NATS_URL environment variable not set")
	}

	applyEnvOverrides(&cfg)
	applyDefaults(&cfg)
	return &cfg, nil
}
