// Package config loads catalog service configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

const (
	defaultListenAddr = ":8080"
	defaultAPIKey     = "dev-secret-key"
	defaultLogLevel   = "info"
)

// Config holds service configuration values.
type Config struct {
	ListenAddr string
	APIKey     string
	LogLevel   string
	SeedFile   string
	DevMode    bool
}

// Load reads configuration from environment variables.
func Load() (Config, error) {
	cfg := Config{
		ListenAddr: envOrDefault("CATALOG_LISTEN_ADDR", defaultListenAddr),
		APIKey:     envOrDefault("CATALOG_API_KEY", defaultAPIKey),
		LogLevel:   strings.ToLower(envOrDefault("CATALOG_LOG_LEVEL", defaultLogLevel)),
		SeedFile:   envOrDefault("CATALOG_SEED_FILE", ""),
		DevMode:    envBool("CATALOG_DEV_MODE", false),
	}

	if strings.TrimSpace(cfg.APIKey) == "" {
		return Config{}, fmt.Errorf("CATALOG_API_KEY must not be blank")
	}

	return cfg, nil
}

func envOrDefault(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func envBool(key string, defaultVal bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return defaultVal
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		switch strings.ToLower(v) {
		case "yes", "on":
			return true
		case "no", "off":
			return false
		default:
			return defaultVal
		}
	}
	return b
}
