package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths are searched in order when CONFIG_PATH is not set.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/traintickets/config.yaml",
}

const ConfigPathEnvVar = "CONFIG_PATH"

func defaultConfig() *Config {
	return &Config{
		App: AppConfig{
			Addr:            ":8080",
			ShutdownTimeout: 10 * time.Second,
		},
		API: APIConfig{
			BaseURL: "http://127.0.0.1:8000",
			Timeout: 10 * time.Second,
			Breaker: BreakerConfig{
				Enabled:     false,
				MaxRequests: 3,
				Interval:    time.Minute,
				Timeout:     30 * time.Second,
				MinRequests: 10,
				FailureRate: 0.6,
			},
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{
				"http://localhost:3000",
				"http://127.0.0.1:3000",
				"http://localhost:5173",
				"http://127.0.0.1:5173",
			},
		},
		UI: UIConfig{Language: "uk"},
		Security: SecurityConfig{
			PurchaseTokenTTL:      30 * time.Minute,
			PurchaseRatePerMinute: 20,
		},
		Log: LogConfig{Level: "info", Format: "json"},
	}
}

// envKeys maps the supported environment variables to config paths.
var envKeys = map[string]string{
	"APP_ADDR":             "app.addr",
	"GIN_MODE":             "app.gin_mode",
	"SHUTDOWN_TIMEOUT":     "app.shutdown_timeout",
	"API_BASE_URL":         "api.base_url",
	"API_TIMEOUT":          "api.timeout",
	"API_BREAKER_ENABLED":  "api.breaker.enabled",
	"API_BREAKER_TIMEOUT":  "api.breaker.timeout",
	"CORS_ALLOWED_ORIGINS": "cors.allowed_origins",
	"UI_LANGUAGE":          "ui.language",
	"FORM_SECRET":          "security.form_secret",
	"PURCHASE_TOKEN_TTL":   "security.purchase_token_ttl",
	"ANALYTICS_AUTH_FILE":  "security.analytics_auth_file",
	"PURCHASE_RATE_LIMIT":  "security.purchase_rate_per_minute",
	"LOG_LEVEL":            "log.level",
	"LOG_FORMAT":           "log.format",
}

// sliceConfigPaths are accepted as comma separated strings from the environment.
var sliceConfigPaths = []string{
	"cors.allowed_origins",
}

// Load layers defaults, an optional YAML file and the environment, in that
// order of increasing priority, then validates the result.
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path := findConfigFile(); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}
	cfg.App.GinMode = strings.TrimSpace(cfg.App.GinMode)
	cfg.API.BaseURL = strings.TrimRight(strings.TrimSpace(cfg.API.BaseURL), "/")

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

func findConfigFile() string {
	if p := os.Getenv(ConfigPathEnvVar); p != "" {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	for _, p := range DefaultConfigPaths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// envTransformFunc returns "" for variables the app does not read, which
// makes koanf skip them.
func envTransformFunc(key string) string {
	return envKeys[key]
}

func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		raw, ok := k.Get(path).(string)
		if !ok {
			continue
		}
		out := []string{}
		for _, p := range strings.Split(raw, ",") {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
		if err := k.Set(path, out); err != nil {
			return fmt.Errorf("failed to set %s: %w", path, err)
		}
	}
	return nil
}
