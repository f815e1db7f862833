package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/go-playground/validator/v10"
)

type Config struct {
	App      AppConfig      `koanf:"app"`
	API      APIConfig      `koanf:"api"`
	CORS     CORSConfig     `koanf:"cors"`
	UI       UIConfig       `koanf:"ui"`
	Security SecurityConfig `koanf:"security"`
	Log      LogConfig      `koanf:"log"`
}

type AppConfig struct {
	Addr            string        `koanf:"addr" validate:"required"`
	GinMode         string        `koanf:"gin_mode" validate:"omitempty,oneof=debug release test"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"gt=0"`
}

// APIConfig points at the train tickets backend.
type APIConfig struct {
	BaseURL string        `koanf:"base_url" validate:"required,url"`
	Timeout time.Duration `koanf:"timeout" validate:"gt=0"`
	Breaker BreakerConfig `koanf:"breaker"`
}

type BreakerConfig struct {
	Enabled     bool          `koanf:"enabled"`
	MaxRequests uint32        `koanf:"max_requests" validate:"gte=1"`
	Interval    time.Duration `koanf:"interval" validate:"gte=0"`
	Timeout     time.Duration `koanf:"timeout" validate:"gt=0"`
	MinRequests uint32        `koanf:"min_requests" validate:"gte=1"`
	FailureRate float64       `koanf:"failure_rate" validate:"gt=0,lte=1"`
}

type CORSConfig struct {
	AllowedOrigins []string `koanf:"allowed_origins"`
}

type UIConfig struct {
	Language string `koanf:"language" validate:"oneof=uk en"`
}

type SecurityConfig struct {
	// FormSecret signs purchase tokens. Empty means a random per-process key.
	FormSecret       string        `koanf:"form_secret"`
	PurchaseTokenTTL time.Duration `koanf:"purchase_token_ttl" validate:"gt=0"`
	// AnalyticsAuthFile holds "username:bcrypt-hash". Empty disables auth.
	AnalyticsAuthFile string `koanf:"analytics_auth_file"`
	// PurchaseRatePerMinute limits ticket purchases per client IP. 0 disables.
	PurchaseRatePerMinute int `koanf:"purchase_rate_per_minute" validate:"gte=0"`
}

type LogConfig struct {
	Level  string `koanf:"level" validate:"oneof=trace debug info warn error"`
	Format string `koanf:"format" validate:"oneof=json console"`
}

// Validate checks struct constraints and that the API base URL is absolute.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return err
	}
	u, err := url.Parse(c.API.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("api.base_url must be an absolute URL, got %q", c.API.BaseURL)
	}
	return nil
}
