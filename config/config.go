package config

import (
	"fmt"
	"time"

	"github.com/Temutjin2k/car-rental-system/pkg/configparser"
)

// Config contains all configuration variables of the application
type (
	Config struct {
		Server    ServerConfig
		RentalAPI RentalAPIConfig
		Session   SessionConfig

		LogLevel string `env:"LOG_LEVEL" default:"DEBUG"`
	}

	ServerConfig struct {
		Host        string `env:"SERVER_HOST" default:"0.0.0.0"`
		Port        string `env:"SERVER_PORT" default:"4000"`
		TemplateDir string `env:"SERVER_TEMPLATE_DIR" default:"web/templates"`
		StaticDir   string `env:"SERVER_STATIC_DIR" default:"web/static"`
	}

	RentalAPIConfig struct {
		BaseURL string        `env:"RENTAL_API_BASE_URL" default:"http://localhost:5167"`
		Timeout time.Duration `env:"RENTAL_API_TIMEOUT" default:"15s"`
	}

	SessionConfig struct {
		TTL    time.Duration `env:"SESSION_TTL" default:"24h"`
		Secure bool          `env:"SESSION_SECURE" default:"false"`
	}
)

func NewConfig(filepath string) (*Config, error) {
	cfg := &Config{}

	// Loading enviromental variables and parsing to config struct.
	if err := configparser.LoadAndParseYaml(filepath, cfg); err != nil {
		return nil, fmt.Errorf("failed to load and parse config: %w", err)
	}

	return cfg, nil
}
