package ohmysmtp

import (
	"time"

	"github.com/dmitrymomot/mailkit/core/config"
)

// Config holds OhMySMTP client settings loaded from the environment.
type Config struct {
	APIKey            string        `env:"OHMYSMTP_API_KEY,required"`
	Endpoint          string        `env:"OHMYSMTP_ENDPOINT" envDefault:"https://app.ohmysmtp.com/api/v1/send"`
	Timeout           time.Duration `env:"OHMYSMTP_TIMEOUT" envDefault:"30s"`
	ValidateRecipient bool          `env:"OHMYSMTP_VALIDATE_RECIPIENT" envDefault:"false"`
}

// LoadConfig reads Config from the environment and an optional .env file.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
