package smtp

import (
	"github.com/dmitrymomot/mailkit/core/config"
)

// Config holds SMTP server configuration.
// All fields are required for runtime operation to ensure explicit configuration
// and avoid silent failures in production. Sender and reply-to addresses come
// from each email.Message.
type Config struct {
	Host     string `env:"SMTP_HOST,required"`
	Port     int    `env:"SMTP_PORT" envDefault:"587"`
	Username string `env:"SMTP_USERNAME,required"`
	Password string `env:"SMTP_PASSWORD,required"`
	TLSMode  string `env:"SMTP_TLS_MODE" envDefault:"starttls"` // starttls, tls, or plain
}

// LoadConfig reads the SMTP Config from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
