package postmark

import (
	"github.com/dmitrymomot/mailkit/core/config"
)

// Config holds Postmark credentials and tracking defaults.
type Config struct {
	PostmarkServerToken  string `env:"POSTMARK_SERVER_TOKEN,required"`
	PostmarkAccountToken string `env:"POSTMARK_ACCOUNT_TOKEN,required"`
	MessageStream        string `env:"POSTMARK_MESSAGE_STREAM" envDefault:"outbound"`
	TrackOpens           bool   `env:"POSTMARK_TRACK_OPENS" envDefault:"true"`
	TrackLinks           string `env:"POSTMARK_TRACK_LINKS" envDefault:"HtmlOnly"` // None, HtmlAndText, HtmlOnly, TextOnly
}

// LoadConfig reads the Postmark Config from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
