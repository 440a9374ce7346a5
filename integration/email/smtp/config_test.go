package smtp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mailkit/integration/email/smtp"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("SMTP_HOST", "mail.example.com")
	t.Setenv("SMTP_USERNAME", "mailer")
	t.Setenv("SMTP_PASSWORD", "secret")

	cfg, err := smtp.LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, smtp.Config{
		Host:     "mail.example.com",
		Port:     587,
		Username: "mailer",
		Password: "secret",
		TLSMode:  "starttls",
	}, cfg)

	_, err = smtp.New(cfg)
	assert.NoError(t, err)
}
