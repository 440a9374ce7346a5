package email_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mailkit/core/email"
)

func TestDevSender_SendEmail(t *testing.T) {
	t.Parallel()

	t.Run("writes html body and payload", func(t *testing.T) {
		t.Parallel()

		dir := filepath.Join(t.TempDir(), "emails")
		sender := email.NewDevSender(dir)

		msg := email.NewMessage("a@x.com", "b@x.com", "hi").
			WithHTML("<h1>Hello</h1>").
			WithSubject("Hello World!").
			WithTag("Welcome Email")

		require.NoError(t, sender.SendEmail(context.Background(), msg))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, entries, 2)

		var htmlFile, jsonFile string
		for _, e := range entries {
			switch filepath.Ext(e.Name()) {
			case ".html":
				htmlFile = e.Name()
			case ".json":
				jsonFile = e.Name()
			}
		}
		require.NotEmpty(t, htmlFile)
		require.NotEmpty(t, jsonFile)
		assert.True(t, strings.HasSuffix(htmlFile, "_welcome_email.html"))

		body, err := os.ReadFile(filepath.Join(dir, htmlFile))
		require.NoError(t, err)
		assert.Equal(t, "<h1>Hello</h1>", string(body))

		payload, err := os.ReadFile(filepath.Join(dir, jsonFile))
		require.NoError(t, err)
		assert.JSONEq(t, `{"from":"a@x.com","to":"b@x.com","htmlbody":"<h1>Hello</h1>","subject":"Hello World!","tags":["Welcome Email"]}`, string(payload))
	})

	t.Run("writes text body", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		sender := email.NewDevSender(dir)

		require.NoError(t, sender.SendEmail(context.Background(), email.NewMessage("a@x.com", "b@x.com", "plain")))

		matches, err := filepath.Glob(filepath.Join(dir, "*_email.txt"))
		require.NoError(t, err)
		require.Len(t, matches, 1)

		body, err := os.ReadFile(matches[0])
		require.NoError(t, err)
		assert.Equal(t, "plain", string(body))
	})

	t.Run("folds accents in file name", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		sender := email.NewDevSender(dir)

		msg := email.NewMessage("a@x.com", "b@x.com", "hi").WithSubject("Café Déjà Vu")
		require.NoError(t, sender.SendEmail(context.Background(), msg))

		matches, err := filepath.Glob(filepath.Join(dir, "*_cafe_deja_vu.txt"))
		require.NoError(t, err)
		assert.Len(t, matches, 1)
	})

	t.Run("invalid message", func(t *testing.T) {
		t.Parallel()

		sender := email.NewDevSender(t.TempDir())
		err := sender.SendEmail(context.Background(), email.NewMessage("", "b@x.com", "hi"))
		assert.ErrorIs(t, err, email.ErrInvalidParams)
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		sender := email.NewDevSender(t.TempDir())
		err := sender.SendEmail(ctx, email.NewMessage("a@x.com", "b@x.com", "hi"))
		assert.ErrorIs(t, err, email.ErrFailedToSendEmail)
	})
}

func TestAddressValidator(t *testing.T) {
	t.Parallel()

	v := email.NewAddressValidator()

	tests := []struct {
		address string
		want    bool
	}{
		{"user@example.com", true},
		{"first.last+tag@sub.example.org", true},
		{"", false},
		{"not-an-email", false},
		{"user@", false},
		{"@example.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.address, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, v.Validate(tt.address))
		})
	}

	fn := email.AddressValidatorFunc(func(address string) bool { return address == "ok" })
	assert.True(t, fn.Validate("ok"))
	assert.False(t, fn.Validate("nope"))
}
