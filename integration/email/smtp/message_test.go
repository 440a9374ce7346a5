package smtp

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mailkit/core/email"
)

func testClient(t *testing.T) *Client {
	t.Helper()

	c, err := New(Config{
		Host:     "smtp.example.com",
		Port:     587,
		Username: "user",
		Password: "password",
		TLSMode:  "starttls",
	})
	require.NoError(t, err)
	c.now = func() time.Time { return time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC) }
	return c
}

func TestBuildMessage_SinglePart(t *testing.T) {
	t.Parallel()

	c := testClient(t)
	msg := email.NewMessage("from@example.com", "to@example.com", "plain").
		WithHTML("<p>Hi</p>").
		WithSubject("Hello").
		WithReplyTo("reply@example.com").
		WithBcc("secret@example.com").
		WithListUnsubscribe("<https://example.com/unsub>").
		WithTags([]string{"welcome", "onboarding"})

	data, err := c.buildMessage(msg)
	require.NoError(t, err)
	out := string(data)

	assert.Contains(t, out, "From: from@example.com\r\n")
	assert.Contains(t, out, "To: to@example.com\r\n")
	assert.Contains(t, out, "Subject: Hello\r\n")
	assert.Contains(t, out, "Reply-To: reply@example.com\r\n")
	assert.Contains(t, out, "List-Unsubscribe: <https://example.com/unsub>\r\n")
	assert.Contains(t, out, "X-Tags: welcome, onboarding\r\n")
	assert.Contains(t, out, "Date: Fri, 01 Mar 2024 12:00:00 +0000\r\n")
	assert.Contains(t, out, "Message-ID: <")
	assert.Contains(t, out, "@smtp.example.com>\r\n")
	assert.Contains(t, out, "Content-Type: text/html; charset=\"UTF-8\"\r\n")
	assert.NotContains(t, out, "secret@example.com")
	assert.True(t, strings.HasSuffix(out, "\r\n\r\n<p>Hi</p>"))
}

func TestBuildMessage_EncodesSubject(t *testing.T) {
	t.Parallel()

	c := testClient(t)
	data, err := c.buildMessage(email.NewMessage("a@example.com", "b@example.com", "x").WithSubject("Grüße"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "Subject: =?utf-8?q?Gr=C3=BC=C3=9Fe?=\r\n")
}

func TestBuildMessage_Multipart(t *testing.T) {
	t.Parallel()

	c := testClient(t)
	content := strings.Repeat("z", 100)
	att := email.NewAttachment([]byte(content), "notes.txt", email.FileKindTxt)
	msg := email.NewMessage("a@example.com", "b@example.com", "see attached").WithAttachment(att)

	data, err := c.buildMessage(msg)
	require.NoError(t, err)
	out := string(data)

	assert.Contains(t, out, "Content-Type: multipart/mixed; boundary=")
	assert.Contains(t, out, "Content-Type: text/plain; charset=\"UTF-8\"")
	assert.Contains(t, out, "Content-Disposition: attachment; filename=notes.txt")
	assert.Contains(t, out, "Content-Transfer-Encoding: base64")
	assert.NotContains(t, out, "Content-Id")
	assert.Contains(t, out, "see attached")
	assert.Contains(t, out, wrapLines(att.Content(), 76))
}

func TestBuildMessage_RejectsLineBreaks(t *testing.T) {
	t.Parallel()

	c := testClient(t)
	base := email.NewMessage("a@example.com", "b@example.com", "x")

	tests := []struct {
		name string
		msg  email.Message
	}{
		{"reply-to", base.WithReplyTo("r@example.com\r\nBcc: evil@example.com")},
		{"from", email.NewMessage("a@example.com\nBcc: evil@example.com", "b@example.com", "x")},
		{"to", email.NewMessage("a@example.com", "b@example.com\rX-Evil: 1", "x")},
		{"cc", base.WithCc("cc@example.com\r\nBcc: evil@example.com")},
		{"bcc", base.WithBcc("bcc@example.com\nX-Evil: 1")},
		{"list-unsubscribe", base.WithListUnsubscribe("<https://example.com>\r\nBcc: evil@example.com")},
		{"tag", base.WithTags([]string{"ok", "bad\r\nBcc: evil@example.com"})},
		{"attachment name", base.WithAttachment(email.NewAttachment([]byte("x"), "a.txt\r\nX-Evil: 1", email.FileKindTxt))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			data, err := c.buildMessage(tt.msg)
			assert.ErrorIs(t, err, email.ErrInvalidParams)
			assert.Contains(t, err.Error(), tt.name)
			assert.Nil(t, data)
		})
	}

	t.Run("subject is encoded", func(t *testing.T) {
		t.Parallel()

		data, err := c.buildMessage(base.WithSubject("Hi\r\nBcc: evil@example.com"))
		require.NoError(t, err)
		for _, line := range strings.Split(string(data), "\r\n") {
			assert.False(t, strings.HasPrefix(line, "Bcc:"), "unexpected header line %q", line)
		}
	})
}

func TestWrapLines(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "abc", wrapLines("abc", 4))
	assert.Equal(t, "abcd", wrapLines("abcd", 4))
	assert.Equal(t, "abcd\r\nefgh\r\ni", wrapLines("abcdefghi", 4))
}

func TestRecipients(t *testing.T) {
	t.Parallel()

	msg := email.NewMessage("a@example.com", "to@example.com", "x")
	assert.Equal(t, []string{"to@example.com"}, recipients(msg))

	msg = msg.WithCc("cc@example.com").WithBcc("bcc@example.com")
	assert.Equal(t, []string{"to@example.com", "cc@example.com", "bcc@example.com"}, recipients(msg))
}
