package logger_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/mailkit/core/logger"
)

func TestNilSafeAttrs(t *testing.T) {
	t.Parallel()

	assert.True(t, logger.Error(nil).Equal(slog.Attr{}))
	assert.True(t, logger.Key("k", nil).Equal(slog.Attr{}))
}

func TestAttrs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))

	log.Info("sent",
		logger.Provider("ohmysmtp"),
		logger.StatusCode(200),
		logger.BytesOut(42),
		logger.Result("success"),
		logger.Component("email"),
		logger.Error(errors.New("boom")),
		logger.Error(nil),
		logger.Group("req", logger.Key("id", "abc")),
	)

	out := buf.String()
	assert.Contains(t, out, "provider=ohmysmtp")
	assert.Contains(t, out, "status_code=200")
	assert.Contains(t, out, "bytes_out=42")
	assert.Contains(t, out, "result=success")
	assert.Contains(t, out, "component=email")
	assert.Contains(t, out, "error=boom")
	assert.Contains(t, out, "req.id=abc")
}

func TestElapsed(t *testing.T) {
	t.Parallel()

	attr := logger.Elapsed(time.Now().Add(-time.Second))
	assert.Equal(t, "elapsed", attr.Key)
	assert.GreaterOrEqual(t, attr.Value.Duration(), time.Second)
}
