package ohmysmtp

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/dmitrymomot/mailkit/core/email"
	"github.com/dmitrymomot/mailkit/core/logger"
)

const (
	// DefaultEndpoint is the send API URL.
	DefaultEndpoint = "https://app.ohmysmtp.com/api/v1/send"
	// TokenHeader carries the server API token.
	TokenHeader = "OhMySMTP-Server-Token"

	defaultTimeout = 30 * time.Second
)

// Compile-time check that Client implements email.EmailSender
var _ email.EmailSender = (*Client)(nil)

// Client sends messages through the OhMySMTP HTTP API.
// It holds no mutable state and is safe for concurrent use.
type Client struct {
	apiKey     string
	endpoint   string
	timeout    time.Duration
	transport  Transport
	classifier Classifier
	validator  email.AddressValidator
	logger     *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithEndpoint overrides the send API URL.
func WithEndpoint(url string) Option {
	return func(c *Client) {
		c.endpoint = url
	}
}

// WithTransport replaces the HTTP transport.
func WithTransport(t Transport) Option {
	return func(c *Client) {
		c.transport = t
	}
}

// WithHTTPClient sends requests through a custom *http.Client.
// A nil client is ignored.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.transport = NewHTTPTransportWithClient(client)
		}
	}
}

// WithTimeout sets the request timeout of the default transport.
// It has no effect together with WithTransport or WithHTTPClient.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithClassifier replaces the response rule tables.
func WithClassifier(cl Classifier) Option {
	return func(c *Client) {
		c.classifier = cl
	}
}

// WithAddressValidation enables pre-flight validation of the to address
// with email.NewAddressValidator.
func WithAddressValidation() Option {
	return func(c *Client) {
		c.validator = email.NewAddressValidator()
	}
}

// WithAddressValidator enables pre-flight validation of the to address
// with a custom validator.
func WithAddressValidator(v email.AddressValidator) Option {
	return func(c *Client) {
		c.validator = v
	}
}

// WithLogger sets a logger for debug tracing of requests.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// New creates an OhMySMTP client from a server API token.
func New(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("%w: API key is required", email.ErrInvalidConfig)
	}

	c := &Client{
		apiKey:     apiKey,
		endpoint:   DefaultEndpoint,
		timeout:    defaultTimeout,
		classifier: DefaultClassifier(),
		logger:     slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.endpoint == "" {
		return nil, fmt.Errorf("%w: endpoint must not be empty", email.ErrInvalidConfig)
	}
	if c.transport == nil {
		c.transport = NewHTTPTransport(c.timeout)
	}
	c.logger = c.logger.With(logger.Component("email"), logger.Provider("ohmysmtp"))

	return c, nil
}

// MustNew creates a client that panics on invalid config.
// Follows framework pattern of failing fast during initialization rather than
// allowing broken services to start.
func MustNew(apiKey string, opts ...Option) *Client {
	c, err := New(apiKey, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// NewFromConfig creates a client from Config. Options are applied after
// the config values.
func NewFromConfig(cfg Config, opts ...Option) (*Client, error) {
	var base []Option
	if cfg.Timeout > 0 {
		base = append(base, WithTimeout(cfg.Timeout))
	}
	if cfg.Endpoint != "" {
		base = append(base, WithEndpoint(cfg.Endpoint))
	}
	if cfg.ValidateRecipient {
		base = append(base, WithAddressValidation())
	}
	return New(cfg.APIKey, append(base, opts...)...)
}

// SendEmail performs one POST and returns nil or an *Error.
// The message is not validated locally except for the optional
// recipient check; the service reports missing or malformed fields.
func (c *Client) SendEmail(ctx context.Context, msg email.Message) error {
	if c.validator != nil && !c.validator.Validate(msg.To()) {
		return NewError(KindInvalidEmail)
	}

	payload, err := msg.JSON()
	if err != nil {
		return OtherError(fmt.Sprintf("encode request: %v", err))
	}

	header := http.Header{}
	header.Set("Accept", "application/json")
	header.Set("Content-Type", "application/json")
	header.Set(TokenHeader, c.apiKey)

	start := time.Now()
	c.logger.DebugContext(ctx, "sending email",
		logger.Group("request",
			logger.Key("endpoint", c.endpoint),
			logger.BytesOut(int64(len(payload))),
		),
	)

	resp, err := c.transport.Post(ctx, c.endpoint, header, payload)
	if err != nil {
		nerr := NetworkError(err)
		c.logger.DebugContext(ctx, "email request failed",
			logger.Elapsed(start),
			logger.Error(nerr),
		)
		return nerr
	}

	result := c.classifier.Classify(resp.StatusCode, resp.Body, resp.BodyErr)
	c.logger.DebugContext(ctx, "email request completed",
		logger.StatusCode(resp.StatusCode),
		logger.Elapsed(start),
		logger.Result(resultLabel(result)),
	)
	return result
}

func resultLabel(err error) string {
	if err == nil {
		return "success"
	}
	return KindOf(err).String()
}
