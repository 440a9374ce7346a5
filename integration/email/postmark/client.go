package postmark

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mrz1836/postmark"

	"github.com/dmitrymomot/mailkit/core/email"
)

// Compile-time check that Client implements email.EmailSender
var _ email.EmailSender = (*Client)(nil)

// API is the subset of the Postmark SDK used by Client.
type API interface {
	SendEmail(ctx context.Context, email postmark.Email) (postmark.EmailResponse, error)
}

type Client struct {
	client API
	config Config
}

// Option configures a Client.
type Option func(*Client)

// WithAPI replaces the Postmark SDK client, mainly for tests.
func WithAPI(api API) Option {
	return func(c *Client) {
		c.client = api
	}
}

// New creates a Postmark-backed email sender.
// Both tokens are required for runtime operation - this enforces
// explicit configuration rather than silent failures in production.
func New(cfg Config, opts ...Option) (*Client, error) {
	if cfg.PostmarkServerToken == "" {
		return nil, fmt.Errorf("%w: PostmarkServerToken is required", email.ErrInvalidConfig)
	}
	if cfg.PostmarkAccountToken == "" {
		return nil, fmt.Errorf("%w: PostmarkAccountToken is required", email.ErrInvalidConfig)
	}
	switch cfg.TrackLinks {
	case "", "None", "HtmlAndText", "HtmlOnly", "TextOnly":
	default:
		return nil, fmt.Errorf("%w: TrackLinks must be None, HtmlAndText, HtmlOnly or TextOnly", email.ErrInvalidConfig)
	}

	c := &Client{
		client: postmark.NewClient(cfg.PostmarkServerToken, cfg.PostmarkAccountToken),
		config: cfg,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// MustNewClient creates a Postmark client that panics on invalid config.
// Follows framework pattern of failing fast during initialization rather than
// allowing broken services to start.
func MustNewClient(cfg Config, opts ...Option) *Client {
	client, err := New(cfg, opts...)
	if err != nil {
		panic(err)
	}
	return client
}

// SendEmail implements EmailSender using Postmark's transactional API.
// Postmark accepts one tag per message, so the first tag is used and the
// full list is kept in metadata.
func (c *Client) SendEmail(ctx context.Context, msg email.Message) error {
	if err := msg.Validate(); err != nil {
		return err
	}

	resp, err := c.client.SendEmail(ctx, c.toPostmark(msg))
	if err != nil {
		return errors.Join(email.ErrFailedToSendEmail, err)
	}
	if resp.ErrorCode > 0 {
		return errors.Join(
			email.ErrFailedToSendEmail,
			fmt.Errorf("postmark error: %d - %s", resp.ErrorCode, resp.Message),
		)
	}
	return nil
}

func (c *Client) toPostmark(msg email.Message) postmark.Email {
	out := postmark.Email{
		From:          msg.From(),
		To:            msg.To(),
		MessageStream: c.config.MessageStream,
		TrackOpens:    c.config.TrackOpens,
		TrackLinks:    c.config.TrackLinks,
	}
	out.TextBody, _ = msg.TextBody()
	out.HTMLBody, _ = msg.HTMLBody()
	out.Cc, _ = msg.Cc()
	out.Bcc, _ = msg.Bcc()
	out.Subject, _ = msg.Subject()
	out.ReplyTo, _ = msg.ReplyTo()

	if v, ok := msg.ListUnsubscribe(); ok {
		out.Headers = append(out.Headers, postmark.Header{Name: "List-Unsubscribe", Value: v})
	}

	if tags := msg.Tags(); len(tags) > 0 {
		out.Tag = tags[0]
		if len(tags) > 1 {
			out.Metadata = map[string]string{"tags": strings.Join(tags, ",")}
		}
	}

	for _, a := range msg.Attachments() {
		cid, _ := a.ContentID()
		out.Attachments = append(out.Attachments, postmark.Attachment{
			Name:        a.Name(),
			Content:     a.Content(),
			ContentType: a.ContentType(),
			ContentID:   cid,
		})
	}
	return out
}
