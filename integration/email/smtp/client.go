package smtp

import (
	"bytes"
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"mime"
	"mime/multipart"
	"net"
	"net/smtp"
	"net/textproto"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/mailkit/core/email"
)

// Compile-time check that Client implements email.EmailSender
var _ email.EmailSender = (*Client)(nil)

// Client implements the EmailSender interface using standard SMTP protocol.
// Supports multiple TLS modes (STARTTLS, TLS, plain) and is thread-safe for concurrent use.
type Client struct {
	config Config
	auth   smtp.Auth
	now    func() time.Time
}

// New creates an SMTP-backed email sender.
// All configuration fields are required for runtime operation to ensure
// explicit configuration and avoid silent failures in production.
func New(cfg Config) (*Client, error) {
	if cfg.Host == "" {
		return nil, fmt.Errorf("%w: Host is required", email.ErrInvalidConfig)
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("%w: Port must be between 1 and 65535", email.ErrInvalidConfig)
	}
	if cfg.Username == "" {
		return nil, fmt.Errorf("%w: Username is required", email.ErrInvalidConfig)
	}
	if cfg.Password == "" {
		return nil, fmt.Errorf("%w: Password is required", email.ErrInvalidConfig)
	}
	if cfg.TLSMode != "starttls" && cfg.TLSMode != "tls" && cfg.TLSMode != "plain" {
		return nil, fmt.Errorf("%w: TLSMode must be starttls, tls, or plain", email.ErrInvalidConfig)
	}

	return &Client{
		config: cfg,
		auth:   smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host),
		now:    time.Now,
	}, nil
}

// MustNewClient creates an SMTP client that panics on invalid config.
// Follows framework pattern of failing fast during initialization rather than
// allowing broken services to start.
func MustNewClient(cfg Config) *Client {
	client, err := New(cfg)
	if err != nil {
		panic(err)
	}
	return client
}

// SendEmail implements EmailSender using SMTP protocol.
// Recipients are the to, cc and bcc addresses; bcc is never written to
// the headers.
func (c *Client) SendEmail(ctx context.Context, msg email.Message) error {
	if err := ctx.Err(); err != nil {
		return errors.Join(email.ErrFailedToSendEmail, err)
	}

	if err := msg.Validate(); err != nil {
		return err
	}
	if err := checkHeaderValues(msg); err != nil {
		return err
	}

	data, err := c.buildMessage(msg)
	if err != nil {
		return errors.Join(email.ErrFailedToSendEmail, err)
	}

	serverAddr := net.JoinHostPort(c.config.Host, strconv.Itoa(c.config.Port))

	switch c.config.TLSMode {
	case "tls":
		err = c.sendWithTLS(serverAddr, msg, data)
	case "starttls":
		err = c.sendWithSTARTTLS(serverAddr, msg, data)
	case "plain":
		err = c.sendPlain(serverAddr, msg, data)
	}

	if err != nil {
		return errors.Join(email.ErrFailedToSendEmail, err)
	}

	return nil
}

// buildMessage creates the MIME-formatted email message.
// Messages with attachments are multipart/mixed; others are a single part.
func (c *Client) buildMessage(msg email.Message) ([]byte, error) {
	if err := checkHeaderValues(msg); err != nil {
		return nil, err
	}

	headers := map[string]string{
		"From":         msg.From(),
		"To":           msg.To(),
		"MIME-Version": "1.0",
		"Date":         c.now().Format(time.RFC1123Z),
		"Message-ID":   fmt.Sprintf("<%s@%s>", uuid.NewString(), c.config.Host),
	}
	if v, ok := msg.Cc(); ok {
		headers["Cc"] = v
	}
	if v, ok := msg.ReplyTo(); ok {
		headers["Reply-To"] = v
	}
	if v, ok := msg.Subject(); ok {
		headers["Subject"] = mime.QEncoding.Encode("utf-8", v)
	}
	if v, ok := msg.ListUnsubscribe(); ok {
		headers["List-Unsubscribe"] = v
	}
	if tags := msg.Tags(); len(tags) > 0 {
		headers["X-Tags"] = strings.Join(tags, ", ")
	}

	body, _ := msg.TextBody()
	bodyType := "text/plain; charset=\"UTF-8\""
	if html, ok := msg.HTMLBody(); ok {
		body, bodyType = html, "text/html; charset=\"UTF-8\""
	}

	var buf bytes.Buffer
	attachments := msg.Attachments()

	if len(attachments) == 0 {
		headers["Content-Type"] = bodyType
		writeHeaders(&buf, headers)
		buf.WriteString(body)
		return buf.Bytes(), nil
	}

	var parts bytes.Buffer
	mw := multipart.NewWriter(&parts)
	headers["Content-Type"] = "multipart/mixed; boundary=" + mw.Boundary()

	bodyPart, err := mw.CreatePart(textproto.MIMEHeader{"Content-Type": {bodyType}})
	if err != nil {
		return nil, fmt.Errorf("failed to create body part: %w", err)
	}
	if _, err := bodyPart.Write([]byte(body)); err != nil {
		return nil, fmt.Errorf("failed to write body part: %w", err)
	}

	for _, a := range attachments {
		h := textproto.MIMEHeader{
			"Content-Type":              {mime.FormatMediaType(a.ContentType(), map[string]string{"name": a.Name()})},
			"Content-Transfer-Encoding": {"base64"},
			"Content-Disposition":       {mime.FormatMediaType("attachment", map[string]string{"filename": a.Name()})},
		}
		if cid, ok := a.ContentID(); ok {
			h.Set("Content-ID", "<"+cid+">")
		}
		part, err := mw.CreatePart(h)
		if err != nil {
			return nil, fmt.Errorf("failed to create attachment part: %w", err)
		}
		if _, err := part.Write([]byte(wrapLines(a.Content(), 76))); err != nil {
			return nil, fmt.Errorf("failed to write attachment part: %w", err)
		}
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("failed to close multipart writer: %w", err)
	}

	writeHeaders(&buf, headers)
	buf.Write(parts.Bytes())
	return buf.Bytes(), nil
}

// checkHeaderValues rejects line breaks in every value that ends up in a
// header line or in the SMTP envelope. The subject is Q-encoded and exempt.
func checkHeaderValues(msg email.Message) error {
	fields := map[string]string{
		"from": msg.From(),
		"to":   msg.To(),
	}
	if v, ok := msg.Cc(); ok {
		fields["cc"] = v
	}
	if v, ok := msg.Bcc(); ok {
		fields["bcc"] = v
	}
	if v, ok := msg.ReplyTo(); ok {
		fields["reply-to"] = v
	}
	if v, ok := msg.ListUnsubscribe(); ok {
		fields["list-unsubscribe"] = v
	}
	for i, tag := range msg.Tags() {
		fields["tag "+strconv.Itoa(i)] = tag
	}
	for i, a := range msg.Attachments() {
		fields["attachment name "+strconv.Itoa(i)] = a.Name()
	}

	for name, v := range fields {
		if strings.ContainsAny(v, "\r\n") {
			return fmt.Errorf("%w: %s must not contain line breaks", email.ErrInvalidParams, name)
		}
	}
	return nil
}

func writeHeaders(buf *bytes.Buffer, headers map[string]string) {
	keys := make([]string, 0, len(headers))
	for k := range headers {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		fmt.Fprintf(buf, "%s: %s\r\n", k, headers[k])
	}
	buf.WriteString("\r\n")
}

// wrapLines splits base64 content into lines of at most n characters.
func wrapLines(s string, n int) string {
	if len(s) <= n {
		return s
	}
	var b strings.Builder
	for len(s) > n {
		b.WriteString(s[:n])
		b.WriteString("\r\n")
		s = s[n:]
	}
	b.WriteString(s)
	return b.String()
}

// recipients lists every envelope recipient, including bcc.
func recipients(msg email.Message) []string {
	rcpts := []string{msg.To()}
	if v, ok := msg.Cc(); ok {
		rcpts = append(rcpts, v)
	}
	if v, ok := msg.Bcc(); ok {
		rcpts = append(rcpts, v)
	}
	return rcpts
}

// sendWithTLS sends email using direct TLS connection.
func (c *Client) sendWithTLS(serverAddr string, msg email.Message, data []byte) error {
	tlsConfig := &tls.Config{
		ServerName: c.config.Host,
	}

	conn, err := tls.Dial("tcp", serverAddr, tlsConfig)
	if err != nil {
		return fmt.Errorf("failed to connect to SMTP server with TLS: %w", err)
	}
	defer func() { _ = conn.Close() }()

	client, err := smtp.NewClient(conn, c.config.Host)
	if err != nil {
		return fmt.Errorf("failed to create SMTP client: %w", err)
	}
	defer func() { _ = client.Close() }()

	return c.performSMTPTransaction(client, msg, data)
}

// sendWithSTARTTLS sends email using STARTTLS upgrade.
func (c *Client) sendWithSTARTTLS(serverAddr string, msg email.Message, data []byte) error {
	client, err := smtp.Dial(serverAddr)
	if err != nil {
		return fmt.Errorf("failed to connect to SMTP server: %w", err)
	}
	defer func() { _ = client.Close() }()

	tlsConfig := &tls.Config{
		ServerName: c.config.Host,
	}
	if err := client.StartTLS(tlsConfig); err != nil {
		return fmt.Errorf("failed to start TLS: %w", err)
	}

	return c.performSMTPTransaction(client, msg, data)
}

// sendPlain sends email without encryption.
func (c *Client) sendPlain(serverAddr string, msg email.Message, data []byte) error {
	client, err := smtp.Dial(serverAddr)
	if err != nil {
		return fmt.Errorf("failed to connect to SMTP server: %w", err)
	}
	defer func() { _ = client.Close() }()

	return c.performSMTPTransaction(client, msg, data)
}

// performSMTPTransaction performs the actual SMTP transaction.
func (c *Client) performSMTPTransaction(client *smtp.Client, msg email.Message, data []byte) error {
	if err := client.Auth(c.auth); err != nil {
		return fmt.Errorf("authentication failed: %w", err)
	}

	if err := client.Mail(msg.From()); err != nil {
		return fmt.Errorf("failed to set sender: %w", err)
	}

	for _, rcpt := range recipients(msg) {
		if err := client.Rcpt(rcpt); err != nil {
			return fmt.Errorf("failed to set recipient %s: %w", rcpt, err)
		}
	}

	writer, err := client.Data()
	if err != nil {
		return fmt.Errorf("failed to get data writer: %w", err)
	}

	if _, err := writer.Write(data); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write message: %w", err)
	}

	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to close data writer: %w", err)
	}

	// Quit errors are non-fatal as the message was already sent
	_ = client.Quit()

	return nil
}
