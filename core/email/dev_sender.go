package email

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// DevSender implements EmailSender for local development.
// It saves the request payload as JSON and the body as an .html or .txt
// file in a directory instead of sending anything.
type DevSender struct {
	dir string
	now func() time.Time
}

// NewDevSender creates a development email sender that saves emails to disk.
// The directory will be created if it doesn't exist.
func NewDevSender(dir string) EmailSender {
	return &DevSender{dir: dir, now: time.Now}
}

// SendEmail writes the message to the configured directory.
func (d *DevSender) SendEmail(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrFailedToSendEmail, err)
	}
	if err := msg.Validate(); err != nil {
		return err
	}

	if err := os.MkdirAll(d.dir, 0755); err != nil {
		return fmt.Errorf("%w: failed to create directory: %v", ErrFailedToSendEmail, err)
	}

	// Timestamp prefix keeps files in chronological order
	baseFilename := fmt.Sprintf("%s_%s", d.now().Format("2006_01_02_150405.000000"), sanitizeFilename(identifier(msg)))

	// Validate guarantees exactly one body is present
	body, _ := msg.TextBody()
	ext := ".txt"
	if html, ok := msg.HTMLBody(); ok {
		body, ext = html, ".html"
	}
	bodyPath := filepath.Join(d.dir, baseFilename+ext)
	if err := os.WriteFile(bodyPath, []byte(body), 0644); err != nil {
		return fmt.Errorf("%w: failed to write body file: %v", ErrFailedToSendEmail, err)
	}

	payload, err := msg.JSON()
	if err != nil {
		return fmt.Errorf("%w: failed to marshal message: %v", ErrFailedToSendEmail, err)
	}

	jsonPath := filepath.Join(d.dir, baseFilename+".json")
	if err := os.WriteFile(jsonPath, payload, 0644); err != nil {
		return fmt.Errorf("%w: failed to write JSON file: %v", ErrFailedToSendEmail, err)
	}

	return nil
}

// identifier prefers the first tag, then the subject.
func identifier(msg Message) string {
	if tags := msg.Tags(); len(tags) > 0 {
		return tags[0]
	}
	subject, _ := msg.Subject()
	return subject
}

// sanitizeRegex removes filesystem-unsafe characters from filenames
var sanitizeRegex = regexp.MustCompile(`[^a-zA-Z0-9\-_.]`)

// sanitizeFilename converts a string into a safe filename.
// Accents are folded to their base letters before unsafe characters are dropped.
func sanitizeFilename(s string) string {
	// Transformers carry state, so the chain is built per call.
	fold := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	if folded, _, err := transform.String(fold, s); err == nil {
		s = folded
	}

	s = strings.ReplaceAll(s, " ", "_")
	s = sanitizeRegex.ReplaceAllString(s, "")

	const maxLength = 100
	if len(s) > maxLength {
		s = s[:maxLength]
	}

	if s == "" {
		s = "email"
	}

	return strings.ToLower(s)
}
