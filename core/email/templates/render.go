package templates

import (
	"context"
	"fmt"
	"strings"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/mailkit/core/email"
)

// Render renders a templ component to an HTML string.
func Render(ctx context.Context, c templ.Component) (string, error) {
	var b strings.Builder
	if err := c.Render(ctx, &b); err != nil {
		return "", fmt.Errorf("%w: failed to render template: %v", email.ErrInvalidParams, err)
	}
	return b.String(), nil
}

// WithHTML renders c and sets the result as the message's HTML body,
// replacing any text body.
func WithHTML(ctx context.Context, msg email.Message, c templ.Component) (email.Message, error) {
	html, err := Render(ctx, c)
	if err != nil {
		return msg, err
	}
	return msg.WithHTML(html), nil
}
