package email

import "context"

// EmailSender delivers a single message through one provider.
// Implementations perform exactly one delivery attempt per call.
type EmailSender interface {
	SendEmail(ctx context.Context, msg Message) error
}
