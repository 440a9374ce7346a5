// Package email provides the provider-neutral message model used by every
// sender in this module: the Message builder, base64 attachments with a
// closed set of file kinds, the JSON request format, the EmailSender
// interface and a development sender that writes messages to disk.
//
// # Building Messages
//
// A Message starts with a sender, a recipient and a plain text body. Every
// other field is set with a With* method that returns an updated copy:
//
//	import "github.com/dmitrymomot/mailkit/core/email"
//
//	msg := email.NewMessage("app@example.com", "user@example.com", "Body text").
//		WithSubject("Welcome").
//		WithReplyTo("support@example.com").
//		WithTags([]string{"onboarding", "welcome"})
//
// Text and HTML bodies are mutually exclusive. WithHTML clears the text body
// and WithTextBody clears the HTML body, so the last call wins:
//
//	msg = msg.WithHTML("<h1>Welcome!</h1>")
//	_, hasText := msg.TextBody() // false
//
// WithAttachment and WithTag replace the whole list with one element.
// Use WithAttachments and WithTags to send several.
//
// # Attachments
//
// NewAttachment encodes raw bytes and derives the content type from the
// declared FileKind. Content types are never sniffed:
//
//	report := email.NewAttachment(data, "report.pdf", email.FileKindPdf)
//	msg = msg.WithAttachment(report)
//
// FileKindFromName resolves a kind from a file extension, which is useful
// when bytes come from object storage:
//
//	kind, ok := email.FileKindFromName("invoice.PDF") // FileKindPdf, true
//
// # Wire Format
//
// Message.JSON renders the request body in a fixed key order, omitting
// absent optional fields:
//
//	{"from":"a@x.com","to":"b@x.com","textbody":"hi"}
//
// # Senders
//
// Providers implement EmailSender. NewDevSender saves the payload JSON and
// the body to a directory for local development:
//
//	sender := email.NewDevSender("./dev_emails")
//	err := sender.SendEmail(ctx, msg)
//
//	// Files created:
//	// ./dev_emails/2024_01_15_143052.000000_welcome.txt
//	// ./dev_emails/2024_01_15_143052.000000_welcome.json
//
// # Address Validation
//
// NewAddressValidator returns an AddressValidator backed by
// go-playground/validator. Senders that support pre-flight validation
// accept any AddressValidator, including AddressValidatorFunc.
//
// # Error Handling
//
// Provider errors match the sentinels in this package:
//
//	switch {
//	case errors.Is(err, email.ErrInvalidParams):
//		// rejected before sending
//	case errors.Is(err, email.ErrFailedToSendEmail):
//		// provider or network failure
//	case errors.Is(err, email.ErrInvalidConfig):
//		// sender construction failed
//	}
package email
