// Package postmark provides a Postmark-backed email.EmailSender.
//
// It maps an email.Message onto Postmark's transactional API: bodies, cc,
// bcc, reply-to and attachments are passed through, List-Unsubscribe is sent
// as a custom header, and because Postmark accepts a single tag the first
// tag is used while the full list is stored in metadata.
//
// # Configuration
//
//	type Config struct {
//		PostmarkServerToken  string `env:"POSTMARK_SERVER_TOKEN,required"`
//		PostmarkAccountToken string `env:"POSTMARK_ACCOUNT_TOKEN,required"`
//		MessageStream        string `env:"POSTMARK_MESSAGE_STREAM" envDefault:"outbound"`
//		TrackOpens           bool   `env:"POSTMARK_TRACK_OPENS" envDefault:"true"`
//		TrackLinks           string `env:"POSTMARK_TRACK_LINKS" envDefault:"HtmlOnly"`
//	}
//
// # Usage Example
//
//	var cfg postmark.Config
//	config.MustLoad(&cfg)
//
//	sender := postmark.MustNewClient(cfg)
//	err := sender.SendEmail(ctx, email.NewMessage("noreply@example.com", "user@example.com", "Hi!"))
//
// # Error Handling
//
// Configuration errors wrap email.ErrInvalidConfig. SDK failures and
// non-zero Postmark error codes are joined with email.ErrFailedToSendEmail.
// Messages failing email.Message.Validate return email.ErrInvalidParams
// without calling the API.
package postmark
