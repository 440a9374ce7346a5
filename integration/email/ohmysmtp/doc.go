// Package ohmysmtp provides an email.EmailSender backed by the OhMySMTP
// transactional email HTTP API.
//
// Each SendEmail call serializes the message, performs exactly one POST to
// the send endpoint and maps the response to a single outcome: nil on
// success or an *Error of a closed set of kinds. The client never retries,
// queues or rate-limits.
//
// # Usage Example
//
//	import (
//		"github.com/dmitrymomot/mailkit/core/email"
//		"github.com/dmitrymomot/mailkit/integration/email/ohmysmtp"
//	)
//
//	client, err := ohmysmtp.New("your-server-token")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	msg := email.NewMessage("from@example.com", "to@example.com", "Body text").
//		WithSubject("Subject line").
//		WithAttachment(email.NewAttachment([]byte("File!"), "file-name.txt", email.FileKindTxt))
//
//	if err := client.SendEmail(ctx, msg); err != nil {
//		switch {
//		case errors.Is(err, ohmysmtp.ErrRateLimit):
//			// back off and try later
//		case errors.Is(err, ohmysmtp.ErrDomainDKIMVerificationNotCompleted):
//			// finish domain setup
//		default:
//			log.Printf("send failed: %v", err)
//		}
//	}
//
// # Configuration
//
// The client needs only a server API token. Config and LoadConfig read it
// from the environment together with optional settings:
//
//	type Config struct {
//		APIKey            string        `env:"OHMYSMTP_API_KEY,required"`
//		Endpoint          string        `env:"OHMYSMTP_ENDPOINT"`
//		Timeout           time.Duration `env:"OHMYSMTP_TIMEOUT" envDefault:"30s"`
//		ValidateRecipient bool          `env:"OHMYSMTP_VALIDATE_RECIPIENT"`
//	}
//
//	cfg, err := ohmysmtp.LoadConfig()
//	client, err := ohmysmtp.NewFromConfig(cfg, ohmysmtp.WithLogger(log))
//
// # Response Classification
//
// Status codes map to error kinds as follows:
//
//   - 200: success
//   - 400: the body is matched against ordered substrings ("Invalid API",
//     "not parseable", "undefined field", "is invalid", "blocked address",
//     "maximum volume", "Extension file type blocked"); no match gives
//     KindOther with the body as detail
//   - 401: KindMissingAPIToken
//   - 403: ordered substrings ("Domain DKIM", "not have an active plan",
//     "unable to send email", "Verified domain"); no match gives KindOther
//   - 406: KindInvalidRequestFormat
//   - 429: KindRateLimit
//   - 500: KindNoContent
//   - anything else: KindOther with the body, or the status code when the
//     body can not be read
//
// Matching is case-sensitive and the first matching rule wins. Use
// WithClassifier to adjust the rule tables if the service changes its
// wording; DefaultClassifier returns the tables above.
//
// Failures to reach the service (DNS, connection, TLS, timeout, cancelled
// context) are reported as KindNetworkError; the underlying error stays
// reachable with errors.Is / errors.As.
//
// # Error Handling
//
// Every *Error matches email.ErrFailedToSendEmail, except KindInvalidEmail
// which matches email.ErrInvalidParams, so provider-neutral code can keep
// using the core/email sentinels. KindOf extracts the kind from a wrapped
// error. KindTooManyToAddrs exists for completeness and is never returned.
//
// # Recipient Validation
//
// WithAddressValidation checks the to address before anything is sent and
// returns KindInvalidEmail without contacting the service:
//
//	client, _ := ohmysmtp.New(token, ohmysmtp.WithAddressValidation())
//
// # Transport
//
// HTTPTransport sends requests with net/http. WithHTTPClient and
// WithTransport replace it, which is also how tests stub the service.
package ohmysmtp
