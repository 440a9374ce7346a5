package email

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
)

// Message is one outbound email. It is built with NewMessage and the With*
// methods; every method works on a copy, so a value handed to a sender can
// not be changed by later configuration of another copy.
type Message struct {
	from            string
	to              string
	textBody        *string
	htmlBody        *string
	cc              *string
	bcc             *string
	subject         *string
	replyTo         *string
	listUnsubscribe *string
	attachments     []Attachment
	tags            []string
}

// NewMessage creates a message with a plain text body and no optional fields.
func NewMessage(from, to, textBody string) Message {
	return Message{
		from:     from,
		to:       to,
		textBody: &textBody,
	}
}

// WithHTML sets the HTML body and clears the text body.
func (m Message) WithHTML(html string) Message {
	m.htmlBody = &html
	m.textBody = nil
	return m
}

// WithTextBody sets the text body and clears the HTML body.
func (m Message) WithTextBody(text string) Message {
	m.textBody = &text
	m.htmlBody = nil
	return m
}

func (m Message) WithCc(cc string) Message {
	m.cc = &cc
	return m
}

func (m Message) WithBcc(bcc string) Message {
	m.bcc = &bcc
	return m
}

func (m Message) WithSubject(subject string) Message {
	m.subject = &subject
	return m
}

func (m Message) WithReplyTo(replyTo string) Message {
	m.replyTo = &replyTo
	return m
}

// WithListUnsubscribe sets the List-Unsubscribe header value.
func (m Message) WithListUnsubscribe(value string) Message {
	m.listUnsubscribe = &value
	return m
}

// WithAttachments replaces the attachment list.
func (m Message) WithAttachments(attachments []Attachment) Message {
	m.attachments = make([]Attachment, len(attachments))
	copy(m.attachments, attachments)
	return m
}

// WithAttachment replaces the attachment list with a single attachment.
// Calling it twice keeps only the second attachment; use WithAttachments
// to send several files.
func (m Message) WithAttachment(attachment Attachment) Message {
	m.attachments = []Attachment{attachment}
	return m
}

// WithTags replaces the tag list, keeping the given order.
func (m Message) WithTags(tags []string) Message {
	m.tags = make([]string, len(tags))
	copy(m.tags, tags)
	return m
}

// WithTag replaces the tag list with a single tag.
func (m Message) WithTag(tag string) Message {
	m.tags = []string{tag}
	return m
}

func (m Message) From() string { return m.from }
func (m Message) To() string   { return m.to }

func (m Message) TextBody() (string, bool)        { return deref(m.textBody) }
func (m Message) HTMLBody() (string, bool)        { return deref(m.htmlBody) }
func (m Message) Cc() (string, bool)              { return deref(m.cc) }
func (m Message) Bcc() (string, bool)             { return deref(m.bcc) }
func (m Message) Subject() (string, bool)         { return deref(m.subject) }
func (m Message) ReplyTo() (string, bool)         { return deref(m.replyTo) }
func (m Message) ListUnsubscribe() (string, bool) { return deref(m.listUnsubscribe) }

// Attachments returns a copy of the attachment list; nil means absent.
func (m Message) Attachments() []Attachment { return slices.Clone(m.attachments) }

// Tags returns a copy of the tag list; nil means absent.
func (m Message) Tags() []string { return slices.Clone(m.tags) }

// Validate checks the fields every delivery channel needs.
// The HTTP API client skips it and lets the service report missing fields.
func (m Message) Validate() error {
	if m.from == "" {
		return fmt.Errorf("%w: from address is required", ErrInvalidParams)
	}
	if m.to == "" {
		return fmt.Errorf("%w: to address is required", ErrInvalidParams)
	}
	if m.textBody == nil && m.htmlBody == nil {
		return fmt.Errorf("%w: message body is required", ErrInvalidParams)
	}
	return nil
}

// messageJSON fixes key names and order of the wire format.
// Pointer fields keep "absent" distinct from "empty".
type messageJSON struct {
	From            string            `json:"from"`
	To              string            `json:"to"`
	TextBody        *string           `json:"textbody,omitempty"`
	HTMLBody        *string           `json:"htmlbody,omitempty"`
	Cc              *string           `json:"cc,omitempty"`
	Bcc             *string           `json:"bcc,omitempty"`
	Subject         *string           `json:"subject,omitempty"`
	ReplyTo         *string           `json:"replyto,omitempty"`
	ListUnsubscribe *string           `json:"list_unsubscribe,omitempty"`
	Attachments     *[]attachmentJSON `json:"attachments,omitempty"`
	Tags            *[]string         `json:"tags,omitempty"`
}

func (m Message) wire() messageJSON {
	out := messageJSON{
		From:            m.from,
		To:              m.to,
		TextBody:        m.textBody,
		HTMLBody:        m.htmlBody,
		Cc:              m.cc,
		Bcc:             m.bcc,
		Subject:         m.subject,
		ReplyTo:         m.replyTo,
		ListUnsubscribe: m.listUnsubscribe,
	}
	if m.attachments != nil {
		atts := make([]attachmentJSON, len(m.attachments))
		for i, a := range m.attachments {
			atts[i] = attachmentJSON{
				Name:        a.name,
				Content:     a.content,
				ContentType: a.contentType,
				CID:         a.cid,
			}
		}
		out.Attachments = &atts
	}
	if m.tags != nil {
		tags := m.tags
		out.Tags = &tags
	}
	return out
}

// JSON renders the message in the service's request format.
// HTML characters are written as-is rather than \u-escaped.
func (m Message) JSON() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(m.wire()); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// MarshalJSON implements json.Marshaler with the same keys as JSON.
func (m Message) MarshalJSON() ([]byte, error) {
	return m.JSON()
}

func deref(s *string) (string, bool) {
	if s == nil {
		return "", false
	}
	return *s, true
}
