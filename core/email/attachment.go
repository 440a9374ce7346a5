package email

import (
	"encoding/base64"
	"encoding/json"
)

// Attachment is a named, base64-encoded file bundled with a message.
type Attachment struct {
	name        string
	content     string
	contentType string
	cid         *string
}

// NewAttachment encodes data as standard base64 and resolves the content type
// from kind. It never fails and never touches the file system.
func NewAttachment(data []byte, name string, kind FileKind) Attachment {
	return Attachment{
		name:        name,
		content:     base64.StdEncoding.EncodeToString(data),
		contentType: kind.MIMEType(),
	}
}

// Name returns the file name shown to the recipient.
func (a Attachment) Name() string { return a.name }

// Content returns the base64-encoded payload.
func (a Attachment) Content() string { return a.content }

// ContentType returns the MIME type derived from the file kind.
func (a Attachment) ContentType() string { return a.contentType }

// ContentID returns the inline content identifier, if any.
func (a Attachment) ContentID() (string, bool) {
	if a.cid == nil {
		return "", false
	}
	return *a.cid, true
}

// Bytes decodes the payload back into the original bytes.
func (a Attachment) Bytes() ([]byte, error) {
	return base64.StdEncoding.DecodeString(a.content)
}

type attachmentJSON struct {
	Name        string  `json:"name"`
	Content     string  `json:"content"`
	ContentType string  `json:"content_type"`
	CID         *string `json:"cid,omitempty"`
}

// MarshalJSON renders the attachment with the wire key names.
func (a Attachment) MarshalJSON() ([]byte, error) {
	return json.Marshal(attachmentJSON{
		Name:        a.name,
		Content:     a.content,
		ContentType: a.contentType,
		CID:         a.cid,
	})
}
