package ohmysmtp

import (
	"errors"

	"github.com/dmitrymomot/mailkit/core/email"
)

// ErrorKind identifies one terminal outcome reported by the service or the
// client. The set is closed.
type ErrorKind uint8

const (
	KindInvalidAPIToken ErrorKind = iota + 1
	KindFromAddressNotParseable
	KindNoToField
	KindToAddressNotParseable
	KindToAddressBlocked
	// KindTooManyToAddrs is reserved: the service documents a 50-address
	// limit but no response is mapped to it.
	KindTooManyToAddrs
	KindExtensionTypeBlocked
	KindMissingAPIToken
	KindDomainDKIMVerificationNotCompleted
	KindInactivePlanForDomain
	KindOrganizationDisabled
	KindFromAddressNotEqualToRegisteredDomain
	KindInvalidRequestFormat
	KindRateLimit
	KindNoContent
	KindNetworkError
	KindOther
	KindInvalidEmail
)

var kindMessages = map[ErrorKind]string{
	KindInvalidAPIToken:                       "API token does not match a domain",
	KindFromAddressNotParseable:               "from address is not parseable",
	KindNoToField:                             "request has no to field",
	KindToAddressNotParseable:                 "to address is not a valid email address",
	KindToAddressBlocked:                      "to address is on the blocked list",
	KindTooManyToAddrs:                        "too many addresses in the to field",
	KindExtensionTypeBlocked:                  "attachment file type is blocked",
	KindMissingAPIToken:                       "API token is missing",
	KindDomainDKIMVerificationNotCompleted:    "domain DKIM verification is not completed",
	KindInactivePlanForDomain:                 "organization has no active plan",
	KindOrganizationDisabled:                  "organization is disabled",
	KindFromAddressNotEqualToRegisteredDomain: "from address does not match the registered domain",
	KindInvalidRequestFormat:                  "invalid request format",
	KindRateLimit:                             "rate limited",
	KindNoContent:                             "service internal error",
	KindNetworkError:                          "network error",
	KindOther:                                 "unexpected response",
	KindInvalidEmail:                          "invalid recipient email address",
}

func (k ErrorKind) String() string {
	if msg, ok := kindMessages[k]; ok {
		return msg
	}
	return "unknown error"
}

// Error is the single failure outcome of a send call.
// Detail is set only for KindNetworkError and KindOther.
type Error struct {
	Kind   ErrorKind
	Detail string
	cause  error
}

func (e *Error) Error() string {
	if e.Detail == "" {
		return "ohmysmtp: " + e.Kind.String()
	}
	return "ohmysmtp: " + e.Kind.String() + ": " + e.Detail
}

// Is matches another *Error of the same kind. A target without Detail
// matches any detail, so the package sentinels work with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && (t.Detail == "" || t.Detail == e.Detail)
}

// Unwrap exposes the provider-neutral sentinel and, for network errors, the
// transport cause.
func (e *Error) Unwrap() []error {
	sentinel := email.ErrFailedToSendEmail
	if e.Kind == KindInvalidEmail {
		sentinel = email.ErrInvalidParams
	}
	if e.cause != nil {
		return []error{sentinel, e.cause}
	}
	return []error{sentinel}
}

// Sentinel errors for use with errors.Is.
var (
	ErrInvalidAPIToken                       = &Error{Kind: KindInvalidAPIToken}
	ErrFromAddressNotParseable               = &Error{Kind: KindFromAddressNotParseable}
	ErrNoToField                             = &Error{Kind: KindNoToField}
	ErrToAddressNotParseable                 = &Error{Kind: KindToAddressNotParseable}
	ErrToAddressBlocked                      = &Error{Kind: KindToAddressBlocked}
	ErrTooManyToAddrs                        = &Error{Kind: KindTooManyToAddrs}
	ErrExtensionTypeBlocked                  = &Error{Kind: KindExtensionTypeBlocked}
	ErrMissingAPIToken                       = &Error{Kind: KindMissingAPIToken}
	ErrDomainDKIMVerificationNotCompleted    = &Error{Kind: KindDomainDKIMVerificationNotCompleted}
	ErrInactivePlanForDomain                 = &Error{Kind: KindInactivePlanForDomain}
	ErrOrganizationDisabled                  = &Error{Kind: KindOrganizationDisabled}
	ErrFromAddressNotEqualToRegisteredDomain = &Error{Kind: KindFromAddressNotEqualToRegisteredDomain}
	ErrInvalidRequestFormat                  = &Error{Kind: KindInvalidRequestFormat}
	ErrRateLimit                             = &Error{Kind: KindRateLimit}
	ErrNoContent                             = &Error{Kind: KindNoContent}
	ErrNetwork                               = &Error{Kind: KindNetworkError}
	ErrOther                                 = &Error{Kind: KindOther}
	ErrInvalidEmail                          = &Error{Kind: KindInvalidEmail}
)

// NewError returns a fresh error of the given kind without detail.
func NewError(kind ErrorKind) *Error {
	return &Error{Kind: kind}
}

// NetworkError wraps a failure to complete the HTTP exchange.
func NetworkError(cause error) *Error {
	return &Error{Kind: KindNetworkError, Detail: cause.Error(), cause: cause}
}

// OtherError reports a response the classifier could not map.
func OtherError(detail string) *Error {
	return &Error{Kind: KindOther, Detail: detail}
}

// KindOf returns the kind of err, or 0 if err is not an *Error.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
