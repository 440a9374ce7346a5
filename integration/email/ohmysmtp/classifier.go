package ohmysmtp

import (
	"net/http"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Rule maps a case-sensitive substring of a response body to an error kind.
type Rule struct {
	Substring string
	Kind      ErrorKind
}

// Classifier turns a status code and response body into a send outcome.
// Rules are checked in order and the first match wins.
type Classifier struct {
	BadRequest []Rule // 400 responses
	Forbidden  []Rule // 403 responses
}

// DefaultClassifier returns the rule tables matching the service's
// documented error messages.
func DefaultClassifier() Classifier {
	return Classifier{
		BadRequest: []Rule{
			{"Invalid API", KindInvalidAPIToken},
			{"not parseable", KindFromAddressNotParseable},
			{"undefined field", KindNoToField},
			{"is invalid", KindToAddressNotParseable},
			{"blocked address", KindToAddressBlocked},
			{"maximum volume", KindRateLimit},
			{"Extension file type blocked", KindExtensionTypeBlocked},
		},
		Forbidden: []Rule{
			{"Domain DKIM", KindDomainDKIMVerificationNotCompleted},
			{"not have an active plan", KindInactivePlanForDomain},
			{"unable to send email", KindOrganizationDisabled},
			{"Verified domain", KindFromAddressNotEqualToRegisteredDomain},
		},
	}
}

// Classify uses the default rule tables.
func Classify(status int, body string, bodyErr error) error {
	return DefaultClassifier().Classify(status, body, bodyErr)
}

// Classify returns nil for a successful response or an *Error otherwise.
// bodyErr reports that the body could not be read; a body that is not
// valid UTF-8 is treated the same way.
func (c Classifier) Classify(status int, body string, bodyErr error) error {
	readable := bodyErr == nil && utf8.ValidString(body)

	switch status {
	case http.StatusOK:
		return nil
	case http.StatusBadRequest:
		return matchRules(c.BadRequest, status, body, readable)
	case http.StatusUnauthorized:
		return NewError(KindMissingAPIToken)
	case http.StatusForbidden:
		return matchRules(c.Forbidden, status, body, readable)
	case http.StatusNotAcceptable:
		return NewError(KindInvalidRequestFormat)
	case http.StatusTooManyRequests:
		return NewError(KindRateLimit)
	case http.StatusInternalServerError:
		return NewError(KindNoContent)
	}

	if !readable {
		return OtherError(strconv.Itoa(status))
	}
	return OtherError(body)
}

func matchRules(rules []Rule, status int, body string, readable bool) error {
	if !readable {
		return OtherError(strconv.Itoa(status))
	}
	for _, r := range rules {
		if strings.Contains(body, r.Substring) {
			return NewError(r.Kind)
		}
	}
	return OtherError(body)
}
