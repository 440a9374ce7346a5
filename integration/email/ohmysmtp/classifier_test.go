package ohmysmtp_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mailkit/integration/email/ohmysmtp"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		status     int
		body       string
		wantKind   ohmysmtp.ErrorKind
		wantDetail string
	}{
		{name: "200 success", status: 200, body: `{"status":"queued"}`},
		{name: "200 success ignores body", status: 200, body: "Invalid API token"},

		{name: "400 invalid api", status: 400, body: "Invalid API token", wantKind: ohmysmtp.KindInvalidAPIToken},
		{name: "400 from not parseable", status: 400, body: `{"error":"From address not parseable"}`, wantKind: ohmysmtp.KindFromAddressNotParseable},
		{name: "400 no to field", status: 400, body: `{"error":"undefined field: to"}`, wantKind: ohmysmtp.KindNoToField},
		{name: "400 to invalid", status: 400, body: `{"error":"To address is invalid"}`, wantKind: ohmysmtp.KindToAddressNotParseable},
		{name: "400 blocked", status: 400, body: `{"error":"Email is on blocked address list"}`, wantKind: ohmysmtp.KindToAddressBlocked},
		{name: "400 maximum volume", status: 400, body: `{"error":"Reached maximum volume"}`, wantKind: ohmysmtp.KindRateLimit},
		{name: "400 extension blocked", status: 400, body: `{"error":"Extension file type blocked"}`, wantKind: ohmysmtp.KindExtensionTypeBlocked},
		{name: "400 unknown", status: 400, body: "something else", wantKind: ohmysmtp.KindOther, wantDetail: "something else"},
		{name: "400 case sensitive", status: 400, body: "invalid api token", wantKind: ohmysmtp.KindOther, wantDetail: "invalid api token"},

		{name: "401 any body", status: 401, body: "whatever", wantKind: ohmysmtp.KindMissingAPIToken},
		{name: "401 empty body", status: 401, body: "", wantKind: ohmysmtp.KindMissingAPIToken},

		{name: "403 dkim", status: 403, body: "Domain DKIM verification not completed", wantKind: ohmysmtp.KindDomainDKIMVerificationNotCompleted},
		{name: "403 plan", status: 403, body: "Organization does not have an active plan", wantKind: ohmysmtp.KindInactivePlanForDomain},
		{name: "403 disabled", status: 403, body: "Organization is unable to send email", wantKind: ohmysmtp.KindOrganizationDisabled},
		{name: "403 verified domain", status: 403, body: "From must match the Verified domain", wantKind: ohmysmtp.KindFromAddressNotEqualToRegisteredDomain},
		{name: "403 unknown", status: 403, body: "forbidden", wantKind: ohmysmtp.KindOther, wantDetail: "forbidden"},

		{name: "406", status: 406, body: "Invalid API", wantKind: ohmysmtp.KindInvalidRequestFormat},
		{name: "429", status: 429, body: "", wantKind: ohmysmtp.KindRateLimit},
		{name: "500", status: 500, body: "boom", wantKind: ohmysmtp.KindNoContent},

		{name: "other status with body", status: 502, body: "bad gateway", wantKind: ohmysmtp.KindOther, wantDetail: "bad gateway"},
		{name: "other 2xx is not success", status: 201, body: "created", wantKind: ohmysmtp.KindOther, wantDetail: "created"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ohmysmtp.Classify(tt.status, tt.body, nil)
			if tt.wantKind == 0 {
				assert.NoError(t, err)
				return
			}

			var e *ohmysmtp.Error
			require.ErrorAs(t, err, &e)
			assert.Equal(t, tt.wantKind, e.Kind)
			assert.Equal(t, tt.wantDetail, e.Detail)
		})
	}
}

func TestClassify_Precedence(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		status int
		body   string
		want   ohmysmtp.ErrorKind
	}{
		{"invalid api before is invalid", 400, "Invalid API token: to is invalid", ohmysmtp.KindInvalidAPIToken},
		{"is invalid before invalid api reversed text", 400, "to is invalid, Invalid API", ohmysmtp.KindInvalidAPIToken},
		{"not parseable before blocked", 400, "blocked address and not parseable", ohmysmtp.KindFromAddressNotParseable},
		{"maximum volume before extension", 400, "Extension file type blocked, maximum volume", ohmysmtp.KindRateLimit},
		{"dkim before verified domain", 403, "Verified domain required; Domain DKIM pending", ohmysmtp.KindDomainDKIMVerificationNotCompleted},
		{"plan before disabled", 403, "unable to send email: does not have an active plan", ohmysmtp.KindInactivePlanForDomain},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ohmysmtp.KindOf(ohmysmtp.Classify(tt.status, tt.body, nil)))
		})
	}
}

func TestClassify_UnreadableBody(t *testing.T) {
	t.Parallel()

	readErr := errors.New("connection reset")

	tests := []struct {
		name       string
		status     int
		body       string
		bodyErr    error
		wantKind   ohmysmtp.ErrorKind
		wantDetail string
	}{
		{"400 read error", 400, "", readErr, ohmysmtp.KindOther, "400"},
		{"403 read error", 403, "", readErr, ohmysmtp.KindOther, "403"},
		{"other status read error", 418, "", readErr, ohmysmtp.KindOther, "418"},
		{"400 invalid utf8", 400, "Invalid API \xff", nil, ohmysmtp.KindOther, "400"},
		{"401 read error still unconditional", 401, "", readErr, ohmysmtp.KindMissingAPIToken, ""},
		{"500 read error still unconditional", 500, "", readErr, ohmysmtp.KindNoContent, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var e *ohmysmtp.Error
			require.ErrorAs(t, ohmysmtp.Classify(tt.status, tt.body, tt.bodyErr), &e)
			assert.Equal(t, tt.wantKind, e.Kind)
			assert.Equal(t, tt.wantDetail, e.Detail)
		})
	}

	assert.NoError(t, ohmysmtp.Classify(200, "", readErr))
}

func TestClassifier_CustomRules(t *testing.T) {
	t.Parallel()

	cl := ohmysmtp.DefaultClassifier()
	cl.BadRequest = append([]ohmysmtp.Rule{{Substring: "token rejected", Kind: ohmysmtp.KindInvalidAPIToken}}, cl.BadRequest...)

	assert.Equal(t, ohmysmtp.KindInvalidAPIToken, ohmysmtp.KindOf(cl.Classify(400, "token rejected", nil)))
	assert.Equal(t, ohmysmtp.KindNoToField, ohmysmtp.KindOf(cl.Classify(400, "undefined field", nil)))

	// Default tables are not shared between calls.
	assert.Equal(t, ohmysmtp.KindOther, ohmysmtp.KindOf(ohmysmtp.Classify(400, "token rejected", nil)))
}

func TestClassify_NeverProducesTooManyToAddrs(t *testing.T) {
	t.Parallel()

	for _, status := range []int{200, 400, 401, 403, 406, 422, 429, 500, 503} {
		err := ohmysmtp.Classify(status, "more than 50 addresses in the To field", nil)
		assert.NotErrorIs(t, err, ohmysmtp.ErrTooManyToAddrs)
	}
}
