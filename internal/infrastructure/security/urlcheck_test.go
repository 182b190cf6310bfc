package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRejectsForbiddenSchemes(t *testing.T) {
	checker := NewURLChecker(nil)
	for _, raw := range []string{
		"javascript:alert(1)",
		"JAVASCRIPT:alert(1)",
		"data:text/html,<h1>x</h1>",
		"vbscript:msgbox(1)",
		"file:///etc/passwd",
	} {
		_, err := checker.Validate(raw)
		assert.Error(t, err, "expected reject for %s", raw)
	}
}

func TestValidateAcceptsKnownHTTPS(t *testing.T) {
	checker := NewURLChecker(nil)
	suspicious, err := checker.Validate("https://github.com/x")
	require.NoError(t, err)
	assert.False(t, suspicious)
}

func TestValidateAcceptsSubdomainsOfKnownDomains(t *testing.T) {
	checker := NewURLChecker(nil)
	suspicious, err := checker.Validate("https://mail.google.com/mail/u/0")
	require.NoError(t, err)
	assert.False(t, suspicious)
}

func TestValidateFlagsUnknownDomainsAsSuspicious(t *testing.T) {
	checker := NewURLChecker(nil)
	suspicious, err := checker.Validate("https://totally-unknown-widgets.example")
	require.NoError(t, err)
	assert.True(t, suspicious)
}

func TestValidateHonorsConfiguredDomains(t *testing.T) {
	checker := NewURLChecker([]string{"internal.test"})
	suspicious, err := checker.Validate("https://dash.internal.test")
	require.NoError(t, err)
	assert.False(t, suspicious)
}

func TestValidateRejectsEmptyAndRelative(t *testing.T) {
	checker := NewURLChecker(nil)
	_, err := checker.Validate("")
	assert.Error(t, err)
	_, err = checker.Validate("/relative/path")
	assert.Error(t, err)
}
