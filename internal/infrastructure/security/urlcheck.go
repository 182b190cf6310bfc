package security

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/doeshing/intentdesk/internal/domain"
	"github.com/doeshing/intentdesk/internal/ports"
)

// URLChecker validates iframe targets. Forbidden schemes are hard rejects;
// domains outside the known list are only flagged as suspicious.
type URLChecker struct {
	knownDomains []string
}

// NewURLChecker builds a validator with the default known-domain list plus
// any extras from configuration.
func NewURLChecker(extraDomains []string) *URLChecker {
	return &URLChecker{knownDomains: append(defaultKnownDomains(), extraDomains...)}
}

var forbiddenSchemes = []string{"javascript", "data", "vbscript", "file", "blob"}

// Validate implements ports.URLValidator.
func (c *URLChecker) Validate(raw string) (bool, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return false, fmt.Errorf("%w: empty url", domain.ErrUnsafeURL)
	}

	lower := strings.ToLower(trimmed)
	for _, scheme := range forbiddenSchemes {
		if strings.HasPrefix(lower, scheme+":") {
			return false, fmt.Errorf("%w: scheme %s", domain.ErrUnsafeURL, scheme)
		}
	}

	parsed, err := url.Parse(trimmed)
	if err != nil {
		return false, fmt.Errorf("%w: %v", domain.ErrUnsafeURL, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return false, fmt.Errorf("%w: scheme %q", domain.ErrUnsafeURL, parsed.Scheme)
	}
	if parsed.Hostname() == "" {
		return false, fmt.Errorf("%w: missing host", domain.ErrUnsafeURL)
	}

	return !c.known(parsed.Hostname()), nil
}

func (c *URLChecker) known(host string) bool {
	host = strings.ToLower(host)
	for _, d := range c.knownDomains {
		if host == d || strings.HasSuffix(host, "."+d) {
			return true
		}
	}
	return false
}

func defaultKnownDomains() []string {
	return []string{
		"google.com", "gmail.com", "youtube.com", "github.com",
		"wikipedia.org", "stackoverflow.com", "openstreetmap.org",
		"duckduckgo.com", "bing.com", "reddit.com", "notion.so",
		"spotify.com", "soundcloud.com", "weather.com",
	}
}

var _ ports.URLValidator = (*URLChecker)(nil)
