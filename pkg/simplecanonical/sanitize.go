package simplecanonical

import (
	"net/url"
	"strings"
)

// SanitizeURL coerces raw input into a safe absolute URL string. It never
// returns an error: inputs that cannot be salvaged collapse to "".
//
// Rules: surrounding whitespace and control characters are stripped; only
// http and https schemes survive (a scheme-relative URL is promoted to
// https); relative paths and opaque data are rejected; the remainder is
// re-encoded through net/url so no raw unescaped URL ever persists.
func SanitizeURL(raw string) string {
	cleaned := strings.Map(func(r rune) rune {
		if r < ' ' || r == 0x7f {
			return -1
		}
		return r
	}, strings.TrimSpace(raw))
	if cleaned == "" {
		return ""
	}

	u, err := url.Parse(cleaned)
	if err != nil {
		return ""
	}

	switch strings.ToLower(u.Scheme) {
	case "http", "https":
		u.Scheme = strings.ToLower(u.Scheme)
	case "":
		// "//example.com/a" parses with an empty scheme but a host.
		if u.Host == "" {
			return ""
		}
		u.Scheme = "https"
	default:
		return ""
	}

	if u.Host == "" {
		return ""
	}

	return u.String()
}
