package simplecanonical

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeURL(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"empty", "", ""},
		{"whitespace only", "   \t\n", ""},
		{"plain https", "https://example.com/a", "https://example.com/a"},
		{"plain http", "http://example.com/a", "http://example.com/a"},
		{"uppercase scheme normalized", "HTTPS://example.com/a", "https://example.com/a"},
		{"surrounding whitespace trimmed", "  https://example.com/a  ", "https://example.com/a"},
		{"spaces escaped", "https://example.com/a b", "https://example.com/a%20b"},
		{"control characters stripped", "https://example.com/\x01a\x7f", "https://example.com/a"},
		{"scheme-relative promoted to https", "//example.com/a", "https://example.com/a"},
		{"javascript scheme rejected", "javascript:alert(1)", ""},
		{"data scheme rejected", "data:text/html,hi", ""},
		{"ftp scheme rejected", "ftp://example.com/a", ""},
		{"relative path rejected", "/articles/a", ""},
		{"bare word rejected", "not-a-url", ""},
		{"missing host rejected", "https:///path", ""},
		{"query and fragment preserved", "https://example.com/a?x=1#y", "https://example.com/a?x=1#y"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeURL(tt.raw))
		})
	}
}

func TestSanitizeURLIdempotent(t *testing.T) {
	inputs := []string{
		"https://example.com/a b",
		"//example.com/a",
		"  https://example.com/a  ",
	}
	for _, in := range inputs {
		once := SanitizeURL(in)
		assert.Equal(t, once, SanitizeURL(once), "input %q", in)
	}
}
