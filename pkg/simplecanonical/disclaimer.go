package simplecanonical

import (
	"fmt"
	"html"
)

// DefaultDisclaimerTemplate is the fragment prepended to article bodies
// when the repost disclaimer is active. The two %s verbs receive the
// escaped canonical URL as href and link text respectively. Operators
// replace it with WithDisclaimerTemplate or rewrite the rendered fragment
// through a DisclaimerFilter.
const DefaultDisclaimerTemplate = `<p><em>Contents of this article reposted from <a href="%s">%s</a></em></p>` + "\n"

// RenderDisclaimer builds the disclaimer fragment for a canonical URL.
// The URL is sanitized and HTML-escaped before insertion.
func RenderDisclaimer(tmpl, canonicalURL string) string {
	escaped := html.EscapeString(SanitizeURL(canonicalURL))
	return fmt.Sprintf(tmpl, escaped, escaped)
}

// DisclaimerGate decides whether the disclaimer feature is active for a
// given view context, before any per-article flag is consulted.
type DisclaimerGate func(vc ViewContext) bool

// DefaultDisclaimerGate activates disclaimers only when the request has
// them enabled and the article is viewed as a single full item. List and
// archive contexts never carry disclaimers.
func DefaultDisclaimerGate(vc ViewContext) bool {
	return vc.DisclaimersEnabled && vc.Mode == ViewSingle
}
