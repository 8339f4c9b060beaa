package simplecanonical

import (
	"context"
	"net/url"
	"strings"

	"github.com/google/uuid"
)

// Canonical resolution.
//
// The pure functions below hold the actual decision logic; the service
// methods wrap them with repository lookups and the public-context filter
// chains. Every lookup failure falls back to the caller's default value.

// ResolveCanonicalTag returns the override URL when one is set, otherwise
// the platform-computed default unchanged.
func ResolveCanonicalTag(defaultURL string, ov Override) string {
	if ov.CanonicalURL == "" {
		return defaultURL
	}
	return ov.CanonicalURL
}

// ResolvePermalink returns the override URL, sanitized for embedding as a
// link target, when one is set; otherwise the default permalink unchanged.
// With an override set, every internal link to the article points at its
// external canonical source.
func ResolvePermalink(defaultPermalink string, ov Override) string {
	if ov.CanonicalURL == "" {
		return defaultPermalink
	}
	return SanitizeURL(ov.CanonicalURL)
}

// CanonicalTag resolves the value for the page's canonical link tag.
func (s *service) CanonicalTag(ctx context.Context, defaultURL string, articleID uuid.UUID) string {
	ov, ok := s.override(ctx, articleID)
	if !ok {
		return defaultURL
	}
	out := ResolveCanonicalTag(defaultURL, ov)
	return s.hooks.executeCanonicalFilters(ctx, out, ov)
}

// CanonicalTagForURL is the URL-only entry point used when a third-party
// SEO layer recomputes the canonical value without an article reference.
// The article is resolved from the URL's trailing slug; when no article
// matches, the input is returned unchanged.
func (s *service) CanonicalTagForURL(ctx context.Context, requestURL string) string {
	article, err := s.articleForURL(ctx, requestURL)
	if err != nil || article == nil {
		return requestURL
	}
	return s.CanonicalTag(ctx, requestURL, article.ID)
}

// Permalink resolves the link target used for internal links to an article.
func (s *service) Permalink(ctx context.Context, defaultPermalink string, articleID uuid.UUID) string {
	ov, ok := s.override(ctx, articleID)
	if !ok {
		return defaultPermalink
	}
	out := ResolvePermalink(defaultPermalink, ov)
	return s.hooks.executePermalinkFilters(ctx, out, ov)
}

// Body resolves the article body for rendering. The disclaimer fragment is
// prepended, never appended, and only when all of the following hold: the
// gate passes for the view context, the stored flag is exactly "true", and
// a canonical override URL is set.
func (s *service) Body(ctx context.Context, content string, articleID uuid.UUID, vc ViewContext) string {
	if !s.disclaimerGate(vc) {
		return content
	}

	ov, ok := s.override(ctx, articleID)
	if !ok || !ov.DisclaimerEnabled || ov.CanonicalURL == "" {
		return content
	}

	fragment := RenderDisclaimer(s.disclaimerTemplate, ov.CanonicalURL)
	fragment = s.hooks.executeDisclaimerFilters(ctx, fragment, ov)

	out := fragment + content
	return s.hooks.executeBodyFilters(ctx, out, ov, vc)
}

// articleForURL maps a request URL to an article by treating the last
// non-empty path segment as the slug.
func (s *service) articleForURL(ctx context.Context, requestURL string) (*Article, error) {
	u, err := url.Parse(strings.TrimSpace(requestURL))
	if err != nil {
		return nil, err
	}

	path := strings.Trim(u.Path, "/")
	if path == "" {
		return nil, ErrArticleNotFound
	}
	segments := strings.Split(path, "/")
	slug := segments[len(segments)-1]

	return s.repository.GetArticleBySlug(ctx, slug)
}
