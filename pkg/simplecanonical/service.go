package simplecanonical

import (
	"context"

	"github.com/google/uuid"
)

// Service defines the main interface for the simple-canonical library.
//
// Resolver methods (CanonicalTag, CanonicalTagForURL, Permalink, Body)
// deliberately return plain strings: every failure mode, including an
// unknown article, falls back silently to the caller's default value.
// Editor methods surface errors because the admin surface needs them.
type Service interface {
	// Article operations (host platform surface)
	CreateArticle(ctx context.Context, req CreateArticleRequest) (*Article, error)
	GetArticle(ctx context.Context, id uuid.UUID) (*Article, error)
	GetArticleBySlug(ctx context.Context, slug string) (*Article, error)
	UpdateArticle(ctx context.Context, article *Article) error
	DeleteArticle(ctx context.Context, id uuid.UUID) error
	ListArticles(ctx context.Context) ([]*Article, error)

	// Metadata editor operations
	EditorForm(ctx context.Context, articleID uuid.UUID) (*EditorForm, error)
	SaveOverride(ctx context.Context, articleID uuid.UUID, fields SubmittedFields) error

	// Canonical resolution
	GetOverride(ctx context.Context, articleID uuid.UUID) (Override, error)
	CanonicalTag(ctx context.Context, defaultURL string, articleID uuid.UUID) string
	CanonicalTagForURL(ctx context.Context, requestURL string) string
	Permalink(ctx context.Context, defaultPermalink string, articleID uuid.UUID) string
	Body(ctx context.Context, content string, articleID uuid.UUID, vc ViewContext) string
}

// CreateArticleRequest contains parameters for creating an article.
type CreateArticleRequest struct {
	Slug   string `json:"slug"`
	Title  string `json:"title"`
	Body   string `json:"body"`
	Status string `json:"status,omitempty"` // defaults to "published"
}
