package simplecanonical

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the interface for article and metadata persistence.
// Metadata is a per-article string key/value store; the canonical override
// feature only ever touches the MetaKeyCanonicalURL and MetaKeyDisclaimer
// keys, but the store itself is generic.
type Repository interface {
	// Article operations
	CreateArticle(ctx context.Context, article *Article) error
	GetArticle(ctx context.Context, id uuid.UUID) (*Article, error)
	GetArticleBySlug(ctx context.Context, slug string) (*Article, error)
	UpdateArticle(ctx context.Context, article *Article) error
	DeleteArticle(ctx context.Context, id uuid.UUID) error
	ListArticles(ctx context.Context) ([]*Article, error)

	// Article metadata operations
	// GetArticleMeta returns an empty map (not an error) for an existing
	// article with no metadata.
	GetArticleMeta(ctx context.Context, articleID uuid.UUID) (map[string]string, error)
	SetArticleMetaKey(ctx context.Context, articleID uuid.UUID, key, value string) error
	// DeleteArticleMetaKey is a no-op when the key is absent.
	DeleteArticleMetaKey(ctx context.Context, articleID uuid.UUID, key string) error
}
