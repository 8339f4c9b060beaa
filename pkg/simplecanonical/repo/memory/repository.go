package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/tendant/simple-canonical/pkg/simplecanonical"
)

// Repository implements simplecanonical.Repository using in-memory storage
type Repository struct {
	mu             sync.RWMutex
	articles       map[uuid.UUID]*simplecanonical.Article
	articlesBySlug map[string]uuid.UUID
	meta           map[uuid.UUID]map[string]string
}

// New creates a new in-memory repository
func New() simplecanonical.Repository {
	return &Repository{
		articles:       make(map[uuid.UUID]*simplecanonical.Article),
		articlesBySlug: make(map[string]uuid.UUID),
		meta:           make(map[uuid.UUID]map[string]string),
	}
}

// Article operations

func (r *Repository) CreateArticle(ctx context.Context, article *simplecanonical.Article) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, taken := r.articlesBySlug[article.Slug]; taken {
		if a := r.articles[existing]; a != nil && a.DeletedAt == nil {
			return simplecanonical.ErrSlugInUse
		}
	}

	// Create a copy to avoid external modifications
	articleCopy := *article
	r.articles[article.ID] = &articleCopy
	r.articlesBySlug[article.Slug] = article.ID

	return nil
}

func (r *Repository) GetArticle(ctx context.Context, id uuid.UUID) (*simplecanonical.Article, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	article, exists := r.articles[id]
	if !exists || article.DeletedAt != nil {
		return nil, simplecanonical.ErrArticleNotFound
	}

	// Return a copy to prevent external modifications
	articleCopy := *article
	return &articleCopy, nil
}

func (r *Repository) GetArticleBySlug(ctx context.Context, slug string) (*simplecanonical.Article, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, exists := r.articlesBySlug[slug]
	if !exists {
		return nil, simplecanonical.ErrArticleNotFound
	}

	article, exists := r.articles[id]
	if !exists || article.DeletedAt != nil {
		return nil, simplecanonical.ErrArticleNotFound
	}

	articleCopy := *article
	return &articleCopy, nil
}

func (r *Repository) UpdateArticle(ctx context.Context, article *simplecanonical.Article) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, exists := r.articles[article.ID]
	if !exists {
		return simplecanonical.ErrArticleNotFound
	}

	if current.Slug != article.Slug {
		if other, taken := r.articlesBySlug[article.Slug]; taken && other != article.ID {
			return simplecanonical.ErrSlugInUse
		}
		delete(r.articlesBySlug, current.Slug)
		r.articlesBySlug[article.Slug] = article.ID
	}

	articleCopy := *article
	r.articles[article.ID] = &articleCopy

	return nil
}

func (r *Repository) DeleteArticle(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, exists := r.articles[id]
	if !exists {
		return simplecanonical.ErrArticleNotFound
	}

	now := time.Now()
	a.Status = string(simplecanonical.ArticleStatusDeleted)
	a.DeletedAt = &now
	a.UpdatedAt = now
	delete(r.articlesBySlug, a.Slug)
	delete(r.meta, id)
	return nil
}

func (r *Repository) ListArticles(ctx context.Context) ([]*simplecanonical.Article, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*simplecanonical.Article
	for _, article := range r.articles {
		if article.DeletedAt == nil {
			articleCopy := *article
			result = append(result, &articleCopy)
		}
	}

	// Sort by created_at descending
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})

	return result, nil
}

// Article metadata operations

func (r *Repository) GetArticleMeta(ctx context.Context, articleID uuid.UUID) (map[string]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if a, exists := r.articles[articleID]; !exists || a.DeletedAt != nil {
		return nil, simplecanonical.ErrArticleNotFound
	}

	// Return a copy to prevent external modifications
	result := make(map[string]string, len(r.meta[articleID]))
	for k, v := range r.meta[articleID] {
		result[k] = v
	}
	return result, nil
}

func (r *Repository) SetArticleMetaKey(ctx context.Context, articleID uuid.UUID, key, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if a, exists := r.articles[articleID]; !exists || a.DeletedAt != nil {
		return simplecanonical.ErrArticleNotFound
	}

	if r.meta[articleID] == nil {
		r.meta[articleID] = make(map[string]string)
	}
	r.meta[articleID][key] = value

	return nil
}

func (r *Repository) DeleteArticleMetaKey(ctx context.Context, articleID uuid.UUID, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if a, exists := r.articles[articleID]; !exists || a.DeletedAt != nil {
		return simplecanonical.ErrArticleNotFound
	}

	delete(r.meta[articleID], key)
	return nil
}
