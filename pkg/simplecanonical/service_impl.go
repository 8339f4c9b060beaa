package simplecanonical

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// service implements the Service interface
type service struct {
	repository         Repository
	hooks              *Hooks
	disclaimerTemplate string
	disclaimerGate     DisclaimerGate
}

// Option represents a functional option for configuring the service
type Option func(*service)

// WithRepository sets the repository for the service
func WithRepository(repo Repository) Option {
	return func(s *service) {
		s.repository = repo
	}
}

// WithHooks sets the hook registry for the service
func WithHooks(hooks *Hooks) Option {
	return func(s *service) {
		s.hooks = hooks
	}
}

// WithDisclaimerTemplate replaces the default disclaimer fragment template.
// The template must contain two %s verbs: href, then link text.
func WithDisclaimerTemplate(tmpl string) Option {
	return func(s *service) {
		s.disclaimerTemplate = tmpl
	}
}

// WithDisclaimerGate replaces the default per-request disclaimer gate
func WithDisclaimerGate(gate DisclaimerGate) Option {
	return func(s *service) {
		s.disclaimerGate = gate
	}
}

// WithDisclaimerFilter appends a filter applied to the disclaimer fragment
// before it is prepended to article content
func WithDisclaimerFilter(filter DisclaimerFilter) Option {
	return func(s *service) {
		if s.hooks == nil {
			s.hooks = &Hooks{}
		}
		s.hooks.DisclaimerFilters = append(s.hooks.DisclaimerFilters, filter)
	}
}

// New creates a new service instance with the given options
func New(options ...Option) (Service, error) {
	s := &service{
		disclaimerTemplate: DefaultDisclaimerTemplate,
		disclaimerGate:     DefaultDisclaimerGate,
	}

	for _, option := range options {
		option(s)
	}

	if s.repository == nil {
		return nil, fmt.Errorf("repository is required")
	}
	if s.hooks == nil {
		s.hooks = &Hooks{}
	}

	return s, nil
}

// Article operations

func (s *service) CreateArticle(ctx context.Context, req CreateArticleRequest) (*Article, error) {
	if req.Slug == "" {
		return nil, fmt.Errorf("slug is required")
	}

	status := req.Status
	if status == "" {
		status = string(ArticleStatusPublished)
	}
	switch ArticleStatus(status) {
	case ArticleStatusDraft, ArticleStatusPublished:
	default:
		return nil, ErrInvalidArticleStatus
	}

	now := time.Now().UTC()
	article := &Article{
		ID:        uuid.New(),
		Slug:      req.Slug,
		Title:     req.Title,
		Body:      req.Body,
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repository.CreateArticle(ctx, article); err != nil {
		return nil, &ArticleError{
			ArticleID: article.ID,
			Op:        "create",
			Err:       err,
		}
	}

	return article, nil
}

func (s *service) GetArticle(ctx context.Context, id uuid.UUID) (*Article, error) {
	return s.repository.GetArticle(ctx, id)
}

func (s *service) GetArticleBySlug(ctx context.Context, slug string) (*Article, error) {
	return s.repository.GetArticleBySlug(ctx, slug)
}

func (s *service) UpdateArticle(ctx context.Context, article *Article) error {
	article.UpdatedAt = time.Now().UTC()
	if err := s.repository.UpdateArticle(ctx, article); err != nil {
		return &ArticleError{
			ArticleID: article.ID,
			Op:        "update",
			Err:       err,
		}
	}
	return nil
}

func (s *service) DeleteArticle(ctx context.Context, id uuid.UUID) error {
	if err := s.repository.DeleteArticle(ctx, id); err != nil {
		return &ArticleError{
			ArticleID: id,
			Op:        "delete",
			Err:       err,
		}
	}
	return nil
}

func (s *service) ListArticles(ctx context.Context) ([]*Article, error) {
	return s.repository.ListArticles(ctx)
}

// GetOverride returns the canonical override projection for an article.
func (s *service) GetOverride(ctx context.Context, articleID uuid.UUID) (Override, error) {
	meta, err := s.repository.GetArticleMeta(ctx, articleID)
	if err != nil {
		return Override{}, err
	}
	return OverrideFromMeta(meta), nil
}

// override is the silent-fallback variant used by the resolver methods.
func (s *service) override(ctx context.Context, articleID uuid.UUID) (Override, bool) {
	ov, err := s.GetOverride(ctx, articleID)
	if err != nil {
		return Override{}, false
	}
	return ov, true
}

// isNotFound reports whether err represents a missing article, across
// repository implementations.
func isNotFound(err error) bool {
	return errors.Is(err, ErrArticleNotFound)
}
