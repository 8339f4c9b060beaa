package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/tendant/simple-canonical/pkg/simplecanonical"
)

// ArticleHandler handles the public-context HTTP surface. Its render
// endpoints are where the resolver functions plug into the platform's
// canonical-tag, permalink, and body-rendering points.
type ArticleHandler struct {
	service simplecanonical.Service

	// baseURL is the public origin used to compute default permalinks,
	// e.g. "https://example.org".
	baseURL string

	// disclaimers is the global switch for the disclaimer feature.
	disclaimers bool
}

// NewArticleHandler creates a new public article handler
func NewArticleHandler(service simplecanonical.Service, baseURL string, disclaimers bool) *ArticleHandler {
	return &ArticleHandler{
		service:     service,
		baseURL:     strings.TrimRight(baseURL, "/"),
		disclaimers: disclaimers,
	}
}

// Routes returns the public routes
func (h *ArticleHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.ListArticles)
	r.Get("/canonical", h.ResolveCanonical)
	r.Get("/{slug}", h.GetArticle)

	return r
}

// RenderedArticle is the response body for a rendered article
type RenderedArticle struct {
	ID           string    `json:"id"`
	Slug         string    `json:"slug"`
	Title        string    `json:"title"`
	CanonicalURL string    `json:"canonical_url"`
	Permalink    string    `json:"permalink"`
	Body         string    `json:"body"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// defaultPermalink is the platform-generated internal URL for an article
func (h *ArticleHandler) defaultPermalink(slug string) string {
	return fmt.Sprintf("%s/articles/%s", h.baseURL, slug)
}

// GetArticle renders a single article view: canonical tag, permalink and
// body all pass through the resolver.
func (h *ArticleHandler) GetArticle(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	article, err := h.service.GetArticleBySlug(r.Context(), slug)
	if err != nil {
		http.Error(w, "Article not found", http.StatusNotFound)
		return
	}

	vc := simplecanonical.ViewContext{
		Mode:               simplecanonical.ViewSingle,
		DisclaimersEnabled: h.disclaimers,
	}
	defaultURL := h.defaultPermalink(article.Slug)

	render.JSON(w, r, RenderedArticle{
		ID:           article.ID.String(),
		Slug:         article.Slug,
		Title:        article.Title,
		CanonicalURL: h.service.CanonicalTag(r.Context(), defaultURL, article.ID),
		Permalink:    h.service.Permalink(r.Context(), defaultURL, article.ID),
		Body:         h.service.Body(r.Context(), article.Body, article.ID, vc),
		CreatedAt:    article.CreatedAt,
		UpdatedAt:    article.UpdatedAt,
	})
}

// ListArticles renders the archive view. Bodies never carry disclaimers in
// list context; permalinks still honor canonical overrides.
func (h *ArticleHandler) ListArticles(w http.ResponseWriter, r *http.Request) {
	articles, err := h.service.ListArticles(r.Context())
	if err != nil {
		slog.Error("Failed to list articles", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	vc := simplecanonical.ViewContext{
		Mode:               simplecanonical.ViewList,
		DisclaimersEnabled: h.disclaimers,
	}

	resp := make([]RenderedArticle, 0, len(articles))
	for _, article := range articles {
		defaultURL := h.defaultPermalink(article.Slug)
		resp = append(resp, RenderedArticle{
			ID:           article.ID.String(),
			Slug:         article.Slug,
			Title:        article.Title,
			CanonicalURL: h.service.CanonicalTag(r.Context(), defaultURL, article.ID),
			Permalink:    h.service.Permalink(r.Context(), defaultURL, article.ID),
			Body:         h.service.Body(r.Context(), article.Body, article.ID, vc),
			CreatedAt:    article.CreatedAt,
			UpdatedAt:    article.UpdatedAt,
		})
	}

	render.JSON(w, r, resp)
}

// ResolveCanonical is the integration point for SEO layers that recompute
// canonical values from a URL alone. An unknown URL echoes back unchanged.
func (h *ArticleHandler) ResolveCanonical(w http.ResponseWriter, r *http.Request) {
	requestURL := r.URL.Query().Get("url")
	if requestURL == "" {
		http.Error(w, "url query parameter is required", http.StatusBadRequest)
		return
	}

	render.JSON(w, r, map[string]string{
		"url":       requestURL,
		"canonical": h.service.CanonicalTagForURL(r.Context(), requestURL),
	})
}
