package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/google/uuid"
	"github.com/tendant/simple-canonical/pkg/simplecanonical"
)

// AdminHandler handles the admin-context HTTP surface: article creation,
// the canonical override edit form, and the override save event.
type AdminHandler struct {
	service simplecanonical.Service
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(service simplecanonical.Service) *AdminHandler {
	return &AdminHandler{service: service}
}

// Routes returns the admin routes
func (h *AdminHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.CreateArticle)
	r.Delete("/{id}", h.DeleteArticle)

	// Canonical override editor
	r.Get("/{id}/canonical", h.GetCanonicalForm)
	r.Put("/{id}/canonical", h.SaveCanonicalOverride)

	return r
}

// CreateArticleRequest is the request body for creating an article
type CreateArticleRequest struct {
	Slug   string `json:"slug"`
	Title  string `json:"title"`
	Body   string `json:"body"`
	Status string `json:"status,omitempty"`
}

// CanonicalFormResponse is the response body for the override edit form
type CanonicalFormResponse struct {
	ArticleID         string `json:"article_id"`
	CanonicalURL      string `json:"canonical_url"`
	DisclaimerChecked bool   `json:"disclaimer_checked"`
	HTML              string `json:"html"`
}

// CreateArticle creates a new article
func (h *AdminHandler) CreateArticle(w http.ResponseWriter, r *http.Request) {
	var req CreateArticleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	article, err := h.service.CreateArticle(r.Context(), simplecanonical.CreateArticleRequest{
		Slug:   req.Slug,
		Title:  req.Title,
		Body:   req.Body,
		Status: req.Status,
	})
	if err != nil {
		slog.Error("Failed to create article", "slug", req.Slug, "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, article)
}

// DeleteArticle deletes an article
func (h *AdminHandler) DeleteArticle(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid article ID", http.StatusBadRequest)
		return
	}

	if err := h.service.DeleteArticle(r.Context(), id); err != nil {
		slog.Error("Failed to delete article", "article_id", id, "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetCanonicalForm renders the override edit form for an article
func (h *AdminHandler) GetCanonicalForm(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid article ID", http.StatusBadRequest)
		return
	}

	form, err := h.service.EditorForm(r.Context(), id)
	if err != nil {
		slog.Error("Failed to load canonical form", "article_id", id, "error", err)
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	render.JSON(w, r, CanonicalFormResponse{
		ArticleID:         form.ArticleID.String(),
		CanonicalURL:      form.CanonicalURL,
		DisclaimerChecked: form.DisclaimerChecked,
		HTML:              form.HTML(),
	})
}

// SaveCanonicalOverride applies the submitted override fields to an article.
// Fields arrive form-encoded, matching the item-save event the editor posts.
// Guard conditions inside the service (empty URL, unknown article) are
// treated as "no change requested" and still return 204.
func (h *AdminHandler) SaveCanonicalOverride(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid article ID", http.StatusBadRequest)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	fields := simplecanonical.SubmittedFields{
		simplecanonical.FieldCanonicalURL: r.PostFormValue(simplecanonical.FieldCanonicalURL),
		simplecanonical.FieldDisclaimer:   r.PostFormValue(simplecanonical.FieldDisclaimer),
	}

	if err := h.service.SaveOverride(r.Context(), id, fields); err != nil {
		slog.Error("Failed to save canonical override", "article_id", id, "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
