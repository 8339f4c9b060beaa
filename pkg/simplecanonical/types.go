package simplecanonical

import (
	"time"

	"github.com/google/uuid"
)

// ArticleStatus is the domain type for article lifecycle states.
type ArticleStatus string

// Article status constants (typed).
const (
	ArticleStatusDraft     ArticleStatus = "draft"
	ArticleStatusPublished ArticleStatus = "published"
	ArticleStatusDeleted   ArticleStatus = "deleted"
)

// Metadata keys attached to an article by the canonical override feature.
const (
	MetaKeyCanonicalURL = "canonical_url"
	MetaKeyDisclaimer   = "disclaimer_enabled"
)

// DisclaimerEnabledValue is the only stored value that switches the
// disclaimer on. Anything else (including "1" or "yes") is treated as off;
// absence of the key is the canonical off representation.
const DisclaimerEnabledValue = "true"

// Submitted form field names for the override editor.
const (
	FieldCanonicalURL = "canonical_url"
	FieldDisclaimer   = "disclaimer"
)

// Article represents a published content item owned by the platform.
type Article struct {
	ID        uuid.UUID  `json:"id"`
	Slug      string     `json:"slug"`
	Title     string     `json:"title"`
	Body      string     `json:"body"`
	Status    string     `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

// Override is the per-article projection of the two canonical metadata keys.
// DisclaimerEnabled is true only when the stored flag is exactly
// DisclaimerEnabledValue.
type Override struct {
	CanonicalURL      string `json:"canonical_url"`
	DisclaimerEnabled bool   `json:"disclaimer_enabled"`
}

// OverrideFromMeta projects an article's metadata map into an Override.
func OverrideFromMeta(meta map[string]string) Override {
	return Override{
		CanonicalURL:      meta[MetaKeyCanonicalURL],
		DisclaimerEnabled: meta[MetaKeyDisclaimer] == DisclaimerEnabledValue,
	}
}

// ViewMode distinguishes how an article is being rendered.
type ViewMode string

// View mode constants (typed).
const (
	ViewSingle ViewMode = "single"
	ViewList   ViewMode = "list"
)

// ViewContext carries the request rendering context explicitly. There is no
// ambient "current article" state; callers pass the context on every call.
type ViewContext struct {
	Mode ViewMode `json:"mode"`

	// DisclaimersEnabled is the request-level switch for the disclaimer
	// feature. Hosts that want to suppress disclaimers for a request set
	// this to false regardless of per-article flags.
	DisclaimersEnabled bool `json:"disclaimers_enabled"`
}

// SubmittedFields are the raw string fields from an article-save event.
// A missing field and an empty field are equivalent.
type SubmittedFields map[string]string

// EditorForm is the form model for the canonical override editor.
type EditorForm struct {
	ArticleID         uuid.UUID `json:"article_id"`
	CanonicalURL      string    `json:"canonical_url"`
	DisclaimerChecked bool      `json:"disclaimer_checked"`
}
