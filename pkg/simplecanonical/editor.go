package simplecanonical

import (
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/google/uuid"
)

// Metadata editor operations.
//
// EditorForm and SaveOverride are the two halves of the override editor:
// the form is a read-only projection of the stored metadata, and the save
// operation is the only writer of the two metadata keys.

// EditorForm reads the stored override for an article and returns the form
// model used to render the editor. No side effects.
func (s *service) EditorForm(ctx context.Context, articleID uuid.UUID) (*EditorForm, error) {
	meta, err := s.repository.GetArticleMeta(ctx, articleID)
	if err != nil {
		return nil, err
	}

	ov := OverrideFromMeta(meta)
	return &EditorForm{
		ArticleID:         articleID,
		CanonicalURL:      ov.CanonicalURL,
		DisclaimerChecked: ov.DisclaimerEnabled,
	}, nil
}

// SaveOverride applies the submitted editor fields to an article's metadata.
//
// Guards: a nil/unknown article ID or an empty submitted URL is a no-op, not
// an error. An empty URL means "no change requested", never "clear the
// stored value". When the URL field is present the submitted value is
// sanitized and stored; the disclaimer key is stored as "true" when the
// checkbox field carries any non-empty value, and deleted otherwise so that
// absence remains the off representation. Repeated calls with the same
// fields produce the same stored state.
func (s *service) SaveOverride(ctx context.Context, articleID uuid.UUID, fields SubmittedFields) error {
	if articleID == uuid.Nil {
		return nil
	}

	raw := strings.TrimSpace(fields[FieldCanonicalURL])
	if raw == "" {
		return nil
	}

	if _, err := s.repository.GetArticle(ctx, articleID); err != nil {
		if isNotFound(err) {
			return nil
		}
		return &ArticleError{ArticleID: articleID, Op: "save_override", Err: err}
	}

	if err := s.hooks.executeBeforeOverrideSave(ctx, articleID, fields); err != nil {
		return err
	}

	// Sanitization never fails; a hopeless input stores an empty string.
	sanitized := SanitizeURL(raw)
	if err := s.repository.SetArticleMetaKey(ctx, articleID, MetaKeyCanonicalURL, sanitized); err != nil {
		return &ArticleError{ArticleID: articleID, Op: "save_override", Err: err}
	}

	if fields[FieldDisclaimer] != "" {
		if err := s.repository.SetArticleMetaKey(ctx, articleID, MetaKeyDisclaimer, DisclaimerEnabledValue); err != nil {
			return &ArticleError{ArticleID: articleID, Op: "save_override", Err: err}
		}
	} else {
		if err := s.repository.DeleteArticleMetaKey(ctx, articleID, MetaKeyDisclaimer); err != nil {
			return &ArticleError{ArticleID: articleID, Op: "save_override", Err: err}
		}
	}

	ov := Override{
		CanonicalURL:      sanitized,
		DisclaimerEnabled: fields[FieldDisclaimer] != "",
	}
	return s.hooks.executeAfterOverrideSave(ctx, articleID, ov)
}

// HTML renders the editor form markup with the stored URL escaped into the
// text input and the checkbox checked iff the disclaimer flag is on.
func (f *EditorForm) HTML() string {
	checked := ""
	if f.DisclaimerChecked {
		checked = ` checked="checked"`
	}

	var b strings.Builder
	fmt.Fprintf(&b,
		`<p><label for="%s">Canonical URL</label> <input type="text" name="%s" id="%s" value="%s" /></p>`+"\n",
		FieldCanonicalURL, FieldCanonicalURL, FieldCanonicalURL, html.EscapeString(f.CanonicalURL))
	fmt.Fprintf(&b,
		`<p><label for="%s"><input type="checkbox" name="%s" id="%s" value="%s"%s /> Show repost disclaimer</label></p>`+"\n",
		FieldDisclaimer, FieldDisclaimer, FieldDisclaimer, DisclaimerEnabledValue, checked)
	return b.String()
}
