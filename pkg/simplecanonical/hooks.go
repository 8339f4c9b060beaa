package simplecanonical

import (
	"context"

	"github.com/google/uuid"
)

// Hook system allows extending canonical override behavior without
// modifying core code. Hooks split into two registration scopes: the
// admin-context save lifecycle and the public-context output filters.
// Within a scope, hooks run in registration order.

// Hooks defines all available extension points
type Hooks struct {
	// Admin-context hooks (item-save event)
	BeforeOverrideSave []BeforeOverrideSaveHook
	AfterOverrideSave  []AfterOverrideSaveHook

	// Public-context filters (render/output time)
	CanonicalFilters  []CanonicalFilter
	PermalinkFilters  []PermalinkFilter
	BodyFilters       []BodyFilter
	DisclaimerFilters []DisclaimerFilter
}

// Hook context carries information through a hook chain
type HookContext struct {
	Context   context.Context
	Metadata  map[string]interface{} // Custom metadata passed between hooks
	StopChain bool                   // Set to true to stop processing remaining hooks
}

// NewHookContext creates a new hook context
func NewHookContext(ctx context.Context) *HookContext {
	return &HookContext{
		Context:  ctx,
		Metadata: make(map[string]interface{}),
	}
}

// Admin-context hooks

// BeforeOverrideSaveHook is called before an override save is applied.
// Returning an error vetoes the save.
type BeforeOverrideSaveHook func(hctx *HookContext, articleID uuid.UUID, fields SubmittedFields) error

// AfterOverrideSaveHook is called after an override save is stored
type AfterOverrideSaveHook func(hctx *HookContext, articleID uuid.UUID, ov Override) error

// Public-context filters

// CanonicalFilter rewrites the resolved canonical tag value
type CanonicalFilter func(hctx *HookContext, current string, ov Override) string

// PermalinkFilter rewrites the resolved permalink
type PermalinkFilter func(hctx *HookContext, current string, ov Override) string

// BodyFilter rewrites the resolved article body
type BodyFilter func(hctx *HookContext, current string, ov Override, vc ViewContext) string

// DisclaimerFilter rewrites the disclaimer fragment before it is prepended
type DisclaimerFilter func(hctx *HookContext, fragment string, ov Override) string

// Hook execution helpers

// executeBeforeOverrideSave runs all BeforeOverrideSave hooks
func (h *Hooks) executeBeforeOverrideSave(ctx context.Context, articleID uuid.UUID, fields SubmittedFields) error {
	if len(h.BeforeOverrideSave) == 0 {
		return nil
	}

	hctx := NewHookContext(ctx)
	for _, hook := range h.BeforeOverrideSave {
		if err := hook(hctx, articleID, fields); err != nil {
			return err
		}
		if hctx.StopChain {
			break
		}
	}
	return nil
}

// executeAfterOverrideSave runs all AfterOverrideSave hooks
func (h *Hooks) executeAfterOverrideSave(ctx context.Context, articleID uuid.UUID, ov Override) error {
	if len(h.AfterOverrideSave) == 0 {
		return nil
	}

	hctx := NewHookContext(ctx)
	for _, hook := range h.AfterOverrideSave {
		if err := hook(hctx, articleID, ov); err != nil {
			return err
		}
		if hctx.StopChain {
			break
		}
	}
	return nil
}

// executeCanonicalFilters runs all CanonicalFilters over the resolved value
func (h *Hooks) executeCanonicalFilters(ctx context.Context, current string, ov Override) string {
	if len(h.CanonicalFilters) == 0 {
		return current
	}

	hctx := NewHookContext(ctx)
	for _, filter := range h.CanonicalFilters {
		current = filter(hctx, current, ov)
		if hctx.StopChain {
			break
		}
	}
	return current
}

// executePermalinkFilters runs all PermalinkFilters over the resolved value
func (h *Hooks) executePermalinkFilters(ctx context.Context, current string, ov Override) string {
	if len(h.PermalinkFilters) == 0 {
		return current
	}

	hctx := NewHookContext(ctx)
	for _, filter := range h.PermalinkFilters {
		current = filter(hctx, current, ov)
		if hctx.StopChain {
			break
		}
	}
	return current
}

// executeBodyFilters runs all BodyFilters over the resolved body
func (h *Hooks) executeBodyFilters(ctx context.Context, current string, ov Override, vc ViewContext) string {
	if len(h.BodyFilters) == 0 {
		return current
	}

	hctx := NewHookContext(ctx)
	for _, filter := range h.BodyFilters {
		current = filter(hctx, current, ov, vc)
		if hctx.StopChain {
			break
		}
	}
	return current
}

// executeDisclaimerFilters runs all DisclaimerFilters over the fragment
func (h *Hooks) executeDisclaimerFilters(ctx context.Context, fragment string, ov Override) string {
	if len(h.DisclaimerFilters) == 0 {
		return fragment
	}

	hctx := NewHookContext(ctx)
	for _, filter := range h.DisclaimerFilters {
		fragment = filter(hctx, fragment, ov)
		if hctx.StopChain {
			break
		}
	}
	return fragment
}

// Common hook implementations (examples)

// AuditHook records every stored override through the supplied logger
func AuditHook(logger func(format string, args ...interface{})) *Hooks {
	return &Hooks{
		AfterOverrideSave: []AfterOverrideSaveHook{
			func(hctx *HookContext, articleID uuid.UUID, ov Override) error {
				logger("Canonical override saved: %s (url: %s, disclaimer: %t)", articleID, ov.CanonicalURL, ov.DisclaimerEnabled)
				return nil
			},
		},
	}
}

// ValidationHook adds custom validation to the save path
func ValidationHook(validator func(articleID uuid.UUID, fields SubmittedFields) error) BeforeOverrideSaveHook {
	return func(hctx *HookContext, articleID uuid.UUID, fields SubmittedFields) error {
		return validator(articleID, fields)
	}
}
