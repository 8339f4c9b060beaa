package simplecanonical_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tendant/simple-canonical/pkg/simplecanonical"
)

func TestBeforeOverrideSaveVeto(t *testing.T) {
	ctx := context.Background()

	vetoErr := errors.New("external URLs only")
	hooks := &simplecanonical.Hooks{
		BeforeOverrideSave: []simplecanonical.BeforeOverrideSaveHook{
			func(hctx *simplecanonical.HookContext, articleID uuid.UUID, fields simplecanonical.SubmittedFields) error {
				if strings.Contains(fields[simplecanonical.FieldCanonicalURL], "example.org") {
					return vetoErr
				}
				return nil
			},
		},
	}

	svc := setupTestService(t, simplecanonical.WithHooks(hooks))
	article := createTestArticle(t, svc, "vetoed")

	err := svc.SaveOverride(ctx, article.ID, simplecanonical.SubmittedFields{
		simplecanonical.FieldCanonicalURL: "https://example.org/self",
	})
	assert.ErrorIs(t, err, vetoErr)

	// Nothing stored after the veto.
	ov, err := svc.GetOverride(ctx, article.ID)
	require.NoError(t, err)
	assert.Empty(t, ov.CanonicalURL)
}

func TestAfterOverrideSaveObservesStoredState(t *testing.T) {
	ctx := context.Background()

	var seen simplecanonical.Override
	hooks := &simplecanonical.Hooks{
		AfterOverrideSave: []simplecanonical.AfterOverrideSaveHook{
			func(hctx *simplecanonical.HookContext, articleID uuid.UUID, ov simplecanonical.Override) error {
				seen = ov
				return nil
			},
		},
	}

	svc := setupTestService(t, simplecanonical.WithHooks(hooks))
	article := createTestArticle(t, svc, "observed")

	require.NoError(t, svc.SaveOverride(ctx, article.ID, simplecanonical.SubmittedFields{
		simplecanonical.FieldCanonicalURL: "https://ex.com/a b",
		simplecanonical.FieldDisclaimer:   "true",
	}))

	assert.Equal(t, "https://ex.com/a%20b", seen.CanonicalURL)
	assert.True(t, seen.DisclaimerEnabled)
}

func TestFilterChainsRunInRegistrationOrder(t *testing.T) {
	ctx := context.Background()

	hooks := &simplecanonical.Hooks{
		CanonicalFilters: []simplecanonical.CanonicalFilter{
			func(hctx *simplecanonical.HookContext, current string, ov simplecanonical.Override) string {
				return current + "?first"
			},
			func(hctx *simplecanonical.HookContext, current string, ov simplecanonical.Override) string {
				return current + "&second"
			},
		},
	}

	svc := setupTestService(t, simplecanonical.WithHooks(hooks))
	article := createTestArticle(t, svc, "filtered")

	got := svc.CanonicalTag(ctx, "https://example.org/a", article.ID)
	assert.Equal(t, "https://example.org/a?first&second", got)
}

func TestStopChainHaltsRemainingFilters(t *testing.T) {
	ctx := context.Background()

	hooks := &simplecanonical.Hooks{
		DisclaimerFilters: []simplecanonical.DisclaimerFilter{
			func(hctx *simplecanonical.HookContext, fragment string, ov simplecanonical.Override) string {
				hctx.StopChain = true
				return "<p>custom disclaimer</p>"
			},
			func(hctx *simplecanonical.HookContext, fragment string, ov simplecanonical.Override) string {
				return "never reached"
			},
		},
	}

	svc := setupTestService(t, simplecanonical.WithHooks(hooks))
	article := createTestArticle(t, svc, "stopped")

	require.NoError(t, svc.SaveOverride(ctx, article.ID, simplecanonical.SubmittedFields{
		simplecanonical.FieldCanonicalURL: "https://ex.com/x",
		simplecanonical.FieldDisclaimer:   "true",
	}))

	got := svc.Body(ctx, "body", article.ID, singleView())
	assert.Equal(t, "<p>custom disclaimer</p>body", got)
}

func TestWithDisclaimerFilterOption(t *testing.T) {
	ctx := context.Background()

	svc := setupTestService(t, simplecanonical.WithDisclaimerFilter(
		func(hctx *simplecanonical.HookContext, fragment string, ov simplecanonical.Override) string {
			return strings.Replace(fragment, "reposted from", "originally published at", 1)
		}))
	article := createTestArticle(t, svc, "reworded")

	require.NoError(t, svc.SaveOverride(ctx, article.ID, simplecanonical.SubmittedFields{
		simplecanonical.FieldCanonicalURL: "https://ex.com/x",
		simplecanonical.FieldDisclaimer:   "true",
	}))

	got := svc.Body(ctx, "body", article.ID, singleView())
	assert.Contains(t, got, "originally published at")
	assert.NotContains(t, got, "reposted from")
}
