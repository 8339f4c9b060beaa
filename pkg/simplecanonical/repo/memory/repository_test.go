package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tendant/simple-canonical/pkg/simplecanonical"
	"github.com/tendant/simple-canonical/pkg/simplecanonical/repo/memory"
)

func newTestArticle(slug string) *simplecanonical.Article {
	now := time.Now().UTC()
	return &simplecanonical.Article{
		ID:        uuid.New(),
		Slug:      slug,
		Title:     "Title " + slug,
		Body:      "<p>Body</p>",
		Status:    string(simplecanonical.ArticleStatusPublished),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestMemoryRepository_ArticleOperations(t *testing.T) {
	repo := memory.New()
	ctx := context.Background()

	t.Run("CreateAndGet", func(t *testing.T) {
		article := newTestArticle("create-get")
		require.NoError(t, repo.CreateArticle(ctx, article))

		got, err := repo.GetArticle(ctx, article.ID)
		require.NoError(t, err)
		assert.Equal(t, article.ID, got.ID)
		assert.Equal(t, article.Slug, got.Slug)
	})

	t.Run("GetBySlug", func(t *testing.T) {
		article := newTestArticle("by-slug")
		require.NoError(t, repo.CreateArticle(ctx, article))

		got, err := repo.GetArticleBySlug(ctx, "by-slug")
		require.NoError(t, err)
		assert.Equal(t, article.ID, got.ID)
	})

	t.Run("GetNotFound", func(t *testing.T) {
		_, err := repo.GetArticle(ctx, uuid.New())
		assert.ErrorIs(t, err, simplecanonical.ErrArticleNotFound)

		_, err = repo.GetArticleBySlug(ctx, "missing")
		assert.ErrorIs(t, err, simplecanonical.ErrArticleNotFound)
	})

	t.Run("DuplicateSlugRejected", func(t *testing.T) {
		article := newTestArticle("dup")
		require.NoError(t, repo.CreateArticle(ctx, article))

		err := repo.CreateArticle(ctx, newTestArticle("dup"))
		assert.ErrorIs(t, err, simplecanonical.ErrSlugInUse)
	})

	t.Run("Update", func(t *testing.T) {
		article := newTestArticle("update")
		require.NoError(t, repo.CreateArticle(ctx, article))

		article.Title = "Updated"
		require.NoError(t, repo.UpdateArticle(ctx, article))

		got, err := repo.GetArticle(ctx, article.ID)
		require.NoError(t, err)
		assert.Equal(t, "Updated", got.Title)
	})

	t.Run("UpdateChangesSlugIndex", func(t *testing.T) {
		article := newTestArticle("old-slug")
		require.NoError(t, repo.CreateArticle(ctx, article))

		article.Slug = "new-slug"
		require.NoError(t, repo.UpdateArticle(ctx, article))

		_, err := repo.GetArticleBySlug(ctx, "old-slug")
		assert.ErrorIs(t, err, simplecanonical.ErrArticleNotFound)

		got, err := repo.GetArticleBySlug(ctx, "new-slug")
		require.NoError(t, err)
		assert.Equal(t, article.ID, got.ID)
	})

	t.Run("DeleteIsSoft", func(t *testing.T) {
		article := newTestArticle("delete")
		require.NoError(t, repo.CreateArticle(ctx, article))
		require.NoError(t, repo.DeleteArticle(ctx, article.ID))

		_, err := repo.GetArticle(ctx, article.ID)
		assert.ErrorIs(t, err, simplecanonical.ErrArticleNotFound)

		_, err = repo.GetArticleBySlug(ctx, "delete")
		assert.ErrorIs(t, err, simplecanonical.ErrArticleNotFound)
	})

	t.Run("SlugReusableAfterDelete", func(t *testing.T) {
		article := newTestArticle("reuse")
		require.NoError(t, repo.CreateArticle(ctx, article))
		require.NoError(t, repo.DeleteArticle(ctx, article.ID))

		assert.NoError(t, repo.CreateArticle(ctx, newTestArticle("reuse")))
	})

	t.Run("ListSkipsDeleted", func(t *testing.T) {
		repo := memory.New()

		a := newTestArticle("list-a")
		b := newTestArticle("list-b")
		require.NoError(t, repo.CreateArticle(ctx, a))
		require.NoError(t, repo.CreateArticle(ctx, b))
		require.NoError(t, repo.DeleteArticle(ctx, b.ID))

		articles, err := repo.ListArticles(ctx)
		require.NoError(t, err)
		require.Len(t, articles, 1)
		assert.Equal(t, a.ID, articles[0].ID)
	})

	t.Run("ReturnedCopiesAreIsolated", func(t *testing.T) {
		article := newTestArticle("isolated")
		require.NoError(t, repo.CreateArticle(ctx, article))

		got, err := repo.GetArticle(ctx, article.ID)
		require.NoError(t, err)
		got.Title = "mutated"

		again, err := repo.GetArticle(ctx, article.ID)
		require.NoError(t, err)
		assert.Equal(t, "Title isolated", again.Title)
	})
}

func TestMemoryRepository_MetaOperations(t *testing.T) {
	repo := memory.New()
	ctx := context.Background()

	article := newTestArticle("meta")
	require.NoError(t, repo.CreateArticle(ctx, article))

	t.Run("EmptyMetaIsNotAnError", func(t *testing.T) {
		meta, err := repo.GetArticleMeta(ctx, article.ID)
		require.NoError(t, err)
		assert.Empty(t, meta)
	})

	t.Run("MetaForUnknownArticle", func(t *testing.T) {
		_, err := repo.GetArticleMeta(ctx, uuid.New())
		assert.ErrorIs(t, err, simplecanonical.ErrArticleNotFound)

		err = repo.SetArticleMetaKey(ctx, uuid.New(), "k", "v")
		assert.ErrorIs(t, err, simplecanonical.ErrArticleNotFound)
	})

	t.Run("SetGetDelete", func(t *testing.T) {
		require.NoError(t, repo.SetArticleMetaKey(ctx, article.ID, simplecanonical.MetaKeyCanonicalURL, "https://ex.com/x"))
		require.NoError(t, repo.SetArticleMetaKey(ctx, article.ID, simplecanonical.MetaKeyDisclaimer, "true"))

		meta, err := repo.GetArticleMeta(ctx, article.ID)
		require.NoError(t, err)
		assert.Equal(t, "https://ex.com/x", meta[simplecanonical.MetaKeyCanonicalURL])
		assert.Equal(t, "true", meta[simplecanonical.MetaKeyDisclaimer])

		require.NoError(t, repo.DeleteArticleMetaKey(ctx, article.ID, simplecanonical.MetaKeyDisclaimer))

		meta, err = repo.GetArticleMeta(ctx, article.ID)
		require.NoError(t, err)
		_, present := meta[simplecanonical.MetaKeyDisclaimer]
		assert.False(t, present, "deleted key must be absent, not empty")
	})

	t.Run("DeleteAbsentKeyIsNoOp", func(t *testing.T) {
		assert.NoError(t, repo.DeleteArticleMetaKey(ctx, article.ID, "never-set"))
	})

	t.Run("ReturnedMapIsACopy", func(t *testing.T) {
		require.NoError(t, repo.SetArticleMetaKey(ctx, article.ID, "k", "v"))

		meta, err := repo.GetArticleMeta(ctx, article.ID)
		require.NoError(t, err)
		meta["k"] = "mutated"

		again, err := repo.GetArticleMeta(ctx, article.ID)
		require.NoError(t, err)
		assert.Equal(t, "v", again["k"])
	})
}
