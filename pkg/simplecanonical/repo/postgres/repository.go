package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tendant/simple-canonical/pkg/simplecanonical"
)

// DBTX is an interface that allows us to use either a database connection or a transaction
type DBTX interface {
	Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error)
	Query(context.Context, string, ...interface{}) (pgx.Rows, error)
	QueryRow(context.Context, string, ...interface{}) pgx.Row
}

// Repository implements simplecanonical.Repository using PostgreSQL
type Repository struct {
	db DBTX
}

// New creates a new PostgreSQL repository
func New(db DBTX) simplecanonical.Repository {
	return &Repository{db: db}
}

// NewWithPool creates a new PostgreSQL repository with connection pool
func NewWithPool(pool *pgxpool.Pool) simplecanonical.Repository {
	return &Repository{db: pool}
}

// Error handling helper
func (r *Repository) handlePostgresError(operation string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			if strings.Contains(pgErr.ConstraintName, "slug") {
				return simplecanonical.ErrSlugInUse
			}
			return fmt.Errorf("duplicate entry")
		case "23503": // foreign_key_violation
			return fmt.Errorf("referenced record not found")
		case "23502": // not_null_violation
			return fmt.Errorf("required field %s is missing", pgErr.ColumnName)
		case "42P01": // undefined_table
			return fmt.Errorf("table does not exist - database migration required")
		default:
			return fmt.Errorf("database error in %s: %s (code: %s)", operation, pgErr.Message, pgErr.Code)
		}
	}

	if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
		return simplecanonical.ErrArticleNotFound
	}

	return fmt.Errorf("database error in %s: %w", operation, err)
}

// Article operations

func (r *Repository) CreateArticle(ctx context.Context, article *simplecanonical.Article) error {
	query := `
		INSERT INTO article (
			id, slug, title, body, status, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.Exec(ctx, query,
		article.ID, article.Slug, article.Title, article.Body,
		article.Status, article.CreatedAt, article.UpdatedAt)

	if err != nil {
		return r.handlePostgresError("create article", err)
	}

	return nil
}

func (r *Repository) GetArticle(ctx context.Context, id uuid.UUID) (*simplecanonical.Article, error) {
	query := `
        SELECT id, slug, title, body, status, created_at, updated_at
        FROM article WHERE id = $1 AND deleted_at IS NULL`

	var article simplecanonical.Article
	err := r.db.QueryRow(ctx, query, id).Scan(
		&article.ID, &article.Slug, &article.Title, &article.Body,
		&article.Status, &article.CreatedAt, &article.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, simplecanonical.ErrArticleNotFound
		}
		return nil, err
	}

	return &article, nil
}

func (r *Repository) GetArticleBySlug(ctx context.Context, slug string) (*simplecanonical.Article, error) {
	query := `
        SELECT id, slug, title, body, status, created_at, updated_at
        FROM article WHERE slug = $1 AND deleted_at IS NULL`

	var article simplecanonical.Article
	err := r.db.QueryRow(ctx, query, slug).Scan(
		&article.ID, &article.Slug, &article.Title, &article.Body,
		&article.Status, &article.CreatedAt, &article.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, simplecanonical.ErrArticleNotFound
		}
		return nil, err
	}

	return &article, nil
}

func (r *Repository) UpdateArticle(ctx context.Context, article *simplecanonical.Article) error {
	query := `
		UPDATE article SET
			slug = $2, title = $3, body = $4, status = $5, updated_at = $6
		WHERE id = $1 AND deleted_at IS NULL`

	tag, err := r.db.Exec(ctx, query,
		article.ID, article.Slug, article.Title, article.Body,
		article.Status, article.UpdatedAt)

	if err != nil {
		return r.handlePostgresError("update article", err)
	}
	if tag.RowsAffected() == 0 {
		return simplecanonical.ErrArticleNotFound
	}

	return nil
}

func (r *Repository) DeleteArticle(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE article SET status = $2, deleted_at = $3, updated_at = $3
		WHERE id = $1 AND deleted_at IS NULL`

	tag, err := r.db.Exec(ctx, query, id, string(simplecanonical.ArticleStatusDeleted), time.Now().UTC())
	if err != nil {
		return r.handlePostgresError("delete article", err)
	}
	if tag.RowsAffected() == 0 {
		return simplecanonical.ErrArticleNotFound
	}

	return nil
}

func (r *Repository) ListArticles(ctx context.Context) ([]*simplecanonical.Article, error) {
	query := `
        SELECT id, slug, title, body, status, created_at, updated_at
        FROM article WHERE deleted_at IS NULL
        ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, r.handlePostgresError("list articles", err)
	}
	defer rows.Close()

	var result []*simplecanonical.Article
	for rows.Next() {
		var article simplecanonical.Article
		if err := rows.Scan(
			&article.ID, &article.Slug, &article.Title, &article.Body,
			&article.Status, &article.CreatedAt, &article.UpdatedAt); err != nil {
			return nil, r.handlePostgresError("list articles", err)
		}
		result = append(result, &article)
	}
	if err := rows.Err(); err != nil {
		return nil, r.handlePostgresError("list articles", err)
	}

	return result, nil
}

// Article metadata operations

func (r *Repository) GetArticleMeta(ctx context.Context, articleID uuid.UUID) (map[string]string, error) {
	if err := r.articleExists(ctx, articleID); err != nil {
		return nil, err
	}

	query := `SELECT meta_key, meta_value FROM article_meta WHERE article_id = $1`

	rows, err := r.db.Query(ctx, query, articleID)
	if err != nil {
		return nil, r.handlePostgresError("get article meta", err)
	}
	defer rows.Close()

	result := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, r.handlePostgresError("get article meta", err)
		}
		result[key] = value
	}
	if err := rows.Err(); err != nil {
		return nil, r.handlePostgresError("get article meta", err)
	}

	return result, nil
}

func (r *Repository) SetArticleMetaKey(ctx context.Context, articleID uuid.UUID, key, value string) error {
	if err := r.articleExists(ctx, articleID); err != nil {
		return err
	}

	query := `
		INSERT INTO article_meta (article_id, meta_key, meta_value, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $4)
		ON CONFLICT (article_id, meta_key)
		DO UPDATE SET meta_value = EXCLUDED.meta_value, updated_at = EXCLUDED.updated_at`

	_, err := r.db.Exec(ctx, query, articleID, key, value, time.Now().UTC())
	if err != nil {
		return r.handlePostgresError("set article meta key", err)
	}

	return nil
}

func (r *Repository) DeleteArticleMetaKey(ctx context.Context, articleID uuid.UUID, key string) error {
	if err := r.articleExists(ctx, articleID); err != nil {
		return err
	}

	query := `DELETE FROM article_meta WHERE article_id = $1 AND meta_key = $2`

	_, err := r.db.Exec(ctx, query, articleID, key)
	if err != nil {
		return r.handlePostgresError("delete article meta key", err)
	}

	return nil
}

func (r *Repository) articleExists(ctx context.Context, articleID uuid.UUID) error {
	var one int
	err := r.db.QueryRow(ctx,
		`SELECT 1 FROM article WHERE id = $1 AND deleted_at IS NULL`, articleID).Scan(&one)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return simplecanonical.ErrArticleNotFound
		}
		return r.handlePostgresError("article exists", err)
	}
	return nil
}
