package simplecanonical

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Error types
var (
	// ErrArticleNotFound indicates an article was not found
	ErrArticleNotFound = errors.New("article not found")

	// ErrSlugInUse indicates an article slug is already taken
	ErrSlugInUse = errors.New("slug already in use")

	// ErrInvalidArticleStatus indicates an invalid article status
	ErrInvalidArticleStatus = errors.New("invalid article status")
)

// ArticleError represents an error related to article operations
type ArticleError struct {
	ArticleID uuid.UUID
	Op        string
	Err       error
}

func (e *ArticleError) Error() string {
	return fmt.Sprintf("article operation %s failed for article %s: %v", e.Op, e.ArticleID, e.Err)
}

func (e *ArticleError) Unwrap() error {
	return e.Err
}
