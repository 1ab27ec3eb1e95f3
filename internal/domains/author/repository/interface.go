package repository

import (
	"context"

	"github.com/google/uuid"

	"bookshop-backend/internal/domains/author/model"
)

// RepositoryInterface defines Author data access operations.
type RepositoryInterface interface {
	// Create inserts a new author.
	// Errors: model.ErrDuplicateTitle if the title is taken.
	Create(ctx context.Context, a *model.Author) (*model.Author, error)

	// GetByID retrieves an author by UUID.
	// Errors: model.ErrAuthorNotFound.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Author, error)

	// GetAll retrieves all authors ordered by title.
	GetAll(ctx context.Context) ([]model.Author, error)

	// Update persists the given author.
	// Errors: model.ErrAuthorNotFound, model.ErrDuplicateTitle.
	Update(ctx context.Context, a *model.Author) (*model.Author, error)

	// Delete removes an author. The books foreign key is RESTRICT, so the
	// database is the arbiter for the referencing-books rule.
	// Errors: model.ErrAuthorNotFound, model.ErrAuthorHasBooks.
	Delete(ctx context.Context, id uuid.UUID) error

	// ExistsByID checks existence without fetching the row.
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)

	// GetStats returns the per-author book-count aggregate for all authors.
	GetStats(ctx context.Context) ([]model.AuthorStat, error)

	// GetStatByID returns the aggregate for one author.
	// Errors: model.ErrAuthorNotFound.
	GetStatByID(ctx context.Context, id uuid.UUID) (*model.AuthorStat, error)
}
