package service

import (
	"context"

	"github.com/google/uuid"

	"bookshop-backend/internal/domains/author/model"
)

// ServiceInterface defines Author business logic.
type ServiceInterface interface {
	// Create creates a new author.
	// Errors: model.ErrDuplicateTitle.
	Create(ctx context.Context, req *model.CreateAuthorRequest) (*model.Author, error)

	// GetByID retrieves an author.
	// Errors: model.ErrAuthorNotFound.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Author, error)

	// GetAll lists all authors.
	GetAll(ctx context.Context) ([]model.Author, error)

	// Update applies a partial update: only fields present in the request
	// are written.
	// Errors: model.ErrAuthorNotFound, model.ErrDuplicateTitle.
	Update(ctx context.Context, id uuid.UUID, req *model.UpdateAuthorRequest) (*model.Author, error)

	// Delete removes an author unless books still reference it.
	// Errors: model.ErrAuthorNotFound, model.ErrAuthorHasBooks.
	Delete(ctx context.Context, id uuid.UUID) error

	// GetStats returns book-count aggregates for all authors.
	GetStats(ctx context.Context) ([]model.AuthorStat, error)

	// GetStatByID returns the aggregate for one author.
	// Errors: model.ErrAuthorNotFound.
	GetStatByID(ctx context.Context, id uuid.UUID) (*model.AuthorStat, error)
}
