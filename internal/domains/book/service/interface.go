package service

import (
	"context"

	"github.com/google/uuid"

	"bookshop-backend/internal/domains/book/model"
)

// ServiceInterface defines Book business logic.
type ServiceInterface interface {
	// Create creates a new book.
	// Errors: model.ErrDuplicateTitle, model.ErrAuthorNotFound.
	Create(ctx context.Context, req *model.CreateBookRequest) (*model.Book, error)

	// GetByID retrieves a book.
	// Errors: model.ErrBookNotFound.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Book, error)

	// GetAll lists all books.
	GetAll(ctx context.Context) ([]model.Book, error)

	// Update applies a partial update: only fields present in the request
	// are written.
	// Errors: model.ErrBookNotFound, model.ErrDuplicateTitle.
	Update(ctx context.Context, id uuid.UUID, req *model.UpdateBookRequest) (*model.Book, error)

	// Delete removes a book.
	// Errors: model.ErrBookNotFound.
	Delete(ctx context.Context, id uuid.UUID) error

	// TopByCopies returns the top books by copy count, descending.
	TopByCopies(ctx context.Context, limit int) ([]model.Book, error)
}

// DeliveryServiceInterface is the batch ingest entry point.
type DeliveryServiceInterface interface {
	// Deliver resolves every candidate in order and reports a per-item
	// outcome. One bad candidate never aborts the batch; the returned
	// error is reserved for faults of the batch itself (begin/commit).
	Deliver(ctx context.Context, items []model.DeliveryItem) (*model.DeliveryResult, error)
}
