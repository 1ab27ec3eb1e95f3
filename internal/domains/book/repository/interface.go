package repository

import (
	"context"

	"github.com/google/uuid"

	"bookshop-backend/internal/domains/book/model"
)

// RepositoryInterface defines Book data access operations.
type RepositoryInterface interface {
	// Create inserts a new book.
	// Errors: model.ErrDuplicateTitle on a (author_id, title) collision,
	// model.ErrAuthorNotFound when the referenced author does not exist.
	Create(ctx context.Context, b *model.Book) (*model.Book, error)

	// GetByID retrieves a book by UUID.
	// Errors: model.ErrBookNotFound.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Book, error)

	// GetAll retrieves all books ordered by title.
	GetAll(ctx context.Context) ([]model.Book, error)

	// Update persists the given book.
	// Errors: model.ErrBookNotFound, model.ErrDuplicateTitle.
	Update(ctx context.Context, b *model.Book) (*model.Book, error)

	// Delete removes a book by ID.
	// Errors: model.ErrBookNotFound.
	Delete(ctx context.Context, id uuid.UUID) error

	// TopByCopies returns the limit books with the highest copy counts,
	// descending.
	TopByCopies(ctx context.Context, limit int) ([]model.Book, error)
}

// DeliveryStore is the set of statements available while resolving one
// delivery candidate. Implementations run against the batch transaction.
type DeliveryStore interface {
	// FindByNaturalKey looks a book up by its (author_id, title) pair.
	// Errors: model.ErrBookNotFound.
	FindByNaturalKey(ctx context.Context, authorID uuid.UUID, title string) (*model.Book, error)

	// AddCopies increments a book's copy count, leaving other fields alone.
	// Errors: model.ErrBookNotFound.
	AddCopies(ctx context.Context, id uuid.UUID, n int) (*model.Book, error)

	// Insert creates a new row from the candidate.
	// Errors: model.ErrDuplicateTitle when a concurrent writer won the
	// (author_id, title) race, model.ErrAuthorNotFound on a dangling
	// author reference.
	Insert(ctx context.Context, b *model.Book) (*model.Book, error)

	// AuthorExists is the advisory author point lookup. The foreign key
	// remains the final arbiter on Insert.
	AuthorExists(ctx context.Context, authorID uuid.UUID) (bool, error)
}

// BatchTx is one open delivery transaction.
type BatchTx interface {
	// Item runs fn under a savepoint. When fn fails only that savepoint is
	// rolled back; earlier items and the enclosing transaction survive.
	Item(ctx context.Context, fn func(DeliveryStore) error) error
}

// BatchRunner opens the delivery transaction, hands it to fn and issues the
// single final commit once fn returns.
type BatchRunner interface {
	RunBatch(ctx context.Context, fn func(BatchTx) error) error
}
