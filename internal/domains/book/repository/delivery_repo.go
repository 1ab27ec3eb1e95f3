package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"bookshop-backend/internal/domains/book/model"
	"bookshop-backend/pkg/cache"
	"bookshop-backend/pkg/database"
)

// deliveryRepository implements BatchRunner. A whole delivery batch runs in
// one transaction; each item gets a savepoint (pgx nested Begin) so a failed
// statement cannot poison the statements that came before it.
type deliveryRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

func NewDeliveryRepository(pool *pgxpool.Pool, cache cache.Cache) BatchRunner {
	return &deliveryRepository{pool: pool, cache: cache}
}

func (r *deliveryRepository) RunBatch(ctx context.Context, fn func(BatchTx) error) error {
	written, err := database.WithTransactionResult(ctx, r.pool, func(tx pgx.Tx) ([]uuid.UUID, error) {
		btx := &batchTx{tx: tx}
		if err := fn(btx); err != nil {
			return nil, err
		}
		return btx.written, nil
	})
	if err != nil {
		return err
	}

	// Earlier reads may have cached rows this batch just changed. Dropped
	// only after the commit, so a concurrent read cannot re-cache the old
	// row state in between.
	r.invalidateWritten(ctx, written)

	return nil
}

func (r *deliveryRepository) invalidateWritten(ctx context.Context, ids []uuid.UUID) {
	if len(ids) == 0 {
		return
	}

	keys := make([]string, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, bookCacheKeyPrefix+id.String())
	}

	_ = r.cache.Delete(ctx, keys...)
	_ = r.cache.DeletePattern(ctx, bookTopCacheKeyPattern)
}

type batchTx struct {
	tx      pgx.Tx
	written []uuid.UUID
}

// markWritten records a row changed by a committed statement so its cache
// entry can be dropped once the batch commits.
func (b *batchTx) markWritten(id uuid.UUID) {
	b.written = append(b.written, id)
}

func (b *batchTx) Item(ctx context.Context, fn func(DeliveryStore) error) error {
	// pgx.Tx.Begin on an open transaction issues a SAVEPOINT; Rollback
	// returns to it without touching the outer transaction.
	sub, err := b.tx.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to open savepoint: %w", err)
	}

	if err := fn(&deliveryStore{tx: sub, batch: b}); err != nil {
		_ = sub.Rollback(ctx)
		return err
	}

	if err := sub.Commit(ctx); err != nil {
		return fmt.Errorf("failed to release savepoint: %w", err)
	}

	return nil
}

// deliveryStore implements DeliveryStore against the item's savepoint.
type deliveryStore struct {
	tx    pgx.Tx
	batch *batchTx
}

func (s *deliveryStore) FindByNaturalKey(ctx context.Context, authorID uuid.UUID, title string) (*model.Book, error) {
	query := `SELECT ` + bookColumns + ` FROM books WHERE author_id = $1 AND title = $2`

	var b model.Book
	err := scanBook(s.tx.QueryRow(ctx, query, authorID, title), &b)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrBookNotFound
		}
		return nil, fmt.Errorf("failed to find book by natural key: %w", err)
	}

	return &b, nil
}

func (s *deliveryStore) AddCopies(ctx context.Context, id uuid.UUID, n int) (*model.Book, error) {
	query := `
        UPDATE books
        SET copies = copies + $1,
            updated_at = NOW()
        WHERE id = $2
        RETURNING ` + bookColumns

	var b model.Book
	err := scanBook(s.tx.QueryRow(ctx, query, n, id), &b)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrBookNotFound
		}
		return nil, fmt.Errorf("failed to add copies: %w", err)
	}

	s.batch.markWritten(b.ID)

	return &b, nil
}

func (s *deliveryStore) Insert(ctx context.Context, b *model.Book) (*model.Book, error) {
	query := `
        INSERT INTO books (title, genre, author_id, copies, description)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING ` + bookColumns

	var created model.Book
	err := scanBook(s.tx.QueryRow(ctx, query,
		b.Title, b.Genre, b.AuthorID, b.Copies, b.Description,
	), &created)

	if err != nil {
		if domainErr := translateWriteError(err); domainErr != nil {
			return nil, domainErr
		}
		return nil, fmt.Errorf("failed to insert book: %w", err)
	}

	s.batch.markWritten(created.ID)

	return &created, nil
}

func (s *deliveryStore) AuthorExists(ctx context.Context, authorID uuid.UUID) (bool, error) {
	var exists bool
	err := s.tx.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM authors WHERE id = $1)`, authorID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check author existence: %w", err)
	}

	return exists, nil
}
