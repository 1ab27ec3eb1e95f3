package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"bookshop-backend/internal/domains/book/model"
	"bookshop-backend/pkg/cache"
)

// postgresRepository implements RepositoryInterface on pgxpool with a Redis
// read-through cache for point lookups.
type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) RepositoryInterface {
	return &postgresRepository{
		pool:  pool,
		cache: cache,
	}
}

const (
	bookCacheKeyPrefix     = "book:"
	bookTopCacheKeyPrefix  = "books:top:"
	bookTopCacheKeyPattern = "books:top:*"
	cacheTTL               = 15 * time.Minute
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

const bookColumns = "id, title, genre, author_id, copies, description, created_at, updated_at"

func scanBook(row pgx.Row, b *model.Book) error {
	return row.Scan(
		&b.ID,
		&b.Title,
		&b.Genre,
		&b.AuthorID,
		&b.Copies,
		&b.Description,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
}

// translateWriteError maps constraint violations onto domain errors.
func translateWriteError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return model.ErrDuplicateTitle
		case pgForeignKeyViolation:
			return model.ErrAuthorNotFound
		}
	}
	return nil
}

func (r *postgresRepository) Create(ctx context.Context, b *model.Book) (*model.Book, error) {
	query := `
        INSERT INTO books (title, genre, author_id, copies, description)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING ` + bookColumns

	var created model.Book
	err := scanBook(r.pool.QueryRow(ctx, query,
		b.Title, b.Genre, b.AuthorID, b.Copies, b.Description,
	), &created)

	if err != nil {
		if domainErr := translateWriteError(err); domainErr != nil {
			return nil, domainErr
		}
		return nil, fmt.Errorf("failed to create book: %w", err)
	}

	r.invalidateTopCache(ctx)

	return &created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Book, error) {
	cacheKey := bookCacheKeyPrefix + id.String()

	var b model.Book
	if found, err := r.cache.Get(ctx, cacheKey, &b); err == nil && found {
		return &b, nil
	}

	query := `SELECT ` + bookColumns + ` FROM books WHERE id = $1`

	err := scanBook(r.pool.QueryRow(ctx, query, id), &b)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrBookNotFound
		}
		return nil, fmt.Errorf("failed to get book by id: %w", err)
	}

	_ = r.cache.Set(ctx, cacheKey, b, cacheTTL)

	return &b, nil
}

func (r *postgresRepository) GetAll(ctx context.Context) ([]model.Book, error) {
	query := `SELECT ` + bookColumns + ` FROM books ORDER BY title ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query books: %w", err)
	}
	defer rows.Close()

	return collectBooks(rows)
}

func (r *postgresRepository) Update(ctx context.Context, b *model.Book) (*model.Book, error) {
	query := `
        UPDATE books
        SET title = $1,
            genre = $2,
            copies = $3,
            description = $4,
            updated_at = NOW()
        WHERE id = $5
        RETURNING ` + bookColumns

	var updated model.Book
	err := scanBook(r.pool.QueryRow(ctx, query,
		b.Title, b.Genre, b.Copies, b.Description, b.ID,
	), &updated)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrBookNotFound
		}
		if domainErr := translateWriteError(err); domainErr != nil {
			return nil, domainErr
		}
		return nil, fmt.Errorf("failed to update book: %w", err)
	}

	r.invalidateBookCache(ctx, b.ID)

	return &updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete book: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return model.ErrBookNotFound
	}

	r.invalidateBookCache(ctx, id)

	return nil
}

func (r *postgresRepository) TopByCopies(ctx context.Context, limit int) ([]model.Book, error) {
	cacheKey := bookTopCacheKeyPrefix + strconv.Itoa(limit)

	var cached []model.Book
	if found, err := r.cache.Get(ctx, cacheKey, &cached); err == nil && found {
		return cached, nil
	}

	query := `SELECT ` + bookColumns + ` FROM books ORDER BY copies DESC, title ASC LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query top books: %w", err)
	}
	defer rows.Close()

	books, err := collectBooks(rows)
	if err != nil {
		return nil, err
	}

	_ = r.cache.Set(ctx, cacheKey, books, cacheTTL)

	return books, nil
}

func collectBooks(rows pgx.Rows) ([]model.Book, error) {
	var books []model.Book
	for rows.Next() {
		var b model.Book
		if err := scanBook(rows, &b); err != nil {
			return nil, fmt.Errorf("failed to scan book: %w", err)
		}
		books = append(books, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating books: %w", err)
	}

	return books, nil
}

func (r *postgresRepository) invalidateBookCache(ctx context.Context, id uuid.UUID) {
	_ = r.cache.Delete(ctx, bookCacheKeyPrefix+id.String())
	r.invalidateTopCache(ctx)
}

func (r *postgresRepository) invalidateTopCache(ctx context.Context) {
	_ = r.cache.DeletePattern(ctx, bookTopCacheKeyPattern)
}
