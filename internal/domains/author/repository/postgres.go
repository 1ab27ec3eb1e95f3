package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"bookshop-backend/internal/domains/author/model"
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
	authorCacheKeyPrefix = "author:"
	authorListCacheKey   = "authors:list"
	cacheTTL             = 15 * time.Minute
)

// Postgres error codes translated at this boundary.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

func (r *postgresRepository) Create(ctx context.Context, a *model.Author) (*model.Author, error) {
	query := `
        INSERT INTO authors (title)
        VALUES ($1)
        RETURNING id, title, created_at, updated_at
    `

	var created model.Author
	err := r.pool.QueryRow(ctx, query, a.Title).Scan(
		&created.ID,
		&created.Title,
		&created.CreatedAt,
		&created.UpdatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, model.ErrDuplicateTitle
		}
		return nil, fmt.Errorf("failed to create author: %w", err)
	}

	r.invalidateListCache(ctx)

	return &created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Author, error) {
	cacheKey := authorCacheKeyPrefix + id.String()

	var a model.Author
	if found, err := r.cache.Get(ctx, cacheKey, &a); err == nil && found {
		return &a, nil
	}

	query := `
        SELECT id, title, created_at, updated_at
        FROM authors
        WHERE id = $1
    `

	err := r.pool.QueryRow(ctx, query, id).Scan(
		&a.ID,
		&a.Title,
		&a.CreatedAt,
		&a.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to get author by id: %w", err)
	}

	_ = r.cache.Set(ctx, cacheKey, a, cacheTTL)

	return &a, nil
}

func (r *postgresRepository) GetAll(ctx context.Context) ([]model.Author, error) {
	query := `
        SELECT id, title, created_at, updated_at
        FROM authors
        ORDER BY title ASC
    `

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query authors: %w", err)
	}
	defer rows.Close()

	var authors []model.Author
	for rows.Next() {
		var a model.Author
		if err := rows.Scan(&a.ID, &a.Title, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan author: %w", err)
		}
		authors = append(authors, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating authors: %w", err)
	}

	return authors, nil
}

func (r *postgresRepository) Update(ctx context.Context, a *model.Author) (*model.Author, error) {
	query := `
        UPDATE authors
        SET title = $1,
            updated_at = NOW()
        WHERE id = $2
        RETURNING id, title, created_at, updated_at
    `

	var updated model.Author
	err := r.pool.QueryRow(ctx, query, a.Title, a.ID).Scan(
		&updated.ID,
		&updated.Title,
		&updated.CreatedAt,
		&updated.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrAuthorNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, model.ErrDuplicateTitle
		}
		return nil, fmt.Errorf("failed to update author: %w", err)
	}

	r.invalidateAuthorCache(ctx, a.ID)
	r.invalidateListCache(ctx)

	return &updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM authors WHERE id = $1`

	cmdTag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return model.ErrAuthorHasBooks
		}
		return fmt.Errorf("failed to delete author: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return model.ErrAuthorNotFound
	}

	r.invalidateAuthorCache(ctx, id)
	r.invalidateListCache(ctx)

	return nil
}

func (r *postgresRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM authors WHERE id = $1)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check author existence: %w", err)
	}

	return exists, nil
}

func (r *postgresRepository) GetStats(ctx context.Context) ([]model.AuthorStat, error) {
	query := `
        SELECT a.id, a.title, COUNT(b.id)
        FROM authors a
        LEFT JOIN books b ON b.author_id = a.id
        GROUP BY a.id, a.title
        ORDER BY a.title ASC
    `

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query author stats: %w", err)
	}
	defer rows.Close()

	var stats []model.AuthorStat
	for rows.Next() {
		var s model.AuthorStat
		if err := rows.Scan(&s.AuthorID, &s.Title, &s.Books); err != nil {
			return nil, fmt.Errorf("failed to scan author stat: %w", err)
		}
		stats = append(stats, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating author stats: %w", err)
	}

	return stats, nil
}

func (r *postgresRepository) GetStatByID(ctx context.Context, id uuid.UUID) (*model.AuthorStat, error) {
	query := `
        SELECT a.id, a.title, COUNT(b.id)
        FROM authors a
        LEFT JOIN books b ON b.author_id = a.id
        WHERE a.id = $1
        GROUP BY a.id, a.title
    `

	var s model.AuthorStat
	err := r.pool.QueryRow(ctx, query, id).Scan(&s.AuthorID, &s.Title, &s.Books)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to get author stat: %w", err)
	}

	return &s, nil
}

// Cache helpers

func (r *postgresRepository) invalidateAuthorCache(ctx context.Context, id uuid.UUID) {
	_ = r.cache.Delete(ctx, authorCacheKeyPrefix+id.String())
}

func (r *postgresRepository) invalidateListCache(ctx context.Context) {
	_ = r.cache.Delete(ctx, authorListCacheKey)
}
