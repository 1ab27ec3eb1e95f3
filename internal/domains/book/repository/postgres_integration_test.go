//go:build integration

package repository

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"bookshop-backend/internal/domains/book/model"
)

// Runs against a migrated database:
//
//	TEST_DATABASE_URL=postgres://... go test -tags integration ./...
func TestTopByCopiesOrderingAgainstDatabase(t *testing.T) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	defer pool.Close()

	var authorID uuid.UUID
	require.NoError(t, pool.QueryRow(ctx,
		`INSERT INTO authors (title) VALUES ($1) RETURNING id`,
		fmt.Sprintf("ordering author %d", time.Now().UnixNano()),
	).Scan(&authorID))
	t.Cleanup(func() {
		_, _ = pool.Exec(ctx, `DELETE FROM books WHERE author_id = $1`, authorID)
		_, _ = pool.Exec(ctx, `DELETE FROM authors WHERE id = $1`, authorID)
	})

	seed := []struct {
		title  string
		copies int
	}{
		{"mid", 20},
		{"top", 50},
		{"low a", 5},
		{"low b", 5},
	}
	for _, s := range seed {
		_, err := pool.Exec(ctx,
			`INSERT INTO books (title, genre, author_id, copies) VALUES ($1, $2, $3, $4)`,
			s.title, model.GenreFiction, authorID, s.copies)
		require.NoError(t, err)
	}

	repo := &postgresRepository{pool: pool, cache: &recordingCache{}}

	books, err := repo.TopByCopies(ctx, 1000)
	require.NoError(t, err)

	// Copies descending, title ascending as the tiebreak.
	var got []string
	for _, b := range books {
		if b.AuthorID == authorID {
			got = append(got, b.Title)
		}
	}
	require.Equal(t, []string{"top", "mid", "low a", "low b"}, got)
}
