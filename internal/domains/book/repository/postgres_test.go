package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookshop-backend/internal/domains/book/model"
)

// seededCache serves a fixed book list on every Get.
type seededCache struct {
	recordingCache
	books []model.Book
}

func (c *seededCache) Get(_ context.Context, _ string, dest interface{}) (bool, error) {
	if out, ok := dest.(*[]model.Book); ok {
		*out = c.books
		return true, nil
	}
	return false, nil
}

func TestTopByCopiesServedFromCache(t *testing.T) {
	cached := []model.Book{
		{ID: uuid.New(), Title: "Hot Seller", Genre: model.GenreFantasy, AuthorID: uuid.New(), Copies: 99},
	}
	// No pool: a cache hit must not touch the database.
	repo := &postgresRepository{cache: &seededCache{books: cached}}

	books, err := repo.TopByCopies(context.Background(), 10)

	require.NoError(t, err)
	assert.Equal(t, cached, books)
}
