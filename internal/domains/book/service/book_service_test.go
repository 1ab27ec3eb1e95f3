package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookshop-backend/internal/domains/book/model"
)

type fakeBookRepo struct {
	books map[uuid.UUID]*model.Book

	lastTopLimit int
}

func newFakeBookRepo() *fakeBookRepo {
	return &fakeBookRepo{books: make(map[uuid.UUID]*model.Book)}
}

func (f *fakeBookRepo) seed(b model.Book) *model.Book {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	f.books[b.ID] = &b
	return &b
}

func (f *fakeBookRepo) Create(_ context.Context, b *model.Book) (*model.Book, error) {
	for _, existing := range f.books {
		if existing.AuthorID == b.AuthorID && existing.Title == b.Title {
			return nil, model.ErrDuplicateTitle
		}
	}
	created := *b
	created.ID = uuid.New()
	f.books[created.ID] = &created
	copied := created
	return &copied, nil
}

func (f *fakeBookRepo) GetByID(_ context.Context, id uuid.UUID) (*model.Book, error) {
	b, ok := f.books[id]
	if !ok {
		return nil, model.ErrBookNotFound
	}
	copied := *b
	return &copied, nil
}

func (f *fakeBookRepo) GetAll(_ context.Context) ([]model.Book, error) {
	out := make([]model.Book, 0, len(f.books))
	for _, b := range f.books {
		out = append(out, *b)
	}
	return out, nil
}

func (f *fakeBookRepo) Update(_ context.Context, b *model.Book) (*model.Book, error) {
	if _, ok := f.books[b.ID]; !ok {
		return nil, model.ErrBookNotFound
	}
	updated := *b
	f.books[b.ID] = &updated
	copied := updated
	return &copied, nil
}

func (f *fakeBookRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.books[id]; !ok {
		return model.ErrBookNotFound
	}
	delete(f.books, id)
	return nil
}

func (f *fakeBookRepo) TopByCopies(_ context.Context, limit int) ([]model.Book, error) {
	f.lastTopLimit = limit
	return nil, nil
}

func TestBookServiceCreate(t *testing.T) {
	repo := newFakeBookRepo()
	svc := NewBookService(repo)
	authorID := uuid.New()

	created, err := svc.Create(context.Background(), &model.CreateBookRequest{
		Title:    "Neuromancer",
		Genre:    model.GenreScienceFiction,
		AuthorID: authorID,
		Copies:   7,
	})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, "Neuromancer", created.Title)
	assert.Equal(t, 7, created.Copies)

	_, err = svc.Create(context.Background(), &model.CreateBookRequest{
		Title:    "Neuromancer",
		Genre:    model.GenreScienceFiction,
		AuthorID: authorID,
		Copies:   1,
	})
	assert.ErrorIs(t, err, model.ErrDuplicateTitle)
}

func TestBookServiceUpdatePartial(t *testing.T) {
	repo := newFakeBookRepo()
	svc := NewBookService(repo)

	seeded := repo.seed(model.Book{
		Title:    "Original Title",
		Genre:    model.GenreMystery,
		AuthorID: uuid.New(),
		Copies:   4,
	})

	newTitle := "Renamed"
	updated, err := svc.Update(context.Background(), seeded.ID, &model.UpdateBookRequest{
		Title: &newTitle,
	})

	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Title)
	// Untouched fields survive a partial update.
	assert.Equal(t, model.GenreMystery, updated.Genre)
	assert.Equal(t, 4, updated.Copies)
	assert.Equal(t, seeded.AuthorID, updated.AuthorID)
}

func TestBookServiceUpdateNotFound(t *testing.T) {
	svc := NewBookService(newFakeBookRepo())

	newTitle := "Whatever"
	_, err := svc.Update(context.Background(), uuid.New(), &model.UpdateBookRequest{Title: &newTitle})

	assert.ErrorIs(t, err, model.ErrBookNotFound)
}

func TestBookServiceTopByCopiesClampsLimit(t *testing.T) {
	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{"zero falls back to default", 0, defaultTopLimit},
		{"negative falls back to default", -5, defaultTopLimit},
		{"in range passes through", 25, 25},
		{"above max is capped", 5000, maxTopLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeBookRepo()
			svc := NewBookService(repo)

			_, err := svc.TopByCopies(context.Background(), tt.limit)

			require.NoError(t, err)
			assert.Equal(t, tt.want, repo.lastTopLimit)
		})
	}
}

func TestBookServiceDelete(t *testing.T) {
	repo := newFakeBookRepo()
	svc := NewBookService(repo)

	seeded := repo.seed(model.Book{Title: "Short Lived", Genre: model.GenreHorror, AuthorID: uuid.New(), Copies: 1})

	require.NoError(t, svc.Delete(context.Background(), seeded.ID))
	assert.ErrorIs(t, svc.Delete(context.Background(), seeded.ID), model.ErrBookNotFound)
}
