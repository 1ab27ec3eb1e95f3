package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"bookshop-backend/internal/domains/book/model"
	"bookshop-backend/internal/domains/book/repository"
)

const (
	defaultTopLimit = 10
	maxTopLimit     = 100
)

type bookService struct {
	repo repository.RepositoryInterface
}

func NewBookService(repo repository.RepositoryInterface) ServiceInterface {
	return &bookService{repo: repo}
}

func (s *bookService) Create(ctx context.Context, req *model.CreateBookRequest) (*model.Book, error) {
	created, err := s.repo.Create(ctx, req.ToEntity())
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("book_id", created.ID.String()).
		Str("title", created.Title).
		Str("author_id", created.AuthorID.String()).
		Msg("book created")

	return created, nil
}

func (s *bookService) GetByID(ctx context.Context, id uuid.UUID) (*model.Book, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *bookService) GetAll(ctx context.Context) ([]model.Book, error) {
	return s.repo.GetAll(ctx)
}

func (s *bookService) Update(ctx context.Context, id uuid.UUID, req *model.UpdateBookRequest) (*model.Book, error) {
	book, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	req.ApplyToEntity(book)

	return s.repo.Update(ctx, book)
}

func (s *bookService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	log.Info().Str("book_id", id.String()).Msg("book deleted")
	return nil
}

func (s *bookService) TopByCopies(ctx context.Context, limit int) ([]model.Book, error) {
	if limit <= 0 {
		limit = defaultTopLimit
	}
	if limit > maxTopLimit {
		limit = maxTopLimit
	}

	return s.repo.TopByCopies(ctx, limit)
}
