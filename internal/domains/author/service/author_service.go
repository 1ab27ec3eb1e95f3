package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"bookshop-backend/internal/domains/author/model"
	"bookshop-backend/internal/domains/author/repository"
)

type authorService struct {
	repo repository.RepositoryInterface
}

func NewAuthorService(repo repository.RepositoryInterface) ServiceInterface {
	return &authorService{repo: repo}
}

func (s *authorService) Create(ctx context.Context, req *model.CreateAuthorRequest) (*model.Author, error) {
	created, err := s.repo.Create(ctx, req.ToEntity())
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("author_id", created.ID.String()).
		Str("title", created.Title).
		Msg("author created")

	return created, nil
}

func (s *authorService) GetByID(ctx context.Context, id uuid.UUID) (*model.Author, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *authorService) GetAll(ctx context.Context) ([]model.Author, error) {
	return s.repo.GetAll(ctx)
}

func (s *authorService) Update(ctx context.Context, id uuid.UUID, req *model.UpdateAuthorRequest) (*model.Author, error) {
	author, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	req.ApplyToEntity(author)

	return s.repo.Update(ctx, author)
}

func (s *authorService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	log.Info().Str("author_id", id.String()).Msg("author deleted")
	return nil
}

func (s *authorService) GetStats(ctx context.Context) ([]model.AuthorStat, error) {
	return s.repo.GetStats(ctx)
}

func (s *authorService) GetStatByID(ctx context.Context, id uuid.UUID) (*model.AuthorStat, error) {
	return s.repo.GetStatByID(ctx, id)
}
