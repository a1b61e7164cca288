package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"bookshelf-backend/internal/domains/publisher/model"
	"bookshelf-backend/internal/domains/publisher/repository"
	"bookshelf-backend/pkg/cache"
)

const (
	publisherCacheKeyPrefix = "publisher:"
	cacheTTL                = 15 * time.Minute
)

// PublisherService implements ServiceInterface.
type PublisherService struct {
	repo  repository.RepositoryInterface
	cache cache.Cache
}

func NewService(repo repository.RepositoryInterface, cache cache.Cache) ServiceInterface {
	return &PublisherService{
		repo:  repo,
		cache: cache,
	}
}

// Create validates the request, persists the publisher and returns it
// serialized. A fresh publisher has no books yet.
func (s *PublisherService) Create(ctx context.Context, req model.PublisherRequest) (*model.PublisherResponse, error) {
	p, err := model.NewPublisher(req)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, p)
	if err != nil {
		return nil, err
	}

	return created.ToResponse(nil), nil
}

// GetDetail returns the serialized publisher with its book list, cached.
func (s *PublisherService) GetDetail(ctx context.Context, id int64) (*model.PublisherResponse, error) {
	cacheKey := fmt.Sprintf("%s%d", publisherCacheKeyPrefix, id)

	var cached model.PublisherResponse
	found, err := s.cache.Get(ctx, cacheKey, &cached)
	if err != nil {
		log.Warn().Err(err).Str("key", cacheKey).Msg("cache read failed")
	}
	if found {
		return &cached, nil
	}

	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	books, err := s.repo.ListBooks(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := p.ToResponse(books)

	if err := s.cache.Set(ctx, cacheKey, resp, cacheTTL); err != nil {
		log.Warn().Err(err).Str("key", cacheKey).Msg("cache write failed")
	}

	return resp, nil
}

// ListAuthors returns the distinct authors of this publisher's books.
func (s *PublisherService) ListAuthors(ctx context.Context, id int64) ([]model.AuthorSummary, error) {
	exists, err := s.repo.ExistsByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, model.ErrPublisherNotFound
	}

	authors, err := s.repo.ListAuthors(ctx, id)
	if err != nil {
		return nil, err
	}

	if authors == nil {
		authors = []model.AuthorSummary{}
	}

	return authors, nil
}
