package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"bookshelf-backend/internal/domains/book/model"
	"bookshelf-backend/internal/domains/book/repository"
	"bookshelf-backend/pkg/cache"
)

const (
	booksListCacheKey       = "books:list"
	authorCacheKeyPrefix    = "author:"
	publisherCacheKeyPrefix = "publisher:"
	cacheTTL                = 15 * time.Minute
)

// BookService implements ServiceInterface.
type BookService struct {
	repo  repository.RepositoryInterface
	cache cache.Cache
}

func NewService(repo repository.RepositoryInterface, cache cache.Cache) ServiceInterface {
	return &BookService{
		repo:  repo,
		cache: cache,
	}
}

// List returns every book serialized, cached under a single list key.
func (s *BookService) List(ctx context.Context) ([]model.BookResponse, error) {
	var cached []model.BookResponse
	found, err := s.cache.Get(ctx, booksListCacheKey, &cached)
	if err != nil {
		log.Warn().Err(err).Str("key", booksListCacheKey).Msg("cache read failed")
	}
	if found {
		return cached, nil
	}

	books, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]model.BookResponse, 0, len(books))
	for i := range books {
		resp, err := books[i].ToResponse()
		if err != nil {
			return nil, fmt.Errorf("serializing book %d: %w", books[i].ID, err)
		}
		responses = append(responses, *resp)
	}

	if err := s.cache.Set(ctx, booksListCacheKey, responses, cacheTTL); err != nil {
		log.Warn().Err(err).Str("key", booksListCacheKey).Msg("cache write failed")
	}

	return responses, nil
}

// Create validates the request, persists the book transactionally and
// returns it serialized. Any failure, including a missing or dangling
// publisher reference, leaves no row behind.
func (s *BookService) Create(ctx context.Context, req model.BookRequest) (*model.BookResponse, error) {
	b, err := model.NewBook(req)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, b)
	if err != nil {
		return nil, err
	}

	resp, err := created.ToResponse()
	if err != nil {
		return nil, err
	}

	s.invalidateAfterCreate(ctx, created)

	return resp, nil
}

// invalidateAfterCreate drops every cache entry the new book affects: the
// global list, its author's detail and its publisher's detail.
func (s *BookService) invalidateAfterCreate(ctx context.Context, b *model.BookWithPublisher) {
	keys := []string{booksListCacheKey}
	if b.AuthorID != nil {
		keys = append(keys, fmt.Sprintf("%s%d", authorCacheKeyPrefix, *b.AuthorID))
	}
	if b.PublisherID != nil {
		keys = append(keys, fmt.Sprintf("%s%d", publisherCacheKeyPrefix, *b.PublisherID))
	}

	if err := s.cache.Delete(ctx, keys...); err != nil {
		log.Warn().Err(err).Msg("cache invalidation failed")
	}
}
