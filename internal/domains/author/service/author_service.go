package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"bookshelf-backend/internal/domains/author/model"
	"bookshelf-backend/internal/domains/author/repository"
	"bookshelf-backend/pkg/cache"
)

const (
	authorCacheKeyPrefix    = "author:"
	booksListCacheKey       = "books:list"
	publisherCacheKeyPrefix = "publisher:"
	cacheTTL                = 15 * time.Minute
)

// AuthorService implements ServiceInterface.
type AuthorService struct {
	repo  repository.RepositoryInterface
	cache cache.Cache
}

func NewService(repo repository.RepositoryInterface, cache cache.Cache) ServiceInterface {
	return &AuthorService{
		repo:  repo,
		cache: cache,
	}
}

// Create validates the request and persists the author.
func (s *AuthorService) Create(ctx context.Context, req model.AuthorRequest) (*model.AuthorResponse, error) {
	a, err := model.NewAuthor(req)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, a)
	if err != nil {
		return nil, err
	}

	return created.ToResponse(), nil
}

// GetDetail returns the serialized author with its book list, cached. A book
// without a publisher fails the whole serialization (ErrMissingPublisher).
func (s *AuthorService) GetDetail(ctx context.Context, id int64) (*model.AuthorResponse, error) {
	cacheKey := fmt.Sprintf("%s%d", authorCacheKeyPrefix, id)

	var cached model.AuthorResponse
	found, err := s.cache.Get(ctx, cacheKey, &cached)
	if err != nil {
		log.Warn().Err(err).Str("key", cacheKey).Msg("cache read failed")
	}
	if found {
		return &cached, nil
	}

	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	books, err := s.repo.ListBooks(ctx, id)
	if err != nil {
		return nil, err
	}

	resp, err := model.BuildAuthorResponse(a, books)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, cacheKey, resp, cacheTTL); err != nil {
		log.Warn().Err(err).Str("key", cacheKey).Msg("cache write failed")
	}

	return resp, nil
}

// ListPublishers returns the distinct publishers of this author's books.
func (s *AuthorService) ListPublishers(ctx context.Context, id int64) ([]model.PublisherInfo, error) {
	exists, err := s.repo.ExistsByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, model.ErrAuthorNotFound
	}

	publishers, err := s.repo.ListPublishers(ctx, id)
	if err != nil {
		return nil, err
	}

	if publishers == nil {
		publishers = []model.PublisherInfo{}
	}

	return publishers, nil
}

// DeleteCascade deletes the author and its books atomically, then drops
// every cache entry the delete may have invalidated: the author itself, the
// global book list, and any publisher whose book list shrank.
func (s *AuthorService) DeleteCascade(ctx context.Context, id int64) error {
	if err := s.repo.DeleteCascade(ctx, id); err != nil {
		return err
	}

	keys := []string{
		fmt.Sprintf("%s%d", authorCacheKeyPrefix, id),
		booksListCacheKey,
	}
	if err := s.cache.Delete(ctx, keys...); err != nil {
		log.Warn().Err(err).Msg("cache invalidation failed")
	}
	if err := s.cache.DeletePattern(ctx, publisherCacheKeyPrefix+"*"); err != nil {
		log.Warn().Err(err).Msg("publisher cache invalidation failed")
	}

	return nil
}
