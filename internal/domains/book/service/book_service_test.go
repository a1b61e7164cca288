package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookshelf-backend/internal/domains/book/model"
	"bookshelf-backend/pkg/cache"
)

func intPtr(v int) *int       { return &v }
func int64Ptr(v int64) *int64 { return &v }

type fakeBookRepo struct {
	books     []model.BookWithPublisher
	listCalls int
	created   []*model.Book
	createErr error
	nextID    int64
}

func (f *fakeBookRepo) List(ctx context.Context) ([]model.BookWithPublisher, error) {
	f.listCalls++
	return f.books, nil
}

func (f *fakeBookRepo) Create(ctx context.Context, b *model.Book) (*model.BookWithPublisher, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}

	f.created = append(f.created, b)
	f.nextID++

	stored := model.BookWithPublisher{Book: *b}
	stored.ID = f.nextID
	if b.PublisherID != nil {
		stored.Publisher = &model.PublisherInfo{ID: *b.PublisherID, Name: "Chilton", FoundingYear: 1904}
	}
	f.books = append(f.books, stored)

	return &stored, nil
}

func newBookService(repo *fakeBookRepo) (ServiceInterface, *cache.MemoryCache) {
	c := cache.NewMemoryCache()
	return NewService(repo, c), c
}

func TestBookServiceList(t *testing.T) {
	repo := &fakeBookRepo{
		books: []model.BookWithPublisher{
			{
				Book:      model.Book{ID: 1, Title: "Dune", PageCount: 412, PublisherID: int64Ptr(2)},
				Publisher: &model.PublisherInfo{ID: 2, Name: "Chilton", FoundingYear: 1904},
			},
		},
	}
	svc, _ := newBookService(repo)

	books, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, "Dune", books[0].Title)
	assert.Equal(t, int64(2), books[0].Publisher.ID)

	// Second call is served from cache.
	_, err = svc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, repo.listCalls)
}

func TestBookServiceListMissingPublisher(t *testing.T) {
	repo := &fakeBookRepo{
		books: []model.BookWithPublisher{
			{Book: model.Book{ID: 1, Title: "Orphan", PageCount: 10}},
		},
	}
	svc, _ := newBookService(repo)

	_, err := svc.List(context.Background())
	require.ErrorIs(t, err, model.ErrMissingPublisher)
}

func TestBookServiceCreate(t *testing.T) {
	t.Run("invalid page count never reaches the repository", func(t *testing.T) {
		repo := &fakeBookRepo{}
		svc, _ := newBookService(repo)

		_, err := svc.Create(context.Background(), model.BookRequest{
			Title:     "Dune",
			PageCount: intPtr(0),
		})
		require.Error(t, err)
		assert.Empty(t, repo.created)
	})

	t.Run("success returns serialized book and invalidates caches", func(t *testing.T) {
		repo := &fakeBookRepo{}
		svc, memCache := newBookService(repo)

		ctx := context.Background()
		require.NoError(t, memCache.Set(ctx, "books:list", []model.BookResponse{}, time.Minute))
		require.NoError(t, memCache.Set(ctx, "author:7", "stale", time.Minute))
		require.NoError(t, memCache.Set(ctx, "publisher:2", "stale", time.Minute))

		resp, err := svc.Create(ctx, model.BookRequest{
			Title:       "Dune",
			PageCount:   intPtr(412),
			AuthorID:    int64Ptr(7),
			PublisherID: int64Ptr(2),
		})
		require.NoError(t, err)
		assert.Equal(t, "Dune", resp.Title)
		assert.Equal(t, 412, resp.PageCount)
		assert.Equal(t, int64(2), resp.Publisher.ID)

		var dest interface{}
		found, _ := memCache.Get(ctx, "books:list", &dest)
		assert.False(t, found)
		found, _ = memCache.Get(ctx, "author:7", &dest)
		assert.False(t, found)
		found, _ = memCache.Get(ctx, "publisher:2", &dest)
		assert.False(t, found)
	})

	t.Run("duplicate title propagates", func(t *testing.T) {
		repo := &fakeBookRepo{createErr: model.ErrDuplicateTitle}
		svc, _ := newBookService(repo)

		_, err := svc.Create(context.Background(), model.BookRequest{
			Title:       "Dune",
			PublisherID: int64Ptr(2),
		})
		require.ErrorIs(t, err, model.ErrDuplicateTitle)
	})
}
