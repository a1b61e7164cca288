package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookshelf-backend/internal/domains/publisher/model"
	"bookshelf-backend/internal/domains/publisher/service"
	"bookshelf-backend/pkg/cache"
)

type stubPublisherRepo struct {
	publishers map[int64]*model.Publisher
	books      map[int64][]model.BookSummary
	authors    map[int64][]model.AuthorSummary
}

func newStubPublisherRepo() *stubPublisherRepo {
	return &stubPublisherRepo{
		publishers: map[int64]*model.Publisher{},
		books:      map[int64][]model.BookSummary{},
		authors:    map[int64][]model.AuthorSummary{},
	}
}

func (s *stubPublisherRepo) Create(ctx context.Context, p *model.Publisher) (*model.Publisher, error) {
	created := *p
	created.ID = int64(len(s.publishers) + 1)
	s.publishers[created.ID] = &created
	return &created, nil
}

func (s *stubPublisherRepo) GetByID(ctx context.Context, id int64) (*model.Publisher, error) {
	p, ok := s.publishers[id]
	if !ok {
		return nil, model.ErrPublisherNotFound
	}
	return p, nil
}

func (s *stubPublisherRepo) ListBooks(ctx context.Context, publisherID int64) ([]model.BookSummary, error) {
	return s.books[publisherID], nil
}

func (s *stubPublisherRepo) ListAuthors(ctx context.Context, publisherID int64) ([]model.AuthorSummary, error) {
	return s.authors[publisherID], nil
}

func (s *stubPublisherRepo) ExistsByID(ctx context.Context, id int64) (bool, error) {
	_, ok := s.publishers[id]
	return ok, nil
}

func setupPublisherRouter(repo *stubPublisherRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)

	h := NewHandler(service.NewService(repo, cache.NewMemoryCache()))

	router := gin.New()
	router.GET("/publishers/:id", h.GetByID)
	router.GET("/publishers/:id/authors", h.ListAuthors)
	router.POST("/publishers", h.Create)
	return router
}

func TestGetPublisherByID(t *testing.T) {
	repo := newStubPublisherRepo()
	repo.publishers[2] = &model.Publisher{ID: 2, Name: "Chilton", FoundingYear: 1904}
	repo.books[2] = []model.BookSummary{{ID: 1, Title: "Dune", PageCount: 412}}
	router := setupPublisherRouter(repo)

	t.Run("found, books carry no publisher", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/publishers/2", nil))

		require.Equal(t, http.StatusOK, w.Code)

		var m map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &m))
		assert.Equal(t, "Chilton", m["name"])

		books := m["books"].([]interface{})
		require.Len(t, books, 1)
		book := books[0].(map[string]interface{})
		assert.NotContains(t, book, "publisher")
	})

	t.Run("missing publisher", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/publishers/999", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":"Publisher not found"}`, w.Body.String())
	})
}

func TestCreatePublisher(t *testing.T) {
	router := setupPublisherRouter(newStubPublisherRepo())

	t.Run("created with default year", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/publishers", strings.NewReader(`{"name":"Ace Books"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"founding_year":2000`)
	})

	t.Run("out of range year", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/publishers", strings.NewReader(`{"name":"Too Old","founding_year":1492}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotAcceptable, w.Code)
		assert.JSONEq(t, `{"error":"Invalid data"}`, w.Body.String())
	})
}

func TestListPublisherAuthors(t *testing.T) {
	repo := newStubPublisherRepo()
	repo.publishers[2] = &model.Publisher{ID: 2, Name: "Chilton", FoundingYear: 1904}
	repo.authors[2] = []model.AuthorSummary{{ID: 7, Name: "Frank Herbert"}}
	router := setupPublisherRouter(repo)

	t.Run("found", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/publishers/2/authors", nil))

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"name":"Frank Herbert"`)
	})

	t.Run("missing publisher", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/publishers/999/authors", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":"Publisher not found"}`, w.Body.String())
	})
}
