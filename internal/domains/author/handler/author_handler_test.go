package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookshelf-backend/internal/domains/author/model"
	"bookshelf-backend/internal/domains/author/service"
	"bookshelf-backend/pkg/cache"
)

type stubAuthorRepo struct {
	authors map[int64]*model.Author
	books   map[int64][]model.BookRow
}

func newStubAuthorRepo() *stubAuthorRepo {
	return &stubAuthorRepo{
		authors: map[int64]*model.Author{},
		books:   map[int64][]model.BookRow{},
	}
}

func (s *stubAuthorRepo) Create(ctx context.Context, a *model.Author) (*model.Author, error) {
	created := *a
	created.ID = int64(len(s.authors) + 1)
	s.authors[created.ID] = &created
	return &created, nil
}

func (s *stubAuthorRepo) GetByID(ctx context.Context, id int64) (*model.Author, error) {
	a, ok := s.authors[id]
	if !ok {
		return nil, model.ErrAuthorNotFound
	}
	return a, nil
}

func (s *stubAuthorRepo) ListBooks(ctx context.Context, authorID int64) ([]model.BookRow, error) {
	return s.books[authorID], nil
}

func (s *stubAuthorRepo) ListPublishers(ctx context.Context, authorID int64) ([]model.PublisherInfo, error) {
	return nil, nil
}

func (s *stubAuthorRepo) DeleteCascade(ctx context.Context, id int64) error {
	if _, ok := s.authors[id]; !ok {
		return model.ErrAuthorNotFound
	}
	delete(s.authors, id)
	delete(s.books, id)
	return nil
}

func (s *stubAuthorRepo) ExistsByID(ctx context.Context, id int64) (bool, error) {
	_, ok := s.authors[id]
	return ok, nil
}

func setupAuthorRouter(repo *stubAuthorRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)

	h := NewHandler(service.NewService(repo, cache.NewMemoryCache()))

	router := gin.New()
	router.GET("/authors/:id", h.GetByID)
	router.GET("/authors/:id/publishers", h.ListPublishers)
	router.POST("/authors", h.Create)
	router.DELETE("/author/:id", h.Delete)
	return router
}

func TestGetAuthorByID(t *testing.T) {
	repo := newStubAuthorRepo()
	repo.authors[7] = &model.Author{ID: 7, Name: "Frank Herbert"}
	repo.books[7] = []model.BookRow{
		{ID: 1, Title: "Dune", PageCount: 412, Publisher: &model.PublisherInfo{ID: 2, Name: "Chilton", FoundingYear: 1904}},
	}
	router := setupAuthorRouter(repo)

	t.Run("found", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/authors/7", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"name":"Frank Herbert"`)
		assert.Contains(t, w.Body.String(), `"title":"Dune"`)
	})

	t.Run("missing author", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/authors/999", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":"Author not found"}`, w.Body.String())
	})

	t.Run("non-numeric id", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/authors/abc", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":"Author not found"}`, w.Body.String())
	})

	t.Run("reads are idempotent", func(t *testing.T) {
		first := httptest.NewRecorder()
		router.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/authors/7", nil))
		second := httptest.NewRecorder()
		router.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/authors/7", nil))

		assert.Equal(t, first.Body.String(), second.Body.String())
	})
}

func TestDeleteAuthor(t *testing.T) {
	t.Run("cascade delete returns 204 with empty body", func(t *testing.T) {
		repo := newStubAuthorRepo()
		repo.authors[5] = &model.Author{ID: 5, Name: "Someone"}
		repo.books[5] = []model.BookRow{
			{ID: 1, Title: "B1", PageCount: 10},
			{ID: 2, Title: "B2", PageCount: 20},
		}
		router := setupAuthorRouter(repo)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/author/5", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.String())

		// Author and its books are gone.
		w = httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/authors/5", nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("missing author", func(t *testing.T) {
		router := setupAuthorRouter(newStubAuthorRepo())

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/author/999", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":"Author not found"}`, w.Body.String())
	})
}

func TestCreateAuthor(t *testing.T) {
	router := setupAuthorRouter(newStubAuthorRepo())

	t.Run("created", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/authors", strings.NewReader(`{"name":"Ann Leckie"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"name":"Ann Leckie"`)
	})

	t.Run("missing name", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/authors", strings.NewReader(`{"pen_name":"Anon"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotAcceptable, w.Code)
		assert.JSONEq(t, `{"error":"Invalid data"}`, w.Body.String())
	})
}
