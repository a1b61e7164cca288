package repository

import (
	"context"

	"bookshelf-backend/internal/domains/book/model"
)

// RepositoryInterface is the book data access contract.
type RepositoryInterface interface {
	List(ctx context.Context) ([]model.BookWithPublisher, error)
	Create(ctx context.Context, b *model.Book) (*model.BookWithPublisher, error)
}
