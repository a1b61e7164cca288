package repository

import (
	"context"

	"bookshelf-backend/internal/domains/publisher/model"
)

// RepositoryInterface is the publisher data access contract.
type RepositoryInterface interface {
	Create(ctx context.Context, p *model.Publisher) (*model.Publisher, error)
	GetByID(ctx context.Context, id int64) (*model.Publisher, error)
	ListBooks(ctx context.Context, publisherID int64) ([]model.BookSummary, error)
	ListAuthors(ctx context.Context, publisherID int64) ([]model.AuthorSummary, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
}
