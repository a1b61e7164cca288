package repository

import (
	"context"

	"bookshelf-backend/internal/domains/author/model"
)

// RepositoryInterface is the author data access contract.
type RepositoryInterface interface {
	Create(ctx context.Context, a *model.Author) (*model.Author, error)
	GetByID(ctx context.Context, id int64) (*model.Author, error)
	ListBooks(ctx context.Context, authorID int64) ([]model.BookRow, error)
	ListPublishers(ctx context.Context, authorID int64) ([]model.PublisherInfo, error)
	DeleteCascade(ctx context.Context, id int64) error
	ExistsByID(ctx context.Context, id int64) (bool, error)
}
