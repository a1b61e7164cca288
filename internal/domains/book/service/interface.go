package service

import (
	"context"

	"bookshelf-backend/internal/domains/book/model"
)

// ServiceInterface is the book business logic contract.
type ServiceInterface interface {
	List(ctx context.Context) ([]model.BookResponse, error)
	Create(ctx context.Context, req model.BookRequest) (*model.BookResponse, error)
}
