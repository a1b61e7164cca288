package service

import (
	"context"

	"bookshelf-backend/internal/domains/author/model"
)

// ServiceInterface is the author business logic contract.
type ServiceInterface interface {
	Create(ctx context.Context, req model.AuthorRequest) (*model.AuthorResponse, error)
	GetDetail(ctx context.Context, id int64) (*model.AuthorResponse, error)
	ListPublishers(ctx context.Context, id int64) ([]model.PublisherInfo, error)
	DeleteCascade(ctx context.Context, id int64) error
}
