package service

import (
	"context"

	"bookshelf-backend/internal/domains/publisher/model"
)

// ServiceInterface is the publisher business logic contract.
type ServiceInterface interface {
	Create(ctx context.Context, req model.PublisherRequest) (*model.PublisherResponse, error)
	GetDetail(ctx context.Context, id int64) (*model.PublisherResponse, error)
	ListAuthors(ctx context.Context, id int64) ([]model.AuthorSummary, error)
}
