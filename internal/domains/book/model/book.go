package model

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const DefaultPageCount = 1

// Book is the book entity as stored. Author and publisher are foreign keys
// only; both relationship views are loaded by query.
type Book struct {
	ID          int64  `json:"id" db:"id"`
	Title       string `json:"title" db:"title"`
	PageCount   int    `json:"page_count" db:"page_count"`
	AuthorID    *int64 `json:"author_id" db:"author_id"`
	PublisherID *int64 `json:"publisher_id" db:"publisher_id"`
}

// BookRequest is the request payload for creating a book. Unknown keys in
// the body are ignored by the JSON binding.
type BookRequest struct {
	Title       string `json:"title"`
	PageCount   *int   `json:"page_count"`
	AuthorID    *int64 `json:"author_id"`
	PublisherID *int64 `json:"publisher_id"`
}

func (r BookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
		),
		validation.Field(&r.PageCount,
			validation.By(validatePageCount),
		),
		validation.Field(&r.AuthorID,
			validation.By(validateReferenceID("author_id")),
		),
		validation.Field(&r.PublisherID,
			validation.By(validateReferenceID("publisher_id")),
		),
	)
}

// validatePageCount accepts only values > 0. Zero is a violation, not an
// absent field, so the ozzo threshold rules (which skip zero values as
// empty) cannot be used here.
func validatePageCount(value interface{}) error {
	pages, ok := value.(*int)
	if !ok || pages == nil {
		return nil
	}
	if *pages <= 0 {
		return errors.New("page_count must be greater than 0")
	}
	return nil
}

func validateReferenceID(field string) validation.RuleFunc {
	return func(value interface{}) error {
		id, ok := value.(*int64)
		if !ok || id == nil {
			return nil
		}
		if *id <= 0 {
			return errors.New(field + " must be a valid id")
		}
		return nil
	}
}

// NewBook validates the request and constructs a Book, applying the page
// count default when the field is absent.
func NewBook(req BookRequest) (*Book, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	pageCount := DefaultPageCount
	if req.PageCount != nil {
		pageCount = *req.PageCount
	}

	return &Book{
		Title:       req.Title,
		PageCount:   pageCount,
		AuthorID:    req.AuthorID,
		PublisherID: req.PublisherID,
	}, nil
}
