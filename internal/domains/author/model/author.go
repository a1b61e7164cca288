package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Author is the author entity as stored. The book relationship lives in
// books.author_id only; the book list is always loaded by query.
type Author struct {
	ID      int64   `json:"id" db:"id"`
	Name    string  `json:"name" db:"name"`
	PenName *string `json:"pen_name" db:"pen_name"`
}

// AuthorRequest is the request payload for creating an author.
type AuthorRequest struct {
	Name    string  `json:"name"`
	PenName *string `json:"pen_name"`
}

func (r AuthorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
		),
	)
}

// NewAuthor validates the request and constructs an Author.
func NewAuthor(req AuthorRequest) (*Author, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	return &Author{
		Name:    req.Name,
		PenName: req.PenName,
	}, nil
}
