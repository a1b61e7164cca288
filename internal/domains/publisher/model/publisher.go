package model

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	DefaultFoundingYear = 2000
	FoundingYearMin     = 1600
	FoundingYearMax     = 2023
)

// Publisher is the publisher entity as stored. Instances are only built
// through NewPublisher, so an invalid founding year never exists in memory.
type Publisher struct {
	ID           int64  `json:"id" db:"id"`
	Name         string `json:"name" db:"name"`
	FoundingYear int    `json:"founding_year" db:"founding_year"`
}

// PublisherRequest is the request payload for creating a publisher.
type PublisherRequest struct {
	Name         string `json:"name"`
	FoundingYear *int   `json:"founding_year"`
}

func (r PublisherRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
		),
		validation.Field(&r.FoundingYear,
			validation.By(validateFoundingYear),
		),
	)
}

// validateFoundingYear accepts only 1600 <= year <= 2023. A zero year is a
// violation, not an absent field, so the ozzo threshold rules (which skip
// zero values as empty) cannot be used here.
func validateFoundingYear(value interface{}) error {
	year, ok := value.(*int)
	if !ok || year == nil {
		return nil
	}
	if *year < FoundingYearMin || *year > FoundingYearMax {
		return errors.New("founding_year must be between 1600 and 2023")
	}
	return nil
}

// NewPublisher validates the request and constructs a Publisher, applying
// the founding year default when the field is absent.
func NewPublisher(req PublisherRequest) (*Publisher, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	foundingYear := DefaultFoundingYear
	if req.FoundingYear != nil {
		foundingYear = *req.FoundingYear
	}

	return &Publisher{
		Name:         req.Name,
		FoundingYear: foundingYear,
	}, nil
}
