package model

// BookSummary is a book nested inside a publisher's book list. It carries no
// publisher back-reference, which is what bounds the serialization depth.
type BookSummary struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	PageCount int    `json:"page_count"`
}

// AuthorSummary is one row of the derived publisher->authors projection.
type AuthorSummary struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	PenName *string `json:"pen_name"`
}

// PublisherResponse is the full serialized publisher.
type PublisherResponse struct {
	ID           int64         `json:"id"`
	Name         string        `json:"name"`
	FoundingYear int           `json:"founding_year"`
	Books        []BookSummary `json:"books"`
}

// ToResponse builds the serialized publisher with its book list.
func (p *Publisher) ToResponse(books []BookSummary) *PublisherResponse {
	if books == nil {
		books = []BookSummary{}
	}

	return &PublisherResponse{
		ID:           p.ID,
		Name:         p.Name,
		FoundingYear: p.FoundingYear,
		Books:        books,
	}
}
