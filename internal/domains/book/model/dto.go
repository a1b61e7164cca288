package model

// PublisherInfo is the publisher nested inside a serialized book. It never
// carries the publisher's book list, which is what bounds the serialization
// depth; and a serialized book never carries its author.
type PublisherInfo struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	FoundingYear int    `json:"founding_year"`
}

// BookWithPublisher is a book as loaded from storage with its publisher
// joined. Publisher is nil when the row has no publisher_id.
type BookWithPublisher struct {
	Book
	Publisher *PublisherInfo
}

// BookResponse is the full serialized book: publisher nested shallow,
// author deliberately omitted.
type BookResponse struct {
	ID        int64         `json:"id"`
	Title     string        `json:"title"`
	PageCount int           `json:"page_count"`
	Publisher PublisherInfo `json:"publisher"`
}

// ToResponse serializes the book. A book without a publisher cannot be
// serialized and fails with ErrMissingPublisher, never a silent null.
func (b *BookWithPublisher) ToResponse() (*BookResponse, error) {
	if b.Publisher == nil {
		return nil, ErrMissingPublisher
	}

	return &BookResponse{
		ID:        b.ID,
		Title:     b.Title,
		PageCount: b.PageCount,
		Publisher: *b.Publisher,
	}, nil
}
