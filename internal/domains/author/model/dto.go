package model

// PublisherInfo is a publisher nested inside a book. It never carries the
// publisher's book list, which is what bounds the serialization depth.
type PublisherInfo struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	FoundingYear int    `json:"founding_year"`
}

// BookRow is a book as loaded for an author, publisher joined. Publisher is
// nil when the row has no publisher_id.
type BookRow struct {
	ID        int64
	Title     string
	PageCount int
	Publisher *PublisherInfo
}

// AuthorBook is a book nested inside an author's book list. No author
// back-reference in this direction.
type AuthorBook struct {
	ID        int64         `json:"id"`
	Title     string        `json:"title"`
	PageCount int           `json:"page_count"`
	Publisher PublisherInfo `json:"publisher"`
}

// AuthorResponse is the full serialized author.
type AuthorResponse struct {
	ID      int64        `json:"id"`
	Name    string       `json:"name"`
	PenName *string      `json:"pen_name"`
	Books   []AuthorBook `json:"books"`
}

// BuildAuthorResponse serializes an author with its loaded books. A book
// without a publisher is a hard failure (ErrMissingPublisher), never a
// silent null.
func BuildAuthorResponse(a *Author, books []BookRow) (*AuthorResponse, error) {
	nested := make([]AuthorBook, 0, len(books))
	for _, b := range books {
		if b.Publisher == nil {
			return nil, ErrMissingPublisher
		}
		nested = append(nested, AuthorBook{
			ID:        b.ID,
			Title:     b.Title,
			PageCount: b.PageCount,
			Publisher: *b.Publisher,
		})
	}

	return &AuthorResponse{
		ID:      a.ID,
		Name:    a.Name,
		PenName: a.PenName,
		Books:   nested,
	}, nil
}

// ToResponse serializes a bare author, used right after creation when no
// books can exist yet.
func (a *Author) ToResponse() *AuthorResponse {
	return &AuthorResponse{
		ID:      a.ID,
		Name:    a.Name,
		PenName: a.PenName,
		Books:   []AuthorBook{},
	}
}
