package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"bookshelf-backend/internal/domains/publisher/model"
)

// postgresRepository implements RepositoryInterface on pgxpool.
type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{pool: pool}
}

// Create inserts a new publisher and returns it with the generated id.
func (r *postgresRepository) Create(ctx context.Context, p *model.Publisher) (*model.Publisher, error) {
	query := `
        INSERT INTO publishers (name, founding_year)
        VALUES ($1, $2)
        RETURNING id, name, founding_year
    `

	var created model.Publisher
	err := r.pool.QueryRow(ctx, query, p.Name, p.FoundingYear).Scan(
		&created.ID,
		&created.Name,
		&created.FoundingYear,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create publisher: %w", err)
	}

	return &created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*model.Publisher, error) {
	query := `
        SELECT id, name, founding_year
        FROM publishers
        WHERE id = $1
    `

	var p model.Publisher
	err := r.pool.QueryRow(ctx, query, id).Scan(&p.ID, &p.Name, &p.FoundingYear)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrPublisherNotFound
		}
		return nil, fmt.Errorf("failed to get publisher by id: %w", err)
	}

	return &p, nil
}

// ListBooks returns the publisher's books in storage order.
func (r *postgresRepository) ListBooks(ctx context.Context, publisherID int64) ([]model.BookSummary, error) {
	query := `
        SELECT id, title, page_count
        FROM books
        WHERE publisher_id = $1
        ORDER BY id
    `

	rows, err := r.pool.Query(ctx, query, publisherID)
	if err != nil {
		return nil, fmt.Errorf("failed to query publisher books: %w", err)
	}
	defer rows.Close()

	var books []model.BookSummary
	for rows.Next() {
		var b model.BookSummary
		if err := rows.Scan(&b.ID, &b.Title, &b.PageCount); err != nil {
			return nil, fmt.Errorf("failed to scan book: %w", err)
		}
		books = append(books, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating publisher books: %w", err)
	}

	return books, nil
}

// ListAuthors computes the derived publisher->authors association by
// projecting through books. Never stored, so it cannot go stale.
func (r *postgresRepository) ListAuthors(ctx context.Context, publisherID int64) ([]model.AuthorSummary, error) {
	query := `
        SELECT DISTINCT a.id, a.name, a.pen_name
        FROM authors a
        JOIN books b ON b.author_id = a.id
        WHERE b.publisher_id = $1
        ORDER BY a.id
    `

	rows, err := r.pool.Query(ctx, query, publisherID)
	if err != nil {
		return nil, fmt.Errorf("failed to query publisher authors: %w", err)
	}
	defer rows.Close()

	var authors []model.AuthorSummary
	for rows.Next() {
		var a model.AuthorSummary
		if err := rows.Scan(&a.ID, &a.Name, &a.PenName); err != nil {
			return nil, fmt.Errorf("failed to scan author: %w", err)
		}
		authors = append(authors, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating publisher authors: %w", err)
	}

	return authors, nil
}

func (r *postgresRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM publishers WHERE id = $1)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check publisher existence: %w", err)
	}

	return exists, nil
}
