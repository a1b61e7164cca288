package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"bookshelf-backend/internal/domains/author/model"
	"bookshelf-backend/pkg/database"
)

// postgresRepository implements RepositoryInterface on pgxpool.
type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{pool: pool}
}

// Create inserts a new author and returns it with the generated id.
func (r *postgresRepository) Create(ctx context.Context, a *model.Author) (*model.Author, error) {
	query := `
        INSERT INTO authors (name, pen_name)
        VALUES ($1, $2)
        RETURNING id, name, pen_name
    `

	var created model.Author
	err := r.pool.QueryRow(ctx, query, a.Name, a.PenName).Scan(
		&created.ID,
		&created.Name,
		&created.PenName,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create author: %w", err)
	}

	return &created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*model.Author, error) {
	query := `
        SELECT id, name, pen_name
        FROM authors
        WHERE id = $1
    `

	var a model.Author
	err := r.pool.QueryRow(ctx, query, id).Scan(&a.ID, &a.Name, &a.PenName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to get author by id: %w", err)
	}

	return &a, nil
}

// ListBooks returns the author's books with their publishers joined, in
// storage order. Publisher is nil on rows without a publisher_id.
func (r *postgresRepository) ListBooks(ctx context.Context, authorID int64) ([]model.BookRow, error) {
	query := `
        SELECT b.id, b.title, b.page_count, p.id, p.name, p.founding_year
        FROM books b
        LEFT JOIN publishers p ON p.id = b.publisher_id
        WHERE b.author_id = $1
        ORDER BY b.id
    `

	rows, err := r.pool.Query(ctx, query, authorID)
	if err != nil {
		return nil, fmt.Errorf("failed to query author books: %w", err)
	}
	defer rows.Close()

	var books []model.BookRow
	for rows.Next() {
		var b model.BookRow
		var pubID *int64
		var pubName *string
		var pubYear *int

		if err := rows.Scan(&b.ID, &b.Title, &b.PageCount, &pubID, &pubName, &pubYear); err != nil {
			return nil, fmt.Errorf("failed to scan book: %w", err)
		}

		if pubID != nil {
			b.Publisher = &model.PublisherInfo{
				ID:           *pubID,
				Name:         *pubName,
				FoundingYear: *pubYear,
			}
		}

		books = append(books, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating author books: %w", err)
	}

	return books, nil
}

// ListPublishers computes the derived author->publishers association by
// projecting through books. Never stored, so it cannot go stale.
func (r *postgresRepository) ListPublishers(ctx context.Context, authorID int64) ([]model.PublisherInfo, error) {
	query := `
        SELECT DISTINCT p.id, p.name, p.founding_year
        FROM publishers p
        JOIN books b ON b.publisher_id = p.id
        WHERE b.author_id = $1
        ORDER BY p.id
    `

	rows, err := r.pool.Query(ctx, query, authorID)
	if err != nil {
		return nil, fmt.Errorf("failed to query author publishers: %w", err)
	}
	defer rows.Close()

	var publishers []model.PublisherInfo
	for rows.Next() {
		var p model.PublisherInfo
		if err := rows.Scan(&p.ID, &p.Name, &p.FoundingYear); err != nil {
			return nil, fmt.Errorf("failed to scan publisher: %w", err)
		}
		publishers = append(publishers, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating author publishers: %w", err)
	}

	return publishers, nil
}

// DeleteCascade removes the author's books, then the author, in one
// transaction. Either everything is deleted or nothing is.
func (r *postgresRepository) DeleteCascade(ctx context.Context, id int64) error {
	return database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM books WHERE author_id = $1`, id); err != nil {
			return fmt.Errorf("failed to delete author books: %w", err)
		}

		cmdTag, err := tx.Exec(ctx, `DELETE FROM authors WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("failed to delete author: %w", err)
		}

		if cmdTag.RowsAffected() == 0 {
			return model.ErrAuthorNotFound
		}

		return nil
	})
}

func (r *postgresRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM authors WHERE id = $1)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check author existence: %w", err)
	}

	return exists, nil
}
