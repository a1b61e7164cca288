package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"bookshelf-backend/internal/domains/book/model"
	"bookshelf-backend/pkg/database"
)

// postgresRepository implements RepositoryInterface on pgxpool.
type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{pool: pool}
}

// List returns every book with its publisher joined, in storage order.
func (r *postgresRepository) List(ctx context.Context) ([]model.BookWithPublisher, error) {
	query := `
        SELECT b.id, b.title, b.page_count, b.author_id, b.publisher_id,
               p.id, p.name, p.founding_year
        FROM books b
        LEFT JOIN publishers p ON p.id = b.publisher_id
        ORDER BY b.id
    `

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query books: %w", err)
	}
	defer rows.Close()

	var books []model.BookWithPublisher
	for rows.Next() {
		b, err := scanBookWithPublisher(rows)
		if err != nil {
			return nil, err
		}
		books = append(books, *b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating books: %w", err)
	}

	return books, nil
}

// Create inserts the book and loads its publisher inside one transaction.
// A book whose publisher reference is absent or dangling aborts the
// transaction, so a row that cannot be serialized is never persisted.
func (r *postgresRepository) Create(ctx context.Context, b *model.Book) (*model.BookWithPublisher, error) {
	return database.WithTransactionResult(ctx, r.pool, func(tx pgx.Tx) (*model.BookWithPublisher, error) {
		query := `
            INSERT INTO books (title, page_count, author_id, publisher_id)
            VALUES ($1, $2, $3, $4)
            RETURNING id, title, page_count, author_id, publisher_id
        `

		var created model.BookWithPublisher
		err := tx.QueryRow(ctx, query, b.Title, b.PageCount, b.AuthorID, b.PublisherID).Scan(
			&created.ID,
			&created.Title,
			&created.PageCount,
			&created.AuthorID,
			&created.PublisherID,
		)
		if err != nil {
			return nil, mapCreateError(err)
		}

		if created.PublisherID == nil {
			return nil, model.ErrMissingPublisher
		}

		var p model.PublisherInfo
		err = tx.QueryRow(ctx,
			`SELECT id, name, founding_year FROM publishers WHERE id = $1`,
			*created.PublisherID,
		).Scan(&p.ID, &p.Name, &p.FoundingYear)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, model.ErrPublisherNotFound
			}
			return nil, fmt.Errorf("failed to load book publisher: %w", err)
		}

		created.Publisher = &p
		return &created, nil
	})
}

// mapCreateError turns constraint violations into domain errors. The
// referential checks ride on the foreign keys, which makes them atomic with
// the insert.
func mapCreateError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			if strings.Contains(pgErr.ConstraintName, "title") {
				return model.ErrDuplicateTitle
			}
		case "23503": // foreign_key_violation
			if strings.Contains(pgErr.ConstraintName, "author") {
				return model.ErrAuthorNotFound
			}
			return model.ErrPublisherNotFound
		case "23514": // check_violation
			return fmt.Errorf("check constraint violated: %w", err)
		}
	}
	return fmt.Errorf("failed to create book: %w", err)
}

func scanBookWithPublisher(rows pgx.Rows) (*model.BookWithPublisher, error) {
	var b model.BookWithPublisher
	var pubID *int64
	var pubName *string
	var pubYear *int

	err := rows.Scan(
		&b.ID, &b.Title, &b.PageCount, &b.AuthorID, &b.PublisherID,
		&pubID, &pubName, &pubYear,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to scan book: %w", err)
	}

	if pubID != nil {
		b.Publisher = &model.PublisherInfo{
			ID:           *pubID,
			Name:         *pubName,
			FoundingYear: *pubYear,
		}
	}

	return &b, nil
}
