package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

// RunMigrations applies the schema in order. Every statement is idempotent
// so repeated startups are safe.
func RunMigrations(pool *pgxpool.Pool) error {
	ctx := context.Background()

	migrations := []string{
		createAuthorsTable,
		createPublishersTable,
		createBooksTable,
	}

	for i, migration := range migrations {
		log.Info().Int("step", i+1).Int("total", len(migrations)).Msg("Running migration")
		if _, err := pool.Exec(ctx, migration); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}

	log.Info().Msg("All migrations completed")
	return nil
}

const createAuthorsTable = `
CREATE TABLE IF NOT EXISTS authors (
  id BIGSERIAL PRIMARY KEY,
  name TEXT NOT NULL,
  pen_name TEXT
);
`

const createPublishersTable = `
CREATE TABLE IF NOT EXISTS publishers (
  id BIGSERIAL PRIMARY KEY,
  name TEXT NOT NULL,
  founding_year INT NOT NULL DEFAULT 2000
    CONSTRAINT publishers_founding_year_range CHECK (founding_year BETWEEN 1600 AND 2023)
);
`

const createBooksTable = `
CREATE TABLE IF NOT EXISTS books (
  id BIGSERIAL PRIMARY KEY,
  title TEXT NOT NULL UNIQUE,
  page_count INT NOT NULL DEFAULT 1
    CONSTRAINT books_page_count_positive CHECK (page_count > 0),
  author_id BIGINT REFERENCES authors(id),
  publisher_id BIGINT REFERENCES publishers(id)
);

CREATE INDEX IF NOT EXISTS idx_books_author_id ON books(author_id);
CREATE INDEX IF NOT EXISTS idx_books_publisher_id ON books(publisher_id);
`
