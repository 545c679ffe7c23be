package repository

import (
	"context"
	"errors"

	"book-manager/internal/domain/book"
	"book-manager/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const pgErrCodeForeignKeyViolation = "23503"

type BookRepository struct {
	pool *pgxpool.Pool
}

func NewBookRepository(pool *pgxpool.Pool) *BookRepository {
	return &BookRepository{pool: pool}
}

func (r *BookRepository) Create(ctx context.Context, b *book.Book) error {
	tag, err := r.pool.Exec(ctx, `
INSERT INTO books (book_id, title, author, isbn, description, user_id)
VALUES ($1, $2, $3, $4, $5, $6)`,
		b.ID(), b.Title(), b.Author(), b.ISBN().Value(), b.Description(), b.OwnerID(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert book", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("no book record has been created", nil, infra.KindNoRowsAffected)
	}
	return nil
}

func (r *BookRepository) Update(ctx context.Context, b *book.Book) error {
	tag, err := r.pool.Exec(ctx, `
UPDATE books
SET title = $2, author = $3, isbn = $4, description = $5, updated_at = NOW()
WHERE book_id = $1`,
		b.ID(), b.Title(), b.Author(), b.ISBN().Value(), b.Description(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update book", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("book not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *BookRepository) Delete(ctx context.Context, bookID uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM books WHERE book_id = $1`, bookID)
	if err != nil {
		// An active checkout still references the book.
		if isForeignKeyViolation(err) {
			return infra.WrapRepoErr("book is checked out", err, infra.KindUnprocessable)
		}
		return infra.WrapRepoErr("failed to delete book", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("book not found", nil, infra.KindNotFound)
	}
	return nil
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgErrCodeForeignKeyViolation
}
