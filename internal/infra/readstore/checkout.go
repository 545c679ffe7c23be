package readstore

import (
	"context"
	"errors"

	"book-manager/internal/infra"
	"book-manager/internal/usecase/queries"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var dialect = goqu.Dialect("postgres")

// CheckoutReadStore serves the circulation list views. All reads run as plain
// committed reads outside any explicit transaction.
type CheckoutReadStore struct {
	pool *pgxpool.Pool
}

func NewCheckoutReadStore(pool *pgxpool.Pool) *CheckoutReadStore {
	return &CheckoutReadStore{pool: pool}
}

// The unreturned list and its per-user variant share one SELECT shape; the
// user filter is the only difference, hence the builder.
func unreturnedDataset() *goqu.SelectDataset {
	return dialect.
		From(goqu.T("checkouts").As("c")).
		Join(goqu.T("books").As("b"), goqu.On(goqu.I("c.book_id").Eq(goqu.I("b.book_id")))).
		Select(
			goqu.I("c.checkout_id"),
			goqu.I("c.user_id"),
			goqu.I("c.checked_out_at"),
			goqu.I("b.book_id"),
			goqu.I("b.title"),
			goqu.I("b.author"),
			goqu.I("b.isbn"),
		).
		Order(goqu.I("c.checked_out_at").Asc())
}

func (r *CheckoutReadStore) FindUnreturnedAll(ctx context.Context) ([]*queries.CheckoutView, error) {
	return r.queryUnreturned(ctx, unreturnedDataset())
}

func (r *CheckoutReadStore) FindUnreturnedByUserID(ctx context.Context, userID uuid.UUID) ([]*queries.CheckoutView, error) {
	return r.queryUnreturned(ctx, unreturnedDataset().Where(goqu.I("c.user_id").Eq(userID)))
}

// FindUnreturnedByBookID returns the active checkout of a book, or nil when
// the book sits on the shelf.
func (r *CheckoutReadStore) FindUnreturnedByBookID(ctx context.Context, bookID uuid.UUID) (*queries.CheckoutView, error) {
	views, err := r.queryUnreturned(ctx, unreturnedDataset().Where(goqu.I("c.book_id").Eq(bookID)))
	if err != nil {
		return nil, err
	}
	if len(views) == 0 {
		return nil, nil
	}
	return views[0], nil
}

// FindReturnedByBookID lists the completed loans of a book, oldest first.
func (r *CheckoutReadStore) FindReturnedByBookID(ctx context.Context, bookID uuid.UUID) ([]*queries.CheckoutView, error) {
	stmt := dialect.
		From(goqu.T("returned_checkouts").As("rc")).
		Join(goqu.T("books").As("b"), goqu.On(goqu.I("rc.book_id").Eq(goqu.I("b.book_id")))).
		Select(
			goqu.I("rc.checkout_id"),
			goqu.I("rc.user_id"),
			goqu.I("rc.checked_out_at"),
			goqu.I("rc.returned_at"),
			goqu.I("b.book_id"),
			goqu.I("b.title"),
			goqu.I("b.author"),
			goqu.I("b.isbn"),
		).
		Where(goqu.I("rc.book_id").Eq(bookID)).
		Order(goqu.I("rc.checked_out_at").Asc())

	sql, args, err := stmt.Prepared(true).ToSQL()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build returned checkouts query", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query returned checkouts", err)
	}
	defer rows.Close()

	var views []*queries.CheckoutView
	for rows.Next() {
		var v queries.CheckoutView
		if err := rows.Scan(
			&v.ID, &v.CheckedOutBy, &v.CheckedOutAt, &v.ReturnedAt,
			&v.Book.ID, &v.Book.Title, &v.Book.Author, &v.Book.ISBN,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan returned checkout row", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read returned checkout rows", err)
	}
	return views, nil
}

func (r *CheckoutReadStore) queryUnreturned(ctx context.Context, stmt *goqu.SelectDataset) ([]*queries.CheckoutView, error) {
	sql, args, err := stmt.Prepared(true).ToSQL()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build unreturned checkouts query", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query unreturned checkouts", err)
	}
	defer rows.Close()

	var views []*queries.CheckoutView
	for rows.Next() {
		var v queries.CheckoutView
		if err := rows.Scan(
			&v.ID, &v.CheckedOutBy, &v.CheckedOutAt,
			&v.Book.ID, &v.Book.Title, &v.Book.Author, &v.Book.ISBN,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan unreturned checkout row", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read unreturned checkout rows", err)
	}
	return views, nil
}

// BookExists backs the history endpoint's 404 for unknown books.
func (r *CheckoutReadStore) BookExists(ctx context.Context, bookID uuid.UUID) (bool, error) {
	var id uuid.UUID
	err := r.pool.QueryRow(ctx, `SELECT book_id FROM books WHERE book_id = $1`, bookID).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, infra.WrapRepoErr("failed to check book existence", err)
	}
	return true, nil
}
