package readstore

import (
	"context"
	"time"

	"book-manager/internal/infra"
	"book-manager/internal/usecase/queries"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookReadStore struct {
	pool *pgxpool.Pool
}

func NewBookReadStore(pool *pgxpool.Pool) *BookReadStore {
	return &BookReadStore{pool: pool}
}

func bookViewDataset() *goqu.SelectDataset {
	return dialect.
		From(goqu.T("books").As("b")).
		Join(goqu.T("users").As("u"), goqu.On(goqu.I("b.user_id").Eq(goqu.I("u.user_id")))).
		LeftJoin(goqu.T("checkouts").As("c"), goqu.On(goqu.I("b.book_id").Eq(goqu.I("c.book_id")))).
		Select(
			goqu.I("b.book_id"),
			goqu.I("b.title"),
			goqu.I("b.author"),
			goqu.I("b.isbn"),
			goqu.I("b.description"),
			goqu.I("u.user_id"),
			goqu.I("u.name"),
			goqu.I("c.checkout_id"),
			goqu.I("c.user_id"),
			goqu.I("c.checked_out_at"),
			goqu.I("b.created_at"),
			goqu.I("b.updated_at"),
		)
}

func (r *BookReadStore) FindByID(ctx context.Context, bookID uuid.UUID) (*queries.BookView, error) {
	stmt := bookViewDataset().Where(goqu.I("b.book_id").Eq(bookID))

	sql, args, err := stmt.Prepared(true).ToSQL()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build book query", err)
	}

	views, err := r.queryBooks(ctx, sql, args)
	if err != nil {
		return nil, err
	}
	if len(views) == 0 {
		return nil, infra.WrapRepoErr("book not found", nil, infra.KindNotFound)
	}
	return views[0], nil
}

// FindPage lists books newest first with a total count for pagination.
func (r *BookReadStore) FindPage(ctx context.Context, limit, offset int) (*queries.BookPage, error) {
	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM books`).Scan(&total); err != nil {
		return nil, infra.WrapRepoErr("failed to count books", err)
	}

	stmt := bookViewDataset().
		Order(goqu.I("b.created_at").Desc()).
		Limit(uint(limit)).
		Offset(uint(offset))

	sql, args, err := stmt.Prepared(true).ToSQL()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build book page query", err)
	}

	views, err := r.queryBooks(ctx, sql, args)
	if err != nil {
		return nil, err
	}

	return &queries.BookPage{
		Total:  total,
		Limit:  limit,
		Offset: offset,
		Items:  views,
	}, nil
}

func (r *BookReadStore) queryBooks(ctx context.Context, sql string, args []any) ([]*queries.BookView, error) {
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query books", err)
	}
	defer rows.Close()

	var views []*queries.BookView
	for rows.Next() {
		var (
			v            queries.BookView
			checkoutID   *uuid.UUID
			checkedOutBy *uuid.UUID
			checkedOutAt *time.Time
		)
		if err := rows.Scan(
			&v.ID, &v.Title, &v.Author, &v.ISBN, &v.Description,
			&v.Owner.ID, &v.Owner.Name,
			&checkoutID, &checkedOutBy, &checkedOutAt,
			&v.CreatedAt, &v.UpdatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan book row", err)
		}
		if checkoutID != nil {
			v.Checkout = &queries.BookCheckoutView{
				ID:           *checkoutID,
				CheckedOutBy: *checkedOutBy,
				CheckedOutAt: *checkedOutAt,
			}
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read book rows", err)
	}
	return views, nil
}
