package queries

import (
	"context"

	"book-manager/internal/infra"

	"github.com/google/uuid"
)

const (
	DefaultBookPageLimit = 20
	MaxBookPageLimit     = 100
)

type BookQueries interface {
	GetBook(ctx context.Context, bookID uuid.UUID) (*BookView, error)
	ListBooks(ctx context.Context, limit, offset int) (*BookPage, error)
}

type BookReadStore interface {
	FindByID(ctx context.Context, bookID uuid.UUID) (*BookView, error)
	FindPage(ctx context.Context, limit, offset int) (*BookPage, error)
}

type bookQueriesImpl struct {
	readStore BookReadStore
}

func NewBookQueries(readStore BookReadStore) BookQueries {
	return &bookQueriesImpl{readStore: readStore}
}

func (q *bookQueriesImpl) GetBook(ctx context.Context, bookID uuid.UUID) (*BookView, error) {
	view, err := q.readStore.FindByID(ctx, bookID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *bookQueriesImpl) ListBooks(ctx context.Context, limit, offset int) (*BookPage, error) {
	if limit <= 0 {
		limit = DefaultBookPageLimit
	}
	if limit > MaxBookPageLimit {
		limit = MaxBookPageLimit
	}
	if offset < 0 {
		offset = 0
	}
	return q.readStore.FindPage(ctx, limit, offset)
}
