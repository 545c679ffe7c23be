package queries

import (
	"context"
	"sort"

	"book-manager/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrBookNotFound = errs.New("book not found")

type CheckoutQueries interface {
	ListUnreturned(ctx context.Context) ([]*CheckoutView, error)
	ListUnreturnedByUser(ctx context.Context, userID uuid.UUID) ([]*CheckoutView, error)
	HistoryByBook(ctx context.Context, bookID uuid.UUID) ([]*CheckoutView, error)
}

type CheckoutReadStore interface {
	FindUnreturnedAll(ctx context.Context) ([]*CheckoutView, error)
	FindUnreturnedByUserID(ctx context.Context, userID uuid.UUID) ([]*CheckoutView, error)
	FindUnreturnedByBookID(ctx context.Context, bookID uuid.UUID) (*CheckoutView, error)
	FindReturnedByBookID(ctx context.Context, bookID uuid.UUID) ([]*CheckoutView, error)
	BookExists(ctx context.Context, bookID uuid.UUID) (bool, error)
}

type checkoutQueriesImpl struct {
	readStore CheckoutReadStore
}

func NewCheckoutQueries(readStore CheckoutReadStore) CheckoutQueries {
	return &checkoutQueriesImpl{readStore: readStore}
}

func (q *checkoutQueriesImpl) ListUnreturned(ctx context.Context) ([]*CheckoutView, error) {
	return q.readStore.FindUnreturnedAll(ctx)
}

func (q *checkoutQueriesImpl) ListUnreturnedByUser(ctx context.Context, userID uuid.UUID) ([]*CheckoutView, error) {
	return q.readStore.FindUnreturnedByUserID(ctx, userID)
}

// HistoryByBook assembles the full circulation history of one book: the
// active loan first, then every completed loan.
func (q *checkoutQueriesImpl) HistoryByBook(ctx context.Context, bookID uuid.UUID) ([]*CheckoutView, error) {
	exists, err := q.readStore.BookExists(ctx, bookID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrBookNotFound
	}

	active, err := q.readStore.FindUnreturnedByBookID(ctx, bookID)
	if err != nil {
		return nil, err
	}

	returned, err := q.readStore.FindReturnedByBookID(ctx, bookID)
	if err != nil {
		return nil, err
	}

	return MergeHistory(active, returned), nil
}

// MergeHistory places the active checkout ahead of the completed ones and
// keeps completed loans ordered by checkout time, oldest first. Equal
// timestamps keep their input order.
func MergeHistory(active *CheckoutView, returned []*CheckoutView) []*CheckoutView {
	history := make([]*CheckoutView, 0, len(returned)+1)
	if active != nil {
		history = append(history, active)
	}

	rest := make([]*CheckoutView, len(returned))
	copy(rest, returned)
	sort.SliceStable(rest, func(i, j int) bool {
		return rest[i].CheckedOutAt.Before(rest[j].CheckedOutAt)
	})

	return append(history, rest...)
}
