package commands

import (
	"context"
	"errors"

	"book-manager/internal/domain/checkout"
	"book-manager/internal/infra"
	"book-manager/internal/pkg/clock"
	"book-manager/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrBookNotFound          = errs.New("book not found")
	ErrBookAlreadyCheckedOut = errs.New("book already checked out")
	ErrNotCheckedOutByUser   = errs.New("book not checked out by the user")
	ErrTxConflict            = errs.New("transaction conflict, retry the request")
	ErrStoreFailure          = errs.New("store operation failed")
)

type CheckoutResult struct {
	CheckoutID uuid.UUID
}

type CheckoutCommands interface {
	CheckoutBook(ctx context.Context, bookID, userID uuid.UUID) (*CheckoutResult, error)
	ReturnBook(ctx context.Context, checkoutID, bookID, userID uuid.UUID) error
}

type checkoutCommandsImpl struct {
	store CheckoutStore
	clock clock.Clock
}

func NewCheckoutCommands(store CheckoutStore, clk clock.Clock) CheckoutCommands {
	return &checkoutCommandsImpl{store: store, clock: clk}
}

func (c *checkoutCommandsImpl) CheckoutBook(ctx context.Context, bookID, userID uuid.UUID) (*CheckoutResult, error) {
	event := checkout.CreateCheckout{
		BookID:       bookID,
		CheckedOutBy: userID,
		CheckedOutAt: c.clock.Now(),
	}

	checkoutID, err := c.store.Create(ctx, event)
	if err != nil {
		return nil, markCheckoutErr(err)
	}
	return &CheckoutResult{CheckoutID: checkoutID}, nil
}

func (c *checkoutCommandsImpl) ReturnBook(ctx context.Context, checkoutID, bookID, userID uuid.UUID) error {
	event := checkout.ReturnCheckout{
		CheckoutID: checkoutID,
		BookID:     bookID,
		ReturnedBy: userID,
		ReturnedAt: c.clock.Now(),
	}

	if err := c.store.Return(ctx, event); err != nil {
		return markCheckoutErr(err)
	}
	return nil
}

func markCheckoutErr(err error) error {
	switch {
	case infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, ErrBookNotFound)
	case errors.Is(err, checkout.ErrAlreadyCheckedOut):
		return errs.Mark(err, ErrBookAlreadyCheckedOut)
	case errors.Is(err, checkout.ErrNotHeldByUser):
		return errs.Mark(err, ErrNotCheckedOutByUser)
	case infra.IsKind(err, infra.KindTxFailure):
		return errs.Mark(err, ErrTxConflict)
	default:
		return errs.Mark(err, ErrStoreFailure)
	}
}
