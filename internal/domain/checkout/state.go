package checkout

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrAlreadyCheckedOut = errors.New("book already checked out")
	ErrNotHeldByUser     = errors.New("book not checked out by the user")
)

// State is the projection of a single book's current lending state, taken from
// books joined against the active checkouts table. It is read inside the same
// transaction that mutates state, never persisted.
type State struct {
	BookID     uuid.UUID
	CheckoutID *uuid.UUID
	HolderID   *uuid.UUID
}

func (s State) IsCheckedOut() bool {
	return s.CheckoutID != nil
}

// ValidateCheckout decides whether a new checkout may be created.
func (s State) ValidateCheckout() error {
	if s.IsCheckedOut() {
		return ErrAlreadyCheckedOut
	}
	return nil
}

// ValidateReturn decides whether the supplied (checkoutID, returnedBy) pair is
// entitled to return the book. A book with no active checkout mismatches by
// construction, so the same check also rejects returning an idle book.
func (s State) ValidateReturn(checkoutID, returnedBy uuid.UUID) error {
	if s.CheckoutID == nil || s.HolderID == nil {
		return ErrNotHeldByUser
	}
	if *s.CheckoutID != checkoutID || *s.HolderID != returnedBy {
		return ErrNotHeldByUser
	}
	return nil
}
