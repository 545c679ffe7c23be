package checkout

import (
	"time"

	"github.com/google/uuid"
)

// CreateCheckout is the command event for lending a book out.
// CheckoutID is generated by the store layer at insert time.
type CreateCheckout struct {
	BookID       uuid.UUID
	CheckedOutBy uuid.UUID
	CheckedOutAt time.Time
}

// ReturnCheckout is the command event for returning a lent book. The
// (CheckoutID, ReturnedBy) pair must match the book's active checkout.
type ReturnCheckout struct {
	CheckoutID uuid.UUID
	BookID     uuid.UUID
	ReturnedBy uuid.UUID
	ReturnedAt time.Time
}
