package queries

import (
	"time"

	"github.com/google/uuid"
)

// View models returned by the read stores. They are flat projections shaped
// for the response layer, never domain entities.

type CheckoutBookView struct {
	ID     uuid.UUID
	Title  string
	Author string
	ISBN   string
}

type CheckoutView struct {
	ID           uuid.UUID
	CheckedOutBy uuid.UUID
	CheckedOutAt time.Time
	ReturnedAt   *time.Time // nil while the book is still out
	Book         CheckoutBookView
}

type BookOwnerView struct {
	ID   uuid.UUID
	Name string
}

// BookCheckoutView is the active-loan summary embedded in a book view.
type BookCheckoutView struct {
	ID           uuid.UUID
	CheckedOutBy uuid.UUID
	CheckedOutAt time.Time
}

type BookView struct {
	ID          uuid.UUID
	Title       string
	Author      string
	ISBN        string
	Description string
	Owner       BookOwnerView
	Checkout    *BookCheckoutView
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type BookPage struct {
	Total  int64
	Limit  int
	Offset int
	Items  []*BookView
}

type UserView struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Role      string
	CreatedAt time.Time
}
