//go:build unit || e2e

package builder

import (
	"time"

	"book-manager/internal/usecase/queries"

	"github.com/google/uuid"
)

type CheckoutBuilder struct {
	ID           uuid.UUID
	CheckedOutBy uuid.UUID
	CheckedOutAt time.Time
	ReturnedAt   *time.Time
	BookID       uuid.UUID
	BookTitle    string
	BookAuthor   string
	BookISBN     string
}

func NewCheckoutBuilder() *CheckoutBuilder {
	return &CheckoutBuilder{
		ID:           uuid.New(),
		CheckedOutBy: uuid.New(),
		CheckedOutAt: time.Now(),
		BookID:       uuid.New(),
		BookTitle:    "Domain-Driven Design",
		BookAuthor:   "Eric Evans",
		BookISBN:     "978-0-321-12521-7",
	}
}

func (c *CheckoutBuilder) With(mutate func(*CheckoutBuilder)) *CheckoutBuilder {
	mutate(c)
	return c
}

func (c *CheckoutBuilder) BuildView() *queries.CheckoutView {
	return &queries.CheckoutView{
		ID:           c.ID,
		CheckedOutBy: c.CheckedOutBy,
		CheckedOutAt: c.CheckedOutAt,
		ReturnedAt:   c.ReturnedAt,
		Book: queries.CheckoutBookView{
			ID:     c.BookID,
			Title:  c.BookTitle,
			Author: c.BookAuthor,
			ISBN:   c.BookISBN,
		},
	}
}

// Fluent builder methods
func (c *CheckoutBuilder) WithID(id uuid.UUID) *CheckoutBuilder {
	c.ID = id
	return c
}

func (c *CheckoutBuilder) WithHolder(userID uuid.UUID) *CheckoutBuilder {
	c.CheckedOutBy = userID
	return c
}

func (c *CheckoutBuilder) WithBookID(bookID uuid.UUID) *CheckoutBuilder {
	c.BookID = bookID
	return c
}

func (c *CheckoutBuilder) WithCheckedOutAt(at time.Time) *CheckoutBuilder {
	c.CheckedOutAt = at
	return c
}

func (c *CheckoutBuilder) AsReturned(returnedAt time.Time) *CheckoutBuilder {
	c.ReturnedAt = &returnedAt
	return c
}
