//go:build unit || e2e

package builder

import (
	"time"

	reqdto "book-manager/internal/handler/dto/request"
	"book-manager/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookBuilder struct {
	ID          uuid.UUID
	Title       string
	Author      string
	ISBN        string
	Description string
	OwnerID     uuid.UUID
	OwnerName   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func NewBookBuilder() *BookBuilder {
	now := time.Now()
	return &BookBuilder{
		ID:          uuid.New(),
		Title:       "Domain-Driven Design",
		Author:      "Eric Evans",
		ISBN:        "978-0-321-12521-7",
		Description: "Tackling complexity in the heart of software",
		OwnerID:     uuid.New(),
		OwnerName:   "librarian",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (b *BookBuilder) With(mutate func(*BookBuilder)) *BookBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *BookBuilder) BuildCreateRequestDTO() reqdto.CreateBookRequest {
	return reqdto.CreateBookRequest{
		Title:       b.Title,
		Author:      b.Author,
		ISBN:        b.ISBN,
		Description: b.Description,
	}
}

func (b *BookBuilder) BuildUpdateRequestDTO() reqdto.UpdateBookRequest {
	title := b.Title
	author := b.Author
	isbn := b.ISBN
	description := b.Description
	return reqdto.UpdateBookRequest{
		Title:       &title,
		Author:      &author,
		ISBN:        &isbn,
		Description: &description,
	}
}

func (b *BookBuilder) BuildView() *queries.BookView {
	return &queries.BookView{
		ID:          b.ID,
		Title:       b.Title,
		Author:      b.Author,
		ISBN:        b.ISBN,
		Description: b.Description,
		Owner: queries.BookOwnerView{
			ID:   b.OwnerID,
			Name: b.OwnerName,
		},
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

func (b *BookBuilder) BuildViewWithCheckout(checkoutID, holderID uuid.UUID, checkedOutAt time.Time) *queries.BookView {
	view := b.BuildView()
	view.Checkout = &queries.BookCheckoutView{
		ID:           checkoutID,
		CheckedOutBy: holderID,
		CheckedOutAt: checkedOutAt,
	}
	return view
}

// Fluent builder methods
func (b *BookBuilder) WithID(id uuid.UUID) *BookBuilder {
	b.ID = id
	return b
}

func (b *BookBuilder) WithTitle(title string) *BookBuilder {
	b.Title = title
	return b
}

func (b *BookBuilder) WithAuthor(author string) *BookBuilder {
	b.Author = author
	return b
}

func (b *BookBuilder) WithISBN(isbn string) *BookBuilder {
	b.ISBN = isbn
	return b
}

func (b *BookBuilder) WithOwner(ownerID uuid.UUID, name string) *BookBuilder {
	b.OwnerID = ownerID
	b.OwnerName = name
	return b
}
