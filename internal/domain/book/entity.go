package book

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Book exists independently of any checkout; the circulation subsystem only
// reads its identity and display attributes.
type Book struct {
	id          uuid.UUID
	title       string
	author      string
	isbn        ISBN
	description string
	ownerID     uuid.UUID
	createdAt   time.Time
	updatedAt   time.Time
}

func NewBook(title, author string, isbn ISBN, description string, ownerID uuid.UUID) (*Book, error) {
	if strings.TrimSpace(title) == "" {
		return nil, ErrEmptyTitle
	}
	if strings.TrimSpace(author) == "" {
		return nil, ErrEmptyAuthor
	}
	return &Book{
		id:          uuid.New(),
		title:       title,
		author:      author,
		isbn:        isbn,
		description: description,
		ownerID:     ownerID,
	}, nil
}

// Update replaces the mutable attributes, keeping identity and ownership.
func (b *Book) Update(title, author string, isbn ISBN, description string) error {
	if strings.TrimSpace(title) == "" {
		return ErrEmptyTitle
	}
	if strings.TrimSpace(author) == "" {
		return ErrEmptyAuthor
	}
	b.title = title
	b.author = author
	b.isbn = isbn
	b.description = description
	return nil
}

func ReconstructBook(id uuid.UUID, title, author string, isbn ISBN, description string, ownerID uuid.UUID, createdAt, updatedAt time.Time) *Book {
	return &Book{
		id:          id,
		title:       title,
		author:      author,
		isbn:        isbn,
		description: description,
		ownerID:     ownerID,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (b *Book) ID() uuid.UUID        { return b.id }
func (b *Book) Title() string        { return b.title }
func (b *Book) Author() string       { return b.author }
func (b *Book) ISBN() ISBN           { return b.isbn }
func (b *Book) Description() string  { return b.description }
func (b *Book) OwnerID() uuid.UUID   { return b.ownerID }
func (b *Book) CreatedAt() time.Time { return b.createdAt }
func (b *Book) UpdatedAt() time.Time { return b.updatedAt }
