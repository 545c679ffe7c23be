//go:build unit

package book_test

import (
	"testing"

	"book-manager/internal/domain/book"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewISBN(t *testing.T) {
	cases := []struct {
		name  string
		input string
		errIs error
	}{
		{name: "ISBN-13 with hyphens", input: "978-0-321-12521-7"},
		{name: "ISBN-13 without hyphens", input: "9780321125217"},
		{name: "ISBN-10", input: "0-321-12521-5"},
		{name: "ISBN-10 with X check digit", input: "080442957X"},
		{name: "empty string", input: "", errIs: book.ErrInvalidISBN},
		{name: "letters", input: "not-an-isbn", errIs: book.ErrInvalidISBN},
		{name: "too few digits", input: "12345", errIs: book.ErrInvalidISBN},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			isbn, err := book.NewISBN(c.input)
			if c.errIs == nil {
				require.NoError(t, err)
				assert.Equal(t, c.input, isbn.Value())
			} else {
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}

func TestNewBook(t *testing.T) {
	isbn, err := book.NewISBN("978-0-321-12521-7")
	require.NoError(t, err)
	ownerID := uuid.New()

	t.Run("basic success case", func(t *testing.T) {
		b, err := book.NewBook("Domain-Driven Design", "Eric Evans", isbn, "", ownerID)
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, b.ID())
		assert.Equal(t, ownerID, b.OwnerID())
	})

	t.Run("empty title", func(t *testing.T) {
		_, err := book.NewBook("   ", "Eric Evans", isbn, "", ownerID)
		require.ErrorIs(t, err, book.ErrEmptyTitle)
	})

	t.Run("empty author", func(t *testing.T) {
		_, err := book.NewBook("Domain-Driven Design", "", isbn, "", ownerID)
		require.ErrorIs(t, err, book.ErrEmptyAuthor)
	})

	t.Run("update keeps identity", func(t *testing.T) {
		b, err := book.NewBook("Domain-Driven Design", "Eric Evans", isbn, "", ownerID)
		require.NoError(t, err)
		id := b.ID()

		require.NoError(t, b.Update("Second Edition", "Eric Evans", isbn, "revised"))
		assert.Equal(t, id, b.ID())
		assert.Equal(t, "Second Edition", b.Title())

		require.ErrorIs(t, b.Update("", "Eric Evans", isbn, ""), book.ErrEmptyTitle)
	})
}
