package book

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrEmptyTitle  = errors.New("title must not be empty")
	ErrEmptyAuthor = errors.New("author must not be empty")
	ErrInvalidISBN = errors.New("invalid isbn format")
)

// Accepts ISBN-10 and ISBN-13, hyphens optional. Checksum is not verified;
// registrars paste what the publisher printed.
var isbnRegex = regexp.MustCompile(`^(?:\d[\- ]?){9}[\dXx]$|^(?:\d[\- ]?){13}$`)

type ISBN struct {
	value string
}

func NewISBN(s string) (ISBN, error) {
	s = strings.TrimSpace(s)
	if s == "" || !isbnRegex.MatchString(s) {
		return ISBN{}, ErrInvalidISBN
	}
	return ISBN{value: s}, nil
}

func (i ISBN) Value() string {
	return i.value
}
