package errs

import (
	"fmt"
	"strings"

	cr "github.com/cockroachdb/errors"
)

// Thin wrappers over cockroachdb/errors so callers don't import it directly.

func New(msg string) error {
	return cr.New(msg)
}

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

// Mark attaches markErr as a secondary identity so errors.Is(err, markErr)
// holds while the original cause is preserved. The mark sits in the stdlib
// unwrap chain; cr.Mark alone would only be visible to cockroachdb's Is.
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return &markedError{cause: err, mark: markErr}
}

type markedError struct {
	cause error
	mark  error
}

func (e *markedError) Error() string {
	return e.cause.Error()
}

// Unwrap exposes both branches, so errors.Is matches the mark as well as
// anything in the cause chain.
func (e *markedError) Unwrap() []error {
	return []error{e.cause, e.mark}
}

// Format delegates verbose rendering to the cause so marked errors keep
// their stack traces under %+v.
func (e *markedError) Format(s fmt.State, verb rune) {
	if f, ok := e.cause.(fmt.Formatter); ok {
		f.Format(s, verb)
		return
	}
	fmt.Fprintf(s, fmt.FormatString(s, verb), e.cause)
}

// ExtractStackLines renders the error with its stack trace and returns at
// most maxLines lines, for structured log fields.
func ExtractStackLines(err error, maxLines int) []string {
	if err == nil {
		return nil
	}
	lines := strings.Split(fmt.Sprintf("%+v", err), "\n")
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return lines
}
