//go:build unit

package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"book-manager/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMark(t *testing.T) {
	sentinel := errors.New("book not found")

	t.Run("mark is visible to stdlib errors.Is", func(t *testing.T) {
		cause := errs.New("no rows in result set")
		marked := errs.Mark(cause, sentinel)

		assert.True(t, errors.Is(marked, sentinel))
	})

	t.Run("cause chain stays intact", func(t *testing.T) {
		cause := errs.New("no rows in result set")
		marked := errs.Mark(cause, sentinel)

		assert.True(t, errors.Is(marked, cause))
		assert.Equal(t, cause.Error(), marked.Error())
	})

	t.Run("wrapping on top keeps the mark matchable", func(t *testing.T) {
		marked := errs.Mark(errs.New("query failed"), sentinel)
		wrapped := errs.Wrap(marked, "checkout")

		assert.True(t, errors.Is(wrapped, sentinel))
	})

	t.Run("unrelated sentinel does not match", func(t *testing.T) {
		marked := errs.Mark(errs.New("query failed"), sentinel)

		assert.False(t, errors.Is(marked, errors.New("book not found")))
	})

	t.Run("nil cause returns the mark itself", func(t *testing.T) {
		require.Equal(t, sentinel, errs.Mark(nil, sentinel))
	})
}

func TestExtractStackLines(t *testing.T) {
	t.Run("marked error keeps the cause's stack", func(t *testing.T) {
		marked := errs.Mark(errs.New("boom"), errors.New("sentinel"))

		lines := errs.ExtractStackLines(marked, 0)
		require.NotEmpty(t, lines)
		assert.Equal(t, "boom", lines[0])
		// cockroachdb の errors.New はスタックトレース付き
		assert.Greater(t, len(lines), 1, "expected stack trace lines, got: %v", lines)
	})

	t.Run("maxLines truncates", func(t *testing.T) {
		lines := errs.ExtractStackLines(errs.New("boom"), 2)
		assert.Len(t, lines, 2)
	})

	t.Run("nil yields nil", func(t *testing.T) {
		assert.Nil(t, errs.ExtractStackLines(nil, 5))
	})
}

func TestWrap(t *testing.T) {
	t.Run("nil in nil out", func(t *testing.T) {
		assert.NoError(t, errs.Wrap(nil, "ctx"))
	})

	t.Run("message is prefixed", func(t *testing.T) {
		err := errs.Wrap(errs.New("inner"), "outer")
		assert.Equal(t, "outer: inner", err.Error())
		assert.Contains(t, fmt.Sprintf("%+v", err), "inner")
	})
}
