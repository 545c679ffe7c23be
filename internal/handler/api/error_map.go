package api

import (
	"errors"
	"net/http"

	"book-manager/internal/domain/book"
	"book-manager/internal/domain/user"
	"book-manager/internal/handler/httperr"
	"book-manager/internal/usecase/commands"
	"book-manager/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// statusForError maps usecase sentinels onto HTTP statuses. Conflicting
// serializable transactions surface as 503 so clients know to retry.
func statusForError(err error) int {
	switch {
	case errors.Is(err, commands.ErrBookNotFound),
		errors.Is(err, commands.ErrUserNotFound),
		errors.Is(err, queries.ErrBookNotFound),
		errors.Is(err, queries.ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, commands.ErrBookAlreadyCheckedOut),
		errors.Is(err, commands.ErrNotCheckedOutByUser),
		errors.Is(err, commands.ErrBookCheckedOut),
		errors.Is(err, commands.ErrUserHasCheckouts):
		return http.StatusUnprocessableEntity
	case errors.Is(err, commands.ErrBookNotOwned):
		return http.StatusForbidden
	case errors.Is(err, commands.ErrEmailTaken):
		return http.StatusConflict
	case errors.Is(err, commands.ErrInvalidCredentials),
		errors.Is(err, commands.ErrWrongPassword):
		return http.StatusUnauthorized
	case errors.Is(err, commands.ErrTxConflict):
		return http.StatusServiceUnavailable
	case isValidationError(err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func isValidationError(err error) bool {
	for _, target := range []error{
		book.ErrEmptyTitle, book.ErrEmptyAuthor, book.ErrInvalidISBN,
		user.ErrInvalidEmail, user.ErrInvalidRole, user.ErrPasswordTooWeak, user.ErrEmptyName,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func abortWithMappedError(c *gin.Context, err error, msg string) {
	httperr.AbortWithError(c, statusForError(err), err, msg, nil)
}
