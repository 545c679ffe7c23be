package api

import (
	"errors"
	"net/http"

	resdto "book-manager/internal/handler/dto/response"
	"book-manager/internal/handler/httperr"
	"book-manager/internal/handler/middleware"
	"book-manager/internal/observability/metrics"
	"book-manager/internal/usecase/commands"
	"book-manager/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CheckoutHandler struct {
	cmds commands.CheckoutCommands
	q    queries.CheckoutQueries
}

func NewCheckoutHandler(cmds commands.CheckoutCommands, q queries.CheckoutQueries) *CheckoutHandler {
	return &CheckoutHandler{cmds: cmds, q: q}
}

// @Summary Checkout book
// @Description Checkout a book for the authenticated user
// @Tags checkouts
// @Produce json
// @Security BearerAuth
// @Param book_id path string true "Book ID"
// @Success 201 {object} resdto.CreatedCheckoutResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /books/{book_id}/checkouts [post]
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return
	}
	bookID, err := uuid.Parse(c.Param("book_id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid book id", nil)
		return
	}

	result, err := h.cmds.CheckoutBook(c.Request.Context(), bookID, userID)
	if err != nil {
		metrics.ObserveCheckout("checkout", checkoutResultLabel(err))
		abortWithMappedError(c, err, "Checkout failed")
		return
	}
	metrics.ObserveCheckout("checkout", "ok")
	c.JSON(http.StatusCreated, resdto.CreatedCheckoutResponse{ID: result.CheckoutID.String()})
}

// @Summary Return book
// @Description Return a checked out book
// @Tags checkouts
// @Security BearerAuth
// @Param book_id path string true "Book ID"
// @Param checkout_id path string true "Checkout ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /books/{book_id}/checkouts/{checkout_id}/returned [put]
func (h *CheckoutHandler) Return(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return
	}
	bookID, err := uuid.Parse(c.Param("book_id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid book id", nil)
		return
	}
	checkoutID, err := uuid.Parse(c.Param("checkout_id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid checkout id", nil)
		return
	}

	if err := h.cmds.ReturnBook(c.Request.Context(), checkoutID, bookID, userID); err != nil {
		metrics.ObserveCheckout("return", checkoutResultLabel(err))
		abortWithMappedError(c, err, "Return failed")
		return
	}
	metrics.ObserveCheckout("return", "ok")
	c.Status(http.StatusNoContent)
}

// @Summary List unreturned checkouts
// @Description List every active checkout across all books
// @Tags checkouts
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.CheckoutResponse
// @Failure 401 {object} map[string]string
// @Router /books/checkouts [get]
func (h *CheckoutHandler) ListUnreturned(c *gin.Context) {
	views, err := h.q.ListUnreturned(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list checkouts", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCheckoutList(views))
}

// @Summary List own checkouts
// @Description List active checkouts of the authenticated user
// @Tags checkouts
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.CheckoutResponse
// @Failure 401 {object} map[string]string
// @Router /users/me/checkouts [get]
func (h *CheckoutHandler) ListMine(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return
	}
	views, err := h.q.ListUnreturnedByUser(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list checkouts", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCheckoutList(views))
}

// @Summary Checkout history
// @Description Full circulation history of a book, active loan first
// @Tags checkouts
// @Produce json
// @Security BearerAuth
// @Param book_id path string true "Book ID"
// @Success 200 {array} resdto.CheckoutResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /books/{book_id}/checkout-history [get]
func (h *CheckoutHandler) History(c *gin.Context) {
	bookID, err := uuid.Parse(c.Param("book_id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid book id", nil)
		return
	}
	views, err := h.q.HistoryByBook(c.Request.Context(), bookID)
	if err != nil {
		abortWithMappedError(c, err, "Failed to load history")
		return
	}
	c.JSON(http.StatusOK, resdto.FromCheckoutList(views))
}

func checkoutResultLabel(err error) string {
	switch statusForError(err) {
	case http.StatusUnprocessableEntity:
		return "rejected"
	case http.StatusServiceUnavailable:
		return "conflict"
	default:
		return "error"
	}
}

var errUnauthenticated = errors.New("missing authenticated user in context")
