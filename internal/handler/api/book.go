package api

import (
	"net/http"
	"strconv"

	reqdto "book-manager/internal/handler/dto/request"
	resdto "book-manager/internal/handler/dto/response"
	"book-manager/internal/handler/httperr"
	"book-manager/internal/handler/middleware"
	"book-manager/internal/usecase/commands"
	"book-manager/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookHandler struct {
	cmds commands.BookCommands
	q    queries.BookQueries
}

func NewBookHandler(cmds commands.BookCommands, q queries.BookQueries) *BookHandler {
	return &BookHandler{cmds: cmds, q: q}
}

// @Summary Register book
// @Description Register a new book owned by the authenticated user
// @Tags books
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookRequest true "Create book request"
// @Success 201 {object} resdto.CreatedBookResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /books [post]
func (h *BookHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return
	}
	var req reqdto.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.RegisterBook(c.Request.Context(), req.ToCommand(), userID)
	if err != nil {
		abortWithMappedError(c, err, "Register book failed")
		return
	}
	c.JSON(http.StatusCreated, resdto.CreatedBookResponse{ID: result.BookID.String()})
}

// @Summary List books
// @Description Paginated book list, newest first
// @Tags books
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {object} resdto.PaginatedBookResponse
// @Failure 401 {object} map[string]string
// @Router /books [get]
func (h *BookHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	page, err := h.q.ListBooks(c.Request.Context(), limit, offset)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list books", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookPage(page))
}

// @Summary Get book
// @Description Get a book by ID with owner and active checkout
// @Tags books
// @Produce json
// @Security BearerAuth
// @Param book_id path string true "Book ID"
// @Success 200 {object} resdto.BookResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /books/{book_id} [get]
func (h *BookHandler) Get(c *gin.Context) {
	bookID, err := uuid.Parse(c.Param("book_id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid book id", nil)
		return
	}
	view, err := h.q.GetBook(c.Request.Context(), bookID)
	if err != nil {
		abortWithMappedError(c, err, "Failed to load book")
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookView(view))
}

// @Summary Update book
// @Description Update a book; owner or admin only
// @Tags books
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param book_id path string true "Book ID"
// @Param request body reqdto.UpdateBookRequest true "Update book request"
// @Success 200 {object} resdto.BookResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /books/{book_id} [put]
func (h *BookHandler) Update(c *gin.Context) {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return
	}
	role, _ := middleware.GetUserRole(c)
	bookID, err := uuid.Parse(c.Param("book_id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid book id", nil)
		return
	}
	var req reqdto.UpdateBookRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}
	if err := h.cmds.UpdateBook(c.Request.Context(), bookID, req.ToCommand(), actorID, role.String()); err != nil {
		abortWithMappedError(c, err, "Update book failed")
		return
	}
	view, err := h.q.GetBook(c.Request.Context(), bookID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load book", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookView(view))
}

// @Summary Delete book
// @Description Delete a book; owner or admin only, rejected while checked out
// @Tags books
// @Security BearerAuth
// @Param book_id path string true "Book ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /books/{book_id} [delete]
func (h *BookHandler) Delete(c *gin.Context) {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return
	}
	role, _ := middleware.GetUserRole(c)
	bookID, err := uuid.Parse(c.Param("book_id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid book id", nil)
		return
	}
	if err := h.cmds.DeleteBook(c.Request.Context(), bookID, actorID, role.String()); err != nil {
		abortWithMappedError(c, err, "Delete book failed")
		return
	}
	c.Status(http.StatusNoContent)
}
