package api

import (
	"net/http"

	reqdto "book-manager/internal/handler/dto/request"
	resdto "book-manager/internal/handler/dto/response"
	"book-manager/internal/handler/httperr"
	"book-manager/internal/handler/middleware"
	"book-manager/internal/usecase/commands"
	"book-manager/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type UserHandler struct {
	cmds commands.UserCommands
	q    queries.UserQueries
}

func NewUserHandler(cmds commands.UserCommands, q queries.UserQueries) *UserHandler {
	return &UserHandler{cmds: cmds, q: q}
}

// @Summary Register user
// @Description Register a new user; admin only
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateUserRequest true "Create user request"
// @Success 201 {object} resdto.CreatedUserResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /users [post]
func (h *UserHandler) Create(c *gin.Context) {
	var req reqdto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.RegisterUser(c.Request.Context(), req.ToCommand())
	if err != nil {
		abortWithMappedError(c, err, "Register user failed")
		return
	}
	c.JSON(http.StatusCreated, resdto.CreatedUserResponse{ID: result.UserID.String()})
}

// @Summary List users
// @Description List all users
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.UserResponse
// @Failure 401 {object} map[string]string
// @Router /users [get]
func (h *UserHandler) List(c *gin.Context) {
	views, err := h.q.ListUsers(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list users", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromUserList(views))
}

// @Summary Current user
// @Description Get the authenticated user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.UserResponse
// @Failure 401 {object} map[string]string
// @Router /users/me [get]
func (h *UserHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return
	}
	view, err := h.q.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		abortWithMappedError(c, err, "Failed to load user")
		return
	}
	c.JSON(http.StatusOK, resdto.FromUserView(view))
}

// @Summary Delete user
// @Description Delete a user; admin only
// @Tags users
// @Security BearerAuth
// @Param user_id path string true "User ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /users/{user_id} [delete]
func (h *UserHandler) Delete(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid user id", nil)
		return
	}
	if err := h.cmds.DeleteUser(c.Request.Context(), userID); err != nil {
		abortWithMappedError(c, err, "Delete user failed")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Change user role
// @Description Change a user's role; admin only
// @Tags users
// @Accept json
// @Security BearerAuth
// @Param user_id path string true "User ID"
// @Param request body reqdto.UpdateUserRoleRequest true "Role update request"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /users/{user_id}/role [put]
func (h *UserHandler) ChangeRole(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid user id", nil)
		return
	}
	var req reqdto.UpdateUserRoleRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}
	if err := h.cmds.ChangeRole(c.Request.Context(), userID, req.Role); err != nil {
		abortWithMappedError(c, err, "Change role failed")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Change own password
// @Description Verify the current password and replace it
// @Tags users
// @Accept json
// @Security BearerAuth
// @Param request body reqdto.UpdateUserPasswordRequest true "Password update request"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /users/me/password [put]
func (h *UserHandler) ChangePassword(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return
	}
	var req reqdto.UpdateUserPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := h.cmds.ChangePassword(c.Request.Context(), userID, req.CurrentPassword, req.NewPassword); err != nil {
		abortWithMappedError(c, err, "Change password failed")
		return
	}
	c.Status(http.StatusNoContent)
}
