//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"book-manager/internal/domain/user"
	"book-manager/internal/handler/api"
	resdto "book-manager/internal/handler/dto/response"
	"book-manager/internal/usecase/commands"
	"book-manager/internal/usecase/queries"
	"book-manager/tests/common/builder"
	"book-manager/tests/common/httptest"
	"book-manager/tests/common/testutil"
	commandsmock "book-manager/tests/mock/commands"
	queriesmock "book-manager/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type UserHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockUserCommands
	mockQueries  *queriesmock.MockUserQueries
	handler      *api.UserHandler
	userID       uuid.UUID
	role         user.Role
}

func (s *UserHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockUserCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockUserQueries(s.mockCtrl)
	s.handler = api.NewUserHandler(s.mockCommands, s.mockQueries)
	s.userID = uuid.New()
	s.role = user.RoleAdmin

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", s.userID)
		c.Set("user_role", s.role)
		c.Next()
	}
	adminOnly := func(c *gin.Context) {
		if s.role != user.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": gin.H{"message": "Forbidden"}})
			return
		}
		c.Next()
	}

	// Setup routes
	s.router.POST("/users", authMiddleware, adminOnly, s.handler.Create)
	s.router.GET("/users", authMiddleware, s.handler.List)
	s.router.GET("/users/me", authMiddleware, s.handler.Me)
	s.router.PUT("/users/me/password", authMiddleware, s.handler.ChangePassword)
	s.router.DELETE("/users/:user_id", authMiddleware, adminOnly, s.handler.Delete)
	s.router.PUT("/users/:user_id/role", authMiddleware, adminOnly, s.handler.ChangeRole)
}

func (s *UserHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestUserHandlerSuite(t *testing.T) {
	suite.Run(t, new(UserHandlerTestSuite))
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *UserHandlerTestSuite) TestCreate() {
	url := "/users"
	newUserID := uuid.New()

	s.Run("success: returns 201 Created with user id", func() {
		reqBody := builder.NewUserBuilder().WithEmail("newbie@example.com").BuildCreateRequestDTO()

		s.mockCommands.EXPECT().RegisterUser(gomock.Any(), reqBody.ToCommand()).
			Return(&commands.RegisterUserResult{UserID: newUserID}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body resdto.CreatedUserResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(newUserID.String(), body.ID)
	})

	s.Run("error: 400 Bad Request on validation failure", func() {
		reqBody := builder.NewUserBuilder().BuildCreateRequestDTO()

		testCases := []struct {
			name   string
			mutate func(map[string]any)
		}{
			{name: "missing field: name (required)", mutate: testutil.Field("name", nil)},
			{name: "malformed email", mutate: testutil.Field("email", "not-an-email")},
			{name: "password below minimum length", mutate: testutil.Field("password", "short")},
			{name: "unknown role", mutate: testutil.Field("role", "superuser")},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
			})
		}
	})

	s.Run("error: 409 Conflict when the email is taken", func() {
		reqBody := builder.NewUserBuilder().BuildCreateRequestDTO()

		s.mockCommands.EXPECT().RegisterUser(gomock.Any(), reqBody.ToCommand()).
			Return(nil, commands.ErrEmailTaken).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Register user failed")
	})

	s.Run("error: 403 Forbidden for non-admin caller", func() {
		s.role = user.RoleUser
		defer func() { s.role = user.RoleAdmin }()

		reqBody := builder.NewUserBuilder().BuildCreateRequestDTO()
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Forbidden")
	})
}

// ================================================================================
// TestList / TestMe
// ================================================================================

func (s *UserHandlerTestSuite) TestList() {
	url := "/users"

	s.Run("success: returns every registered user", func() {
		views := []*queries.UserView{
			builder.NewUserBuilder().AsAdmin().BuildView(),
			builder.NewUserBuilder().WithEmail("second@example.com").BuildView(),
		}
		s.mockQueries.EXPECT().ListUsers(gomock.Any()).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var body []*resdto.UserResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 2)
		s.Equal(views[0].ID.String(), body[0].ID)
		s.Equal("admin", body[0].Role)
	})

	s.Run("error: returns 500 Internal Server Error on query error", func() {
		s.mockQueries.EXPECT().ListUsers(gomock.Any()).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Failed to list users")
	})
}

func (s *UserHandlerTestSuite) TestMe() {
	url := "/users/me"

	s.Run("success: returns the authenticated user", func() {
		view := builder.NewUserBuilder().WithID(s.userID).BuildView()
		s.mockQueries.EXPECT().GetCurrentUser(gomock.Any(), s.userID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var body resdto.UserResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(s.userID.String(), body.ID)
		s.Equal(view.Email, body.Email)
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: 404 Not Found when the account vanished", func() {
		s.mockQueries.EXPECT().GetCurrentUser(gomock.Any(), s.userID).
			Return(nil, queries.ErrUserNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Failed to load user")
	})
}

// ================================================================================
// TestDelete
// ================================================================================

func (s *UserHandlerTestSuite) TestDelete() {
	targetID := uuid.New()
	url := "/users/" + targetID.String()

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().DeleteUser(gomock.Any(), targetID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 Bad Request for invalid user UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/users/invalid-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid user id")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
		}{
			{
				name:           "user not found",
				commandsError:  commands.ErrUserNotFound,
				expectedStatus: http.StatusNotFound,
			},
			{
				name:           "user still holds checkouts",
				commandsError:  commands.ErrUserHasCheckouts,
				expectedStatus: http.StatusUnprocessableEntity,
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
			},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().DeleteUser(gomock.Any(), targetID).
					Return(tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, "Delete user failed")
			})
		}
	})
}

// ================================================================================
// TestChangeRole
// ================================================================================

func (s *UserHandlerTestSuite) TestChangeRole() {
	targetID := uuid.New()
	url := "/users/" + targetID.String() + "/role"

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().ChangeRole(gomock.Any(), targetID, "admin").
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"role": "admin"}, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 Bad Request for unknown role", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"role": "superuser"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 404 Not Found for unknown user", func() {
		s.mockCommands.EXPECT().ChangeRole(gomock.Any(), targetID, "admin").
			Return(commands.ErrUserNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"role": "admin"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Change role failed")
	})

	s.Run("error: 403 Forbidden for non-admin caller", func() {
		s.role = user.RoleUser
		defer func() { s.role = user.RoleAdmin }()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"role": "admin"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Forbidden")
	})
}

// ================================================================================
// TestChangePassword
// ================================================================================

func (s *UserHandlerTestSuite) TestChangePassword() {
	url := "/users/me/password"
	reqBody := map[string]any{
		"current_password": "password123",
		"new_password":     "evenbetterpass",
	}

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().ChangePassword(gomock.Any(), s.userID, "password123", "evenbetterpass").
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 Bad Request when the new password is too short", func() {
		bad := map[string]any{"current_password": "password123", "new_password": "short"}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, bad, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 401 Unauthorized when the current password is wrong", func() {
		s.mockCommands.EXPECT().ChangePassword(gomock.Any(), s.userID, "password123", "evenbetterpass").
			Return(commands.ErrWrongPassword).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Change password failed")
	})

	s.Run("error: 404 Not Found when the account was deleted", func() {
		s.mockCommands.EXPECT().ChangePassword(gomock.Any(), s.userID, "password123", "evenbetterpass").
			Return(commands.ErrUserNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Change password failed")
	})
}
