//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"book-manager/internal/domain/user"
	"book-manager/internal/handler/api"
	resdto "book-manager/internal/handler/dto/response"
	"book-manager/internal/usecase/commands"
	"book-manager/internal/usecase/queries"
	"book-manager/tests/common/builder"
	"book-manager/tests/common/httptest"
	commandsmock "book-manager/tests/mock/commands"
	queriesmock "book-manager/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CheckoutHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCheckoutCommands
	mockQueries  *queriesmock.MockCheckoutQueries
	handler      *api.CheckoutHandler
	userID       uuid.UUID
}

func (s *CheckoutHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCheckoutCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockCheckoutQueries(s.mockCtrl)
	s.handler = api.NewCheckoutHandler(s.mockCommands, s.mockQueries)
	s.userID = uuid.New()

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", s.userID)
		c.Set("user_role", user.RoleUser)
		c.Next()
	}

	// Setup routes
	s.router.POST("/books/:book_id/checkouts", authMiddleware, s.handler.Checkout)
	s.router.PUT("/books/:book_id/checkouts/:checkout_id/returned", authMiddleware, s.handler.Return)
	s.router.GET("/books/checkouts", authMiddleware, s.handler.ListUnreturned)
	s.router.GET("/users/me/checkouts", authMiddleware, s.handler.ListMine)
	s.router.GET("/books/:book_id/checkout-history", authMiddleware, s.handler.History)
}

func (s *CheckoutHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCheckoutHandlerSuite(t *testing.T) {
	suite.Run(t, new(CheckoutHandlerTestSuite))
}

// ================================================================================
// TestCheckout
// ================================================================================

func (s *CheckoutHandlerTestSuite) TestCheckout() {
	bookID := uuid.New()
	url := "/books/" + bookID.String() + "/checkouts"

	checkoutID := uuid.New()

	s.Run("success: returns 201 Created with checkout id", func() {
		s.mockCommands.EXPECT().CheckoutBook(gomock.Any(), bookID, s.userID).
			Return(&commands.CheckoutResult{CheckoutID: checkoutID}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		var body resdto.CreatedCheckoutResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(checkoutID.String(), body.ID)
	})

	s.Run("error: 400 Bad Request for invalid book UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/books/invalid-uuid/checkouts", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid book id")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
		}{
			{
				name:           "book not found",
				commandsError:  commands.ErrBookNotFound,
				expectedStatus: http.StatusNotFound,
			},
			{
				name:           "book already checked out",
				commandsError:  commands.ErrBookAlreadyCheckedOut,
				expectedStatus: http.StatusUnprocessableEntity,
			},
			{
				name:           "serializable transaction conflict",
				commandsError:  commands.ErrTxConflict,
				expectedStatus: http.StatusServiceUnavailable,
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CheckoutBook(gomock.Any(), bookID, s.userID).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, "Checkout failed")
			})
		}
	})
}

// ================================================================================
// TestReturn
// ================================================================================

func (s *CheckoutHandlerTestSuite) TestReturn() {
	bookID := uuid.New()
	checkoutID := uuid.New()
	url := "/books/" + bookID.String() + "/checkouts/" + checkoutID.String() + "/returned"

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().ReturnBook(gomock.Any(), checkoutID, bookID, s.userID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 Bad Request for invalid checkout UUID", func() {
		invalidURL := "/books/" + bookID.String() + "/checkouts/invalid-uuid/returned"
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, invalidURL, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid checkout id")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
		}{
			{
				name:           "book not found",
				commandsError:  commands.ErrBookNotFound,
				expectedStatus: http.StatusNotFound,
			},
			{
				name:           "not checked out by the user",
				commandsError:  commands.ErrNotCheckedOutByUser,
				expectedStatus: http.StatusUnprocessableEntity,
			},
			{
				name:           "serializable transaction conflict",
				commandsError:  commands.ErrTxConflict,
				expectedStatus: http.StatusServiceUnavailable,
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().ReturnBook(gomock.Any(), checkoutID, bookID, s.userID).
					Return(tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, "Return failed")
			})
		}
	})
}

// ================================================================================
// TestListUnreturned
// ================================================================================

func (s *CheckoutHandlerTestSuite) TestListUnreturned() {
	url := "/books/checkouts"

	views := []*queries.CheckoutView{
		builder.NewCheckoutBuilder().BuildView(),
		builder.NewCheckoutBuilder().BuildView(),
	}

	s.Run("success: returns every active checkout", func() {
		s.mockQueries.EXPECT().ListUnreturned(gomock.Any()).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var body []*resdto.CheckoutResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, len(views))
		s.Equal(views[0].ID.String(), body[0].ID)
		s.Equal(views[0].Book.Title, body[0].Book.Title)
	})

	s.Run("success: returns empty list when nothing is out", func() {
		s.mockQueries.EXPECT().ListUnreturned(gomock.Any()).
			Return([]*queries.CheckoutView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var body []*resdto.CheckoutResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Empty(body)
	})

	s.Run("error: returns 500 Internal Server Error on query error", func() {
		s.mockQueries.EXPECT().ListUnreturned(gomock.Any()).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Failed to list checkouts")
	})
}

// ================================================================================
// TestListMine
// ================================================================================

func (s *CheckoutHandlerTestSuite) TestListMine() {
	url := "/users/me/checkouts"

	s.Run("success: returns the caller's active checkouts", func() {
		views := []*queries.CheckoutView{
			builder.NewCheckoutBuilder().WithHolder(s.userID).BuildView(),
		}
		s.mockQueries.EXPECT().ListUnreturnedByUser(gomock.Any(), s.userID).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var body []*resdto.CheckoutResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 1)
		s.Equal(s.userID.String(), body[0].CheckedOutBy)
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

// ================================================================================
// TestHistory
// ================================================================================

func (s *CheckoutHandlerTestSuite) TestHistory() {
	bookID := uuid.New()
	url := "/books/" + bookID.String() + "/checkout-history"

	base := time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC)

	s.Run("success: active loan first, completed loans afterwards", func() {
		active := builder.NewCheckoutBuilder().WithBookID(bookID).WithCheckedOutAt(base.Add(48 * time.Hour)).BuildView()
		returned := builder.NewCheckoutBuilder().WithBookID(bookID).WithCheckedOutAt(base).AsReturned(base.Add(time.Hour)).BuildView()

		s.mockQueries.EXPECT().HistoryByBook(gomock.Any(), bookID).
			Return([]*queries.CheckoutView{active, returned}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var body []*resdto.CheckoutResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 2)
		s.Equal(active.ID.String(), body[0].ID)
		s.Nil(body[0].ReturnedAt)
		s.Equal(returned.ID.String(), body[1].ID)
		s.NotNil(body[1].ReturnedAt)
	})

	s.Run("error: 400 Bad Request for invalid book UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/books/invalid-uuid/checkout-history", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid book id")
	})

	s.Run("error: 404 Not Found for unknown book", func() {
		s.mockQueries.EXPECT().HistoryByBook(gomock.Any(), bookID).
			Return(nil, queries.ErrBookNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Failed to load history")
	})
}
