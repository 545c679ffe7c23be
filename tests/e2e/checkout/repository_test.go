//go:build e2e

package checkout_test

import (
	"context"
	"testing"
	"time"

	"book-manager/internal/domain/checkout"
	"book-manager/internal/infra"
	"book-manager/internal/infra/readstore"
	"book-manager/internal/infra/repository"
	"book-manager/tests/common/dbtest"
	"book-manager/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// リポジトリを直接駆動して、HTTP 層では再現しづらい失敗パスを検証する
type CheckoutRepositorySuite struct {
	e2e.SharedSuite
}

func (s *CheckoutRepositorySuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestCheckoutRepositorySuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(CheckoutRepositorySuite))
}

// =============================================================================
// TestCreateAtomicity - rollback leaves no partial state
// =============================================================================

func (s *CheckoutRepositorySuite) TestCreateAtomicity() {
	s.Run("Abnormal case: Failed insert after validation leaves no checkout row", func() {
		t := s.T()
		ctx := context.Background()

		ownerID := dbtest.CreateTestUser(t, s.DB, "shelf-owner@example.com", "user")
		bookID := dbtest.CreateTestBook(t, s.DB, ownerID, "Atomic Habits")

		repo := repository.NewCheckoutRepository(s.DB)

		// 存在しない user_id で FK 違反を踏ませる。検証読み取りは通過し、
		// INSERT がトランザクション内で失敗する
		_, err := repo.Create(ctx, checkout.CreateCheckout{
			BookID:       bookID,
			CheckedOutBy: uuid.New(),
			CheckedOutAt: time.Now(),
		})
		require.Error(t, err)
		require.False(t, infra.IsKind(err, infra.KindNotFound))

		var count int
		require.NoError(t, s.DB.QueryRow(ctx,
			"SELECT COUNT(*) FROM checkouts WHERE book_id = $1", bookID).Scan(&count))
		require.Equal(t, 0, count, "ロールバック後に checkout 行が残ってはならない")
	})

	s.Run("Abnormal case: Failed return leaves the active checkout untouched", func() {
		t := s.T()
		ctx := context.Background()

		ownerID := dbtest.CreateTestUser(t, s.DB, "holder@example.com", "user")
		bookID := dbtest.CreateTestBook(t, s.DB, ownerID, "Long Loan")
		checkoutID := dbtest.CreateTestCheckout(t, s.DB, bookID, ownerID, time.Now().Add(-24*time.Hour))

		repo := repository.NewCheckoutRepository(s.DB)

		// checkout_id の不一致で検証が落ちる。アクティブ行も履歴も変化しない
		err := repo.Return(ctx, checkout.ReturnCheckout{
			CheckoutID: uuid.New(),
			BookID:     bookID,
			ReturnedBy: ownerID,
			ReturnedAt: time.Now(),
		})
		require.Error(t, err)
		require.True(t, infra.IsKind(err, infra.KindUnprocessable))

		var active, returned int
		require.NoError(t, s.DB.QueryRow(ctx,
			"SELECT COUNT(*) FROM checkouts WHERE checkout_id = $1", checkoutID).Scan(&active))
		require.NoError(t, s.DB.QueryRow(ctx,
			"SELECT COUNT(*) FROM returned_checkouts WHERE book_id = $1", bookID).Scan(&returned))
		require.Equal(t, 1, active)
		require.Equal(t, 0, returned)
	})
}

// =============================================================================
// TestIdempotentReads - repeated reads observe identical state
// =============================================================================

func (s *CheckoutRepositorySuite) TestIdempotentReads() {
	s.Run("Normal case: FindUnreturnedAll is stable across repeated reads", func() {
		t := s.T()
		ctx := context.Background()

		aliceID := dbtest.CreateTestUser(t, s.DB, "alice-reader@example.com", "user")
		bobID := dbtest.CreateTestUser(t, s.DB, "bob-reader@example.com", "user")
		firstBook := dbtest.CreateTestBook(t, s.DB, aliceID, "First Edition")
		secondBook := dbtest.CreateTestBook(t, s.DB, bobID, "Second Edition")

		base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
		dbtest.CreateTestCheckout(t, s.DB, firstBook, aliceID, base)
		dbtest.CreateTestCheckout(t, s.DB, secondBook, bobID, base.Add(time.Hour))

		store := readstore.NewCheckoutReadStore(s.DB)

		first, err := store.FindUnreturnedAll(ctx)
		require.NoError(t, err)
		require.Len(t, first, 2)
		// checked_out_at 昇順
		require.Equal(t, firstBook, first[0].Book.ID)
		require.Equal(t, secondBook, first[1].Book.ID)

		second, err := store.FindUnreturnedAll(ctx)
		require.NoError(t, err)
		require.Equal(t, first, second, "書き込みがなければ連続読み取りは同一の結果を返す")
	})

	s.Run("Normal case: History reads are stable and ordered", func() {
		t := s.T()
		ctx := context.Background()

		readerID := dbtest.CreateTestUser(t, s.DB, "history-reader@example.com", "user")
		bookID := dbtest.CreateTestBook(t, s.DB, readerID, "Well-Thumbed")
		dbtest.CreateTestCheckout(t, s.DB, bookID, readerID, time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC))

		store := readstore.NewCheckoutReadStore(s.DB)

		first, err := store.FindUnreturnedByBookID(ctx, bookID)
		require.NoError(t, err)
		require.NotNil(t, first)

		second, err := store.FindUnreturnedByBookID(ctx, bookID)
		require.NoError(t, err)
		require.Equal(t, first, second)
	})
}
