//go:build unit

package checkout_test

import (
	"testing"

	"book-manager/internal/domain/checkout"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func ptr(id uuid.UUID) *uuid.UUID { return &id }

func TestState(t *testing.T) {
	bookID := uuid.New()
	checkoutID := uuid.New()
	holderID := uuid.New()

	t.Run("貸出可否の判定", func(t *testing.T) {
		cases := []struct {
			name  string
			state checkout.State
			errIs error
		}{
			{
				name:  "未貸出の書籍は貸出OK",
				state: checkout.State{BookID: bookID},
			},
			{
				name:  "貸出中の書籍はNG",
				state: checkout.State{BookID: bookID, CheckoutID: ptr(checkoutID), HolderID: ptr(holderID)},
				errIs: checkout.ErrAlreadyCheckedOut,
			},
		}

		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				err := c.state.ValidateCheckout()
				if c.errIs == nil {
					require.NoError(t, err)
				} else {
					require.ErrorIs(t, err, c.errIs)
				}
			})
		}
	})

	t.Run("返却可否の判定", func(t *testing.T) {
		held := checkout.State{BookID: bookID, CheckoutID: ptr(checkoutID), HolderID: ptr(holderID)}

		cases := []struct {
			name       string
			state      checkout.State
			checkoutID uuid.UUID
			returnedBy uuid.UUID
			errIs      error
		}{
			{
				name:       "貸出IDと利用者が一致すればOK",
				state:      held,
				checkoutID: checkoutID,
				returnedBy: holderID,
			},
			{
				name:       "貸出IDの不一致はNG",
				state:      held,
				checkoutID: uuid.New(),
				returnedBy: holderID,
				errIs:      checkout.ErrNotHeldByUser,
			},
			{
				name:       "他人の貸出の返却はNG",
				state:      held,
				checkoutID: checkoutID,
				returnedBy: uuid.New(),
				errIs:      checkout.ErrNotHeldByUser,
			},
			{
				name:       "未貸出の書籍の返却はNG",
				state:      checkout.State{BookID: bookID},
				checkoutID: checkoutID,
				returnedBy: holderID,
				errIs:      checkout.ErrNotHeldByUser,
			},
		}

		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				err := c.state.ValidateReturn(c.checkoutID, c.returnedBy)
				if c.errIs == nil {
					require.NoError(t, err)
				} else {
					require.ErrorIs(t, err, c.errIs)
				}
			})
		}
	})
}
