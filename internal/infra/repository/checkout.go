package repository

import (
	"context"
	"errors"
	"log/slog"

	"book-manager/internal/domain/checkout"
	"book-manager/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

// CheckoutRepository executes the two state-changing circulation operations.
// Cross-request mutual exclusion for the same book is delegated entirely to
// serializable transaction isolation; there is no in-process locking.
type CheckoutRepository struct {
	pool *pgxpool.Pool
}

func NewCheckoutRepository(pool *pgxpool.Pool) *CheckoutRepository {
	return &CheckoutRepository{pool: pool}
}

// Projection of books LEFT OUTER JOIN checkouts for one book. checkout_id and
// user_id are NULL when the book sits on the shelf.
const checkoutStateQuery = `
SELECT b.book_id, c.checkout_id, c.user_id
FROM books AS b
LEFT OUTER JOIN checkouts AS c USING (book_id)
WHERE b.book_id = $1`

// Create lends a book out. The existence check and the insert observe one
// serializable snapshot, so two concurrent checkouts of the same book cannot
// both pass validation; the loser aborts with a retryable TX_FAILURE.
func (r *CheckoutRepository) Create(ctx context.Context, event checkout.CreateCheckout) (uuid.UUID, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to begin checkout transaction", err, infra.KindTxFailure)
	}
	defer rollback(ctx, tx)

	state, err := r.readState(ctx, tx, event.BookID)
	if err != nil {
		return uuid.Nil, err
	}

	if err := state.ValidateCheckout(); err != nil {
		return uuid.Nil, infra.WrapRepoErr("book already checked out", err, infra.KindUnprocessable)
	}

	checkoutID := uuid.New()
	tag, err := tx.Exec(ctx, `
INSERT INTO checkouts (checkout_id, book_id, user_id, checked_out_at)
VALUES ($1, $2, $3, $4)`,
		checkoutID, event.BookID, event.CheckedOutBy, event.CheckedOutAt,
	)
	if err != nil {
		return uuid.Nil, wrapStoreErr("failed to insert checkout", err)
	}
	if tag.RowsAffected() == 0 {
		return uuid.Nil, infra.WrapRepoErr("no checkout record has been created", nil, infra.KindNoRowsAffected)
	}

	if err := tx.Commit(ctx); err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to commit checkout", err, infra.KindTxFailure)
	}

	return checkoutID, nil
}

// Return moves the active checkout into the returned history. The returned row
// copies the active row's fields so history survives the delete that follows.
func (r *CheckoutRepository) Return(ctx context.Context, event checkout.ReturnCheckout) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return infra.WrapRepoErr("failed to begin return transaction", err, infra.KindTxFailure)
	}
	defer rollback(ctx, tx)

	state, err := r.readState(ctx, tx, event.BookID)
	if err != nil {
		return err
	}

	if err := state.ValidateReturn(event.CheckoutID, event.ReturnedBy); err != nil {
		return infra.WrapRepoErr("book not checked out by the user", err, infra.KindUnprocessable)
	}

	tag, err := tx.Exec(ctx, `
INSERT INTO returned_checkouts (checkout_id, book_id, user_id, checked_out_at, returned_at)
SELECT checkout_id, book_id, user_id, checked_out_at, $2
FROM checkouts
WHERE checkout_id = $1`,
		event.CheckoutID, event.ReturnedAt,
	)
	if err != nil {
		return wrapStoreErr("failed to insert returned checkout", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("no returned record has been created", nil, infra.KindNoRowsAffected)
	}

	tag, err = tx.Exec(ctx, `DELETE FROM checkouts WHERE checkout_id = $1`, event.CheckoutID)
	if err != nil {
		return wrapStoreErr("failed to delete checkout", err)
	}
	if tag.RowsAffected() == 0 {
		// The active row vanished between the validation read and the delete.
		// Serializable isolation should make this impossible; report rather
		// than silently no-op.
		return infra.WrapRepoErr("no checkout record has been deleted", nil, infra.KindNoRowsAffected)
	}

	if err := tx.Commit(ctx); err != nil {
		return infra.WrapRepoErr("failed to commit return", err, infra.KindTxFailure)
	}

	return nil
}

func (r *CheckoutRepository) readState(ctx context.Context, tx pgx.Tx, bookID uuid.UUID) (checkout.State, error) {
	var state checkout.State
	err := tx.QueryRow(ctx, checkoutStateQuery, bookID).
		Scan(&state.BookID, &state.CheckoutID, &state.HolderID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return checkout.State{}, infra.WrapRepoErr("book not found", err, infra.KindNotFound)
		}
		return checkout.State{}, wrapStoreErr("failed to read checkout state", err)
	}
	return state, nil
}

// Serialization conflicts can surface on any statement inside the transaction,
// not only at commit; classify them as TX_FAILURE so callers treat them as
// retryable rather than as a store fault.
func wrapStoreErr(msg string, err error) error {
	if isSerializationFailure(err) {
		return infra.WrapRepoErr(msg, err, infra.KindTxFailure)
	}
	return infra.WrapRepoErr(msg, err)
}

func isSerializationFailure(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

func rollback(ctx context.Context, tx pgx.Tx) {
	if err := tx.Rollback(ctx); err != nil {
		if !errors.Is(err, pgx.ErrTxClosed) {
			slog.Warn("failed to rollback transaction", "error", err.Error())
		}
	}
}
