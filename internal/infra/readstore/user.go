package readstore

import (
	"context"
	"errors"

	"book-manager/internal/infra"
	"book-manager/internal/usecase/commands"
	"book-manager/internal/usecase/queries"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserReadStore struct {
	pool *pgxpool.Pool
}

func NewUserReadStore(pool *pgxpool.Pool) *UserReadStore {
	return &UserReadStore{pool: pool}
}

func userViewDataset() *goqu.SelectDataset {
	return dialect.
		From(goqu.T("users").As("u")).
		Join(goqu.T("roles").As("r"), goqu.On(goqu.I("u.role_id").Eq(goqu.I("r.role_id")))).
		Select(
			goqu.I("u.user_id"),
			goqu.I("u.name"),
			goqu.I("u.email"),
			goqu.I("r.name"),
			goqu.I("u.created_at"),
		)
}

func (r *UserReadStore) FindAll(ctx context.Context) ([]*queries.UserView, error) {
	stmt := userViewDataset().Order(goqu.I("u.created_at").Desc())

	sql, args, err := stmt.Prepared(true).ToSQL()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build users query", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query users", err)
	}
	defer rows.Close()

	var views []*queries.UserView
	for rows.Next() {
		var v queries.UserView
		if err := rows.Scan(&v.ID, &v.Name, &v.Email, &v.Role, &v.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan user row", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read user rows", err)
	}
	return views, nil
}

func (r *UserReadStore) FindByID(ctx context.Context, userID uuid.UUID) (*queries.UserView, error) {
	stmt := userViewDataset().Where(goqu.I("u.user_id").Eq(userID))

	sql, args, err := stmt.Prepared(true).ToSQL()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build user query", err)
	}

	var v queries.UserView
	err = r.pool.QueryRow(ctx, sql, args...).Scan(&v.ID, &v.Name, &v.Email, &v.Role, &v.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get user by id", err)
	}
	return &v, nil
}

const authUserQuery = `
SELECT u.user_id, u.password_hash, r.name
FROM users AS u
INNER JOIN roles AS r USING (role_id)`

// FindAuthByEmail backs login; the hash never leaves the command layer.
func (r *UserReadStore) FindAuthByEmail(ctx context.Context, email string) (*commands.AuthUser, error) {
	return r.scanAuthUser(r.pool.QueryRow(ctx, authUserQuery+` WHERE u.email = $1`, email))
}

// FindAuthByID backs password change verification.
func (r *UserReadStore) FindAuthByID(ctx context.Context, userID uuid.UUID) (*commands.AuthUser, error) {
	return r.scanAuthUser(r.pool.QueryRow(ctx, authUserQuery+` WHERE u.user_id = $1`, userID))
}

func (r *UserReadStore) scanAuthUser(row pgx.Row) (*commands.AuthUser, error) {
	var u commands.AuthUser
	if err := row.Scan(&u.ID, &u.PasswordHash, &u.Role); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get auth user", err)
	}
	return &u, nil
}
