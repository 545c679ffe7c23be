package repository

import (
	"context"
	"errors"

	"book-manager/internal/domain/user"
	"book-manager/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const pgErrCodeUniqueViolation = "23505"

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	tag, err := r.pool.Exec(ctx, `
INSERT INTO users (user_id, name, email, password_hash, role_id)
VALUES ($1, $2, $3, $4, (SELECT role_id FROM roles WHERE name = $5))`,
		u.ID(), u.Name(), u.Email().Value(), u.PasswordHash(), u.Role().String(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return infra.WrapRepoErr("email already registered", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to insert user", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("no user record has been created", nil, infra.KindNoRowsAffected)
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, userID uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM users WHERE user_id = $1`, userID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return infra.WrapRepoErr("user still holds checkouts", err, infra.KindUnprocessable)
		}
		return infra.WrapRepoErr("failed to delete user", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *UserRepository) UpdateRole(ctx context.Context, userID uuid.UUID, role user.Role) error {
	tag, err := r.pool.Exec(ctx, `
UPDATE users
SET role_id = (SELECT role_id FROM roles WHERE name = $2), updated_at = NOW()
WHERE user_id = $1`,
		userID, role.String(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update user role", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *UserRepository) UpdatePassword(ctx context.Context, userID uuid.UUID, passwordHash string) error {
	tag, err := r.pool.Exec(ctx, `
UPDATE users
SET password_hash = $2, updated_at = NOW()
WHERE user_id = $1`,
		userID, passwordHash,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update user password", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgErrCodeUniqueViolation
}
