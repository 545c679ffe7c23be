package commands

import (
	"context"
	"time"

	"book-manager/internal/domain/book"
	"book-manager/internal/domain/checkout"
	"book-manager/internal/domain/user"

	"github.com/google/uuid"
)

// Write-side ports. Implementations live under internal/infra; each operation
// owns its own transaction scope.

type CheckoutStore interface {
	Create(ctx context.Context, event checkout.CreateCheckout) (uuid.UUID, error)
	Return(ctx context.Context, event checkout.ReturnCheckout) error
}

type BookStore interface {
	Create(ctx context.Context, b *book.Book) error
	Update(ctx context.Context, b *book.Book) error
	Delete(ctx context.Context, bookID uuid.UUID) error
}

type UserStore interface {
	Create(ctx context.Context, u *user.User) error
	Delete(ctx context.Context, userID uuid.UUID) error
	UpdateRole(ctx context.Context, userID uuid.UUID, role user.Role) error
	UpdatePassword(ctx context.Context, userID uuid.UUID, passwordHash string) error
}

// TokenStore maps opaque access tokens to user ids with a TTL.
type TokenStore interface {
	SetToken(ctx context.Context, token string, userID uuid.UUID, ttl time.Duration) error
	DeleteToken(ctx context.Context, token string) error
}

// AuthUser is the write-side credential snapshot; the hash never crosses the
// handler boundary.
type AuthUser struct {
	ID           uuid.UUID
	PasswordHash string
	Role         string
}

type AuthReader interface {
	FindAuthByEmail(ctx context.Context, email string) (*AuthUser, error)
	FindAuthByID(ctx context.Context, userID uuid.UUID) (*AuthUser, error)
}
