package commands

import (
	"context"

	"book-manager/internal/domain/user"
	"book-manager/internal/infra"
	"book-manager/internal/pkg/errs"
	"book-manager/internal/pkg/password"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound     = errs.New("user not found")
	ErrEmailTaken       = errs.New("email already registered")
	ErrWrongPassword    = errs.New("current password does not match")
	ErrUserHasCheckouts = errs.New("user still holds checkouts")
)

type RegisterUserRequest struct {
	Name     string
	Email    string
	Password string
	Role     string
}

type RegisterUserResult struct {
	UserID uuid.UUID
}

type UserCommands interface {
	RegisterUser(ctx context.Context, req RegisterUserRequest) (*RegisterUserResult, error)
	DeleteUser(ctx context.Context, userID uuid.UUID) error
	ChangeRole(ctx context.Context, userID uuid.UUID, role string) error
	ChangePassword(ctx context.Context, userID uuid.UUID, currentPassword, newPassword string) error
}

type userCommandsImpl struct {
	store UserStore
	auth  AuthReader
}

func NewUserCommands(store UserStore, auth AuthReader) UserCommands {
	return &userCommandsImpl{store: store, auth: auth}
}

func (c *userCommandsImpl) RegisterUser(ctx context.Context, req RegisterUserRequest) (*RegisterUserResult, error) {
	email, err := user.NewEmail(req.Email)
	if err != nil {
		return nil, err
	}
	role, err := user.NewRole(req.Role)
	if err != nil {
		return nil, err
	}
	if _, err := user.NewPassword(req.Password); err != nil {
		return nil, err
	}

	hash, err := password.HashPassword(req.Password)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreFailure)
	}

	u, err := user.NewUser(req.Name, email, hash, role)
	if err != nil {
		return nil, err
	}

	if err := c.store.Create(ctx, u); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(err, ErrEmailTaken)
		}
		return nil, errs.Mark(err, ErrStoreFailure)
	}
	return &RegisterUserResult{UserID: u.ID()}, nil
}

func (c *userCommandsImpl) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	if err := c.store.Delete(ctx, userID); err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return errs.Mark(err, ErrUserNotFound)
		case infra.IsKind(err, infra.KindUnprocessable):
			return errs.Mark(err, ErrUserHasCheckouts)
		default:
			return errs.Mark(err, ErrStoreFailure)
		}
	}
	return nil
}

func (c *userCommandsImpl) ChangeRole(ctx context.Context, userID uuid.UUID, roleStr string) error {
	role, err := user.NewRole(roleStr)
	if err != nil {
		return err
	}

	if err := c.store.UpdateRole(ctx, userID, role); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrUserNotFound)
		}
		return errs.Mark(err, ErrStoreFailure)
	}
	return nil
}

func (c *userCommandsImpl) ChangePassword(ctx context.Context, userID uuid.UUID, currentPassword, newPassword string) error {
	authUser, err := c.auth.FindAuthByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrUserNotFound)
		}
		return errs.Mark(err, ErrStoreFailure)
	}

	if err := password.ComparePassword(authUser.PasswordHash, currentPassword); err != nil {
		return errs.Mark(err, ErrWrongPassword)
	}

	if _, err := user.NewPassword(newPassword); err != nil {
		return err
	}
	hash, err := password.HashPassword(newPassword)
	if err != nil {
		return errs.Mark(err, ErrStoreFailure)
	}

	if err := c.store.UpdatePassword(ctx, userID, hash); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrUserNotFound)
		}
		return errs.Mark(err, ErrStoreFailure)
	}
	return nil
}
