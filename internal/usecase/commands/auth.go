package commands

import (
	"context"
	"strings"
	"time"

	"book-manager/internal/domain/user"
	"book-manager/internal/infra"
	"book-manager/internal/pkg/errs"
	"book-manager/internal/pkg/password"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials = errs.New("invalid credentials")
	ErrSessionStore       = errs.New("session store failure")
)

type LoginResult struct {
	UserID      uuid.UUID
	AccessToken string
}

type AuthCommands interface {
	Login(ctx context.Context, email, pass string) (*LoginResult, error)
	Logout(ctx context.Context, token string) error
}

type authCommandsImpl struct {
	reader   AuthReader
	tokens   TokenStore
	tokenTTL time.Duration
}

func NewAuthCommands(reader AuthReader, tokens TokenStore, tokenTTL time.Duration) AuthCommands {
	return &authCommandsImpl{reader: reader, tokens: tokens, tokenTTL: tokenTTL}
}

func (a *authCommandsImpl) Login(ctx context.Context, email, pass string) (*LoginResult, error) {
	creds, err := user.NewCredentials(email, pass)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}

	authUser, err := a.reader.FindAuthByEmail(ctx, creds.Email().Value())
	if err != nil {
		// Unknown emails and bad passwords are indistinguishable to the caller.
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrInvalidCredentials)
		}
		return nil, errs.Mark(err, ErrStoreFailure)
	}

	if err := password.ComparePassword(authUser.PasswordHash, creds.Password().Value()); err != nil {
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}

	token := newAccessToken()
	if err := a.tokens.SetToken(ctx, token, authUser.ID, a.tokenTTL); err != nil {
		return nil, errs.Mark(err, ErrSessionStore)
	}

	return &LoginResult{UserID: authUser.ID, AccessToken: token}, nil
}

func (a *authCommandsImpl) Logout(ctx context.Context, token string) error {
	if err := a.tokens.DeleteToken(ctx, token); err != nil {
		return errs.Mark(err, ErrSessionStore)
	}
	return nil
}

// Opaque bearer token; its only meaning is the Redis entry it points at.
func newAccessToken() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")
}
