package usecase

import (
	"context"

	"book-manager/internal/domain/user"
	"book-manager/internal/infra"
	"book-manager/internal/pkg/errs"
	"book-manager/internal/usecase/commands"

	"github.com/google/uuid"
)

var ErrInvalidToken = errs.New("invalid or expired token")

// TokenValidator resolves an opaque bearer token for middleware. The token
// itself carries nothing; Redis maps it to a user and the role comes from the
// database, so role changes take effect on the next request.
type TokenValidator interface {
	ValidateToken(ctx context.Context, token string) (uuid.UUID, user.Role, error)
}

type TokenResolver interface {
	GetToken(ctx context.Context, token string) (*uuid.UUID, error)
}

type tokenValidatorImpl struct {
	resolver TokenResolver
	reader   commands.AuthReader
}

func NewTokenValidator(resolver TokenResolver, reader commands.AuthReader) TokenValidator {
	return &tokenValidatorImpl{resolver: resolver, reader: reader}
}

func (t *tokenValidatorImpl) ValidateToken(ctx context.Context, token string) (uuid.UUID, user.Role, error) {
	userID, err := t.resolver.GetToken(ctx, token)
	if err != nil {
		return uuid.Nil, "", errs.Mark(err, ErrInvalidToken)
	}
	if userID == nil {
		return uuid.Nil, "", ErrInvalidToken
	}

	authUser, err := t.reader.FindAuthByID(ctx, *userID)
	if err != nil {
		// The session outlived the account.
		if infra.IsKind(err, infra.KindNotFound) {
			return uuid.Nil, "", errs.Mark(err, ErrInvalidToken)
		}
		return uuid.Nil, "", err
	}

	role, err := user.NewRole(authUser.Role)
	if err != nil {
		return uuid.Nil, "", err
	}

	return authUser.ID, role, nil
}
