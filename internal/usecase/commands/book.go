package commands

import (
	"context"

	"book-manager/internal/domain/book"
	"book-manager/internal/domain/user"
	"book-manager/internal/infra"
	"book-manager/internal/pkg/errs"
	"book-manager/internal/pkg/patch"
	"book-manager/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrBookNotOwned   = errs.New("book not owned by user")
	ErrBookCheckedOut = errs.New("book has an active checkout")
)

type RegisterBookRequest struct {
	Title       string
	Author      string
	ISBN        string
	Description string
}

// Nil fields keep their current value.
type UpdateBookRequest struct {
	Title       *string
	Author      *string
	ISBN        *string
	Description *string
}

type RegisterBookResult struct {
	BookID uuid.UUID
}

type BookCommands interface {
	RegisterBook(ctx context.Context, req RegisterBookRequest, ownerID uuid.UUID) (*RegisterBookResult, error)
	UpdateBook(ctx context.Context, bookID uuid.UUID, req UpdateBookRequest, actorID uuid.UUID, actorRole string) error
	DeleteBook(ctx context.Context, bookID uuid.UUID, actorID uuid.UUID, actorRole string) error
}

type BookReader interface {
	FindByID(ctx context.Context, bookID uuid.UUID) (*queries.BookView, error)
}

type bookCommandsImpl struct {
	store  BookStore
	reader BookReader
}

func NewBookCommands(store BookStore, reader BookReader) BookCommands {
	return &bookCommandsImpl{store: store, reader: reader}
}

func (c *bookCommandsImpl) RegisterBook(ctx context.Context, req RegisterBookRequest, ownerID uuid.UUID) (*RegisterBookResult, error) {
	isbn, err := book.NewISBN(req.ISBN)
	if err != nil {
		return nil, err
	}

	b, err := book.NewBook(req.Title, req.Author, isbn, req.Description, ownerID)
	if err != nil {
		return nil, err
	}

	if err := c.store.Create(ctx, b); err != nil {
		return nil, markBookErr(err)
	}
	return &RegisterBookResult{BookID: b.ID()}, nil
}

func (c *bookCommandsImpl) UpdateBook(ctx context.Context, bookID uuid.UUID, req UpdateBookRequest, actorID uuid.UUID, actorRole string) error {
	current, err := c.authorizeOwner(ctx, bookID, actorID, actorRole)
	if err != nil {
		return err
	}

	isbn, err := book.NewISBN(patch.Coalesce(req.ISBN, current.ISBN))
	if err != nil {
		return err
	}

	updated := book.ReconstructBook(
		current.ID, current.Title, current.Author, isbn,
		current.Description, current.Owner.ID, current.CreatedAt, current.UpdatedAt,
	)
	if err := updated.Update(
		patch.Coalesce(req.Title, current.Title),
		patch.Coalesce(req.Author, current.Author),
		isbn,
		patch.Coalesce(req.Description, current.Description),
	); err != nil {
		return err
	}

	if err := c.store.Update(ctx, updated); err != nil {
		return markBookErr(err)
	}
	return nil
}

func (c *bookCommandsImpl) DeleteBook(ctx context.Context, bookID uuid.UUID, actorID uuid.UUID, actorRole string) error {
	if _, err := c.authorizeOwner(ctx, bookID, actorID, actorRole); err != nil {
		return err
	}

	if err := c.store.Delete(ctx, bookID); err != nil {
		return markBookErr(err)
	}
	return nil
}

// Only the registering owner or an admin may modify a book.
func (c *bookCommandsImpl) authorizeOwner(ctx context.Context, bookID, actorID uuid.UUID, actorRole string) (*queries.BookView, error) {
	view, err := c.reader.FindByID(ctx, bookID)
	if err != nil {
		return nil, markBookErr(err)
	}
	if view.Owner.ID != actorID && actorRole != user.RoleAdmin.String() {
		return nil, errs.Mark(errs.New("actor is not the book owner"), ErrBookNotOwned)
	}
	return view, nil
}

func markBookErr(err error) error {
	switch {
	case infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, ErrBookNotFound)
	case infra.IsKind(err, infra.KindUnprocessable):
		return errs.Mark(err, ErrBookCheckedOut)
	default:
		return errs.Mark(err, ErrStoreFailure)
	}
}
