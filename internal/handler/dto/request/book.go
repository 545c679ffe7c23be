package request

import (
	"book-manager/internal/usecase/commands"
)

type CreateBookRequest struct {
	Title       string `json:"title" binding:"required,max=255"`
	Author      string `json:"author" binding:"required,max=255"`
	ISBN        string `json:"isbn" binding:"required"`
	Description string `json:"description" binding:"max=1024"`
}

type UpdateBookRequest struct {
	Title       *string `json:"title" binding:"omitempty,max=255"`
	Author      *string `json:"author" binding:"omitempty,max=255"`
	ISBN        *string `json:"isbn" binding:"omitempty"`
	Description *string `json:"description" binding:"omitempty,max=1024"`
}

func (r *CreateBookRequest) ToCommand() commands.RegisterBookRequest {
	return commands.RegisterBookRequest{
		Title:       r.Title,
		Author:      r.Author,
		ISBN:        r.ISBN,
		Description: r.Description,
	}
}

func (r *UpdateBookRequest) ToCommand() commands.UpdateBookRequest {
	return commands.UpdateBookRequest{
		Title:       r.Title,
		Author:      r.Author,
		ISBN:        r.ISBN,
		Description: r.Description,
	}
}
