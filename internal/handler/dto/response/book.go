package response

import (
	"book-manager/internal/usecase/queries"
)

type BookOwnerResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type BookCheckoutResponse struct {
	ID           string `json:"id"`
	CheckedOutBy string `json:"checked_out_by"`
	CheckedOutAt int64  `json:"checked_out_at"`
}

type BookResponse struct {
	ID          string                `json:"id"`
	Title       string                `json:"title"`
	Author      string                `json:"author"`
	ISBN        string                `json:"isbn"`
	Description string                `json:"description"`
	Owner       BookOwnerResponse     `json:"owner"`
	Checkout    *BookCheckoutResponse `json:"checkout,omitempty"`
	CreatedAt   int64                 `json:"created_at"`
	UpdatedAt   int64                 `json:"updated_at"`
}

type PaginatedBookResponse struct {
	Total  int64           `json:"total"`
	Limit  int             `json:"limit"`
	Offset int             `json:"offset"`
	Items  []*BookResponse `json:"items"`
}

type CreatedBookResponse struct {
	ID string `json:"id"`
}

func FromBookView(v *queries.BookView) *BookResponse {
	resp := &BookResponse{
		ID:          v.ID.String(),
		Title:       v.Title,
		Author:      v.Author,
		ISBN:        v.ISBN,
		Description: v.Description,
		Owner: BookOwnerResponse{
			ID:   v.Owner.ID.String(),
			Name: v.Owner.Name,
		},
		CreatedAt: v.CreatedAt.Unix(),
		UpdatedAt: v.UpdatedAt.Unix(),
	}
	if v.Checkout != nil {
		resp.Checkout = &BookCheckoutResponse{
			ID:           v.Checkout.ID.String(),
			CheckedOutBy: v.Checkout.CheckedOutBy.String(),
			CheckedOutAt: v.Checkout.CheckedOutAt.Unix(),
		}
	}
	return resp
}

func FromBookPage(p *queries.BookPage) *PaginatedBookResponse {
	items := make([]*BookResponse, len(p.Items))
	for i, v := range p.Items {
		items[i] = FromBookView(v)
	}
	return &PaginatedBookResponse{
		Total:  p.Total,
		Limit:  p.Limit,
		Offset: p.Offset,
		Items:  items,
	}
}
