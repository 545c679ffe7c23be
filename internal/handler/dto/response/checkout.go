package response

import (
	"book-manager/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type CheckoutBookResponse struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
	ISBN   string `json:"isbn"`
}

type CheckoutResponse struct {
	ID           string               `json:"id"`
	CheckedOutBy string               `json:"checked_out_by"`
	CheckedOutAt int64                `json:"checked_out_at"`
	ReturnedAt   *int64               `json:"returned_at,omitempty"`
	Book         CheckoutBookResponse `json:"book"`
}

type CreatedCheckoutResponse struct {
	ID string `json:"id"`
}

func FromCheckoutView(v *queries.CheckoutView) *CheckoutResponse {
	resp := &CheckoutResponse{
		ID:           v.ID.String(),
		CheckedOutBy: v.CheckedOutBy.String(),
		CheckedOutAt: v.CheckedOutAt.Unix(),
	}
	if v.ReturnedAt != nil {
		returnedAt := v.ReturnedAt.Unix()
		resp.ReturnedAt = &returnedAt
	}
	_ = copier.Copy(&resp.Book, &v.Book)
	resp.Book.ID = v.Book.ID.String()
	return resp
}

func FromCheckoutList(views []*queries.CheckoutView) []*CheckoutResponse {
	res := make([]*CheckoutResponse, len(views))
	for i, v := range views {
		res[i] = FromCheckoutView(v)
	}
	return res
}
