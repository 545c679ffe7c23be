package response

import (
	"book-manager/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type UserResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	CreatedAt int64  `json:"created_at"`
}

type CreatedUserResponse struct {
	ID string `json:"id"`
}

func FromUserView(v *queries.UserView) *UserResponse {
	resp := &UserResponse{}
	_ = copier.Copy(resp, v)
	resp.ID = v.ID.String()
	resp.CreatedAt = v.CreatedAt.Unix()
	return resp
}

func FromUserList(views []*queries.UserView) []*UserResponse {
	res := make([]*UserResponse, len(views))
	for i, v := range views {
		res[i] = FromUserView(v)
	}
	return res
}
