package response

import (
	"book-manager/internal/usecase/commands"
)

type LoginResponse struct {
	UserID      string `json:"user_id"`
	AccessToken string `json:"access_token"`
}

func FromLoginResult(r *commands.LoginResult) *LoginResponse {
	return &LoginResponse{
		UserID:      r.UserID.String(),
		AccessToken: r.AccessToken,
	}
}
