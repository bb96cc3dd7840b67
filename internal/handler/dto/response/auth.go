package response

import (
	"cinema-pos/internal/usecase/commands"

	"github.com/google/uuid"
)

type LoginResponse struct {
	Token  string    `json:"token"`
	UserID uuid.UUID `json:"userId"`
	Role   string    `json:"role"`
}

func FromLoginResult(result *commands.LoginResult) *LoginResponse {
	return &LoginResponse{
		Token:  result.Token,
		UserID: result.UserID,
		Role:   string(result.Role),
	}
}
