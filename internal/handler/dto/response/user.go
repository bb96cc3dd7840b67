package response

import (
	"cinema-pos/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreatedUserResponse struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Role  string    `json:"role"`
}

func FromCreateUserResult(rm *commands.CreateUserResult) *CreatedUserResponse {
	return &CreatedUserResponse{
		ID:    rm.UserID,
		Email: rm.Email,
		Role:  rm.Role.String(),
	}
}
