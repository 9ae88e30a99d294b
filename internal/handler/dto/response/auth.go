package response

import (
	"github.com/google/uuid"

	"hotel-backoffice/internal/usecase/commands"
	"hotel-backoffice/internal/usecase/queries"
)

type UserResponse struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	IsActive bool      `json:"isActive"`
}

func FromUserView(v *queries.UserView) *UserResponse {
	return &UserResponse{
		ID:       v.ID,
		Email:    v.Email,
		Role:     v.Role,
		IsActive: v.IsActive,
	}
}

type AuthResponse struct {
	AccessToken string        `json:"accessToken"`
	User        *UserResponse `json:"user"`
}

func FromAuthResult(result *commands.AuthResult) *AuthResponse {
	return &AuthResponse{
		AccessToken: result.Token,
		User:        FromUserView(result.User),
	}
}
