//go:build unit || e2e

package builder

import (
	reqdto "hotel-backoffice/internal/handler/dto/request"
)

type AuthBuilder struct {
	Email    string
	Password string
	Role     string
}

func NewAuthBuilder() *AuthBuilder {
	return &AuthBuilder{
		Email:    "staff@hotel.example",
		Password: "password123",
		Role:     "staff",
	}
}

func (a *AuthBuilder) With(mutate func(*AuthBuilder)) *AuthBuilder {
	mutate(a)
	return a
}

func (a *AuthBuilder) BuildLoginDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Email:    a.Email,
		Password: a.Password,
	}
}

func (a *AuthBuilder) BuildRegisterDTO() reqdto.RegisterRequest {
	return reqdto.RegisterRequest{
		Email:    a.Email,
		Password: a.Password,
		Role:     a.Role,
	}
}
