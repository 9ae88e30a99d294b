package request

import (
	"hotel-backoffice/internal/domain/user"
)

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"omitempty,oneof=admin staff guest"`
}

func (r RegisterRequest) ToDomain() (user.Email, user.Password, user.Role, error) {
	email, err := user.NewEmail(r.Email)
	if err != nil {
		return user.Email{}, user.Password{}, "", err
	}
	password, err := user.NewPassword(r.Password)
	if err != nil {
		return user.Email{}, user.Password{}, "", err
	}
	role := user.RoleStaff
	if r.Role != "" {
		role, err = user.NewRole(r.Role)
		if err != nil {
			return user.Email{}, user.Password{}, "", err
		}
	}
	return email, password, role, nil
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (r LoginRequest) ToDomain() (user.Credentials, error) {
	email, err := user.NewEmail(r.Email)
	if err != nil {
		return user.Credentials{}, err
	}
	password, err := user.NewPassword(r.Password)
	if err != nil {
		return user.Credentials{}, err
	}
	return user.NewCredentials(email, password), nil
}
