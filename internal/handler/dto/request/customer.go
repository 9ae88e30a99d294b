package request

import (
	"hotel-backoffice/internal/domain/customer"
)

type CreateCustomerRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Email     string `json:"email" binding:"omitempty,email"`
	Phone     string `json:"phone"`
}

func (r CreateCustomerRequest) ToDomain() (*customer.Customer, error) {
	return customer.New(r.FirstName, r.LastName, r.Email, r.Phone)
}

type UpdateCustomerRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email" binding:"omitempty,email"`
	Phone     *string `json:"phone"`
}
