package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"

	"hotel-backoffice/internal/usecase/queries"
)

type CustomerResponse struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func FromCustomerView(v *queries.CustomerView) *CustomerResponse {
	var resp CustomerResponse
	_ = copier.Copy(&resp, v)
	return &resp
}

func FromCustomerViews(views []*queries.CustomerView) []*CustomerResponse {
	out := make([]*CustomerResponse, len(views))
	for i, v := range views {
		out[i] = FromCustomerView(v)
	}
	return out
}
