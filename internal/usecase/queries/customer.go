package queries

import (
	"context"

	"github.com/google/uuid"

	"hotel-backoffice/internal/domain/customer"
)

func NewCustomerView(c *customer.Customer) *CustomerView {
	return &CustomerView{
		ID:        c.ID(),
		FirstName: c.FirstName(),
		LastName:  c.LastName(),
		Email:     c.Email(),
		Phone:     c.Phone(),
		CreatedAt: c.CreatedAt(),
		UpdatedAt: c.UpdatedAt(),
	}
}

type CustomerQueries interface {
	List(ctx context.Context) ([]*CustomerView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*CustomerView, error)
}

type CustomerViewRepo interface {
	List(ctx context.Context) ([]*CustomerView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*customer.Customer, error)
}

type customerQueriesImpl struct {
	repo CustomerViewRepo
}

func NewCustomerQueries(repo CustomerViewRepo) CustomerQueries {
	return &customerQueriesImpl{repo: repo}
}

func (q *customerQueriesImpl) List(ctx context.Context) ([]*CustomerView, error) {
	return q.repo.List(ctx)
}

func (q *customerQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*CustomerView, error) {
	entity, err := q.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return NewCustomerView(entity), nil
}
