package commands

import (
	"context"

	"github.com/google/uuid"

	"hotel-backoffice/internal/domain/customer"
	reqdto "hotel-backoffice/internal/handler/dto/request"
	"hotel-backoffice/internal/infra"
	"hotel-backoffice/internal/pkg/errs"
	"hotel-backoffice/internal/usecase/queries"
)

var ErrCustomerHasRecords = errs.New("customer still has reservations or payments")

type CustomerRepo interface {
	Insert(ctx context.Context, c *customer.Customer) error
	Update(ctx context.Context, c *customer.Customer) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*customer.Customer, error)
}

type CustomerCommands interface {
	Create(ctx context.Context, req reqdto.CreateCustomerRequest) (*queries.CustomerView, error)
	Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateCustomerRequest) (*queries.CustomerView, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type customerCommandsImpl struct {
	repo CustomerRepo
}

func NewCustomerCommands(repo CustomerRepo) CustomerCommands {
	return &customerCommandsImpl{repo: repo}
}

func (c *customerCommandsImpl) Create(ctx context.Context, req reqdto.CreateCustomerRequest) (*queries.CustomerView, error) {
	entity, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	if err := c.repo.Insert(ctx, entity); err != nil {
		return nil, errs.Wrap(err, "failed to insert customer")
	}

	return queries.NewCustomerView(entity), nil
}

func (c *customerCommandsImpl) Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateCustomerRequest) (*queries.CustomerView, error) {
	entity, err := c.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, errs.Wrap(err, "failed to load customer")
	}

	firstName := entity.FirstName()
	if req.FirstName != nil {
		firstName = *req.FirstName
	}
	lastName := entity.LastName()
	if req.LastName != nil {
		lastName = *req.LastName
	}
	email := entity.Email()
	if req.Email != nil {
		email = *req.Email
	}
	phone := entity.Phone()
	if req.Phone != nil {
		phone = *req.Phone
	}
	if err := entity.Update(firstName, lastName, email, phone); err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	if err := c.repo.Update(ctx, entity); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, errs.Wrap(err, "failed to update customer")
	}

	return queries.NewCustomerView(entity), nil
}

func (c *customerCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := c.repo.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrCustomerNotFound
		}
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return ErrCustomerHasRecords
		}
		return errs.Wrap(err, "failed to delete customer")
	}
	return nil
}
