package queries

import (
	"context"

	"github.com/google/uuid"

	"hotel-backoffice/internal/domain/user"
)

type UserQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*UserView, error)
}

type UserRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*user.User, error)
}

type userQueriesImpl struct {
	repo UserRepo
}

func NewUserQueries(repo UserRepo) UserQueries {
	return &userQueriesImpl{repo: repo}
}

func (q *userQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*UserView, error) {
	entity, err := q.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &UserView{
		ID:       entity.ID(),
		Email:    entity.Email().String(),
		Role:     entity.Role().String(),
		IsActive: entity.IsActive(),
	}, nil
}
