package queries

import (
	"context"

	"github.com/google/uuid"

	"hotel-backoffice/internal/domain/menu"
)

func NewMealView(m *menu.Meal) *MealView {
	return &MealView{
		ID:          m.ID(),
		Title:       m.Title(),
		NameDE:      m.NameDE(),
		NameEN:      m.NameEN(),
		PriceCents:  m.PriceCents(),
		Category:    m.Category(),
		Recommended: m.Recommended(),
		ImageURL:    m.ImageURL(),
		CreatedAt:   m.CreatedAt(),
		UpdatedAt:   m.UpdatedAt(),
	}
}

// MealFilter holds the equality predicates the list endpoint accepts.
type MealFilter struct {
	Category    *string
	Recommended *bool
}

type MealQueries interface {
	List(ctx context.Context, filter MealFilter) ([]*MealView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*MealView, error)
}

type MealViewRepo interface {
	List(ctx context.Context, filter MealFilter) ([]*MealView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*menu.Meal, error)
}

type mealQueriesImpl struct {
	repo MealViewRepo
}

func NewMealQueries(repo MealViewRepo) MealQueries {
	return &mealQueriesImpl{repo: repo}
}

func (q *mealQueriesImpl) List(ctx context.Context, filter MealFilter) ([]*MealView, error) {
	return q.repo.List(ctx, filter)
}

func (q *mealQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*MealView, error) {
	entity, err := q.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return NewMealView(entity), nil
}
