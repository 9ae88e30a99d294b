package queries

import (
	"context"

	"hotel-backoffice/internal/domain/menu"
)

type WeeklyMenuQueries interface {
	GetWeek(ctx context.Context) ([]*DayMenuView, error)
	GetDay(ctx context.Context, rawDay string) (*DayMenuView, error)
}

type WeeklyMenuViewRepo interface {
	GetWeek(ctx context.Context) ([]*DayMenuView, error)
	GetDay(ctx context.Context, day menu.Weekday) (*DayMenuView, error)
}

type weeklyMenuQueriesImpl struct {
	repo WeeklyMenuViewRepo
}

func NewWeeklyMenuQueries(repo WeeklyMenuViewRepo) WeeklyMenuQueries {
	return &weeklyMenuQueriesImpl{repo: repo}
}

func (q *weeklyMenuQueriesImpl) GetWeek(ctx context.Context) ([]*DayMenuView, error) {
	return q.repo.GetWeek(ctx)
}

func (q *weeklyMenuQueriesImpl) GetDay(ctx context.Context, rawDay string) (*DayMenuView, error) {
	day, err := menu.NewWeekday(rawDay)
	if err != nil {
		return nil, err
	}
	return q.repo.GetDay(ctx, day)
}
