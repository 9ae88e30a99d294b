package commands

import (
	"context"

	"github.com/google/uuid"

	"hotel-backoffice/internal/domain/menu"
	reqdto "hotel-backoffice/internal/handler/dto/request"
	"hotel-backoffice/internal/infra"
	"hotel-backoffice/internal/pkg/errs"
	"hotel-backoffice/internal/usecase/queries"
)

var ErrInvalidWeekday = errs.New("invalid weekday")

type WeeklyMenuRepo interface {
	AssignSlot(ctx context.Context, day menu.Weekday, slot menu.Slot, mealID *uuid.UUID) error
	AddExtra(ctx context.Context, day menu.Weekday, mealID uuid.UUID) error
	RemoveExtra(ctx context.Context, day menu.Weekday, mealID uuid.UUID) error
	ClearDay(ctx context.Context, day menu.Weekday) error
	GetDay(ctx context.Context, day menu.Weekday) (*queries.DayMenuView, error)
}

type WeeklyMenuCommands interface {
	AssignSlot(ctx context.Context, rawDay string, req reqdto.AssignSlotRequest) (*queries.DayMenuView, error)
	AddExtra(ctx context.Context, rawDay string, req reqdto.AddExtraMealRequest) (*queries.DayMenuView, error)
	RemoveExtra(ctx context.Context, rawDay string, mealID uuid.UUID) (*queries.DayMenuView, error)
	ClearDay(ctx context.Context, rawDay string) error
}

type weeklyMenuCommandsImpl struct {
	repo WeeklyMenuRepo
}

func NewWeeklyMenuCommands(repo WeeklyMenuRepo) WeeklyMenuCommands {
	return &weeklyMenuCommandsImpl{repo: repo}
}

// AssignSlot replaces whatever the slot held before; a nil meal id clears it.
func (w *weeklyMenuCommandsImpl) AssignSlot(ctx context.Context, rawDay string, req reqdto.AssignSlotRequest) (*queries.DayMenuView, error) {
	day, err := menu.NewWeekday(rawDay)
	if err != nil {
		return nil, ErrInvalidWeekday
	}
	slot, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	if err := w.repo.AssignSlot(ctx, day, slot, req.MealID); err != nil {
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return nil, ErrMealNotFound
		}
		return nil, errs.Wrap(err, "failed to assign menu slot")
	}

	return w.repo.GetDay(ctx, day)
}

func (w *weeklyMenuCommandsImpl) AddExtra(ctx context.Context, rawDay string, req reqdto.AddExtraMealRequest) (*queries.DayMenuView, error) {
	day, err := menu.NewWeekday(rawDay)
	if err != nil {
		return nil, ErrInvalidWeekday
	}

	if err := w.repo.AddExtra(ctx, day, req.MealID); err != nil {
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return nil, ErrMealNotFound
		}
		return nil, errs.Wrap(err, "failed to add extra meal")
	}

	return w.repo.GetDay(ctx, day)
}

func (w *weeklyMenuCommandsImpl) RemoveExtra(ctx context.Context, rawDay string, mealID uuid.UUID) (*queries.DayMenuView, error) {
	day, err := menu.NewWeekday(rawDay)
	if err != nil {
		return nil, ErrInvalidWeekday
	}

	if err := w.repo.RemoveExtra(ctx, day, mealID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrMealNotFound
		}
		return nil, errs.Wrap(err, "failed to remove extra meal")
	}

	return w.repo.GetDay(ctx, day)
}

func (w *weeklyMenuCommandsImpl) ClearDay(ctx context.Context, rawDay string) error {
	day, err := menu.NewWeekday(rawDay)
	if err != nil {
		return ErrInvalidWeekday
	}

	if err := w.repo.ClearDay(ctx, day); err != nil {
		return errs.Wrap(err, "failed to clear day menu")
	}
	return nil
}
