package commands

import (
	"context"

	"github.com/google/uuid"

	"hotel-backoffice/internal/domain/menu"
	reqdto "hotel-backoffice/internal/handler/dto/request"
	"hotel-backoffice/internal/infra"
	"hotel-backoffice/internal/infra/media"
	"hotel-backoffice/internal/pkg/errs"
	"hotel-backoffice/internal/usecase/queries"
)

var ErrMealNotFound = errs.New("meal not found")

type MealRepo interface {
	Insert(ctx context.Context, m *menu.Meal) error
	Update(ctx context.Context, m *menu.Meal) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*menu.Meal, error)
}

type MealCommands interface {
	Create(ctx context.Context, req reqdto.CreateMealRequest, image *Upload) (*queries.MealView, error)
	Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateMealRequest, image *Upload) (*queries.MealView, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ToggleRecommended(ctx context.Context, id uuid.UUID) (*queries.MealView, error)
}

type mealCommandsImpl struct {
	repo     MealRepo
	uploader media.Uploader
}

func NewMealCommands(repo MealRepo, uploader media.Uploader) MealCommands {
	return &mealCommandsImpl{repo: repo, uploader: uploader}
}

func (m *mealCommandsImpl) Create(ctx context.Context, req reqdto.CreateMealRequest, image *Upload) (*queries.MealView, error) {
	entity, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	if err := m.applyImage(ctx, entity, image); err != nil {
		return nil, err
	}

	if err := m.repo.Insert(ctx, entity); err != nil {
		return nil, errs.Wrap(err, "failed to insert meal")
	}

	return queries.NewMealView(entity), nil
}

func (m *mealCommandsImpl) Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateMealRequest, image *Upload) (*queries.MealView, error) {
	entity, err := m.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrMealNotFound
		}
		return nil, errs.Wrap(err, "failed to load meal")
	}

	title := entity.Title()
	if req.Title != nil {
		title = *req.Title
	}
	nameDE := entity.NameDE()
	if req.NameDE != nil {
		nameDE = *req.NameDE
	}
	nameEN := entity.NameEN()
	if req.NameEN != nil {
		nameEN = *req.NameEN
	}
	priceCents := entity.PriceCents()
	if req.PriceCents != nil {
		priceCents = *req.PriceCents
	}
	category := entity.Category()
	if req.Category != nil {
		category = *req.Category
	}
	if err := entity.Update(title, nameDE, nameEN, priceCents, category); err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	if err := m.applyImage(ctx, entity, image); err != nil {
		return nil, err
	}

	if err := m.repo.Update(ctx, entity); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrMealNotFound
		}
		return nil, errs.Wrap(err, "failed to update meal")
	}

	return queries.NewMealView(entity), nil
}

func (m *mealCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := m.repo.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrMealNotFound
		}
		return errs.Wrap(err, "failed to delete meal")
	}
	return nil
}

func (m *mealCommandsImpl) ToggleRecommended(ctx context.Context, id uuid.UUID) (*queries.MealView, error) {
	entity, err := m.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrMealNotFound
		}
		return nil, errs.Wrap(err, "failed to load meal")
	}

	entity.ToggleRecommended()

	if err := m.repo.Update(ctx, entity); err != nil {
		return nil, errs.Wrap(err, "failed to update meal")
	}

	return queries.NewMealView(entity), nil
}

func (m *mealCommandsImpl) applyImage(ctx context.Context, entity *menu.Meal, image *Upload) error {
	if image == nil {
		return nil
	}
	asset, err := m.uploader.Upload(ctx, image.File, image.Filename)
	if err != nil {
		return errs.Mark(err, ErrUploadFailed)
	}
	entity.SetImageURL(asset.URL)
	return nil
}
