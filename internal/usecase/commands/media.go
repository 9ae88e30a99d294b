package commands

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	domainmedia "hotel-backoffice/internal/domain/media"
	reqdto "hotel-backoffice/internal/handler/dto/request"
	"hotel-backoffice/internal/infra"
	"hotel-backoffice/internal/infra/media"
	"hotel-backoffice/internal/pkg/errs"
	"hotel-backoffice/internal/usecase/queries"
)

var (
	ErrGalleryImageNotFound = errs.New("gallery image not found")
	ErrMainMenuNotFound     = errs.New("main menu not found")
	ErrMissingFile          = errs.New("request is missing the file part")
)

type GalleryRepo interface {
	Insert(ctx context.Context, img *domainmedia.GalleryImage) error
	Delete(ctx context.Context, id uuid.UUID) (publicID string, err error)
}

type GalleryCommands interface {
	Create(ctx context.Context, req reqdto.CreateGalleryImageRequest, image *Upload) (*queries.GalleryImageView, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type galleryCommandsImpl struct {
	repo     GalleryRepo
	uploader media.Uploader
}

func NewGalleryCommands(repo GalleryRepo, uploader media.Uploader) GalleryCommands {
	return &galleryCommandsImpl{repo: repo, uploader: uploader}
}

func (g *galleryCommandsImpl) Create(ctx context.Context, req reqdto.CreateGalleryImageRequest, image *Upload) (*queries.GalleryImageView, error) {
	if image == nil {
		return nil, ErrMissingFile
	}

	asset, err := g.uploader.Upload(ctx, image.File, image.Filename)
	if err != nil {
		return nil, errs.Mark(err, ErrUploadFailed)
	}

	entity, err := domainmedia.NewGalleryImage(asset.URL, asset.PublicID, req.Caption, req.Position)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	if err := g.repo.Insert(ctx, entity); err != nil {
		return nil, errs.Wrap(err, "failed to insert gallery image")
	}

	return queries.NewGalleryImageView(entity), nil
}

func (g *galleryCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	publicID, err := g.repo.Delete(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrGalleryImageNotFound
		}
		return errs.Wrap(err, "failed to delete gallery image")
	}

	// The row is gone; an orphaned blob is a cleanup problem, not a failure.
	if err := g.uploader.Delete(ctx, publicID); err != nil {
		slog.Warn("failed to delete gallery blob", "public_id", publicID, "error", err.Error())
	}
	return nil
}

type MainMenuRepo interface {
	Insert(ctx context.Context, m *domainmedia.MainMenu) error
	Activate(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) (publicID string, err error)
}

type MainMenuCommands interface {
	Create(ctx context.Context, req reqdto.CreateMainMenuRequest, pdf *Upload) (*queries.MainMenuView, error)
	Activate(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type mainMenuCommandsImpl struct {
	repo     MainMenuRepo
	uploader media.Uploader
}

func NewMainMenuCommands(repo MainMenuRepo, uploader media.Uploader) MainMenuCommands {
	return &mainMenuCommandsImpl{repo: repo, uploader: uploader}
}

func (m *mainMenuCommandsImpl) Create(ctx context.Context, req reqdto.CreateMainMenuRequest, pdf *Upload) (*queries.MainMenuView, error) {
	if pdf == nil {
		return nil, ErrMissingFile
	}

	asset, err := m.uploader.Upload(ctx, pdf.File, pdf.Filename)
	if err != nil {
		return nil, errs.Mark(err, ErrUploadFailed)
	}

	pageCount := asset.Pages
	if pageCount == 0 {
		pageCount = req.PageCount
	}

	entity, err := domainmedia.NewMainMenu(req.Title, asset.URL, asset.PublicID, pageCount)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	if err := m.repo.Insert(ctx, entity); err != nil {
		return nil, errs.Wrap(err, "failed to insert main menu")
	}

	return queries.NewMainMenuView(entity), nil
}

func (m *mainMenuCommandsImpl) Activate(ctx context.Context, id uuid.UUID) error {
	if err := m.repo.Activate(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrMainMenuNotFound
		}
		return errs.Wrap(err, "failed to activate main menu")
	}
	return nil
}

func (m *mainMenuCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	publicID, err := m.repo.Delete(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrMainMenuNotFound
		}
		return errs.Wrap(err, "failed to delete main menu")
	}

	if err := m.uploader.Delete(ctx, publicID); err != nil {
		slog.Warn("failed to delete main menu blob", "public_id", publicID, "error", err.Error())
	}
	return nil
}
