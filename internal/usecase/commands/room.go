package commands

import (
	"context"
	"io"

	"github.com/google/uuid"

	"hotel-backoffice/internal/domain/room"
	reqdto "hotel-backoffice/internal/handler/dto/request"
	"hotel-backoffice/internal/infra"
	"hotel-backoffice/internal/infra/media"
	"hotel-backoffice/internal/pkg/errs"
	"hotel-backoffice/internal/usecase/queries"
)

var (
	ErrRoomHasReservations = errs.New("room still has reservations")
	ErrUploadFailed        = errs.New("media upload failed")
)

// Upload is a file part lifted out of a multipart request.
type Upload struct {
	File     io.Reader
	Filename string
}

// RoomImages carries the optional image parts of a room payload.
type RoomImages struct {
	Cover     *Upload
	Thumbnail *Upload
	Gallery   []Upload
}

type RoomRepo interface {
	Insert(ctx context.Context, rm *room.Room) error
	Update(ctx context.Context, rm *room.Room) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*room.Room, error)
}

type RoomCommands interface {
	Create(ctx context.Context, req reqdto.CreateRoomRequest, images RoomImages) (*queries.RoomView, error)
	Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateRoomRequest, images RoomImages) (*queries.RoomView, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type roomCommandsImpl struct {
	repo     RoomRepo
	uploader media.Uploader
}

func NewRoomCommands(repo RoomRepo, uploader media.Uploader) RoomCommands {
	return &roomCommandsImpl{repo: repo, uploader: uploader}
}

func (r *roomCommandsImpl) Create(ctx context.Context, req reqdto.CreateRoomRequest, images RoomImages) (*queries.RoomView, error) {
	entity, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	if err := r.applyImages(ctx, entity, images); err != nil {
		return nil, err
	}

	if err := r.repo.Insert(ctx, entity); err != nil {
		return nil, errs.Wrap(err, "failed to insert room")
	}

	return queries.NewRoomView(entity), nil
}

func (r *roomCommandsImpl) Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateRoomRequest, images RoomImages) (*queries.RoomView, error) {
	entity, err := r.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, errs.Wrap(err, "failed to load room")
	}

	title := entity.Title()
	if req.Title != nil {
		title = *req.Title
	}
	nightlyCents := entity.NightlyCents()
	if req.NightlyCents != nil {
		nightlyCents = *req.NightlyCents
	}
	roomType := entity.Type()
	if req.RoomType != nil {
		roomType = room.Type(*req.RoomType)
	}
	if err := entity.Update(title, nightlyCents, roomType); err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	if err := r.applyImages(ctx, entity, images); err != nil {
		return nil, err
	}

	if err := r.repo.Update(ctx, entity); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, errs.Wrap(err, "failed to update room")
	}

	return queries.NewRoomView(entity), nil
}

func (r *roomCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.repo.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrRoomNotFound
		}
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return ErrRoomHasReservations
		}
		return errs.Wrap(err, "failed to delete room")
	}
	return nil
}

func (r *roomCommandsImpl) applyImages(ctx context.Context, entity *room.Room, images RoomImages) error {
	var coverURL, thumbnailURL string

	if images.Cover != nil {
		asset, err := r.uploader.Upload(ctx, images.Cover.File, images.Cover.Filename)
		if err != nil {
			return errs.Mark(err, ErrUploadFailed)
		}
		coverURL = asset.URL
	}
	if images.Thumbnail != nil {
		asset, err := r.uploader.Upload(ctx, images.Thumbnail.File, images.Thumbnail.Filename)
		if err != nil {
			return errs.Mark(err, ErrUploadFailed)
		}
		thumbnailURL = asset.URL
	}
	entity.SetImages(coverURL, thumbnailURL)

	for _, g := range images.Gallery {
		asset, err := r.uploader.Upload(ctx, g.File, g.Filename)
		if err != nil {
			return errs.Mark(err, ErrUploadFailed)
		}
		entity.AddGalleryURL(asset.URL)
	}
	return nil
}
