package queries

import (
	"context"

	"github.com/google/uuid"

	"hotel-backoffice/internal/domain/room"
)

func NewRoomView(r *room.Room) *RoomView {
	return &RoomView{
		ID:           r.ID(),
		Title:        r.Title(),
		NightlyCents: r.NightlyCents(),
		RoomType:     r.Type().String(),
		CoverURL:     r.CoverURL(),
		ThumbnailURL: r.ThumbnailURL(),
		GalleryURLs:  r.GalleryURLs(),
		CreatedAt:    r.CreatedAt(),
		UpdatedAt:    r.UpdatedAt(),
	}
}

type RoomQueries interface {
	List(ctx context.Context, roomType *string) ([]*RoomView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*RoomView, error)
}

type RoomViewRepo interface {
	List(ctx context.Context, roomType *room.Type) ([]*RoomView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*room.Room, error)
}

type roomQueriesImpl struct {
	repo RoomViewRepo
}

func NewRoomQueries(repo RoomViewRepo) RoomQueries {
	return &roomQueriesImpl{repo: repo}
}

func (q *roomQueriesImpl) List(ctx context.Context, rawType *string) ([]*RoomView, error) {
	var filter *room.Type
	if rawType != nil && *rawType != "" {
		roomType, err := room.NewType(*rawType)
		if err != nil {
			return nil, err
		}
		filter = &roomType
	}
	return q.repo.List(ctx, filter)
}

func (q *roomQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*RoomView, error) {
	entity, err := q.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return NewRoomView(entity), nil
}
