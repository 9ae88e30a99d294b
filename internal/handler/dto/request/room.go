package request

import (
	"hotel-backoffice/internal/domain/room"
)

// Room payloads arrive as multipart forms so image files can ride along.
type CreateRoomRequest struct {
	Title        string `form:"title" binding:"required"`
	NightlyCents int64  `form:"nightly_cents" binding:"required,min=0"`
	RoomType     string `form:"room_type" binding:"required,oneof=Single Double Triple"`
}

func (r CreateRoomRequest) ToDomain() (*room.Room, error) {
	roomType, err := room.NewType(r.RoomType)
	if err != nil {
		return nil, err
	}
	return room.NewRoom(r.Title, r.NightlyCents, roomType)
}

type UpdateRoomRequest struct {
	Title        *string `form:"title"`
	NightlyCents *int64  `form:"nightly_cents" binding:"omitempty,min=0"`
	RoomType     *string `form:"room_type" binding:"omitempty,oneof=Single Double Triple"`
}
