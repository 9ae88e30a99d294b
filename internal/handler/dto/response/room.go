package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"

	"hotel-backoffice/internal/usecase/queries"
)

type RoomResponse struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	NightlyCents int64     `json:"nightlyCents"`
	RoomType     string    `json:"roomType"`
	CoverURL     string    `json:"coverUrl,omitempty"`
	ThumbnailURL string    `json:"thumbnailUrl,omitempty"`
	GalleryURLs  []string  `json:"galleryUrls"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func FromRoomView(v *queries.RoomView) *RoomResponse {
	var resp RoomResponse
	_ = copier.Copy(&resp, v)
	return &resp
}

func FromRoomViews(views []*queries.RoomView) []*RoomResponse {
	out := make([]*RoomResponse, len(views))
	for i, v := range views {
		out[i] = FromRoomView(v)
	}
	return out
}
