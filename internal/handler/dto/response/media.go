package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"

	"hotel-backoffice/internal/usecase/queries"
)

type GalleryImageResponse struct {
	ID        uuid.UUID `json:"id"`
	URL       string    `json:"url"`
	Caption   string    `json:"caption,omitempty"`
	Position  int       `json:"position"`
	CreatedAt time.Time `json:"createdAt"`
}

func FromGalleryImageView(v *queries.GalleryImageView) *GalleryImageResponse {
	var resp GalleryImageResponse
	_ = copier.Copy(&resp, v)
	return &resp
}

func FromGalleryImageViews(views []*queries.GalleryImageView) []*GalleryImageResponse {
	out := make([]*GalleryImageResponse, len(views))
	for i, v := range views {
		out[i] = FromGalleryImageView(v)
	}
	return out
}

type MainMenuResponse struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title,omitempty"`
	URL       string    `json:"url"`
	PageCount int       `json:"pageCount"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
}

func FromMainMenuView(v *queries.MainMenuView) *MainMenuResponse {
	var resp MainMenuResponse
	_ = copier.Copy(&resp, v)
	return &resp
}

func FromMainMenuViews(views []*queries.MainMenuView) []*MainMenuResponse {
	out := make([]*MainMenuResponse, len(views))
	for i, v := range views {
		out[i] = FromMainMenuView(v)
	}
	return out
}
