package queries

import (
	"context"

	"hotel-backoffice/internal/domain/media"
)

func NewGalleryImageView(g *media.GalleryImage) *GalleryImageView {
	return &GalleryImageView{
		ID:        g.ID(),
		URL:       g.URL(),
		Caption:   g.Caption(),
		Position:  g.Position(),
		CreatedAt: g.CreatedAt(),
	}
}

func NewMainMenuView(m *media.MainMenu) *MainMenuView {
	return &MainMenuView{
		ID:        m.ID(),
		Title:     m.Title(),
		URL:       m.URL(),
		PageCount: m.PageCount(),
		Active:    m.Active(),
		CreatedAt: m.CreatedAt(),
	}
}

type MediaQueries interface {
	ListGallery(ctx context.Context) ([]*GalleryImageView, error)
	ListMainMenus(ctx context.Context) ([]*MainMenuView, error)
}

type GalleryViewRepo interface {
	List(ctx context.Context) ([]*GalleryImageView, error)
}

type MainMenuViewRepo interface {
	List(ctx context.Context) ([]*MainMenuView, error)
}

type mediaQueriesImpl struct {
	gallery   GalleryViewRepo
	mainMenus MainMenuViewRepo
}

func NewMediaQueries(gallery GalleryViewRepo, mainMenus MainMenuViewRepo) MediaQueries {
	return &mediaQueriesImpl{gallery: gallery, mainMenus: mainMenus}
}

func (q *mediaQueriesImpl) ListGallery(ctx context.Context) ([]*GalleryImageView, error) {
	return q.gallery.List(ctx)
}

func (q *mediaQueriesImpl) ListMainMenus(ctx context.Context) ([]*MainMenuView, error) {
	return q.mainMenus.List(ctx)
}
