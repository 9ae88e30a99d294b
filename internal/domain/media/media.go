package media

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrMissingURL   = errors.New("asset URL must not be empty")
	ErrInvalidPages = errors.New("page count cannot be negative")
)

// GalleryImage is a photo in the public gallery. PublicID identifies the
// asset at the blob-storage collaborator so it can be deleted there too.
type GalleryImage struct {
	id        uuid.UUID
	url       string
	publicID  string
	caption   string
	position  int
	createdAt time.Time
}

func NewGalleryImage(url, publicID, caption string, position int) (*GalleryImage, error) {
	if strings.TrimSpace(url) == "" {
		return nil, ErrMissingURL
	}
	return &GalleryImage{
		id:       uuid.New(),
		url:      url,
		publicID: publicID,
		caption:  strings.TrimSpace(caption),
		position: position,
	}, nil
}

func ReconstructGalleryImage(id uuid.UUID, url, publicID, caption string, position int, createdAt time.Time) *GalleryImage {
	return &GalleryImage{
		id:        id,
		url:       url,
		publicID:  publicID,
		caption:   caption,
		position:  position,
		createdAt: createdAt,
	}
}

func (g *GalleryImage) ID() uuid.UUID        { return g.id }
func (g *GalleryImage) URL() string          { return g.url }
func (g *GalleryImage) PublicID() string     { return g.publicID }
func (g *GalleryImage) Caption() string      { return g.caption }
func (g *GalleryImage) Position() int        { return g.position }
func (g *GalleryImage) CreatedAt() time.Time { return g.createdAt }

// MainMenu is an uploaded menu PDF. At most one menu is active at a time;
// activating one deactivates the rest (enforced by the repository update).
type MainMenu struct {
	id        uuid.UUID
	title     string
	url       string
	publicID  string
	pageCount int
	active    bool
	createdAt time.Time
}

func NewMainMenu(title, url, publicID string, pageCount int) (*MainMenu, error) {
	if strings.TrimSpace(url) == "" {
		return nil, ErrMissingURL
	}
	if pageCount < 0 {
		return nil, ErrInvalidPages
	}
	return &MainMenu{
		id:        uuid.New(),
		title:     strings.TrimSpace(title),
		url:       url,
		publicID:  publicID,
		pageCount: pageCount,
	}, nil
}

func ReconstructMainMenu(id uuid.UUID, title, url, publicID string, pageCount int, active bool, createdAt time.Time) *MainMenu {
	return &MainMenu{
		id:        id,
		title:     title,
		url:       url,
		publicID:  publicID,
		pageCount: pageCount,
		active:    active,
		createdAt: createdAt,
	}
}

func (m *MainMenu) ID() uuid.UUID        { return m.id }
func (m *MainMenu) Title() string        { return m.title }
func (m *MainMenu) URL() string          { return m.url }
func (m *MainMenu) PublicID() string     { return m.publicID }
func (m *MainMenu) PageCount() int       { return m.pageCount }
func (m *MainMenu) Active() bool         { return m.active }
func (m *MainMenu) CreatedAt() time.Time { return m.createdAt }
