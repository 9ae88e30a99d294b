package room

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidType  = errors.New("invalid room type")
	ErrEmptyTitle   = errors.New("room title must not be empty")
	ErrInvalidPrice = errors.New("nightly price cannot be negative")
)

// Type is the room category. It is snapshotted onto reservations at booking
// time, so changing a room's type does not rewrite history.
type Type string

const (
	TypeSingle Type = "Single"
	TypeDouble Type = "Double"
	TypeTriple Type = "Triple"
)

func NewType(s string) (Type, error) {
	switch Type(s) {
	case TypeSingle, TypeDouble, TypeTriple:
		return Type(s), nil
	default:
		return "", ErrInvalidType
	}
}

func (t Type) String() string {
	return string(t)
}

type Room struct {
	id             uuid.UUID
	title          string
	nightlyCents   int64
	roomType       Type
	coverURL       string
	thumbnailURL   string
	galleryURLs    []string
	createdAt      time.Time
	updatedAt      time.Time
}

func NewRoom(title string, nightlyCents int64, roomType Type) (*Room, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if nightlyCents < 0 {
		return nil, ErrInvalidPrice
	}
	if _, err := NewType(roomType.String()); err != nil {
		return nil, err
	}

	return &Room{
		id:           uuid.New(),
		title:        title,
		nightlyCents: nightlyCents,
		roomType:     roomType,
	}, nil
}

func Reconstruct(
	id uuid.UUID,
	title string,
	nightlyCents int64,
	roomType Type,
	coverURL, thumbnailURL string,
	galleryURLs []string,
	createdAt, updatedAt time.Time,
) *Room {
	return &Room{
		id:           id,
		title:        title,
		nightlyCents: nightlyCents,
		roomType:     roomType,
		coverURL:     coverURL,
		thumbnailURL: thumbnailURL,
		galleryURLs:  galleryURLs,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (r *Room) ID() uuid.UUID         { return r.id }
func (r *Room) Title() string         { return r.title }
func (r *Room) NightlyCents() int64   { return r.nightlyCents }
func (r *Room) Type() Type            { return r.roomType }
func (r *Room) CoverURL() string      { return r.coverURL }
func (r *Room) ThumbnailURL() string  { return r.thumbnailURL }
func (r *Room) GalleryURLs() []string { return r.galleryURLs }
func (r *Room) CreatedAt() time.Time  { return r.createdAt }
func (r *Room) UpdatedAt() time.Time  { return r.updatedAt }

func (r *Room) Update(title string, nightlyCents int64, roomType Type) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return ErrEmptyTitle
	}
	if nightlyCents < 0 {
		return ErrInvalidPrice
	}
	if _, err := NewType(roomType.String()); err != nil {
		return err
	}
	r.title = title
	r.nightlyCents = nightlyCents
	r.roomType = roomType
	return nil
}

func (r *Room) SetImages(coverURL, thumbnailURL string) {
	if coverURL != "" {
		r.coverURL = coverURL
	}
	if thumbnailURL != "" {
		r.thumbnailURL = thumbnailURL
	}
}

func (r *Room) AddGalleryURL(url string) {
	r.galleryURLs = append(r.galleryURLs, url)
}
