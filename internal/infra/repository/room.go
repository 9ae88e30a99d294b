package repository

import (
	"context"
	"time"

	"hotel-backoffice/internal/domain/room"
	"hotel-backoffice/internal/infra"
	"hotel-backoffice/internal/infra/db"
	"hotel-backoffice/internal/usecase/queries"

	"github.com/google/uuid"
)

const roomColumns = `id, title, nightly_cents, room_type, cover_url, thumbnail_url, gallery_urls, created_at, updated_at`

type RoomRepository struct {
	db db.DBTX
}

func NewRoomRepository(dbtx db.DBTX) *RoomRepository {
	return &RoomRepository{db: dbtx}
}

func (r *RoomRepository) Insert(ctx context.Context, rm *room.Room) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO rooms (id, title, nightly_cents, room_type, cover_url, thumbnail_url, gallery_urls)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		rm.ID(), rm.Title(), rm.NightlyCents(), rm.Type().String(),
		rm.CoverURL(), rm.ThumbnailURL(), rm.GalleryURLs(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert room", err)
	}
	return nil
}

func (r *RoomRepository) Update(ctx context.Context, rm *room.Room) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE rooms
		 SET title = $2, nightly_cents = $3, room_type = $4,
		     cover_url = $5, thumbnail_url = $6, gallery_urls = $7, updated_at = now()
		 WHERE id = $1`,
		rm.ID(), rm.Title(), rm.NightlyCents(), rm.Type().String(),
		rm.CoverURL(), rm.ThumbnailURL(), rm.GalleryURLs(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update room", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *RoomRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM rooms WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return infra.WrapRepoErr("room has reservations", err, infra.KindForeignKeyViolated)
		}
		return infra.WrapRepoErr("failed to delete room", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *RoomRepository) FindByID(ctx context.Context, id uuid.UUID) (*room.Room, error) {
	row := r.db.QueryRow(ctx, `SELECT `+roomColumns+` FROM rooms WHERE id = $1`, id)
	rm, err := scanRoom(row)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find room", err)
	}
	return rm, nil
}

// List returns rooms, optionally filtered to one type.
func (r *RoomRepository) List(ctx context.Context, roomType *room.Type) ([]*queries.RoomView, error) {
	sql := `SELECT ` + roomColumns + ` FROM rooms`
	args := []any{}
	if roomType != nil {
		sql += ` WHERE room_type = $1`
		args = append(args, roomType.String())
	}
	sql += ` ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rooms", err)
	}
	defer rows.Close()

	var views []*queries.RoomView
	for rows.Next() {
		var v queries.RoomView
		if err := rows.Scan(
			&v.ID, &v.Title, &v.NightlyCents, &v.RoomType,
			&v.CoverURL, &v.ThumbnailURL, &v.GalleryURLs,
			&v.CreatedAt, &v.UpdatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan room row", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate rooms", err)
	}
	return views, nil
}

func (r *RoomRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM rooms`).Scan(&count); err != nil {
		return 0, infra.WrapRepoErr("failed to count rooms", err)
	}
	return count, nil
}

func scanRoom(row rowScanner) (*room.Room, error) {
	var (
		id                     uuid.UUID
		title, roomType        string
		nightlyCents           int64
		coverURL, thumbnailURL string
		galleryURLs            []string
		createdAt, updatedAt   time.Time
	)
	err := row.Scan(&id, &title, &nightlyCents, &roomType, &coverURL, &thumbnailURL, &galleryURLs, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}
	return room.Reconstruct(id, title, nightlyCents, room.Type(roomType), coverURL, thumbnailURL, galleryURLs, createdAt, updatedAt), nil
}
