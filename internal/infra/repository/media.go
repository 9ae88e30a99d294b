package repository

import (
	"context"

	"hotel-backoffice/internal/domain/media"
	"hotel-backoffice/internal/infra"
	"hotel-backoffice/internal/infra/db"
	"hotel-backoffice/internal/usecase/queries"

	"github.com/google/uuid"
)

type GalleryRepository struct {
	db db.DBTX
}

func NewGalleryRepository(dbtx db.DBTX) *GalleryRepository {
	return &GalleryRepository{db: dbtx}
}

func (r *GalleryRepository) Insert(ctx context.Context, img *media.GalleryImage) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO gallery_images (id, url, public_id, caption, position) VALUES ($1, $2, $3, $4, $5)`,
		img.ID(), img.URL(), img.PublicID(), img.Caption(), img.Position(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert gallery image", err)
	}
	return nil
}

// Delete removes the row and reports the blob public id so the caller can
// delete the asset at the collaborator too.
func (r *GalleryRepository) Delete(ctx context.Context, id uuid.UUID) (publicID string, err error) {
	err = r.db.QueryRow(ctx,
		`DELETE FROM gallery_images WHERE id = $1 RETURNING public_id`, id,
	).Scan(&publicID)
	if err != nil {
		if isNoRows(err) {
			return "", infra.WrapRepoErr("gallery image not found", err, infra.KindNotFound)
		}
		return "", infra.WrapRepoErr("failed to delete gallery image", err)
	}
	return publicID, nil
}

func (r *GalleryRepository) List(ctx context.Context) ([]*queries.GalleryImageView, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, url, caption, position, created_at FROM gallery_images ORDER BY position, created_at`,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list gallery images", err)
	}
	defer rows.Close()

	var views []*queries.GalleryImageView
	for rows.Next() {
		var v queries.GalleryImageView
		if err := rows.Scan(&v.ID, &v.URL, &v.Caption, &v.Position, &v.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan gallery image", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate gallery images", err)
	}
	return views, nil
}

type MainMenuRepository struct {
	db db.DBTX
}

func NewMainMenuRepository(dbtx db.DBTX) *MainMenuRepository {
	return &MainMenuRepository{db: dbtx}
}

func (r *MainMenuRepository) Insert(ctx context.Context, m *media.MainMenu) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO main_menus (id, title, url, public_id, page_count, active) VALUES ($1, $2, $3, $4, $5, $6)`,
		m.ID(), m.Title(), m.URL(), m.PublicID(), m.PageCount(), m.Active(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert main menu", err)
	}
	return nil
}

// Activate marks one menu active and the rest inactive. The guard keeps an
// unknown id from deactivating everything.
func (r *MainMenuRepository) Activate(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE main_menus SET active = (id = $1)
		 WHERE EXISTS (SELECT 1 FROM main_menus WHERE id = $1)`,
		id,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to activate main menu", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("main menu not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *MainMenuRepository) Delete(ctx context.Context, id uuid.UUID) (publicID string, err error) {
	err = r.db.QueryRow(ctx,
		`DELETE FROM main_menus WHERE id = $1 RETURNING public_id`, id,
	).Scan(&publicID)
	if err != nil {
		if isNoRows(err) {
			return "", infra.WrapRepoErr("main menu not found", err, infra.KindNotFound)
		}
		return "", infra.WrapRepoErr("failed to delete main menu", err)
	}
	return publicID, nil
}

func (r *MainMenuRepository) List(ctx context.Context) ([]*queries.MainMenuView, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, title, url, page_count, active, created_at FROM main_menus ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list main menus", err)
	}
	defer rows.Close()

	var views []*queries.MainMenuView
	for rows.Next() {
		var v queries.MainMenuView
		if err := rows.Scan(&v.ID, &v.Title, &v.URL, &v.PageCount, &v.Active, &v.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan main menu", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate main menus", err)
	}
	return views, nil
}
