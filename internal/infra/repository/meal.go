package repository

import (
	"context"
	"time"

	"hotel-backoffice/internal/domain/menu"
	"hotel-backoffice/internal/infra"
	"hotel-backoffice/internal/infra/db"
	"hotel-backoffice/internal/usecase/queries"

	"github.com/google/uuid"
)

const mealColumns = `id, title, name_de, name_en, price_cents, category, recommended, image_url, created_at, updated_at`

type MealRepository struct {
	db db.DBTX
}

func NewMealRepository(dbtx db.DBTX) *MealRepository {
	return &MealRepository{db: dbtx}
}

func (r *MealRepository) Insert(ctx context.Context, m *menu.Meal) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO meals (id, title, name_de, name_en, price_cents, category, recommended, image_url)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		m.ID(), m.Title(), m.NameDE(), m.NameEN(), m.PriceCents(), m.Category(), m.Recommended(), m.ImageURL(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert meal", err)
	}
	return nil
}

func (r *MealRepository) Update(ctx context.Context, m *menu.Meal) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE meals
		 SET title = $2, name_de = $3, name_en = $4, price_cents = $5,
		     category = $6, recommended = $7, image_url = $8, updated_at = now()
		 WHERE id = $1`,
		m.ID(), m.Title(), m.NameDE(), m.NameEN(), m.PriceCents(), m.Category(), m.Recommended(), m.ImageURL(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update meal", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("meal not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *MealRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM meals WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete meal", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("meal not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *MealRepository) FindByID(ctx context.Context, id uuid.UUID) (*menu.Meal, error) {
	row := r.db.QueryRow(ctx, `SELECT `+mealColumns+` FROM meals WHERE id = $1`, id)
	m, err := scanMeal(row)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("meal not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find meal", err)
	}
	return m, nil
}

func (r *MealRepository) List(ctx context.Context, filter queries.MealFilter) ([]*queries.MealView, error) {
	sql := `SELECT ` + mealColumns + ` FROM meals`
	args := []any{}
	where := ""
	if filter.Category != nil {
		args = append(args, *filter.Category)
		where = ` WHERE category = $1`
	}
	if filter.Recommended != nil {
		args = append(args, *filter.Recommended)
		if where == "" {
			where = ` WHERE recommended = $1`
		} else {
			where += ` AND recommended = $2`
		}
	}
	sql += where + ` ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list meals", err)
	}
	defer rows.Close()

	var views []*queries.MealView
	for rows.Next() {
		var v queries.MealView
		if err := rows.Scan(
			&v.ID, &v.Title, &v.NameDE, &v.NameEN, &v.PriceCents,
			&v.Category, &v.Recommended, &v.ImageURL, &v.CreatedAt, &v.UpdatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan meal row", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate meals", err)
	}
	return views, nil
}

func scanMeal(row rowScanner) (*menu.Meal, error) {
	var (
		id                     uuid.UUID
		title, nameDE, nameEN  string
		priceCents             int64
		category, imageURL     string
		recommended            bool
		createdAt, updatedAt   time.Time
	)
	err := row.Scan(&id, &title, &nameDE, &nameEN, &priceCents, &category, &recommended, &imageURL, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}
	return menu.ReconstructMeal(id, title, nameDE, nameEN, priceCents, category, recommended, imageURL, createdAt, updatedAt), nil
}
