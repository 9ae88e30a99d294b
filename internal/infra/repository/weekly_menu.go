package repository

import (
	"context"

	"hotel-backoffice/internal/domain/menu"
	"hotel-backoffice/internal/infra"
	"hotel-backoffice/internal/infra/db"
	"hotel-backoffice/internal/usecase/queries"

	"github.com/google/uuid"
)

type WeeklyMenuRepository struct {
	db db.DBTX
}

func NewWeeklyMenuRepository(dbtx db.DBTX) *WeeklyMenuRepository {
	return &WeeklyMenuRepository{db: dbtx}
}

// AssignSlot writes a singleton slot. The UPDATE replaces whatever was there;
// the slot columns only ever hold one meal.
func (r *WeeklyMenuRepository) AssignSlot(ctx context.Context, day menu.Weekday, slot menu.Slot, mealID *uuid.UUID) error {
	column, err := slotColumn(slot)
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx,
		`UPDATE weekly_menu_days SET `+column+` = $2, updated_at = now() WHERE day = $1`,
		day.String(), mealID,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return infra.WrapRepoErr("meal does not exist", err, infra.KindForeignKeyViolated)
		}
		return infra.WrapRepoErr("failed to assign menu slot", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("weekday not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *WeeklyMenuRepository) AddExtra(ctx context.Context, day menu.Weekday, mealID uuid.UUID) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO weekly_menu_extras (day, meal_id, position)
		 VALUES ($1, $2, COALESCE((SELECT max(position) + 1 FROM weekly_menu_extras WHERE day = $1), 0))
		 ON CONFLICT (day, meal_id) DO NOTHING`,
		day.String(), mealID,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return infra.WrapRepoErr("meal does not exist", err, infra.KindForeignKeyViolated)
		}
		return infra.WrapRepoErr("failed to add meal to day", err)
	}
	return nil
}

func (r *WeeklyMenuRepository) RemoveExtra(ctx context.Context, day menu.Weekday, mealID uuid.UUID) error {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM weekly_menu_extras WHERE day = $1 AND meal_id = $2`,
		day.String(), mealID,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to remove meal from day", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("meal is not on this day", nil, infra.KindNotFound)
	}
	return nil
}

// ClearDay empties all three slots and the extras list for a weekday.
func (r *WeeklyMenuRepository) ClearDay(ctx context.Context, day menu.Weekday) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE weekly_menu_days
		 SET soup_meal_id = NULL, menu1_meal_id = NULL, menu2_meal_id = NULL, updated_at = now()
		 WHERE day = $1`,
		day.String(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to clear day", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("weekday not found", nil, infra.KindNotFound)
	}

	if _, err := r.db.Exec(ctx, `DELETE FROM weekly_menu_extras WHERE day = $1`, day.String()); err != nil {
		return infra.WrapRepoErr("failed to clear day extras", err)
	}
	return nil
}

func (r *WeeklyMenuRepository) GetDay(ctx context.Context, day menu.Weekday) (*queries.DayMenuView, error) {
	view := &queries.DayMenuView{Day: day.String(), Extras: []queries.MealView{}}

	var soupID, menu1ID, menu2ID *uuid.UUID
	err := r.db.QueryRow(ctx,
		`SELECT soup_meal_id, menu1_meal_id, menu2_meal_id FROM weekly_menu_days WHERE day = $1`,
		day.String(),
	).Scan(&soupID, &menu1ID, &menu2ID)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("weekday not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load day menu", err)
	}

	for _, pair := range []struct {
		id   *uuid.UUID
		dest **queries.MealView
	}{
		{soupID, &view.Soup},
		{menu1ID, &view.Menu1},
		{menu2ID, &view.Menu2},
	} {
		if pair.id == nil {
			continue
		}
		mv, err := r.mealView(ctx, *pair.id)
		if err != nil {
			return nil, err
		}
		*pair.dest = mv
	}

	rows, err := r.db.Query(ctx,
		`SELECT m.`+mealColumnsJoined()+`
		 FROM weekly_menu_extras e
		 JOIN meals m ON m.id = e.meal_id
		 WHERE e.day = $1
		 ORDER BY e.position`,
		day.String(),
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load day extras", err)
	}
	defer rows.Close()

	for rows.Next() {
		var v queries.MealView
		if err := scanMealView(rows, &v); err != nil {
			return nil, infra.WrapRepoErr("failed to scan extra meal", err)
		}
		view.Extras = append(view.Extras, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate day extras", err)
	}

	return view, nil
}

func (r *WeeklyMenuRepository) GetWeek(ctx context.Context) ([]*queries.DayMenuView, error) {
	week := make([]*queries.DayMenuView, 0, 7)
	for _, day := range menu.Weekdays() {
		view, err := r.GetDay(ctx, day)
		if err != nil {
			return nil, err
		}
		week = append(week, view)
	}
	return week, nil
}

func (r *WeeklyMenuRepository) mealView(ctx context.Context, id uuid.UUID) (*queries.MealView, error) {
	row := r.db.QueryRow(ctx, `SELECT `+mealColumns+` FROM meals WHERE id = $1`, id)

	var v queries.MealView
	if err := scanMealView(row, &v); err != nil {
		if isNoRows(err) {
			// Slot references are SET NULL on meal deletion, so a dangling id
			// here means a concurrent delete; treat the slot as empty.
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to load slot meal", err)
	}
	return &v, nil
}

func slotColumn(slot menu.Slot) (string, error) {
	switch slot {
	case menu.SlotSoup:
		return "soup_meal_id", nil
	case menu.SlotMenu1:
		return "menu1_meal_id", nil
	case menu.SlotMenu2:
		return "menu2_meal_id", nil
	default:
		return "", menu.ErrInvalidSlot
	}
}

func mealColumnsJoined() string {
	return `id, m.title, m.name_de, m.name_en, m.price_cents, m.category, m.recommended, m.image_url, m.created_at, m.updated_at`
}

func scanMealView(row rowScanner, v *queries.MealView) error {
	return row.Scan(
		&v.ID, &v.Title, &v.NameDE, &v.NameEN, &v.PriceCents,
		&v.Category, &v.Recommended, &v.ImageURL, &v.CreatedAt, &v.UpdatedAt,
	)
}
