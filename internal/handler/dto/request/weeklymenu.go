package request

import (
	"github.com/google/uuid"

	"hotel-backoffice/internal/domain/menu"
)

// AssignSlotRequest sets or clears a singleton slot for a weekday. A nil
// meal id clears the slot.
type AssignSlotRequest struct {
	Slot   string     `json:"slot" binding:"required,oneof=soup menu1 menu2"`
	MealID *uuid.UUID `json:"meal_id"`
}

func (r AssignSlotRequest) ToDomain() (menu.Slot, error) {
	return menu.NewSlot(r.Slot)
}

type AddExtraMealRequest struct {
	MealID uuid.UUID `json:"meal_id" binding:"required"`
}
