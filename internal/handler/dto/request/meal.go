package request

import (
	"hotel-backoffice/internal/domain/menu"
)

// Meal payloads bind from JSON or from a multipart form when an image file
// rides along.
type CreateMealRequest struct {
	Title      string `json:"title" form:"title"`
	NameDE     string `json:"name_de" form:"name_de"`
	NameEN     string `json:"name_en" form:"name_en"`
	PriceCents int64  `json:"price_cents" form:"price_cents" binding:"min=0"`
	Category   string `json:"category" form:"category" binding:"required"`
}

// ToDomain enforces the title-or-both-names rule once, here at the boundary.
func (r CreateMealRequest) ToDomain() (*menu.Meal, error) {
	return menu.NewMeal(r.Title, r.NameDE, r.NameEN, r.PriceCents, r.Category)
}

type UpdateMealRequest struct {
	Title      *string `json:"title" form:"title"`
	NameDE     *string `json:"name_de" form:"name_de"`
	NameEN     *string `json:"name_en" form:"name_en"`
	PriceCents *int64  `json:"price_cents" form:"price_cents" binding:"omitempty,min=0"`
	Category   *string `json:"category" form:"category"`
}
