package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"

	"hotel-backoffice/internal/usecase/queries"
)

type MealResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title,omitempty"`
	NameDE      string    `json:"nameDe,omitempty"`
	NameEN      string    `json:"nameEn,omitempty"`
	PriceCents  int64     `json:"priceCents"`
	Category    string    `json:"category,omitempty"`
	Recommended bool      `json:"recommended"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func FromMealView(v *queries.MealView) *MealResponse {
	var resp MealResponse
	_ = copier.Copy(&resp, v)
	return &resp
}

func FromMealViews(views []*queries.MealView) []*MealResponse {
	out := make([]*MealResponse, len(views))
	for i, v := range views {
		out[i] = FromMealView(v)
	}
	return out
}

type DayMenuResponse struct {
	Day    string          `json:"day"`
	Soup   *MealResponse   `json:"soup,omitempty"`
	Menu1  *MealResponse   `json:"menu1,omitempty"`
	Menu2  *MealResponse   `json:"menu2,omitempty"`
	Extras []*MealResponse `json:"extras"`
}

func FromDayMenuView(v *queries.DayMenuView) *DayMenuResponse {
	resp := &DayMenuResponse{Day: v.Day, Extras: make([]*MealResponse, len(v.Extras))}
	if v.Soup != nil {
		resp.Soup = FromMealView(v.Soup)
	}
	if v.Menu1 != nil {
		resp.Menu1 = FromMealView(v.Menu1)
	}
	if v.Menu2 != nil {
		resp.Menu2 = FromMealView(v.Menu2)
	}
	for i := range v.Extras {
		resp.Extras[i] = FromMealView(&v.Extras[i])
	}
	return resp
}

func FromDayMenuViews(views []*queries.DayMenuView) []*DayMenuResponse {
	out := make([]*DayMenuResponse, len(views))
	for i, v := range views {
		out[i] = FromDayMenuView(v)
	}
	return out
}
