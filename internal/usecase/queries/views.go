package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for the read side). Repositories hydrate these directly
// from joined queries; handlers copy them into response DTOs.

type ReservationView struct {
	ID            uuid.UUID `json:"id"`
	Number        string    `json:"number"`
	RoomID        uuid.UUID `json:"room_id"`
	RoomTitle     string    `json:"room_title"`
	RoomType      string    `json:"room_type"`
	CheckIn       time.Time `json:"check_in"`
	CheckOut      time.Time `json:"check_out"`
	CustomerID    uuid.UUID `json:"customer_id"`
	CustomerName  string    `json:"customer_name"`
	CustomerEmail string    `json:"customer_email"`
	Guests        int       `json:"guests"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type RoomView struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	NightlyCents int64     `json:"nightly_cents"`
	RoomType     string    `json:"room_type"`
	CoverURL     string    `json:"cover_url"`
	ThumbnailURL string    `json:"thumbnail_url"`
	GalleryURLs  []string  `json:"gallery_urls"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type CustomerView struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type PaymentView struct {
	ID            uuid.UUID `json:"id"`
	ReservationID uuid.UUID `json:"reservation_id"`
	CustomerID    uuid.UUID `json:"customer_id"`
	AmountCents   int64     `json:"amount_cents"`
	Currency      string    `json:"currency"`
	Method        string    `json:"method"`
	Status        string    `json:"status"`
	TransactionID string    `json:"transaction_id,omitempty"`
	PaidAt        time.Time `json:"paid_at"`
	CreatedAt     time.Time `json:"created_at"`
}

type MealView struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title,omitempty"`
	NameDE      string    `json:"name_de,omitempty"`
	NameEN      string    `json:"name_en,omitempty"`
	PriceCents  int64     `json:"price_cents"`
	Category    string    `json:"category,omitempty"`
	Recommended bool      `json:"recommended"`
	ImageURL    string    `json:"image_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type DayMenuView struct {
	Day    string     `json:"day"`
	Soup   *MealView  `json:"soup,omitempty"`
	Menu1  *MealView  `json:"menu1,omitempty"`
	Menu2  *MealView  `json:"menu2,omitempty"`
	Extras []MealView `json:"extras"`
}

type GalleryImageView struct {
	ID        uuid.UUID `json:"id"`
	URL       string    `json:"url"`
	Caption   string    `json:"caption,omitempty"`
	Position  int       `json:"position"`
	CreatedAt time.Time `json:"created_at"`
}

type MainMenuView struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title,omitempty"`
	URL       string    `json:"url"`
	PageCount int       `json:"page_count"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

type SnapshotView struct {
	Date           string    `json:"date"`
	TotalBookings  int64     `json:"total_bookings"`
	AvailableRooms int64     `json:"available_rooms"`
	CurrentGuests  int64     `json:"current_guests"`
	EarningsCents  int64     `json:"earnings_cents"`
	Currency       string    `json:"currency"`
	ComputedAt     time.Time `json:"computed_at"`
}

type UserView struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}
